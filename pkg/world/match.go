package world

import (
	"strings"

	"golang.org/x/text/cases"
)

// ContainsFold reports whether substr is within s under Unicode case folding.
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
