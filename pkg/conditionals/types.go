package conditionals

// When defines the conditions a transition requires before it can be used.
// All specified conditions must hold.
type When struct {
	Attributes map[string]int `json:"attributes,omitempty" yaml:"attributes,omitempty"` // Attribute >= this value
	Counters   map[string]int `json:"counters,omitempty" yaml:"counters,omitempty"`     // Counter >= this value
	Carrying   []string       `json:"carrying,omitempty" yaml:"carrying,omitempty"`     // Item names that must be in the inventory
	Visited    []string       `json:"visited,omitempty" yaml:"visited,omitempty"`       // Place names the player must have entered
}

// StateView provides the minimal interface needed to evaluate conditions.
// This avoids an import cycle with the world package.
type StateView interface {
	Attribute(name string) (int, bool)
	Counter(name string) int
	Carrying(itemName string) bool
	HasVisited(placeName string) bool
}

// IsEmpty reports whether no condition is specified.
func (w When) IsEmpty() bool {
	return len(w.Attributes) == 0 &&
		len(w.Counters) == 0 &&
		len(w.Carrying) == 0 &&
		len(w.Visited) == 0
}

// EvaluateWhen checks if all conditions in a When clause are met
func EvaluateWhen(when When, view StateView) bool {
	// If no conditions specified, return false (an empty gate is an authoring error)
	if when.IsEmpty() {
		return false
	}

	for name, min := range when.Attributes {
		v, ok := view.Attribute(name)
		if !ok || v < min {
			return false
		}
	}

	for name, min := range when.Counters {
		if view.Counter(name) < min {
			return false
		}
	}

	for _, item := range when.Carrying {
		if !view.Carrying(item) {
			return false
		}
	}

	for _, place := range when.Visited {
		if !view.HasVisited(place) {
			return false
		}
	}

	return true
}
