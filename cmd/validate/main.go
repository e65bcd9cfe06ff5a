package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/tale-engine/pkg/games"
	"github.com/jwebster45206/tale-engine/pkg/worlddef"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.yaml|world.json>...\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		if err := validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

func validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if !isValidFilename(nameWithoutExt) {
		return fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., my_world.yaml, not my-world.yaml or MyWorld.yaml)", baseName)
	}

	def, err := worlddef.LoadFile(filename)
	if err != nil {
		return err
	}

	// Commands are only looked up by name here, so no dice are needed.
	if err := worlddef.NewValidator(games.Registry(nil)).Validate(def); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidFilename(name string) bool {
	// Allow 'x.' prefix for experimental worlds
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
