package worlddef

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jwebster45206/tale-engine/pkg/world"
)

var (
	ErrInvalid        = errors.New("invalid world definition")
	ErrUnknownCommand = errors.New("unknown command")
)

// ValidationError lists every problem found in a definition.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s:\n%s", ErrInvalid, strings.Join(e.Problems, "\n"))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// Validator checks a definition against a command registry.
type Validator struct {
	registry Registry
	errors   []string
}

// NewValidator creates a validator. A nil registry accepts no commands.
func NewValidator(registry Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate returns a *ValidationError describing every problem, or nil.
func (v *Validator) Validate(def *Definition) error {
	v.errors = nil
	if def == nil {
		v.addError("definition is empty")
		return v.result()
	}

	if def.Suspense == "" {
		v.addError("suspense_attribute is required")
	} else if _, ok := def.Attributes[def.Suspense]; !ok {
		v.addError(fmt.Sprintf("suspense_attribute '%s' is not in attributes", def.Suspense))
	}

	items := make(map[string]bool)
	for _, it := range def.Items {
		if it.Name == "" {
			v.addError("item with empty name")
			continue
		}
		if items[it.Name] {
			v.addError(fmt.Sprintf("item '%s' defined more than once", it.Name))
		}
		items[it.Name] = true
	}

	places := make(map[string]bool)
	for _, p := range def.Places {
		if p.Name == "" {
			v.addError("place with empty name")
			continue
		}
		if places[p.Name] {
			v.addError(fmt.Sprintf("place '%s' defined more than once", p.Name))
		}
		places[p.Name] = true
	}

	if def.Start == "" {
		v.addError("start is required")
	} else if !places[def.Start] {
		v.addError(fmt.Sprintf("start place '%s' is not defined", def.Start))
	}

	// Each item may be placed exactly once: in one place or in the inventory.
	placed := make(map[string]string)
	place := func(name, where string) {
		if !items[name] {
			v.addError(fmt.Sprintf("%s references undefined item '%s'", where, name))
			return
		}
		if prev, ok := placed[name]; ok {
			v.addError(fmt.Sprintf("item '%s' placed in both %s and %s", name, prev, where))
			return
		}
		placed[name] = where
	}
	for _, name := range def.Inventory {
		place(name, "inventory")
	}

	for _, p := range def.Places {
		ctx := fmt.Sprintf("place '%s'", p.Name)
		for _, name := range p.Items {
			place(name, ctx)
		}
		for i, e := range p.Events {
			v.validateEvent(e, fmt.Sprintf("%s event %d", ctx, i+1), def.Attributes)
		}
		for _, c := range p.Commands {
			if _, ok := v.registry[c]; !ok {
				v.addError(fmt.Sprintf("%s uses unregistered command '%s'", ctx, c))
			}
		}
		for _, t := range p.Transitions {
			v.validateTransition(t, ctx, places, items)
		}
	}

	return v.result()
}

func (v *Validator) validateEvent(e Event, ctx string, attrs map[string]int) {
	if e.Probability < 0 || e.Probability > 1 {
		v.addError(fmt.Sprintf("%s has probability %v outside [0,1]", ctx, e.Probability))
	}
	if e.Delta != nil && len(e.Changes) > 0 {
		v.addError(fmt.Sprintf("%s sets both delta and changes", ctx))
	}
	if e.MaxOccurrences < 0 {
		v.addError(fmt.Sprintf("%s has negative max_occurrences", ctx))
	}
	for _, name := range slices.Sorted(maps.Keys(e.Changes)) {
		if _, ok := attrs[name]; !ok {
			v.addError(fmt.Sprintf("%s changes undefined attribute '%s'", ctx, name))
		}
	}
	for i, fb := range e.Else {
		v.validateEvent(fb, fmt.Sprintf("%s else %d", ctx, i+1), attrs)
	}
}

func (v *Validator) validateTransition(t Transition, ctx string, places, items map[string]bool) {
	if !places[t.To] {
		v.addError(fmt.Sprintf("%s has transition to undefined place '%s'", ctx, t.To))
	}
	if t.Key != "" && !items[t.Key] {
		v.addError(fmt.Sprintf("%s has transition keyed by undefined item '%s'", ctx, t.Key))
	}
	if t.Direction != "" && t.Reverse && world.OppositeDirection(t.Direction) == "" {
		v.addError(fmt.Sprintf("%s has reversible transition with direction '%s' that has no opposite", ctx, t.Direction))
	}
	if t.When != nil {
		if t.When.IsEmpty() {
			v.addError(fmt.Sprintf("%s has empty 'when' clause - no conditions specified (to '%s')", ctx, t.To))
		}
		for _, name := range t.When.Carrying {
			if !items[name] {
				v.addError(fmt.Sprintf("%s 'when' requires undefined item '%s'", ctx, name))
			}
		}
		for _, name := range t.When.Visited {
			if !places[name] {
				v.addError(fmt.Sprintf("%s 'when' requires visiting undefined place '%s'", ctx, name))
			}
		}
	}
}

func (v *Validator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func (v *Validator) result() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.errors}
}
