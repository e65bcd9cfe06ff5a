package worlddef

import (
	"fmt"

	"github.com/jwebster45206/tale-engine/pkg/attributes"
	"github.com/jwebster45206/tale-engine/pkg/conditionals"
	"github.com/jwebster45206/tale-engine/pkg/event"
	"github.com/jwebster45206/tale-engine/pkg/world"
)

// Registry maps command names used in definitions to constructors of
// game-specific commands.
type Registry map[string]func() world.Command

// New constructs the named command.
func (r Registry) New(name string) (world.Command, error) {
	ctor, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return ctor(), nil
}

// Build validates a definition and constructs its world, with the player
// placed at the start location.
func Build(def *Definition, registry Registry) (*world.World, error) {
	if err := NewValidator(registry).Validate(def); err != nil {
		return nil, err
	}

	attrs, err := attributes.New(def.Suspense, def.Attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to create attributes: %w", err)
	}
	w, err := world.New(attrs)
	if err != nil {
		return nil, err
	}

	items := make(map[string]*world.Item, len(def.Items))
	for _, it := range def.Items {
		items[it.Name] = world.NewItem(it.Name, it.Description)
	}

	places := make(map[string]*world.Place, len(def.Places))
	for _, pd := range def.Places {
		p := w.AddPlace(pd.Name, pd.Description)
		for _, name := range pd.Items {
			p.Items = append(p.Items, items[name])
		}
		for _, ed := range pd.Events {
			p.AddEvents(buildEvent(ed))
		}
		for _, name := range pd.Commands {
			cmd, err := registry.New(name)
			if err != nil {
				return nil, fmt.Errorf("place %q: %w", pd.Name, err)
			}
			p.AddCommands(cmd)
		}
		places[pd.Name] = p
	}

	for _, pd := range def.Places {
		from := places[pd.Name]
		for _, td := range pd.Transitions {
			t := world.Transition{
				To:        places[td.To].ID(),
				Direction: td.Direction,
			}
			if td.Key != "" {
				t.Key = items[td.Key]
			}
			if td.When != nil {
				when := *td.When
				t.Condition = func(w *world.World) bool {
					return conditionals.EvaluateWhen(when, w)
				}
			}
			if err := w.Connect(from, td.Reverse, t); err != nil {
				return nil, fmt.Errorf("failed to connect %q: %w", pd.Name, err)
			}
		}
	}

	for _, name := range def.Inventory {
		w.Give(items[name])
	}

	if err := w.Start(places[def.Start].ID()); err != nil {
		return nil, fmt.Errorf("failed to start world: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("built world is invalid: %w", err)
	}
	return w, nil
}

func buildEvent(ed Event) *event.Event {
	delta := event.Scalar(0)
	switch {
	case ed.Delta != nil:
		delta = event.Scalar(*ed.Delta)
	case len(ed.Changes) > 0:
		delta = event.Changes(ed.Changes)
	}
	e := event.New(ed.Probability, ed.Message, delta, event.WithMaxOccurrences(ed.MaxOccurrences))
	for _, fb := range ed.Else {
		e.AddElse(buildEvent(fb))
	}
	return e
}
