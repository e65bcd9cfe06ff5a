package world

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jwebster45206/tale-engine/pkg/attributes"
)

var (
	ErrUnknownPlace  = errors.New("unknown place")
	ErrNoAttributes  = errors.New("world has no attribute store")
	ErrDuplicateItem = errors.New("item appears in more than one location")
	ErrNotStarted    = errors.New("world has no current place")
)

// World is the mutable game state: the place graph, the player's position,
// attributes and inventory.
type World struct {
	places    []*Place
	current   PlaceID
	started   bool
	attrs     *attributes.Store
	inventory []*Item
	counters  map[string]int
	visited   map[PlaceID]bool
	running   bool
}

// New creates an empty world around an attribute store.
func New(attrs *attributes.Store) (*World, error) {
	if attrs == nil {
		return nil, ErrNoAttributes
	}
	return &World{
		attrs:    attrs,
		counters: make(map[string]int),
		visited:  make(map[PlaceID]bool),
	}, nil
}

// AddPlace creates a place in the world. An empty description defaults to
// "You are in <name>."
func (w *World) AddPlace(name, description string, items ...*Item) *Place {
	if description == "" {
		description = fmt.Sprintf("You are in %s.", name)
	}
	p := &Place{
		id:          PlaceID(len(w.places)),
		Name:        name,
		Description: description,
		Items:       items,
	}
	w.places = append(w.places, p)
	return p
}

// Place returns the place with the given ID, or nil.
func (w *World) Place(id PlaceID) *Place {
	if id < 0 || int(id) >= len(w.places) {
		return nil
	}
	return w.places[id]
}

// Places returns all places in creation order.
func (w *World) Places() []*Place {
	return w.places
}

// PlaceByName returns the first place with the given name, ignoring case.
func (w *World) PlaceByName(name string) *Place {
	for _, p := range w.places {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// Connect adds transitions leaving from. With reverse set, each destination
// also gets a transition back to from, labelled with the opposite direction.
func (w *World) Connect(from *Place, reverse bool, transitions ...Transition) error {
	if from == nil || w.Place(from.id) != from {
		return fmt.Errorf("%w: source place not in world", ErrUnknownPlace)
	}
	for _, t := range transitions {
		to := w.Place(t.To)
		if to == nil {
			return fmt.Errorf("%w: transition from %q to #%d", ErrUnknownPlace, from.Name, t.To)
		}
		from.transitions = append(from.transitions, t)
		if reverse {
			to.transitions = append(to.transitions, Transition{
				To:        from.id,
				Direction: OppositeDirection(t.Direction),
			})
		}
	}
	return nil
}

// Destination returns the place a transition leads to.
func (w *World) Destination(t Transition) *Place {
	return w.Place(t.To)
}

// Start places the player at id and sets the world running.
func (w *World) Start(id PlaceID) error {
	if err := w.MoveTo(id); err != nil {
		return err
	}
	w.started = true
	w.running = true
	return nil
}

// MoveTo changes the player's current place.
func (w *World) MoveTo(id PlaceID) error {
	if w.Place(id) == nil {
		return fmt.Errorf("%w: #%d", ErrUnknownPlace, id)
	}
	w.current = id
	w.visited[id] = true
	return nil
}

// Location returns the player's current place.
func (w *World) Location() *Place {
	return w.Place(w.current)
}

// Attributes returns the player's attribute store.
func (w *World) Attributes() *attributes.Store {
	return w.attrs
}

// Running reports whether the game is still in progress.
func (w *World) Running() bool {
	return w.running
}

// Stop ends the game.
func (w *World) Stop() {
	w.running = false
}

// Inventory returns the carried items. The slice must not be modified.
func (w *World) Inventory() []*Item {
	return w.inventory
}

// Give puts an item directly into the inventory. Used when setting up a game.
func (w *World) Give(items ...*Item) {
	w.inventory = append(w.inventory, items...)
}

// Holds reports whether this exact item is in the inventory.
func (w *World) Holds(item *Item) bool {
	return slices.Contains(w.inventory, item)
}

// FindCarried returns the first carried item whose name contains target, ignoring case.
func (w *World) FindCarried(target string) *Item {
	return findItem(w.inventory, target)
}

// Pickup moves an item from the current place into the inventory.
// It reports false and changes nothing if the item is not here.
func (w *World) Pickup(item *Item) bool {
	here := w.Location()
	rest, ok := removeItem(here.Items, item)
	if !ok {
		return false
	}
	here.Items = rest
	w.inventory = append(w.inventory, item)
	return true
}

// PutDown moves an item from the inventory into the current place.
// It reports false and changes nothing if the item is not carried.
func (w *World) PutDown(item *Item) bool {
	rest, ok := removeItem(w.inventory, item)
	if !ok {
		return false
	}
	w.inventory = rest
	here := w.Location()
	here.Items = append(here.Items, item)
	return true
}

// Counter returns a game-specific counter. Unknown counters are zero.
func (w *World) Counter(name string) int {
	return w.counters[name]
}

// IncrementCounter adds one to a counter and returns the new value.
func (w *World) IncrementCounter(name string) int {
	w.counters[name]++
	return w.counters[name]
}

// Counters returns a copy of all counters.
func (w *World) Counters() map[string]int {
	return maps.Clone(w.counters)
}

// Attribute implements conditionals.StateView.
func (w *World) Attribute(name string) (int, bool) {
	return w.attrs.Get(name)
}

// Carrying implements conditionals.StateView. Names match exactly, ignoring case.
func (w *World) Carrying(itemName string) bool {
	for _, it := range w.inventory {
		if strings.EqualFold(it.Name, itemName) {
			return true
		}
	}
	return false
}

// HasVisited implements conditionals.StateView.
func (w *World) HasVisited(placeName string) bool {
	p := w.PlaceByName(placeName)
	return p != nil && w.visited[p.id]
}

// Validate checks the world's structural invariants: every transition leads
// to a place in the graph, every item is in at most one location, the
// suspense attribute exists and event definitions are well formed.
func (w *World) Validate() error {
	if w.attrs == nil {
		return ErrNoAttributes
	}
	if _, ok := w.attrs.Get(w.attrs.Suspense()); !ok {
		return fmt.Errorf("%w: %q", attributes.ErrMissingSuspense, w.attrs.Suspense())
	}
	if !w.started {
		return ErrNotStarted
	}

	seen := make(map[*Item]string)
	claim := func(it *Item, where string) error {
		if prev, ok := seen[it]; ok {
			return fmt.Errorf("%w: %q in %s and %s", ErrDuplicateItem, it.Name, prev, where)
		}
		seen[it] = where
		return nil
	}
	for _, it := range w.inventory {
		if err := claim(it, "inventory"); err != nil {
			return err
		}
	}

	for _, p := range w.places {
		for _, t := range p.transitions {
			if w.Place(t.To) == nil {
				return fmt.Errorf("%w: transition from %q to #%d", ErrUnknownPlace, p.Name, t.To)
			}
		}
		for _, it := range p.Items {
			if err := claim(it, p.Name); err != nil {
				return err
			}
		}
		for _, e := range p.Events() {
			if err := e.Validate(); err != nil {
				return fmt.Errorf("place %q: %w", p.Name, err)
			}
		}
	}
	return nil
}
