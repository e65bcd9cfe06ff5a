package event

import (
	"fmt"
	"maps"

	"github.com/jwebster45206/tale-engine/pkg/attributes"
)

// Roller is the random source used to roll events.
// *math/rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// Delta is an attribute change applied when an event fires.
// A scalar delta targets the suspense attribute; a mapped delta targets named attributes.
type Delta struct {
	amount  int
	changes map[string]int
}

// Scalar returns a delta applied to the suspense attribute.
func Scalar(amount int) Delta {
	return Delta{amount: amount}
}

// Changes returns a delta applied to several named attributes at once.
func Changes(changes map[string]int) Delta {
	return Delta{changes: maps.Clone(changes)}
}

// IsScalar reports whether the delta targets the suspense attribute.
func (d Delta) IsScalar() bool {
	return d.changes == nil
}

// Amount is the scalar amount. Zero for mapped deltas.
func (d Delta) Amount() int {
	return d.amount
}

// Attributes returns a copy of the mapped changes. Nil for scalar deltas.
func (d Delta) Attributes() map[string]int {
	return maps.Clone(d.changes)
}

// Apply writes the delta into the store.
func (d Delta) Apply(store *attributes.Store) {
	if d.IsScalar() {
		store.Add(store.Suspense(), d.amount)
		return
	}
	for name, v := range d.changes {
		store.Add(name, v)
	}
}

// Event is a probabilistic ambient trigger with an optional fallback chain.
type Event struct {
	Probability    float64
	Message        string
	Delta          Delta
	MaxOccurrences int // 0 means unlimited

	occurrences int
	fallbacks   []*Event
}

// Option configures an Event.
type Option func(*Event)

// WithMaxOccurrences caps how many times the event may fire.
func WithMaxOccurrences(n int) Option {
	return func(e *Event) {
		e.MaxOccurrences = n
	}
}

// New creates an event firing with probability p.
func New(p float64, message string, delta Delta, opts ...Option) *Event {
	e := &Event{
		Probability: p,
		Message:     message,
		Delta:       delta,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks the probability and cap of the event and its whole chain.
func (e *Event) Validate() error {
	if e.Probability < 0 || e.Probability > 1 {
		return fmt.Errorf("event %q: probability %v outside [0,1]", e.Message, e.Probability)
	}
	if e.MaxOccurrences < 0 {
		return fmt.Errorf("event %q: max occurrences cannot be negative", e.Message)
	}
	for _, fb := range e.fallbacks {
		if err := fb.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AddElse appends events to the fallback chain. They are tried in order
// only when this event rolls and does not fire.
func (e *Event) AddElse(events ...*Event) *Event {
	e.fallbacks = append(e.fallbacks, events...)
	return e
}

// Fallbacks returns the fallback chain in declared order.
func (e *Event) Fallbacks() []*Event {
	return e.fallbacks
}

// Occurrences returns how many times the event has fired.
func (e *Event) Occurrences() int {
	return e.occurrences
}

// Capped reports whether the event has used up its firing cap.
func (e *Event) Capped() bool {
	return e.MaxOccurrences > 0 && e.occurrences >= e.MaxOccurrences
}

// Evaluate runs one step of the cascade. A capped event is inert: it consumes
// no roll and does not consult its own fallbacks. Otherwise it fires when the
// roll is below its probability, or defers to its fallbacks in order. The
// cascade stops at the first entry that fires or at the first capped entry.
//
// Probabilities are independent trials, not weights of a single draw.
func (e *Event) Evaluate(store *attributes.Store, rng Roller) (string, bool) {
	msg, fired, _ := e.cascade(store, rng)
	return msg, fired
}

// cascade reports halted when a capped entry ended the walk down the chain.
func (e *Event) cascade(store *attributes.Store, rng Roller) (msg string, fired, halted bool) {
	if e.Capped() {
		return "", false, true
	}
	if rng.Float64() < e.Probability {
		e.Delta.Apply(store)
		e.occurrences++
		return e.Message, true, false
	}
	for _, fb := range e.fallbacks {
		msg, fired, halted := fb.cascade(store, rng)
		if fired || halted {
			return msg, fired, halted
		}
	}
	return "", false, false
}

// Tick evaluates every event slot once, independently, and returns the
// messages of the events that fired in slot order.
func Tick(events []*Event, store *attributes.Store, rng Roller) []string {
	var fired []string
	for _, e := range events {
		if msg, ok := e.Evaluate(store, rng); ok {
			fired = append(fired, msg)
		}
	}
	return fired
}
