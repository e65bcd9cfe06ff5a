package attributes

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrMissingSuspense = errors.New("suspense attribute not in store")

// Store holds the player's named numeric counters.
// One attribute is the suspense attribute: when it drops to zero or below the game is lost.
type Store struct {
	values   map[string]int
	suspense string
}

// New creates a store from initial values. The suspense attribute must be present.
func New(suspense string, initial map[string]int) (*Store, error) {
	if suspense == "" {
		return nil, fmt.Errorf("suspense attribute name cannot be empty")
	}
	if _, ok := initial[suspense]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingSuspense, suspense)
	}
	return &Store{
		values:   maps.Clone(initial),
		suspense: suspense,
	}, nil
}

// Suspense returns the name of the suspense attribute.
func (s *Store) Suspense() string {
	return s.suspense
}

// SuspenseValue returns the current value of the suspense attribute.
func (s *Store) SuspenseValue() int {
	return s.values[s.suspense]
}

// Depleted reports whether the suspense attribute has reached zero or below.
func (s *Store) Depleted() bool {
	return s.SuspenseValue() <= 0
}

// Get returns an attribute value and whether it exists.
func (s *Store) Get(name string) (int, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Add applies a delta to an attribute. Unknown attributes start at zero.
func (s *Store) Add(name string, delta int) {
	s.values[name] += delta
}

// Set overwrites an attribute value.
func (s *Store) Set(name string, value int) {
	s.values[name] = value
}

// Names returns attribute names in sorted order.
func (s *Store) Names() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// String renders the store as "Name: value" pairs, sorted by name.
func (s *Store) String() string {
	parts := make([]string, 0, len(s.values))
	for _, name := range s.Names() {
		parts = append(parts, fmt.Sprintf("%s: %d", name, s.values[name]))
	}
	return strings.Join(parts, ", ")
}
