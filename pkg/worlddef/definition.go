// Package worlddef loads declarative world definitions and builds them into
// a playable world.
package worlddef

import (
	"github.com/jwebster45206/tale-engine/pkg/conditionals"
)

// Definition is the serializable description of a game world.
type Definition struct {
	Title        string         `json:"title" yaml:"title"`
	Introduction string         `json:"introduction,omitempty" yaml:"introduction,omitempty"`
	Suspense     string         `json:"suspense_attribute" yaml:"suspense_attribute"` // Attribute whose depletion loses the game
	Attributes   map[string]int `json:"attributes" yaml:"attributes"`                 // Initial attribute values
	Start        string         `json:"start" yaml:"start"`                           // Name of the opening place
	Inventory    []string       `json:"inventory,omitempty" yaml:"inventory,omitempty"`
	Items        []Item         `json:"items,omitempty" yaml:"items,omitempty"`
	Places       []Place        `json:"places" yaml:"places"`
}

// Item defines a portable item. Items are placed by name from a place or the inventory.
type Item struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Place defines a location.
type Place struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []string     `json:"items,omitempty" yaml:"items,omitempty"`
	Events      []Event      `json:"events,omitempty" yaml:"events,omitempty"`
	Commands    []string     `json:"commands,omitempty" yaml:"commands,omitempty"` // Registered game-specific commands
	Transitions []Transition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// Event defines an ambient event and its fallback chain.
// Delta applies to the suspense attribute; Changes applies to named attributes.
// At most one of them may be set.
type Event struct {
	Probability    float64        `json:"probability" yaml:"probability"`
	Message        string         `json:"message" yaml:"message"`
	Delta          *int           `json:"delta,omitempty" yaml:"delta,omitempty"`
	Changes        map[string]int `json:"changes,omitempty" yaml:"changes,omitempty"`
	MaxOccurrences int            `json:"max_occurrences,omitempty" yaml:"max_occurrences,omitempty"`
	Else           []Event        `json:"else,omitempty" yaml:"else,omitempty"`
}

// Transition defines a one-way edge. Reverse also creates the way back.
type Transition struct {
	To        string             `json:"to" yaml:"to"`
	Direction string             `json:"direction,omitempty" yaml:"direction,omitempty"`
	Key       string             `json:"key,omitempty" yaml:"key,omitempty"`   // Item that must be carried
	When      *conditionals.When `json:"when,omitempty" yaml:"when,omitempty"` // Conditions that must hold
	Reverse   bool               `json:"reverse,omitempty" yaml:"reverse,omitempty"`
}
