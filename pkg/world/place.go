package world

import (
	"fmt"

	"github.com/jwebster45206/tale-engine/pkg/event"
)

// PlaceID addresses a place within its world.
type PlaceID int

// Slot is one entry of a place's event list: either an ambient event or a
// player-invokable command, never both.
type Slot struct {
	event   *event.Event
	command Command
}

// EventSlot wraps an ambient event.
func EventSlot(e *event.Event) Slot {
	return Slot{event: e}
}

// CommandSlot wraps a player-invokable command.
func CommandSlot(c Command) Slot {
	return Slot{command: c}
}

// Event returns the slot's event, if it holds one.
func (s Slot) Event() (*event.Event, bool) {
	return s.event, s.event != nil
}

// Command returns the slot's command, if it holds one.
func (s Slot) Command() (Command, bool) {
	return s.command, s.command != nil
}

// Place is a location node in the world graph.
type Place struct {
	id          PlaceID
	Name        string
	Description string
	Items       []*Item

	slots       []Slot
	transitions []Transition
}

// ID returns the place's identifier within its world.
func (p *Place) ID() PlaceID {
	return p.id
}

// AddEvents appends ambient events to the place's slots.
func (p *Place) AddEvents(events ...*event.Event) *Place {
	for _, e := range events {
		p.slots = append(p.slots, EventSlot(e))
	}
	return p
}

// AddCommands appends player-invokable commands to the place's slots.
func (p *Place) AddCommands(commands ...Command) *Place {
	for _, c := range commands {
		p.slots = append(p.slots, CommandSlot(c))
	}
	return p
}

// Slots returns the place's slots in declared order.
func (p *Place) Slots() []Slot {
	return p.slots
}

// Events returns the ambient events attached to the place, in slot order.
func (p *Place) Events() []*event.Event {
	var events []*event.Event
	for _, s := range p.slots {
		if e, ok := s.Event(); ok {
			events = append(events, e)
		}
	}
	return events
}

// SelectableCommands returns the place's commands that have a description.
func (p *Place) SelectableCommands() []Command {
	var cmds []Command
	for _, s := range p.slots {
		if c, ok := s.Command(); ok && Selectable(c) {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// Transitions returns the outgoing transitions in declared order.
func (p *Place) Transitions() []Transition {
	return p.transitions
}

// FindItem returns the first item here whose name contains target, ignoring case.
func (p *Place) FindItem(target string) *Item {
	return findItem(p.Items, target)
}

func (p *Place) String() string {
	return fmt.Sprintf("%s (#%d)", p.Name, p.id)
}
