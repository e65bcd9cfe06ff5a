// Package input turns a raw player choice into a command.
//
// Strategies query the world but never mutate it. A nil command means the
// caller should prompt again.
package input

import (
	"github.com/jwebster45206/tale-engine/pkg/command"
	"github.com/jwebster45206/tale-engine/pkg/world"
)

// Strategy resolves the player's next choice into a command.
type Strategy interface {
	Next(w *world.World) world.Command
}

// MenuSurface shows numbered choices and returns the one picked.
type MenuSurface interface {
	MenuChoice(choices []world.Command) world.Command
}

// TextSurface reads raw command lines and can report problems back.
type TextSurface interface {
	RawCommand() string
	RenderMessage(text string)
}

// Menu offers every currently legal action as a numbered choice.
type Menu struct {
	surface MenuSurface
}

// NewMenu creates a menu strategy over a surface.
func NewMenu(surface MenuSurface) *Menu {
	return &Menu{surface: surface}
}

// Choices enumerates the legal actions at the current place. Moves are listed
// for every transition; accessibility is checked when the move executes.
func (m *Menu) Choices(w *world.World) []world.Command {
	here := w.Location()
	var choices []world.Command
	for _, t := range here.Transitions() {
		choices = append(choices, command.NewMove(w, t))
	}
	for _, it := range here.Items {
		choices = append(choices, command.NewTake(it))
	}
	for _, it := range w.Inventory() {
		choices = append(choices, command.NewDrop(it))
	}
	choices = append(choices, here.SelectableCommands()...)
	choices = append(choices, command.NewQuit())
	return choices
}

// Next implements Strategy.
func (m *Menu) Next(w *world.World) world.Command {
	return m.surface.MenuChoice(m.Choices(w))
}
