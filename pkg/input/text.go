package input

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/tale-engine/pkg/command"
	"github.com/jwebster45206/tale-engine/pkg/world"
)

type verb string

const (
	verbTake      verb = "take"
	verbDrop      verb = "drop"
	verbInventory verb = "inventory"
	verbLook      verb = "look"
	verbHelp      verb = "help"
	verbQuit      verb = "quit"
)

var verbs = map[string]verb{
	"take":      verbTake,
	"get":       verbTake,
	"drop":      verbDrop,
	"inventory": verbInventory,
	"inv":       verbInventory,
	"i":         verbInventory,
	"look":      verbLook,
	"help":      verbHelp,
	"quit":      verbQuit,
	"exit":      verbQuit,
}

var quitWords = map[string]bool{
	"quit": true,
	"exit": true,
	"bye":  true,
}

var directions = map[string]string{
	"n":         "north",
	"s":         "south",
	"e":         "east",
	"w":         "west",
	"u":         "up",
	"d":         "down",
	"ne":        "northeast",
	"nw":        "northwest",
	"se":        "southeast",
	"sw":        "southwest",
	"north":     "north",
	"south":     "south",
	"east":      "east",
	"west":      "west",
	"up":        "up",
	"down":      "down",
	"northeast": "northeast",
	"northwest": "northwest",
	"southeast": "southeast",
	"southwest": "southwest",
	"in":        "in",
	"out":       "out",
}

// Text parses typed commands.
type Text struct {
	surface TextSurface
}

// NewText creates a free-text strategy over a surface.
func NewText(surface TextSurface) *Text {
	return &Text{surface: surface}
}

// Next implements Strategy. Blank lines, unknown directions and targetless
// take/drop are answered in place and read again; anything else unresolved
// returns nil.
func (s *Text) Next(w *world.World) world.Command {
	for {
		raw := strings.ToLower(strings.TrimSpace(s.surface.RawCommand()))
		if raw == "" {
			continue
		}
		cmd, retry := s.resolve(w, raw)
		if retry {
			continue
		}
		return cmd
	}
}

// resolve maps one line to a command. retry is set when a message has been
// rendered and the player should be asked again.
func (s *Text) resolve(w *world.World, raw string) (cmd world.Command, retry bool) {
	verbWord, target, _ := strings.Cut(raw, " ")
	target = strings.TrimSpace(target)
	here := w.Location()

	if quitWords[verbWord] {
		return command.NewQuit(), false
	}

	dir, ok := directions[verbWord]
	if !ok && verbWord == "go" {
		dir, ok = directions[target]
	}
	if ok {
		for _, t := range here.Transitions() {
			if t.Direction == dir {
				return command.NewMove(w, t), false
			}
		}
		s.surface.RenderMessage(fmt.Sprintf("You can't go %s.", dir))
		return nil, true
	}

	if verbWord == "go" {
		if target == "" {
			s.surface.RenderMessage("Go where?")
			return nil, true
		}
		for _, t := range here.Transitions() {
			if dest := w.Destination(t); dest != nil && world.ContainsFold(dest.Name, target) {
				return command.NewMove(w, t), false
			}
		}
		s.surface.RenderMessage(fmt.Sprintf("You can't go to a place called '%s'.", target))
		return nil, true
	}

	if v, ok := verbs[verbWord]; ok {
		switch v {
		case verbLook:
			return command.NewLook(target), false
		case verbInventory:
			return command.NewInventory(), false
		case verbHelp:
			return command.NewHelp(), false
		case verbQuit:
			return command.NewQuit(), false
		case verbTake, verbDrop:
			if target == "" {
				s.surface.RenderMessage(fmt.Sprintf("What do you want to %s?", verbWord))
				return nil, true
			}
			if v == verbTake {
				if it := here.FindItem(target); it != nil {
					return command.NewTake(it), false
				}
			} else if it := w.FindCarried(target); it != nil {
				return command.NewDrop(it), false
			}
			// No such item: fall through to the place's own commands.
		}
	}

	for _, c := range here.SelectableCommands() {
		if world.ContainsFold(c.Description(), raw) {
			return c, false
		}
	}
	return nil, false
}
