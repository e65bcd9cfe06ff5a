package command

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/tale-engine/pkg/world"
)

const (
	MsgCantGo         = "You can't go that way right now."
	MsgNothingCarried = "You aren't carrying anything."
	MsgGoodbye        = "Goodbye!"
	carryingPrefix    = "You are carrying: "
)

// HelpText is the static verb list shown by Help.
const HelpText = "Available commands:\n" +
	"  - go [direction/place]\n" +
	"  - look / look [item]\n" +
	"  - take [item]\n" +
	"  - drop [item]\n" +
	"  - inventory (or i)\n" +
	"  - help\n" +
	"  - quit"

// Base carries the menu description shared by every command.
// Game-specific commands embed it.
type Base struct {
	description string
}

// NewBase returns a Base with the given description. An empty description
// keeps the command out of menus.
func NewBase(description string) Base {
	return Base{description: description}
}

// Description implements world.Command.
func (b Base) Description() string {
	return b.description
}

// Move follows a transition when it is accessible.
type Move struct {
	Base
	Transition world.Transition
}

// NewMove creates a Move described by its destination.
func NewMove(w *world.World, t world.Transition) *Move {
	desc := "Go"
	if dest := w.Destination(t); dest != nil {
		desc = "Go to " + dest.Name
	}
	return &Move{Base: NewBase(desc), Transition: t}
}

// Execute moves the player if the transition is accessible.
func (c *Move) Execute(w *world.World) world.CommandResult {
	if !c.Transition.Accessible(w) {
		return world.CommandResult{Message: MsgCantGo}
	}
	if err := w.MoveTo(c.Transition.To); err != nil {
		return world.CommandResult{Message: MsgCantGo}
	}
	return world.CommandResult{LocationChanged: true}
}

// Take moves an item from the current place into the inventory.
type Take struct {
	Base
	Item *world.Item
}

// NewTake creates a Take for an item at the current place.
func NewTake(item *world.Item) *Take {
	return &Take{Base: NewBase("Take " + item.Name), Item: item}
}

// Execute picks the item up. An item that is no longer here is left alone.
func (c *Take) Execute(w *world.World) world.CommandResult {
	if !w.Pickup(c.Item) {
		return world.CommandResult{Message: notHere(c.Item.Name)}
	}
	return world.CommandResult{Message: fmt.Sprintf("You take the %s.", c.Item.Name)}
}

// Drop moves an item from the inventory into the current place.
type Drop struct {
	Base
	Item *world.Item
}

// NewDrop creates a Drop for a carried item.
func NewDrop(item *world.Item) *Drop {
	return &Drop{Base: NewBase("Drop " + item.Name), Item: item}
}

// Execute puts the item down at the current place.
func (c *Drop) Execute(w *world.World) world.CommandResult {
	if !w.PutDown(c.Item) {
		return world.CommandResult{Message: fmt.Sprintf("You aren't carrying the %s.", c.Item.Name)}
	}
	return world.CommandResult{Message: fmt.Sprintf("You drop the %s.", c.Item.Name)}
}

// Inventory lists the carried items.
type Inventory struct {
	Base
}

// NewInventory creates an Inventory command.
func NewInventory() *Inventory {
	return &Inventory{Base: NewBase("Check inventory")}
}

// Execute lists the carried items.
func (c *Inventory) Execute(w *world.World) world.CommandResult {
	inv := w.Inventory()
	if len(inv) == 0 {
		return world.CommandResult{Message: MsgNothingCarried}
	}
	return world.CommandResult{Message: carryingPrefix + strings.Join(world.ItemNames(inv), ", ")}
}

// Look redraws the scene, or describes an item when given a target.
type Look struct {
	Base
	Target string
}

// NewLook creates a Look. An empty target redraws the scene.
func NewLook(target string) *Look {
	desc := "Look around"
	if target != "" {
		desc = "Look at " + target
	}
	return &Look{Base: NewBase(desc), Target: target}
}

// Execute describes the target, or asks for a full redraw.
func (c *Look) Execute(w *world.World) world.CommandResult {
	if c.Target == "" {
		return world.CommandResult{LocationChanged: true}
	}
	// Place items are searched before the inventory.
	if it := w.Location().FindItem(c.Target); it != nil {
		return world.CommandResult{Message: it.Description}
	}
	if it := w.FindCarried(c.Target); it != nil {
		return world.CommandResult{Message: it.Description}
	}
	return world.CommandResult{Message: notHere(c.Target)}
}

// Help lists the recognized verbs.
type Help struct {
	Base
}

// NewHelp creates a Help command.
func NewHelp() *Help {
	return &Help{Base: NewBase("Show help")}
}

// Execute returns HelpText.
func (c *Help) Execute(*world.World) world.CommandResult {
	return world.CommandResult{Message: HelpText}
}

// Quit ends the game.
type Quit struct {
	Base
}

// NewQuit creates a Quit command.
func NewQuit() *Quit {
	return &Quit{Base: NewBase("Quit game")}
}

// Execute says goodbye and ends the game.
func (c *Quit) Execute(*world.World) world.CommandResult {
	return world.CommandResult{Message: MsgGoodbye, GameOver: true}
}

func notHere(target string) string {
	return fmt.Sprintf("You don't see a '%s' here.", target)
}
