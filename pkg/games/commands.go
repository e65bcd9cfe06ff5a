package games

import (
	"fmt"

	"github.com/jwebster45206/tale-engine/pkg/command"
	"github.com/jwebster45206/tale-engine/pkg/world"
)

// Dice returns a uniform integer in [0,n). *math/rand/v2.Rand satisfies it.
type Dice interface {
	IntN(n int) int
}

const (
	FriendVisitsCounter = "friend_visits"
	friendPatience      = 3
)

// VisitFriends spends time with friends in the lounge. Friends tire of the
// captain after a few visits.
type VisitFriends struct {
	command.Base
}

func NewVisitFriends() *VisitFriends {
	return &VisitFriends{Base: command.NewBase("Visit with some friends")}
}

func (c *VisitFriends) Execute(w *world.World) world.CommandResult {
	visits := w.IncrementCounter(FriendVisitsCounter)

	msg := "You visit with friends and have a few laughs."
	change := 10
	if visits > friendPatience {
		msg = "Your friends are tired of you. They make excuses and leave."
		change = -5
	}
	w.Attributes().Add("Health", change)
	return world.CommandResult{Message: msg}
}

const (
	gamingSkillGain = 5
	minHappiness    = -10
	maxHappiness    = 20
)

// PlayVideoGames trades time for gaming skill and a random swing in happiness.
type PlayVideoGames struct {
	command.Base
	dice Dice
}

func NewPlayVideoGames(dice Dice) *PlayVideoGames {
	return &PlayVideoGames{Base: command.NewBase("Play video games"), dice: dice}
}

func (c *PlayVideoGames) Execute(w *world.World) world.CommandResult {
	happiness := c.dice.IntN(maxHappiness-minHappiness+1) + minHappiness

	attrs := w.Attributes()
	attrs.Add("Gaming Skill", gamingSkillGain)
	attrs.Add("Happiness", happiness)

	const opening = "You sit down and take the controller. You"
	switch {
	case happiness > 0:
		return world.CommandResult{Message: fmt.Sprintf("%s won! You gain %d gaming skill and %d happiness.", opening, gamingSkillGain, happiness)}
	case happiness < 0:
		return world.CommandResult{Message: fmt.Sprintf("%s lost. You gain %d gaming skill but lose %d happiness.", opening, gamingSkillGain, -happiness)}
	default:
		return world.CommandResult{Message: opening + " tied."}
	}
}
