// Package game runs the presenter loop: ambient events, loss check, input,
// execution and rendering, one cycle per player action.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/jwebster45206/tale-engine/pkg/event"
	"github.com/jwebster45206/tale-engine/pkg/input"
	"github.com/jwebster45206/tale-engine/pkg/world"
)

// View is the output surface the loop renders through.
type View interface {
	RenderScene(description string, exits []string, items []string)
	RenderPlayerState(inventory []string, attributes string)
	RenderMessage(text string)
}

// Outcome is how a game ended.
type Outcome int

const (
	OutcomeQuit Outcome = iota // A command ended the game
	OutcomeLost                // The suspense attribute ran out
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	default:
		return "quit"
	}
}

type globalRoller struct{}

func (globalRoller) Float64() float64 { return rand.Float64() }

// Game owns one play session.
type Game struct {
	world    *world.World
	strategy input.Strategy
	view     View
	rng      event.Roller
	logger   *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithRoller sets the random source for ambient events.
func WithRoller(rng event.Roller) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a game over a validated world.
func New(w *world.World, strategy input.Strategy, view View, opts ...Option) (*Game, error) {
	if w == nil || strategy == nil || view == nil {
		return nil, fmt.Errorf("world, strategy and view are required")
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	g := &Game{
		world:    w,
		strategy: strategy,
		view:     view,
		rng:      globalRoller{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// World returns the game's world.
func (g *Game) World() *world.World {
	return g.world
}

// Play renders the opening scene and loops until the game ends.
// It blocks while the strategy waits for player input.
func (g *Game) Play() Outcome {
	g.logger.Info("Game started", "place", g.world.Location().Name)
	g.renderFullScene()

	outcome := OutcomeQuit
	for g.world.Running() {
		if g.step() {
			outcome = OutcomeLost
		}
	}

	g.logger.Info("Game ended", "outcome", outcome.String(), "place", g.world.Location().Name)
	return outcome
}

// step runs one iteration of the loop and reports whether the game was lost.
func (g *Game) step() bool {
	here := g.world.Location()
	attrs := g.world.Attributes()

	for _, msg := range event.Tick(here.Events(), attrs, g.rng) {
		g.logger.Debug("Event fired", "place", here.Name, "message", msg)
		g.view.RenderMessage(msg)
	}

	if attrs.Depleted() {
		g.logger.Info("Suspense attribute depleted",
			"attribute", attrs.Suspense(),
			"value", attrs.SuspenseValue())
		g.view.RenderMessage(fmt.Sprintf("Your %s is at 0. You lose.", attrs.Suspense()))
		g.world.Stop()
		return true
	}

	cmd := g.strategy.Next(g.world)
	if cmd == nil {
		return false
	}

	g.logger.Debug("Executing command", "command", cmd.Description(), "place", here.Name)
	result := cmd.Execute(g.world)

	if result.GameOver {
		g.world.Stop()
	}
	if result.LocationChanged {
		if now := g.world.Location(); now != here {
			g.logger.Debug("Location changed", "from", here.Name, "to", now.Name)
		}
		g.renderFullScene()
	}
	g.view.RenderMessage(result.Message)
	return false
}

func (g *Game) renderFullScene() {
	place := g.world.Location()
	exits := make([]string, 0, len(place.Transitions()))
	for _, t := range place.Transitions() {
		dest := g.world.Destination(t)
		if dest == nil {
			continue
		}
		label := dest.Name
		if t.Direction != "" {
			label += fmt.Sprintf(" (%s)", t.Direction)
		}
		exits = append(exits, label)
	}
	g.view.RenderScene(place.Description, exits, world.ItemNames(place.Items))
	g.view.RenderPlayerState(world.ItemNames(g.world.Inventory()), g.world.Attributes().String())
}
