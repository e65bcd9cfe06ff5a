package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"slices"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/tale-engine/internal/config"
	"github.com/jwebster45206/tale-engine/internal/logger"
	"github.com/jwebster45206/tale-engine/pkg/game"
	"github.com/jwebster45206/tale-engine/pkg/games"
	"github.com/jwebster45206/tale-engine/pkg/input"
	"github.com/jwebster45206/tale-engine/pkg/view"
	"github.com/jwebster45206/tale-engine/pkg/worlddef"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log, _ := logger.WithSessionID(logger.Setup(cfg, logOut))

	if err := run(cfg, log); err != nil {
		if errors.Is(err, view.ErrPickCanceled) {
			return
		}
		logger.WithError(log, err).Error("Game failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	log.Debug("Random source ready", "seed", seed)

	def, err := loadDefinition(cfg.Game)
	if err != nil {
		return err
	}
	w, err := worlddef.Build(def, games.Registry(rng))
	if err != nil {
		return fmt.Errorf("failed to build world %q: %w", def.Title, err)
	}

	mode, err := chooseMode(cfg.Mode)
	if err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	console := view.NewConsole(os.Stdin, os.Stdout,
		view.WithWidth(cfg.WrapWidth),
		view.WithColor(cfg.Color),
		view.WithInterrupt(interrupt))

	var strategy input.Strategy = input.NewText(console)
	if mode == config.ModeMenu {
		strategy = input.NewMenu(console)
	}

	g, err := game.New(w, strategy, console,
		game.WithRoller(rng),
		game.WithLogger(log.With("game", def.Title, "mode", mode)))
	if err != nil {
		return err
	}

	if def.Introduction != "" {
		console.RenderMessage(def.Introduction)
		time.Sleep(cfg.IntroDelay)
	}
	g.Play()
	return nil
}

// loadDefinition resolves a built-in game name or a definition file path.
// An empty name lets the player pick a built-in game.
func loadDefinition(name string) (*worlddef.Definition, error) {
	names := games.Names()
	if name == "" {
		titles := make([]string, 0, len(names))
		for _, n := range names {
			def, err := games.Definition(n)
			if err != nil {
				return nil, err
			}
			titles = append(titles, def.Title)
		}
		i, err := view.Pick("Choose a game", titles)
		if err != nil {
			return nil, err
		}
		name = names[i]
	}
	if slices.Contains(names, name) {
		return games.Definition(name)
	}
	return worlddef.LoadFile(name)
}

func chooseMode(mode string) (string, error) {
	if mode != "" {
		return mode, nil
	}
	modes := []string{config.ModeMenu, config.ModeText}
	title := cases.Title(language.English)
	labels := make([]string, len(modes))
	for i, m := range modes {
		labels[i] = title.String(m)
	}
	i, err := view.Pick("Choose interaction mode", labels)
	if err != nil {
		return "", err
	}
	return modes[i], nil
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// newSeed draws a seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
