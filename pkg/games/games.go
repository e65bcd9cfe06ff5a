// Package games bundles the built-in game worlds and their game-specific commands.
package games

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jwebster45206/tale-engine/pkg/world"
	"github.com/jwebster45206/tale-engine/pkg/worlddef"
)

//go:embed data/*.yaml
var data embed.FS

// Names returns the built-in game names in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(data, "data")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// Definition loads a built-in game definition by name.
func Definition(name string) (*worlddef.Definition, error) {
	if !slices.Contains(Names(), name) {
		return nil, fmt.Errorf("unknown game %q", name)
	}
	sub, err := fs.Sub(data, "data")
	if err != nil {
		return nil, err
	}
	return worlddef.LoadFS(sub, name+".yaml")
}

// Registry returns the game-specific commands available to definitions.
// dice drives any randomness the commands need.
func Registry(dice Dice) worlddef.Registry {
	return worlddef.Registry{
		"visit_friends": func() world.Command {
			return NewVisitFriends()
		},
		"play_video_games": func() world.Command {
			return NewPlayVideoGames(dice)
		},
	}
}
