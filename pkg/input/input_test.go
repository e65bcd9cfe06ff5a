package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/tale-engine/pkg/attributes"
	"github.com/jwebster45206/tale-engine/pkg/command"
	"github.com/jwebster45206/tale-engine/pkg/world"
)

// scriptedSurface replays a fixed list of input lines and records messages.
type scriptedSurface struct {
	lines    []string
	messages []string
	reads    int
}

func (s *scriptedSurface) RawCommand() string {
	if s.reads >= len(s.lines) {
		return "quit"
	}
	line := s.lines[s.reads]
	s.reads++
	return line
}

func (s *scriptedSurface) RenderMessage(text string) {
	s.messages = append(s.messages, text)
}

type pickFirst struct {
	offered []world.Command
}

func (p *pickFirst) MenuChoice(choices []world.Command) world.Command {
	p.offered = choices
	return choices[0]
}

type gameCommand struct {
	command.Base
}

func (gameCommand) Execute(*world.World) world.CommandResult {
	return world.CommandResult{Message: "You play a game."}
}

type textFixture struct {
	w      *world.World
	home   *world.Place
	school *world.Place
	lounge *world.Place
	key    *world.Item
	book   *world.Item
	play   world.Command
}

func newTextFixture(t *testing.T) textFixture {
	t.Helper()
	attrs, err := attributes.New("Happiness", map[string]int{"Happiness": 50})
	require.NoError(t, err)
	w, err := world.New(attrs)
	require.NoError(t, err)

	key := world.NewItem("key", "A key.")
	book := world.NewItem("Physics book", "Heavy.")
	home := w.AddPlace("Home", "", key)
	school := w.AddPlace("Medford High School", "")
	lounge := w.AddPlace("Lounge", "")
	play := gameCommand{command.NewBase("Play video games")}
	home.AddCommands(play, gameCommand{command.NewBase("")})

	require.NoError(t, w.Connect(home, true,
		world.Transition{To: school.ID(), Direction: "north"},
		world.Transition{To: lounge.ID()},
	))
	require.NoError(t, w.Start(home.ID()))
	w.Give(book)

	return textFixture{w: w, home: home, school: school, lounge: lounge, key: key, book: book, play: play}
}

func TestText_Next(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		check    func(t *testing.T, f textFixture, cmd world.Command)
		messages []string
	}{
		{
			name:  "take item by substring",
			lines: []string{"take ke"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				take, ok := cmd.(*command.Take)
				require.True(t, ok, "got %T", cmd)
				assert.Same(t, f.key, take.Item)
			},
		},
		{
			name:  "get is a take synonym",
			lines: []string{"get key"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Take{}, cmd)
			},
		},
		{
			name:  "drop carried item",
			lines: []string{"drop physics"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				drop, ok := cmd.(*command.Drop)
				require.True(t, ok, "got %T", cmd)
				assert.Same(t, f.book, drop.Item)
			},
		},
		{
			name:  "go direction",
			lines: []string{"go north"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				move, ok := cmd.(*command.Move)
				require.True(t, ok, "got %T", cmd)
				assert.Equal(t, f.school.ID(), move.Transition.To)
			},
		},
		{
			name:  "direction shorthand",
			lines: []string{"n"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Move{}, cmd)
			},
		},
		{
			name:     "unknown direction reprompts",
			lines:    []string{"south", "w", "go north"},
			messages: []string{"You can't go south.", "You can't go west."},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Move{}, cmd)
			},
		},
		{
			name:  "go by place name",
			lines: []string{"go loun"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				move, ok := cmd.(*command.Move)
				require.True(t, ok, "got %T", cmd)
				assert.Equal(t, f.lounge.ID(), move.Transition.To)
			},
		},
		{
			name:     "go to unknown place reprompts",
			lines:    []string{"go mars", "go"},
			messages: []string{"You can't go to a place called 'mars'.", "Go where?"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Quit{}, cmd)
			},
		},
		{
			name:  "inventory shorthand",
			lines: []string{"i"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Inventory{}, cmd)
			},
		},
		{
			name:  "look at target",
			lines: []string{"look key"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				look, ok := cmd.(*command.Look)
				require.True(t, ok, "got %T", cmd)
				assert.Equal(t, "key", look.Target)
			},
		},
		{
			name:  "help",
			lines: []string{"help"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Help{}, cmd)
			},
		},
		{
			name:  "bye quits",
			lines: []string{"bye"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Quit{}, cmd)
			},
		},
		{
			name:     "take without target reprompts",
			lines:    []string{"take", "   ", "inv"},
			messages: []string{"What do you want to take?"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.IsType(t, &command.Inventory{}, cmd)
			},
		},
		{
			name:  "missing item yields nil",
			lines: []string{"take lamp"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.Nil(t, cmd)
			},
		},
		{
			name:  "place command by description",
			lines: []string{"Video Games"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.Equal(t, f.play, cmd)
			},
		},
		{
			name:  "gibberish yields nil",
			lines: []string{"xyzzy"},
			check: func(t *testing.T, f textFixture, cmd world.Command) {
				assert.Nil(t, cmd)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTextFixture(t)
			surface := &scriptedSurface{lines: tt.lines}

			cmd := NewText(surface).Next(f.w)

			tt.check(t, f, cmd)
			assert.Equal(t, tt.messages, surface.messages)
		})
	}
}

func TestText_InAndOut(t *testing.T) {
	f := newTextFixture(t)
	closet := f.w.AddPlace("Closet", "")
	require.NoError(t, f.w.Connect(f.home, true, world.Transition{To: closet.ID(), Direction: "in"}))

	cmd := NewText(&scriptedSurface{lines: []string{"in"}}).Next(f.w)
	move, ok := cmd.(*command.Move)
	require.True(t, ok, "got %T", cmd)
	assert.Equal(t, closet.ID(), move.Transition.To)

	require.NoError(t, f.w.MoveTo(closet.ID()))
	cmd = NewText(&scriptedSurface{lines: []string{"go out"}}).Next(f.w)
	move, ok = cmd.(*command.Move)
	require.True(t, ok, "got %T", cmd)
	assert.Equal(t, f.home.ID(), move.Transition.To)
}

func TestText_DoesNotMutateWorld(t *testing.T) {
	f := newTextFixture(t)
	surface := &scriptedSurface{lines: []string{"take key", "drop physics", "go north", "go lounge"}}
	strategy := NewText(surface)

	for range surface.lines {
		require.NotNil(t, strategy.Next(f.w))
	}
	assert.Same(t, f.home, f.w.Location())
	assert.Equal(t, []string{"key"}, world.ItemNames(f.home.Items))
	assert.Equal(t, []string{"Physics book"}, world.ItemNames(f.w.Inventory()))
}

func TestMenu_Choices(t *testing.T) {
	f := newTextFixture(t)
	surface := &pickFirst{}

	cmd := NewMenu(surface).Next(f.w)

	var got []string
	for _, c := range surface.offered {
		got = append(got, c.Description())
	}
	want := []string{
		"Go to Medford High School",
		"Go to Lounge",
		"Take key",
		"Drop Physics book",
		"Play video games",
		"Quit game",
	}
	assert.Equal(t, want, got)
	assert.IsType(t, &command.Move{}, cmd)
	assert.Same(t, f.home, f.w.Location(), "choosing must not execute")
}

func TestMenu_ListsGatedMoves(t *testing.T) {
	f := newTextFixture(t)
	require.NoError(t, f.w.Connect(f.home, false, world.Transition{
		To:        f.lounge.ID(),
		Direction: "east",
		Condition: func(*world.World) bool { return false },
	}))

	choices := NewMenu(&pickFirst{}).Choices(f.w)
	moves := 0
	for _, c := range choices {
		if _, ok := c.(*command.Move); ok {
			moves++
		}
	}
	assert.Equal(t, 3, moves)
}
