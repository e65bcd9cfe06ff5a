package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrPickCanceled is returned when the player leaves the picker without choosing.
var ErrPickCanceled = errors.New("selection canceled")

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var defaultPickerKeys = pickerKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "choose"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc", "q"),
		key.WithHelp("q", "quit"),
	),
}

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")). // pink
				Bold(true)

	pickerItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	pickerHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

// picker is the BubbleTea model behind Pick.
type picker struct {
	title    string
	options  []string
	cursor   int
	chosen   int
	canceled bool
	keys     pickerKeys
}

func newPicker(title string, options []string) picker {
	return picker{
		title:   title,
		options: options,
		chosen:  -1,
		keys:    defaultPickerKeys,
	}
}

func (m picker) Init() tea.Cmd {
	return nil
}

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Choose):
		m.chosen = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

func (m picker) View() string {
	if m.chosen >= 0 || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render(m.title) + "\n\n")
	for i, opt := range m.options {
		if i == m.cursor {
			b.WriteString(pickerItemStyle.Render(pickerSelectedStyle.Render("> "+opt)) + "\n")
			continue
		}
		b.WriteString(pickerItemStyle.Render("  "+opt) + "\n")
	}
	help := fmt.Sprintf("%s %s • %s %s • %s %s",
		m.keys.Up.Help().Key, m.keys.Up.Help().Desc,
		m.keys.Down.Help().Key, m.keys.Down.Help().Desc,
		m.keys.Choose.Help().Key, m.keys.Choose.Help().Desc)
	b.WriteString("\n" + pickerHelpStyle.Render(help) + "\n")
	return b.String()
}

// Pick shows a list of options and returns the index of the one chosen.
// It returns ErrPickCanceled if the player quits instead.
func Pick(title string, options []string, opts ...tea.ProgramOption) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to pick from")
	}
	final, err := tea.NewProgram(newPicker(title, options), opts...).Run()
	if err != nil {
		return 0, fmt.Errorf("failed to run picker: %w", err)
	}
	m, ok := final.(picker)
	if !ok || m.canceled || m.chosen < 0 {
		return 0, ErrPickCanceled
	}
	return m.chosen, nil
}
