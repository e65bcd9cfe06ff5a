// Package view renders the game to a terminal and reads the player's input.
package view

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/tale-engine/pkg/command"
	"github.com/jwebster45206/tale-engine/pkg/world"
)

const (
	DefaultWidth    = 80
	separatorLength = 40
	quitLine        = "quit"
)

type styles struct {
	separator lipgloss.Style
	scene     lipgloss.Style
	items     lipgloss.Style
	exits     lipgloss.Style
	state     lipgloss.Style
	message   lipgloss.Style
	prompt    lipgloss.Style
	menu      lipgloss.Style
	warning   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, color bool) styles {
	if !color {
		plain := r.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		separator: r.NewStyle().Foreground(lipgloss.Color("240")), // dark grey
		scene:     r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		items:     r.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		exits:     r.NewStyle().Foreground(lipgloss.Color("39")),  // teal
		state:     r.NewStyle().Foreground(lipgloss.Color("212")), // purple
		message:   r.NewStyle().Foreground(lipgloss.Color("86")),  // green
		prompt:    r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		menu:      r.NewStyle().Foreground(lipgloss.Color("255")),
		warning:   r.NewStyle().Foreground(lipgloss.Color("196")), // red
	}
}

type line struct {
	text string
	err  error
}

// Console is a line-oriented terminal view. It renders scenes and messages,
// reads typed commands and shows numbered menus.
type Console struct {
	in        io.Reader
	out       io.Writer
	width     int
	color     bool
	styles    styles
	lines     chan line
	interrupt <-chan os.Signal
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithWidth sets the wrap width for scene text and messages.
func WithWidth(width int) ConsoleOption {
	return func(c *Console) {
		c.width = width
	}
}

// WithColor enables or disables styled output.
func WithColor(color bool) ConsoleOption {
	return func(c *Console) {
		c.color = color
	}
}

// WithInterrupt makes a pending read return as end of input when a signal arrives.
func WithInterrupt(ch <-chan os.Signal) ConsoleOption {
	return func(c *Console) {
		c.interrupt = ch
	}
}

// NewConsole creates a console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		in:    in,
		out:   out,
		width: DefaultWidth,
		color: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = newStyles(lipgloss.NewRenderer(out), c.color)
	return c
}

// RenderScene implements game.View.
func (c *Console) RenderScene(description string, exits []string, items []string) {
	sep := c.styles.separator.Render(strings.Repeat("#", separatorLength))
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, sep)
	fmt.Fprintln(c.out, c.styles.scene.Render(c.wrap(description)))
	if len(items) > 0 {
		fmt.Fprintln(c.out, c.styles.items.Render(c.wrap("You see: "+strings.Join(items, ", "))))
	}
	if len(exits) > 0 {
		fmt.Fprintln(c.out, c.styles.exits.Render(c.wrap("Obvious exits are: "+strings.Join(exits, ", "))))
	}
	fmt.Fprintln(c.out, sep)
}

// RenderPlayerState implements game.View.
func (c *Console) RenderPlayerState(inventory []string, attributes string) {
	if len(inventory) > 0 {
		fmt.Fprintln(c.out, c.styles.state.Render(c.wrap("You are carrying: "+strings.Join(inventory, ", "))))
	}
	fmt.Fprintln(c.out, c.styles.state.Render(c.wrap("Attributes: "+attributes)))
}

// RenderMessage implements game.View. Empty messages print nothing.
func (c *Console) RenderMessage(text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(c.out, c.styles.message.Render(c.wrap(text)))
}

// RawCommand reads one command line, lower-cased and trimmed.
// End of input or an interrupt reads as "quit".
func (c *Console) RawCommand() string {
	fmt.Fprint(c.out, "\n"+c.styles.prompt.Render(">")+" ")
	text, ok := c.readLine()
	if !ok {
		return quitLine
	}
	return strings.ToLower(strings.TrimSpace(text))
}

// MenuChoice lists the choices and reads a 1-based selection, asking again
// until the answer is in range. End of input or an interrupt selects Quit.
func (c *Console) MenuChoice(choices []world.Command) world.Command {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.separator.Render("--- Choices ---"))
	for i, cmd := range choices {
		fmt.Fprintln(c.out, c.styles.menu.Render(fmt.Sprintf("%d. %s", i+1, cmd.Description())))
	}
	fmt.Fprintln(c.out, c.styles.separator.Render("---------------"))

	for {
		fmt.Fprint(c.out, c.styles.prompt.Render("What do you do?")+" ")
		text, ok := c.readLine()
		if !ok {
			return command.NewQuit()
		}
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1]
		}
		fmt.Fprintln(c.out, c.styles.warning.Render("Invalid choice. Please enter a number from the list."))
	}
}

func (c *Console) wrap(s string) string {
	if c.width <= 0 {
		return s
	}
	return wordwrap.String(s, c.width)
}

// readLine returns the next input line; ok is false at end of input or on interrupt.
func (c *Console) readLine() (string, bool) {
	if c.lines == nil {
		c.lines = make(chan line)
		go c.scan()
	}
	select {
	case l, open := <-c.lines:
		if !open || l.err != nil {
			return "", false
		}
		return l.text, true
	case <-c.interrupt:
		fmt.Fprintln(c.out)
		return "", false
	}
}

// scan feeds input lines to readLine. It is the only reader of c.in.
func (c *Console) scan() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- line{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		c.lines <- line{err: err}
	}
}
