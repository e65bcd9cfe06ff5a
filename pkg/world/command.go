package world

// Command is an executable player action. A command with a non-empty
// description can be offered in a menu.
type Command interface {
	Description() string
	Execute(w *World) CommandResult
}

// CommandResult is the outcome of executing a command.
type CommandResult struct {
	Message         string // Text to render, possibly empty
	LocationChanged bool   // The full scene must be re-rendered
	GameOver        bool   // The game has ended
}

// Selectable reports whether a command can be listed in a menu.
func Selectable(c Command) bool {
	return c != nil && c.Description() != ""
}
