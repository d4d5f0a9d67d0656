package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a keyboard shortcut the window reacts to
type Command int

const (
	CommandNone Command = iota
	CommandReset
	CommandBeginner
	CommandIntermediate
	CommandExpert
	CommandToggleMines
)

var keyCommands = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyR, CommandReset},
	{ebiten.KeyF2, CommandReset},
	{ebiten.Key1, CommandBeginner},
	{ebiten.Key2, CommandIntermediate},
	{ebiten.Key3, CommandExpert},
}

// Handler turns key presses into commands. Only the first command of a frame
// is reported.
type Handler struct {
	allowMineToggle bool
}

// NewHandler returns a handler. allowMineToggle enables the M debug key.
func NewHandler(allowMineToggle bool) *Handler {
	return &Handler{allowMineToggle: allowMineToggle}
}

func (h *Handler) Update() Command {
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			return kc.cmd
		}
	}
	if h.allowMineToggle && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		return CommandToggleMines
	}
	return CommandNone
}
