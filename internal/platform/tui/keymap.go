package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hopper/internal/core"
)

// GameKeyMap defines the key bindings while a game is on screen.
type GameKeyMap struct {
	HopOne key.Binding
	HopTwo key.Binding
	Start  key.Binding
	Replay key.Binding
	Scores key.Binding
	Shot   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.HopOne, k.HopTwo, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.HopOne, k.HopTwo},
		{k.Start, k.Replay, k.Scores, k.Shot},
		{k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		HopOne: key.NewBinding(
			key.WithKeys("1", " ", "f"),
			key.WithHelp("1/space", "hop 1"),
		),
		HopTwo: key.NewBinding(
			key.WithKeys("2", "j"),
			key.WithHelp("2/j", "hop 2"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scores"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// Hop keys and mouse buttons become button releases, the rest become actions.
type KeyMapper struct {
	keys    GameKeyMap
	pressed tea.MouseButton // Last pressed mouse button, for terminals that report bare releases
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action or a button.
// Returns ok=false for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, button core.Button, ok bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, 0, true
	case key.Matches(msg, km.keys.HopOne):
		return core.ActionNone, core.ButtonPrimary, true
	case key.Matches(msg, km.keys.HopTwo):
		return core.ActionNone, core.ButtonSecondary, true
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, 0, true
	case key.Matches(msg, km.keys.Replay):
		return core.ActionReplay, 0, true
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, 0, true
	}
	return core.ActionNone, 0, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, button, ok := km.MapKey(msg)
	if !ok {
		return false
	}
	if action == core.ActionNone {
		frame.Release(button)
		return false
	}
	frame.Set(action)
	return action == core.ActionQuit
}

// MapMouseToFrame records a button release for left and right clicks.
// Terminals that report releases without a button reuse the last press.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		km.pressed = msg.Button
		return
	case tea.MouseActionRelease:
	default:
		return
	}

	b := msg.Button
	if b == tea.MouseButtonNone {
		b = km.pressed
	}
	km.pressed = tea.MouseButtonNone

	switch b {
	case tea.MouseButtonLeft:
		frame.Release(core.ButtonPrimary)
	case tea.MouseButtonMiddle:
		frame.Release(core.ButtonMiddle)
	case tea.MouseButtonRight:
		frame.Release(core.ButtonSecondary)
	}
}
