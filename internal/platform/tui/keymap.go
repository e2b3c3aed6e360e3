package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakematrix/internal/core"
)

// KeyMap defines the key bindings for the player.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	CursorUp    key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	Tap         key.Binding
	Pause       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Tap, k.Pause, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.CursorUp, k.CursorDown, k.CursorLeft, k.CursorRight, k.Tap},
		{k.Pause, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("←↑→↓", "steer snake"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "steer down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "steer right"),
		),
		CursorUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "cursor up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "cursor down"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "cursor left"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "cursor right"),
		),
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "cycle food"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a semantic action.
// Unbound keys return core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionSnakeUp},
		{k.Down, core.ActionSnakeDown},
		{k.Left, core.ActionSnakeLeft},
		{k.Right, core.ActionSnakeRight},
		{k.CursorUp, core.ActionCursorUp},
		{k.CursorDown, core.ActionCursorDown},
		{k.CursorLeft, core.ActionCursorLeft},
		{k.CursorRight, core.ActionCursorRight},
		{k.Tap, core.ActionTap},
		{k.Pause, core.ActionPause},
		{k.Help, core.ActionHelp},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
