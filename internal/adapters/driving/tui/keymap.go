package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the picker keybindings.
type KeyMap struct {
	// Up moves the cursor up in the candidate list.
	Up key.Binding

	// Down moves the cursor down in the candidate list.
	Down key.Binding

	// Select commits the highlighted candidate.
	Select key.Binding

	// Search opens the re-query input.
	Search key.Binding

	// Manual opens the manual part-number input.
	Manual key.Binding

	// Skip leaves this component undecided.
	Skip key.Binding

	// Quit abandons the rest of the run.
	Quit key.Binding

	// Cancel closes an input and returns to the list.
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "new search"),
		),
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "manual"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ListHelp returns the keybindings shown under the candidate list.
func (k *KeyMap) ListHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Search, k.Manual, k.Skip, k.Quit}
}

// InputHelp returns the keybindings shown under an input field.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel}
}
