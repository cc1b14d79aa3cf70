package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the question form and the story view.
type KeyMap struct {
	// Question form
	NextField key.Binding
	PrevField key.Binding
	Advance   key.Binding // next field, or submit on the last one
	Submit    key.Binding

	// Story view
	Replay key.Binding
	Copy   key.Binding
	Quit   key.Binding

	// Both views
	Cancel key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next/submit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "tell the story"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy story"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// formHelp exposes the question form bindings to the help view.
type formHelp struct{ km KeyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.km.NextField, h.km.PrevField, h.km.Advance, h.km.Submit, h.km.Cancel}
}

func (h formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// storyHelp exposes the story view bindings to the help view.
type storyHelp struct{ km KeyMap }

func (h storyHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.km.Replay, h.km.Copy, h.km.Quit}
}

func (h storyHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
