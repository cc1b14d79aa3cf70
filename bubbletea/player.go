package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/madlibs"
)

// Compile-time interface verification.
var _ madlibs.Player = (*Player)(nil)

// Player implements madlibs.Player using a Bubble Tea TUI.
type Player struct {
	opts []ModelOption
}

// NewPlayer creates a new Player. The options are applied to every Model it runs.
func NewPlayer(opts ...ModelOption) *Player {
	return &Player{opts: opts}
}

// Play runs the question form and story until the user exits.
func (p *Player) Play(ctx context.Context) error {
	m := NewModel(p.opts...)
	if err := madlibs.Verify(m.page); err != nil {
		return err
	}
	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := prog.Run()
	return err
}
