package mock

import (
	"context"

	"github.com/fwojciec/madlibs"
)

// Compile-time interface verification.
var _ madlibs.Player = (*Player)(nil)

// Player is a mock implementation of madlibs.Player.
type Player struct {
	PlayFn func(ctx context.Context) error
}

func (p *Player) Play(ctx context.Context) error {
	return p.PlayFn(ctx)
}
