package board

import (
	"context"
	"sync"

	"github.com/robalobadob/motus/apps/go-solver/internal/game"
)

// local drives an in-process game.
type local struct {
	mu sync.Mutex
	g  *game.Game
}

func (l *local) snapshot(ctx context.Context) (game.View, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.View(), nil
}

func (l *local) press(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Press(key)
}

// NewLocal wraps g as a Board.
func NewLocal(g *game.Game, opts Options) *Board {
	return &Board{be: &local{g: g}, opts: opts.withDefaults()}
}
