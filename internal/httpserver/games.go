// apps/go-solver/internal/httpserver/games.go
//
// In-memory registry of live boards.
//   - Keyed by Game.ID.
//   - RWMutex: snapshots share the read lock, key presses take the write lock.
//   - Boards are lost when the process restarts.

package httpserver

import (
	"errors"
	"sync"

	"github.com/robalobadob/motus/apps/go-solver/internal/game"
)

var errGameNotFound = errors.New("not found")

type registry struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

func newRegistry() *registry {
	return &registry{games: make(map[string]*game.Game)}
}

func (r *registry) save(g *game.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID] = g
}

func (r *registry) view(id string) (game.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return game.View{}, errGameNotFound
	}
	return g.View(), nil
}

// update applies fn to the game under the write lock and returns the new view.
func (r *registry) update(id string, fn func(*game.Game) error) (game.View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return game.View{}, errGameNotFound
	}
	if err := fn(g); err != nil {
		return g.View(), err
	}
	return g.View(), nil
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
