// apps/go-solver/internal/store/memory.go
//
// In-memory Store. Used by tests, bench runs and the HTTP solver endpoint
// when durability is not required.
//
// Characteristics:
//   - Blocklists and session records kept in maps/slices.
//   - Concurrency-safe via RWMutex.
//   - Sets are copied on the way in and out so callers never share them.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

type memory struct {
	mu       sync.RWMutex
	lists    map[string]mapset.Set[string]
	sessions []Record
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() Store {
	return &memory{lists: make(map[string]mapset.Set[string])}
}

func (m *memory) LoadBlocklist(ctx context.Context, key string) mapset.Set[string] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.lists[key]; ok {
		return mapset.NewThreadUnsafeSet[string](s.ToSlice()...)
	}
	return mapset.NewThreadUnsafeSet[string]()
}

func (m *memory) SaveBlocklist(ctx context.Context, key string, words mapset.Set[string]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = mapset.NewThreadUnsafeSet[string](words.ToSlice()...)
	return nil
}

func (m *memory) RecordSession(ctx context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Guesses = append([]string(nil), r.Guesses...)
	m.sessions = append(m.sessions, r)
	return nil
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return summarize(m.sessions), nil
}

func (m *memory) Close() error { return nil }
