// apps/go-solver/internal/store/file.go
//
// JSON-file Blocklists: one `<key>.json` file per list in a directory,
// each holding a JSON array of words, the same layout a browser board
// keeps in localStorage.
//
// A missing or unreadable file, or one that does not decode as a string
// array, loads as an empty set.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
)

// File stores blocklists as JSON files under Dir.
// Session records are kept in memory only.
type File struct {
	Dir string

	mu       sync.Mutex
	sessions []Record
}

// NewFile creates dir if needed and returns a File store rooted there.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &File{Dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func (f *File) LoadBlocklist(ctx context.Context, key string) mapset.Set[string] {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := mapset.NewThreadUnsafeSet[string]()
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("key", key).Msg("read blocklist")
		}
		return out
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("decode blocklist, starting empty")
		return out
	}
	return mapset.NewThreadUnsafeSet[string](list...)
}

func (f *File) SaveBlocklist(ctx context.Context, key string, words mapset.Set[string]) error {
	list := words.ToSlice()
	sort.Strings(list)
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, f.path(key))
}

func (f *File) RecordSession(ctx context.Context, r Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, r)
	return nil
}

func (f *File) Summary(ctx context.Context) (Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return summarize(f.sessions), nil
}

func (f *File) Close() error { return nil }
