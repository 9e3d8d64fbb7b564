// apps/go-solver/internal/store/store.go
//
// Persistence contracts shared by all store backends.
//
//   - Blocklists: named word sets that survive across sessions.
//       KeyInvalid: words the board's own dictionary rejected.
//       KeyValid:   words the board is known to accept (wins and revealed solutions).
//   - Recorder:   optional history of finished sessions.
//
// Loading never fails from the caller's point of view: a read or decode
// error yields an empty set and a warning in the log.
//
// Note: Save is a whole-set overwrite. Two processes sharing one backend can
// lose each other's additions (read-modify-write without a transaction).

package store

import (
	"context"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	KeyInvalid = "motus_invalid_words"
	KeyValid   = "motus_valid_words"
)

// Blocklists persists named word sets.
type Blocklists interface {
	// LoadBlocklist returns the stored set for key, or an empty set on any error.
	LoadBlocklist(ctx context.Context, key string) mapset.Set[string]
	// SaveBlocklist replaces the stored set for key.
	SaveBlocklist(ctx context.Context, key string, words mapset.Set[string]) error
}

// Record is one finished solver session.
type Record struct {
	ID        string
	Length    int
	Outcome   string // "won" | "lost" | "exhausted"
	Attempts  int
	Solution  string
	Guesses   []string
	StartedAt time.Time
	Elapsed   time.Duration
}

// Summary aggregates recorded sessions.
type Summary struct {
	Sessions    int     `json:"sessions"`
	Won         int     `json:"won"`
	Lost        int     `json:"lost"`
	Exhausted   int     `json:"exhausted"`
	AvgAttempts float64 `json:"avgAttemptsWon"` // mean attempts over won sessions
}

// Recorder stores finished sessions and summarizes them.
type Recorder interface {
	RecordSession(ctx context.Context, r Record) error
	Summary(ctx context.Context) (Summary, error)
}

// Store is a backend offering both capabilities.
type Store interface {
	Blocklists
	Recorder
	Close() error
}

// summarize folds records into a Summary.
func summarize(recs []Record) Summary {
	var s Summary
	won := 0
	total := 0
	for _, r := range recs {
		s.Sessions++
		switch r.Outcome {
		case "won":
			s.Won++
			won++
			total += r.Attempts
		case "lost":
			s.Lost++
		default:
			s.Exhausted++
		}
	}
	if won > 0 {
		s.AvgAttempts = float64(total) / float64(won)
	}
	return s
}
