// apps/go-solver/internal/session/board.go
//
// Boundary contracts the attempt loop consumes. Implementations live in the
// board package (in-process game, HTTP client) and in tests.

package session

import (
	"context"

	"github.com/robalobadob/motus/apps/go-solver/internal/solver"
)

// Dimensions is the board geometry.
type Dimensions struct {
	Length      int `json:"length"`
	MaxAttempts int `json:"maxAttempts"`
}

// Outcome is what the board shows about the end of the game.
type Outcome struct {
	Won      bool   `json:"won"`
	Lost     bool   `json:"lost"`
	Solution string `json:"solution,omitempty"`
}

// Verdict is the board's reaction to a submitted word.
type Verdict int

const (
	VerdictAccepted Verdict = iota
	VerdictRejected
)

func (v Verdict) String() string {
	if v == VerdictRejected {
		return "rejected"
	}
	return "accepted"
}

// Reader reads board state.
type Reader interface {
	Dimensions(ctx context.Context) (Dimensions, error)
	// PresetLetters returns letters shown before the first guess, by position.
	PresetLetters(ctx context.Context) (map[int]rune, error)
	// RowFeedback returns the coloured cells of accepted row attempt (0-based).
	RowFeedback(ctx context.Context, attempt int) ([]solver.Cell, error)
	Outcome(ctx context.Context) (Outcome, error)
}

// Driver types a word and submits it.
type Driver interface {
	Submit(ctx context.Context, word string) error
}

// Verdicts waits for the board to accept or reject the word just submitted
// for row attempt. It returns ctx.Err() when ctx ends first.
type Verdicts interface {
	AwaitVerdict(ctx context.Context, attempt int) (Verdict, error)
}

// Board bundles everything a session needs from the game.
type Board interface {
	Reader
	Driver
	Verdicts
}
