// apps/go-solver/internal/board/board.go
//
// Board adapters for the solver session.
//
// A Board implements session.Board on top of two primitives offered by a
// backend: take a snapshot of the game, and press one key. The in-process
// backend (Local) talks to a *game.Game; the HTTP backend (Remote) talks to
// the board server.
//
//   - Submit presses one key per letter with a settling delay between
//     presses, then the submit key.
//   - AwaitVerdict polls snapshots until the row is filled (accepted) or the
//     rejection flag is up (rejected), or ctx ends.
//   - Marks are mapped with solver.ParseStatus: anything unknown is absent.

package board

import (
	"context"
	"fmt"
	"time"

	"github.com/robalobadob/motus/apps/go-solver/internal/game"
	"github.com/robalobadob/motus/apps/go-solver/internal/session"
	"github.com/robalobadob/motus/apps/go-solver/internal/solver"
	"github.com/robalobadob/motus/apps/go-solver/internal/words"
)

const (
	DefaultKeyDelay     = 50 * time.Millisecond
	DefaultPollInterval = 100 * time.Millisecond
)

type backend interface {
	snapshot(ctx context.Context) (game.View, error)
	press(ctx context.Context, key string) error
}

// Options tune keystroke and polling timing.
type Options struct {
	Keymap       Keymap        // defaults to DefaultKeymap()
	KeyDelay     time.Duration // pause after each key; negative means none
	PollInterval time.Duration // verdict polling period
}

func (o Options) withDefaults() Options {
	if o.Keymap == nil {
		o.Keymap = DefaultKeymap()
	}
	if o.KeyDelay == 0 {
		o.KeyDelay = DefaultKeyDelay
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	return o
}

// Board satisfies session.Board.
type Board struct {
	be   backend
	opts Options
}

var _ session.Board = (*Board)(nil)

func (b *Board) Dimensions(ctx context.Context) (session.Dimensions, error) {
	v, err := b.be.snapshot(ctx)
	if err != nil {
		return session.Dimensions{}, err
	}
	return session.Dimensions{Length: v.Length, MaxAttempts: v.MaxAttempts}, nil
}

func (b *Board) PresetLetters(ctx context.Context) (map[int]rune, error) {
	v, err := b.be.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]rune)
	for i, r := range []rune(v.Preset) {
		if r == '.' || r == ' ' {
			continue
		}
		if n, ok := words.Normalize(string(r)); ok {
			out[i] = rune(n[0])
		}
	}
	return out, nil
}

func (b *Board) RowFeedback(ctx context.Context, attempt int) ([]solver.Cell, error) {
	v, err := b.be.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if attempt < 0 || attempt >= len(v.Rows) {
		return nil, fmt.Errorf("row %d not on board (%d rows)", attempt, len(v.Rows))
	}
	row := v.Rows[attempt]
	marks := make([]string, len(row.Marks))
	for i, m := range row.Marks {
		marks[i] = string(m)
	}
	word := row.Word
	if n, ok := words.Normalize(word); ok {
		word = n
	}
	return solver.Cells(word, marks), nil
}

func (b *Board) Outcome(ctx context.Context) (session.Outcome, error) {
	v, err := b.be.snapshot(ctx)
	if err != nil {
		return session.Outcome{}, err
	}
	return session.Outcome{Won: v.Won, Lost: v.Lost, Solution: v.Solution}, nil
}

// Submit types word and presses the submit key.
func (b *Board) Submit(ctx context.Context, word string) error {
	for _, r := range word {
		key, ok := b.opts.Keymap.Key(r)
		if !ok {
			return fmt.Errorf("no key for %q", r)
		}
		if err := b.be.press(ctx, key); err != nil {
			return err
		}
		if err := sleep(ctx, b.opts.KeyDelay); err != nil {
			return err
		}
	}
	if err := b.be.press(ctx, b.opts.Keymap.Submit()); err != nil {
		return err
	}
	return sleep(ctx, b.opts.KeyDelay)
}

// AwaitVerdict polls until row attempt appears or the board flags a rejection.
func (b *Board) AwaitVerdict(ctx context.Context, attempt int) (session.Verdict, error) {
	t := time.NewTicker(b.opts.PollInterval)
	defer t.Stop()
	for {
		v, err := b.be.snapshot(ctx)
		if err != nil {
			return session.VerdictAccepted, err
		}
		switch {
		case v.Rejected:
			return session.VerdictRejected, nil
		case len(v.Rows) > attempt:
			return session.VerdictAccepted, nil
		}
		select {
		case <-ctx.Done():
			return session.VerdictAccepted, ctx.Err()
		case <-t.C:
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
