// apps/go-solver/internal/game/engine.go
//
// Motus board engine: a keyboard-driven game the solver can play against,
// in process or over HTTP.
// Responsibilities:
//   - Create boards of any length, optionally revealing the first letter.
//   - Accept one key at a time: a letter, backspace, or enter.
//   - On enter, refuse words outside the dictionary without consuming an
//     attempt (the Rejected flag stays up until the next key press).
//   - Score accepted rows with the two-pass algorithm.
//   - Track state transitions: playing → won/lost.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	DefaultAttempts = 6
	DefaultLength   = 5
)

var (
	ErrFinished   = errors.New("game finished")
	ErrInvalidKey = errors.New("invalid key")
)

// Options tune a new board.
type Options struct {
	MaxAttempts int  // defaults to DefaultAttempts
	RevealFirst bool // show answer[0] before the first row
}

// New constructs a board for answer (already normalized, a–z).
func New(dict Dictionary, answer string, opts Options) *Game {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultAttempts
	}
	ans := strings.ToLower(answer)
	return &Game{
		ID:          randomID(),
		Answer:      ans,
		MaxAttempts: opts.MaxAttempts,
		Length:      len(ans),
		RevealFirst: opts.RevealFirst,
		dict:        dict,
	}
}

// Preset returns the letters shown on the board before any guess.
func (g *Game) Preset() map[int]rune {
	if !g.RevealFirst || g.Length == 0 {
		return map[int]rune{}
	}
	return map[int]rune{0: rune(g.Answer[0])}
}

// Press applies one key. Letters beyond the row length are ignored.
// Enter on an incomplete row is ignored as well, like the real board.
func (g *Game) Press(key string) error {
	if g.Finished {
		return ErrFinished
	}
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case KeyEnter:
		g.Rejected = false
		return g.submit()
	case KeyBackspace:
		g.Rejected = false
		if len(g.Typed) > 0 {
			g.Typed = g.Typed[:len(g.Typed)-1]
		}
		return nil
	}
	r := []rune(key)
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return ErrInvalidKey
	}
	g.Rejected = false
	if len(g.Typed) < g.Length {
		g.Typed = append(g.Typed, r[0])
	}
	return nil
}

// submit scores the typed row or flags it as rejected.
func (g *Game) submit() error {
	if len(g.Typed) != g.Length {
		return nil
	}
	guess := string(g.Typed)
	g.Typed = g.Typed[:0]

	if g.dict != nil && !g.dict.IsAllowed(guess) {
		g.Rejected = true
		return nil
	}

	marks := scoreGuess(g.Answer, guess)
	g.Rows = append(g.Rows, Row{Word: guess, Marks: marks})

	if allHit(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Rows) >= g.MaxAttempts {
		g.Finished = true
	}
	return nil
}

// State reports "playing", "won" or "lost".
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Solution is revealed only once the game is over.
func (g *Game) Solution() string {
	if !g.Finished {
		return ""
	}
	return g.Answer
}

// scoreGuess implements the standard two-pass scoring algorithm.
//
// Pass 1: mark exact matches as hits and count the remaining answer letters.
// Pass 2: a non-hit letter is present while unused copies remain, else miss.
func scoreGuess(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if i >= len(answer) {
			continue
		}
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else if j := idx(answer[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'a' }

// allHit returns true if all marks are MarkHit.
func allHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return len(m) > 0
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
