// apps/go-solver/internal/board/keymap.go
//
// Keymap: the read-only table from letters to the board's key names.
// It is handed to a Board at construction; nothing mutates it afterwards.

package board

import "github.com/robalobadob/motus/apps/go-solver/internal/game"

// Keymap resolves the key to press for a letter, and the submit key.
type Keymap interface {
	Key(r rune) (string, bool)
	Submit() string
}

type keymap struct {
	keys   map[rune]string
	submit string
}

// NewKeymap copies keys so later changes to the caller's map have no effect.
func NewKeymap(keys map[rune]string, submit string) Keymap {
	cp := make(map[rune]string, len(keys))
	for r, k := range keys {
		cp[r] = k
	}
	return keymap{keys: cp, submit: submit}
}

func (k keymap) Key(r rune) (string, bool) {
	s, ok := k.keys[r]
	return s, ok
}

func (k keymap) Submit() string { return k.submit }

// DefaultKeymap maps a–z to themselves and submits with enter.
func DefaultKeymap() Keymap {
	keys := make(map[rune]string, 26)
	for r := 'a'; r <= 'z'; r++ {
		keys[r] = string(r)
	}
	return NewKeymap(keys, game.KeyEnter)
}
