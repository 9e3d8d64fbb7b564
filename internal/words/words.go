// apps/go-solver/internal/words/words.go
//
// Dictionary for the simulated Motus board.
//
// Responsibilities:
//   - Hold the board's own accepted-word list (normalized, any length).
//   - Answer IsAllowed lookups when a row is submitted.
//   - Pick random or indexed answers of a given length.
//
// Default() loads the embedded list exactly once (sync.Once).

package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sort"
	"sync"
)

// Dictionary is the set of words a board accepts, bucketed by length.
type Dictionary struct {
	allowed  map[string]struct{}
	byLength map[int][]string // answers per length, sorted
}

// NewDictionary normalizes raw and builds the lookup tables.
// Malformed entries are skipped.
func NewDictionary(raw []string) *Dictionary {
	d := &Dictionary{
		allowed:  make(map[string]struct{}, len(raw)),
		byLength: make(map[int][]string),
	}
	for _, r := range raw {
		w, ok := Normalize(r)
		if !ok {
			continue
		}
		if _, dup := d.allowed[w]; dup {
			continue
		}
		d.allowed[w] = struct{}{}
		d.byLength[len(w)] = append(d.byLength[len(w)], w)
	}
	for _, list := range d.byLength {
		sort.Strings(list)
	}
	return d
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the dictionary built from the embedded word list.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		raw, err := embeddedList()
		if err != nil {
			defaultErr = err
			return
		}
		defaultDict = NewDictionary(raw)
		if len(defaultDict.allowed) == 0 {
			defaultErr = errors.New("words: embedded list is empty")
		}
	})
	return defaultDict, defaultErr
}

// IsAllowed reports whether w (in any casing/accents) is accepted.
func (d *Dictionary) IsAllowed(w string) bool {
	n, ok := Normalize(w)
	if !ok {
		return false
	}
	_, ok = d.allowed[n]
	return ok
}

// Answers returns the sorted words of the given length.
func (d *Dictionary) Answers(length int) []string {
	return d.byLength[length]
}

// RandomAnswer returns a cryptographically random word of the given length,
// or "" if there is none.
func (d *Dictionary) RandomAnswer(length int) string {
	list := d.byLength[length]
	if len(list) == 0 {
		return ""
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[nBig.Int64()]
}

// Lengths returns the word lengths available, ascending.
func (d *Dictionary) Lengths() []int {
	out := make([]int, 0, len(d.byLength))
	for n := range d.byLength {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Stats returns the number of words per length and the total.
func (d *Dictionary) Stats() (perLength map[int]int, total int) {
	perLength = make(map[int]int, len(d.byLength))
	for n, list := range d.byLength {
		perLength[n] = len(list)
	}
	return perLength, len(d.allowed)
}
