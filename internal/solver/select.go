// apps/go-solver/internal/solver/select.go
//
// Candidate Selector: greedy first-match scan of the corpus.
// This is deliberately not an entropy solver; the corpus order decides
// which of several matching words is played.

package solver

import (
	"fmt"
	"strings"
)

// Matches reports whether word satisfies every constraint in s:
// fixed positions, required letters away from their excluded positions,
// and no absent letters.
func (s *State) Matches(word string) bool {
	w := []rune(word)

	for pos, r := range s.WellPlaced {
		if pos >= len(w) || w[pos] != r {
			return false
		}
	}

	ok := true
	s.Misplaced.Each(func(r rune) bool {
		if !containsRune(w, r) {
			ok = false
			return true
		}
		if bs, has := s.Excluded[r]; has {
			for i, set := bs.NextSet(0); set; i, set = bs.NextSet(i + 1) {
				if int(i) < len(w) && w[i] == r {
					ok = false
					return true
				}
			}
		}
		return false
	})
	if !ok {
		return false
	}

	for _, r := range w {
		if s.Absent.Contains(r) {
			return false
		}
	}
	return true
}

// Select returns the first corpus word that matches s and is not in history.
// The boolean is false when nothing qualifies.
func Select(corpus []string, s *State, history []string) (string, bool) {
	tried := make(map[string]struct{}, len(history))
	for _, h := range history {
		tried[h] = struct{}{}
	}
	for _, w := range corpus {
		if _, seen := tried[w]; seen {
			continue
		}
		if s.Matches(w) {
			return w, true
		}
	}
	return "", false
}

// Candidates counts corpus words still compatible with s, ignoring history.
func Candidates(corpus []string, s *State) int {
	n := 0
	for _, w := range corpus {
		if s.Matches(w) {
			n++
		}
	}
	return n
}

// Describe renders s compactly for logs, e.g. `c.... +a[2] -qz`.
func (s *State) Describe(length int) string {
	var b strings.Builder
	b.WriteString(s.Pattern(length))
	if s.Misplaced.Cardinality() > 0 {
		b.WriteString(" +")
		for _, r := range letters(s.Misplaced) {
			b.WriteRune(r)
			if pos := s.ExcludedPositions(r); len(pos) > 0 {
				fmt.Fprintf(&b, "%v", pos)
			}
		}
	}
	if s.Absent.Cardinality() > 0 {
		b.WriteString(" -")
		for _, r := range letters(s.Absent) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsRune(w []rune, r rune) bool {
	for _, x := range w {
		if x == r {
			return true
		}
	}
	return false
}
