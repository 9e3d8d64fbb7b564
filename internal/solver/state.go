// apps/go-solver/internal/solver/state.go
//
// Constraint State: the knowledge accumulated about the solution across
// the attempts of one game.
//
//   - WellPlaced: position → letter, only ever added or overwritten.
//   - Misplaced:  letters known to be in the solution.
//   - Excluded:   letter → positions it is known not to occupy.
//   - Absent:     letters known not to be in the solution.
//
// A State is owned by a single session goroutine, so the sets are the
// thread-unsafe variants and nothing here locks.

package solver

import (
	"sort"
	"unicode"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set/v2"
)

// State is the mutable constraint model for one game session.
type State struct {
	WellPlaced map[int]rune
	Misplaced  mapset.Set[rune]
	Excluded   map[rune]*bitset.BitSet
	Absent     mapset.Set[rune]
}

// NewState seeds WellPlaced with the letters the board reveals before the
// first guess. Zero runes and negative positions are ignored.
func NewState(preset map[int]rune) *State {
	s := &State{
		WellPlaced: make(map[int]rune, len(preset)),
		Misplaced:  mapset.NewThreadUnsafeSet[rune](),
		Excluded:   make(map[rune]*bitset.BitSet),
		Absent:     mapset.NewThreadUnsafeSet[rune](),
	}
	for pos, r := range preset {
		if r == 0 || pos < 0 {
			continue
		}
		s.WellPlaced[pos] = unicode.ToLower(r)
	}
	return s
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := &State{
		WellPlaced: make(map[int]rune, len(s.WellPlaced)),
		Misplaced:  s.Misplaced.Clone(),
		Excluded:   make(map[rune]*bitset.BitSet, len(s.Excluded)),
		Absent:     s.Absent.Clone(),
	}
	for k, v := range s.WellPlaced {
		c.WellPlaced[k] = v
	}
	for k, v := range s.Excluded {
		c.Excluded[k] = v.Clone()
	}
	return c
}

// Equal reports whether two states hold the same knowledge.
func (s *State) Equal(o *State) bool {
	if len(s.WellPlaced) != len(o.WellPlaced) || len(s.Excluded) != len(o.Excluded) {
		return false
	}
	for k, v := range s.WellPlaced {
		if o.WellPlaced[k] != v {
			return false
		}
	}
	for k, v := range s.Excluded {
		ov, ok := o.Excluded[k]
		if !ok || !ov.Equal(v) {
			return false
		}
	}
	return s.Misplaced.Equal(o.Misplaced) && s.Absent.Equal(o.Absent)
}

// ExcludedPositions returns the sorted positions letter r may not occupy.
func (s *State) ExcludedPositions(r rune) []int {
	bs, ok := s.Excluded[r]
	if !ok {
		return nil
	}
	out := make([]int, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// exclude records that r is not at pos.
func (s *State) exclude(r rune, pos int) {
	bs, ok := s.Excluded[r]
	if !ok {
		bs = bitset.New(8)
		s.Excluded[r] = bs
	}
	bs.Set(uint(pos))
}

// hasPositive reports whether the state knows r is somewhere in the solution.
func (s *State) hasPositive(r rune) bool {
	if s.Misplaced.Contains(r) {
		return true
	}
	for _, v := range s.WellPlaced {
		if v == r {
			return true
		}
	}
	return false
}

// Consistent reports whether no letter is both absent and known present.
func (s *State) Consistent() bool {
	ok := true
	s.Absent.Each(func(r rune) bool {
		if s.hasPositive(r) {
			ok = false
			return true
		}
		return false
	})
	return ok
}

// Pattern renders WellPlaced as a fixed-width mask, e.g. "c..o." for length 5.
func (s *State) Pattern(length int) string {
	out := make([]rune, length)
	for i := range out {
		if r, ok := s.WellPlaced[i]; ok {
			out[i] = r
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// letters returns the members of a set in ascending order.
func letters(set mapset.Set[rune]) []rune {
	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
