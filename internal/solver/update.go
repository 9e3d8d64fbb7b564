// apps/go-solver/internal/solver/update.go
//
// Constraint Updater: folds one attempt's feedback into a State.
//
// The update runs in two passes so the result does not depend on the
// order of repeated letters within a row:
//
// Pass 1 (positive evidence):
//   - WellPlaced: fix the position, clear the letter from Absent.
//   - Misplaced:  record the letter as present, clear it from Absent,
//                 exclude the tested position.
//
// Pass 2 (negative evidence):
//   - Absent: mark the letter absent only if no positive evidence exists
//     for it, either from earlier rows or from pass 1 of this row. A letter
//     reported once green and once grey is exhausted, not missing.

package solver

import "unicode"

// ApplyFeedback mutates s with the feedback of one completed row.
// feedback[i] is the cell at column i.
func ApplyFeedback(s *State, feedback []Cell) {
	for i, c := range feedback {
		if c.Letter == 0 {
			continue
		}
		r := unicode.ToLower(c.Letter)
		switch c.Status {
		case WellPlaced:
			s.WellPlaced[i] = r
			s.Absent.Remove(r)
		case Misplaced:
			s.Misplaced.Add(r)
			s.Absent.Remove(r)
			s.exclude(r, i)
		}
	}

	for _, c := range feedback {
		if c.Letter == 0 || c.Status == WellPlaced || c.Status == Misplaced {
			continue
		}
		r := unicode.ToLower(c.Letter)
		if !s.hasPositive(r) {
			s.Absent.Add(r)
		}
	}
}
