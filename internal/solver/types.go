// apps/go-solver/internal/solver/types.go
//
// Core type definitions for the constraint engine.
// Defines:
//   - Status: per-cell result read from the board (well placed / misplaced / absent).
//   - Cell:   one position of an attempt's feedback.

package solver

import "strings"

// Status is the board's verdict for one cell of a submitted row.
// Absent is the zero value so that anything the board reports that we
// do not understand degrades to the least informative result.
type Status int

const (
	Absent Status = iota
	Misplaced
	WellPlaced
)

func (s Status) String() string {
	switch s {
	case WellPlaced:
		return "wellPlaced"
	case Misplaced:
		return "misplaced"
	default:
		return "absent"
	}
}

// ParseStatus maps a board status string to a Status.
// Accepts the names used by the Motus board ("hit"/"present"/"miss") as well
// as the long names; unknown values map to Absent.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "wellplaced", "well_placed", "correct":
		return WellPlaced
	case "present", "misplaced":
		return Misplaced
	default:
		return Absent
	}
}

// Cell is one position of an attempt's feedback, in column order.
type Cell struct {
	Letter rune
	Status Status
}

// Cells builds feedback from a word and a parallel slice of status strings.
// Missing statuses are treated as Absent.
func Cells(word string, statuses []string) []Cell {
	letters := []rune(word)
	out := make([]Cell, len(letters))
	for i, r := range letters {
		out[i].Letter = r
		if i < len(statuses) {
			out[i].Status = ParseStatus(statuses[i])
		}
	}
	return out
}

// Solved reports whether every cell is WellPlaced.
func Solved(feedback []Cell) bool {
	if len(feedback) == 0 {
		return false
	}
	for _, c := range feedback {
		if c.Status != WellPlaced {
			return false
		}
	}
	return true
}
