// apps/go-solver/internal/game/types.go
//
// Core type definitions for the Motus board engine.
// Defines:
//   - Mark: per-letter result of a submitted row (hit/present/miss).
//   - Row:  one submitted, accepted row.
//   - Game: state for a single in-progress or finished board.

package game

// Mark represents the evaluation result for a single letter in a row.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer (or is exhausted).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Special key names understood by Press.
const (
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
)

// Row is an accepted row with its marks.
type Row struct {
	Word  string `json:"word"`
	Marks []Mark `json:"marks"`
}

// Game holds the state of a single Motus board.
type Game struct {
	ID          string // Unique game identifier (random hex string).
	Answer      string // The solution word (normalized lowercase).
	MaxAttempts int    // Maximum number of accepted rows.
	Length      int    // Number of letters per word.
	RevealFirst bool   // Whether the first letter is shown before any guess.
	Rows        []Row  // Accepted rows so far.
	Typed       []rune // Letters typed on the current row.
	Rejected    bool   // Last submission was refused by the dictionary.
	Finished    bool   // True once the game is over (won or lost).
	Won         bool   // True if the game was finished with a win.

	dict Dictionary
}

// Dictionary is the board's own list of acceptable words.
type Dictionary interface {
	IsAllowed(word string) bool
}
