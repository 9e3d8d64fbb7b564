package session

import "errors"

var (
	// ErrConfig means the board could not describe itself; the session cannot start.
	ErrConfig = errors.New("board configuration unreadable")
	// ErrEmptyCorpus means no word of the board length survived filtering.
	ErrEmptyCorpus = errors.New("no candidate words of the required length")
)
