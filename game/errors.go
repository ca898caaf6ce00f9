package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange  = errors.New("coordinates out of range")
	ErrIllegalMove = errors.New("illegal move")
)

// FormatError reports a malformed card, either from a deck file or from
// a card constructed with an invalid grid.
type FormatError struct {
	Line   int    // 1-based line in the deck source, 0 when not read from a file
	Card   string // card name, empty when the header itself is unreadable
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Card != "":
		return fmt.Sprintf("line %d: card %s: %s", e.Line, e.Card, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	case e.Card != "":
		return fmt.Sprintf("card %s: %s", e.Card, e.Reason)
	default:
		return e.Reason
	}
}

func outOfRange(row, col int) error {
	return fmt.Errorf("cell (%d,%d): %w", row, col, ErrOutOfRange)
}
