package parser

import (
	"errors"
	"fmt"
)

// Failure kinds, one per grammar stage. Match them with errors.Is.
var (
	ErrHeaderNotFound = errors.New("puzzle header not found")
	ErrInvalidDay     = errors.New("invalid day field")
	ErrInvalidScore   = errors.New("invalid score field")
	ErrInvalidGrid    = errors.New("invalid guess grid")
)

// Error describes where a parse stopped.
type Error struct {
	Kind   error  // one of the Err* values above
	Row    int    // failing grid row, -1 for header stages
	Offset int    // byte offset into the input
	Detail string
}

func (e *Error) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: row %d: %s (offset %d)", e.Kind, e.Row, e.Detail, e.Offset)
	}
	return fmt.Sprintf("%v: %s (offset %d)", e.Kind, e.Detail, e.Offset)
}

func (e *Error) Unwrap() error { return e.Kind }
