package qif

import (
	"errors"
	"fmt"
)

// ErrInvalidHeader reports a missing or malformed QIF header.
var ErrInvalidHeader = errors.New("invalid QIF header")

// HeaderError describes what the header interpreter expected on a given line
// and what it found instead.
type HeaderError struct {
	Line     int
	Expected string
	Found    string
	// EOF is set when the input ended before the expected line.
	EOF bool
}

func (e *HeaderError) Error() string {
	if e.EOF {
		return fmt.Sprintf("%v: line %d: expected %s, but reached end of input", ErrInvalidHeader, e.Line, e.Expected)
	}
	return fmt.Sprintf("%v: line %d: expected %s, but found %q", ErrInvalidHeader, e.Line, e.Expected, e.Found)
}

func (e *HeaderError) Unwrap() error {
	return ErrInvalidHeader
}
