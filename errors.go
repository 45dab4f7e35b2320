// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package toon

import (
	"errors"
	"fmt"

	"github.com/creachadair/toon/internal/escape"
)

// Errors reported by the decoder. A decoding failure is always reported as a
// [*SyntaxError] wrapping one of these values, so callers may test the kind
// of failure with errors.Is.
var (
	ErrUnexpectedEOF    = errors.New("unexpected end of input")
	ErrUnfinishedString = escape.ErrUnfinishedString
	ErrUnfinishedEscape = escape.ErrUnfinishedEscape
	ErrInvalidUnicode   = escape.ErrInvalidUnicode
	ErrInvalidEscape    = escape.ErrInvalidEscape

	// ErrInvalidNumber is reported only when [Decoder.StrictNumbers] is set.
	ErrInvalidNumber = errors.New("invalid number")
)

// SyntaxError is the concrete type of errors reported by the decoder.
type SyntaxError struct {
	Offset   int     // byte offset of the error in the input, 0-based
	Location LineCol // line and column of the error

	Err error // the underlying error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v", s.Location, s.Err)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Err }
