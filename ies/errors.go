package ies

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVersion        = errors.New("unknown IES file version")
	ErrMalformedHeader       = errors.New("stream ended before photometric data")
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")
	ErrNumericFormat         = errors.New("invalid number")
	ErrInvalidValue          = errors.New("value out of range")
)

// ParseError carries the position and field context of a failed parse.
// It unwraps to one of the package sentinels.
type ParseError struct {
	Field string
	Token string
	Line  int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("ies: line %d: %s %q: %v", e.Line, e.Field, e.Token, e.Err)
	}
	return fmt.Sprintf("ies: line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
