package esl

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-esl/internal/fastparser"
)

var (
	// ErrInvalidLength is wrapped by a ParseError when Content-Length is not a
	// non-negative decimal integer.
	ErrInvalidLength = fastparser.ErrInvalidLength

	// ErrTruncatedBody is wrapped by a ParseError when fewer bytes follow the
	// header block than Content-Length announced.
	ErrTruncatedBody = fastparser.ErrTruncatedBody

	// ErrFrameTooLarge is returned by a Decoder when a frame exceeds its limit.
	ErrFrameTooLarge = errors.New("frame too large")
)

// ParseError represents an error that occurred during event parsing.
type ParseError struct {
	Message  string // human-readable error message
	Line     int    // 1-indexed line number where error occurred (0 if unknown)
	Position int    // byte offset in input (0 if unknown)
	Err      error  // sentinel cause, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("esl: parse error at line %d: %s", e.Line, e.Message)
	}
	if e.Position > 0 {
		return fmt.Sprintf("esl: parse error at position %d: %s", e.Position, e.Message)
	}
	return fmt.Sprintf("esl: %s", e.Message)
}

// Unwrap returns the sentinel cause.
func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(msg string, line int) *ParseError {
	return &ParseError{Message: msg, Line: line}
}

func newParseErrorAtPos(msg string, pos int) *ParseError {
	return &ParseError{Message: msg, Position: pos}
}

// wrapError converts fastparser errors into a *ParseError.
func wrapError(err error) error {
	var fe *fastparser.Error
	if !errors.As(err, &fe) {
		return err
	}
	msg := fmt.Sprintf("%v: %s", fe.Err, fe.Detail)
	var pe *ParseError
	if fe.Line > 0 {
		pe = newParseError(msg, fe.Line)
	} else {
		pe = newParseErrorAtPos(msg, fe.Position)
	}
	pe.Err = fe.Err
	return pe
}
