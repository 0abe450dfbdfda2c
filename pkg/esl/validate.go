package esl

import (
	"io"

	"github.com/shapestone/shape-esl/internal/fastparser"
)

// Validate checks that input decodes as an event: any Content-Length must be
// a valid length and the body must be complete.
// Returns nil if valid, or the *ParseError Parse would return.
func Validate(input string) error {
	return wrapError(fastparser.Validate([]byte(input)))
}

// ValidateReader reads all data from r and validates it as an event.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return wrapError(fastparser.Validate(data))
}
