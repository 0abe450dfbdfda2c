package esl

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-esl/internal/fastparser"
)

// Parse decodes raw as a single event.
//
// Header lines are collected up to the blank line that follows a
// Content-Length header, or up to the end of input. Lines that do not match
// the header pattern extend the value of the preceding header, or are
// discarded when there is none. When Content-Length is present, exactly that
// many bytes after the header block become the body.
//
// The returned error is a *ParseError wrapping ErrInvalidLength or
// ErrTruncatedBody. Header scanning itself never fails.
func Parse(raw string) (*Event, error) {
	return ParseBytes([]byte(raw))
}

// ParseBytes is like Parse but takes a byte slice. The returned event does not
// alias data.
func ParseBytes(data []byte) (*Event, error) {
	fe, err := fastparser.Unmarshal(data)
	if err != nil {
		return nil, wrapError(err)
	}
	return fromInternal(fe), nil
}

// ParseReader reads all data from r and parses it as a single event.
func ParseReader(r io.Reader) (*Event, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
