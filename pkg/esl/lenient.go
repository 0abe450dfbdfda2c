package esl

import (
	"github.com/shapestone/shape-esl/internal/fastparser"
)

// ParseLenient performs best-effort parsing of an event.
// It never returns an error for malformed input; instead it extracts
// whatever parts are valid and reports issues as Warnings.
//
// The header mapping is the same one Parse produces for the same input.
// Differences are confined to the body:
//   - an invalid Content-Length yields no body and a warning;
//   - a truncated body yields the available bytes, a warning and Partial;
//   - bytes after the body are reported but not returned.
//
// Stray lines discarded before any header are reported with their line number.
// Empty input yields an empty event with Partial set.
func ParseLenient(raw string) *ParseResult {
	return ParseLenientBytes([]byte(raw))
}

// ParseLenientBytes is like ParseLenient but takes a byte slice.
func ParseLenientBytes(data []byte) *ParseResult {
	internal := fastparser.NewLenientParser(data).Parse()
	return &ParseResult{
		Event:    fromInternal(internal.Event),
		Warnings: internal.Warnings,
		Partial:  internal.Partial,
	}
}
