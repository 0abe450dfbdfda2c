package fastparser

import (
	"fmt"
)

// Unmarshal parses data as a single event.
// Uses stack-allocated Parser to avoid heap allocation.
func Unmarshal(data []byte) (*Event, error) {
	var p Parser
	initParser(&p, data)
	return p.Parse()
}

// Validate checks that data decodes as an event without returning a result.
func Validate(data []byte) error {
	_, err := Unmarshal(data)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// ScanHeaders runs only the line state machine over data and returns the
// headers together with the boundary offset. It never fails.
func ScanHeaders(data []byte) ([]Header, int) {
	var p Parser
	initParser(&p, data)
	p.scanHeaders()
	return p.headers, p.pos
}

// LookupLength returns the Content-Length value among headers, if any.
func LookupLength(headers []Header) (string, bool) {
	for _, h := range headers {
		if h.Name == ContentLength {
			return h.Value, true
		}
	}
	return "", false
}
