package fastparser

import (
	"fmt"
)

// ParseResult holds the result of lenient parsing.
type ParseResult struct {
	Event    *Event
	Warnings []string
	Partial  bool
}

// LenientParser provides best-effort event parsing that never fails on
// malformed input. It runs the same line state machine as Parser and reports
// issues as warnings instead of errors.
type LenientParser struct {
	p        Parser
	warnings []string
}

// NewLenientParser creates a new lenient parser for the given data.
func NewLenientParser(data []byte) *LenientParser {
	lp := &LenientParser{}
	initParser(&lp.p, data)
	lp.p.warn = lp.addWarning
	return lp
}

// Parse extracts whatever the input holds.
func (lp *LenientParser) Parse() *ParseResult {
	result := &ParseResult{}

	if lp.p.length == 0 {
		lp.addWarning(1, "empty input")
		result.Event = &Event{Headers: []Header{}}
		result.Partial = true
		result.Warnings = lp.warnings
		return result
	}

	lp.p.scanHeaders()

	body, hasBody, partial := lp.parseBodyLenient()
	result.Event = &Event{
		Headers: lp.p.headers,
		Body:    body,
		HasBody: hasBody,
	}
	result.Partial = partial
	result.Warnings = lp.warnings
	return result
}

// parseBodyLenient mirrors Parser.parseBody but degrades instead of failing:
// an invalid length yields no body, a short input yields what is available.
func (lp *LenientParser) parseBodyLenient() (body []byte, hasBody, partial bool) {
	p := &lp.p

	v, ok := p.lookup(ContentLength)
	if !ok {
		return nil, false, false
	}

	n, err := ParseLength(v)
	if err != nil {
		lp.addWarning(p.clLine, fmt.Sprintf("invalid %s %q, body ignored", ContentLength, v))
		return nil, false, false
	}

	available := int64(p.length - p.pos)
	if available < n {
		lp.addWarning(0, fmt.Sprintf("%s declared %d, only %d bytes available", ContentLength, n, available))
		body = make([]byte, available)
		copy(body, p.data[p.pos:])
		return body, true, true
	}

	body = make([]byte, n)
	copy(body, p.data[p.pos:p.pos+int(n)])
	if trailing := available - n; trailing > 0 {
		lp.addWarning(0, fmt.Sprintf("%d bytes after the body ignored", trailing))
	}
	return body, true, false
}

func (lp *LenientParser) addWarning(line int, msg string) {
	if line > 0 {
		lp.warnings = append(lp.warnings, fmt.Sprintf("line %d: %s", line, msg))
	} else {
		lp.warnings = append(lp.warnings, msg)
	}
}
