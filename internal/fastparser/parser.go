// Package fastparser implements the event decoder without AST construction.
// It scans bytes directly into an Event: one pass classifies physical lines,
// accumulates header values and then cuts the Content-Length delimited body.
package fastparser

import (
	"errors"
	"fmt"
	"strconv"
)

// ContentLength is the header that announces a body.
const ContentLength = "Content-Length"

var (
	// ErrInvalidLength reports a Content-Length value that is not a
	// non-negative decimal integer.
	ErrInvalidLength = errors.New("invalid length header")

	// ErrTruncatedBody reports fewer body bytes than Content-Length announced.
	ErrTruncatedBody = errors.New("truncated body")
)

// Header is a name-value pair.
type Header struct {
	Name  string
	Value string
}

// Event represents a decoded event.
type Event struct {
	Headers []Header // unique names, in order of first appearance
	Body    []byte
	HasBody bool
}

// Error is returned for failures of the body extractor.
type Error struct {
	Err      error  // ErrInvalidLength or ErrTruncatedBody
	Detail   string // human-readable context
	Line     int    // 1-indexed line of the offending header (0 if unknown)
	Position int    // byte offset in input (0 if unknown)
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("esl: parse error at line %d: %v: %s", e.Line, e.Err, e.Detail)
	}
	return fmt.Sprintf("esl: parse error at position %d: %v: %s", e.Position, e.Err, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

type parserState int

const (
	// stateScanning looks for the next header line; stray lines are dropped.
	stateScanning parserState = iota
	// stateAccumulating has a current header; stray lines extend its value.
	stateAccumulating
	// stateBody is terminal: the header/body boundary has been crossed.
	stateBody
)

// Parser is a single-use event scanner.
type Parser struct {
	data   []byte
	pos    int
	length int
	line   int // 1-indexed number of the next physical line

	state   parserState
	headers []Header
	index   map[string]int
	current int // index into headers of the current header, -1 when unset

	// pending holds the current value while continuation lines are appended.
	pending []byte
	folding bool

	clSeen bool
	clLine int

	warn func(line int, msg string)
}

// NewParser creates a new parser for the given data.
func NewParser(data []byte) *Parser {
	p := &Parser{}
	initParser(p, data)
	return p
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte) {
	p.data = data
	p.pos = 0
	p.length = len(data)
	p.line = 1
	p.state = stateScanning
	p.headers = make([]Header, 0, 16)
	p.index = make(map[string]int, 16)
	p.current = -1
	p.pending = p.pending[:0]
	p.folding = false
	p.clSeen = false
	p.clLine = 0
}

// Parse decodes the whole event: headers first, then the body.
func (p *Parser) Parse() (*Event, error) {
	p.scanHeaders()

	body, ok, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &Event{
		Headers: p.headers,
		Body:    body,
		HasBody: ok,
	}, nil
}

// Boundary returns the offset where the header block ended: the start of the
// line after the blank separator, or the input length if none was found.
func (p *Parser) Boundary() int {
	return p.pos
}

// scanHeaders runs the line state machine until the body boundary or the end
// of input.
func (p *Parser) scanHeaders() {
	for p.pos < p.length && p.state != stateBody {
		lineNo := p.line
		line := p.readLine()
		p.step(lineNo, line)
	}
	p.flush()
}

// step applies one physical line to the state machine.
func (p *Parser) step(lineNo int, line []byte) {
	if IsBlank(line) {
		p.flush()
		p.current = -1
		if p.clSeen {
			p.state = stateBody
			return
		}
		p.state = stateScanning
		return
	}

	if name, value, ok := SplitHeaderLine(line); ok {
		p.flush()
		p.set(lineNo, name, value)
		p.state = stateAccumulating
		return
	}

	if p.state == stateAccumulating {
		if !p.folding {
			p.pending = append(p.pending[:0], p.headers[p.current].Value...)
			p.folding = true
		}
		p.pending = append(p.pending, '\n')
		p.pending = append(p.pending, line...)
		return
	}

	if p.warn != nil {
		p.warn(lineNo, fmt.Sprintf("stray line outside any header, discarded: %q", line))
	}
}

// set stores a header, replacing the value of an earlier one with the same name.
func (p *Parser) set(lineNo int, name, value []byte) {
	key := internHeaderName(name)
	if i, ok := p.index[key]; ok {
		p.headers[i].Value = string(value)
		p.current = i
	} else {
		p.index[key] = len(p.headers)
		p.current = len(p.headers)
		p.headers = append(p.headers, Header{Name: key, Value: string(value)})
	}
	if key == ContentLength {
		p.clSeen = true
		p.clLine = lineNo
	}
}

// flush commits accumulated continuation lines to the current header.
func (p *Parser) flush() {
	if p.folding && p.current >= 0 {
		p.headers[p.current].Value = string(p.pending)
	}
	p.pending = p.pending[:0]
	p.folding = false
}

// lookup returns the stored value for name.
func (p *Parser) lookup(name string) (string, bool) {
	i, ok := p.index[name]
	if !ok {
		return "", false
	}
	return p.headers[i].Value, true
}

// parseBody cuts exactly Content-Length bytes starting at the boundary.
func (p *Parser) parseBody() ([]byte, bool, error) {
	v, ok := p.lookup(ContentLength)
	if !ok {
		return nil, false, nil
	}

	n, err := ParseLength(v)
	if err != nil {
		return nil, false, &Error{Err: ErrInvalidLength, Detail: fmt.Sprintf("%s: %q", ContentLength, v), Line: p.clLine}
	}

	available := int64(p.length - p.pos)
	if n > available {
		return nil, false, &Error{
			Err:      ErrTruncatedBody,
			Detail:   fmt.Sprintf("expected %d bytes but only %d available", n, available),
			Position: p.pos,
		}
	}

	body := make([]byte, n)
	copy(body, p.data[p.pos:p.pos+int(n)])
	return body, true, nil
}

// readLine reads bytes until LF, advancing pos past it. A single trailing CR
// is dropped from the returned line.
func (p *Parser) readLine() []byte {
	start := p.pos
	for p.pos < p.length && p.data[p.pos] != '\n' {
		p.pos++
	}
	line := p.data[start:p.pos]
	if p.pos < p.length {
		p.pos++ // LF
	}
	p.line++
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// SplitHeaderLine matches the header-line pattern: a run of name characters
// anchored at the line start, a colon, an optional single space and the rest
// of the line as the value.
func SplitHeaderLine(line []byte) (name, value []byte, ok bool) {
	i := 0
	for i < len(line) && isNameByte(line[i]) {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != ':' {
		return nil, nil, false
	}
	value = line[i+1:]
	if len(value) > 0 && value[0] == ' ' {
		value = value[1:]
	}
	return line[:i], value, true
}

// IsBlank reports whether line is empty or holds only whitespace.
func IsBlank(line []byte) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' && c != '\r' && c != '\v' && c != '\f' {
			return false
		}
	}
	return true
}

// ParseLength parses a Content-Length value as a non-negative decimal integer.
// Surrounding spaces and tabs are ignored; signs are rejected.
func ParseLength(v string) (int64, error) {
	s := trimString(v)
	if s == "" {
		return 0, ErrInvalidLength
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidLength
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidLength
	}
	return n, nil
}

// isNameByte reports whether c may appear in a header name: ASCII letters,
// digits, underscore and hyphen.
func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// trimString trims leading and trailing spaces and tabs.
func trimString(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}
