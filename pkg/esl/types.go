// Package esl decodes Event Socket event records into an immutable
// header/body structure.
//
// An event is a block of "Name: value" header lines. A header value may span
// several physical lines; lines that do not look like a header line are
// appended to the value of the preceding header. When a Content-Length header
// is present, the header block ends at the next blank line and is followed by
// exactly that many bytes of body.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple goroutines.
// Each function call creates its own parser instance with no shared mutable state.
// An *Event is immutable once built. A Decoder is not safe for concurrent use.
//
// # Parsing APIs
//
// The package provides multiple parsing paths:
//
//   - Parse/ParseBytes/ParseReader - Fast direct parsing into an *Event
//   - ParseLenient - Best-effort parsing with warnings
//   - ParseNode/ParseNodeReader - AST-based parsing via shape-core
//   - NewDecoder/DecodeStream - Framing events out of an io.Reader
//   - Classify - Per-line classification via the shape-core tokenizer
package esl

import (
	"github.com/shapestone/shape-esl/internal/fastparser"
)

// ContentLengthHeader is the header that announces a body.
const ContentLengthHeader = fastparser.ContentLength

// Header represents a single header name-value pair.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered list of headers with unique, case-sensitive names.
// Order is the order of first appearance.
type Headers []Header

// Lookup returns the value for name and whether it is present.
func (h Headers) Lookup(name string) (string, bool) {
	for _, hdr := range h {
		if hdr.Name == name {
			return hdr.Value, true
		}
	}
	return "", false
}

// Get returns the value for name, or the empty string if absent.
func (h Headers) Get(name string) string {
	v, _ := h.Lookup(name)
	return v
}

// Has reports whether a header named name is present.
func (h Headers) Has(name string) bool {
	_, ok := h.Lookup(name)
	return ok
}

// Len returns the number of distinct header names.
func (h Headers) Len() int { return len(h) }

// Names returns the header names in order.
func (h Headers) Names() []string {
	names := make([]string, len(h))
	for i, hdr := range h {
		names[i] = hdr.Name
	}
	return names
}

// Map returns the headers as a map.
func (h Headers) Map() map[string]string {
	m := make(map[string]string, len(h))
	for _, hdr := range h {
		m[hdr.Name] = hdr.Value
	}
	return m
}

// Set replaces the value of an existing header in place, or appends a new one.
func (h *Headers) Set(name, value string) {
	for i, hdr := range *h {
		if hdr.Name == name {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Header{Name: name, Value: value})
}

// Del removes the header with the given name.
func (h *Headers) Del(name string) {
	j := 0
	for _, hdr := range *h {
		if hdr.Name != name {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a copy of the headers.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the Content-Length value, or -1 if absent or invalid.
func (h Headers) ContentLength() int64 {
	v, ok := h.Lookup(ContentLengthHeader)
	if !ok {
		return -1
	}
	n, err := fastparser.ParseLength(v)
	if err != nil {
		return -1
	}
	return n
}

// Event is a decoded event record: a header mapping and an optional body.
// It is immutable; accessors return copies.
type Event struct {
	headers Headers
	index   map[string]int
	body    []byte
	hasBody bool
}

// NewEvent builds an event from headers and an optional body. Duplicate names
// collapse with the last value winning at the position of the first. A nil
// body means no body; a non-nil empty body is an empty body.
func NewEvent(headers Headers, body []byte) *Event {
	var deduped Headers
	for _, h := range headers {
		deduped.Set(h.Name, h.Value)
	}
	ev := newEvent(deduped)
	if body != nil {
		ev.body = append([]byte{}, body...)
		ev.hasBody = true
	}
	return ev
}

func newEvent(headers Headers) *Event {
	if headers == nil {
		headers = Headers{}
	}
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h.Name] = i
	}
	return &Event{headers: headers, index: index}
}

// fromInternal wraps a fastparser result. Header names and values are fresh
// strings and the body is already a copy, so nothing is copied again.
func fromInternal(fe *fastparser.Event) *Event {
	headers := make(Headers, len(fe.Headers))
	for i, h := range fe.Headers {
		headers[i] = Header{Name: h.Name, Value: h.Value}
	}
	ev := newEvent(headers)
	ev.body = fe.Body
	ev.hasBody = fe.HasBody
	return ev
}

func toInternal(ev *Event) *fastparser.Event {
	fe := &fastparser.Event{
		Headers: make([]fastparser.Header, len(ev.headers)),
		Body:    ev.body,
		HasBody: ev.hasBody,
	}
	for i, h := range ev.headers {
		fe.Headers[i] = fastparser.Header{Name: h.Name, Value: h.Value}
	}
	return fe
}

// Headers returns a copy of the header mapping. It is empty, not nil, when
// no header lines matched.
func (e *Event) Headers() Headers {
	clone := make(Headers, len(e.headers))
	copy(clone, e.headers)
	return clone
}

// Header returns the value for name and whether it is present.
func (e *Event) Header(name string) (string, bool) {
	i, ok := e.index[name]
	if !ok {
		return "", false
	}
	return e.headers[i].Value, true
}

// Get returns the value for name, or the empty string if absent.
func (e *Event) Get(name string) string {
	v, _ := e.Header(name)
	return v
}

// Len returns the number of distinct header names.
func (e *Event) Len() int { return len(e.headers) }

// Body returns a copy of the body and whether the event has one.
func (e *Event) Body() ([]byte, bool) {
	if !e.hasBody {
		return nil, false
	}
	return append([]byte{}, e.body...), true
}

// HasBody reports whether the event carries a body.
func (e *Event) HasBody() bool { return e.hasBody }

// BodyString returns the body as a string, empty when there is none.
func (e *Event) BodyString() string { return string(e.body) }

// Equal reports whether two events have the same headers in the same order
// and the same body.
func (e *Event) Equal(other *Event) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.headers) != len(other.headers) || e.hasBody != other.hasBody {
		return false
	}
	for i := range e.headers {
		if e.headers[i] != other.headers[i] {
			return false
		}
	}
	return string(e.body) == string(other.body)
}

// ParseResult holds the result of lenient parsing.
type ParseResult struct {
	Event    *Event   // never nil
	Warnings []string // non-fatal issues
	Partial  bool     // true if the body was truncated or the input empty
}
