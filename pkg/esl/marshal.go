package esl

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal returns the wire-format encoding of ev: one "Name: value" line per
// header in order, a blank line, then the body.
//
// When ev has a body, Content-Length is written as the body length, replacing
// any stored value, and appended if absent. An event with a Content-Length
// header but no body is rejected.
//
// Values are written verbatim, so an embedded line feed produces continuation
// lines. A value line that itself looks like a header line, or a blank value
// line, will not survive a Parse of the output.
//
// Marshal uses a sync.Pool buffer internally for zero-alloc serialization.
func Marshal(ev *Event) ([]byte, error) {
	if ev == nil {
		return nil, fmt.Errorf("esl: Marshal(nil)")
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	buf, err := appendEvent(buf, ev)
	if err != nil {
		*bp = buf
		bufPool.Put(bp)
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
