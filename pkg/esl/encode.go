package esl

import "strconv"

// appendEvent serializes an event to wire format.
func appendEvent(buf []byte, ev *Event) ([]byte, error) {
	_, hasLength := ev.Header(ContentLengthHeader)
	if hasLength && !ev.hasBody {
		return buf, &ParseError{Message: "Content-Length header set on an event without body", Err: ErrInvalidLength}
	}

	for _, h := range ev.headers {
		if h.Name == ContentLengthHeader {
			buf = appendLength(buf, len(ev.body))
			continue
		}
		buf = appendHeader(buf, h.Name, h.Value)
	}
	if ev.hasBody && !hasLength {
		buf = appendLength(buf, len(ev.body))
	}

	buf = appendLF(buf) // blank line before body
	if ev.hasBody {
		buf = append(buf, ev.body...)
	}
	return buf, nil
}

// appendHeader appends "Name: value\n" to buf.
func appendHeader(buf []byte, name, value string) []byte {
	buf = append(buf, name...)
	buf = append(buf, ':', ' ')
	buf = append(buf, value...)
	return appendLF(buf)
}

// appendLength appends "Content-Length: n\n" to buf.
func appendLength(buf []byte, n int) []byte {
	buf = append(buf, ContentLengthHeader...)
	buf = append(buf, ':', ' ')
	buf = strconv.AppendInt(buf, int64(n), 10)
	return appendLF(buf)
}

// appendLF appends \n to buf.
func appendLF(buf []byte) []byte {
	return append(buf, '\n')
}
