package esl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/destel/rill"

	"github.com/shapestone/shape-esl/internal/fastparser"
)

// Decoder reads events from an input stream carrying back-to-back events.
// A single Decoder is not safe for concurrent use; create one per goroutine
// or serialize access externally.
type Decoder struct {
	r        *bufio.Reader
	maxFrame int64
}

// NewDecoder returns a new decoder that reads from r.
// The decoder uses buffered reading for efficient parsing.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// SetMaxFrameSize limits the size of a single frame in bytes. Zero or a
// negative value means no limit.
func (dec *Decoder) SetMaxFrameSize(n int64) {
	dec.maxFrame = n
}

// ReadFrame returns the raw text of the next event.
//
// Blank lines before an event are skipped. Lines are then read up to the
// first blank line; if they carry a Content-Length header, exactly that many
// further bytes are read as well. A clean end of stream returns io.EOF, a
// stream ending inside a frame returns an error wrapping io.ErrUnexpectedEOF.
func (dec *Decoder) ReadFrame() ([]byte, error) {
	var frame []byte

	// Skip blank lines between events.
	for {
		line, err := dec.readLine(0)
		if errors.Is(err, ErrFrameTooLarge) {
			return nil, err
		}
		if len(line) == 0 && err != nil {
			return nil, err
		}
		if !fastparser.IsBlank(trimLF(line)) {
			frame = line
			if err != nil {
				return nil, unexpected(err)
			}
			break
		}
		if err != nil {
			return nil, err
		}
	}

	// Header block up to and including the first blank line.
	for {
		line, err := dec.readLine(len(frame))
		if errors.Is(err, ErrFrameTooLarge) {
			return nil, err
		}
		frame = append(frame, line...)
		if len(line) > 0 && fastparser.IsBlank(trimLF(line)) && line[len(line)-1] == '\n' {
			break
		}
		if err != nil {
			return nil, unexpected(err)
		}
	}

	headers, _ := fastparser.ScanHeaders(frame)
	v, ok := fastparser.LookupLength(headers)
	if !ok {
		return frame, nil
	}
	n, err := fastparser.ParseLength(v)
	if err != nil {
		pe := newParseError(fmt.Sprintf("%v: %s: %q", ErrInvalidLength, ContentLengthHeader, v), 0)
		pe.Err = ErrInvalidLength
		return nil, pe
	}
	if n > int64(math.MaxInt-len(frame)) {
		return nil, fmt.Errorf("esl: decode: %w: body of %d bytes cannot be buffered", ErrFrameTooLarge, n)
	}
	if dec.maxFrame > 0 && n > dec.maxFrame-int64(len(frame)) {
		return nil, fmt.Errorf("esl: decode: %w: body of %d bytes exceeds the %d byte limit", ErrFrameTooLarge, n, dec.maxFrame)
	}

	buf := bytes.NewBuffer(frame)
	if dec.maxFrame > 0 {
		buf.Grow(int(n))
	}
	if _, err := io.CopyN(buf, dec.r, n); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("esl: decode body: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads the next event from the stream.
func (dec *Decoder) Decode() (*Event, error) {
	frame, err := dec.ReadFrame()
	if err != nil {
		return nil, err
	}
	return ParseBytes(frame)
}

// readLine reads one physical line including its LF. At the end of the stream
// the final unterminated line is returned along with io.EOF. The frame limit
// is checked against used plus the line read so far as each buffered chunk
// arrives.
func (dec *Decoder) readLine(used int) ([]byte, error) {
	var line []byte
	for {
		chunk, err := dec.r.ReadSlice('\n')
		line = append(line, chunk...)
		if serr := dec.checkSize(used + len(line)); serr != nil {
			return nil, serr
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return line, err
	}
}

// unexpected wraps a read error hit inside a frame; EOF there is unexpected.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("esl: decode: %w", err)
}

func (dec *Decoder) checkSize(n int) error {
	if dec.maxFrame > 0 && int64(n) > dec.maxFrame {
		return fmt.Errorf("esl: decode: %w: header block exceeds %d bytes", ErrFrameTooLarge, dec.maxFrame)
	}
	return nil
}

// trimLF drops a trailing LF and a CR before it.
func trimLF(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// DecodeStream decodes every event in r and delivers them on the returned
// channel, which is closed at the end of the stream. Decoding stops at the
// first error, which is delivered as the last item.
func DecodeStream(r io.Reader) <-chan rill.Try[*Event] {
	return NewDecoder(r).Stream()
}

// Stream is DecodeStream for an existing decoder.
func (dec *Decoder) Stream() <-chan rill.Try[*Event] {
	res := make(chan rill.Try[*Event])

	go func() {
		defer close(res)
		for {
			ev, err := dec.Decode()
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed) {
					return
				}
				res <- rill.Wrap[*Event](nil, fmt.Errorf("error decoding stream: %w", err))
				return
			}
			res <- rill.Wrap(ev, nil)
		}
	}()

	return res
}
