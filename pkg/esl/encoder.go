package esl

import (
	"io"
)

// Encoder writes events to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of ev to the stream.
func (enc *Encoder) Encode(ev *Event) error {
	data, err := Marshal(ev)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}
