// Package output renders decoded events for the esldump command.
package output

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-esl/pkg/esl"
)

// Supported format names.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
	FormatYAML   = "yaml"
	FormatCBOR   = "cbor"
)

// Formatter writes one event to w.
type Formatter interface {
	Format(w io.Writer, ev *esl.Event) error
}

// New returns the formatter for format. Color applies to text and pretty.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case FormatText, "":
		return &TextFormatter{Color: color}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatPretty:
		return &PrettyFormatter{Color: color}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatCBOR:
		return &CBORFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Field is one header in a Record.
type Field struct {
	Name  string `json:"name" yaml:"name" cbor:"name"`
	Value string `json:"value" yaml:"value" cbor:"value"`
}

// Record is the serializable form of an event.
type Record struct {
	Headers []Field `json:"headers" yaml:"headers" cbor:"headers"`
	Body    *string `json:"body,omitempty" yaml:"body,omitempty" cbor:"body,omitempty"`
}

// NewRecord converts an event, keeping header order.
func NewRecord(ev *esl.Event) Record {
	headers := ev.Headers()
	rec := Record{Headers: make([]Field, len(headers))}
	for i, h := range headers {
		rec.Headers[i] = Field{Name: h.Name, Value: h.Value}
	}
	if ev.HasBody() {
		body := ev.BodyString()
		rec.Body = &body
	}
	return rec
}
