package output

import (
	"fmt"
	"io"

	"github.com/TylerBrock/colorjson"
	"github.com/bytedance/sonic"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/shape-esl/pkg/esl"
)

// JSONFormatter writes one compact JSON object per line.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, ev *esl.Event) error {
	data, err := sonic.Marshal(NewRecord(ev))
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// PrettyFormatter writes indented, optionally colored JSON of the event's
// AST form.
type PrettyFormatter struct {
	Color bool
}

func (f *PrettyFormatter) Format(w io.Writer, ev *esl.Event) error {
	obj := esl.NodeToInterface(esl.EventToNode(ev))

	cf := colorjson.NewFormatter()
	cf.Indent = 2
	cf.DisabledColor = !f.Color
	data, err := cf.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// YAMLFormatter writes one YAML document per event, each starting with "---".
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, ev *esl.Event) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewRecord(ev)); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

// CBORFormatter writes a CBOR sequence, one item per event.
type CBORFormatter struct{}

func (f *CBORFormatter) Format(w io.Writer, ev *esl.Event) error {
	data, err := cbor.Marshal(NewRecord(ev))
	if err != nil {
		return fmt.Errorf("failed to marshal CBOR: %w", err)
	}
	_, err = w.Write(data)
	return err
}
