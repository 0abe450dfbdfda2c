package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/shapestone/shape-esl/pkg/esl"
)

// TextFormatter prints headers as "Name: value" lines followed by the body.
type TextFormatter struct {
	Color bool
}

func (f *TextFormatter) Format(w io.Writer, ev *esl.Event) error {
	name := newColor(f.Color, color.FgCyan)
	sep := newColor(f.Color, color.FgBlack, color.Bold)

	for _, h := range ev.Headers() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", name.Sprint(h.Name), h.Value); err != nil {
			return err
		}
	}
	if body, ok := ev.Body(); ok {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", sep.Sprintf("-- body (%d bytes) --", len(body)), body); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, sep.Sprint("----"))
	return err
}

// WriteLines prints a line classification, one line per row.
func WriteLines(w io.Writer, lines []esl.Line, colored bool) error {
	kinds := map[esl.LineKind]*color.Color{
		esl.LineHeader:       newColor(colored, color.FgGreen),
		esl.LineContinuation: newColor(colored, color.FgYellow),
		esl.LineBlank:        newColor(colored, color.FgBlack, color.Bold),
	}
	for _, l := range lines {
		c, ok := kinds[l.Kind]
		if !ok {
			c = newColor(colored)
		}
		if _, err := fmt.Fprintf(w, "%4d %s %q\n", l.Number, c.Sprintf("%-12s", l.Kind), l.Text); err != nil {
			return err
		}
	}
	return nil
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
