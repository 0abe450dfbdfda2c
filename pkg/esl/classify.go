package esl

import (
	"strings"

	"github.com/shapestone/shape-esl/internal/fastparser"
	"github.com/shapestone/shape-esl/internal/tokenizer"
)

// LineKind is the raw classification of one physical line.
type LineKind int

const (
	LineHeader       LineKind = iota // Name: value
	LineContinuation                 // non-blank, not a header line
	LineBlank                        // empty or whitespace only
)

func (k LineKind) String() string {
	switch k {
	case LineHeader:
		return "header"
	case LineContinuation:
		return "continuation"
	case LineBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Line is one classified physical line.
type Line struct {
	Number int // 1-indexed
	Kind   LineKind
	Text   string // line content without LF and trailing CR
	Name   string // header name, for LineHeader
	Value  string // header value, for LineHeader
}

// Classify splits input into physical lines and classifies each one.
//
// It reports the raw kind of every line, including lines a decoder would
// discard or treat as body. A trailing LF does not start a new line.
func Classify(input string) []Line {
	tok := tokenizer.NewTokenizer()
	tok.Initialize(input)
	tokens, _ := tok.Tokenize()

	var lines []Line
	number := 1
	pending := false // a line token has been seen for the current line

	for _, t := range tokens {
		if t.Kind() == tokenizer.TokenLF {
			if !pending {
				lines = append(lines, Line{Number: number, Kind: LineBlank})
			}
			number++
			pending = false
			continue
		}
		lines = append(lines, newLine(number, t.Kind(), t.ValueString()))
		pending = true
	}
	return lines
}

func newLine(number int, kind, text string) Line {
	text = strings.TrimSuffix(text, "\r")
	line := Line{Number: number, Text: text}
	switch kind {
	case tokenizer.TokenHeaderLine:
		line.Kind = LineHeader
		name, value, _ := fastparser.SplitHeaderLine([]byte(text))
		line.Name = string(name)
		line.Value = string(value)
	case tokenizer.TokenBlank:
		line.Kind = LineBlank
	default:
		line.Kind = LineContinuation
	}
	return line
}
