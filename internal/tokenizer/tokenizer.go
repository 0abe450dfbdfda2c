package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-esl/internal/fastparser"
)

// NewTokenizer creates a line tokenizer for event text.
// Events are line-oriented, so there are only two matchers:
// 1. LF (line terminator)
// 2. Line (the content of one physical line, classified)
//
// An empty line produces a bare LF token. The whitespace skipper is disabled
// because whitespace-only lines are significant.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		LFMatcher(),
		LineMatcher(),
	)
}

// NewTokenizerWithStream creates a line tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// LFMatcher matches a single line feed.
func LFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '\n' {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(TokenLF, []rune{'\n'})
	}
}

// LineMatcher consumes everything up to the next LF (or EOS) and classifies
// it as a header line, a continuation line or a blank line. A trailing CR
// stays in the token value.
func LineMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || r == '\n' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(Classify(string(value)), value)
	}
}

// Classify returns the token kind for the content of one physical line.
// A single trailing CR is ignored.
func Classify(line string) string {
	b := []byte(line)
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	if fastparser.IsBlank(b) {
		return TokenBlank
	}
	if _, _, ok := fastparser.SplitHeaderLine(b); ok {
		return TokenHeaderLine
	}
	return TokenContinuation
}
