// Package tokenizer classifies the physical lines of an event using Shape's
// tokenizer framework.
package tokenizer

// Token kinds produced by the line tokenizer.
// Every physical line yields at most one line token followed by a line feed.
const (
	// Line tokens
	TokenHeaderLine   = "HeaderLine"   // Name: value
	TokenContinuation = "Continuation" // non-blank, not a header line
	TokenBlank        = "Blank"        // whitespace only

	// Structural tokens
	TokenLF = "LF" // line feed terminating a physical line
)
