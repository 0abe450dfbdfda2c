package esl

import (
	"testing"
)

func TestClassify(t *testing.T) {
	input := "Event-Name: CUSTOM\n" +
		"variable_sdp: v=0\n" +
		"o=root 1 1 IN IP4 10.0.0.1\n" +
		"\n" +
		"  \r\n" +
		"Content-Length: 3\r\n" +
		"\n" +
		"+OK"

	want := []Line{
		{Number: 1, Kind: LineHeader, Text: "Event-Name: CUSTOM", Name: "Event-Name", Value: "CUSTOM"},
		{Number: 2, Kind: LineHeader, Text: "variable_sdp: v=0", Name: "variable_sdp", Value: "v=0"},
		{Number: 3, Kind: LineContinuation, Text: "o=root 1 1 IN IP4 10.0.0.1"},
		{Number: 4, Kind: LineBlank},
		{Number: 5, Kind: LineBlank, Text: "  "},
		{Number: 6, Kind: LineHeader, Text: "Content-Length: 3", Name: "Content-Length", Value: "3"},
		{Number: 7, Kind: LineBlank},
		{Number: 8, Kind: LineContinuation, Text: "+OK"},
	}

	got := Classify(input)
	if len(got) != len(want) {
		t.Fatalf("Classify() returned %d lines, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i+1, got[i], want[i])
		}
	}
}

func TestClassify_TrailingLF(t *testing.T) {
	got := Classify("A: 1\n")
	if len(got) != 1 {
		t.Fatalf("Classify() returned %d lines, want 1: %+v", len(got), got)
	}
	if got[0].Kind != LineHeader {
		t.Errorf("Kind = %v, want header", got[0].Kind)
	}
}

func TestClassify_Empty(t *testing.T) {
	if got := Classify(""); len(got) != 0 {
		t.Errorf("Classify(\"\") = %+v, want none", got)
	}
}

func TestLineKind_String(t *testing.T) {
	tests := map[LineKind]string{
		LineHeader:       "header",
		LineContinuation: "continuation",
		LineBlank:        "blank",
		LineKind(42):     "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("LineKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
