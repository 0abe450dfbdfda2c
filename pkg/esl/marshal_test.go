package esl

import (
	"bytes"
	"errors"
	"testing"
)

func TestMarshal_HeadersOnly(t *testing.T) {
	ev := NewEvent(Headers{
		{Name: "Event-Name", Value: "HEARTBEAT"},
		{Name: "Core-UUID", Value: "abc"},
	}, nil)

	data, err := Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "Event-Name: HEARTBEAT\nCore-UUID: abc\n\n"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant\n%q", data, want)
	}
}

func TestMarshal_AutoContentLength(t *testing.T) {
	ev := NewEvent(Headers{{Name: "Content-Type", Value: "api/response"}}, []byte("+OK"))

	data, err := Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "Content-Type: api/response\nContent-Length: 3\n\n+OK"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant\n%q", data, want)
	}
}

func TestMarshal_ContentLengthReplaced(t *testing.T) {
	ev := NewEvent(Headers{
		{Name: "Content-Length", Value: "999"},
		{Name: "Content-Type", Value: "text/plain"},
	}, []byte("hello"))

	data, err := Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := "Content-Length: 5\nContent-Type: text/plain\n\nhello"
	if string(data) != want {
		t.Errorf("Marshal() =\n%q\nwant\n%q", data, want)
	}
}

func TestMarshal_EmptyBody(t *testing.T) {
	data, err := Marshal(NewEvent(nil, []byte{}))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "Content-Length: 0\n\n" {
		t.Errorf("Marshal() = %q, want Content-Length: 0", data)
	}
}

func TestMarshal_LengthWithoutBody(t *testing.T) {
	ev := NewEvent(Headers{{Name: "Content-Length", Value: "4"}}, nil)

	_, err := Marshal(ev)
	if err == nil {
		t.Fatal("expected error for Content-Length without body")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}

func TestMarshal_Nil(t *testing.T) {
	if _, err := Marshal(nil); err == nil {
		t.Error("expected error for nil event")
	}
}

func TestMarshal_MultilineValue(t *testing.T) {
	ev := NewEvent(Headers{{Name: "variable_switch_r_sdp", Value: sdpValue}}, nil)

	data, err := Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("variable_switch_r_sdp: v=0\no=- ")) {
		t.Errorf("Marshal() = %q, want continuation lines", data)
	}
}

func TestEncoder_Encode(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	if err := enc.Encode(NewEvent(Headers{{Name: "A", Value: "1"}}, nil)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := enc.Encode(NewEvent(Headers{{Name: "B", Value: "2"}}, []byte("xy"))); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "A: 1\n\nB: 2\nContent-Length: 2\n\nxy"
	if buf.String() != want {
		t.Errorf("encoded = %q, want %q", buf.String(), want)
	}
}

func TestEncoder_EncodeError(t *testing.T) {
	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(NewEvent(Headers{{Name: "Content-Length", Value: "1"}}, nil))
	if err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes on error, want 0", buf.Len())
	}
}
