package wave

import (
	"errors"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{TooShort, "TooShort"},
		{BadContainerTag, "BadContainerTag"},
		{BadFormatTag, "BadFormatTag"},
		{MissingFormatChunk, "MissingFormatChunk"},
		{UnsupportedFormatChunkLength, "UnsupportedFormatChunkLength"},
		{UnsupportedAudioFormat, "UnsupportedAudioFormat"},
		{MissingDataChunk, "MissingDataChunk"},
		{TruncatedPayload, "TruncatedPayload"},
		{ErrorKind(0), "ErrorKind(0)"},
		{ErrorKind(99), "ErrorKind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String()=%q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestFormatError(t *testing.T) {
	err := newFormatError(MissingDataChunk, 36, `"LIST"`)

	want := `wave: data chunk missing at offset 36 (got "LIST")`
	if err.Error() != want {
		t.Fatalf("Error()=%q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrMissingDataChunk) {
		t.Fatal("expected the data chunk sentinel")
	}

	if errors.Is(err, ErrMissingFormatChunk) {
		t.Fatal("matched an unrelated sentinel")
	}

	unknown := &FormatError{Kind: ErrorKind(42)}
	if !errors.Is(unknown, errUnknownKind) {
		t.Fatal("unknown kinds should unwrap to errUnknownKind")
	}
}

func TestFormatError_EveryKindHasSentinel(t *testing.T) {
	for kind := TooShort; kind <= TruncatedPayload; kind++ {
		if errors.Is(newFormatError(kind, 0, ""), errUnknownKind) {
			t.Errorf("%s has no sentinel error", kind)
		}
	}
}
