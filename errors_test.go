package farbfeld

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindIO, "IO"},
		{KindTruncatedHeader, "TruncatedHeader"},
		{KindTruncatedDimensions, "TruncatedDimensions"},
		{KindTruncatedPixelRecord, "TruncatedPixelRecord"},
		{KindInvalidMagic, "InvalidMagic"},
		{KindDimensionMismatch, "DimensionMismatch"},
		{ErrorKind(99), "Unknown"},
	}

	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDecodeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *DecodeError
		want string
	}{
		{"io", &DecodeError{Kind: KindIO, BytesRead: 3, Err: errors.New("boom")}, "boom"},
		{"truncated header", &DecodeError{Kind: KindTruncatedHeader, BytesRead: 5}, "5 of 8"},
		{"truncated dimensions", &DecodeError{Kind: KindTruncatedDimensions, BytesRead: 2}, "2 of 8"},
		{"truncated record", &DecodeError{Kind: KindTruncatedPixelRecord, BytesRead: 7}, "7 of 8"},
		{"invalid magic", &DecodeError{Kind: KindInvalidMagic}, "magic"},
		{"mismatch", &DecodeError{Kind: KindDimensionMismatch, detail: "have 3 pixels, want 4 (2 x 2)"}, "want 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if !strings.HasPrefix(msg, "farbfeld: ") {
				t.Errorf("Error() = %q, want farbfeld: prefix", msg)
			}
			if !strings.Contains(msg, tt.want) {
				t.Errorf("Error() = %q, want substring %q", msg, tt.want)
			}
		})
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	cause := errors.New("short circuit")
	err := &DecodeError{Kind: KindIO, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if (&DecodeError{Kind: KindInvalidMagic}).Unwrap() != nil {
		t.Error("Unwrap() of a causeless error != nil")
	}
}
