package farbfeld

import "fmt"

// ErrorKind categorizes a decode failure. The set is closed: callers can
// switch over it exhaustively instead of matching error text.
type ErrorKind int

const (
	// KindIO indicates the underlying byte source failed. The cause is
	// available via Unwrap.
	KindIO ErrorKind = iota

	// KindTruncatedHeader indicates the stream ended before a full
	// 8-byte magic tag could be read.
	KindTruncatedHeader

	// KindTruncatedDimensions indicates the stream ended before the full
	// 8-byte width/height field could be read.
	KindTruncatedDimensions

	// KindTruncatedPixelRecord indicates the stream ended partway
	// through an 8-byte pixel record.
	KindTruncatedPixelRecord

	// KindInvalidMagic indicates the first 8 bytes are not the farbfeld
	// magic tag.
	KindInvalidMagic

	// KindDimensionMismatch indicates the number of decoded pixel
	// records disagrees with the declared width*height, in either
	// direction.
	KindDimensionMismatch
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "IO"
	case KindTruncatedHeader:
		return "TruncatedHeader"
	case KindTruncatedDimensions:
		return "TruncatedDimensions"
	case KindTruncatedPixelRecord:
		return "TruncatedPixelRecord"
	case KindInvalidMagic:
		return "InvalidMagic"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	default:
		return "Unknown"
	}
}

// DecodeError is the error type returned by Decode, DecodeHeader and
// NewImage. Handle it with errors.As and a switch on Kind.
type DecodeError struct {
	// Kind identifies the failure category.
	Kind ErrorKind

	// BytesRead is the number of bytes consumed by the read that failed.
	// For the truncation kinds it is the partial length of the unit that
	// could not be completed.
	BytesRead int

	// Err is the underlying cause, set only for KindIO.
	Err error

	// detail carries extra diagnostic text for kinds that need it.
	detail string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("farbfeld: read failed after %d bytes: %v", e.BytesRead, e.Err)
	case KindTruncatedHeader:
		return fmt.Sprintf("farbfeld: truncated header: got %d of %d magic bytes", e.BytesRead, magicSize)
	case KindTruncatedDimensions:
		return fmt.Sprintf("farbfeld: truncated dimensions: got %d of %d bytes", e.BytesRead, dimensionsSize)
	case KindTruncatedPixelRecord:
		return fmt.Sprintf("farbfeld: truncated pixel record: got %d of %d bytes", e.BytesRead, recordSize)
	case KindInvalidMagic:
		return "farbfeld: invalid magic tag"
	case KindDimensionMismatch:
		return "farbfeld: dimension mismatch: " + e.detail
	default:
		return "farbfeld: unknown decode error"
	}
}

// Unwrap returns the underlying cause, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
