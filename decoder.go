package farbfeld

import (
	"encoding/binary"
	"io"

	"github.com/mrjoshuak/go-farbfeld/internal/ffio"
)

// maxPreallocPixels caps the pixel storage reserved up front from the
// declared dimensions. The dimension fields are attacker-controlled, so a
// stream claiming a huge image must earn its allocation by actually
// delivering records; beyond the cap the slice grows by append as usual.
const maxPreallocPixels = 1 << 20

// decoder handles farbfeld decoding. It reads the source exactly once,
// front to back, with no look-ahead.
type decoder struct {
	r io.Reader
}

// newDecoder creates a new decoder. The reader is used as-is: buffering
// strategy is left to the caller.
func newDecoder(r io.Reader) *decoder {
	return &decoder{r: r}
}

// decode runs the full pipeline: magic tag, dimensions, pixel records,
// then the validating Image constructor. The first error aborts the
// remaining stages and is returned unchanged.
func (d *decoder) decode() (*Image, error) {
	if err := d.readMagic(); err != nil {
		return nil, err
	}

	width, height, err := d.readDimensions()
	if err != nil {
		return nil, err
	}

	pixels, err := d.readPixels(width, height)
	if err != nil {
		return nil, err
	}

	return NewImage(width, height, pixels)
}

// decodeHeader reads only the magic tag and dimension fields.
func (d *decoder) decodeHeader() (*Header, error) {
	if err := d.readMagic(); err != nil {
		return nil, err
	}

	width, height, err := d.readDimensions()
	if err != nil {
		return nil, err
	}

	return &Header{Width: width, Height: height}, nil
}

// readMagic consumes the 8-byte magic tag and verifies it.
func (d *decoder) readMagic() error {
	var buf [magicSize]byte
	n, err := ffio.ReadBlock(d.r, buf[:])
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return &DecodeError{Kind: KindTruncatedHeader, BytesRead: n}
	case err != nil:
		return &DecodeError{Kind: KindIO, BytesRead: n, Err: err}
	}
	if string(buf[:]) != Magic {
		return &DecodeError{Kind: KindInvalidMagic, BytesRead: n}
	}
	return nil
}

// readDimensions consumes the 8-byte dimension field and returns
// (width, height). Zero dimensions are syntactically legal.
func (d *decoder) readDimensions() (uint32, uint32, error) {
	var buf [dimensionsSize]byte
	n, err := ffio.ReadBlock(d.r, buf[:])
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return 0, 0, &DecodeError{Kind: KindTruncatedDimensions, BytesRead: n}
	case err != nil:
		return 0, 0, &DecodeError{Kind: KindIO, BytesRead: n, Err: err}
	}
	width := binary.BigEndian.Uint32(buf[0:4])
	height := binary.BigEndian.Uint32(buf[4:8])
	return width, height, nil
}

// readPixels consumes 8-byte records until the clean end of the stream.
// It trusts the stream's actual length, not the declared dimensions: the
// declared product only sizes the initial allocation, clamped to
// maxPreallocPixels. A record boundary is the only legal place for the
// stream to end.
func (d *decoder) readPixels(width, height uint32) ([]Pixel, error) {
	declared := uint64(width) * uint64(height)
	if declared > maxPreallocPixels {
		declared = maxPreallocPixels
	}
	pixels := make([]Pixel, 0, declared)

	var buf [recordSize]byte
	for {
		n, err := ffio.ReadBlock(d.r, buf[:])
		switch {
		case err == io.EOF:
			return pixels, nil
		case err == io.ErrUnexpectedEOF:
			return nil, &DecodeError{Kind: KindTruncatedPixelRecord, BytesRead: n}
		case err != nil:
			return nil, &DecodeError{Kind: KindIO, BytesRead: n, Err: err}
		}
		pixels = append(pixels, Pixel{
			R: binary.BigEndian.Uint16(buf[0:2]),
			G: binary.BigEndian.Uint16(buf[2:4]),
			B: binary.BigEndian.Uint16(buf[4:6]),
			A: binary.BigEndian.Uint16(buf[6:8]),
		})
	}
}
