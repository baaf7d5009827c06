// Package farbfeld implements the farbfeld lossless image format.
//
// Farbfeld is the suckless image format: an 8-byte magic tag, a big-endian
// 32-bit width and height, followed by one 8-byte record per pixel holding
// four big-endian 16-bit channels (red, green, blue, alpha) in row-major
// order. There is no compression, no metadata and no variant layouts, which
// makes the format trivial to pipe between tools.
//
// Basic usage for decoding:
//
//	file, _ := os.Open("image.ff")
//	img, err := farbfeld.Decode(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Basic usage for encoding:
//
//	file, _ := os.Create("output.ff")
//	err := farbfeld.Encode(file, img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decode failures are reported as *DecodeError values categorized by
// ErrorKind, so callers can distinguish a wrong magic tag from a truncated
// stream without matching message text.
package farbfeld

import (
	"image"
	"io"
)

// Magic is the 8-byte tag that opens every farbfeld stream.
const Magic = "farbfeld"

// Wire-format sizes in bytes.
const (
	magicSize      = 8
	dimensionsSize = 8
	recordSize     = 8
)

// Header holds the dimensions parsed from a farbfeld stream before any
// pixel data is read.
type Header struct {
	// Width is the image width in pixels.
	Width uint32

	// Height is the image height in pixels.
	Height uint32
}

// Decode reads a complete farbfeld stream from r and returns the decoded
// image. The reader is consumed exactly once, front to back; buffering is
// the caller's concern. On failure the returned error is a *DecodeError
// and no partial image is returned.
func Decode(r io.Reader) (*Image, error) {
	d := newDecoder(r)
	return d.decode()
}

// DecodeHeader reads only the magic tag and dimension fields from r,
// leaving the reader positioned at the first pixel record. It is the cheap
// way to inspect a stream without decoding pixel data.
func DecodeHeader(r io.Reader) (*Header, error) {
	d := newDecoder(r)
	return d.decodeHeader()
}

// Encode writes img to w as a farbfeld stream.
func Encode(w io.Writer, img *Image) error {
	e := newEncoder(w, img)
	return e.encode()
}

// init registers the farbfeld format with the image package.
func init() {
	image.RegisterFormat("farbfeld", Magic,
		func(r io.Reader) (image.Image, error) {
			return Decode(r)
		},
		func(r io.Reader) (image.Config, error) {
			h, err := DecodeHeader(r)
			if err != nil {
				return image.Config{}, err
			}
			return image.Config{
				ColorModel: PixelModel,
				Width:      int(h.Width),
				Height:     int(h.Height),
			}, nil
		})
}
