package farbfeld

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a decoded farbfeld raster: a width, a height and a row-major
// pixel sequence whose length always equals width*height. The container
// identity is immutable after construction; individual pixels are mutated
// through the handles returned by PixelAt and PixelAtIndex.
//
// Image implements image.Image, so a decoded farbfeld raster can be handed
// directly to image/png, x/image/bmp and friends.
type Image struct {
	width  uint32
	height uint32
	pixels []Pixel
}

// NewImage builds an Image from pre-decoded pixels, validating that
// len(pixels) equals width*height. The product is computed in 64 bits, so
// dimensions near the uint32 limit cannot wrap around the check. On
// mismatch the error is a *DecodeError of KindDimensionMismatch.
//
// The pixel slice is retained, not copied.
func NewImage(width, height uint32, pixels []Pixel) (*Image, error) {
	want := uint64(width) * uint64(height)
	if uint64(len(pixels)) != want {
		return nil, &DecodeError{
			Kind:   KindDimensionMismatch,
			detail: fmt.Sprintf("have %d pixels, want %d (%d x %d)", len(pixels), want, width, height),
		}
	}
	return &Image{width: width, height: height, pixels: pixels}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() uint32 {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() uint32 {
	return m.height
}

// NumPixels returns the total number of pixels, width*height.
func (m *Image) NumPixels() int {
	return len(m.pixels)
}

// Pixels returns the backing pixel storage in row-major order. The slice
// is shared with the image: writes through it are visible to all accessors.
func (m *Image) Pixels() []Pixel {
	return m.pixels
}

// PixelAtIndex returns a mutable handle to the pixel at the given linear
// index, or nil and false when the index is out of range.
func (m *Image) PixelAtIndex(i int) (*Pixel, bool) {
	if i < 0 || i >= len(m.pixels) {
		return nil, false
	}
	return &m.pixels[i], true
}

// PixelAt returns a mutable handle to the pixel at column x of row y,
// stored at linear index y*width + x, or nil and false when either
// coordinate is out of range.
func (m *Image) PixelAt(x, y uint32) (*Pixel, bool) {
	if x >= m.width || y >= m.height {
		return nil, false
	}
	return &m.pixels[uint64(y)*uint64(m.width)+uint64(x)], true
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return PixelModel
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(m.width), int(m.height))
}

// At implements image.Image. Out-of-range coordinates return the zero
// Pixel, matching the stdlib convention of not faulting outside Bounds.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return Pixel{}
	}
	p, ok := m.PixelAt(uint32(x), uint32(y))
	if !ok {
		return Pixel{}
	}
	return *p
}

// FromImage converts any stdlib image into a farbfeld Image, going through
// the non-premultiplied 16-bit color model. The fast path copies
// image.NRGBA64 pixels without a color.Model round trip.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]Pixel, 0, width*height)

	if n, ok := src.(*image.NRGBA64); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := n.Pix[(y-n.Rect.Min.Y)*n.Stride:]
			for x := 0; x < width; x++ {
				s := row[(bounds.Min.X-n.Rect.Min.X+x)*8:]
				pixels = append(pixels, Pixel{
					R: uint16(s[0])<<8 | uint16(s[1]),
					G: uint16(s[2])<<8 | uint16(s[3]),
					B: uint16(s[4])<<8 | uint16(s[5]),
					A: uint16(s[6])<<8 | uint16(s[7]),
				})
			}
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, pixelModel(src.At(x, y)).(Pixel))
			}
		}
	}

	// len(pixels) is width*height by construction, so the invariant holds.
	return &Image{width: uint32(width), height: uint32(height), pixels: pixels}
}
