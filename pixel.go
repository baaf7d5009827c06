package farbfeld

import "image/color"

// Pixel is a single farbfeld pixel: four independent 16-bit channels in
// wire order. Alpha is not premultiplied. Two pixels are equal exactly when
// all four channels are equal, so Pixel values compare with == and may be
// used as map keys.
type Pixel struct {
	R uint16
	G uint16
	B uint16
	A uint16
}

// Channels returns the four channel values in wire order
// (red, green, blue, alpha).
func (p Pixel) Channels() [4]uint16 {
	return [4]uint16{p.R, p.G, p.B, p.A}
}

// RGBA implements color.Color, returning alpha-premultiplied channel
// values like color.NRGBA64 does.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r *= uint32(p.A)
	r /= 0xffff
	g = uint32(p.G)
	g *= uint32(p.A)
	g /= 0xffff
	b = uint32(p.B)
	b *= uint32(p.A)
	b /= 0xffff
	a = uint32(p.A)
	return
}

// PixelModel is the color model of farbfeld images. Converting an
// arbitrary color goes through color.NRGBA64, which matches the format's
// non-premultiplied 16-bit storage.
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}
