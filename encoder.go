package farbfeld

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// encoder handles farbfeld encoding.
type encoder struct {
	w   *bufio.Writer
	img *Image
}

// newEncoder creates a new encoder. Output is buffered internally because
// the format is written one 8-byte record at a time.
func newEncoder(w io.Writer, img *Image) *encoder {
	return &encoder{
		w:   bufio.NewWriter(w),
		img: img,
	}
}

// encode writes the magic tag, the big-endian dimensions and one record
// per pixel in row-major order, then flushes.
func (e *encoder) encode() error {
	if _, err := e.w.WriteString(Magic); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}

	var buf [recordSize]byte
	binary.BigEndian.PutUint32(buf[0:4], e.img.width)
	binary.BigEndian.PutUint32(buf[4:8], e.img.height)
	if _, err := e.w.Write(buf[:]); err != nil {
		return fmt.Errorf("writing dimensions: %w", err)
	}

	for i := range e.img.pixels {
		p := &e.img.pixels[i]
		binary.BigEndian.PutUint16(buf[0:2], p.R)
		binary.BigEndian.PutUint16(buf[2:4], p.G)
		binary.BigEndian.PutUint16(buf[4:6], p.B)
		binary.BigEndian.PutUint16(buf[6:8], p.A)
		if _, err := e.w.Write(buf[:]); err != nil {
			return fmt.Errorf("writing pixel %d: %w", i, err)
		}
	}

	return e.w.Flush()
}
