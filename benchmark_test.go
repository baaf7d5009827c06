package farbfeld

import (
	"bytes"
	"io"
	"testing"
)

// benchStream builds a size*size gradient stream for benchmarking.
func benchStream(size int) []byte {
	records := make([][4]uint16, size*size)
	for i := range records {
		records[i] = [4]uint16{uint16(i), uint16(i >> 1), uint16(i >> 2), 0xFFFF}
	}
	return encodeStream(uint32(size), uint32(size), records...)
}

func BenchmarkDecode(b *testing.B) {
	data := benchStream(256)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeHeader(b *testing.B) {
	data := benchStream(256)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := DecodeHeader(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	img, err := Decode(bytes.NewReader(benchStream(256)))
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(magicSize + dimensionsSize + recordSize*img.NumPixels()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := Encode(io.Discard, img); err != nil {
			b.Fatal(err)
		}
	}
}
