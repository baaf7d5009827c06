package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	log "github.com/sirupsen/logrus"
)

// source is a readable byte stream plus the cleanup for whatever layers
// sit underneath it.
type source struct {
	io.Reader
	close func() error
}

func (s *source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openSource opens path for buffered reading. "-" selects stdin. Sources
// ending in .gz or .zst are decompressed transparently, so piped farbfeld
// files can stay compressed on disk.
func openSource(path string) (io.ReadCloser, error) {
	if path == "-" {
		return &source{Reader: bufio.NewReader(os.Stdin)}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)

	switch {
	case strings.HasSuffix(path, ".gz"):
		log.Debugf("decompressing %s with gzip", path)
		zr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &source{Reader: zr, close: func() error {
			zerr := zr.Close()
			if ferr := f.Close(); zerr == nil {
				zerr = ferr
			}
			return zerr
		}}, nil

	case strings.HasSuffix(path, ".zst"):
		log.Debugf("decompressing %s with zstd", path)
		zr, err := zstd.NewReader(br)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &source{Reader: zr, close: func() error {
			zr.Close()
			return f.Close()
		}}, nil

	default:
		return &source{Reader: br, close: f.Close}, nil
	}
}

// openOutput opens path for writing. "-" selects stdout, which is not
// closed by the returned closer.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloseWriter{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloseWriter struct {
	io.Writer
}

func (nopCloseWriter) Close() error { return nil }
