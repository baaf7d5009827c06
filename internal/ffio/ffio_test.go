package ffio

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

func TestReadBlock_Full(t *testing.T) {
	buf := make([]byte, 4)
	n, err := ReadBlock(bytes.NewReader([]byte{1, 2, 3, 4, 5}), buf)
	if err != nil {
		t.Fatalf("ReadBlock() error: %v", err)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Errorf("buf = %v, want [1 2 3 4]", buf)
	}
}

func TestReadBlock_CleanEOF(t *testing.T) {
	buf := make([]byte, 4)
	n, err := ReadBlock(bytes.NewReader(nil), buf)
	if err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}
}

func TestReadBlock_Partial(t *testing.T) {
	for have := 1; have < 4; have++ {
		buf := make([]byte, 4)
		n, err := ReadBlock(bytes.NewReader(make([]byte, have)), buf)
		if err != io.ErrUnexpectedEOF {
			t.Errorf("%d of 4 bytes: err = %v, want io.ErrUnexpectedEOF", have, err)
		}
		if n != have {
			t.Errorf("%d of 4 bytes: n = %d, want %d", have, n, have)
		}
	}
}

func TestReadBlock_ShortReads(t *testing.T) {
	// A reader handing out one byte per call must still fill the block.
	buf := make([]byte, 8)
	n, err := ReadBlock(iotest.OneByteReader(bytes.NewReader([]byte("farbfeld"))), buf)
	if err != nil {
		t.Fatalf("ReadBlock() error: %v", err)
	}
	if n != 8 || string(buf) != "farbfeld" {
		t.Errorf("got %d bytes %q, want 8 bytes %q", n, buf, "farbfeld")
	}
}

func TestReadBlock_ReaderError(t *testing.T) {
	cause := errors.New("broken pipe")
	buf := make([]byte, 4)

	// TimeoutReader fails on the second call; the error must pass
	// through untranslated.
	_, err := ReadBlock(iotest.TimeoutReader(bytes.NewReader([]byte{1, 2})), buf)
	if err != iotest.ErrTimeout {
		t.Errorf("err = %v, want iotest.ErrTimeout", err)
	}

	_, err = ReadBlock(iotest.ErrReader(cause), buf)
	if err != cause {
		t.Errorf("err = %v, want the reader's own error", err)
	}
}

func TestReadBlock_DataWithEOF(t *testing.T) {
	// A reader may return the final bytes and io.EOF together; a block
	// completed on that call is still a clean full read.
	buf := make([]byte, 4)
	n, err := ReadBlock(iotest.DataErrReader(bytes.NewReader([]byte{1, 2, 3, 4})), buf)
	if err != nil {
		t.Fatalf("ReadBlock() error: %v", err)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4", n)
	}
}
