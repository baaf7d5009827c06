// Package ffio provides exact-size block reads for fixed-layout formats.
package ffio

import "io"

// ReadBlock fills buf from r, looping over short reads so that readers
// delivering fewer bytes per call than requested still yield whole blocks.
// It returns the number of bytes read and one of:
//
//   - nil when buf was filled completely;
//   - io.EOF when the source was already exhausted (zero bytes read),
//     the clean end-of-stream case;
//   - io.ErrUnexpectedEOF when the source ended after a partial block;
//   - any other reader error, with the bytes read so far.
func ReadBlock(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			if n < len(buf) {
				return n, io.ErrUnexpectedEOF
			}
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
