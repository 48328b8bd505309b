package inflate

import (
	"bytes"
	"io"
)

// reader.go adapts the one-shot Inflate/ZlibDecompress calls to an
// io.ReadCloser, grounded directly on the teacher's NewReader/Read/Close
// in reader.go: read the input to completion (spec.md's non-goal of
// streaming input means there is nowhere else to get the bytes from),
// decode once, and serve Read calls out of the result.

type reader struct {
	data []byte
	pos  int
}

func (r *reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *reader) Close() error { return nil }

func newReader(decoded []byte) io.ReadCloser {
	return &reader{data: decoded}
}

// NewReader reads r to completion, decodes it as a raw DEFLATE stream,
// and returns an io.ReadCloser serving the decoded bytes.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	decoded, err := Decompress(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return newReader(decoded), nil
}

// NewZlibReader reads r to completion, decodes it as a zlib-wrapped
// DEFLATE stream, and returns an io.ReadCloser serving the decoded
// bytes.
func NewZlibReader(r io.Reader) (io.ReadCloser, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	decoded, err := ZlibDecompressAll(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return newReader(decoded), nil
}
