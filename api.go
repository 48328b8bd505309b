// Package inflate decodes raw DEFLATE streams (RFC 1951) and the zlib
// framing around them (RFC 1950). It reconstructs the original
// uncompressed bytes from a complete, in-memory compressed buffer, or
// reports a precise error from the taxonomy in errors.go.
//
// The package does not implement an encoder, does not verify the
// Adler-32 trailer zlib streams carry, and does not support streaming or
// incremental input: callers hand over the whole compressed buffer in
// one call.
package inflate

// Inflate decodes a raw DEFLATE stream from compressed into output,
// which the caller supplies with a fixed capacity. On success n is the
// number of decoded bytes written to output[:n].
//
// A nil or empty compressed input succeeds immediately with n == 0. A
// nil output is only an error once the decoder actually needs to write
// a byte (ErrNoOutput); an output too small for the decoded stream
// yields ErrOverflow once it is exhausted.
func Inflate(compressed []byte, output []byte) (n int, err error) {
	if len(compressed) == 0 {
		return 0, nil
	}
	out := &fixedSink{buf: output}
	engine := newBlockEngine(compressed, out)
	if err := engine.run(); err != nil {
		return out.n, err
	}
	return out.n, nil
}

// Decompress decodes a raw DEFLATE stream into a freshly allocated,
// growable byte slice, layered on top of Inflate's fixed-capacity
// contract per spec.md §9.
func Decompress(compressed []byte) ([]byte, error) {
	if len(compressed) == 0 {
		return []byte{}, nil
	}
	out := &growSink{}
	engine := newBlockEngine(compressed, out)
	if err := engine.run(); err != nil {
		return out.buf, err
	}
	return out.buf, nil
}
