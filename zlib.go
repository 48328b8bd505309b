package inflate

// zlib.go reads the RFC 1950 zlib wrapper: a 2-byte header, the DEFLATE
// payload, and a 4-byte trailer (the Adler-32, skipped but never
// computed — checksum verification is an explicit non-goal per spec.md
// §1). Grounded on spec.md §4.5 directly; cross-checked against
// other_examples/bf13198d_amken3d-gopper__tinycompress-zlib.go.go for the
// header-byte arithmetic shape (read-only reference, not a teacher).

const (
	zlibHeaderLen  = 2
	zlibTrailerLen = 4
	zlibFDictMask  = 0x20
	zlibMethodMask = 0x0F
	zlibMethodDef  = 8
)

// checkZlibHeader validates the 2-byte CMF/FLG header and returns the
// DEFLATE payload bounds within data (excluding the 4-byte trailer).
func checkZlibHeader(data []byte) (payloadEnd int, err error) {
	if len(data) < zlibHeaderLen {
		return 0, ErrIncomplete
	}
	cmf, flg := data[0], data[1]
	if (int(cmf)*256+int(flg))%31 != 0 {
		return 0, ErrZlibHeader
	}
	if cmf&zlibMethodMask != zlibMethodDef {
		return 0, ErrZlibHeader
	}
	if flg&zlibFDictMask != 0 {
		return 0, ErrZlibPresetDictionary
	}
	if len(data) < zlibHeaderLen+zlibTrailerLen {
		return 0, ErrIncomplete
	}
	return len(data) - zlibTrailerLen, nil
}

// LooksLikeZlib reports whether data begins with a structurally valid
// RFC 1950 header, for callers (such as cmd/inflate) that need to sniff
// raw DEFLATE vs. zlib-wrapped input before choosing a decode path.
func LooksLikeZlib(data []byte) bool {
	if len(data) < zlibHeaderLen {
		return false
	}
	cmf, flg := data[0], data[1]
	return (int(cmf)*256+int(flg))%31 == 0 && cmf&zlibMethodMask == zlibMethodDef
}

// ZlibDecompress decodes a zlib-wrapped DEFLATE stream into a fixed
// capacity output buffer, matching Inflate's contract.
func ZlibDecompress(compressed []byte, output []byte) (int, error) {
	end, err := checkZlibHeader(compressed)
	if err != nil {
		return 0, err
	}
	return Inflate(compressed[zlibHeaderLen:end], output)
}

// ZlibDecompressAll decodes a zlib-wrapped DEFLATE stream into a freshly
// allocated, growable output buffer.
func ZlibDecompressAll(compressed []byte) ([]byte, error) {
	end, err := checkZlibHeader(compressed)
	if err != nil {
		return nil, err
	}
	return Decompress(compressed[zlibHeaderLen:end])
}
