package inflate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOutput is returned when the caller's output buffer is nil and
	// the decoder needs to write at least one byte.
	ErrNoOutput = errors.New("inflate: no output buffer")
	// ErrIncomplete is returned when the bit stream ends mid-symbol or
	// mid-field. It never reads past the end of the input.
	ErrIncomplete = errors.New("inflate: compressed stream incomplete")
	// ErrInvalidBlockType is returned for the reserved block kind 3.
	ErrInvalidBlockType = errors.New("inflate: invalid block type")
	// ErrBlockLengthMismatch is returned when a stored block's LEN and
	// NLEN fields disagree.
	ErrBlockLengthMismatch = errors.New("inflate: stored block length mismatch")
	// ErrOverflow is returned when the fixed-capacity output buffer would
	// be exhausted.
	ErrOverflow = errors.New("inflate: output buffer too small")
	// ErrValueNotAllowed is returned for reserved literal/length or
	// distance symbols (286, 287, 30, 31).
	ErrValueNotAllowed = errors.New("inflate: decoded symbol not allowed")
	// ErrInvalidBackReference is returned when an LZ77 distance exceeds
	// the number of bytes written so far.
	ErrInvalidBackReference = errors.New("inflate: back-reference distance exceeds output")
	// ErrOverfullCode is returned when a Huffman code-length array's
	// Kraft sum exceeds 1.
	ErrOverfullCode = errors.New("inflate: overfull huffman code")
	// ErrIncompleteCode is returned when a Huffman code-length array's
	// Kraft sum is less than 1 outside the single-symbol degenerate case.
	ErrIncompleteCode = errors.New("inflate: incomplete huffman code")
	// ErrInvalidCode is returned for a malformed code-length decode
	// sequence (e.g. repeat code 16 at position 0).
	ErrInvalidCode = errors.New("inflate: invalid huffman code")

	// ErrZlibHeader is returned when the 2-byte zlib header fails the
	// RFC 1950 checksum or does not name the DEFLATE method.
	ErrZlibHeader = errors.New("inflate: invalid zlib header")
	// ErrZlibPresetDictionary is returned when the zlib header's FDICT
	// bit is set; preset dictionaries are not supported.
	ErrZlibPresetDictionary = errors.New("inflate: zlib preset dictionary not supported")
)

// wrapAt annotates err with a byte offset into the compressed input while
// keeping it matchable with errors.Is against the sentinel.
func wrapAt(err error, offset int) error {
	return fmt.Errorf("%w (at input byte %d)", err, offset)
}
