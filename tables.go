package inflate

// Fixed tables from RFC 1951 §3.2.5. These are immutable data, not
// mutable state, and are owned by the package the way spec.md §9 asks.

const (
	maxLitLenSymbols  = 286
	maxDistSymbols    = 30
	maxCodeLenSymbols = 19
	endOfBlock        = 256

	// Root table widths, fixed per spec.md §3.
	codeLenRootBits = 7
	litLenRootBits  = 11
	distRootBits    = 8

	// Maximum codeword length per table, per spec.md §3/§4.2.
	codeLenMaxBits = 7
	litLenMaxBits  = 15
	distMaxBits    = 15

	// Arena sizes, spec.md §3/§9: worst-case root+subtable entry counts.
	codeLenTableSize = 128
	litLenTableSize  = 2342
	distTableSize    = 402

	minMatchLength = 3
	maxMatchLength = 258
	maxDistance    = 32768
)

// lengthBase and lengthExtraBits are indexed by (symbol - 257) for
// literal/length symbols 257..285.
var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase and distExtraBits are indexed by distance symbol 0..29.
var distBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193, 257, 385, 513,
	769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the fixed permutation in which the 3-bit code-length
// code lengths are transmitted for dynamic blocks (RFC 1951 §3.2.7).
var codeLengthOrder = [19]uint8{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// fixedLitLenLengths are the bit-lengths for the static Huffman
// literal/length tree (RFC 1951 §3.2.6).
func fixedLitLenLengths() []uint8 {
	l := make([]uint8, 288)
	for i := 0; i <= 143; i++ {
		l[i] = 8
	}
	for i := 144; i <= 255; i++ {
		l[i] = 9
	}
	for i := 256; i <= 279; i++ {
		l[i] = 7
	}
	for i := 280; i <= 287; i++ {
		l[i] = 8
	}
	return l
}

// fixedDistLengths are the bit-lengths for the static Huffman distance
// tree: all 32 codes (30 used, 2 reserved-but-present) get 5 bits.
func fixedDistLengths() []uint8 {
	l := make([]uint8, 32)
	for i := range l {
		l[i] = 5
	}
	return l
}
