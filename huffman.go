package inflate

// huffman.go builds canonical Huffman decode tables: a direct-indexed root
// table plus minimally-sized subtables for codewords longer than the root
// width, giving O(1) amortised decode per symbol (spec.md §4.2/§4.3).
//
// The overall shape — count lengths, detect over/under-subscribed codes by
// tracking how many codewords of each length remain possible, sort symbols
// into canonical order, then walk codewords in order — is the teacher's
// construct() generalized from a single flat (count, symbol) pair (which
// decode() in reader.go walks bit by bit) to a two-level table that can be
// indexed directly.

// tableEntry is one slot of a decode table. A slot is either a decoded
// symbol (length > 0, isSub false), a subtable pointer (isSub true), or
// unused (length == 0, isSub false), which decode() rejects as invalid.
type tableEntry struct {
	sym     uint16 // decoded symbol value
	base    uint16 // length/distance base, 0 if not applicable
	extra   uint8  // number of extra bits to read after this symbol, 0 if none
	length  uint8  // codeword bit length consumed at this table level
	isSub   bool
	subIdx  uint32 // start offset into the owning table's sub arena
	subBits uint8  // width in bits of the subtable at subIdx
}

// huffmanTable is a root table plus a shared arena for all of its
// subtables. The arena starts empty and grows by append as subtables are
// allocated; it is not preallocated to a worst-case size, and a subtable
// widened by growSub leaves its old slots unused in the arena.
type huffmanTable struct {
	rootBits uint
	root     []tableEntry
	sub      []tableEntry
}

// extraInfo maps a symbol to its (base, extraBits) decoration. Tables with
// no extra-bit payload (code-length table) pass nil.
type extraInfo func(sym int) (base uint16, extra uint8)

// buildTable constructs a decode table from a per-symbol code-length
// array. lengths[i] == 0 means symbol i is unused. rootBits is the fixed
// root-table width for this table kind; maxBits is the maximum codeword
// length the table kind permits; allowDegenerate permits the single-
// symbol-of-length-1 incomplete-code exception (true for literal/length
// and distance tables, false for the code-length table, per spec.md
// §4.2 step 3 and zlib's inftrees.c precedent for the same exception).
func buildTable(lengths []uint8, rootBits, maxBits uint, allowDegenerate bool, decorate extraInfo) (*huffmanTable, error) {
	var counts [16]int
	used := 0
	for _, l := range lengths {
		if l != 0 {
			counts[l]++
			used++
		}
	}

	if used == 0 {
		// Kraft sum 0: every lookup is invalid, per spec.md §4.2 step 3.
		return &huffmanTable{rootBits: rootBits, root: make([]tableEntry, 1<<rootBits)}, nil
	}

	maxLen := 0
	for l := 1; l <= 15; l++ {
		if counts[l] > 0 {
			maxLen = l
		}
	}

	left := 1
	for l := 1; l <= maxLen; l++ {
		left <<= 1
		left -= counts[l]
		if left < 0 {
			return nil, ErrOverfullCode
		}
	}
	if left > 0 {
		if !(allowDegenerate && maxLen == 1) {
			return nil, ErrIncompleteCode
		}
		// Degenerate case: a single length-1 code. The missing codeword
		// simply decodes to nothing usable; fall through and build a
		// table with one real entry plus sentinels for the rest.
	}

	// Stable counting sort of symbols by (length asc, symbol asc).
	var offsets [16]int
	offsets[1] = 0
	for l := 1; l < 15; l++ {
		offsets[l+1] = offsets[l] + counts[l]
	}
	sorted := make([]int, used)
	cursor := offsets
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		sorted[cursor[l]] = sym
		cursor[l]++
	}

	t := &huffmanTable{rootBits: rootBits, root: make([]tableEntry, 1<<rootBits)}

	// Walk symbols in canonical order, deriving each codeword by
	// bit-reversed increment: code starts at 0 for the first symbol of
	// the shortest used length, and increments (in reversed-bit space) by
	// inserting a 1 at the lowest zero bit for subsequent codewords of
	// the same or greater length, matching spec.md §4.2 step 5/§9.
	code := uint32(0)
	idx := 0
	for l := 1; l <= maxLen; l++ {
		for i := 0; i < counts[l]; i++ {
			sym := sorted[idx]
			idx++

			var base uint16
			var extra uint8
			if decorate != nil {
				base, extra = decorate(sym)
			}
			entry := tableEntry{sym: uint16(sym), base: base, extra: extra, length: uint8(l)}

			if err := t.place(code, uint(l), entry); err != nil {
				return nil, err
			}

			// Bit-reversed increment: scanning the l-bit reversed code from
			// bit l-1 downward, clear set bits until the first zero bit and
			// set it (the lowest zero bit of the canonical codeword).
			code = nextReversedCode(code, uint(l))
		}
	}
	return t, nil
}

// nextReversedCode advances a bit-reversed-order codeword of width l,
// implementing the "find the lowest zero bit, clear below it, set it"
// trick spec.md §9 calls out explicitly.
func nextReversedCode(code uint32, l uint) uint32 {
	bit := uint32(1) << (l - 1)
	for code&bit != 0 {
		code ^= bit
		bit >>= 1
	}
	code |= bit
	return code
}

// place installs entry at every root (and, if needed, subtable) index
// whose low bits equal code, per spec.md §4.2 steps 6/7.
func (t *huffmanTable) place(code uint32, length uint, entry tableEntry) error {
	if length <= t.rootBits {
		stride := uint32(1) << length
		for idx := code; idx < uint32(len(t.root)); idx += stride {
			t.root[idx] = entry
		}
		return nil
	}

	rootIdx := code & ((1 << t.rootBits) - 1)
	subLen := length - t.rootBits
	root := &t.root[rootIdx]

	if !root.isSub {
		// First symbol sharing this root prefix: allocate a subtable
		// sized to the widest codeword seen so far for this prefix.
		// Subsequent wider codewords in the same group trigger growSub.
		width := subLen
		size := 1 << width
		start := uint32(len(t.sub))
		t.sub = append(t.sub, make([]tableEntry, size)...)
		*root = tableEntry{isSub: true, subIdx: start, subBits: uint8(width)}
	} else if uint(root.subBits) < subLen {
		t.growSub(root, subLen)
	}

	// Subtable entries record only the bits consumed after the root lookup.
	entry.length = uint8(subLen)
	width := uint(root.subBits)
	subCode := (code >> t.rootBits) & ((1 << width) - 1)
	stride := uint32(1) << subLen
	base := root.subIdx
	size := uint32(1) << width
	for idx := subCode; idx < size; idx += stride {
		t.sub[base+idx] = entry
	}
	return nil
}

// growSub widens an existing subtable to newWidth bits, replicating
// existing entries at their new stride. Canonical code enumeration visits
// lengths in increasing order, so every prior entry in this group has a
// shorter or equal subLen and is safe to replicate.
func (t *huffmanTable) growSub(root *tableEntry, newWidth uint) {
	oldWidth := uint(root.subBits)
	oldBase := root.subIdx
	oldSize := uint32(1) << oldWidth
	newSize := uint32(1) << newWidth

	newBase := uint32(len(t.sub))
	t.sub = append(t.sub, make([]tableEntry, newSize)...)
	stride := uint32(1) << oldWidth
	for i := uint32(0); i < oldSize; i++ {
		e := t.sub[oldBase+i]
		if e.length == 0 && !e.isSub {
			continue
		}
		for idx := i; idx < newSize; idx += stride {
			t.sub[newBase+idx] = e
		}
	}
	root.subIdx = newBase
	root.subBits = uint8(newWidth)
}

// decode reads one symbol from r using table t, per spec.md §4.3.
//
// r's high bits above count are always zero (the bitReader invariant), so
// peek(rootBits) is safe to call even when fewer than rootBits real bits
// remain: the table lookup either lands on an entry whose length is no
// greater than the real bit count (in which case it is correct regardless
// of the zero padding, since canonical codes are prefix-free) or on one
// that needs more real bits than we have, which the length/count checks
// below catch and report as incomplete rather than decoded.
func (t *huffmanTable) decode(r *bitReader) (tableEntry, error) {
	r.fill()
	if r.bitsAvailable() == 0 {
		return tableEntry{}, ErrIncomplete
	}

	e := t.root[r.peek(t.rootBits)]

	if e.isSub {
		if r.count < t.rootBits {
			return tableEntry{}, ErrIncomplete
		}
		r.consume(t.rootBits)
		r.fill()
		width := uint(e.subBits)
		sub := t.sub[e.subIdx+uint32(r.peek(width))]
		if sub.length == 0 {
			return tableEntry{}, ErrInvalidCode
		}
		if r.count < uint(sub.length) {
			return tableEntry{}, ErrIncomplete
		}
		r.consume(uint(sub.length))
		return sub, nil
	}

	if e.length == 0 {
		// A complete code never has a zero root entry; an incomplete
		// (degenerate single-symbol) code does, and it only takes 1 real
		// bit to reach it, which fill() above already guarantees when
		// bitsAvailable() > 0. So this is a genuine invalid code.
		return tableEntry{}, ErrInvalidCode
	}
	if r.count < uint(e.length) {
		return tableEntry{}, ErrIncomplete
	}
	r.consume(uint(e.length))
	return e, nil
}
