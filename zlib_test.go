package inflate

import "testing"

func TestCheckZlibHeaderRejectsBadChecksum(t *testing.T) {
	data := []byte{0x78, 0x9D, 0, 0, 0, 0} // 0x9D breaks the mod-31 check
	if _, err := checkZlibHeader(data); err != ErrZlibHeader {
		t.Fatalf("err = %v, want ErrZlibHeader", err)
	}
}

func TestCheckZlibHeaderRejectsWrongMethod(t *testing.T) {
	// CMF low nibble must be 8 (deflate); this CMF/FLG pair passes the
	// mod-31 check with method nibble 7 instead.
	cmf, flg := byte(0x77), byte(0x00)
	for int(cmf)*256+int(flg) == 0 || (int(cmf)*256+int(flg))%31 != 0 {
		flg++
	}
	data := []byte{cmf, flg, 0, 0, 0, 0}
	if _, err := checkZlibHeader(data); err != ErrZlibHeader {
		t.Fatalf("err = %v, want ErrZlibHeader", err)
	}
}

func TestCheckZlibHeaderRejectsPresetDictionary(t *testing.T) {
	cmf := byte(0x78)
	var flg byte
	for f := 0; f < 256; f++ {
		if (int(cmf)*256+f)%31 == 0 && f&zlibFDictMask != 0 {
			flg = byte(f)
			break
		}
	}
	data := []byte{cmf, flg, 0, 0, 0, 0}
	if _, err := checkZlibHeader(data); err != ErrZlibPresetDictionary {
		t.Fatalf("err = %v, want ErrZlibPresetDictionary", err)
	}
}

func TestCheckZlibHeaderRejectsShortInput(t *testing.T) {
	if _, err := checkZlibHeader([]byte{0x78}); err != ErrIncomplete {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
	if _, err := checkZlibHeader([]byte{0x78, 0x9C, 0, 0}); err != ErrIncomplete {
		t.Fatalf("err = %v, want ErrIncomplete (missing trailer)", err)
	}
}

func TestLooksLikeZlibSniffsHeader(t *testing.T) {
	if !LooksLikeZlib([]byte{0x78, 0x9C}) {
		t.Fatalf("expected 0x78 0x9C to look like zlib")
	}
	if LooksLikeZlib([]byte{0x1F, 0x8B}) { // gzip magic, not zlib
		t.Fatalf("expected gzip magic not to look like zlib")
	}
	if LooksLikeZlib([]byte{0x78}) {
		t.Fatalf("one byte cannot look like a zlib header")
	}
}

func TestZlibDecompressFixedCapacity(t *testing.T) {
	w := &bitWriter{}
	writeStoredBlock(w, true, []byte("ok"))

	stream := append([]byte{0x78, 0x9C}, w.bytes...)
	stream = append(stream, 0, 0, 0, 0)

	out := make([]byte, 2)
	n, err := ZlibDecompress(stream, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out[:n]) != "ok" {
		t.Fatalf("got %q, want %q", out[:n], "ok")
	}
}
