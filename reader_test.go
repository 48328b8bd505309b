package inflate

import (
	"bytes"
	"io"
	"testing"
)

func TestNewReaderDecodesRawDeflate(t *testing.T) {
	w := &bitWriter{}
	writeStoredBlock(w, true, []byte("stream contents"))

	rc, err := NewReader(bytes.NewReader(w.bytes))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "stream contents" {
		t.Fatalf("got %q, want %q", got, "stream contents")
	}
}

func TestNewReaderShortReads(t *testing.T) {
	w := &bitWriter{}
	writeStoredBlock(w, true, []byte("0123456789"))

	rc, err := NewReader(bytes.NewReader(w.bytes))
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer rc.Close()

	buf := make([]byte, 4)
	var got []byte
	for {
		n, err := rc.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if string(got) != "0123456789" {
		t.Fatalf("got %q, want %q", got, "0123456789")
	}
}

func TestNewZlibReaderDecodesWrappedStream(t *testing.T) {
	w := &bitWriter{}
	writeFixedBlock(w, true, []token{litToken('z'), litToken('i'), litToken('p')})

	stream := append([]byte{0x78, 0x9C}, w.bytes...)
	stream = append(stream, 0, 0, 0, 0)

	rc, err := NewZlibReader(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewZlibReader: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "zip" {
		t.Fatalf("got %q, want %q", got, "zip")
	}
}

func TestNewReaderPropagatesDecodeError(t *testing.T) {
	bad := []byte{0xFF, 0xFF, 0xFF}
	if _, err := NewReader(bytes.NewReader(bad)); err == nil {
		t.Fatalf("expected an error decoding garbage input")
	}
}
