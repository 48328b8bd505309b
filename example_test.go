package inflate_test

import (
	"fmt"

	inflate "github.com/rfc1951/inflate"
)

func Example() {
	// A raw DEFLATE stream for the 3-byte stored block "go!".
	compressed := []byte{0x01, 0x03, 0x00, 0xFC, 0xFF, 'g', 'o', '!'}
	out, err := inflate.Decompress(compressed)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(out))
	// Output: go!
}

func ExampleInflate() {
	compressed := []byte{0x01, 0x05, 0x00, 0xFA, 0xFF, 'h', 'e', 'l', 'l', 'o'}
	buf := make([]byte, 5)
	n, err := inflate.Inflate(compressed, buf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(buf[:n]))
	// Output: hello
}
