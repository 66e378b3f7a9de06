package testsupport

import (
	"bytes"
	"testing"
)

// WriteJunk writes size filler bytes to path. Tests use it to plant cache
// files that exist but cannot be decoded. A size <= 0 writes a single byte.
func WriteJunk(t testing.TB, path string, size int) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	WriteText(t, path, string(bytes.Repeat([]byte{0x42}, size)))
}
