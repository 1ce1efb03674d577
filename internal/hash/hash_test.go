package hash

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort_Format(t *testing.T) {
	h := Short([]byte("hello world"))
	assert.Len(t, h, ShortLen)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{7}$`), h)
}

func TestShort_Deterministic(t *testing.T) {
	a := Short([]byte("body { color: red }"))
	b := Short([]byte("body { color: red }"))
	assert.Equal(t, a, b)

	c := Short([]byte("body { color: blue }"))
	assert.NotEqual(t, a, c)
}

func TestShort_BinarySafe(t *testing.T) {
	// Bytes that are not valid UTF-8 must still hash deterministically.
	blob := []byte{0x89, 0x50, 0x4e, 0x47, 0xff, 0xfe, 0x00, 0x01}
	assert.Equal(t, Short(blob), Short(blob))
	assert.Len(t, Short(blob), ShortLen)
}

func TestShort_KnownDigest(t *testing.T) {
	// md5("hello") = 5d41402abc4b2a76b9719d911017c592
	assert.Equal(t, "5d41402", Short([]byte("hello")))
}
