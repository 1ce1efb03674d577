package assetgo

import (
	"strings"
)

// AddHash splices hash into url as a new dot-separated segment immediately
// before the extension: AddHash("a/b/name.ext", "h1234ab") returns
// "a/b/name.h1234ab.ext".
//
// A url without any "." has no extension to splice before; it is returned
// unchanged. An empty hash is likewise a no-op. Applying AddHash twice with
// different hashes yields two hash segments; callers that need idempotence
// must splice into the original URL.
func AddHash(url, hash string) string {
	if hash == "" {
		return url
	}
	i := strings.LastIndex(url, ".")
	if i < 0 {
		return url
	}
	return url[:i] + "." + hash + url[i:]
}
