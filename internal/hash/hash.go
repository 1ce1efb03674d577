package hash

import (
	"crypto/md5" //nolint:gosec // cache busting fingerprint, not integrity
	"encoding/hex"
)

// ShortLen is the length of the hex fingerprint spliced into URLs.
// Seven characters keeps URLs readable while making accidental collisions
// across a deploy's asset set vanishingly unlikely.
const ShortLen = 7

// Short returns the first ShortLen characters of the lowercase hex MD5
// digest of data. The digest is computed over the raw bytes, so it is safe
// for binary assets (images) as well as text.
func Short(data []byte) string {
	sum := md5.Sum(data) //nolint:gosec // see above
	return hex.EncodeToString(sum[:])[:ShortLen]
}
