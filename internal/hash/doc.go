// Package hash provides the short content fingerprint spliced into asset URLs.
//
// The fingerprint is a 7-character hex prefix of an MD5 digest. MD5 is fine
// here: the hash only needs to change when the content changes so that CDNs
// and browsers refetch; it carries no security weight.
package hash
