// Package hibp implements the k-anonymity range lookup protocol of the
// haveibeenpwned.com Pwned Passwords API: only the first five characters of a
// password's SHA1 hash ever leave the process, and the exact match against
// the returned candidate set happens locally.
package hibp

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Digest and digest part length constants.
const (
	// DigestLen is the length of the full uppercase hex SHA1 digest.
	DigestLen = sha1.Size * 2

	// PrefixLen is the number of leading digest characters disclosed to the
	// remote index. k-anonymity needs the hash split like this.
	PrefixLen = 5

	// SuffixLen is the length of the digest remainder matched locally.
	SuffixLen = DigestLen - PrefixLen
)

// Digest returns the uppercase hexadecimal SHA1 fingerprint of password.
// The empty password is never a meaningful lookup target, so it maps to the
// empty string without hashing.
func Digest(password string) string {
	if password == "" {
		return ""
	}

	h := sha1.New()
	h.Write([]byte(password))
	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
}

// SplitDigest partitions a full digest into the queryable prefix and the
// locally matched suffix. prefix+suffix always reassembles the input.
func SplitDigest(digest string) (prefix, suffix string) {
	return digest[:PrefixLen], digest[PrefixLen:]
}
