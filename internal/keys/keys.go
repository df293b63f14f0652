package keys

import (
	"crypto/sha256"
	"encoding/base64"
)

// DefaultMaxLength is the physical key ceiling most backends tolerate
// (memcached rejects keys longer than 250 bytes).
const DefaultMaxLength = 250

// HashedLength is the length of a digest-derived physical key.
var HashedLength = base64.StdEncoding.EncodedLen(sha256.Size)

// Candidate joins namespace and logical key.
func Candidate(namespace, key string) string {
	return namespace + ":" + key
}

// Physical returns the backend key for (namespace, key).
// The base64 of "<namespace>:<key>" is used while it fits in maxLen; longer
// candidates fall back to base64(sha256(candidate)), which is always
// HashedLength characters. hashed reports which form was produced.
func Physical(namespace, key string, maxLen int) (physical string, hashed bool) {
	candidate := Candidate(namespace, key)
	if base64.StdEncoding.EncodedLen(len(candidate)) <= maxLen {
		return base64.StdEncoding.EncodeToString([]byte(candidate)), false
	}
	sum := sha256.Sum256([]byte(candidate))
	return base64.StdEncoding.EncodeToString(sum[:]), true
}
