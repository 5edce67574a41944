package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// keyPrefix namespaces response entries apart from any other cached data.
const keyPrefix = "message:"

// Key returns the cache key for a message content: the hex SHA-256 digest of
// the exact byte sequence. No normalization is applied; contents differing in
// case or whitespace produce different keys.
func Key(content string) string {
	sum := sha256.Sum256([]byte(content))
	return keyPrefix + hex.EncodeToString(sum[:])
}
