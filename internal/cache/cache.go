// Package cache stores fetched corpus pages so repeated runs do not hit
// the Federal Register API. Layout mirrors the layered design: a small
// in-memory layer in front of a TTL'd disk layer under the user cache dir.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface shared by all layers.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a request URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "eopulse:v1:" + hex.EncodeToString(sum[:])
}
