package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching extraction results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ContentKey generates a cache key from uploaded file content. Two uploads
// with identical bytes share one extraction result regardless of filename.
func ContentKey(content []byte) string {
	hash := sha256.Sum256(content)
	return "claimsort:v1:" + hex.EncodeToString(hash[:])
}
