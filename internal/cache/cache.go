package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a corpus file path, its content and
// whether the text is NFC normalised before extraction. Changing any of them
// invalidates the cached extraction.
func CacheKey(path string, content []byte, normalize bool) string {
	mode := byte('r')
	if normalize {
		mode = 'n'
	}
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{0, mode, 0})
	h.Write(content)
	return "argstruct:v1:" + hex.EncodeToString(h.Sum(nil))
}
