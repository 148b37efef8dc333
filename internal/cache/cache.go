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

// Key generates a namespaced cache key from a lookup value
func Key(namespace, value string) string {
	hash := sha256.Sum256([]byte(value))
	return "leadscore:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
