// Package cache provides the in-memory result cache for repeated
// classification and enhancement queries.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized classification results keyed by input text
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Flush()
	Stats() Stats
}

// Stats reports cache effectiveness
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Items  int   `json:"items"`
}

// HitRate is Hits / (Hits + Misses), 0 when empty
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Key derives a stable cache key from input text
func Key(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "culturacheck:v1:" + hex.EncodeToString(hash[:])
}
