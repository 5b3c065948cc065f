package cache

import "time"

// Cache is a TTL key/value store. It is safe for concurrent use and is
// always constructed explicitly and passed to its consumers — never held
// as package state — so tests can control invalidation ordering.
type Cache interface {
	// Get returns the value for key. Expired or absent keys report found=false.
	Get(key string) (any, bool)

	// Set stores value under key for the given ttl. A ttl of zero uses the
	// cache's default TTL.
	Set(key string, value any, ttl time.Duration)

	// Delete removes key and returns the number of entries removed.
	// Deleting an absent key returns 0 and never errors.
	Delete(key string) int

	// Flush removes every entry.
	Flush()

	// Stats reports usage counters and approximate sizes.
	Stats() Stats
}

// Stats mirrors the counters exposed on the cache admin endpoint.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Keys      int   `json:"keys"`
	KeySize   int64 `json:"ksize"`
	ValueSize int64 `json:"vsize"`
}
