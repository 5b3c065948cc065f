package cache

import (
	"encoding/json"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL matches the historical default for routing lookups.
const DefaultTTL = time.Hour

// DefaultSweepInterval is how often expired entries are reaped in the
// background. Expired entries are also dropped lazily on access.
const DefaultSweepInterval = 30 * time.Second

// Config controls cache construction.
type Config struct {
	DefaultTTL    time.Duration
	SweepInterval time.Duration
}

type ttlCache struct {
	store  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a TTL cache backed by go-cache.
func New(cfg Config) Cache {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	return &ttlCache{
		store: gocache.New(cfg.DefaultTTL, cfg.SweepInterval),
	}
}

func (c *ttlCache) Get(key string) (any, bool) {
	value, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return value, true
}

func (c *ttlCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
}

func (c *ttlCache) Delete(key string) int {
	// go-cache's Delete is silent about whether the key existed, so check
	// first. A concurrent delete of the same key is benign: both removals
	// succeed, the count is only approximate under that race.
	if _, found := c.store.Get(key); !found {
		return 0
	}
	c.store.Delete(key)
	return 1
}

func (c *ttlCache) Flush() {
	c.store.Flush()
}

func (c *ttlCache) Stats() Stats {
	items := c.store.Items()

	stats := Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Keys:   len(items),
	}
	for key, item := range items {
		stats.KeySize += int64(len(key))
		stats.ValueSize += approxSize(item.Object)
	}
	return stats
}

// approxSize estimates the in-memory footprint of a cached value. It does
// not have to be exact — the stats endpoint reports it as approximate.
func approxSize(v any) int64 {
	switch value := v.(type) {
	case nil:
		return 0
	case string:
		return int64(len(value))
	case []byte:
		return int64(len(value))
	case bool:
		return 1
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return 8
	default:
		raw, err := json.Marshal(value)
		if err != nil {
			return 0
		}
		return int64(len(raw))
	}
}
