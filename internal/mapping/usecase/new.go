package usecase

import (
	"time"

	"jira-notifier/internal/mapping"
	"jira-notifier/internal/mapping/repository"
	"jira-notifier/pkg/cache"
	pkgLog "jira-notifier/pkg/log"
)

// Config controls the cached lookup behavior.
type Config struct {
	// CacheEnabled opts the lookup path into the TTL cache. Management
	// reads (List) always bypass the cache.
	CacheEnabled bool

	// CacheTTL bounds staleness when an invalidation is ever missed.
	CacheTTL time.Duration
}

type usecase struct {
	repo         repository.Store
	cache        cache.Cache
	cacheEnabled bool
	cacheTTL     time.Duration
	l            pkgLog.Logger
}

// New creates the mapping use case. The returned value serves both the
// routing engine (mapping.Lookup) and the management endpoints.
func New(l pkgLog.Logger, repo repository.Store, c cache.Cache, cfg Config) mapping.UseCase {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &usecase{
		repo:         repo,
		cache:        c,
		cacheEnabled: cfg.CacheEnabled && c != nil,
		cacheTTL:     ttl,
		l:            l,
	}
}
