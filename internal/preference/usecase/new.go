package usecase

import (
	"time"

	"jira-notifier/internal/preference"
	"jira-notifier/internal/preference/repository"
	"jira-notifier/pkg/cache"
	pkgLog "jira-notifier/pkg/log"
)

// Config controls the cached resolver behavior.
type Config struct {
	// CacheEnabled opts PreferencesFor into the TTL cache. Get always
	// bypasses the cache so the management UI sees stored truth.
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

// New creates the preference use case. The returned value serves both the
// routing engine (preference.Resolver) and the management endpoints.
func New(l pkgLog.Logger, repo repository.Store, c cache.Cache, cfg Config) preference.UseCase {
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
