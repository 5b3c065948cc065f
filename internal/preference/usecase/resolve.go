package usecase

import (
	"context"
	"errors"
	"fmt"

	"jira-notifier/internal/model"
	"jira-notifier/internal/preference"
	"jira-notifier/internal/preference/repository"
)

// PreferencesFor resolves a channel's preferences, serving from the cache
// when enabled. A channel with no stored record resolves to the defaults
// without error; only a storage failure is an error, so the filter can
// decide to fail open for that channel alone.
func (uc *usecase) PreferencesFor(ctx context.Context, sc model.Scope, channel string) (model.ChannelPrefs, error) {
	key := preference.CacheKey(sc.WorkspaceID, channel)

	if uc.cacheEnabled {
		if cached, found := uc.cache.Get(key); found {
			if prefs, ok := cached.(model.ChannelPrefs); ok {
				uc.l.Debugf(ctx, "preferences %s: cache hit, re-using value", key)
				return prefs, nil
			}
		}
		uc.l.Debugf(ctx, "preferences %s: cache miss, querying store", key)
	}

	rec, err := uc.repo.GetPrefs(ctx, channel)
	if err != nil && !errors.Is(err, repository.ErrPrefsNotFound) {
		return model.ChannelPrefs{}, fmt.Errorf("failed to get preferences for %s: %w", channel, err)
	}
	rec.Channel = channel

	prefs := rec.Resolve()
	if uc.cacheEnabled {
		uc.cache.Set(key, prefs, uc.cacheTTL)
	}
	return prefs, nil
}
