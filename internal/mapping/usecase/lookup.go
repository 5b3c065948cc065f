package usecase

import (
	"context"
	"fmt"

	"jira-notifier/internal/mapping"
	"jira-notifier/internal/mapping/repository"
	"jira-notifier/internal/model"
)

// MappingsFor returns every mapping matching the filter, serving from the
// cache when enabled. Active-filtering is left to the caller.
func (uc *usecase) MappingsFor(ctx context.Context, sc model.Scope, filter mapping.Filter) ([]model.Mapping, error) {
	key := filter.CacheKey(sc.WorkspaceID)

	if uc.cacheEnabled {
		if cached, found := uc.cache.Get(key); found {
			if mappings, ok := cached.([]model.Mapping); ok {
				uc.l.Debugf(ctx, "mapping lookup %s: cache hit, re-using value", key)
				return mappings, nil
			}
		}
		uc.l.Debugf(ctx, "mapping lookup %s: cache miss, querying store", key)
	}

	mappings, err := uc.repo.ListMappings(ctx, repository.ListMappingsOptions{
		Channel:     filter.Channel,
		ProjectID:   filter.ProjectID,
		ComponentID: filter.ComponentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	if uc.cacheEnabled {
		uc.cache.Set(key, mappings, uc.cacheTTL)
	}
	return mappings, nil
}

// ActiveProjectChannels returns the channels mapped to a whole project.
// Component rows for the same project are excluded.
func (uc *usecase) ActiveProjectChannels(ctx context.Context, sc model.Scope, projectID string) ([]string, error) {
	mappings, err := uc.MappingsFor(ctx, sc, mapping.Filter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	channels := make([]string, 0, len(mappings))
	seen := make(map[string]bool)
	for _, m := range mappings {
		if !m.Active || !m.IsProjectMapping() || seen[m.Channel] {
			continue
		}
		channels = append(channels, m.Channel)
		seen[m.Channel] = true
	}
	return channels, nil
}

// ActiveComponentChannels returns the channels mapped to one component.
func (uc *usecase) ActiveComponentChannels(ctx context.Context, sc model.Scope, projectID, componentID string) ([]string, error) {
	mappings, err := uc.MappingsFor(ctx, sc, mapping.Filter{ProjectID: projectID, ComponentID: componentID})
	if err != nil {
		return nil, err
	}

	channels := make([]string, 0, len(mappings))
	seen := make(map[string]bool)
	for _, m := range mappings {
		if !m.Active || seen[m.Channel] {
			continue
		}
		channels = append(channels, m.Channel)
		seen[m.Channel] = true
	}
	return channels, nil
}

// RepoChannels resolves a repository name to its linked channels. Not
// cached: repository linkage is driven by pushes and changes too often for
// the mapping TTL to be safe.
func (uc *usecase) RepoChannels(ctx context.Context, sc model.Scope, repoName string) ([]string, error) {
	channels, err := uc.repo.ListRepoChannels(ctx, repoName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channels for repo %s: %w", repoName, err)
	}
	return channels, nil
}

// Invalidate drops every filter combination whose cached result could
// include the given mapping: all subsets of (channel, project, component).
func (uc *usecase) Invalidate(sc model.Scope, m model.Mapping) {
	if uc.cache == nil {
		return
	}

	channels := []string{"", m.Channel}
	projects := []string{"", m.ProjectID}
	components := []string{"", m.ComponentID}

	for _, ch := range channels {
		for _, p := range projects {
			for _, comp := range components {
				f := mapping.Filter{Channel: ch, ProjectID: p, ComponentID: comp}
				uc.cache.Delete(f.CacheKey(sc.WorkspaceID))
			}
		}
	}
}
