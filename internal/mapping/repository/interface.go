package repository

import (
	"context"

	"jira-notifier/internal/model"
)

// Store is the persistence interface for channel mappings. Implementations
// never filter by active unless asked: the lookup layer decides.
type Store interface {
	ListMappings(ctx context.Context, opt ListMappingsOptions) ([]model.Mapping, error)
	InsertMapping(ctx context.Context, m model.Mapping) error
	SetMappingActive(ctx context.Context, opt SetMappingActiveOptions) (int64, error)

	// ListRepoChannels returns the channels linked to a repository name.
	ListRepoChannels(ctx context.Context, repoName string) ([]string, error)
}
