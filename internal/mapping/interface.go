package mapping

import (
	"context"

	"jira-notifier/internal/model"
)

// Lookup is the read side consumed by the routing engine. Results are
// served through the TTL cache; freshness is guaranteed by the write-path
// invalidation contract, not by short TTLs.
type Lookup interface {
	// MappingsFor returns every stored mapping matching the filter, active
	// or not. Callers that need effective channel sets use the Active*
	// helpers; callers that need raw history filter themselves.
	MappingsFor(ctx context.Context, sc model.Scope, filter Filter) ([]model.Mapping, error)

	// ActiveProjectChannels returns the de-duplicated channels mapped to a
	// whole project (component-less rows only).
	ActiveProjectChannels(ctx context.Context, sc model.Scope, projectID string) ([]string, error)

	// ActiveComponentChannels returns the de-duplicated channels mapped to
	// one component of a project.
	ActiveComponentChannels(ctx context.Context, sc model.Scope, projectID, componentID string) ([]string, error)

	// RepoChannels returns the channels linked to a version-control
	// repository name (dynamic-channel feature).
	RepoChannels(ctx context.Context, sc model.Scope, repoName string) ([]string, error)

	// Invalidate drops every cache key whose result could include the given
	// mapping. Writers must call this before reporting success.
	Invalidate(sc model.Scope, m model.Mapping)
}

// UseCase is the full mapping surface: lookup plus the management
// operations behind the mapping HTTP endpoints.
type UseCase interface {
	Lookup

	// Create stores a new channel mapping. Re-activates a previously
	// removed identical mapping instead of inserting a duplicate row.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Mapping, error)

	// Remove deactivates a mapping. The row is kept with active=false.
	Remove(ctx context.Context, sc model.Scope, input RemoveInput) error

	// List returns raw mapping rows, including inactive ones, bypassing the
	// cache. Intended for the management UI.
	List(ctx context.Context, sc model.Scope, filter Filter) ([]model.Mapping, error)
}
