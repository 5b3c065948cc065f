package preference

import (
	"context"

	"jira-notifier/internal/model"
)

// Resolver is the read side consumed by the routing engine's preference
// filter. Channels with no stored record resolve to the defaults (notify
// on everything) without error; only a storage failure surfaces as one.
type Resolver interface {
	PreferencesFor(ctx context.Context, sc model.Scope, channel string) (model.ChannelPrefs, error)
}

// UseCase is the full preference surface: resolution plus the management
// operations behind the preference HTTP endpoints.
type UseCase interface {
	Resolver

	// Get returns the raw tri-state record for a channel. A channel that
	// never configured anything yields an all-nil record, not an error.
	Get(ctx context.Context, sc model.Scope, channel string) (model.ChannelPrefsRecord, error)

	// Set applies a partial update: only non-nil fields of the input
	// overwrite the stored record. The cache entry is invalidated before
	// Set reports success.
	Set(ctx context.Context, sc model.Scope, input SetInput) (model.ChannelPrefsRecord, error)
}
