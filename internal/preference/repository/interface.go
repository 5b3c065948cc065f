package repository

import (
	"context"

	"jira-notifier/internal/model"
)

// Store is the persistence interface for channel preference records.
type Store interface {
	// GetPrefs returns the stored record for a channel, or ErrPrefsNotFound
	// when the channel never configured anything.
	GetPrefs(ctx context.Context, channel string) (model.ChannelPrefsRecord, error)

	// UpsertPrefs inserts or replaces the record for rec.Channel.
	UpsertPrefs(ctx context.Context, rec model.ChannelPrefsRecord) error
}
