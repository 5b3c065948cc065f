package usecase

import (
	"context"
	"errors"
	"fmt"

	"jira-notifier/internal/model"
	"jira-notifier/internal/preference"
	"jira-notifier/internal/preference/repository"
)

// Get returns the raw tri-state record, bypassing the cache. Channels that
// never configured anything yield an all-nil record.
func (uc *usecase) Get(ctx context.Context, sc model.Scope, channel string) (model.ChannelPrefsRecord, error) {
	if channel == "" {
		return model.ChannelPrefsRecord{}, preference.ErrInvalidInput
	}

	rec, err := uc.repo.GetPrefs(ctx, channel)
	if errors.Is(err, repository.ErrPrefsNotFound) {
		return model.ChannelPrefsRecord{Channel: channel}, nil
	}
	if err != nil {
		return model.ChannelPrefsRecord{}, fmt.Errorf("failed to get preferences for %s: %w", channel, err)
	}
	return rec, nil
}

// Set merges the partial update into the stored record and upserts it. The
// cache entry is invalidated before success is reported, so the next
// resolution observes the write.
func (uc *usecase) Set(ctx context.Context, sc model.Scope, input preference.SetInput) (model.ChannelPrefsRecord, error) {
	if input.Channel == "" {
		return model.ChannelPrefsRecord{}, preference.ErrInvalidInput
	}

	rec, err := uc.Get(ctx, sc, input.Channel)
	if err != nil {
		return model.ChannelPrefsRecord{}, err
	}

	applyUpdate(&rec, input)
	if err := uc.repo.UpsertPrefs(ctx, rec); err != nil {
		return model.ChannelPrefsRecord{}, fmt.Errorf("failed to store preferences for %s: %w", input.Channel, err)
	}

	if uc.cache != nil {
		uc.cache.Delete(preference.CacheKey(sc.WorkspaceID, input.Channel))
	}
	uc.l.Infof(ctx, "preferences updated for channel %s", input.Channel)
	return rec, nil
}

func applyUpdate(rec *model.ChannelPrefsRecord, input preference.SetInput) {
	fields := []struct {
		dst **bool
		src *bool
	}{
		{&rec.IssueCreated, input.IssueCreated},
		{&rec.IssueDeleted, input.IssueDeleted},
		{&rec.IssueComment, input.IssueComment},
		{&rec.IssueStatus, input.IssueStatus},
		{&rec.IssueState, input.IssueState},
		{&rec.Bug, input.Bug},
		{&rec.Task, input.Task},
		{&rec.Epic, input.Epic},
		{&rec.Story, input.Story},
		{&rec.Subtask, input.Subtask},
	}
	for _, f := range fields {
		if f.src != nil {
			*f.dst = f.src
		}
	}
}
