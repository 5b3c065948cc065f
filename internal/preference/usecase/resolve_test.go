package usecase

import (
	"context"
	"errors"
	"testing"

	"jira-notifier/internal/model"
	"jira-notifier/internal/preference"
	"jira-notifier/internal/preference/repository"
	"jira-notifier/pkg/cache"
)

var testScope = model.Scope{WorkspaceID: "ws-1"}

func TestPreferencesFor(t *testing.T) {
	t.Run("Unconfigured Channel Defaults To Notify Everything", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockStore{}, cache.New(cache.Config{}), Config{})

		prefs, err := uc.PreferencesFor(context.Background(), testScope, "dev")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, c := range []model.Category{
			model.CategoryCreated, model.CategoryDeleted, model.CategoryComment,
			model.CategoryStatus, model.CategoryState,
		} {
			if !prefs.AllowsCategory(c) {
				t.Errorf("expected default prefs to allow category %q", c)
			}
		}
		for _, it := range []string{"Bug", "Task", "Epic", "Story", "Sub-task", "CustomType"} {
			if !prefs.AllowsIssueType(it) {
				t.Errorf("expected default prefs to allow issue type %q", it)
			}
		}
	})

	t.Run("Stored Opt-Outs Are Honored", func(t *testing.T) {
		store := &mockStore{
			getFunc: func(channel string) (model.ChannelPrefsRecord, error) {
				return model.ChannelPrefsRecord{
					Channel:      channel,
					IssueComment: boolPtr(false),
					Bug:          boolPtr(false),
				}, nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{})

		prefs, err := uc.PreferencesFor(context.Background(), testScope, "dev")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prefs.AllowsCategory(model.CategoryComment) {
			t.Error("expected comment notifications to be off")
		}
		if !prefs.AllowsCategory(model.CategoryStatus) {
			t.Error("expected unset status preference to default on")
		}
		if prefs.AllowsIssueType("Bug") {
			t.Error("expected bug notifications to be off")
		}
		if !prefs.AllowsIssueType("Story") {
			t.Error("expected unset story preference to default on")
		}
	})

	t.Run("Cache Miss Then Hit", func(t *testing.T) {
		store := &mockStore{}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{CacheEnabled: true})

		for i := 0; i < 3; i++ {
			if _, err := uc.PreferencesFor(context.Background(), testScope, "dev"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if store.getCalls != 1 {
			t.Errorf("expected 1 store call with caching, got %d", store.getCalls)
		}
	})

	t.Run("Channels Do Not Share Entries", func(t *testing.T) {
		store := &mockStore{}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{CacheEnabled: true})

		uc.PreferencesFor(context.Background(), testScope, "dev")
		uc.PreferencesFor(context.Background(), testScope, "ops")

		if store.getCalls != 2 {
			t.Errorf("expected one store call per channel, got %d", store.getCalls)
		}
	})

	t.Run("Store Error Propagates", func(t *testing.T) {
		store := &mockStore{
			getFunc: func(channel string) (model.ChannelPrefsRecord, error) {
				return model.ChannelPrefsRecord{}, repository.ErrFailedToGet
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{CacheEnabled: true})

		if _, err := uc.PreferencesFor(context.Background(), testScope, "dev"); !errors.Is(err, repository.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestSet(t *testing.T) {
	t.Run("Missing Channel", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockStore{}, cache.New(cache.Config{}), Config{})
		if _, err := uc.Set(context.Background(), testScope, preference.SetInput{}); !errors.Is(err, preference.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Partial Update Preserves Other Fields", func(t *testing.T) {
		var stored model.ChannelPrefsRecord
		store := &mockStore{
			getFunc: func(channel string) (model.ChannelPrefsRecord, error) {
				return model.ChannelPrefsRecord{Channel: channel, IssueComment: boolPtr(false)}, nil
			},
			upsertFunc: func(rec model.ChannelPrefsRecord) error {
				stored = rec
				return nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{})

		_, err := uc.Set(context.Background(), testScope, preference.SetInput{
			Channel:     "dev",
			IssueStatus: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.IssueStatus == nil || *stored.IssueStatus {
			t.Error("expected issue_status to be stored as false")
		}
		if stored.IssueComment == nil || *stored.IssueComment {
			t.Error("expected existing issue_comment opt-out to survive")
		}
		if stored.IssueCreated != nil {
			t.Error("expected untouched field to stay unset")
		}
	})

	t.Run("Set Invalidates Cached Resolution", func(t *testing.T) {
		rec := model.ChannelPrefsRecord{Channel: "dev"}
		store := &mockStore{
			getFunc: func(channel string) (model.ChannelPrefsRecord, error) {
				return rec, nil
			},
			upsertFunc: func(updated model.ChannelPrefsRecord) error {
				rec = updated
				return nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{CacheEnabled: true})

		before, _ := uc.PreferencesFor(context.Background(), testScope, "dev")
		if !before.AllowsCategory(model.CategoryComment) {
			t.Fatal("expected comments allowed before the update")
		}

		if _, err := uc.Set(context.Background(), testScope, preference.SetInput{
			Channel:      "dev",
			IssueComment: boolPtr(false),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		after, _ := uc.PreferencesFor(context.Background(), testScope, "dev")
		if after.AllowsCategory(model.CategoryComment) {
			t.Error("expected resolution to observe the write immediately")
		}
	})
}
