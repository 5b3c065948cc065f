package usecase

import (
	"context"
	"errors"
	"testing"

	"jira-notifier/internal/mapping"
	"jira-notifier/internal/mapping/repository"
	"jira-notifier/internal/model"
	"jira-notifier/pkg/cache"
)

func TestCreate(t *testing.T) {
	t.Run("Missing Fields", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockStore{}, cache.New(cache.Config{}), Config{})
		if _, err := uc.Create(context.Background(), testScope, mapping.CreateInput{Channel: "dev"}); !errors.Is(err, mapping.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("New Mapping Inserted With ID", func(t *testing.T) {
		var inserted model.Mapping
		store := &mockStore{
			insertFunc: func(m model.Mapping) error {
				inserted = m
				return nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{CacheEnabled: true})

		m, err := uc.Create(context.Background(), testScope, mapping.CreateInput{Channel: "dev", ProjectID: "100"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID == "" || inserted.ID != m.ID {
			t.Errorf("expected generated id on inserted mapping, got %q", m.ID)
		}
		if !inserted.Active {
			t.Error("expected inserted mapping to be active")
		}
	})

	t.Run("Duplicate Active Mapping Rejected", func(t *testing.T) {
		store := &mockStore{
			listFunc: func(opt repository.ListMappingsOptions) ([]model.Mapping, error) {
				return []model.Mapping{{ID: "m1", Channel: "dev", ProjectID: "100", Active: true}}, nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{})

		if _, err := uc.Create(context.Background(), testScope, mapping.CreateInput{Channel: "dev", ProjectID: "100"}); !errors.Is(err, mapping.ErrMappingExists) {
			t.Errorf("expected ErrMappingExists, got %v", err)
		}
	})

	t.Run("Inactive Mapping Re-Activated", func(t *testing.T) {
		reactivated := false
		store := &mockStore{
			listFunc: func(opt repository.ListMappingsOptions) ([]model.Mapping, error) {
				return []model.Mapping{{ID: "m1", Channel: "dev", ProjectID: "100", Active: false}}, nil
			},
			setActiveFunc: func(opt repository.SetMappingActiveOptions) (int64, error) {
				if !opt.Active {
					t.Error("expected active=true on re-activation")
				}
				reactivated = true
				return 1, nil
			},
			insertFunc: func(m model.Mapping) error {
				t.Error("expected no insert for re-activation")
				return nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{})

		m, err := uc.Create(context.Background(), testScope, mapping.CreateInput{Channel: "dev", ProjectID: "100"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reactivated {
			t.Error("expected SetMappingActive to be called")
		}
		if m.ID != "m1" {
			t.Errorf("expected existing row id, got %q", m.ID)
		}
	})

	t.Run("Create Invalidates Cached Lookup", func(t *testing.T) {
		rows := make([]model.Mapping, 0)
		store := &mockStore{
			listFunc: func(opt repository.ListMappingsOptions) ([]model.Mapping, error) {
				out := make([]model.Mapping, len(rows))
				copy(out, rows)
				return out, nil
			},
			insertFunc: func(m model.Mapping) error {
				rows = append(rows, m)
				return nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{CacheEnabled: true})

		before, _ := uc.MappingsFor(context.Background(), testScope, mapping.Filter{ProjectID: "100"})
		if len(before) != 0 {
			t.Fatalf("expected no mappings before create, got %v", before)
		}

		if _, err := uc.Create(context.Background(), testScope, mapping.CreateInput{Channel: "dev", ProjectID: "100"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		after, _ := uc.MappingsFor(context.Background(), testScope, mapping.Filter{ProjectID: "100"})
		if len(after) != 1 {
			t.Errorf("expected lookup to observe the write immediately, got %v", after)
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("Unknown Mapping", func(t *testing.T) {
		store := &mockStore{
			setActiveFunc: func(opt repository.SetMappingActiveOptions) (int64, error) {
				return 0, nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{})

		err := uc.Remove(context.Background(), testScope, mapping.RemoveInput{Channel: "dev", ProjectID: "100"})
		if !errors.Is(err, mapping.ErrMappingNotFound) {
			t.Errorf("expected ErrMappingNotFound, got %v", err)
		}
	})

	t.Run("Remove Deactivates And Invalidates", func(t *testing.T) {
		active := true
		store := &mockStore{
			listFunc: func(opt repository.ListMappingsOptions) ([]model.Mapping, error) {
				return []model.Mapping{{ID: "m1", Channel: "dev", ProjectID: "100", Active: active}}, nil
			},
			setActiveFunc: func(opt repository.SetMappingActiveOptions) (int64, error) {
				active = opt.Active
				return 1, nil
			},
		}
		uc := New(&mockLogger{}, store, cache.New(cache.Config{}), Config{CacheEnabled: true})

		// Prime the cache with the active row.
		uc.MappingsFor(context.Background(), testScope, mapping.Filter{ProjectID: "100"})

		if err := uc.Remove(context.Background(), testScope, mapping.RemoveInput{Channel: "dev", ProjectID: "100"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := uc.MappingsFor(context.Background(), testScope, mapping.Filter{ProjectID: "100"})
		if len(got) != 1 || got[0].Active {
			t.Errorf("expected lookup to observe deactivation immediately, got %v", got)
		}
	})
}
