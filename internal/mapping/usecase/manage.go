package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"jira-notifier/internal/mapping"
	"jira-notifier/internal/mapping/repository"
	"jira-notifier/internal/model"
)

// Create stores a new channel mapping and invalidates the affected cache
// keys before returning, so the next routing pass sees it.
func (uc *usecase) Create(ctx context.Context, sc model.Scope, input mapping.CreateInput) (model.Mapping, error) {
	if input.Channel == "" || input.ProjectID == "" {
		return model.Mapping{}, mapping.ErrInvalidInput
	}

	existing, err := uc.repo.ListMappings(ctx, repository.ListMappingsOptions{
		Channel:     input.Channel,
		ProjectID:   input.ProjectID,
		ComponentID: input.ComponentID,
	})
	if err != nil {
		return model.Mapping{}, fmt.Errorf("failed to check existing mappings: %w", err)
	}

	m := model.Mapping{
		Channel:     input.Channel,
		ProjectID:   input.ProjectID,
		ComponentID: input.ComponentID,
		Active:      true,
	}

	for _, row := range existing {
		// Exact-filter list can still return component rows when the input
		// has no component id; match the natural key exactly.
		if row.ComponentID != input.ComponentID {
			continue
		}
		if row.Active {
			return model.Mapping{}, mapping.ErrMappingExists
		}

		// Previously removed mapping: re-activate instead of duplicating.
		if _, err := uc.repo.SetMappingActive(ctx, repository.SetMappingActiveOptions{
			Channel:     input.Channel,
			ProjectID:   input.ProjectID,
			ComponentID: input.ComponentID,
			Active:      true,
		}); err != nil {
			return model.Mapping{}, fmt.Errorf("failed to re-activate mapping: %w", err)
		}
		m.ID = row.ID
		uc.Invalidate(sc, m)
		uc.l.Infof(ctx, "re-activated mapping channel=%s project=%s component=%s", m.Channel, m.ProjectID, m.ComponentID)
		return m, nil
	}

	m.ID = uuid.NewString()
	if err := uc.repo.InsertMapping(ctx, m); err != nil {
		return model.Mapping{}, fmt.Errorf("failed to insert mapping: %w", err)
	}

	uc.Invalidate(sc, m)
	uc.l.Infof(ctx, "created mapping channel=%s project=%s component=%s", m.Channel, m.ProjectID, m.ComponentID)
	return m, nil
}

// Remove deactivates a mapping and invalidates the affected cache keys.
func (uc *usecase) Remove(ctx context.Context, sc model.Scope, input mapping.RemoveInput) error {
	if input.Channel == "" || input.ProjectID == "" {
		return mapping.ErrInvalidInput
	}

	affected, err := uc.repo.SetMappingActive(ctx, repository.SetMappingActiveOptions{
		Channel:     input.Channel,
		ProjectID:   input.ProjectID,
		ComponentID: input.ComponentID,
		Active:      false,
	})
	if err != nil {
		return fmt.Errorf("failed to deactivate mapping: %w", err)
	}
	if affected == 0 {
		return mapping.ErrMappingNotFound
	}

	uc.Invalidate(sc, model.Mapping{
		Channel:     input.Channel,
		ProjectID:   input.ProjectID,
		ComponentID: input.ComponentID,
	})
	uc.l.Infof(ctx, "removed mapping channel=%s project=%s component=%s", input.Channel, input.ProjectID, input.ComponentID)
	return nil
}

// List returns raw mapping rows for the management surface, bypassing the
// cache so removals show up immediately, inactive rows included.
func (uc *usecase) List(ctx context.Context, sc model.Scope, filter mapping.Filter) ([]model.Mapping, error) {
	mappings, err := uc.repo.ListMappings(ctx, repository.ListMappingsOptions{
		Channel:     filter.Channel,
		ProjectID:   filter.ProjectID,
		ComponentID: filter.ComponentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	return mappings, nil
}
