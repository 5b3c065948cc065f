package usecase

import (
	"context"
	"sync"

	"jira-notifier/internal/model"
)

// resolveChannels computes the candidate channel set for an event: active
// project channels, union of per-component channels, union of dynamically
// linked repository channels. De-duplicated before return.
//
// A mapping store failure aborts the pass: the caller wraps it as a
// retryable error. A dynamic-source failure only logs; repository linkage
// is best-effort on top of the static mappings.
func (uc *usecase) resolveChannels(ctx context.Context, sc model.Scope, event model.IssueEvent) ([]string, error) {
	if event.ProjectID == "" {
		uc.l.Warnf(ctx, "routing: event %s has no project, resolving to no channels", event.IssueKey)
		return nil, nil
	}

	channels, err := uc.mappings.ActiveProjectChannels(ctx, sc, event.ProjectID)
	if err != nil {
		return nil, err
	}

	componentChannels, err := uc.componentChannels(ctx, sc, event)
	if err != nil {
		return nil, err
	}
	channels = append(channels, componentChannels...)

	if uc.dynamic != nil {
		linked, err := uc.dynamic.ChannelsFor(ctx, sc, event)
		if err != nil {
			uc.l.Warnf(ctx, "routing: dynamic channels for %s: %v", event.IssueKey, err)
		} else {
			channels = append(channels, linked...)
		}
	}

	return dedupe(channels), nil
}

// componentChannels fans out one lookup per component id. All lookups must
// land before the set is finalized; any failure fails the resolution.
func (uc *usecase) componentChannels(ctx context.Context, sc model.Scope, event model.IssueEvent) ([]string, error) {
	if len(event.ComponentIDs) == 0 {
		return nil, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		channels []string
		firstErr error
	)
	for _, componentID := range event.ComponentIDs {
		wg.Add(1)
		go func(componentID string) {
			defer wg.Done()
			found, err := uc.mappings.ActiveComponentChannels(ctx, sc, event.ProjectID, componentID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			channels = append(channels, found...)
		}(componentID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return channels, nil
}

func dedupe(channels []string) []string {
	out := make([]string, 0, len(channels))
	seen := make(map[string]bool, len(channels))
	for _, ch := range channels {
		if seen[ch] {
			continue
		}
		out = append(out, ch)
		seen[ch] = true
	}
	return out
}
