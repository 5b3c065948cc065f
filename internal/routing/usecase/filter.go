package usecase

import (
	"context"
	"sync"

	"jira-notifier/internal/model"
)

// filterChannels narrows the candidate set to channels whose preferences
// enable both the category and the event's issue type. Preference fetches
// fan out concurrently, one per channel; a channel whose fetch fails is
// logged and excluded without failing the pass.
//
// The deleted category skips the issue-type check: the issue is gone and
// its type may no longer be resolvable.
func (uc *usecase) filterChannels(ctx context.Context, sc model.Scope, channels []string, event model.IssueEvent, category model.Category) []string {
	if len(channels) == 0 {
		return nil
	}

	keep := make([]bool, len(channels))
	var wg sync.WaitGroup
	for i, channel := range channels {
		wg.Add(1)
		go func(i int, channel string) {
			defer wg.Done()

			prefs, err := uc.prefs.PreferencesFor(ctx, sc, channel)
			if err != nil {
				uc.l.Warnf(ctx, "routing: preferences for %s: %v, excluding channel", channel, err)
				return
			}

			if !prefs.AllowsCategory(category) {
				return
			}
			if category != model.CategoryDeleted && !prefs.AllowsIssueType(event.IssueType) {
				return
			}
			keep[i] = true
		}(i, channel)
	}
	wg.Wait()

	out := make([]string, 0, len(channels))
	for i, channel := range channels {
		if keep[i] {
			out = append(out, channel)
		}
	}
	return out
}
