package slack

import (
	"context"
	"errors"
	"fmt"

	"jira-notifier/internal/model"
	"jira-notifier/internal/notify"
)

// Send fans one notification out to every channel. Channels that already
// received this message identity get an in-place update; the rest get a
// fresh post. One failing channel never blocks the others.
func (s *sender) Send(ctx context.Context, sc model.Scope, input notify.SendInput) (notify.SendOutput, error) {
	var out notify.SendOutput
	var errs []error

	for _, channel := range input.Channels {
		updated, err := s.deliver(ctx, sc, channel, input)
		if err != nil {
			s.l.Errorf(ctx, "notify.slack: channel %s: %v", channel, err)
			errs = append(errs, fmt.Errorf("channel %s: %w", channel, err))
			continue
		}
		if updated {
			out.Updated++
		} else {
			out.Posted++
		}
	}

	// Partial delivery counts as success; only a total failure surfaces.
	if len(errs) > 0 && len(errs) == len(input.Channels) {
		return out, errors.Join(errs...)
	}
	return out, nil
}

func (s *sender) deliver(ctx context.Context, sc model.Scope, channel string, input notify.SendInput) (updated bool, err error) {
	key := messageKey(sc.WorkspaceID, channel, input.MessageID)

	if s.cache != nil {
		if cached, found := s.cache.Get(key); found {
			if ts, ok := cached.(string); ok {
				if err := s.client.UpdateMessage(ctx, channel, ts, input.Text); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}

	ts, err := s.client.PostMessage(ctx, channel, input.Text)
	if err != nil {
		return false, err
	}
	if s.cache != nil {
		s.cache.Set(key, ts, messageTTL)
	}
	return false, nil
}

func messageKey(workspaceID, channel, messageID string) string {
	return fmt.Sprintf("%s-message-%s-%s", workspaceID, channel, messageID)
}
