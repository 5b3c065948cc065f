package usecase

import (
	"context"
	"fmt"
	"strings"

	"jira-notifier/internal/model"
	"jira-notifier/internal/notify"
	"jira-notifier/internal/routing"
)

// Route is the single routing entry point. An empty decision is a
// successful no-op; only a mapping lookup failure surfaces as an error,
// and the caller may retry the event.
func (uc *usecase) Route(ctx context.Context, sc model.Scope, event model.IssueEvent) (model.RoutingDecision, error) {
	category := routing.Classify(event)
	if category == model.CategoryNone {
		if event.Subtype == model.SubtypeUnknown && event.RawSubtype != "" {
			uc.l.Warnf(ctx, "routing: unclassified event subtype %q on %s, not notifying", event.RawSubtype, event.IssueKey)
		} else {
			uc.l.Debugf(ctx, "routing: event on %s carries no notification category", event.IssueKey)
		}
		return model.RoutingDecision{}, nil
	}

	candidates, err := uc.resolveChannels(ctx, sc, event)
	if err != nil {
		return model.RoutingDecision{}, fmt.Errorf("%w: %v", routing.ErrLookupFailed, err)
	}

	decision := model.RoutingDecision{
		Channels:  uc.filterChannels(ctx, sc, candidates, event, category),
		Category:  category,
		MessageID: routing.MessageIdentity(category, event),
	}

	if len(decision.Channels) == 0 {
		uc.l.Debugf(ctx, "routing: no channels left for %s after filtering, skipping send", event.IssueKey)
		return decision, nil
	}

	out, err := uc.sender.Send(ctx, sc, notify.SendInput{
		Channels:  decision.Channels,
		Text:      uc.buildText(ctx, category, event),
		MessageID: decision.MessageID,
	})
	if err != nil {
		// Delivery failures are operational, not routing failures: the
		// decision stands and the send is not retried here.
		uc.l.Errorf(ctx, "routing: send %s to %v: %v", decision.MessageID, decision.Channels, err)
		return decision, nil
	}

	decision.UpdateOnly = out.Updated > 0 && out.Posted == 0
	uc.l.Infof(ctx, "routing: %s notified %d channel(s), %d posted %d updated",
		decision.MessageID, len(decision.Channels), out.Posted, out.Updated)
	return decision, nil
}

// buildText renders the one-line notification. With a details client
// configured it backfills a summary the webhook payload omitted, and
// status messages name the transitions the issue can take next.
func (uc *usecase) buildText(ctx context.Context, category model.Category, event model.IssueEvent) string {
	summary := event.Summary
	if summary == "" && uc.details != nil && event.IssueKey != "" && category != model.CategoryDeleted {
		issue, err := uc.details.GetIssue(ctx, event.IssueKey)
		if err != nil {
			uc.l.Debugf(ctx, "routing: issue detail fetch for %s failed, sending without summary: %v", event.IssueKey, err)
		} else {
			summary = issue.Fields.Summary
		}
	}

	switch category {
	case model.CategoryCreated:
		return fmt.Sprintf("%s created: %s", event.IssueKey, summary)
	case model.CategoryDeleted:
		return fmt.Sprintf("%s deleted", event.IssueKey)
	case model.CategoryComment:
		return fmt.Sprintf("New comment on %s: %s", event.IssueKey, summary)
	case model.CategoryStatus:
		text := fmt.Sprintf("%s updated: %s", event.IssueKey, summary)
		if next := uc.nextTransitions(ctx, event); next != "" {
			text += fmt.Sprintf(" (next: %s)", next)
		}
		return text
	default:
		return fmt.Sprintf("%s updated: %s", event.IssueKey, summary)
	}
}

// nextTransitions names the workflow steps currently available on the
// issue. Empty on any failure: the notification goes out either way.
func (uc *usecase) nextTransitions(ctx context.Context, event model.IssueEvent) string {
	if uc.details == nil {
		return ""
	}
	transitions, err := uc.details.GetTransitions(ctx, event.IssueKey)
	if err != nil {
		uc.l.Debugf(ctx, "routing: transition fetch for %s failed: %v", event.IssueKey, err)
		return ""
	}

	names := make([]string, 0, len(transitions.Transitions))
	for _, tr := range transitions.Transitions {
		names = append(names, tr.Name)
	}
	return strings.Join(names, ", ")
}
