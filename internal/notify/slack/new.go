package slack

import (
	"context"
	"time"

	"jira-notifier/internal/notify"
	"jira-notifier/pkg/cache"
	"jira-notifier/pkg/log"
)

// messageTTL bounds how long a posted message stays addressable for
// in-place updates. After it lapses the same identity posts fresh.
const messageTTL = time.Hour

// messenger is the slice of the Slack client the sender needs.
type messenger interface {
	PostMessage(ctx context.Context, channel, text string) (string, error)
	UpdateMessage(ctx context.Context, channel, ts, text string) error
}

type sender struct {
	client messenger
	cache  cache.Cache
	l      log.Logger
}

// New creates a Slack-backed notification sender. The cache carries the
// message-identity to timestamp index that makes updates in place possible;
// a nil cache disables updates and every send posts fresh.
func New(l log.Logger, client messenger, c cache.Cache) notify.Sender {
	return &sender{
		client: client,
		cache:  c,
		l:      l,
	}
}
