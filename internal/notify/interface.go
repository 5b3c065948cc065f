package notify

import (
	"context"

	"jira-notifier/internal/model"
)

// Sender delivers one routed notification to a set of channels. A message
// identity that was already delivered to a channel is updated in place
// rather than posted again.
type Sender interface {
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
}

// SendInput is one notification fan-out.
type SendInput struct {
	Channels  []string
	Text      string
	MessageID string
}

// SendOutput reports what actually happened per fan-out: how many channels
// got a fresh post and how many had an existing message updated.
type SendOutput struct {
	Posted  int
	Updated int
}
