package routing

import (
	"context"

	"jira-notifier/internal/model"
)

// UseCase is the routing engine: the single entry point that turns an
// inbound issue event into a routing decision and hands it to the sender.
type UseCase interface {
	// Route classifies the event, resolves and filters its channel set, and
	// invokes the notification sender at most once. An empty decision is a
	// successful no-op; only a transient lookup failure is an error, and it
	// is retryable.
	Route(ctx context.Context, sc model.Scope, event model.IssueEvent) (model.RoutingDecision, error)
}

// DynamicChannelSource resolves the channels linked to an issue through
// its version-control repositories. Composed into the channel resolver
// when dynamic linking is enabled; nil disables the feature, so the
// static-mapping path never touches the issue tracker.
type DynamicChannelSource interface {
	ChannelsFor(ctx context.Context, sc model.Scope, event model.IssueEvent) ([]string, error)
}
