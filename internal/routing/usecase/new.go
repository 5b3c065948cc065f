package usecase

import (
	"jira-notifier/internal/mapping"
	"jira-notifier/internal/notify"
	"jira-notifier/internal/preference"
	"jira-notifier/internal/routing"
	pkgJira "jira-notifier/pkg/jira"
	pkgLog "jira-notifier/pkg/log"
)

type usecase struct {
	mappings mapping.Lookup
	prefs    preference.Resolver
	sender   notify.Sender
	dynamic  routing.DynamicChannelSource
	details  pkgJira.API
	l        pkgLog.Logger
}

// New creates the routing engine. A nil dynamic source disables
// repository-linked channels; the static mapping path never touches the
// issue tracker. A nil details client disables message enrichment, so
// notifications carry only what the webhook payload brought.
func New(l pkgLog.Logger, mappings mapping.Lookup, prefs preference.Resolver, sender notify.Sender, dynamic routing.DynamicChannelSource, details pkgJira.API) routing.UseCase {
	return &usecase{
		mappings: mappings,
		prefs:    prefs,
		sender:   sender,
		dynamic:  dynamic,
		details:  details,
		l:        l,
	}
}
