package jira

import "context"

// API is the Jira REST surface consumed by the notifier. Auth and retries
// live behind this interface; callers treat it as plain fetch functions.
type API interface {
	// GetIssue fetches issue detail by id or key.
	GetIssue(ctx context.Context, idOrKey string) (*Issue, error)

	// GetTransitions fetches the transitions currently available on an issue.
	GetTransitions(ctx context.Context, idOrKey string) (*Transitions, error)

	// GetIssueRepos returns the names of version-control repositories linked
	// to an issue via the dev-status integration.
	GetIssueRepos(ctx context.Context, issueID string) ([]string, error)
}
