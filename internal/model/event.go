package model

import "time"

// WebhookEventKind is the coarse webhook event name sent by Jira.
type WebhookEventKind string

const (
	EventKindIssueCreated   WebhookEventKind = "jira:issue_created"
	EventKindIssueUpdated   WebhookEventKind = "jira:issue_updated"
	EventKindIssueDeleted   WebhookEventKind = "jira:issue_deleted"
	EventKindCommentCreated WebhookEventKind = "comment_created"
)

// EventSubtype is the enumerated form of Jira's free-form
// issue_event_type_name. It is constructed exactly once, at the webhook
// ingestion boundary, so the routing layer never pattern-matches raw strings.
type EventSubtype string

const (
	SubtypeCreated       EventSubtype = "created"
	SubtypeGeneric       EventSubtype = "generic"
	SubtypeUpdated       EventSubtype = "updated"
	SubtypeAssigned      EventSubtype = "assigned"
	SubtypeCommented     EventSubtype = "commented"
	SubtypeCommentEdited EventSubtype = "comment_edited"
	SubtypeUnknown       EventSubtype = "unknown"
)

// ParseEventSubtype maps a raw issue_event_type_name to the enum. Unknown
// values map to SubtypeUnknown; callers keep the raw string for logging.
func ParseEventSubtype(raw string) EventSubtype {
	switch raw {
	case "issue_created":
		return SubtypeCreated
	case "issue_generic":
		return SubtypeGeneric
	case "issue_updated":
		return SubtypeUpdated
	case "issue_assigned":
		return SubtypeAssigned
	case "issue_commented":
		return SubtypeCommented
	case "issue_comment_edited":
		return SubtypeCommentEdited
	default:
		return SubtypeUnknown
	}
}

// IssueEvent is a parsed inbound Jira issue event. Immutable once built;
// its lifetime is a single routing pass.
type IssueEvent struct {
	Kind         WebhookEventKind
	Subtype      EventSubtype
	RawSubtype   string // original issue_event_type_name, kept for logging
	IssueID      string
	IssueKey     string
	IssueSelf    string // REST self URL of the issue
	Summary      string
	IssueType    string // e.g. "Bug", "Sub-task"
	ProjectID    string
	ComponentIDs []string
	CommentID    string
	HasChangelog bool
	HasComment   bool
	Timestamp    int64 // Jira event timestamp, epoch millis
	ReceivedAt   time.Time
}

// RoutingDecision is the outcome of one routing pass. Derived, never stored.
type RoutingDecision struct {
	Channels   []string
	Category   Category
	MessageID  string
	UpdateOnly bool
}

// Empty reports whether the decision carries no notification at all.
func (d RoutingDecision) Empty() bool {
	return d.Category == CategoryNone || len(d.Channels) == 0
}
