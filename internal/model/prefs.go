package model

import "strings"

// ChannelPrefsRecord is the storage-boundary shape of a channel's
// notification preferences. Fields are tri-state: nil means the channel
// never configured that preference.
type ChannelPrefsRecord struct {
	Channel string

	IssueCreated *bool
	IssueDeleted *bool
	IssueComment *bool
	IssueStatus  *bool
	IssueState   *bool

	Bug     *bool
	Task    *bool
	Epic    *bool
	Story   *bool
	Subtask *bool
}

// Resolve collapses the tri-state record into plain booleans. This is the
// single place where "unset means notify" lives.
func (r ChannelPrefsRecord) Resolve() ChannelPrefs {
	return ChannelPrefs{
		Channel:      r.Channel,
		IssueCreated: resolveBool(r.IssueCreated),
		IssueDeleted: resolveBool(r.IssueDeleted),
		IssueComment: resolveBool(r.IssueComment),
		IssueStatus:  resolveBool(r.IssueStatus),
		IssueState:   resolveBool(r.IssueState),
		IssueTypes: map[string]bool{
			"bug":     resolveBool(r.Bug),
			"task":    resolveBool(r.Task),
			"epic":    resolveBool(r.Epic),
			"story":   resolveBool(r.Story),
			"subtask": resolveBool(r.Subtask),
		},
	}
}

func resolveBool(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// ChannelPrefs is the resolved, read-side view of a channel's preferences.
type ChannelPrefs struct {
	Channel string

	IssueCreated bool
	IssueDeleted bool
	IssueComment bool
	IssueStatus  bool
	IssueState   bool

	// IssueTypes gates notifications per issue type, keyed by the
	// normalized type name.
	IssueTypes map[string]bool
}

// DefaultChannelPrefs is what an unconfigured channel resolves to: notify
// on everything.
func DefaultChannelPrefs(channel string) ChannelPrefs {
	return ChannelPrefsRecord{Channel: channel}.Resolve()
}

// AllowsCategory reports whether the channel wants notifications for the
// given category.
func (p ChannelPrefs) AllowsCategory(c Category) bool {
	switch c {
	case CategoryComment:
		return p.IssueComment
	case CategoryStatus:
		return p.IssueStatus
	case CategoryState:
		return p.IssueState
	case CategoryCreated:
		return p.IssueCreated
	case CategoryDeleted:
		return p.IssueDeleted
	default:
		return false
	}
}

// AllowsIssueType reports whether the channel wants notifications for the
// given Jira issue type. Types the preference record does not know about
// are allowed — channels opt out, they are never dropped silently.
func (p ChannelPrefs) AllowsIssueType(issueType string) bool {
	allowed, known := p.IssueTypes[NormalizeIssueType(issueType)]
	if !known {
		return true
	}
	return allowed
}

// NormalizeIssueType lower-cases a Jira issue type name and strips hyphens,
// so "Sub-task" matches the "subtask" preference field.
func NormalizeIssueType(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "")
}
