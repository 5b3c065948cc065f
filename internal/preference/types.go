package preference

import "fmt"

// SetInput is a partial preference update. Nil fields leave the stored
// value untouched.
type SetInput struct {
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

// CacheKey builds the cache key for a channel's resolved preferences.
func CacheKey(workspaceID, channel string) string {
	return fmt.Sprintf("%s-preferences-%s", workspaceID, channel)
}
