package model

// Category is the routing classification of an inbound event. It decides
// which preference boolean gates each channel.
type Category string

const (
	CategoryNone    Category = ""
	CategoryComment Category = "comment"
	CategoryStatus  Category = "status"
	CategoryState   Category = "state"
	CategoryCreated Category = "created"
	CategoryDeleted Category = "deleted"
)

// Slug is the category's segment in a message identity, matching the
// historical message-id scheme (jira/issue_updated/<key>/<ts>).
func (c Category) Slug() string {
	switch c {
	case CategoryComment:
		return "issue_commented"
	case CategoryStatus, CategoryState:
		return "issue_updated"
	case CategoryCreated:
		return "issue_created"
	case CategoryDeleted:
		return "issue_deleted"
	default:
		return "none"
	}
}
