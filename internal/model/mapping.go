package model

import "time"

// Mapping is a stored association between a chat channel and a Jira project
// or component. A mapping with an empty ComponentID is a project mapping.
// Removal flips Active to false; rows are kept for audit.
type Mapping struct {
	ID          string
	Channel     string
	ProjectID   string
	ComponentID string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsProjectMapping reports whether this row maps a whole project.
func (m Mapping) IsProjectMapping() bool {
	return m.ComponentID == ""
}
