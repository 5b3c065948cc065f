package mapping

import (
	"fmt"
	"hash/fnv"
)

// Filter selects mapping rows. Empty fields match anything.
type Filter struct {
	Channel     string
	ProjectID   string
	ComponentID string
}

// CacheKey returns the cache key for this filter within a workspace. The
// filter tuple is hashed so arbitrary channel names cannot produce
// colliding or unwieldy keys.
func (f Filter) CacheKey(workspaceID string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%s", f.Channel, f.ProjectID, f.ComponentID)
	return fmt.Sprintf("%s-mappings-%x", workspaceID, h.Sum64())
}

// CreateInput is the input for UseCase.Create. An empty ComponentID creates
// a project mapping.
type CreateInput struct {
	Channel     string
	ProjectID   string
	ComponentID string
}

// RemoveInput identifies the mapping to deactivate.
type RemoveInput struct {
	Channel     string
	ProjectID   string
	ComponentID string
}
