package repository

// ListMappingsOptions holds filter parameters for listing mappings.
// All non-empty fields are applied as AND conditions.
type ListMappingsOptions struct {
	Channel     string
	ProjectID   string
	ComponentID string
	OnlyActive  bool
}

// SetMappingActiveOptions identifies a mapping row by its natural key and
// the active value to set. Returns the number of rows touched.
type SetMappingActiveOptions struct {
	Channel     string
	ProjectID   string
	ComponentID string
	Active      bool
}
