package mapping

import "errors"

// Domain-specific errors for the mapping package.
var (
	ErrInvalidInput    = errors.New("channel and project id are required")
	ErrMappingExists   = errors.New("mapping already exists")
	ErrMappingNotFound = errors.New("mapping not found")
)
