package preference

import "errors"

var (
	ErrInvalidInput = errors.New("channel is required")
)
