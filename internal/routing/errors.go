package routing

import "errors"

var (
	// ErrLookupFailed marks a whole-pass failure: the mapping set could not
	// be resolved at all. Retryable by the delivery transport; the event is
	// never silently dropped.
	ErrLookupFailed = errors.New("channel lookup failed")
)
