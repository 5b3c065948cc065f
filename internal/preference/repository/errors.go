package repository

import "errors"

var (
	ErrPrefsNotFound  = errors.New("preferences not found")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpsert = errors.New("failed to upsert record")
)
