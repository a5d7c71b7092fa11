package kvstore

import "errors"

var (
	ErrNotFound      = errors.New("key not found")
	ErrNotConfigured = errors.New("kv store not configured")
	ErrEmptyKey      = errors.New("empty key")
)
