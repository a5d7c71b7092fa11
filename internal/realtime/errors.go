package realtime

import "errors"

var (
	ErrInvalidPath   = errors.New("invalid path")
	ErrInvalidValue  = errors.New("invalid value")
	ErrPermission    = errors.New("permission denied")
	ErrUnknownOp     = errors.New("unknown operation")
	ErrHubClosed     = errors.New("hub closed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotConfigured = errors.New("realtime server not configured")
)
