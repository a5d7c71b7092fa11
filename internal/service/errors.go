package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// proxy KV
	ErrKVNotConfigured    = errors.New("kv store not configured")
	ErrNoSyncData         = errors.New("no data found for this user")
	ErrValidationNoUserID = errors.New("userId is required")
	ErrValidationNoData   = errors.New("data is required for save action")

	// client sync
	ErrNoActiveSession = errors.New("no active session")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrUnknownAccount  = errors.New("unknown saved account")
	ErrDeserialization = errors.New("undecodable payload")
	ErrLocalOnly       = errors.New("no remote backend available")
	ErrStopped         = errors.New("sync orchestrator stopped")
	ErrNoLocalBackup   = errors.New("no local backup")
	ErrInvalidBackup   = errors.New("invalid backup file")
	ErrNoPresence      = errors.New("active backend does not track presence")
	ErrStaleResult     = errors.New("result of an older sync session")
)
