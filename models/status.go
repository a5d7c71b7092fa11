package models

import "time"

// SyncStatus is the process-wide state shown by sync indicators.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
)

// StatusEvent is one transition of the sync status.
type StatusEvent struct {
	Status SyncStatus `json:"status"`
	Reason string     `json:"reason,omitempty"`
	Error  string     `json:"error,omitempty"`
	At     time.Time  `json:"at"`
}
