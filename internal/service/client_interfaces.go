package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -exclude_interfaces=PushRequester,ClientSyncService

// SettingsStore is the part of the settings mirror the client services use.
type SettingsStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	LoadAuth() (models.AuthStorage, bool, error)
	SaveAuth(ctx context.Context, auth models.AuthStorage) error
	BroadcastSync(ctx context.Context) error
}

// EventBus carries lifecycle events between the client components.
type EventBus interface {
	bus.Publisher
	bus.Subscriber
}

// BackendRegistry lists the remote backends in priority order.
type BackendRegistry interface {
	Available() []adapter.Backend
	Get(name string) (adapter.Backend, bool)
}

// BackendSource returns the backend of the running sync session, or nil in
// local-only mode.
type BackendSource interface {
	Backend() adapter.Backend
}

// UserSource returns the user of the current session.
type UserSource interface {
	UserID() string
	User() (models.User, bool)
}

// Prompter asks the user whether remote data found at login should replace
// local data.
type Prompter interface {
	ConfirmRemoteData(ctx context.Context, backend string, payload models.SyncPayload) (bool, error)
}

// Reinitializer reloads in-memory application state from the local store
// after the store was replaced underneath it.
type Reinitializer interface {
	Reinitialize(ctx context.Context) error
}

// PushRequester accepts asynchronous push requests.
type PushRequester interface {
	RequestPush(reason PushReason)
}

// ClientSyncService runs the sync session of one user.
type ClientSyncService interface {
	PushRequester
	BackendSource

	// Start checks the backends for remote data of userID, resolves it by
	// the conflict policy and starts reacting to lifecycle events. A running
	// session is stopped first.
	Start(ctx context.Context, userID string) error

	// PushNow pushes local state to the active backend and waits for the
	// result.
	PushNow(ctx context.Context) error

	// PullNow pulls from the active backend and applies what it finds.
	PullNow(ctx context.Context) (PullOutcome, error)

	// State returns the session state.
	State() SyncState

	// ActiveBackend returns the name of the active backend, or "" in
	// local-only mode.
	ActiveBackend() string

	// Stop ends the session. A before-exit push in flight is awaited.
	Stop() error
}

// PeriodicJob runs an action on a ticker until stopped.
type PeriodicJob interface {
	// Start launches the job. Any previously running job is stopped first.
	// A non-positive interval falls back to the job default.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}

// BackupService manages file backups and the local backup copy.
type BackupService interface {
	// ExportSettings writes the settings backup document to w.
	ExportSettings(ctx context.Context, w io.Writer) error

	// ImportSettings reads a settings backup document and writes every
	// non-empty sub-blob back to its key.
	ImportSettings(ctx context.Context, r io.Reader) error

	// ExportDatabaseFile writes the full database snapshot into dir and
	// returns the file path.
	ExportDatabaseFile(ctx context.Context, dir string) (string, error)

	// ImportDatabaseFile replaces the local database with the snapshot in
	// the file at path.
	ImportDatabaseFile(ctx context.Context, path string) error

	// AutoExport refreshes the local backup copy.
	AutoExport(ctx context.Context) error

	// RestoreFromLocal imports the local backup copy.
	RestoreFromLocal(ctx context.Context) error

	// Info describes the local backup copy.
	Info() (models.BackupInfo, error)

	// BackupUserSettings stores the settings backup of userID under its
	// cloud-backup key.
	BackupUserSettings(ctx context.Context, userID string) error
}

// ClientLibraryService changes the library and reading progress of a user.
// Every change schedules a push.
type ClientLibraryService interface {
	AddToLibrary(ctx context.Context, userID, novelID string, status models.LibraryStatus) (models.LibraryItem, error)
	RemoveFromLibrary(ctx context.Context, userID, novelID string) error
	SetStatus(ctx context.Context, userID, novelID string, status models.LibraryStatus) error
	ToggleFavorite(ctx context.Context, userID, novelID string) (bool, error)
	UpdateProgress(ctx context.Context, progress models.ReadingProgress) error
	Library(ctx context.Context, userID string) ([]models.LibraryItem, error)
}

// PresenceService reports the online state of the current user through the
// active backend.
type PresenceService interface {
	Online(ctx context.Context) error
	Offline(ctx context.Context) error
	OnlineUsers(ctx context.Context) ([]models.OnlineUser, error)
	OnlineCount(ctx context.Context) (int, error)
}
