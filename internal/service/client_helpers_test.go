package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/settings"
	"github.com/MKhiriev/go-reader-sync/internal/store"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/stretchr/testify/require"
)

// clientEnv is a client process on a temp directory: a real SQLite store, a
// real settings mirror and a real bus.
type clientEnv struct {
	bus      *bus.Bus
	mirror   *settings.Mirror
	storages *store.ClientStorages
	session  *SessionContext
	builder  *PayloadBuilder
	merger   *Merger
	status   *StatusTracker
	backup   BackupService
}

func newClientEnv(t *testing.T) *clientEnv {
	t.Helper()

	dir := t.TempDir()
	log := logger.Nop()

	b := bus.New(log)
	t.Cleanup(func() { _ = b.Close() })

	mirror, err := settings.NewMirror(filepath.Join(dir, "settings"), b, log)
	require.NoError(t, err)

	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(dir, "reader.db")},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	session, err := NewSessionContext(mirror, log)
	require.NoError(t, err)

	builder := NewPayloadBuilder(mirror, storages.Snapshots, log)
	merger := NewMerger(session, mirror, storages.Snapshots, log)

	return &clientEnv{
		bus:      b,
		mirror:   mirror,
		storages: storages,
		session:  session,
		builder:  builder,
		merger:   merger,
		status:   NewStatusTracker(b, 0, 0, log),
		backup:   NewBackupService(mirror, storages.Snapshots, session, builder, merger, log),
	}
}

// login logs a user in and returns its id.
func (e *clientEnv) login(t *testing.T, username string) string {
	t.Helper()
	user, err := e.session.Login(context.Background(), username, "")
	require.NoError(t, err)
	return user.ID
}

// addBook writes a library entry straight into the store.
func (e *clientEnv) addBook(t *testing.T, userID, novelID string) {
	t.Helper()
	require.NoError(t, e.storages.Library.SaveLibraryItems(context.Background(), models.LibraryItem{
		UserID:    userID,
		NovelID:   novelID,
		AddedDate: "2026-01-01T00:00:00.000Z",
		Status:    models.LibraryStatusReading,
	}))
}

func (e *clientEnv) orchestrator(cfg OrchestratorConfig, prompter Prompter, backends ...adapter.Backend) *Orchestrator {
	order := make([]string, 0, len(backends))
	for _, b := range backends {
		order = append(order, b.Name())
	}
	registry := adapter.NewRegistry(order, logger.Nop(), backends...)
	return NewOrchestrator(registry, e.builder, e.merger, e.status, e.backup, e.mirror, e.bus, prompter, cfg, logger.Nop())
}

// fakeBackend keeps payloads in memory.
type fakeBackend struct {
	name     string
	maxBytes int
	format   models.LibraryFormat

	mu      sync.Mutex
	stored  map[string]models.SyncPayload
	pushes  []models.SyncPayload
	pulls   int
	pushErr error
	pullErr error
	// gate, when set, holds every Push until it receives a value.
	gate chan struct{}
}

func newFakeBackend(name string) *fakeBackend {
	return &fakeBackend{name: name, format: models.LibraryFormatReduced, stored: make(map[string]models.SyncPayload)}
}

func (f *fakeBackend) Name() string                        { return f.name }
func (f *fakeBackend) Configured() bool                    { return true }
func (f *fakeBackend) MaxPayloadBytes() int                { return f.maxBytes }
func (f *fakeBackend) LibraryFormat() models.LibraryFormat { return f.format }

func (f *fakeBackend) Push(ctx context.Context, userID string, payload models.SyncPayload) error {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, payload)
	if f.pushErr != nil {
		return f.pushErr
	}
	f.stored[userID] = payload
	return nil
}

func (f *fakeBackend) Pull(_ context.Context, userID string) (models.SyncPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulls++
	if f.pullErr != nil {
		return models.SyncPayload{}, f.pullErr
	}
	p, ok := f.stored[userID]
	if !ok {
		return models.SyncPayload{}, adapter.ErrNotFound
	}
	return p, nil
}

func (f *fakeBackend) Delete(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.stored, userID)
	return nil
}

func (f *fakeBackend) pushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pushes)
}

func (f *fakeBackend) lastPush() models.SyncPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.pushes) == 0 {
		return models.SyncPayload{}
	}
	return f.pushes[len(f.pushes)-1]
}

func (f *fakeBackend) set(userID string, p models.SyncPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[userID] = p
}

func (f *fakeBackend) setPushErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushErr = err
}

// stubPrompter answers every prompt the same way and counts prompts.
type stubPrompter struct {
	answer bool
	err    error

	mu    sync.Mutex
	asked int
}

func (p *stubPrompter) ConfirmRemoteData(context.Context, string, models.SyncPayload) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked++
	return p.answer, p.err
}

func (p *stubPrompter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.asked
}

// countingReinit counts Reinitialize calls.
type countingReinit struct {
	mu    sync.Mutex
	calls int
}

func (r *countingReinit) Reinitialize(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return nil
}

func (r *countingReinit) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// collectStatuses records sync-status events until the test ends.
func collectStatuses(t *testing.T, b *bus.Bus) func() []models.SyncStatus {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	ch, err := b.Subscribe(ctx, bus.TopicSyncStatus)
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		got []models.SyncStatus
	)
	go func() {
		for event := range ch {
			var st models.StatusEvent
			if event.Decode(&st) == nil {
				mu.Lock()
				got = append(got, st.Status)
				mu.Unlock()
			}
		}
	}()

	return func() []models.SyncStatus {
		mu.Lock()
		defer mu.Unlock()
		return append([]models.SyncStatus(nil), got...)
	}
}

const eventually = 2 * time.Second
