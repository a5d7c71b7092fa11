package service

import (
	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/store"
)

// ClientServices are the services of one reader-sync client process.
type ClientServices struct {
	Session        *SessionContext
	Status         *StatusTracker
	SyncService    ClientSyncService
	BackupService  BackupService
	LibraryService ClientLibraryService
	Presence       PresenceService
	SyncJob        PeriodicJob
	BackupJob      PeriodicJob

	orchestrator *Orchestrator
}

func NewClientServices(
	storages *store.ClientStorages,
	mirror SettingsStore,
	registry BackendRegistry,
	events EventBus,
	cfg *config.ClientConfig,
	prompter Prompter,
	logger *logger.Logger,
) (*ClientServices, error) {
	session, err := NewSessionContext(mirror, logger)
	if err != nil {
		return nil, err
	}

	builder := NewPayloadBuilder(mirror, storages.Snapshots, logger)
	merger := NewMerger(session, mirror, storages.Snapshots, logger)
	status := NewStatusTracker(events, cfg.Sync.SuccessWindow, cfg.Sync.ErrorWindow, logger)
	backup := NewBackupService(mirror, storages.Snapshots, session, builder, merger, logger)

	orchestrator := NewOrchestrator(registry, builder, merger, status, backup, mirror, events, prompter, NewOrchestratorConfig(cfg), logger)

	return &ClientServices{
		Session:        session,
		Status:         status,
		SyncService:    orchestrator,
		BackupService:  backup,
		LibraryService: NewClientLibraryService(storages.Library, storages.Progress, mirror, orchestrator, logger),
		Presence:       NewPresenceService(orchestrator, session, logger),
		SyncJob:        NewClientSyncJob(orchestrator, logger),
		BackupJob:      NewAutoBackupJob(backup, session, logger),
		orchestrator:   orchestrator,
	}, nil
}

// SetReinitializer installs the hook that reloads application state after a
// remote payload or a foreign write replaced the local store.
func (s *ClientServices) SetReinitializer(r Reinitializer) {
	s.orchestrator.SetReinitializer(r)
}
