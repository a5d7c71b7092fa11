package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/MKhiriev/go-reader-sync/internal/settings"
	"github.com/MKhiriev/go-reader-sync/internal/store"
	"github.com/MKhiriev/go-reader-sync/internal/workers"
	"github.com/MKhiriev/go-reader-sync/models"
)

const offlineTimeout = 5 * time.Second

// App is one client process.
type App struct {
	cfg      *config.ClientConfig
	bus      *bus.Bus
	mirror   *settings.Mirror
	storages *store.ClientStorages
	registry *adapter.Registry
	services *service.ClientServices
	out      io.Writer
	logger   *logger.Logger

	mu sync.Mutex
	// syncUser is the user of the running sync session.
	syncUser string
	runCtx   context.Context
}

// NewApp opens the local state of the client and builds its services.
// Status lines of a running session are written to out.
func NewApp(ctx context.Context, cfg *config.ClientConfig, prompter service.Prompter, out io.Writer, log *logger.Logger) (*App, error) {
	events := bus.New(log)

	mirror, err := settings.NewMirror(cfg.Storage.SettingsDir, events, log)
	if err != nil {
		events.Close()
		return nil, err
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		events.Close()
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	registry, err := adapter.NewRegistryFromConfig(cfg.Adapter, cfg.App, log)
	if err != nil {
		storages.Close()
		events.Close()
		return nil, fmt.Errorf("create backends: %w", err)
	}

	services, err := service.NewClientServices(storages, mirror, registry, events, cfg, prompter, log)
	if err != nil {
		registry.Close()
		storages.Close()
		events.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	app := &App{
		cfg:      cfg,
		bus:      events,
		mirror:   mirror,
		storages: storages,
		registry: registry,
		services: services,
		out:      out,
		logger:   log,
	}
	services.SetReinitializer(app)
	return app, nil
}

// Services returns the client services.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Registry returns the remote backends.
func (a *App) Registry() *adapter.Registry {
	return a.registry
}

// StartSync starts the sync session of the logged-in user.
func (a *App) StartSync(ctx context.Context) error {
	userID := a.services.Session.UserID()
	if userID == "" {
		return service.ErrNotLoggedIn
	}
	if err := a.services.SyncService.Start(ctx, userID); err != nil {
		return err
	}

	a.mu.Lock()
	a.syncUser = userID
	a.mu.Unlock()
	return nil
}

// Reinitialize reloads the session after the local store or the settings
// directory were replaced. When another process switched the user, the sync
// session follows in the background.
func (a *App) Reinitialize(ctx context.Context) error {
	if err := a.services.Session.Reload(); err != nil {
		return err
	}
	userID := a.services.Session.UserID()

	a.mu.Lock()
	prev, runCtx := a.syncUser, a.runCtx
	a.mu.Unlock()

	a.logger.Debug().Str("func", "App.Reinitialize").Str("user_id", userID).Msg("application state reloaded")

	// Reinitialize runs on the sync loop, which Start and Stop wait for.
	if runCtx != nil && prev != "" && userID != prev {
		go a.followUser(runCtx, userID)
	}
	return nil
}

func (a *App) followUser(ctx context.Context, userID string) {
	if ctx.Err() != nil {
		return
	}

	a.mu.Lock()
	a.syncUser = userID
	a.mu.Unlock()

	if userID == "" {
		if err := a.services.SyncService.Stop(); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.followUser").Msg("sync stop failed")
		}
		return
	}
	if err := a.services.SyncService.Start(ctx, userID); err != nil {
		a.logger.Err(err).Str("func", "App.followUser").Msg("sync restart failed")
	}
}

// Run starts sync for the logged-in user and the background workers, and
// blocks until ctx is done or an exit signal arrives. Unsent changes are
// pushed before it returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// watch before the session starts so that no foreign write is missed
	watcher, err := settings.NewWatcher(a.mirror, a.bus, a.logger)
	if err != nil {
		return err
	}
	if err = a.StartSync(ctx); err != nil {
		_ = watcher.Close()
		return err
	}

	a.mu.Lock()
	a.runCtx = ctx
	a.mu.Unlock()

	if err = a.services.Presence.Online(ctx); err != nil && !errors.Is(err, service.ErrNoPresence) {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("presence not reported")
	}

	runErr := workers.New(a.logger).
		Add("settings-watcher", watcher).
		Add("sync-job", workers.FromJob(a.services.SyncJob, a.cfg.Workers.SyncInterval)).
		Add("backup-job", workers.FromJob(a.services.BackupJob, a.cfg.Workers.BackupInterval)).
		Add("status", workers.WorkerFunc(a.reportStatus)).
		Add("signals", workers.WorkerFunc(func(ctx context.Context) error {
			return a.handleSignals(ctx, cancel)
		})).
		Run(ctx)

	offCtx, offCancel := context.WithTimeout(context.Background(), offlineTimeout)
	defer offCancel()
	if err = a.services.Presence.Offline(offCtx); err != nil && !errors.Is(err, service.ErrNoPresence) {
		a.logger.Debug().Err(err).Str("func", "App.Run").Msg("presence not cleared")
	}

	a.mu.Lock()
	a.runCtx = nil
	a.mu.Unlock()

	return errors.Join(runErr, a.services.SyncService.Stop())
}

// handleSignals turns hide signals into tab-hidden events and exit signals
// into a before-exit event followed by shutdown.
func (a *App) handleSignals(ctx context.Context, shutdown context.CancelFunc) error {
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(exit)

	hidden := make(chan os.Signal, 1)
	if len(hideSignals) > 0 {
		signal.Notify(hidden, hideSignals...)
		defer signal.Stop(hidden)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hidden:
			a.publish(ctx, bus.TopicTabHidden)
		case sig := <-exit:
			a.logger.Info().Str("func", "App.handleSignals").Str("signal", sig.String()).Msg("shutting down")
			a.publish(ctx, bus.TopicBeforeExit)
			shutdown()
			return nil
		}
	}
}

func (a *App) publish(ctx context.Context, topic bus.Topic) {
	if err := a.bus.Publish(ctx, bus.NewEvent(topic, "").FromSource("signal")); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.publish").Str("topic", string(topic)).Msg("lifecycle event not published")
	}
}

// reportStatus writes every sync status transition to the app output.
func (a *App) reportStatus(ctx context.Context) error {
	events, err := a.bus.Subscribe(ctx, bus.TopicSyncStatus)
	if err != nil {
		return err
	}

	for event := range events {
		var status models.StatusEvent
		if err = event.Decode(&status); err != nil {
			continue
		}
		line := "sync: " + string(status.Status)
		if status.Reason != "" {
			line += " (" + status.Reason + ")"
		}
		if status.Error != "" {
			line += ": " + status.Error
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// Close releases the local store, the backends and the bus.
func (a *App) Close() error {
	return errors.Join(
		a.registry.Close(),
		a.storages.Close(),
		a.bus.Close(),
	)
}
