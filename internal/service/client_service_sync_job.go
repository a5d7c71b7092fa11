package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
)

// Default job intervals.
const (
	DefaultSyncJobInterval   = 5 * time.Minute
	DefaultBackupJobInterval = 30 * time.Minute
)

// periodicJob calls action on a ticker. The job is idle until Start.
type periodicJob struct {
	name     string
	fallback time.Duration
	action   func(ctx context.Context)
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates the job that requests a periodic push.
func NewClientSyncJob(requester PushRequester, logger *logger.Logger) PeriodicJob {
	return &periodicJob{
		name:     "sync",
		fallback: DefaultSyncJobInterval,
		action: func(context.Context) {
			requester.RequestPush(ReasonPeriodic)
		},
		logger: logger,
	}
}

// NewAutoBackupJob creates the job that stores the settings backup of the
// logged-in user under its cloud-backup key.
func NewAutoBackupJob(backup BackupService, users UserSource, logger *logger.Logger) PeriodicJob {
	return &periodicJob{
		name:     "backup",
		fallback: DefaultBackupJobInterval,
		action: func(ctx context.Context) {
			userID := users.UserID()
			if userID == "" {
				return
			}
			if err := backup.BackupUserSettings(ctx, userID); err != nil {
				logger.Warn().Err(err).Str("func", "AutoBackupJob").Msg("settings backup failed")
			}
		},
		logger: logger,
	}
}

// Start implements PeriodicJob. It stops any previously running job, then
// launches a goroutine that runs the action every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *periodicJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = j.fallback
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Str("job", j.name).Dur("interval", interval).Msg("job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.action(jobCtx)
			}
		}
	}()
}

// Stop implements PeriodicJob. It blocks until the goroutine has exited.
func (j *periodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
