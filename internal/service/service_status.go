package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/metrics"
	"github.com/MKhiriev/go-reader-sync/models"
)

// StatusTracker holds the process-wide sync status. success and error
// revert to idle after their display window; a newer transition cancels a
// pending revert.
type StatusTracker struct {
	publisher     bus.Publisher
	successWindow time.Duration
	errorWindow   time.Duration
	now           func() time.Time
	logger        *logger.Logger

	mu     sync.Mutex
	status models.SyncStatus
	seq    uint64
	revert *time.Timer
}

// NewStatusTracker starts in idle. A nil publisher keeps transitions local.
func NewStatusTracker(publisher bus.Publisher, successWindow, errorWindow time.Duration, logger *logger.Logger) *StatusTracker {
	t := &StatusTracker{
		publisher:     publisher,
		successWindow: successWindow,
		errorWindow:   errorWindow,
		now:           time.Now,
		logger:        logger,
		status:        models.SyncStatusIdle,
	}
	metrics.SetSyncStatus(string(models.SyncStatusIdle))
	return t
}

// Current returns the status.
func (t *StatusTracker) Current() models.SyncStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *StatusTracker) Syncing(ctx context.Context, reason string) {
	t.set(ctx, models.StatusEvent{Status: models.SyncStatusSyncing, Reason: reason})
}

func (t *StatusTracker) Success(ctx context.Context, reason string) {
	t.set(ctx, models.StatusEvent{Status: models.SyncStatusSuccess, Reason: reason})
}

func (t *StatusTracker) Error(ctx context.Context, reason string, err error) {
	event := models.StatusEvent{Status: models.SyncStatusError, Reason: reason}
	if err != nil {
		event.Error = statusMessage(err)
	}
	t.set(ctx, event)
}

func (t *StatusTracker) set(ctx context.Context, event models.StatusEvent) {
	t.mu.Lock()
	t.seq++
	seq := t.seq
	if t.revert != nil {
		t.revert.Stop()
		t.revert = nil
	}
	t.status = event.Status

	var window time.Duration
	switch event.Status {
	case models.SyncStatusSuccess:
		window = t.successWindow
	case models.SyncStatusError:
		window = t.errorWindow
	}
	if window > 0 {
		t.revert = time.AfterFunc(window, func() { t.revertToIdle(seq) })
	}
	t.mu.Unlock()

	t.publish(ctx, event)
}

func (t *StatusTracker) revertToIdle(seq uint64) {
	t.mu.Lock()
	if t.seq != seq {
		t.mu.Unlock()
		return
	}
	t.status = models.SyncStatusIdle
	t.revert = nil
	t.mu.Unlock()

	t.publish(context.Background(), models.StatusEvent{Status: models.SyncStatusIdle})
}

func (t *StatusTracker) publish(ctx context.Context, event models.StatusEvent) {
	event.At = t.now()
	metrics.SetSyncStatus(string(event.Status))

	if t.publisher == nil {
		return
	}
	msg, err := bus.NewEvent(bus.TopicSyncStatus, "").FromSource("orchestrator").WithData(event)
	if err == nil {
		err = t.publisher.Publish(context.WithoutCancel(ctx), msg)
	}
	if err != nil {
		t.logger.Debug().Err(err).Str("func", "StatusTracker.publish").Msg("status event not published")
	}
}
