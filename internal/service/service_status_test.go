package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTracker_StartsIdle(t *testing.T) {
	tracker := NewStatusTracker(nil, time.Second, time.Second, logger.Nop())
	assert.Equal(t, models.SyncStatusIdle, tracker.Current())
}

func TestStatusTracker_SuccessRevertsToIdle(t *testing.T) {
	tracker := NewStatusTracker(nil, 20*time.Millisecond, time.Hour, logger.Nop())
	ctx := context.Background()

	tracker.Syncing(ctx, "manual")
	assert.Equal(t, models.SyncStatusSyncing, tracker.Current())

	tracker.Success(ctx, "manual")
	assert.Equal(t, models.SyncStatusSuccess, tracker.Current())

	assert.Eventually(t, func() bool { return tracker.Current() == models.SyncStatusIdle }, time.Second, 5*time.Millisecond)
}

func TestStatusTracker_ErrorRevertsToIdle(t *testing.T) {
	tracker := NewStatusTracker(nil, time.Hour, 20*time.Millisecond, logger.Nop())

	tracker.Error(context.Background(), "periodic", errors.New("boom"))
	assert.Equal(t, models.SyncStatusError, tracker.Current())

	assert.Eventually(t, func() bool { return tracker.Current() == models.SyncStatusIdle }, time.Second, 5*time.Millisecond)
}

func TestStatusTracker_NewerTransitionCancelsRevert(t *testing.T) {
	tracker := NewStatusTracker(nil, 20*time.Millisecond, time.Hour, logger.Nop())
	ctx := context.Background()

	tracker.Success(ctx, "first")
	tracker.Syncing(ctx, "second")

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, models.SyncStatusSyncing, tracker.Current(), "the pending revert of the success must not fire")
}

func TestStatusTracker_PublishesEvents(t *testing.T) {
	b := bus.New(logger.Nop())
	t.Cleanup(func() { _ = b.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := b.Subscribe(ctx, bus.TopicSyncStatus)
	require.NoError(t, err)

	tracker := NewStatusTracker(b, 0, 0, logger.Nop())
	tracker.Error(ctx, "periodic", errors.New("boom"))

	select {
	case event := <-ch:
		var st models.StatusEvent
		require.NoError(t, event.Decode(&st))
		assert.Equal(t, models.SyncStatusError, st.Status)
		assert.Equal(t, "periodic", st.Reason)
		assert.NotEmpty(t, st.Error)
		assert.False(t, st.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("no status event")
	}
}
