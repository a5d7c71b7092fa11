// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/mock"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// spyRequester counts RequestPush calls.
type spyRequester struct {
	calls atomic.Int64

	mu      sync.Mutex
	reasons []PushReason
}

func (s *spyRequester) RequestPush(reason PushReason) {
	s.calls.Add(1)
	s.mu.Lock()
	s.reasons = append(s.reasons, reason)
	s.mu.Unlock()
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spyRequester{}, logger.Nop())
	require.NotNil(t, job)

	var _ PeriodicJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_RequestsPeriodicPush(t *testing.T) {
	spy := &spyRequester{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RequestPush called %d times", got)

	spy.mu.Lock()
	defer spy.mu.Unlock()
	for _, r := range spy.reasons {
		assert.Equal(t, ReasonPeriodic, r)
	}
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRequester{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyRequester{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyRequester{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spyRequester{}
		job := NewClientSyncJob(spy, logger.Nop()).(*periodicJob)

		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, DefaultSyncJobInterval, job.fallback)
		assert.Equal(t, int64(0), spy.calls.Load(), "interval %v falls back to 5 minutes", interval)
	}
}

func TestClientSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyRequester{}
	job := NewClientSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "second Start keeps requesting pushes")
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientSyncJob(&spyRequester{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

// ── NewAutoBackupJob ─────────────────────────────────────────────────────────

type staticUser struct{ id string }

func (s staticUser) UserID() string { return s.id }

func (s staticUser) User() (models.User, bool) {
	return models.User{ID: s.id}, s.id != ""
}

func TestAutoBackupJob_BacksUpCurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	backup := mock.NewMockBackupService(ctrl)

	var calls atomic.Int64
	backup.EXPECT().BackupUserSettings(gomock.Any(), "u1").DoAndReturn(func(context.Context, string) error {
		calls.Add(1)
		return assert.AnError
	}).MinTimes(2)

	job := NewAutoBackupJob(backup, staticUser{id: "u1"}, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestAutoBackupJob_SkipsWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	backup := mock.NewMockBackupService(ctrl)

	job := NewAutoBackupJob(backup, staticUser{}, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()
}

func TestAutoBackupJob_DefaultInterval(t *testing.T) {
	job := NewAutoBackupJob(nil, staticUser{}, logger.Nop()).(*periodicJob)
	assert.Equal(t, DefaultBackupJobInterval, job.fallback)
}
