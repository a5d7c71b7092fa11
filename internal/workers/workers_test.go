// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker counts Run calls and blocks until ctx is done.
type countingWorker struct {
	runCount atomic.Int64
}

func (m *countingWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := New(logger.Nop()).Add("w1", w1).Add("w2", w2).Add("w3", w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New(logger.Nop()).Run(context.Background()))
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	idle := &countingWorker{}
	boom := errors.New("boom")

	ws := New(logger.Nop()).
		Add("idle", idle).
		Add("broken", WorkerFunc(func(context.Context) error { return boom }))

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "broken")
	case <-time.After(time.Second):
		t.Fatal("a failing worker must cancel the others")
	}
}

// spyJob records Start and Stop.
type spyJob struct {
	mu       sync.Mutex
	interval time.Duration
	started  bool
	stopped  bool
}

func (j *spyJob) Start(_ context.Context, interval time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.started, j.interval = true, interval
}

func (j *spyJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopped = true
}

func TestFromJob(t *testing.T) {
	job := &spyJob{}
	worker := FromJob(job, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	require.Eventually(t, func() bool {
		job.mu.Lock()
		defer job.mu.Unlock()
		return job.started
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	job.mu.Lock()
	defer job.mu.Unlock()
	assert.True(t, job.stopped)
	assert.Equal(t, time.Minute, job.interval)
}
