// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"golang.org/x/time/rate"
)

// SyncState is the state of the sync session of the current user.
type SyncState string

const (
	StateInactive       SyncState = "inactive"
	StateChecking       SyncState = "checking"
	StateApplyingRemote SyncState = "applying-remote"
	StateIdleSynced     SyncState = "idle-synced"
	StatePushing        SyncState = "pushing"
	StateLocalOnly      SyncState = "local-only"
)

// PushReason names what triggered a push.
type PushReason string

const (
	ReasonInitial     PushReason = "initial"
	ReasonLocalChange PushReason = "local-change"
	ReasonPeriodic    PushReason = "periodic"
	ReasonHidden      PushReason = "tab-hidden"
	ReasonBeforeExit  PushReason = "before-exit"
	ReasonManual      PushReason = "manual"
)

// PullOutcome describes the result of [Orchestrator.PullNow].
type PullOutcome struct {
	Backend string
	// Found is false when the backend holds nothing for the user.
	Found bool
	// Applied is true when the remote payload replaced local state.
	Applied bool
}

// OrchestratorConfig is the sync policy.
type OrchestratorConfig struct {
	ConflictPolicy  string
	LiveApply       bool
	Debounce        time.Duration
	MinPushInterval time.Duration
	MaxPayloadBytes int
}

// NewOrchestratorConfig picks the orchestrator settings out of the client
// configuration.
func NewOrchestratorConfig(cfg *config.ClientConfig) OrchestratorConfig {
	return OrchestratorConfig{
		ConflictPolicy:  cfg.Sync.ConflictPolicy,
		LiveApply:       cfg.Sync.LiveApply,
		Debounce:        cfg.Workers.Debounce,
		MinPushInterval: cfg.Workers.MinPushInterval,
		MaxPayloadBytes: cfg.Sync.MaxPayloadBytes,
	}
}

const (
	requestBuffer    = 16
	exitFlushTimeout = 5 * time.Second
)

// Orchestrator decides when to push and pull, which backend to use and how
// remote data is merged. It implements [ClientSyncService].
//
// After [Orchestrator.Start] one goroutine owns the session: every trigger,
// push result and pull goes through it, so at most one push is in flight.
type Orchestrator struct {
	registry BackendRegistry
	builder  *PayloadBuilder
	merger   *Merger
	status   *StatusTracker
	backup   BackupService
	mirror   SettingsStore
	events   EventBus
	prompter Prompter
	reinit   Reinitializer
	cfg      OrchestratorConfig
	logger   *logger.Logger

	generation atomic.Uint64

	mu      sync.RWMutex
	state   SyncState
	active  adapter.Backend
	session *syncSession
}

func NewOrchestrator(
	registry BackendRegistry,
	builder *PayloadBuilder,
	merger *Merger,
	status *StatusTracker,
	backup BackupService,
	mirror SettingsStore,
	events EventBus,
	prompter Prompter,
	cfg OrchestratorConfig,
	logger *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		builder:  builder,
		merger:   merger,
		status:   status,
		backup:   backup,
		mirror:   mirror,
		events:   events,
		prompter: prompter,
		cfg:      cfg,
		logger:   logger,
		state:    StateInactive,
	}
}

// SetReinitializer installs the hook run after local state was replaced.
// It must be called before Start.
func (o *Orchestrator) SetReinitializer(r Reinitializer) {
	o.reinit = r
}

func (o *Orchestrator) Start(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}
	if err := o.Stop(); err != nil {
		o.logger.Warn().Err(err).Str("func", "Orchestrator.Start").Msg("previous session did not stop cleanly")
	}

	log := o.logger.GetChildLogger()
	sessionCtx, cancel := context.WithCancel(log.WithContext(context.WithoutCancel(ctx)))
	s := &syncSession{
		o:        o,
		ctx:      sessionCtx,
		cancel:   cancel,
		userID:   userID,
		gen:      o.generation.Add(1),
		requests: make(chan pushRequest, requestBuffer),
		pulls:    make(chan pullRequest),
		results:  make(chan pushResult, 1),
		done:     make(chan struct{}),
		limiter:  newPushLimiter(o.cfg.MinPushInterval),
		logger:   log,
	}

	if err := s.subscribe(); err != nil {
		cancel()
		close(s.done)
		return err
	}

	o.mu.Lock()
	o.session = s
	o.state = StateChecking
	o.active = nil
	o.mu.Unlock()

	checkCtx, cancelCheck := context.WithCancel(ctx)
	stopCheck := context.AfterFunc(sessionCtx, cancelCheck)
	err := s.check(checkCtx)
	stopCheck()
	cancelCheck()

	if err != nil || sessionCtx.Err() != nil {
		cancel()
		close(s.done)
		o.mu.Lock()
		if o.session == s {
			o.session = nil
			o.state = StateInactive
			o.active = nil
		}
		o.mu.Unlock()
		if err == nil {
			err = ErrStopped
		}
		return fmt.Errorf("sync check: %w", err)
	}

	s.watchBackend()
	go s.run()
	return nil
}

func (o *Orchestrator) RequestPush(reason PushReason) {
	s := o.current()
	if s == nil {
		return
	}
	select {
	case s.requests <- pushRequest{reason: reason}:
	default:
		s.logger.Debug().Str("func", "Orchestrator.RequestPush").Str("reason", string(reason)).Msg("push request dropped, queue full")
	}
}

func (o *Orchestrator) PushNow(ctx context.Context) error {
	s := o.current()
	if s == nil {
		return ErrNoActiveSession
	}

	reply := make(chan error, 1)
	select {
	case s.requests <- pushRequest{reason: ReasonManual, reply: reply}:
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *Orchestrator) PullNow(ctx context.Context) (PullOutcome, error) {
	s := o.current()
	if s == nil {
		return PullOutcome{}, ErrNoActiveSession
	}

	reply := make(chan pullReply, 1)
	select {
	case s.pulls <- pullRequest{reply: reply}:
	case <-s.done:
		return PullOutcome{}, ErrStopped
	case <-ctx.Done():
		return PullOutcome{}, ctx.Err()
	}

	select {
	case r := <-reply:
		return r.outcome, r.err
	case <-s.done:
		return PullOutcome{}, ErrStopped
	case <-ctx.Done():
		return PullOutcome{}, ctx.Err()
	}
}

func (o *Orchestrator) State() SyncState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

func (o *Orchestrator) ActiveBackend() string {
	if b := o.Backend(); b != nil {
		return b.Name()
	}
	return ""
}

// Backend returns the active backend, or nil in local-only mode.
func (o *Orchestrator) Backend() adapter.Backend {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.active
}

// Stop ends the session. Unpushed local changes get a final push, bounded
// by exitFlushTimeout.
func (o *Orchestrator) Stop() error {
	o.mu.Lock()
	s := o.session
	o.session = nil
	o.mu.Unlock()

	if s == nil {
		return nil
	}

	s.cancel()
	<-s.done
	if s.unsubscribe != nil {
		s.unsubscribe()
	}

	ctx, cancel := context.WithTimeout(s.logger.WithContext(context.Background()), exitFlushTimeout)
	defer cancel()
	err := s.flushOnExit(ctx)

	o.generation.Add(1)
	o.mu.Lock()
	o.state = StateInactive
	o.active = nil
	o.mu.Unlock()

	return err
}

func (o *Orchestrator) current() *syncSession {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.session
}

func (o *Orchestrator) setState(state SyncState) {
	o.mu.Lock()
	o.state = state
	o.mu.Unlock()
}

func (o *Orchestrator) setActive(b adapter.Backend, state SyncState) {
	o.mu.Lock()
	o.active = b
	o.state = state
	o.mu.Unlock()
}

func newPushLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// remoteChangeEvent wraps a payload announced by a backend subscription.
func remoteChangeEvent(backend string, payload any) (bus.Event, error) {
	return bus.NewEvent(bus.TopicRemoteChange, "").FromSource(backend).WithData(payload)
}
