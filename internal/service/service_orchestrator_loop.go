package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/bus"
	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/metrics"
	"github.com/MKhiriev/go-reader-sync/internal/settings"
	"github.com/MKhiriev/go-reader-sync/models"
	"golang.org/x/time/rate"
)

// localBackendLabel is the metrics label of local backup exports.
const localBackendLabel = "local"

type pushRequest struct {
	reason PushReason
	reply  chan error
}

type pullRequest struct {
	reply chan pullReply
}

type pullReply struct {
	outcome PullOutcome
	err     error
}

type pushResult struct {
	gen         uint64
	reason      PushReason
	backend     string
	fingerprint string
	err         error
}

// syncSession is the sync session of one user. Fields below the mutex-free
// marker are owned by the loop goroutine (or by check, before it starts).
type syncSession struct {
	o      *Orchestrator
	ctx    context.Context
	cancel context.CancelFunc
	userID string
	logger *logger.Logger

	requests chan pushRequest
	pulls    chan pullRequest
	results  chan pushResult
	done     chan struct{}

	localCh   <-chan bus.Event
	hiddenCh  <-chan bus.Event
	exitCh    <-chan bus.Event
	foreignCh <-chan bus.Event
	remoteCh  <-chan bus.Event

	unsubscribe func()

	// loop-owned
	gen       uint64
	active    adapter.Backend
	debounce  *time.Timer
	debounceC <-chan time.Time
	throttle  *time.Timer
	throttleC <-chan time.Time
	limiter   *rate.Limiter

	inFlight        bool
	inFlightFP      string
	inFlightWaiters []chan error
	pendingReason   PushReason
	pendingWaiters  []chan error

	// lastLocalFP is the fingerprint of local state known to be on the
	// backend; lastRemoteFP is the last payload pushed or applied.
	lastLocalFP  string
	lastRemoteFP string

	exited   bool
	beaconer adapter.Beaconer
	exitWG   sync.WaitGroup
}

func (s *syncSession) subscribe() error {
	if s.o.events == nil {
		return nil
	}

	channels := []struct {
		topic bus.Topic
		ch    *<-chan bus.Event
	}{
		{bus.TopicLocalChange, &s.localCh},
		{bus.TopicTabHidden, &s.hiddenCh},
		{bus.TopicBeforeExit, &s.exitCh},
		{bus.TopicForeignChange, &s.foreignCh},
		{bus.TopicRemoteChange, &s.remoteCh},
	}
	for _, c := range channels {
		ch, err := s.o.events.Subscribe(s.ctx, c.topic)
		if err != nil {
			return fmt.Errorf("subscribe to %s: %w", c.topic, err)
		}
		*c.ch = ch
	}
	return nil
}

// ── check ──

// check looks for remote data of the user on every available backend in
// priority order. The first backend holding data decides; when all answer
// "absent" the first of them is seeded with local state.
func (s *syncSession) check(ctx context.Context) error {
	backends := s.o.registry.Available()

	var absent adapter.Backend
	for _, b := range backends {
		payload, err := b.Pull(ctx, s.userID)
		if err == nil && payload.IsEmpty() {
			err = adapter.ErrNotFound
		}
		metrics.RecordPull(pullOutcome(err))

		switch adapter.Classify(err) {
		case adapter.KindNone:
			return s.resolve(ctx, b, payload)
		case adapter.KindNotFound:
			if absent == nil {
				absent = b
			}
		default:
			s.logger.Warn().Err(err).
				Str("func", "syncSession.check").
				Str("backend", b.Name()).
				Msg("backend unavailable this cycle")
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	if absent == nil {
		s.activate(nil)
		s.logger.Info().Str("func", "syncSession.check").Msg("no remote backend answered, running local-only")
		return nil
	}

	s.activate(absent)
	if err := s.pushSync(ctx, ReasonInitial); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncSession.check").Msg("initial push failed")
	}
	return nil
}

// resolve handles remote data found at login according to the conflict
// policy. A declined prompt seeds the backend with local state; a failed
// prompt leaves both sides alone and the session local-only.
func (s *syncSession) resolve(ctx context.Context, b adapter.Backend, payload models.SyncPayload) error {
	s.activate(b)

	apply := true
	if s.o.cfg.ConflictPolicy != config.ConflictPolicyAuto && s.o.prompter != nil {
		ok, err := s.o.prompter.ConfirmRemoteData(ctx, b.Name(), payload)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.activate(nil)
			s.logger.Warn().Err(err).Str("func", "syncSession.resolve").Msg("remote data prompt failed, running local-only")
			return nil
		}
		apply = ok
	}

	if apply {
		if err := s.applyRemote(ctx, payload); err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	}

	if err := s.pushSync(ctx, ReasonInitial); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncSession.resolve").Msg("push of local data failed")
	}
	return nil
}

func (s *syncSession) activate(b adapter.Backend) {
	s.active = b
	if b == nil {
		s.o.setActive(nil, StateLocalOnly)
		return
	}
	s.o.setActive(b, StateIdleSynced)
	s.logger.Info().Str("func", "syncSession.activate").Str("backend", b.Name()).Msg("sync backend selected")
}

func (s *syncSession) idleState() SyncState {
	if s.active == nil {
		return StateLocalOnly
	}
	return StateIdleSynced
}

// watchBackend forwards remote writes announced by the active backend to
// the bus.
func (s *syncSession) watchBackend() {
	if s.active == nil || s.o.events == nil {
		return
	}
	sub, ok := adapter.AsSubscriber(s.active)
	if !ok {
		return
	}

	name := s.active.Name()
	unsubscribe, err := sub.Subscribe(s.ctx, s.userID, func(p models.SyncPayload) {
		event, err := remoteChangeEvent(name, p)
		if err == nil {
			err = s.o.events.Publish(s.ctx, event)
		}
		if err != nil && s.ctx.Err() == nil {
			s.logger.Warn().Err(err).Str("func", "syncSession.watchBackend").Msg("remote change not forwarded")
		}
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "syncSession.watchBackend").Str("backend", name).Msg("live updates unavailable")
		return
	}
	s.unsubscribe = unsubscribe
}

// ── loop ──

func (s *syncSession) run() {
	defer close(s.done)
	defer s.stopTimers()

	for {
		select {
		case <-s.ctx.Done():
			s.failWaiters(ErrStopped)
			return

		case event, ok := <-s.localCh:
			if !ok {
				s.localCh = nil
				continue
			}
			s.onLocalChange(event)

		case <-s.debounceC:
			s.debounceC = nil
			s.onDebounced()

		case <-s.throttleC:
			s.throttleC = nil
			s.startPush(ReasonLocalChange, nil)

		case req := <-s.requests:
			s.startPush(req.reason, waiters(req.reply))

		case _, ok := <-s.hiddenCh:
			if !ok {
				s.hiddenCh = nil
				continue
			}
			s.startPush(ReasonHidden, nil)

		case _, ok := <-s.exitCh:
			if !ok {
				s.exitCh = nil
				continue
			}
			s.beacon(s.ctx)

		case event, ok := <-s.foreignCh:
			if !ok {
				s.foreignCh = nil
				continue
			}
			s.onForeignChange(event)

		case event, ok := <-s.remoteCh:
			if !ok {
				s.remoteCh = nil
				continue
			}
			s.onRemoteChange(event)

		case req := <-s.pulls:
			outcome, err := s.pull(s.ctx)
			req.reply <- pullReply{outcome: outcome, err: err}

		case res := <-s.results:
			s.onPushResult(res)
		}
	}
}

// onLocalChange restarts the debounce window.
func (s *syncSession) onLocalChange(event bus.Event) {
	if s.o.State() == StateApplyingRemote {
		return
	}

	delay := s.o.cfg.Debounce
	if s.debounce == nil {
		s.debounce = time.NewTimer(delay)
	} else {
		s.debounce.Reset(delay)
	}
	s.debounceC = s.debounce.C

	s.logger.Trace().Str("func", "syncSession.onLocalChange").Str("key", event.Key).Msg("local change")
}

// onDebounced lets the push through the limiter. A push already waiting for
// the limiter will carry the latest state, so nothing more is scheduled.
func (s *syncSession) onDebounced() {
	if s.throttleC != nil {
		return
	}

	delay := s.limiter.Reserve().Delay()
	if delay <= 0 {
		s.startPush(ReasonLocalChange, nil)
		return
	}

	if s.throttle == nil {
		s.throttle = time.NewTimer(delay)
	} else {
		s.throttle.Reset(delay)
	}
	s.throttleC = s.throttle.C
}

func (s *syncSession) onForeignChange(event bus.Event) {
	s.logger.Debug().Str("func", "syncSession.onForeignChange").Str("key", event.Key).Msg("shared state changed by another process")
	s.reinitialize(s.ctx)
}

// onRemoteChange handles a payload announced by the backend subscription.
// Echoes of this session's own pushes and already applied payloads are
// ignored.
func (s *syncSession) onRemoteChange(event bus.Event) {
	if s.active == nil || event.Source != s.active.Name() {
		return
	}

	var payload models.SyncPayload
	if err := event.Decode(&payload); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncSession.onRemoteChange").Msg("undecodable remote change")
		return
	}

	fp := payload.Fingerprint()
	if payload.IsEmpty() || fp == s.lastRemoteFP || fp == s.lastLocalFP || (s.inFlight && fp == s.inFlightFP) {
		return
	}

	if !s.o.cfg.LiveApply {
		s.logger.Info().Str("func", "syncSession.onRemoteChange").Msg("remote data changed, live apply is off")
		return
	}
	_ = s.applyRemote(s.ctx, payload)
}

// ── push ──

// startPush pushes local state, or queues the request behind the push in
// flight. Queued requests collapse into one follow-up push.
func (s *syncSession) startPush(reason PushReason, replies []chan error) {
	if s.o.State() == StateApplyingRemote {
		reply(replies, nil)
		return
	}

	if s.inFlight {
		if s.pendingReason == "" || s.pendingReason == ReasonLocalChange {
			s.pendingReason = reason
		}
		s.pendingWaiters = append(s.pendingWaiters, replies...)
		return
	}

	if s.active == nil {
		s.inFlight = true
		s.inFlightWaiters = replies
		gen := s.gen
		go func() {
			err := s.o.backup.AutoExport(s.ctx)
			s.deliver(pushResult{gen: gen, reason: reason, backend: localBackendLabel, err: err})
		}()
		return
	}

	payload, fp, skip, err := s.prepare(s.ctx, reason)
	if err != nil || skip {
		reply(replies, err)
		return
	}

	s.inFlight = true
	s.inFlightFP = fp
	s.inFlightWaiters = replies
	s.o.setState(StatePushing)
	s.o.status.Syncing(s.ctx, string(reason))

	b, gen, userID := s.active, s.gen, s.userID
	go func() {
		err := b.Push(s.ctx, userID, payload)
		s.deliver(pushResult{gen: gen, reason: reason, backend: b.Name(), fingerprint: fp, err: err})
	}()
}

func (s *syncSession) deliver(res pushResult) {
	select {
	case s.results <- res:
	case <-s.ctx.Done():
	}
}

func (s *syncSession) onPushResult(res pushResult) {
	s.inFlight = false
	s.inFlightFP = ""
	replies := s.inFlightWaiters
	s.inFlightWaiters = nil

	if res.gen != s.gen {
		s.logger.Debug().Str("func", "syncSession.onPushResult").Str("reason", string(res.reason)).Msg("discarding result of an older session")
		reply(replies, ErrStaleResult)
	} else {
		s.finish(s.ctx, res)
		reply(replies, res.err)
	}

	if s.pendingReason != "" {
		reason, pending := s.pendingReason, s.pendingWaiters
		s.pendingReason, s.pendingWaiters = "", nil
		s.startPush(reason, pending)
	}
}

// pushSync pushes from the calling goroutine. Used before the loop starts.
func (s *syncSession) pushSync(ctx context.Context, reason PushReason) error {
	if s.active == nil {
		err := s.o.backup.AutoExport(ctx)
		s.finish(ctx, pushResult{gen: s.gen, reason: reason, backend: localBackendLabel, err: err})
		return err
	}

	payload, fp, skip, err := s.prepare(ctx, reason)
	if err != nil || skip {
		return err
	}

	s.o.setState(StatePushing)
	s.o.status.Syncing(ctx, string(reason))
	err = s.active.Push(ctx, s.userID, payload)
	s.finish(ctx, pushResult{gen: s.gen, reason: reason, backend: s.active.Name(), fingerprint: fp, err: err})
	return err
}

// prepare builds the payload and runs the size check. skip is true for
// mutation and exit pushes when local state did not change since the last
// successful push or apply.
func (s *syncSession) prepare(ctx context.Context, reason PushReason) (models.SyncPayload, string, bool, error) {
	b := s.active
	payload, err := s.o.builder.Build(ctx, s.userID, b.LibraryFormat())
	if err != nil {
		s.o.status.Error(ctx, string(reason), err)
		s.logger.Error().Err(err).Str("func", "syncSession.prepare").Msg("failed to build payload")
		return models.SyncPayload{}, "", false, err
	}

	fp := payload.Fingerprint()
	if (reason == ReasonLocalChange || reason == ReasonBeforeExit) && fp == s.lastLocalFP {
		return payload, fp, true, nil
	}

	if err = s.checkSize(payload, b); err != nil {
		metrics.RecordPush(b.Name(), pushOutcome(err))
		s.o.status.Error(ctx, string(reason), err)
		s.logger.Warn().Err(err).Str("func", "syncSession.prepare").Str("backend", b.Name()).Msg("payload not sent")
		return payload, fp, false, err
	}
	return payload, fp, false, nil
}

// checkSize enforces the lower of the configured and the backend limit.
func (s *syncSession) checkSize(payload models.SyncPayload, b adapter.Backend) error {
	limit := s.o.cfg.MaxPayloadBytes
	if bl := b.MaxPayloadBytes(); bl > 0 && (limit <= 0 || bl < limit) {
		limit = bl
	}

	size, err := payload.Size()
	if err != nil {
		return fmt.Errorf("measure payload: %w", err)
	}
	if limit > 0 && size > limit {
		return fmt.Errorf("%w: %d bytes, limit %d", adapter.ErrPayloadTooLarge, size, limit)
	}
	return nil
}

// finish records a push result of the current generation.
func (s *syncSession) finish(ctx context.Context, res pushResult) {
	metrics.RecordPush(res.backend, pushOutcome(res.err))
	s.o.setState(s.idleState())

	if res.err != nil {
		s.o.status.Error(ctx, string(res.reason), res.err)
		s.logger.Warn().Err(res.err).
			Str("func", "syncSession.finish").
			Str("backend", res.backend).
			Str("reason", string(res.reason)).
			Str("kind", adapter.Classify(res.err).String()).
			Msg("push failed")
		return
	}

	if res.fingerprint != "" {
		s.lastLocalFP = res.fingerprint
		s.lastRemoteFP = res.fingerprint
	}
	if res.backend != localBackendLabel {
		if err := s.o.mirror.Set(ctx, settings.KeyLastSync, formatTimestamp(time.Now())); err != nil {
			s.logger.Debug().Err(err).Str("func", "syncSession.finish").Msg("lastSync not recorded")
		}
	}
	s.o.status.Success(ctx, string(res.reason))
}

// ── pull and apply ──

func (s *syncSession) pull(ctx context.Context) (PullOutcome, error) {
	if s.active == nil {
		return PullOutcome{}, ErrLocalOnly
	}

	outcome := PullOutcome{Backend: s.active.Name()}
	s.o.status.Syncing(ctx, "pull")

	payload, err := s.active.Pull(ctx, s.userID)
	if err == nil && payload.IsEmpty() {
		err = adapter.ErrNotFound
	}
	metrics.RecordPull(pullOutcome(err))

	switch adapter.Classify(err) {
	case adapter.KindNone:
	case adapter.KindNotFound:
		s.o.status.Success(ctx, "pull")
		return outcome, nil
	default:
		s.o.status.Error(ctx, "pull", err)
		return outcome, err
	}

	outcome.Found = true
	if err = s.applyRemote(ctx, payload); err != nil {
		return outcome, err
	}
	outcome.Applied = true
	return outcome, nil
}

// applyRemote merges payload into local state, then reinitializes this
// process and tells the others. Pushes are suppressed meanwhile; results of
// pushes started before are discarded.
func (s *syncSession) applyRemote(ctx context.Context, payload models.SyncPayload) error {
	s.o.setState(StateApplyingRemote)
	defer s.o.setState(s.idleState())

	if err := s.o.merger.Apply(ctx, s.userID, payload); err != nil {
		s.o.status.Error(ctx, "apply", err)
		s.logger.Error().Err(err).Str("func", "syncSession.applyRemote").Msg("remote payload discarded, local state unchanged")
		return err
	}

	s.reinitialize(ctx)
	if err := s.o.mirror.BroadcastSync(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncSession.applyRemote").Msg("sync trigger not broadcast")
	}

	s.lastRemoteFP = payload.Fingerprint()
	if s.active != nil {
		if rebuilt, err := s.o.builder.Build(ctx, s.userID, s.active.LibraryFormat()); err == nil {
			s.lastLocalFP = rebuilt.Fingerprint()
		}
	}
	s.o.status.Success(ctx, "apply")
	return nil
}

// reinitialize reloads application state and starts a new generation.
func (s *syncSession) reinitialize(ctx context.Context) {
	s.gen = s.o.generation.Add(1)
	if s.o.reinit == nil {
		return
	}
	if err := s.o.reinit.Reinitialize(ctx); err != nil {
		s.logger.Error().Err(err).Str("func", "syncSession.reinitialize").Msg("reinitialize failed")
	}
}

// ── exit ──

// beacon sends local state with a transport that outlives the session.
func (s *syncSession) beacon(ctx context.Context) {
	s.exited = true

	if s.active == nil {
		err := s.o.backup.AutoExport(ctx)
		metrics.RecordPush(localBackendLabel, pushOutcome(err))
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "syncSession.beacon").Msg("local backup on exit failed")
		}
		return
	}

	payload, fp, skip, err := s.prepare(ctx, ReasonBeforeExit)
	if err != nil || skip {
		return
	}

	if bc, ok := adapter.AsBeaconer(s.active); ok {
		bc.Beacon(s.userID, payload)
		s.beaconer = bc
		s.lastLocalFP = fp
		return
	}

	b, userID := s.active, s.userID
	s.exitWG.Add(1)
	go func() {
		defer s.exitWG.Done()
		pushCtx, cancel := context.WithTimeout(context.Background(), exitFlushTimeout)
		defer cancel()

		err := b.Push(pushCtx, userID, payload)
		metrics.RecordPush(b.Name(), pushOutcome(err))
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "syncSession.beacon").Msg("exit push failed")
		}
	}()
	s.lastLocalFP = fp
}

// flushOnExit runs after the loop ended.
func (s *syncSession) flushOnExit(ctx context.Context) error {
	if !s.exited {
		s.beacon(ctx)
	}

	var err error
	if s.beaconer != nil {
		err = s.beaconer.Flush(ctx)
	}

	waited := make(chan struct{})
	go func() {
		s.exitWG.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-ctx.Done():
		err = errors.Join(err, ctx.Err())
	}
	return err
}

func (s *syncSession) stopTimers() {
	if s.debounce != nil {
		s.debounce.Stop()
	}
	if s.throttle != nil {
		s.throttle.Stop()
	}
}

func (s *syncSession) failWaiters(err error) {
	reply(s.inFlightWaiters, err)
	reply(s.pendingWaiters, err)
	s.inFlightWaiters, s.pendingWaiters = nil, nil

	for {
		select {
		case req := <-s.requests:
			reply(waiters(req.reply), err)
		default:
			return
		}
	}
}

func waiters(ch chan error) []chan error {
	if ch == nil {
		return nil
	}
	return []chan error{ch}
}

func reply(replies []chan error, err error) {
	for _, ch := range replies {
		ch <- err
	}
}
