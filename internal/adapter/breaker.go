package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/sony/gobreaker/v2"
)

// BreakerSettings configures [WithBreaker].
type BreakerSettings struct {
	// Failures is the number of consecutive failures that opens the breaker.
	Failures uint32
	// Timeout is how long the breaker stays open before a trial call.
	Timeout time.Duration
}

// breakerBackend guards Push, Pull and Delete of the wrapped backend.
type breakerBackend struct {
	Backend
	cb *gobreaker.CircuitBreaker[models.SyncPayload]
}

// WithBreaker wraps b in a circuit breaker. Outcomes that say nothing about
// backend health (not found, too large, not configured, bad request) do not
// count as failures. While the breaker is open every call returns
// [ErrUnavailable] without touching the network.
func WithBreaker(b Backend, settings BreakerSettings, log *logger.Logger) Backend {
	failures := settings.Failures
	if failures == 0 {
		failures = 1
	}

	cb := gobreaker.NewCircuitBreaker[models.SyncPayload](gobreaker.Settings{
		Name:        b.Name(),
		MaxRequests: 1,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			switch Classify(err) {
			case KindNone, KindNotFound, KindPayloadTooLarge, KindNotConfigured, KindBadRequest, KindDeserialization:
				return true
			}
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("func", "WithBreaker").
				Str("backend", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	return &breakerBackend{Backend: b, cb: cb}
}

func (b *breakerBackend) Push(ctx context.Context, userID string, payload models.SyncPayload) error {
	_, err := b.cb.Execute(func() (models.SyncPayload, error) {
		return models.SyncPayload{}, b.Backend.Push(ctx, userID, payload)
	})
	return breakerError(err)
}

func (b *breakerBackend) Pull(ctx context.Context, userID string) (models.SyncPayload, error) {
	payload, err := b.cb.Execute(func() (models.SyncPayload, error) {
		return b.Backend.Pull(ctx, userID)
	})
	return payload, breakerError(err)
}

func (b *breakerBackend) Delete(ctx context.Context, userID string) error {
	_, err := b.cb.Execute(func() (models.SyncPayload, error) {
		return models.SyncPayload{}, b.Backend.Delete(ctx, userID)
	})
	return breakerError(err)
}

// State exposes the breaker state for status reporting.
func (b *breakerBackend) State() gobreaker.State {
	return b.cb.State()
}

// Unwrap returns the guarded backend.
func (b *breakerBackend) Unwrap() Backend {
	return b.Backend
}

func breakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}
	return err
}

// Unwrap strips decorators such as the circuit breaker from b.
func Unwrap(b Backend) Backend {
	for {
		w, ok := b.(interface{ Unwrap() Backend })
		if !ok {
			return b
		}
		b = w.Unwrap()
	}
}

// AsSubscriber returns the subscription capability of b, if any.
func AsSubscriber(b Backend) (Subscriber, bool) {
	s, ok := Unwrap(b).(Subscriber)
	return s, ok
}

// AsPresenceTracker returns the presence capability of b, if any.
func AsPresenceTracker(b Backend) (PresenceTracker, bool) {
	p, ok := Unwrap(b).(PresenceTracker)
	return p, ok
}

// AsIncrementalUpdater returns the incremental write capability of b, if any.
func AsIncrementalUpdater(b Backend) (IncrementalUpdater, bool) {
	u, ok := Unwrap(b).(IncrementalUpdater)
	return u, ok
}

// AsBeaconer returns the beacon capability of b, if any.
func AsBeaconer(b Backend) (Beaconer, bool) {
	bc, ok := Unwrap(b).(Beaconer)
	return bc, ok
}
