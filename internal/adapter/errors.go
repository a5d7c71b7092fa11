package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/sony/gobreaker/v2"
)

var (
	// ErrNotConfigured means the backend has no endpoint or credentials.
	ErrNotConfigured = errors.New("backend not configured")
	// ErrTransient covers network failures, timeouts and 5xx answers. The
	// operation may succeed when retried later.
	ErrTransient = errors.New("transient backend error")
	// ErrPayloadTooLarge means the serialized payload exceeds the backend limit.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrNotFound means the backend holds nothing for the user.
	ErrNotFound = errors.New("remote data not found")
	// ErrDeserialization means remote data has an unexpected shape.
	ErrDeserialization = errors.New("remote data deserialization failed")
	// ErrBadRequest means the backend rejected the request itself.
	ErrBadRequest = errors.New("bad request")
	// ErrUnavailable means the circuit breaker of the backend is open.
	ErrUnavailable = fmt.Errorf("backend unavailable: %w", ErrTransient)
)

// ErrorKind is the coarse class of a backend error.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNotConfigured
	KindTransient
	KindPayloadTooLarge
	KindNotFound
	KindDeserialization
	KindBadRequest
	KindUnavailable
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotConfigured:
		return "not_configured"
	case KindTransient:
		return "transient"
	case KindPayloadTooLarge:
		return "payload_too_large"
	case KindNotFound:
		return "not_found"
	case KindDeserialization:
		return "deserialization"
	case KindBadRequest:
		return "bad_request"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Classify maps any error to the adapter taxonomy. Context and network
// errors count as transient.
func Classify(err error) ErrorKind {
	var netErr net.Error

	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnavailable),
		errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests):
		return KindUnavailable
	case errors.Is(err, ErrNotConfigured):
		return KindNotConfigured
	case errors.Is(err, ErrPayloadTooLarge):
		return KindPayloadTooLarge
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDeserialization):
		return KindDeserialization
	case errors.Is(err, ErrBadRequest):
		return KindBadRequest
	case errors.Is(err, ErrTransient),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return KindTransient
	default:
		return KindUnknown
	}
}
