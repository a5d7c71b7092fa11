package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"not configured", fmt.Errorf("x: %w", ErrNotConfigured), KindNotConfigured},
		{"transient", fmt.Errorf("x: %w", ErrTransient), KindTransient},
		{"deadline", context.DeadlineExceeded, KindTransient},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("refused")}, KindTransient},
		{"too large", ErrPayloadTooLarge, KindPayloadTooLarge},
		{"not found", fmt.Errorf("%w: missing", ErrNotFound), KindNotFound},
		{"deserialization", ErrDeserialization, KindDeserialization},
		{"bad request", ErrBadRequest, KindBadRequest},
		{"unavailable", ErrUnavailable, KindUnavailable},
		{"open breaker", gobreaker.ErrOpenState, KindUnavailable},
		{"other", errors.New("weird"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestErrUnavailable_IsTransient(t *testing.T) {
	assert.ErrorIs(t, ErrUnavailable, ErrTransient)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "payload_too_large", KindPayloadTooLarge.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
