package adapter

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
)

// Registry holds the backends in priority order.
type Registry struct {
	backends []Backend

	warned sync.Map
	logger *logger.Logger
}

// NewRegistry orders backends by their position in order. Backends whose
// name is not in order are left out.
func NewRegistry(order []string, log *logger.Logger, backends ...Backend) *Registry {
	ordered := make([]Backend, 0, len(backends))
	for _, name := range order {
		for _, b := range backends {
			if b.Name() == name && !slices.ContainsFunc(ordered, func(o Backend) bool { return o.Name() == name }) {
				ordered = append(ordered, b)
			}
		}
	}

	return &Registry{backends: ordered, logger: log}
}

// NewRegistryFromConfig builds every known backend, guards each with a
// circuit breaker and orders them by cfg.Order.
func NewRegistryFromConfig(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (*Registry, error) {
	proxy, err := NewProxyBackend(adapterCfg, log)
	if err != nil {
		return nil, fmt.Errorf("proxy backend: %w", err)
	}
	document, err := NewDocumentBackend(adapterCfg, log)
	if err != nil {
		return nil, fmt.Errorf("document backend: %w", err)
	}
	rt, err := NewRealtimeBackend(adapterCfg, appCfg, log)
	if err != nil {
		return nil, fmt.Errorf("realtime backend: %w", err)
	}

	settings := BreakerSettings{Failures: adapterCfg.BreakerFailures, Timeout: adapterCfg.BreakerTimeout}
	return NewRegistry(adapterCfg.Order, log,
		WithBreaker(rt, settings, log),
		WithBreaker(document, settings, log),
		WithBreaker(proxy, settings, log),
	), nil
}

// All returns every registered backend in priority order.
func (r *Registry) All() []Backend {
	return slices.Clone(r.backends)
}

// Available returns the configured backends in priority order. Each
// unconfigured backend is reported once.
func (r *Registry) Available() []Backend {
	out := make([]Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if b.Configured() {
			out = append(out, b)
			continue
		}
		if _, seen := r.warned.LoadOrStore(b.Name(), struct{}{}); !seen {
			r.logger.Info().Err(ErrNotConfigured).Str("func", "Registry.Available").Str("backend", b.Name()).Msg("backend skipped")
		}
	}
	return out
}

// Get returns the backend with the given name.
func (r *Registry) Get(name string) (Backend, bool) {
	for _, b := range r.backends {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// Close closes every backend holding connections.
func (r *Registry) Close() error {
	var errs []error
	for _, b := range r.backends {
		if c, ok := Unwrap(b).(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
