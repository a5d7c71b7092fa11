package handler

import (
	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/handler/http"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/realtime"
	"github.com/MKhiriev/go-reader-sync/internal/service"
)

// Handlers are the transport handlers of the server binary. A handler is
// nil when its listen address is not configured.
type Handlers struct {
	HTTP     *http.Handler
	Realtime *realtime.Handler
}

func NewHandlers(services *service.Services, hub *realtime.Hub, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Server, logger)
	}
	if cfg.Server.RealtimeAddress != "" && hub != nil {
		handlers.Realtime = realtime.NewHandler(hub, cfg.App.TokenSignKey, cfg.App.TokenIssuer, logger)
	}

	if handlers.HTTP == nil && handlers.Realtime == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
