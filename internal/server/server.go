package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/handler"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/realtime"
)

const gcInterval = 10 * time.Minute

type server struct {
	httpServer     *httpServer
	realtimeServer *realtimeServer
	stores         []GarbageCollector
	logger         *logger.Logger
}

// NewServer creates the servers whose handlers exist. stores get their
// value log collected periodically while the servers run.
func NewServer(handlers *handler.Handlers, hub *realtime.Hub, cfg config.Server, logger *logger.Logger, stores ...GarbageCollector) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{stores: stores, logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer("proxy", cfg.HTTPAddress, handlers.HTTP.Init(), logger)
	}
	if handlers.Realtime != nil && hub != nil && cfg.RealtimeAddress != "" {
		servers.realtimeServer = newRealtimeServer(cfg.RealtimeAddress, handlers.Realtime, hub, logger)
	}

	if servers.httpServer == nil && servers.realtimeServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.realtimeServer != nil {
		s.realtimeServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil && s.realtimeServer == nil {
		return errNoServersToRun
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if len(s.stores) > 0 {
		go s.collectGarbage(ctx)
	}

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching proxy HTTP server")
		go s.httpServer.RunServer()
	}
	if s.realtimeServer != nil {
		s.logger.Info().Msg("Launching realtime server")
		go s.realtimeServer.RunServer()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) collectGarbage(ctx context.Context) {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, store := range s.stores {
				if err := store.RunGC(); err != nil {
					s.logger.Warn().Err(err).Str("func", "server.collectGarbage").Msg("value log gc failed")
				}
			}
		}
	}
}
