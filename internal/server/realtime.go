package server

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/realtime"
)

// realtimeServer runs the hub event loop next to the websocket listener.
type realtimeServer struct {
	*httpServer

	hub     *realtime.Hub
	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	stopped chan struct{}
}

func newRealtimeServer(address string, handler *realtime.Handler, hub *realtime.Hub, logger *logger.Logger) *realtimeServer {
	ctx, cancel := context.WithCancel(context.Background())
	return &realtimeServer{
		httpServer: newHTTPServer("realtime", address, handler.Routes(), logger),
		hub:        hub,
		ctx:        ctx,
		cancel:     cancel,
		stopped:    make(chan struct{}),
	}
}

func (r *realtimeServer) RunServer() {
	if r.started.CompareAndSwap(false, true) {
		go func() {
			defer close(r.stopped)
			r.hub.Run(r.ctx)
		}()
	}

	r.httpServer.RunServer()
}

// Shutdown stops accepting connections first, then stops the hub so that
// on-disconnect writes of the remaining clients are applied.
func (r *realtimeServer) Shutdown() {
	r.httpServer.Shutdown()
	r.cancel()
	if r.started.Load() {
		<-r.stopped
	}
}
