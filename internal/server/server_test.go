package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/handler"
	myHTTP "github.com/MKhiriev/go-reader-sync/internal/handler/http"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/realtime"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewServer ──

func TestNewServer(t *testing.T) {
	hub := realtime.NewHub(nil, logger.Nop())
	httpHandler := myHTTP.NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	rtHandler := realtime.NewHandler(hub, "key", "issuer", logger.Nop())

	tests := []struct {
		name         string
		handlers     *handler.Handlers
		cfg          config.Server
		wantErr      bool
		wantHTTP     bool
		wantRealtime bool
	}{
		{
			name:         "both",
			handlers:     &handler.Handlers{HTTP: httpHandler, Realtime: rtHandler},
			cfg:          config.Server{HTTPAddress: ":0", RealtimeAddress: ":0"},
			wantHTTP:     true,
			wantRealtime: true,
		},
		{
			name:     "handler without address",
			handlers: &handler.Handlers{HTTP: httpHandler, Realtime: rtHandler},
			cfg:      config.Server{HTTPAddress: ":0"},
			wantHTTP: true,
		},
		{
			name:     "nothing",
			handlers: &handler.Handlers{},
			cfg:      config.Server{HTTPAddress: ":0"},
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, hub, tt.cfg, logger.Nop())
			if tt.wantErr {
				require.ErrorIs(t, err, errNoServersAreCreated)
				return
			}
			require.NoError(t, err)

			s := srv.(*server)
			assert.Equal(t, tt.wantHTTP, s.httpServer != nil)
			assert.Equal(t, tt.wantRealtime, s.realtimeServer != nil)
		})
	}
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(), errNoServersToRun)
}

// ── lifecycle ──

func TestHTTPServer_ShutdownStopsRun(t *testing.T) {
	h := newHTTPServer("test", "127.0.0.1:0", http.NotFoundHandler(), logger.Nop())

	done := make(chan struct{})
	go func() {
		h.RunServer()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	h.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestRealtimeServer_ShutdownStopsHub(t *testing.T) {
	hub := realtime.NewHub(nil, logger.Nop())
	rt := newRealtimeServer("127.0.0.1:0", realtime.NewHandler(hub, "key", "issuer", logger.Nop()), hub, logger.Nop())

	done := make(chan struct{})
	go func() {
		rt.RunServer()
		close(done)
	}()

	require.Eventually(t, func() bool {
		return rt.started.Load()
	}, time.Second, 10*time.Millisecond)
	rt.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}

	select {
	case <-rt.stopped:
	default:
		t.Fatal("hub is still running")
	}
}
