package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProxy(t *testing.T, serverURL string) *ProxyBackend {
	t.Helper()
	p, err := NewProxyBackend(config.ClientAdapter{ProxyURL: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return p
}

func writeProxyJSON(w http.ResponseWriter, status int, body models.ProxyResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func decodeProxyRequest(t *testing.T, r *http.Request) models.ProxyRequest {
	t.Helper()
	var req models.ProxyRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

var samplePayload = models.SyncPayload{
	Auth:           `{"state":{"user":{"id":"u1"},"isAuthenticated":true},"version":0}`,
	Library:        `{"version":3,"novels":[]}`,
	ReaderSettings: `{"fontSize":18}`,
	Theme:          `{"state":{"theme":"dark"}}`,
	LastSync:       "2026-03-01T10:00:00Z",
}

// ── configuration ──

func TestProxy_NotConfigured(t *testing.T) {
	p, err := NewProxyBackend(config.ClientAdapter{}, logger.Nop())
	require.NoError(t, err)

	assert.False(t, p.Configured())
	assert.ErrorIs(t, p.Push(context.Background(), "u1", samplePayload), ErrNotConfigured)
	_, err = p.Pull(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, p.Delete(context.Background(), "u1"), ErrNotConfigured)
}

func TestProxy_InvalidURL(t *testing.T) {
	_, err := NewProxyBackend(config.ClientAdapter{ProxyURL: "http://"}, logger.Nop())
	require.Error(t, err)
}

func TestProxy_Descriptors(t *testing.T) {
	p := newTestProxy(t, "localhost:8080")
	assert.Equal(t, NameProxy, p.Name())
	assert.True(t, p.Configured())
	assert.Equal(t, 900_000, p.MaxPayloadBytes())
	assert.Equal(t, models.LibraryFormatFull, p.LibraryFormat())
	assert.Equal(t, "http://localhost:8080", p.baseURL)
}

// ── Push ──

func TestProxy_Push_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync", r.URL.Path)

		req := decodeProxyRequest(t, r)
		assert.Equal(t, "u1", req.UserID)
		assert.Equal(t, models.ProxyActionSave, req.Action)
		assert.Equal(t, samplePayload.ReaderSettings, req.Data["readerSettings"])
		assert.Equal(t, samplePayload.Library, req.Data["library"])

		writeProxyJSON(w, http.StatusOK, models.ProxyResponse{Success: true, Message: "Data saved successfully"})
	}))
	defer srv.Close()

	require.NoError(t, newTestProxy(t, srv.URL).Push(context.Background(), "u1", samplePayload))
}

func TestProxy_Push_TooLarge(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	big := samplePayload
	big.Library = strings.Repeat("x", 900_001)

	err := newTestProxy(t, srv.URL).Push(context.Background(), "u1", big)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
	assert.Zero(t, calls.Load())
}

func TestProxy_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"not configured", http.StatusServiceUnavailable, ErrNotConfigured},
		{"internal", http.StatusInternalServerError, ErrTransient},
		{"bad gateway", http.StatusBadGateway, ErrTransient},
		{"rate limited", http.StatusTooManyRequests, ErrTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeProxyJSON(w, tt.status, models.ProxyResponse{Error: "boom"})
			}))
			defer srv.Close()

			err := newTestProxy(t, srv.URL).Push(context.Background(), "u1", samplePayload)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestProxy_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestProxy(t, url).Push(context.Background(), "u1", samplePayload)
	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, KindTransient, Classify(err))
}

// ── Pull ──

func TestProxy_Pull_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeProxyRequest(t, r)
		assert.Equal(t, models.ProxyActionLoad, req.Action)

		record, err := payloadToRecord(samplePayload)
		require.NoError(t, err)
		writeProxyJSON(w, http.StatusOK, models.ProxyResponse{Success: true, Data: record})
	}))
	defer srv.Close()

	got, err := newTestProxy(t, srv.URL).Pull(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, samplePayload, got)
}

func TestProxy_Pull_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeProxyJSON(w, http.StatusNotFound, models.ProxyResponse{Error: "No data found for this user"})
	}))
	defer srv.Close()

	_, err := newTestProxy(t, srv.URL).Pull(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProxy_Pull_BadShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeProxyJSON(w, http.StatusOK, models.ProxyResponse{Success: true, Data: models.RemoteRecord{"auth": 42}})
	}))
	defer srv.Close()

	_, err := newTestProxy(t, srv.URL).Pull(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrDeserialization)
}

// ── Delete ──

func TestProxy_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeProxyRequest(t, r)
		assert.Equal(t, models.ProxyActionDelete, req.Action)
		writeProxyJSON(w, http.StatusNotFound, models.ProxyResponse{Error: "No data found for this user"})
	}))
	defer srv.Close()

	require.NoError(t, newTestProxy(t, srv.URL).Delete(context.Background(), "u1"))
}

// ── Beacon ──

func TestProxy_BeaconFlush(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		time.Sleep(50 * time.Millisecond)
		calls.Add(1)
		writeProxyJSON(w, http.StatusOK, models.ProxyResponse{Success: true})
	}))
	defer srv.Close()

	p := newTestProxy(t, srv.URL)
	p.Beacon("u1", samplePayload)

	require.NoError(t, p.Flush(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
}

func TestProxy_Flush_ContextDone(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	p := newTestProxy(t, srv.URL)
	p.Beacon("u1", samplePayload)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Flush(ctx), context.DeadlineExceeded)
}
