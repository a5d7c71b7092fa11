// Package metrics holds the prometheus instrumentation of the reader-sync
// server and client.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Proxy KV server
	ProxyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_sync_proxy_requests_total",
			Help: "Total number of /api/sync requests by action and status code",
		},
		[]string{"action", "status"},
	)

	// Client sync
	ClientPushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_sync_client_pushes_total",
			Help: "Total number of client push attempts by backend and outcome",
		},
		[]string{"backend", "outcome"},
	)

	ClientPulls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reader_sync_client_pulls_total",
			Help: "Total number of client pulls by outcome",
		},
		[]string{"outcome"},
	)

	SyncStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reader_sync_status",
			Help: "Current sync status; the active status is 1, the others 0",
		},
		[]string{"status"},
	)

	// Realtime server
	RealtimeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reader_sync_realtime_connections",
			Help: "Current number of open realtime websocket connections",
		},
	)
)

var syncStatuses = []string{"idle", "syncing", "success", "error"}

// RecordProxyRequest counts one handled /api/sync request.
func RecordProxyRequest(action string, status int) {
	if action == "" {
		action = "unknown"
	}
	ProxyRequests.WithLabelValues(action, statusLabel(status)).Inc()
}

func RecordPush(backend, outcome string) {
	ClientPushes.WithLabelValues(backend, outcome).Inc()
}

func RecordPull(outcome string) {
	ClientPulls.WithLabelValues(outcome).Inc()
}

// SetSyncStatus flips the status gauge so exactly one status reads 1.
func SetSyncStatus(status string) {
	for _, s := range syncStatuses {
		v := 0.0
		if s == status {
			v = 1
		}
		SyncStatus.WithLabelValues(s).Set(v)
	}
}

// TrackRealtimeConnection increments or decrements the connection gauge.
func TrackRealtimeConnection(open bool) {
	if open {
		RealtimeConnections.Inc()
		return
	}
	RealtimeConnections.Dec()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
