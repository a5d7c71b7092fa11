// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// reader-sync binaries. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the data directory,
	// token parameters, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the local
	// SQLite database, the settings directory, and the badger stores used
	// by the servers.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and limits for the proxy KV and
	// realtime servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote backend endpoints used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of the client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the orchestrator policy.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DataDir is the directory shared by all client processes of a device.
	// The local database and the settings directory default to paths
	// inside it.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// LogFile is the client log file. Rotated by size.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// TokenSignKey is the secret used to sign and verify realtime
	// connection tokens. Shared by the realtime server and its clients.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a realtime token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Settings holds the settings mirror directory.
	Settings Settings `envPrefix:"SETTINGS_"`

	// KV holds the badger directory of the proxy KV server.
	KV KV `envPrefix:"KV_"`

	// Realtime holds the badger directory of the realtime server.
	Realtime Realtime `envPrefix:"REALTIME_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Settings holds the settings mirror location.
type Settings struct {
	// Dir holds one file per settings key.
	// Env: STORAGE_SETTINGS_DIR
	Dir string `env:"DIR"`
}

// KV holds the proxy KV store location. An empty path leaves the proxy
// unconfigured: every request is answered with 503.
type KV struct {
	// Env: STORAGE_KV_PATH
	Path string `env:"PATH"`

	// InMemory runs badger without touching disk.
	// Env: STORAGE_KV_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`
}

// Realtime holds the realtime tree store location.
type Realtime struct {
	// Env: STORAGE_REALTIME_PATH
	Path string `env:"PATH"`

	// Env: STORAGE_REALTIME_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`
}

// Server holds network and limit settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the proxy KV HTTP server,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RealtimeAddress is the TCP address of the realtime websocket server.
	// Env: SERVER_REALTIME_ADDRESS
	RealtimeAddress string `env:"REALTIME_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of proxy requests allowed per client IP per
	// minute. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`
}

// Adapter holds the endpoints of the remote backends. A backend whose
// endpoint is empty is reported as not configured.
type Adapter struct {
	// ProxyURL is the base URL of the proxy KV server.
	// Env: ADAPTER_PROXY_URL
	ProxyURL string `env:"PROXY_URL"`

	// DocumentURL is the CouchDB URL, credentials included.
	// Env: ADAPTER_DOCUMENT_URL
	DocumentURL string `env:"DOCUMENT_URL"`

	// DocumentDB is the CouchDB database name.
	// Env: ADAPTER_DOCUMENT_DB
	DocumentDB string `env:"DOCUMENT_DB"`

	// RealtimeURL is the websocket URL of the realtime server.
	// Env: ADAPTER_REALTIME_URL
	RealtimeURL string `env:"REALTIME_URL"`

	// RequestTimeout bounds every outbound backend call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Order lists backend names in priority order.
	// Env: ADAPTER_ORDER (comma separated)
	Order []string `env:"ORDER" envSeparator:","`

	// BreakerFailures is the number of consecutive failures that opens a
	// backend's circuit breaker.
	// Env: ADAPTER_BREAKER_FAILURES
	BreakerFailures uint32 `env:"BREAKER_FAILURES"`

	// BreakerTimeout is how long an open breaker stays open.
	// Env: ADAPTER_BREAKER_TIMEOUT
	BreakerTimeout time.Duration `env:"BREAKER_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// SyncInterval is the period of the unconditional push.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// Debounce is the quiet time after the last local mutation before a
	// push is attempted.
	// Env: WORKERS_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// MinPushInterval is the minimum spacing of mutation-driven pushes.
	// Env: WORKERS_MIN_PUSH_INTERVAL
	MinPushInterval time.Duration `env:"MIN_PUSH_INTERVAL"`

	// BackupInterval is the period of the per-user settings backup.
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`
}

// Sync holds the orchestrator policy.
type Sync struct {
	// ConflictPolicy decides what happens when remote data is found at
	// login: "confirm" asks the user, "auto" applies it.
	// Env: SYNC_CONFLICT_POLICY
	ConflictPolicy string `env:"CONFLICT_POLICY"`

	// LiveApply applies remote writes announced by a backend subscription
	// while the session is running.
	// Env: SYNC_LIVE_APPLY
	LiveApply bool `env:"LIVE_APPLY"`

	// SuccessWindow is how long the success status is shown.
	// Env: SYNC_SUCCESS_WINDOW
	SuccessWindow time.Duration `env:"SUCCESS_WINDOW"`

	// ErrorWindow is how long the error status is shown.
	// Env: SYNC_ERROR_WINDOW
	ErrorWindow time.Duration `env:"ERROR_WINDOW"`

	// MaxPayloadBytes caps the serialized payload for every backend. The
	// effective limit is the lower of this and the backend's own limit.
	// Env: SYNC_MAX_PAYLOAD_BYTES
	MaxPayloadBytes int `env:"MAX_PAYLOAD_BYTES"`
}

// Conflict policies accepted by [Sync.ConflictPolicy].
const (
	ConflictPolicyConfirm = "confirm"
	ConflictPolicyAuto    = "auto"
)

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
