package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewClientConfig ──────────────────────────────────────────────────────────

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultDataDir, cfg.App.DataDir)
	assert.Equal(t, filepath.Join(DefaultDataDir, "reader.db"), cfg.Storage.DB.DSN)
	assert.Equal(t, filepath.Join(DefaultDataDir, "settings"), cfg.Storage.SettingsDir)
	assert.Equal(t, DefaultAdapterOrder, cfg.Adapter.Order)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 2*time.Second, cfg.Workers.Debounce)
	assert.Equal(t, 30*time.Second, cfg.Workers.MinPushInterval)
	assert.Equal(t, 2*time.Second, cfg.Sync.SuccessWindow)
	assert.Equal(t, 3*time.Second, cfg.Sync.ErrorWindow)
	assert.Equal(t, 900_000, cfg.Sync.MaxPayloadBytes)
	assert.Equal(t, ConflictPolicyConfirm, cfg.Sync.ConflictPolicy)
	assert.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{
		App:     App{DataDir: "/data"},
		Workers: Workers{Debounce: time.Second},
		Sync:    Sync{ConflictPolicy: ConflictPolicyAuto},
	})

	assert.Equal(t, "/data/reader.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Second, cfg.Workers.Debounce)
	assert.Equal(t, ConflictPolicyAuto, cfg.Sync.ConflictPolicy)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "realtime without key", mutate: func(c *ClientConfig) { c.Adapter.RealtimeURL = "ws://x" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero debounce", mutate: func(c *ClientConfig) { c.Workers.Debounce = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "bad policy", mutate: func(c *ClientConfig) { c.Sync.ConflictPolicy = "merge" }, wantErr: ErrInvalidSyncConfigs},
		{name: "valid", mutate: func(c *ClientConfig) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewClientConfig(&StructuredConfig{})
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_FromJSONPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.DataDir = t.TempDir()
	payload.Adapter.ProxyURL = "http://localhost:8080"
	path := writeTempJSONConfig(t, payload)

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ProxyURL)
	assert.Equal(t, filepath.Join(payload.App.DataDir, "reader.db"), cfg.Storage.DB.DSN)
}

// ── ValidateServer ───────────────────────────────────────────────────────────

func TestStructuredConfig_ValidateServer(t *testing.T) {
	assert.ErrorIs(t, (&StructuredConfig{}).ValidateServer(), ErrInvalidServerConfigs)
	assert.ErrorIs(t, (&StructuredConfig{Server: Server{RealtimeAddress: ":8090"}}).ValidateServer(), ErrInvalidAppConfigs)
	assert.NoError(t, (&StructuredConfig{Server: Server{HTTPAddress: ":8080"}}).ValidateServer())
}

func TestStructuredConfig_ApplyServerDefaults(t *testing.T) {
	cfg := &StructuredConfig{Server: Server{HTTPAddress: ":8080"}}
	cfg.applyServerDefaults()

	assert.Equal(t, DefaultServerRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultRateLimit, cfg.Server.RateLimit)

	cfg = &StructuredConfig{Server: Server{RateLimit: 5, RequestTimeout: time.Second}}
	cfg.applyServerDefaults()
	assert.Equal(t, 5, cfg.Server.RateLimit)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}
