package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": {"data_dir": "/data", "token_sign_key": "k", "token_duration": "2h"},
		"storage": {
			"db": {"dsn": "/data/reader.db"},
			"settings": {"dir": "/data/settings"},
			"kv": {"path": "/data/kv", "in_memory": true}
		},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s", "rate_limit": 60},
		"adapter": {"proxy_url": "http://localhost:8080", "order": ["proxy"], "breaker_timeout": "45s"},
		"workers": {"sync_interval": "1m", "debounce": "500ms"},
		"sync": {"conflict_policy": "auto", "success_window": "1s", "max_payload_bytes": 1000}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.App.DataDir)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/data/reader.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/settings", cfg.Storage.Settings.Dir)
	assert.True(t, cfg.Storage.KV.InMemory)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 60, cfg.Server.RateLimit)
	assert.Equal(t, []string{"proxy"}, cfg.Adapter.Order)
	assert.Equal(t, 45*time.Second, cfg.Adapter.BreakerTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.Debounce)
	assert.Equal(t, ConflictPolicyAuto, cfg.Sync.ConflictPolicy)
	assert.Equal(t, time.Second, cfg.Sync.SuccessWindow)
	assert.Equal(t, 1000, cfg.Sync.MaxPayloadBytes)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"1m30s"`, want: 90 * time.Second},
		{name: "number of nanoseconds", in: `1000`, want: time.Microsecond},
		{name: "bad string", in: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(2 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(b))
}
