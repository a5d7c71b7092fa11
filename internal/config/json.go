package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		DataDir       string   `json:"data_dir"`
		LogFile       string   `json:"log_file"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Settings struct {
			Dir string `json:"dir"`
		} `json:"settings,omitempty"`

		KV struct {
			Path     string `json:"path"`
			InMemory bool   `json:"in_memory"`
		} `json:"kv,omitempty"`

		Realtime struct {
			Path     string `json:"path"`
			InMemory bool   `json:"in_memory"`
		} `json:"realtime,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RealtimeAddress string   `json:"realtime_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		RateLimit       int      `json:"rate_limit"`
	} `json:"server,omitempty"`

	Adapter struct {
		ProxyURL        string   `json:"proxy_url"`
		DocumentURL     string   `json:"document_url"`
		DocumentDB      string   `json:"document_db"`
		RealtimeURL     string   `json:"realtime_url"`
		RequestTimeout  Duration `json:"request_timeout"`
		Order           []string `json:"order"`
		BreakerFailures uint32   `json:"breaker_failures"`
		BreakerTimeout  Duration `json:"breaker_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		Debounce        Duration `json:"debounce"`
		MinPushInterval Duration `json:"min_push_interval"`
		BackupInterval  Duration `json:"backup_interval"`
	} `json:"workers,omitempty"`

	Sync struct {
		ConflictPolicy  string   `json:"conflict_policy"`
		LiveApply       bool     `json:"live_apply"`
		SuccessWindow   Duration `json:"success_window"`
		ErrorWindow     Duration `json:"error_window"`
		MaxPayloadBytes int      `json:"max_payload_bytes"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DataDir:       jsonCfg.App.DataDir,
			LogFile:       jsonCfg.App.LogFile,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
			Settings: Settings{Dir: jsonCfg.Storage.Settings.Dir},
			KV: KV{
				Path:     jsonCfg.Storage.KV.Path,
				InMemory: jsonCfg.Storage.KV.InMemory,
			},
			Realtime: Realtime{
				Path:     jsonCfg.Storage.Realtime.Path,
				InMemory: jsonCfg.Storage.Realtime.InMemory,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RealtimeAddress: jsonCfg.Server.RealtimeAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:       jsonCfg.Server.RateLimit,
		},
		Adapter: Adapter{
			ProxyURL:        jsonCfg.Adapter.ProxyURL,
			DocumentURL:     jsonCfg.Adapter.DocumentURL,
			DocumentDB:      jsonCfg.Adapter.DocumentDB,
			RealtimeURL:     jsonCfg.Adapter.RealtimeURL,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			Order:           jsonCfg.Adapter.Order,
			BreakerFailures: jsonCfg.Adapter.BreakerFailures,
			BreakerTimeout:  time.Duration(jsonCfg.Adapter.BreakerTimeout),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			Debounce:        time.Duration(jsonCfg.Workers.Debounce),
			MinPushInterval: time.Duration(jsonCfg.Workers.MinPushInterval),
			BackupInterval:  time.Duration(jsonCfg.Workers.BackupInterval),
		},
		Sync: Sync{
			ConflictPolicy:  jsonCfg.Sync.ConflictPolicy,
			LiveApply:       jsonCfg.Sync.LiveApply,
			SuccessWindow:   time.Duration(jsonCfg.Sync.SuccessWindow),
			ErrorWindow:     time.Duration(jsonCfg.Sync.ErrorWindow),
			MaxPayloadBytes: jsonCfg.Sync.MaxPayloadBytes,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
