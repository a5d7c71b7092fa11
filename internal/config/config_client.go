package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Default values applied to the client view when a source leaves them unset.
const (
	DefaultDataDir         = ".reader-sync"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDocumentDB      = "reader_sync"
	DefaultBreakerFailures = 3
	DefaultBreakerTimeout  = time.Minute
	DefaultSyncInterval    = 5 * time.Minute
	DefaultDebounce        = 2 * time.Second
	DefaultMinPushInterval = 30 * time.Second
	DefaultBackupInterval  = 30 * time.Minute
	DefaultSuccessWindow   = 2 * time.Second
	DefaultErrorWindow     = 3 * time.Second
	DefaultMaxPayloadBytes = 900_000
	DefaultTokenIssuer     = "reader-sync"
	DefaultTokenDuration   = 24 * time.Hour
	defaultDBFileName      = "reader.db"
	defaultSettingsDirName = "settings"
	defaultClientLogName   = "reader-sync.log"
)

// DefaultAdapterOrder is the backend priority used when none is configured.
var DefaultAdapterOrder = []string{"realtime", "document", "proxy"}

// ClientApp holds client-side application settings.
type ClientApp struct {
	DataDir       string
	LogFile       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// ClientAdapter holds the remote backend endpoints used by the client.
type ClientAdapter struct {
	ProxyURL        string
	DocumentURL     string
	DocumentDB      string
	RealtimeURL     string
	RequestTimeout  time.Duration
	Order           []string
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SettingsDir is the settings mirror directory.
	SettingsDir string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	SyncInterval    time.Duration
	Debounce        time.Duration
	MinPushInterval time.Duration
	BackupInterval  time.Duration
}

// ClientSync contains the orchestrator policy.
type ClientSync struct {
	ConflictPolicy  string
	LiveApply       bool
	SuccessWindow   time.Duration
	ErrorWindow     time.Duration
	MaxPayloadBytes int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig builds and validates a client-specific config view.
//
// Sources are a .env file, the environment and the JSON file at jsonPath
// (or CONFIG). Command-line flags belong to the CLI and are not parsed here.
// Unset values are filled with the package defaults.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withJSONPath(jsonPath).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg and applies
// defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			DataDir:       cfg.App.DataDir,
			LogFile:       cfg.App.LogFile,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ProxyURL:        cfg.Adapter.ProxyURL,
			DocumentURL:     cfg.Adapter.DocumentURL,
			DocumentDB:      cfg.Adapter.DocumentDB,
			RealtimeURL:     cfg.Adapter.RealtimeURL,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			Order:           cfg.Adapter.Order,
			BreakerFailures: cfg.Adapter.BreakerFailures,
			BreakerTimeout:  cfg.Adapter.BreakerTimeout,
		},
		Storage: ClientStorage{
			DB:          ClientDB{DSN: cfg.Storage.DB.DSN},
			SettingsDir: cfg.Storage.Settings.Dir,
		},
		Workers: ClientWorkers{
			SyncInterval:    cfg.Workers.SyncInterval,
			Debounce:        cfg.Workers.Debounce,
			MinPushInterval: cfg.Workers.MinPushInterval,
			BackupInterval:  cfg.Workers.BackupInterval,
		},
		Sync: ClientSync{
			ConflictPolicy:  cfg.Sync.ConflictPolicy,
			LiveApply:       cfg.Sync.LiveApply,
			SuccessWindow:   cfg.Sync.SuccessWindow,
			ErrorWindow:     cfg.Sync.ErrorWindow,
			MaxPayloadBytes: cfg.Sync.MaxPayloadBytes,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = DefaultDataDir
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = filepath.Join(cfg.App.DataDir, defaultClientLogName)
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.App.DataDir, defaultDBFileName)
	}
	if cfg.Storage.SettingsDir == "" {
		cfg.Storage.SettingsDir = filepath.Join(cfg.App.DataDir, defaultSettingsDirName)
	}

	setDuration(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)
	setDuration(&cfg.Adapter.BreakerTimeout, DefaultBreakerTimeout)
	if cfg.Adapter.DocumentDB == "" {
		cfg.Adapter.DocumentDB = DefaultDocumentDB
	}
	if len(cfg.Adapter.Order) == 0 {
		cfg.Adapter.Order = append([]string(nil), DefaultAdapterOrder...)
	}
	if cfg.Adapter.BreakerFailures == 0 {
		cfg.Adapter.BreakerFailures = DefaultBreakerFailures
	}

	setDuration(&cfg.Workers.SyncInterval, DefaultSyncInterval)
	setDuration(&cfg.Workers.Debounce, DefaultDebounce)
	setDuration(&cfg.Workers.MinPushInterval, DefaultMinPushInterval)
	setDuration(&cfg.Workers.BackupInterval, DefaultBackupInterval)

	if cfg.Sync.ConflictPolicy == "" {
		cfg.Sync.ConflictPolicy = ConflictPolicyConfirm
	}
	setDuration(&cfg.Sync.SuccessWindow, DefaultSuccessWindow)
	setDuration(&cfg.Sync.ErrorWindow, DefaultErrorWindow)
	if cfg.Sync.MaxPayloadBytes == 0 {
		cfg.Sync.MaxPayloadBytes = DefaultMaxPayloadBytes
	}
}

func setDuration(d *time.Duration, def time.Duration) {
	if *d <= 0 {
		*d = def
	}
}
