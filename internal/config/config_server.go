package config

import (
	"fmt"
	"time"
)

// Server defaults.
const (
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultRateLimit            = 120
)

// GetServerConfig loads the server configuration (see [GetStructuredConfig]),
// fills unset values with defaults and validates it with
// [StructuredConfig.ValidateServer].
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	cfg.applyServerDefaults()
	return cfg, cfg.ValidateServer()
}

func (cfg *StructuredConfig) applyServerDefaults() {
	setDuration(&cfg.Server.RequestTimeout, DefaultServerRequestTimeout)
	setDuration(&cfg.App.TokenDuration, DefaultTokenDuration)
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = DefaultRateLimit
	}
}
