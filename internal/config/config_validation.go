// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strings"
)

// knownAdapters are the backend names accepted in [Adapter.Order].
var knownAdapters = []string{"realtime", "document", "proxy"}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	for _, name := range cfg.Adapter.Order {
		if !slices.Contains(knownAdapters, name) {
			return ErrInvalidAdapterConfigs
		}
	}

	if p := cfg.Sync.ConflictPolicy; p != "" && p != ConflictPolicyConfirm && p != ConflictPolicyAuto {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.SettingsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RealtimeURL != "" && cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.Debounce <= 0 || cfg.Workers.MinPushInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.ConflictPolicy != ConflictPolicyConfirm && cfg.Sync.ConflictPolicy != ConflictPolicyAuto {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.MaxPayloadBytes <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

// ValidateServer checks the configuration of the server binary: at least
// one listener must be set, and the realtime listener needs a token key.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.RealtimeAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RealtimeAddress != "" && cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
