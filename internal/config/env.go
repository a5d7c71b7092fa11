// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills the `env` tagged fields of cfg. Unset variables leave
// their fields zero, so the merge keeps the file and flag values for them.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("read environment overrides: %w", err)
	}
	return nil
}
