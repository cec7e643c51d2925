// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Passos

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.BackupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.BackupInterval > 0 && cfg.Workers.BackupDir == "" {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
