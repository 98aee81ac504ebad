// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] does not carry
// values that no later stage could repair.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Poller.Interval < 0 || cfg.Poller.MaxAttempts < 0 {
		return ErrNegativeValue
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Poller.Interval <= 0 || cfg.Poller.MaxAttempts <= 0 {
		return ErrInvalidPollerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validateExport() error {
	if cfg.Export.NoteID <= 0 || cfg.Export.Format == "" {
		return ErrInvalidExportConfigs
	}

	return nil
}
