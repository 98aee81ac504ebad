// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the keepno
// client binaries. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the keepno server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Poller holds the export task polling settings.
	Poller Poller `envPrefix:"POLLER_"`

	// Export holds the parameters of the headless export command.
	Export Export `envPrefix:"EXPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local client state store.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// SessionCookie is the value of the keepno server session cookie. When
	// empty, the client restores the last saved session from local storage.
	// Env: APP_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`

	// LogFile is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:keepno.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound keepno REST client.
type Adapter struct {
	// HTTPAddress is the keepno server address, either "host:port" or a full
	// base URL (e.g. "https://notes.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Poller holds settings of the asynchronous task progress poller.
type Poller struct {
	// Interval is the pause between two status fetches of a running task.
	// Env: POLLER_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxAttempts caps the number of status fetches of one task.
	// Env: POLLER_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// Export holds the parameters of the headless export command.
type Export struct {
	// NoteID is the id of the note to export.
	// Env: EXPORT_NOTE_ID
	NoteID int64 `env:"NOTE_ID"`

	// Format is the export format understood by the server (e.g. "pdf").
	// Env: EXPORT_FORMAT
	Format string `env:"FORMAT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
