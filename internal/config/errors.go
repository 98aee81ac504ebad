package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPollerConfigs indicates a non-positive poll interval or
	// attempt ceiling.
	ErrInvalidPollerConfigs = errors.New("invalid poller configuration")
	// ErrInvalidExportConfigs indicates a missing note id or format for the
	// export command.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrNegativeValue indicates a negative duration or counter.
	ErrNegativeValue = errors.New("negative configuration value")
)
