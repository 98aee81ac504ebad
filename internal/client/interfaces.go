// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error

	// Close releases local resources.
	Close() error
}

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}
