// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the keepno client process lifecycle.
//
// [App] wires the local store, the REST adapter, the services and the
// terminal UI, restores the session and runs the UI together with the
// background workers. [Exporter] drives the same services without a UI for
// the headless export command.
package client
