// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo returns build info with "N/A" in place of empty values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orNA := func(v string) string {
		if v == "" {
			return unknownBuildValue
		}
		return v
	}
	return AppBuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// String renders the three lines printed at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}
