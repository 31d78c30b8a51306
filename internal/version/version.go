// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, set with
// -ldflags "-X github.com/nejni-marji/pokeapi/internal/version.Version=...".
package version

var Version = "dev"
