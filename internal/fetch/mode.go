// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import "fmt"

// Mode selects when the network is consulted and when the cache is used.
type Mode string

const (
	// ModeAuto reuses a cached body if one exists, otherwise fetches and
	// stores it.
	ModeAuto Mode = "auto"
	// ModeUpdate always fetches and overwrites the cached body.
	ModeUpdate Mode = "update"
	// ModeIgnore always fetches and never touches the cache.
	ModeIgnore Mode = "ignore"
)

// Modes lists the valid modes in the order shown to users.
var Modes = []Mode{ModeAuto, ModeUpdate, ModeIgnore}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("cache mode must be one of %v, got %q", Modes, s)
}
