// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package apiurl

import (
	"strings"

	"github.com/apex/log"
)

// DefaultPrefix is the base URL of the API. It must end with a slash.
const DefaultPrefix = "https://pokeapi.co/api/v2/"

// Normalize expands raw into an absolute URL beneath prefix. Input that does
// not already start with prefix is treated as a path relative to it. A single
// trailing slash is dropped, except from the bare prefix, which always keeps
// its slash.
func Normalize(raw string, prefix string) string {
	u := raw
	if !strings.HasPrefix(u, prefix) {
		log.Debug("url does not start with prefix")
		u = prefix + u
	}

	if u != prefix && strings.HasSuffix(u, "/") {
		log.Debug("url is not prefix and ends with /")
		u = u[:len(u)-1]
	}

	if u == prefix && !strings.HasSuffix(u, "/") {
		u += "/"
	}

	return u
}
