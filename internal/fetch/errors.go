// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import "fmt"

// PrefixError is returned when a URL is outside the configured prefix.
type PrefixError struct {
	URL    string
	Prefix string
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("invalid URL for caching: %q does not start with %q", e.URL, e.Prefix)
}

// StatusError is returned for any response outside 2xx.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}
