// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"

	"github.com/nejni-marji/pokeapi/internal/cacheutil"
	"github.com/nejni-marji/pokeapi/internal/fetch"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitFailure        = 1 // network, filesystem and other runtime errors
	ExitUsage          = 2
	ExitPrefixMismatch = 3
	ExitCacheDir       = 4
)

// UsageError wraps a problem with the command line itself.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by the command to a process exit code.
func ExitCode(err error) int {
	var (
		ue *UsageError
		pe *fetch.PrefixError
		de *cacheutil.DirError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &pe):
		return ExitPrefixMismatch
	case errors.As(err, &de):
		return ExitCacheDir
	case errors.As(err, &ue):
		return ExitUsage
	default:
		return ExitFailure
	}
}
