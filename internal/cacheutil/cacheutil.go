// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// Name is the subdirectory of the user cache directory holding all entries.
const Name = "pokeapi"

// DirError reports that the cache directory could not be resolved or
// created. It is always fatal.
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to resolve cache directory: %v", e.Err)
	}
	return fmt.Sprintf("failed to create cache directory %s: %v", e.Path, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }

// userCacheDir is swapped in tests.
var userCacheDir = os.UserCacheDir

// Dir resolves the cache directory, os.UserCacheDir()/pokeapi.
func Dir() (string, error) {
	base, err := userCacheDir()
	if err != nil {
		return "", &DirError{Err: err}
	}
	if base == "" {
		return "", &DirError{Err: errors.New("empty user cache directory")}
	}
	return filepath.Join(base, Name), nil
}

// EnsureBaseDir resolves the cache directory and creates it if needed. Any
// outcome other than an existing directory at the path is returned as a
// *DirError.
func EnsureBaseDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return dir, EnsureDir(dir)
}

// EnsureDir creates dir and its parents. An existing non-directory at dir is
// an error.
func EnsureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return nil
		}
		return &DirError{Path: dir, Err: errors.New("exists and is not a directory")}
	}

	log.Infof("creating cache directory %s", dir)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return &DirError{Path: dir, Err: err}
	}
	return nil
}
