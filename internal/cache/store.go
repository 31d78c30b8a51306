// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"time"
)

// Store is the persistence used by the fetcher. Implementations do whole
// value reads and writes; a Write replaces any existing value for the key.
type Store interface {
	// Exists reports whether a value is stored under key.
	Exists(key string) (bool, error)
	// Read returns the stored value, or ErrNotFound.
	Read(key string) ([]byte, error)
	// Write stores data under key, overwriting.
	Write(key string, data []byte) error
}

// Entry describes a stored value without its data.
type Entry struct {
	// Key is the encoded key, which is also the filename for disk stores.
	Key string
	// Name is the decoded key, i.e. the resource path relative to the prefix.
	Name    string
	Size    int64
	ModTime time.Time
}

// ErrNotFound is returned when reading a key that has no value.
var ErrNotFound = errors.New("cache entry not found")
