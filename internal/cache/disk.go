// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/apex/log"
)

// DiskStore keeps one file per key directly beneath Dir. Writes are plain
// whole-file overwrites with no locking.
type DiskStore struct {
	Dir string
}

// NewDiskStore returns a store rooted at dir. The directory is expected to
// exist already.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir}
}

// Path returns the file backing key.
func (d *DiskStore) Path(key string) string {
	return filepath.Join(d.Dir, key)
}

// Exists reports whether a regular file is stored for key. A directory at
// that path does not count.
func (d *DiskStore) Exists(key string) (bool, error) {
	info, err := os.Stat(d.Path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat cache entry: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Read returns the file contents for key.
func (d *DiskStore) Read(key string) ([]byte, error) {
	p := d.Path(key)
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read from cache: %w", err)
	}
	log.Debugf("read cache file %s", p)
	return b, nil
}

// Write replaces the file for key with data.
func (d *DiskStore) Write(key string, data []byte) error {
	p := d.Path(key)
	if err := os.WriteFile(p, data, os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("wrote cache file %s", p)
	return nil
}

// List returns every entry in the store sorted by decoded name. Files whose
// names are not valid keys are skipped.
func (d *DiskStore) List() ([]Entry, error) {
	dirents, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if !de.Type().IsRegular() {
			continue
		}
		name, err := DecodeKey(de.Name())
		if err != nil {
			log.WithError(err).Warnf("skipping cache file %s", de.Name())
			continue
		}
		info, err := de.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		entries = append(entries, Entry{
			Key:     de.Name(),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
