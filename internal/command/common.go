// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/nejni-marji/pokeapi/internal/cache"
	"github.com/nejni-marji/pokeapi/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// storeFor returns the injected store, or the disk store under CacheDir.
func storeFor(m meta.Meta) cache.Store {
	if m.Store != nil {
		return m.Store
	}
	return cache.NewDiskStore(m.CacheDir)
}

// stdoutFor returns the writer bodies and listings go to.
func stdoutFor(m meta.Meta) io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}
