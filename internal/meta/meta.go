// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"io"

	"github.com/nejni-marji/pokeapi/internal/cache"
	"github.com/nejni-marji/pokeapi/internal/config"
	"github.com/nejni-marji/pokeapi/internal/fetch"
)

// Meta carries what the command needs beyond its flags. Zero-valued Store,
// Getter and Stdout are filled with the disk store under CacheDir, an HTTP
// getter and os.Stdout respectively.
type Meta struct {
	Args     []string
	Config   config.Type
	Context  context.Context
	Prefix   string
	CacheDir string
	Store    cache.Store
	Getter   fetch.Getter
	Stdout   io.Writer
}
