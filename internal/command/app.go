// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/nejni-marji/pokeapi/internal/apiurl"
	"github.com/nejni-marji/pokeapi/internal/config"
	"github.com/nejni-marji/pokeapi/internal/meta"
)

// InitApp builds the CLI for a real run: the fixed API prefix, the disk cache
// under cacheDir, and flag defaults from the config file if there is one.
func InitApp(ctx context.Context, args []string, cacheDir string) (*cli.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config: %v", err)
	}

	m := meta.Meta{
		Args:     args,
		Config:   cfg,
		Context:  ctx,
		Prefix:   apiurl.DefaultPrefix,
		CacheDir: cacheDir,
	}

	return NewApp(m), nil
}

// NewApp builds the CLI around m.
func NewApp(m meta.Meta) *cli.Command {
	return (&GetCommandBuilder{Meta: m}).Build()
}
