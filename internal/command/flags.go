// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/nejni-marji/pokeapi/internal/fetch"
)

// NewFlags builds the flag set. cfgSource is the config file backing the
// defaults of cache, output and quiet; it may be empty.
func NewFlags(cfgSource string, verbosity *int) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			Aliases: []string{"c"},
			Usage:   "cache mode: auto, update or ignore",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("cache", altsrc.StringSourcer(cfgSource)),
			),
			Value: string(fetch.ModeAuto),
			Validator: func(value string) error {
				return FlagValidators(value, CacheModeValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "list",
			Aliases:     []string{"l"},
			Usage:       "list cached entries instead of fetching",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: raw, json or yaml",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("output", altsrc.StringSourcer(cfgSource)),
			),
			Value: "raw",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"Q"},
			Usage:   "gjson path selecting part of the body",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "do not print the body; caching still happens",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("quiet", altsrc.StringSourcer(cfgSource)),
			),
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "log more; repeat for more detail",
			HideDefault: true,
			Config:      cli.BoolConfig{Count: verbosity},
		},
	}
}
