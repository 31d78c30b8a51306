// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/nejni-marji/pokeapi/internal/apiurl"
	"github.com/nejni-marji/pokeapi/internal/cache"
	"github.com/nejni-marji/pokeapi/internal/fetch"
	mylog "github.com/nejni-marji/pokeapi/internal/log"
	"github.com/nejni-marji/pokeapi/internal/meta"
	"github.com/nejni-marji/pokeapi/internal/output"
)

// GetCommandBuilder constructs the root command. The -v count lives on the
// builder so Before and Action see the parsed value.
type GetCommandBuilder struct {
	Meta      meta.Meta
	verbosity int
}

// Build returns a configured cli.Command from the builder.
func (b *GetCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      "pokeapi",
		Usage:     "fetch a PokeAPI resource, caching the response on disk",
		UsageText: "pokeapi [options] URL",
		ArgsUsage: "URL",
		Metadata: map[string]any{
			"meta": b.Meta,
		},
		Flags:                  NewFlags(b.Meta.Config.Source, &b.verbosity),
		UseShortOptionHandling: true,
		Writer:                 stdoutFor(b.Meta),
		ErrWriter:              os.Stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			mylog.SetVerbosity(b.verbosity)
			log.Debugf("verbosity: %d", b.verbosity)
			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, _ bool) error {
			return &UsageError{Err: err}
		},
		Action: b.action,
	}
}

func (b *GetCommandBuilder) action(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("args: %v", cmd.Args().Slice())

	if cmd.Bool("list") {
		return ListCommandAction(ctx, cmd)
	}

	switch cmd.Args().Len() {
	case 0:
		return &UsageError{Err: errors.New("missing URL argument")}
	case 1:
	default:
		return &UsageError{Err: fmt.Errorf("expected one URL, got %d arguments", cmd.Args().Len())}
	}

	mode, err := fetch.ParseMode(cmd.String("cache"))
	if err != nil {
		return &UsageError{Err: err}
	}

	url := apiurl.Normalize(cmd.Args().First(), m.Prefix)

	f := fetch.New(m.Prefix, storeFor(m), m.Getter)
	f.Compare = b.verbosity >= 2

	res, err := f.Resolve(ctx, url, mode)
	if err != nil {
		return err
	}

	body, err := output.Render(res.Body, cmd.String("output"), cmd.String("query"))
	if err != nil {
		return err
	}

	return fetch.Emit(stdoutFor(m), body, cmd.Bool("quiet"))
}

// ListCommandAction prints the cache listing. Color is used only when
// writing to a terminal.
func ListCommandAction(_ context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	lister, ok := storeFor(m).(interface {
		List() ([]cache.Entry, error)
	})
	if !ok {
		return errors.New("cache store does not support listing")
	}

	entries, err := lister.List()
	if err != nil {
		return err
	}
	log.Infof("%d cache entries", len(entries))

	w := stdoutFor(m)
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}

	output.ListWriter(w, entries, color)
	return nil
}
