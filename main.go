// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/nejni-marji/pokeapi/internal/cacheutil"
	"github.com/nejni-marji/pokeapi/internal/command"
	mylog "github.com/nejni-marji/pokeapi/internal/log"
	"github.com/nejni-marji/pokeapi/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	// Short-circuit --version. -v is verbosity, so only the long form.
	for _, a := range args[1:] {
		if a == "--version" {
			fmt.Println(version.Version)
			return command.ExitOK
		}
	}

	// The cache directory is created up front, whatever the mode. Failing to
	// create it is fatal.
	cacheDir, err := cacheutil.EnsureBaseDir()
	if err != nil {
		log.WithError(err).Error("unable to create cache, terminating")
		return command.ExitCacheDir
	}

	app, err := command.InitApp(ctx, args, cacheDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return command.ExitUsage
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return command.ExitCode(err)
	}

	return command.ExitOK
}
