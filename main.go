// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"filecopy/internal/config"
	"filecopy/internal/pkg/global"
	"filecopy/internal/relay"
	"filecopy/internal/version"
)

func main() {
	if global.IsLinux {
		if _, err := maxprocs.Set(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "Failed to set GOMAXPROCS automatically.")
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole command, it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := newFlagSet(stderr)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		errLine(stderr, err)
		return 1
	}

	v := viper.New()
	lo.Must0(v.BindPFlags(flags), "failed to bind flags")

	if v.GetBool("version") {
		_, _ = fmt.Fprintln(stdout, version.Print())
		return 0
	}

	cfg, err := config.Load(v)
	if err != nil {
		errLine(stderr, err)
		return 1
	}

	setupLogger(cfg, stderr)

	paths := flags.Args()
	if len(paths) != 2 {
		_, _ = fmt.Fprintln(stdout, relay.ErrUsage.Error())
		return relay.UsageError.ExitCode()
	}

	_, err = relay.New(paths[0], paths[1], relay.WithOutput(stdout), relay.WithLogger(log.Logger)).
		Run(context.Background())
	if err != nil {
		log.Debug().Err(err).Stringer("status", relay.StatusOf(err)).Msg("copy failed")
		errLine(stderr, err)
	}

	return relay.StatusOf(err).ExitCode()
}

func newFlagSet(output io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("filecopy", pflag.ContinueOnError)
	flags.SetOutput(output)

	flags.String("log-level", "error", "log level, one of trace/debug/info/warn/error")
	flags.Bool("log-json", false, "log as json format")
	flags.Bool("version", false, "print version information and exit")

	flags.Usage = func() {
		_, _ = fmt.Fprintln(output, "Usage: filecopy [flags] <src> <dst>")
		flags.PrintDefaults()
	}

	return flags
}

func setupLogger(cfg config.Config, w io.Writer) {
	if !cfg.LogJSON {
		w = zerolog.ConsoleWriter{Out: w}
	}

	log.Logger = log.Output(w).Level(cfg.Level())
}

func errLine(w io.Writer, err error) {
	_, _ = color.New(color.FgRed).Fprintln(w, err.Error())
}
