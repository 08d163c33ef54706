// Copyright (c) 2026, pacfw authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/archtools/pacfw/pkg/hwid"
	"github.com/archtools/pacfw/pkg/logging"
	"github.com/archtools/pacfw/pkg/pacfiles"
	"github.com/archtools/pacfw/pkg/serializer"
)

const (
	name           = "pacfw"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
		Sources: cli.EnvVars("PACFW_OUTPUT"),
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatText),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Sources: cli.EnvVars("PACFW_FORMAT"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.LogLevelEnvVar),
	}
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cli.Command {
	verbosity := 0

	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 "Report the firmware packages required by the kernel modules in use",
		Description: fmt.Sprintf(`pacfw - firmware package requirement scanner

Version: %s
Commit:  %s
Built:   %s

Walks the device tree for bound drivers and modalias strings, resolves them
to kernel modules, expands the module dependency closure, and maps each
module's declared firmware files back to the packages providing them.

The final report lists one line per package:

  linux-firmware is required by iwlwifi, btusb

Use -v to trace modules and packages as they are processed, -vv to also
print raw firmware file names. The report itself can be written as text,
JSON, or YAML to stdout or a file.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print processing detail (repeat to also print firmware file names)",
				Config:  cli.BoolConfig{Count: &verbosity},
			},
			&cli.StringFlag{
				Name:    "kernel",
				Aliases: []string{"S"},
				Usage:   "Kernel release to resolve against (default: running kernel)",
				Sources: cli.EnvVars("PACFW_KERNEL"),
			},
			&cli.BoolFlag{
				Name:  "no-deps",
				Usage: "Map only directly resolved modules, skipping the dependency closure",
			},
			&cli.IntFlag{
				Name:    "parallel",
				Value:   1,
				Usage:   "Number of package search batches to run concurrently",
				Sources: cli.EnvVars("PACFW_PARALLEL"),
			},
			&cli.StringFlag{
				Name:   "device-root",
				Value:  hwid.DefaultDeviceRoot,
				Usage:  "Device record tree to scan",
				Hidden: true,
			},
			&cli.StringFlag{
				Name:   "db-path",
				Value:  pacfiles.DefaultDBPath,
				Usage:  "Package sync database directory",
				Hidden: true,
			},
			&cli.BoolFlag{
				Name:   "debug-metrics",
				Usage:  "Dump collected run metrics to stderr on exit",
				Hidden: true,
			},
			&cli.BoolFlag{
				Name:    "skip-db-check",
				Usage:   "Skip the package database freshness check",
				Hidden:  true,
				Sources: cli.EnvVars("PACFW_SKIP_DB_CHECK"),
			},
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, verbosity)
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before the pipeline runs.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}

// parseOutputFormat validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", format)
	}
	return format, nil
}
