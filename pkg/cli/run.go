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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/archtools/pacfw/pkg/hwid"
	"github.com/archtools/pacfw/pkg/kmod"
	"github.com/archtools/pacfw/pkg/pacfiles"
	"github.com/archtools/pacfw/pkg/resolver"
	"github.com/archtools/pacfw/pkg/serializer"
	ver "github.com/archtools/pacfw/pkg/version"
)

// run executes the resolution pipeline and writes the report.
func run(ctx context.Context, cmd *cli.Command, verbosity int) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	kernel := cmd.String("kernel")
	for _, warning := range kernelWarnings(kernel, "") {
		slog.Warn(warning)
	}

	// Advisory pre-flight: the file databases must exist and should be in
	// sync with each other. Missing databases abort; skew only warns.
	if !cmd.Bool("skip-db-check") {
		checker := &pacfiles.Checker{DBPath: cmd.String("db-path")}
		warnings, err := checker.Check()
		if err != nil {
			return err
		}
		for _, warning := range warnings {
			fmt.Fprintln(os.Stderr, "WARNING: "+warning)
		}
	}

	progress := newPrintProgress(os.Stdout, verbosity)

	res := &resolver.Resolver{
		Version:   version,
		Collector: &hwid.Collector{Root: cmd.String("device-root")},
		Prober:    kmod.NewExecProber(kernel),
		Searcher:  &pacfiles.ExecSearcher{},
		Progress:  progress,
	}

	rep, err := res.Run(ctx, resolver.Options{
		KernelVersion: kernel,
		SkipDeps:      cmd.Bool("no-deps"),
		Parallel:      int(cmd.Int("parallel")),
	})
	if err != nil {
		return err
	}

	output := cmd.String("output")

	// Separate the processing trace from the report when both share stdout.
	if progress.Printed() && output == "" {
		fmt.Println()
	}

	w := serializer.NewFileWriterOrStdout(outFormat, output)
	defer func() {
		if err := w.Close(); err != nil {
			slog.Error("failed to close report output", "error", err)
		}
	}()

	if err := w.Serialize(ctx, rep); err != nil {
		return err
	}

	if cmd.Bool("debug-metrics") {
		if err := resolver.DumpMetrics(os.Stderr); err != nil {
			slog.Error("failed to dump run metrics", "error", err)
		}
	}
	return nil
}

// kernelWarnings sanity-checks the kernel selection before the pipeline
// runs. All checks are advisory; the module tools report their own errors
// if the release is unusable. An empty modulesRoot means the default
// installed module tree location.
func kernelWarnings(kernel, modulesRoot string) []string {
	running := kernel == ""
	if running {
		release, err := kmod.KernelRelease()
		if err != nil {
			return nil
		}
		kernel = release
	}

	var warnings []string
	if !running {
		if _, err := ver.ParseVersion(kernel); err != nil {
			warnings = append(warnings,
				fmt.Sprintf("kernel %q does not parse as a kernel release: %v", kernel, err))
		}
	}
	if !kmod.HasModuleTree(modulesRoot, kernel) {
		msg := fmt.Sprintf("no module tree installed for kernel %s", kernel)
		if running {
			msg = fmt.Sprintf("module tree for the running kernel %s is gone, likely removed by a kernel upgrade", kernel)
			if newest, err := kmod.NewestInstalledRelease(modulesRoot); err == nil && newest != "" {
				msg += fmt.Sprintf("; newest installed is %s, a reboot may be due", newest)
			}
		} else if installed, err := kmod.InstalledReleases(modulesRoot); err == nil && len(installed) > 0 {
			msg += fmt.Sprintf(" (installed: %s)", strings.Join(installed, ", "))
		}
		warnings = append(warnings, msg)
	}
	return warnings
}
