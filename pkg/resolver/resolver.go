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

package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/archtools/pacfw/pkg/hwid"
	"github.com/archtools/pacfw/pkg/kmod"
	"github.com/archtools/pacfw/pkg/pacfiles"
	"github.com/archtools/pacfw/pkg/report"
)

// Collector discovers the raw hardware identifiers of the machine.
type Collector interface {
	Collect(ctx context.Context) (*hwid.Identifiers, error)
}

// Progress receives pipeline events as modules are processed. The resolver
// never prints; callers that want a processing trace implement this and
// decide what to show. All methods are called sequentially.
type Progress interface {
	// ModuleStart is called once per module before its firmware is queried.
	ModuleStart(module string)

	// FirmwareFound reports the firmware files a module declares, in
	// declaration order. Called even when the list is empty.
	FirmwareFound(module string, files []string)

	// PackageRequired reports one package found to provide firmware for a
	// module, in sorted package order.
	PackageRequired(module, pkg string)
}

type nopProgress struct{}

func (nopProgress) ModuleStart(string)             {}
func (nopProgress) FirmwareFound(string, []string) {}
func (nopProgress) PackageRequired(string, string) {}

// Options control a single resolution run.
type Options struct {
	// KernelVersion scopes the run to a specific kernel release. Empty
	// means the running kernel; it is then detected for the report header.
	KernelVersion string

	// SkipDeps skips the dependency closure and maps only the modules the
	// hardware identifiers resolve to directly.
	SkipDeps bool

	// Parallel is the number of package search batches allowed to run
	// concurrently. Values below 2 keep the searches sequential.
	Parallel int
}

// Resolver runs the firmware resolution pipeline: collect hardware
// identifiers, resolve them to modules, expand the dependency closure,
// enumerate per-module firmware, and map firmware files to the packages
// providing them. Nil fields fall back to the live-system implementations.
type Resolver struct {
	// Version is the tool version recorded in the report header.
	Version string

	// Collector discovers hardware identifiers. Nil means the live
	// device tree.
	Collector Collector

	// Prober answers module queries. Nil means the system module tools
	// scoped to Options.KernelVersion.
	Prober kmod.Prober

	// Searcher answers package file searches. Nil means the system
	// search tool.
	Searcher pacfiles.Searcher

	// Progress receives pipeline events. Nil means no trace.
	Progress Progress
}

// Run executes the pipeline once and returns the finished report. The run
// aborts on the first fatal error; a failed run produces no report.
func (r *Resolver) Run(ctx context.Context, opts Options) (*report.Report, error) {
	start := time.Now()
	defer func() {
		runDuration.Observe(time.Since(start).Seconds())
	}()

	rep, err := r.run(ctx, opts)
	if err != nil {
		runsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	runsTotal.WithLabelValues("success").Inc()
	return rep, nil
}

func (r *Resolver) run(ctx context.Context, opts Options) (*report.Report, error) {
	collector := r.Collector
	if collector == nil {
		collector = hwid.NewCollector()
	}
	nextProber := r.Prober
	if nextProber == nil {
		nextProber = kmod.NewExecProber(opts.KernelVersion)
	}
	prober := &instrumentedProber{next: nextProber}

	nextSearcher := r.Searcher
	if nextSearcher == nil {
		nextSearcher = &pacfiles.ExecSearcher{}
	}
	searcher := &instrumentedSearcher{next: nextSearcher}
	progress := r.Progress
	if progress == nil {
		progress = nopProgress{}
	}

	slog.Debug("starting firmware resolution", "kernel", opts.KernelVersion, "skipDeps", opts.SkipDeps)

	ids, err := timedStage("collect", func() (*hwid.Identifiers, error) {
		return collector.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect hardware identifiers: %w", err)
	}

	modules, err := timedStage("resolve", func() ([]string, error) {
		return kmod.Resolve(ctx, prober, ids.All())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identifiers to modules: %w", err)
	}

	if !opts.SkipDeps {
		modules, err = timedStage("closure", func() ([]string, error) {
			return kmod.Closure(ctx, prober, modules)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to expand module dependencies: %w", err)
		}
	}

	slog.Debug("modules in play", "count", len(modules))

	batcher := pacfiles.NewBatcher(searcher, pacfiles.WithParallelism(opts.Parallel))
	builder := report.NewBuilder()

	mapStart := time.Now()
	for _, module := range modules {
		progress.ModuleStart(module)

		files, err := prober.Firmware(ctx, module)
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate firmware for module %q: %w", module, err)
		}
		progress.FirmwareFound(module, files)
		if len(files) == 0 {
			continue
		}

		packages, err := batcher.SearchPackages(ctx, files)
		if err != nil {
			return nil, fmt.Errorf("failed to search packages for module %q: %w", module, err)
		}
		for _, pkg := range packages {
			progress.PackageRequired(module, pkg)
		}
		builder.Add(module, packages)
	}
	stageDuration.WithLabelValues("map").Observe(time.Since(mapStart).Seconds())

	kernel := opts.KernelVersion
	if kernel == "" {
		if release, err := kmod.KernelRelease(); err == nil {
			kernel = release
		}
	}

	rep := builder.Build(r.Version, kernel)
	packagesFound.Set(float64(len(rep.Entries)))

	slog.Debug("resolution complete",
		"modules", len(modules),
		"packages", len(rep.Entries))

	return rep, nil
}

// timedStage observes one pipeline stage's duration.
func timedStage[T any](stage string, fn func() (T, error)) (T, error) {
	start := time.Now()
	defer func() {
		stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	}()
	return fn()
}
