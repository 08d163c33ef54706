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
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/archtools/pacfw/pkg/kmod"
	"github.com/archtools/pacfw/pkg/pacfiles"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pacfw_run_duration_seconds",
			Help:    "Time taken by a complete firmware resolution run",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacfw_runs_total",
			Help: "Total number of firmware resolution runs",
		},
		[]string{"status"}, // success or error
	)

	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pacfw_stage_duration_seconds",
			Help:    "Time taken by individual pipeline stages",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"stage"}, // collect, resolve, closure, map
	)

	externalQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pacfw_external_queries_total",
			Help: "Total number of external tool queries issued",
		},
		[]string{"query"}, // alias, depends, firmware, search
	)

	packagesFound = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pacfw_packages_found",
			Help: "Number of packages in the last completed report",
		},
	)
)

// DumpMetrics writes every registered metric in the Prometheus text
// exposition format. A one-shot run has no scrape endpoint, so this is the
// only way to inspect the collected observations.
func DumpMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}

// instrumentedProber counts external module queries on their way to the
// real prober.
type instrumentedProber struct {
	next kmod.Prober
}

func (p *instrumentedProber) ResolveAliases(ctx context.Context, identifiers []string) ([]string, error) {
	externalQueries.WithLabelValues("alias").Inc()
	return p.next.ResolveAliases(ctx, identifiers)
}

func (p *instrumentedProber) Depends(ctx context.Context, module string) ([]string, error) {
	externalQueries.WithLabelValues("depends").Inc()
	return p.next.Depends(ctx, module)
}

func (p *instrumentedProber) Firmware(ctx context.Context, module string) ([]string, error) {
	externalQueries.WithLabelValues("firmware").Inc()
	return p.next.Firmware(ctx, module)
}

// instrumentedSearcher counts package search queries on their way to the
// real searcher.
type instrumentedSearcher struct {
	next pacfiles.Searcher
}

func (s *instrumentedSearcher) Search(ctx context.Context, globs []string) ([]string, error) {
	externalQueries.WithLabelValues("search").Inc()
	return s.next.Search(ctx, globs)
}
