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

package pacfiles

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"
)

// BatchSize is the default number of globs per search query, sized to stay
// well under common argument-count limits.
const BatchSize = 100

// firmwareDir is the recorded path prefix firmware files install under.
const firmwareDir = "usr/lib/firmware/"

// BatcherOption configures a Batcher.
type BatcherOption func(*Batcher)

// WithBatchSize overrides the number of globs per query.
func WithBatchSize(size int) BatcherOption {
	return func(b *Batcher) {
		if size > 0 {
			b.batchSize = size
		}
	}
}

// WithParallelism sets how many batch queries may run concurrently.
// Values below 2 keep the queries sequential.
func WithParallelism(n int) BatcherOption {
	return func(b *Batcher) {
		b.parallel = n
	}
}

// Batcher splits large firmware file sets into bounded search queries and
// unions the per-batch results.
type Batcher struct {
	searcher  Searcher
	batchSize int
	parallel  int
}

// NewBatcher creates a batcher over the given searcher.
func NewBatcher(s Searcher, opts ...BatcherOption) *Batcher {
	b := &Batcher{
		searcher:  s,
		batchSize: BatchSize,
		parallel:  1,
	}

	// Apply options
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SearchPackages returns the packages providing the given firmware files,
// deduplicated and sorted. Each file name is rewritten as a path-prefix
// glob under the firmware directory; queries are issued in batches and the
// result is the union of all batches. Batch order never affects the result.
func (b *Batcher) SearchPackages(ctx context.Context, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	globs := make([]string, 0, len(patterns))
	for _, p := range patterns {
		globs = append(globs, firmwareDir+p+"*")
	}

	batches := chunk(globs, b.batchSize)
	results := make([][]string, len(batches))

	if b.parallel > 1 && len(batches) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.parallel)
		for i, batch := range batches {
			g.Go(func() error {
				pkgs, err := b.searcher.Search(gctx, batch)
				if err != nil {
					return err
				}
				results[i] = pkgs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, batch := range batches {
			pkgs, err := b.searcher.Search(ctx, batch)
			if err != nil {
				return nil, err
			}
			results[i] = pkgs
		}
	}

	set := make(map[string]struct{})
	for _, pkgs := range results {
		for _, pkg := range pkgs {
			set[pkg] = struct{}{}
		}
	}

	packages := make([]string, 0, len(set))
	for pkg := range set {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	slog.Debug("searched firmware packages",
		"patterns", len(patterns),
		"batches", len(batches),
		"packages", len(packages))

	return packages, nil
}

// chunk splits items into slices of at most size elements.
func chunk(items []string, size int) [][]string {
	if size <= 0 {
		size = BatchSize
	}
	batches := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}
