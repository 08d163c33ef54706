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

// Package kmod resolves hardware identifiers to kernel modules and expands
// module dependency closures using the system module database.
package kmod

import (
	"context"
	"log/slog"
	"sort"
)

// Prober answers kernel module queries. The production implementation
// shells out to the module tools; tests substitute fakes.
// This interface enables dependency injection for testing.
type Prober interface {
	// ResolveAliases maps driver names and modalias strings to concrete
	// module names. The returned lines are raw query output; callers
	// deduplicate and sort. A query where no alias resolves returns an
	// empty result, not an error.
	ResolveAliases(ctx context.Context, identifiers []string) ([]string, error)

	// Depends returns the direct dependencies of a module as reported by
	// the module database. Entries are returned verbatim and may be empty
	// strings. Failure for a known module name is a hard error.
	Depends(ctx context.Context, module string) ([]string, error)

	// Firmware returns the firmware files a module declares, in
	// declaration order. Failure for a known module name is a hard error.
	Firmware(ctx context.Context, module string) ([]string, error)
}

// Resolve maps raw hardware identifiers to concrete module names,
// deduplicated and lexicographically sorted. Identifiers that resolve to
// nothing contribute nothing; an empty identifier list resolves to nil
// without querying.
func Resolve(ctx context.Context, p Prober, identifiers []string) ([]string, error) {
	if len(identifiers) == 0 {
		return nil, nil
	}

	lines, err := p.ResolveAliases(ctx, identifiers)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if line != "" {
			set[line] = struct{}{}
		}
	}

	modules := sortedSet(set)
	slog.Debug("resolved identifiers to modules",
		"identifiers", len(identifiers),
		"modules", len(modules))
	return modules, nil
}

// Closure expands a seed of module names to the full transitive dependency
// set and returns it sorted. Each distinct module's dependencies are
// queried exactly once; modules already resolved are skipped, which
// guarantees termination on cyclic or diamond-shaped dependency graphs.
// Empty entries in a depends response are discarded before traversal.
func Closure(ctx context.Context, p Prober, seed []string) ([]string, error) {
	resolved := make(map[string]struct{}, len(seed))
	worklist := make([]string, len(seed))
	copy(worklist, seed)

	for len(worklist) > 0 {
		mod := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if mod == "" {
			continue
		}
		if _, ok := resolved[mod]; ok {
			continue
		}

		deps, err := p.Depends(ctx, mod)
		if err != nil {
			return nil, err
		}

		worklist = append(worklist, deps...)
		resolved[mod] = struct{}{}
	}

	modules := sortedSet(resolved)
	slog.Debug("expanded dependency closure",
		"seed", len(seed),
		"closure", len(modules))
	return modules, nil
}

func sortedSet(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
