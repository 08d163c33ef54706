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

// Package hwid discovers the hardware identifiers of the running machine
// by walking the kernel's device records and extracting bound driver names
// and modalias strings.
package hwid

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
)

// DefaultDeviceRoot is where the kernel exposes device records.
const DefaultDeviceRoot = "/sys/devices"

const ueventFileName = "uevent"

// uevent keys carrying hardware identification.
const (
	keyDriver   = "DRIVER"
	keyModalias = "MODALIAS"
)

// Identifiers holds the hardware identifiers discovered on a machine.
// Both lists are deduplicated and sorted; drivers order before aliases
// so repeated runs produce stable output.
type Identifiers struct {
	Drivers []string `json:"drivers" yaml:"drivers"`
	Aliases []string `json:"aliases" yaml:"aliases"`
}

// All returns drivers followed by aliases as a single sequence.
func (i *Identifiers) All() []string {
	all := make([]string, 0, len(i.Drivers)+len(i.Aliases))
	all = append(all, i.Drivers...)
	all = append(all, i.Aliases...)
	return all
}

// Count returns the total number of identifiers.
func (i *Identifiers) Count() int {
	return len(i.Drivers) + len(i.Aliases)
}

// Collector walks a device record tree and extracts hardware identifiers
// from uevent files.
type Collector struct {
	// Root of the device tree. Empty means DefaultDeviceRoot.
	Root string
}

// NewCollector creates a collector rooted at the live device tree.
func NewCollector() *Collector {
	return &Collector{Root: DefaultDeviceRoot}
}

// Collect walks the device tree once and returns the identifiers found.
// Unreadable records and malformed lines are skipped; only context
// cancellation aborts the walk.
func (c *Collector) Collect(ctx context.Context) (*Identifiers, error) {
	// Check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := c.Root
	if root == "" {
		root = DefaultDeviceRoot
	}

	parser := NewUeventParser(WithKeys(keyDriver, keyModalias))

	drivers := make(map[string]struct{})
	aliases := make(map[string]struct{})

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("skipping unreadable device record", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || d.Name() != ueventFileName {
			return nil
		}

		values, err := parser.GetMap(path)
		if err != nil {
			slog.Debug("skipping unparsable uevent record", "path", path, "error", err)
			return nil
		}
		if v, ok := values[keyDriver]; ok {
			drivers[v] = struct{}{}
		}
		if v, ok := values[keyModalias]; ok {
			aliases[v] = struct{}{}
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	res := &Identifiers{
		Drivers: sortedKeys(drivers),
		Aliases: sortedKeys(aliases),
	}

	slog.Debug("collected hardware identifiers",
		"root", root,
		"drivers", len(res.Drivers),
		"aliases", len(res.Aliases))

	return res, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
