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

// Package report aggregates the module to firmware-package mapping into an
// ordered report and renders it.
package report

import (
	"fmt"
	"io"
	"strings"
)

// Entry maps one package to the modules that require it. Modules appear in
// the order they were first discovered, each at most once.
type Entry struct {
	Package string   `json:"package" yaml:"package"`
	Modules []string `json:"modules" yaml:"modules"`
}

// Report is the final result of a resolution run. Entries preserve the
// order packages were first discovered in.
type Report struct {
	Header  `yaml:",inline"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// WriteText renders the report as one line per package.
func (r *Report) WriteText(w io.Writer) error {
	for _, e := range r.Entries {
		if _, err := fmt.Fprintf(w, "%s is required by %s\n",
			e.Package, strings.Join(e.Modules, ", ")); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// Builder accumulates per-module package findings into an ordered report.
// It is not safe for concurrent use; the pipeline is sequential.
type Builder struct {
	order   []string
	modules map[string][]string
	seen    map[string]map[string]struct{}
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		modules: make(map[string][]string),
		seen:    make(map[string]map[string]struct{}),
	}
}

// Add records that module requires each of the given packages. A package
// not seen before is appended to the report order; a (package, module)
// pair already recorded is ignored, so a module declaring several firmware
// files from one package is listed once.
func (b *Builder) Add(module string, packages []string) {
	for _, pkg := range packages {
		pairs, ok := b.seen[pkg]
		if !ok {
			pairs = make(map[string]struct{})
			b.seen[pkg] = pairs
			b.order = append(b.order, pkg)
		}
		if _, dup := pairs[module]; dup {
			continue
		}
		pairs[module] = struct{}{}
		b.modules[pkg] = append(b.modules[pkg], module)
	}
}

// Len returns the number of packages recorded so far.
func (b *Builder) Len() int {
	return len(b.order)
}

// Build returns the finished report with an initialized header. The
// builder's internal slices are copied, so further Add calls do not
// mutate the returned report.
func (b *Builder) Build(version, kernel string) *Report {
	r := &Report{
		Entries: make([]Entry, 0, len(b.order)),
	}
	r.Init(version, kernel)

	for _, pkg := range b.order {
		mods := make([]string, len(b.modules[pkg]))
		copy(mods, b.modules[pkg])
		r.Entries = append(r.Entries, Entry{Package: pkg, Modules: mods})
	}
	return r
}
