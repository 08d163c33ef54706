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
	"fmt"
	"io"
)

// printProgress renders the processing trace behind the counted -v flag.
// Level 0 prints nothing, level 1 prints per-module headers and package
// lines, level 2 also prints raw firmware file names. It implements
// resolver.Progress; the trace never affects the computed report.
type printProgress struct {
	w       io.Writer
	level   int
	printed bool
}

func newPrintProgress(w io.Writer, level int) *printProgress {
	return &printProgress{w: w, level: level}
}

func (p *printProgress) ModuleStart(module string) {
	if p.level < 1 {
		return
	}
	fmt.Fprintf(p.w, "--- %s ---\n", module)
	p.printed = true
}

func (p *printProgress) FirmwareFound(_ string, files []string) {
	if p.level < 2 {
		return
	}
	for _, f := range files {
		fmt.Fprintln(p.w, f)
		p.printed = true
	}
}

func (p *printProgress) PackageRequired(_, pkg string) {
	if p.level < 1 {
		return
	}
	fmt.Fprintf(p.w, "requires package: %s\n", pkg)
	p.printed = true
}

// Printed reports whether any trace line was written.
func (p *printProgress) Printed() bool {
	return p.printed
}
