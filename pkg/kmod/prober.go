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

package kmod

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/archtools/pacfw/pkg/errors"
)

const (
	modprobeTool = "modprobe"
	modinfoTool  = "modinfo"
)

// ExecProber queries the module database through the standard module tools.
type ExecProber struct {
	// Kernel scopes all queries to a specific kernel release.
	// Empty means the running kernel.
	Kernel string
}

// NewExecProber creates a prober scoped to the given kernel release.
func NewExecProber(kernel string) *ExecProber {
	return &ExecProber{Kernel: kernel}
}

// ResolveAliases runs one batched alias resolution query over all
// identifiers. The query tool exits non-zero when any identifier fails to
// resolve while still printing the modules it did resolve, so exit errors
// are logged and the partial output is used.
func (p *ExecProber) ResolveAliases(ctx context.Context, identifiers []string) ([]string, error) {
	if len(identifiers) == 0 {
		return nil, nil
	}

	path, err := exec.LookPath(modprobeTool)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeToolNotFound, "modprobe not found in PATH", err)
	}

	args := make([]string, 0, len(identifiers)+3)
	if p.Kernel != "" {
		args = append(args, "-S", p.Kernel)
	}
	args = append(args, "-qaR")
	args = append(args, identifiers...)

	cmd := exec.CommandContext(ctx, path, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.Wrap(errors.ErrCodeToolFailure, "failed to execute modprobe", err)
		}
		slog.Debug("modprobe reported unresolved aliases", "error", err)
	}

	return splitLines(output), nil
}

// Depends returns the direct dependencies of a module. The comma-separated
// field is split verbatim, so a module without dependencies yields a single
// empty entry.
func (p *ExecProber) Depends(ctx context.Context, module string) ([]string, error) {
	output, err := p.modinfo(ctx, "depends", module)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSpace(string(output)), ","), nil
}

// Firmware returns the firmware files a module declares, one per output
// line, in declaration order.
func (p *ExecProber) Firmware(ctx context.Context, module string) ([]string, error) {
	output, err := p.modinfo(ctx, "firmware", module)
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// modinfo queries a single metadata field of a single module. Every module
// name passed here was already resolved from the same module database, so
// a failing query means the database and the on-disk tree disagree.
func (p *ExecProber) modinfo(ctx context.Context, field, module string) ([]byte, error) {
	path, err := exec.LookPath(modinfoTool)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeToolNotFound, "modinfo not found in PATH", err)
	}

	args := make([]string, 0, 5)
	args = append(args, "-F", field)
	if p.Kernel != "" {
		args = append(args, "-k", p.Kernel)
	}
	args = append(args, module)

	cmd := exec.CommandContext(ctx, path, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeModuleMetadata,
			fmt.Sprintf("failed to query %s for module %q", field, module), err)
	}

	return output, nil
}

// splitLines splits command output into lines, dropping empty ones.
func splitLines(output []byte) []string {
	if len(output) == 0 {
		return nil
	}
	parts := strings.Split(string(output), "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}
