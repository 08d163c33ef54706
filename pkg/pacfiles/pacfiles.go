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

// Package pacfiles maps firmware files to the packages providing them by
// querying the package file databases.
package pacfiles

import (
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/archtools/pacfw/pkg/errors"
)

const searchTool = "pacfiles"

// Searcher queries the package file databases for files matching path
// globs. Implementations shell out to the search tool; tests substitute
// fakes.
type Searcher interface {
	// Search returns the packages providing files that match the given
	// globs. A query matching nothing returns an empty result, not an
	// error.
	Search(ctx context.Context, globs []string) ([]string, error)
}

// ExecSearcher runs the package file search tool.
type ExecSearcher struct{}

// Search issues one quiet-mode query over all globs. The tool exits 0 on
// matches and 1 on no matches; both are success. Any other exit status is
// a hard failure.
func (s *ExecSearcher) Search(ctx context.Context, globs []string) ([]string, error) {
	if len(globs) == 0 {
		return nil, nil
	}

	path, err := exec.LookPath(searchTool)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeToolNotFound, "pacfiles not found in PATH", err)
	}

	args := make([]string, 0, len(globs)+1)
	args = append(args, "-q")
	args = append(args, globs...)

	cmd := exec.CommandContext(ctx, path, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			return nil, errors.Wrap(errors.ErrCodeToolFailure, "pacfiles search failed", err)
		}
		// Exit 1 means no matches.
	}

	return splitLines(output), nil
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
