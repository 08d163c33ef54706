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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeModulesRoot(t *testing.T, releases ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, r := range releases {
		if err := os.Mkdir(filepath.Join(root, r), 0o755); err != nil {
			t.Fatalf("failed to create module tree %s: %v", r, err)
		}
	}
	return root
}

func TestKernelWarningsInstalledKernel(t *testing.T) {
	root := writeModulesRoot(t, "6.10.4-arch1-1")

	if got := kernelWarnings("6.10.4-arch1-1", root); len(got) != 0 {
		t.Errorf("expected no warnings for an installed kernel, got %v", got)
	}
}

func TestKernelWarningsMissingTreeListsInstalled(t *testing.T) {
	root := writeModulesRoot(t, "6.9.9-arch1-1", "6.10.4-arch1-1")

	got := kernelWarnings("6.11.0-arch1-1", root)
	if len(got) != 1 {
		t.Fatalf("expected one warning, got %v", got)
	}
	if !strings.Contains(got[0], "6.11.0-arch1-1") {
		t.Errorf("warning should name the requested kernel: %q", got[0])
	}
	if !strings.Contains(got[0], "installed: 6.9.9-arch1-1, 6.10.4-arch1-1") {
		t.Errorf("warning should list installed releases: %q", got[0])
	}
}

func TestKernelWarningsUnparsableRelease(t *testing.T) {
	root := writeModulesRoot(t)

	got := kernelWarnings("latest", root)
	if len(got) != 2 {
		t.Fatalf("expected parse and missing-tree warnings, got %v", got)
	}
	if !strings.Contains(got[0], "does not parse") {
		t.Errorf("first warning should flag the unparsable release: %q", got[0])
	}
}

func TestKernelWarningsRunningKernelAfterUpgrade(t *testing.T) {
	// A module tree only for some other release: the running kernel's own
	// tree is gone, as after a kernel package upgrade without a reboot.
	root := writeModulesRoot(t, "6.1.0-test1-1")

	got := kernelWarnings("", root)
	if len(got) != 1 {
		t.Fatalf("expected one warning, got %v", got)
	}
	if !strings.Contains(got[0], "running kernel") {
		t.Errorf("warning should name the running kernel: %q", got[0])
	}
	if !strings.Contains(got[0], "newest installed is 6.1.0-test1-1") {
		t.Errorf("warning should suggest the newest installed release: %q", got[0])
	}
}
