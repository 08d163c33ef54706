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
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sys/unix"

	"github.com/archtools/pacfw/pkg/version"
)

// DefaultModulesRoot is where installed kernel module trees live.
const DefaultModulesRoot = "/usr/lib/modules"

// KernelRelease returns the release string of the running kernel.
func KernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("failed to query kernel release: %w", err)
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

// HasModuleTree reports whether a module tree for the given release exists
// under root. An empty root means DefaultModulesRoot. On Arch a missing
// tree for the running kernel usually means the kernel package was upgraded
// without a reboot.
func HasModuleTree(root, release string) bool {
	if root == "" {
		root = DefaultModulesRoot
	}
	info, err := os.Stat(filepath.Join(root, release))
	return err == nil && info.IsDir()
}

// InstalledReleases lists the kernel releases with module trees under root,
// sorted oldest to newest. Directory names that do not parse as kernel
// releases (such as extramodules trees) are skipped.
func InstalledReleases(root string) ([]string, error) {
	if root == "" {
		root = DefaultModulesRoot
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list module trees in %s: %w", root, err)
	}

	type release struct {
		name   string
		parsed version.Version
	}
	releases := make([]release, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := version.ParseVersion(e.Name())
		if err != nil {
			continue
		}
		releases = append(releases, release{name: e.Name(), parsed: v})
	}

	sort.Slice(releases, func(i, j int) bool {
		if c := releases[i].parsed.Compare(releases[j].parsed); c != 0 {
			return c < 0
		}
		return releases[i].name < releases[j].name
	})

	names := make([]string, 0, len(releases))
	for _, r := range releases {
		names = append(names, r.name)
	}
	return names, nil
}

// NewestInstalledRelease returns the newest release with a module tree
// under root, or the empty string when none parse.
func NewestInstalledRelease(root string) (string, error) {
	releases, err := InstalledReleases(root)
	if err != nil {
		return "", err
	}
	if len(releases) == 0 {
		return "", nil
	}
	return releases[len(releases)-1], nil
}
