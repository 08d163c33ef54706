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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/archtools/pacfw/pkg/errors"
)

// DefaultDBPath is the sync database directory.
const DefaultDBPath = "/var/lib/pacman/sync"

// DefaultSkewThreshold is how far apart the .files and .db timestamps of a
// repository may drift before the databases are considered out of sync.
const DefaultSkewThreshold = 2 * time.Hour

// checkedRepos are the repositories expected to carry firmware packages.
var checkedRepos = []string{"core", "extra"}

// Checker verifies the package file databases exist and are reasonably
// fresh before a resolution run.
type Checker struct {
	// DBPath is the sync database directory. Empty means DefaultDBPath.
	DBPath string
	// SkewThreshold overrides DefaultSkewThreshold when positive.
	SkewThreshold time.Duration
}

// Check verifies the file databases have been synced and returns advisory
// warnings about stale or out-of-order database timestamps. A file database
// that was never synced is a hard error; warnings never abort a run.
func (c *Checker) Check() ([]string, error) {
	dbPath := c.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}

	for _, repo := range checkedRepos {
		if _, err := os.Stat(filepath.Join(dbPath, repo+".pacfiles")); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDatabaseMissing,
				"Please run `sudo pacfiles -y` to update databases.", err)
		}
	}

	var warnings []string
	for _, repo := range checkedRepos {
		warnings = append(warnings, c.checkMtimes(dbPath, repo)...)
	}
	return warnings, nil
}

// checkMtimes compares the timestamps of one repository's database files.
// The .pacfiles index must not lag the .files database it was built from,
// and the .files and .db databases should have been synced together.
func (c *Checker) checkMtimes(dbPath, repo string) []string {
	threshold := c.SkewThreshold
	if threshold <= 0 {
		threshold = DefaultSkewThreshold
	}

	var warnings []string

	stat := func(suffix string) (time.Time, bool) {
		info, err := os.Stat(filepath.Join(dbPath, repo+suffix))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot read %s%s: %v", repo, suffix, err))
			return time.Time{}, false
		}
		return info.ModTime(), true
	}

	dbTime, dbOK := stat(".db")
	filesTime, filesOK := stat(".files")
	pacfilesTime, pacfilesOK := stat(".pacfiles")

	if pacfilesOK && filesOK && pacfilesTime.Before(filesTime) {
		warnings = append(warnings, fmt.Sprintf(
			"%s.pacfiles is older than %s.files. Please run `sudo pacfiles --update-db` first.",
			repo, repo))
	}

	if filesOK && dbOK {
		delta := filesTime.Sub(dbTime)
		skew := delta
		if skew < 0 {
			skew = -skew
		}
		if skew > threshold {
			direction := "newer"
			if delta < 0 {
				direction = "older"
			}
			warnings = append(warnings, fmt.Sprintf(
				"%s.files is %s %s than %s.db.",
				repo, formatDelta(skew), direction, repo))
		}
	}

	return warnings
}

// formatDelta renders a duration as H:MM:SS, with a day count prefix past
// 24 hours, matching how administrators read sync timestamps.
func formatDelta(d time.Duration) string {
	d = d.Round(time.Second)
	total := int(d / time.Second)
	seconds := total % 60
	minutes := (total / 60) % 60
	hours := (total / 3600) % 24
	days := total / 86400

	switch {
	case days == 1:
		return fmt.Sprintf("1 day, %d:%02d:%02d", hours, minutes, seconds)
	case days > 1:
		return fmt.Sprintf("%d days, %d:%02d:%02d", days, hours, minutes, seconds)
	default:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
}
