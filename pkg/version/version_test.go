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

package version

import (
	"errors"
	"sort"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr error
	}{
		{
			name:  "arch release",
			input: "6.10.3-arch1-2",
			want:  Version{Major: 6, Minor: 10, Patch: 3, Precision: 3, Extras: "-arch1-2"},
		},
		{
			name:  "lts release",
			input: "6.6.44-1-lts",
			want:  Version{Major: 6, Minor: 6, Patch: 44, Precision: 3, Extras: "-1-lts"},
		},
		{
			name:  "release candidate",
			input: "6.11.0-rc3",
			want:  Version{Major: 6, Minor: 11, Patch: 0, Precision: 3, Extras: "-rc3"},
		},
		{
			name:  "major only",
			input: "6",
			want:  Version{Major: 6, Precision: 1},
		},
		{
			name:  "major minor",
			input: "6.10",
			want:  Version{Major: 6, Minor: 10, Precision: 2},
		},
		{
			name:  "v prefix",
			input: "v6.10.3",
			want:  Version{Major: 6, Minor: 10, Patch: 3, Precision: 3},
		},
		{
			name:  "plus suffix",
			input: "6.10.3+custom",
			want:  Version{Major: 6, Minor: 10, Patch: 3, Precision: 3, Extras: "+custom"},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmptyVersion,
		},
		{
			name:    "too many components",
			input:   "6.10.3.1",
			wantErr: ErrTooManyComponents,
		},
		{
			name:    "non numeric",
			input:   "six.ten",
			wantErr: ErrNonNumeric,
		},
		{
			name:    "leading negative",
			input:   "-1",
			wantErr: ErrNonNumeric,
		},
		{
			name:    "empty component",
			input:   "6..3",
			wantErr: ErrNonNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		want string
	}{
		{"precision 1", Version{Major: 6, Minor: 10, Patch: 3, Precision: 1}, "6"},
		{"precision 2", Version{Major: 6, Minor: 10, Patch: 3, Precision: 2}, "6.10"},
		{"precision 3", Version{Major: 6, Minor: 10, Patch: 3, Precision: 3}, "6.10.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionFull(t *testing.T) {
	v := MustParseVersion("6.10.3-arch1-2")
	if got := v.Full(); got != "6.10.3-arch1-2" {
		t.Errorf("Full() = %q, want 6.10.3-arch1-2", got)
	}

	v = MustParseVersion("6.10.3")
	if got := v.Full(); got != "6.10.3" {
		t.Errorf("Full() = %q, want 6.10.3", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal full", "6.10.3", "6.10.3", 0},
		{"patch newer", "6.10.4", "6.10.3", 1},
		{"patch older", "6.10.2", "6.10.3", -1},
		{"minor wins over patch", "6.11.0", "6.10.99", 1},
		{"major wins", "7.0.0", "6.99.99", 1},
		{"suffix ignored", "6.10.3-arch1-1", "6.10.3-arch1-2", 0},
		{"shared precision", "6.10", "6.10.7", 0},
		{"shared precision differs", "6.9", "6.10.7", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseVersion(tt.a)
			b := MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsNewer(t *testing.T) {
	newer := MustParseVersion("6.10.4-arch1-1")
	older := MustParseVersion("6.10.3-arch1-2")

	if !newer.IsNewer(older) {
		t.Error("6.10.4 should be newer than 6.10.3")
	}
	if older.IsNewer(newer) {
		t.Error("6.10.3 should not be newer than 6.10.4")
	}
	if newer.IsNewer(newer) {
		t.Error("a version is not newer than itself")
	}
}

func TestSortReleases(t *testing.T) {
	releases := []string{
		"6.10.3-arch1-2",
		"6.6.44-1-lts",
		"6.11.0-rc3",
		"6.10.4-arch1-1",
	}

	parsed := make([]Version, 0, len(releases))
	for _, r := range releases {
		parsed = append(parsed, MustParseVersion(r))
	}
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].Compare(parsed[j]) < 0
	})

	want := []string{"6.6.44-1-lts", "6.10.3-arch1-2", "6.10.4-arch1-1", "6.11.0-rc3"}
	for i, w := range want {
		if got := parsed[i].Full(); got != w {
			t.Errorf("sorted[%d] = %q, want %q", i, got, w)
		}
	}
}
