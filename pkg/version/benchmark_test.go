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
	"testing"
)

func BenchmarkParseVersion(b *testing.B) {
	tests := []string{
		"6",
		"6.10",
		"6.10.3",
		"6.10.3-arch1-2",
		"6.6.44-1-lts",
		"v6.11.0-rc3",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = ParseVersion(input)
	}
}

func BenchmarkParseVersionFull(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVersion("6.10.3-arch1-2")
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := NewVersion(6, 10, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkVersionFullString(b *testing.B) {
	v := MustParseVersion("6.10.3-arch1-2")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Full()
	}
}

func BenchmarkCompare(b *testing.B) {
	v1, _ := ParseVersion("6.10.3-arch1-2")
	v2, _ := ParseVersion("6.10.0-arch1-1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkIsNewer(b *testing.B) {
	v1, _ := ParseVersion("6.10.3-arch1-2")
	v2, _ := ParseVersion("6.10.0-arch1-1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.IsNewer(v2)
	}
}
