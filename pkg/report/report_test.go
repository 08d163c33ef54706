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

package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBuilderOrderAndDedup(t *testing.T) {
	b := NewBuilder()
	b.Add("mod1", []string{"linux-firmware"})
	b.Add("mod2", []string{"linux-firmware"})
	// Same pair again must not re-append.
	b.Add("mod1", []string{"linux-firmware"})
	b.Add("mod3", []string{"sof-firmware", "linux-firmware"})

	r := b.Build("test", "6.10.3-arch1-2")

	want := []Entry{
		{Package: "linux-firmware", Modules: []string{"mod1", "mod2", "mod3"}},
		{Package: "sof-firmware", Modules: []string{"mod3"}},
	}
	if !reflect.DeepEqual(r.Entries, want) {
		t.Errorf("Entries = %+v, want %+v", r.Entries, want)
	}
}

func TestBuilderLen(t *testing.T) {
	b := NewBuilder()
	if b.Len() != 0 {
		t.Errorf("empty builder Len() = %d, want 0", b.Len())
	}
	b.Add("mod1", []string{"a", "b"})
	b.Add("mod2", []string{"b"})
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestBuildCopiesModuleLists(t *testing.T) {
	b := NewBuilder()
	b.Add("mod1", []string{"linux-firmware"})

	r := b.Build("", "")
	b.Add("mod2", []string{"linux-firmware"})

	if len(r.Entries[0].Modules) != 1 {
		t.Errorf("report mutated by later Add: %v", r.Entries[0].Modules)
	}
}

func TestWriteText(t *testing.T) {
	b := NewBuilder()
	b.Add("mod1", []string{"linux-firmware"})
	b.Add("mod2", []string{"linux-firmware"})
	r := b.Build("", "")

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() failed: %v", err)
	}

	want := "linux-firmware is required by mod1, mod2\n"
	if buf.String() != want {
		t.Errorf("WriteText() = %q, want %q", buf.String(), want)
	}
}

func TestWriteTextEmptyReport(t *testing.T) {
	r := NewBuilder().Build("", "")

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty report produced output: %q", buf.String())
	}
}

func TestHeaderInit(t *testing.T) {
	var h Header
	h.Init("1.2.3", "6.10.3-arch1-2")

	if h.Kind != KindFirmwareReport {
		t.Errorf("Kind = %q, want %q", h.Kind, KindFirmwareReport)
	}
	if h.APIVersion != APIVersion {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, APIVersion)
	}
	for _, key := range []string{"run-id", "timestamp", "version", "kernel"} {
		if h.Metadata[key] == "" {
			t.Errorf("metadata missing %q", key)
		}
	}
	if h.Metadata["version"] != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", h.Metadata["version"])
	}
	if h.Metadata["kernel"] != "6.10.3-arch1-2" {
		t.Errorf("kernel = %q, want 6.10.3-arch1-2", h.Metadata["kernel"])
	}
}

func TestHeaderInitOmitsEmptyValues(t *testing.T) {
	var h Header
	h.Init("", "")

	if _, ok := h.Metadata["version"]; ok {
		t.Error("empty version recorded in metadata")
	}
	if _, ok := h.Metadata["kernel"]; ok {
		t.Error("empty kernel recorded in metadata")
	}
}

func TestReportMarshalPreservesOrder(t *testing.T) {
	b := NewBuilder()
	b.Add("mod1", []string{"zzz-firmware"})
	b.Add("mod2", []string{"aaa-firmware"})
	r := b.Build("test", "")

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() failed: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if decoded.Entries[0].Package != "zzz-firmware" {
		t.Errorf("json lost discovery order: %+v", decoded.Entries)
	}
	if decoded.Kind != KindFirmwareReport {
		t.Errorf("json header kind = %q", decoded.Kind)
	}

	out, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("yaml.Marshal() failed: %v", err)
	}
	var fromYAML Report
	if err := yaml.Unmarshal(out, &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	if fromYAML.Entries[0].Package != "zzz-firmware" {
		t.Errorf("yaml lost discovery order: %+v", fromYAML.Entries)
	}
}
