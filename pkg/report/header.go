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
	"time"

	"github.com/google/uuid"
)

const (
	// KindFirmwareReport is the kind of the report resource.
	KindFirmwareReport = "FirmwareReport"

	// APIVersion identifies the report schema version.
	APIVersion = "pacfw.archtools.dev/v1"
)

// Header carries identifying metadata for a report. It follows
// Kubernetes-style resource conventions with Kind, APIVersion, and
// Metadata fields so reports remain self-describing when archived.
type Header struct {
	// Kind is the type of the report object.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the report object.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the run that produced
	// the report.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init populates the header for a new run: a unique run id, the UTC
// timestamp, the tool version, and the kernel release the resolution was
// scoped to. Empty version or kernel values are omitted.
func (h *Header) Init(version, kernel string) {
	h.Kind = KindFirmwareReport
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"run-id":    uuid.NewString(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
	if kernel != "" {
		h.Metadata["kernel"] = kernel
	}
}
