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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeDatabaseMissing, "file databases not found"),
			want: "[DATABASE_MISSING] file databases not found",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeToolFailure, "pacfiles search failed", fmt.Errorf("exit status 2")),
			want: "[TOOL_FAILURE] pacfiles search failed: exit status 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("exec: \"modinfo\": executable file not found in $PATH")
	err := Wrap(ErrCodeToolNotFound, "modinfo not available", cause)

	if got := stderrors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() should match the wrapped cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "structured error",
			err:  New(ErrCodeModuleMetadata, "depends query failed"),
			want: ErrCodeModuleMetadata,
		},
		{
			name: "wrapped structured error",
			err:  fmt.Errorf("resolving firmware: %w", New(ErrCodeToolFailure, "pacfiles failed")),
			want: ErrCodeToolFailure,
		},
		{
			name: "plain error",
			err:  stderrors.New("boom"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeModuleMetadata, "firmware query failed", map[string]any{
		"module": "iwlwifi",
		"kernel": "6.10.3-arch1-2",
	})

	if err.Context["module"] != "iwlwifi" {
		t.Errorf("Context[module] = %v, want iwlwifi", err.Context["module"])
	}
	if err.Context["kernel"] != "6.10.3-arch1-2" {
		t.Errorf("Context[kernel] = %v, want 6.10.3-arch1-2", err.Context["kernel"])
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := fmt.Errorf("exit status 127")
	err := WrapWithContext(ErrCodeToolFailure, "search batch failed", cause, map[string]any{
		"batch": 3,
	})

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Context["batch"] != 3 {
		t.Errorf("Context[batch] = %v, want 3", err.Context["batch"])
	}
	var se *StructuredError
	if !stderrors.As(err, &se) {
		t.Error("errors.As() should recover *StructuredError")
	}
}
