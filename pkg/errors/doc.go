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

// Package errors provides structured error handling with classification codes.
//
// Errors carry a stable ErrorCode so callers can branch on failure class
// without string matching, plus optional context for diagnostics. The codes
// cover the failure modes of the firmware resolution pipeline: metadata
// inconsistencies, external tool failures, missing tools, and unsynced
// package databases.
package errors
