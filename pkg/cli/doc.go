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

// Package cli implements the command-line interface for pacfw.
//
// # Overview
//
// pacfw determines which installable firmware packages the running machine
// needs to support the kernel modules actually in use, and prints the
// package-to-module mapping. It is a diagnostic tool for administrators
// preparing a minimal or reproducible firmware set.
//
//	pacfw [--kernel RELEASE] [--no-deps] [-v[v]] [--output FILE] [--format text|json|yaml]
//
// # Flags
//
//	--verbose, -v   Print processing detail; repeat to include firmware files
//	--kernel, -S    Kernel release to resolve against (default: running kernel)
//	--no-deps       Skip the module dependency closure
//	--parallel      Concurrent package search batches (default: 1)
//	--output, -o    Report destination (default: stdout)
//	--format, -t    Report format: text, json, yaml (default: text)
//	--log-level     Log verbosity: debug, info, warn, error
//
// # Environment Variables
//
//	PACFW_KERNEL         Kernel release override
//	PACFW_PARALLEL       Concurrent search batches
//	PACFW_OUTPUT         Report destination
//	PACFW_FORMAT         Report format
//	PACFW_SKIP_DB_CHECK  Skip the database freshness pre-flight
//	LOG_LEVEL            Log verbosity
//
// # Exit Codes
//
//	0  Success
//	1  Fatal error (missing databases, external tool failure, module
//	   metadata inconsistency)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/resolver - pipeline orchestration
//   - pkg/hwid - hardware identifier discovery
//   - pkg/kmod - module alias resolution, dependency closure, firmware
//   - pkg/pacfiles - package file search and database freshness
//   - pkg/report - package report aggregation
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/archtools/pacfw/pkg/cli.version=1.0.0'"
package cli
