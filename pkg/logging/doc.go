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

// Package logging provides structured logging for pacfw.
//
// # Overview
//
// This package wraps the standard library slog package with defaults shared
// by every component: JSON records on stderr, environment-based level
// configuration, tool name and version context on every record, and source
// location tracking for debug logs. When stderr is connected to the systemd
// journal (for example under a service or timer unit), records are emitted
// as native journal entries so levels map onto journal priorities instead
// of being flattened into plain text.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("pacfw", buildVersion)
//
//	    slog.Info("resolving modules", "kernel", kernelRelease)
//	    slog.Debug("alias resolved", "alias", alias, "module", mod)
//	    slog.Error("search failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pacfw", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug pacfw
//
// If LOG_LEVEL is not set, defaults to INFO level. Note that LOG_LEVEL is
// independent of the -v flag: -v controls what the tool prints on stdout,
// LOG_LEVEL controls the diagnostic stream on stderr.
//
// # Output Format
//
// Logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "modules resolved",
//	    "module": "pacfw",
//	    "version": "v1.0.0",
//	    "count": 42
//	}
package logging
