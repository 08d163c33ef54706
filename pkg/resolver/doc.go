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

// Package resolver orchestrates the firmware resolution pipeline.
//
// A run executes five stages in sequence:
//
//  1. collect hardware identifiers from the device tree (pkg/hwid)
//  2. resolve identifiers to kernel module names (pkg/kmod)
//  3. expand the module dependency closure (pkg/kmod)
//  4. enumerate the firmware files each module declares (pkg/kmod)
//  5. map firmware files to the packages providing them (pkg/pacfiles)
//
// and aggregates the result into an ordered package report (pkg/report).
//
// The Resolver accepts interfaces for every external query family, so tests
// substitute fakes without invoking real system tools. Each run is
// independent; no state survives between runs.
//
// Error policy: unreadable device records and identifiers that resolve to
// nothing contribute empty sets and the run continues. A dependency or
// firmware query failing for a module that already resolved, or a package
// search failing outright, aborts the run immediately. There are no
// retries and an aborted run produces no report.
//
// Runs are observed with Prometheus collectors (run and stage durations,
// external query counts); the default registry is used so embedding
// programs can expose them if they serve metrics.
package resolver
