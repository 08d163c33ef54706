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

// Package serializer writes report data to a file or stdout in various
// formats.
//
// Supported formats:
//   - Text: the value's own plain-text rendering (requires TextRenderer)
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable structured data
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close() // release the file handle
//	if err := w.Serialize(ctx, rep); err != nil {
//		return err
//	}
package serializer
