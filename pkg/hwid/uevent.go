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

package hwid

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures the uevent parser.
type Option func(*UeventParser)

// UeventParser parses uevent records of KEY=VALUE lines.
type UeventParser struct {
	maxSize int
	keys    map[string]struct{}
}

// WithMaxSize sets the maximum size (in bytes) of a uevent record to parse.
// Default is 64KB.
func WithMaxSize(size int) Option {
	return func(p *UeventParser) {
		p.maxSize = size
	}
}

// WithKeys restricts parsing to the given keys. Default keeps every key.
func WithKeys(keys ...string) Option {
	return func(p *UeventParser) {
		p.keys = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			p.keys[k] = struct{}{}
		}
	}
}

// NewUeventParser creates a new uevent parser with the provided options.
func NewUeventParser(opts ...Option) *UeventParser {
	p := &UeventParser{
		maxSize: 64 << 10, // 64KB default
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap reads the uevent record at the given path and parses its content
// into a map. Lines without a delimiter or with an empty value are skipped;
// when a key filter is configured, keys outside the filter are dropped.
// Returns an error if the record cannot be read or parsed.
func (p *UeventParser) GetMap(path string) (map[string]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer f.Close()

	// Read one byte past the limit so an oversized record is rejected
	// without buffering it whole.
	b, err := io.ReadAll(io.LimitReader(f, int64(p.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	// Check record size
	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	// Validate UTF-8
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	result := make(map[string]string)
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || value == "" {
			continue
		}
		if p.keys != nil {
			if _, ok := p.keys[key]; !ok {
				continue
			}
		}

		result[key] = value
	}

	return result, nil
}
