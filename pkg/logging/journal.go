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

package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// JournalHandler is a slog.Handler that emits native systemd journal
// entries. Attribute keys are rewritten to journal field conventions
// (uppercase, underscores, no leading digit or underscore) and record
// levels map onto syslog priorities.
type JournalHandler struct {
	level  slog.Level
	attrs  []slog.Attr
	prefix string
}

// NewJournalHandler returns a handler sending records at or above level.
func NewJournalHandler(level slog.Level) *JournalHandler {
	return &JournalHandler{level: level}
}

// Enabled implements slog.Handler.
func (h *JournalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle implements slog.Handler.
func (h *JournalHandler) Handle(_ context.Context, r slog.Record) error {
	return journal.Send(r.Message, journalPriority(r.Level), h.recordVars(r))
}

// WithAttrs implements slog.Handler.
func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		clone.attrs = append(clone.attrs, slog.Attr{
			Key:   h.prefix + a.Key,
			Value: a.Value,
		})
	}
	return &clone
}

// WithGroup implements slog.Handler.
func (h *JournalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "_"
	return &clone
}

// recordVars flattens the handler's accumulated attributes and the record's
// own attributes into journal variables.
func (h *JournalHandler) recordVars(r slog.Record) map[string]string {
	vars := make(map[string]string, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		vars[journalFieldName(a.Key)] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" {
			vars[journalFieldName(h.prefix+a.Key)] = a.Value.String()
		}
		return true
	})
	return vars
}

func journalPriority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// journalFieldName rewrites an attribute key as a valid journal field name.
// Journald rejects fields that are empty, begin with an underscore or digit,
// contain characters outside [A-Z0-9_], or exceed 64 characters.
func journalFieldName(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range strings.ToUpper(key) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	name := b.String()
	if name == "" || name[0] == '_' || (name[0] >= '0' && name[0] <= '9') {
		name = fmt.Sprintf("X%s", name)
	}
	if len(name) > 64 {
		name = name[:64]
	}
	return name
}
