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

package serializer

import (
	"context"
	"io"
)

// Serializer writes a value in a configured format.
//
// The context parameter is provided for consistency across implementations;
// file and stdout writes are fast and blocking and do not consult it.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface Serializers implement when they hold
// resources such as file handles.
type Closer interface {
	Close() error
}

// TextRenderer is implemented by values that know how to render themselves
// as plain text. The text format requires it.
type TextRenderer interface {
	WriteText(w io.Writer) error
}
