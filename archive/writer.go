// Copyright 2017-25 the original author or authors.
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

package archive

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriterOption configures a Writer at creation time.
type WriterOption func(*Writer)

// WithWriterCompression sets the compression every Put uses. The default
// is Zstd.
func WithWriterCompression(c Compression) WriterOption {
	return func(w *Writer) { w.compression = c }
}

// Writer appends compressed, length-prefixed tile entries to an
// underlying io.Writer, one Put call per entry.
type Writer struct {
	w           io.Writer
	compression Compression
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	aw := &Writer{w: w, compression: Zstd}

	for _, opt := range opts {
		opt(aw)
	}

	return aw
}

// Put compresses tile under the writer's configured compression and
// appends it as a named entry.
func (w *Writer) Put(name string, tile []byte) error {
	payload, err := compress(w.compression, tile)
	if err != nil {
		return fmt.Errorf("archive: put %q: %w", name, err)
	}

	rec := encodeRecord(name, w.compression, uint32(len(tile)), payload)

	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(rec)))

	if _, err := w.w.Write(lenPrefix[:]); err != nil {
		return fmt.Errorf("archive: put %q: %w", name, err)
	}

	if _, err := w.w.Write(rec); err != nil {
		return fmt.Errorf("archive: put %q: %w", name, err)
	}

	return nil
}
