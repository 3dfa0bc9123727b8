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
	"errors"
	"fmt"
	"io"
)

// Reader reads entries off an underlying io.Reader written by a Writer,
// one Next call per entry, io.EOF once every entry has been read.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next reads, decompresses and returns the next entry.
func (r *Reader) Next() (*Entry, error) {
	var lenPrefix [4]byte

	if _, err := io.ReadFull(r.r, lenPrefix[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("archive: truncated record length: %w", err)
		}

		return nil, err
	}

	size := binary.BigEndian.Uint32(lenPrefix[:])

	rec := make([]byte, size)
	if _, err := io.ReadFull(r.r, rec); err != nil {
		return nil, fmt.Errorf("archive: reading record: %w", err)
	}

	e, err := decodeRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("archive: decoding record: %w", err)
	}

	e.Payload, err = decompress(e.Compression, e.Payload, e.RawSize)
	if err != nil {
		return nil, fmt.Errorf("archive: decompressing %q: %w", e.Name, err)
	}

	return &e, nil
}
