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

// Package archive implements a small container format for batches of
// already-serialized tiles: a sequence of length-prefixed, optionally
// compressed entries, the same "read a fixed-width size, then read that
// many bytes" shape the teacher uses to frame OSM blobs.
package archive

import "fmt"

// Compression identifies how an entry's payload was compressed.
type Compression uint8

const (
	Raw Compression = iota
	Zlib
	LZ4
	Zstd
	XZ
)

func (c Compression) String() string {
	switch c {
	case Raw:
		return "raw"
	case Zlib:
		return "zlib"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	case XZ:
		return "xz"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Entry is one decoded archive record: name, the compression it was
// stored under, its decompressed size, and its decompressed payload.
type Entry struct {
	Name        string
	Compression Compression
	RawSize     uint32
	Payload     []byte
}
