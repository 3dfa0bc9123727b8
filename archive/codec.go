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
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

var ErrUnknownCompression = fmt.Errorf("archive: unknown compression type")

// compress runs raw through the writer side of c, the encode-side mirror
// of the teacher's per-compression packers.
func compress(c Compression, raw []byte) ([]byte, error) {
	if c == Raw {
		return raw, nil
	}

	var buf bytes.Buffer

	w, err := newCompressWriter(c, &buf)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("archive: compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("archive: compress: %w", err)
	}

	return buf.Bytes(), nil
}

func newCompressWriter(c Compression, buf *bytes.Buffer) (io.WriteCloser, error) {
	switch c {
	case Zlib:
		return zlib.NewWriter(buf), nil
	case LZ4:
		return lz4.NewWriter(buf), nil
	case Zstd:
		return zstd.NewWriter(buf)
	case XZ:
		return xz.NewWriter(buf)
	default:
		return nil, ErrUnknownCompression
	}
}

// decompress reverses compress, the decode-side mirror of the teacher's
// unpack function and its per-compression-type io.Reader factory.
func decompress(c Compression, payload []byte, rawSize uint32) ([]byte, error) {
	if c == Raw {
		return payload, nil
	}

	r, err := newDecompressReader(c, payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, rawSize)

	buf := bytes.NewBuffer(out)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("archive: decompress: %w", err)
	}

	if closer, ok := r.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return nil, fmt.Errorf("archive: decompress: %w", err)
		}
	}

	if uint32(buf.Len()) != rawSize {
		return nil, fmt.Errorf("archive: decompressed size %d, expected %d", buf.Len(), rawSize)
	}

	return buf.Bytes(), nil
}

func newDecompressReader(c Compression, payload []byte) (io.Reader, error) {
	switch c {
	case Zlib:
		return zlib.NewReader(bytes.NewReader(payload))
	case LZ4:
		return lz4.NewReader(bytes.NewReader(payload)), nil
	case Zstd:
		return zstd.NewReader(bytes.NewReader(payload))
	case XZ:
		return xz.NewReader(bytes.NewReader(payload))
	default:
		return nil, ErrUnknownCompression
	}
}
