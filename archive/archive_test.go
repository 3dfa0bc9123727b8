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

package archive_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/mvt/archive"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	for _, c := range []archive.Compression{archive.Raw, archive.Zlib, archive.LZ4, archive.Zstd, archive.XZ} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w := archive.NewWriter(&buf, archive.WithWriterCompression(c))

			tile1 := bytes.Repeat([]byte("tile-one-payload-"), 32)
			tile2 := []byte("tiny")

			require.NoError(t, w.Put("tile1.mvt", tile1))
			require.NoError(t, w.Put("tile2.mvt", tile2))

			r := archive.NewReader(&buf)

			e1, err := r.Next()
			require.NoError(t, err)
			assert.Equal(t, "tile1.mvt", e1.Name)
			assert.Equal(t, c, e1.Compression)
			assert.Equal(t, tile1, e1.Payload)

			e2, err := r.Next()
			require.NoError(t, err)
			assert.Equal(t, "tile2.mvt", e2.Name)
			assert.Equal(t, tile2, e2.Payload)

			_, err = r.Next()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestReaderTruncated(t *testing.T) {
	r := archive.NewReader(bytes.NewReader([]byte{0, 0, 0}))

	_, err := r.Next()
	assert.Error(t, err)
}
