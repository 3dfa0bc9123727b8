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
	"m4o.io/mvt/internal/decoder"
	"m4o.io/mvt/internal/encoder"
)

// encodeRecord writes one archive record: name, compression tag, the
// pre-compression size, and the (already compressed, if applicable)
// payload. It reuses the core codec's wire primitives rather than
// inventing a second framing.
func encodeRecord(name string, c Compression, rawSize uint32, payload []byte) []byte {
	w := encoder.NewWriter(16 + len(payload))

	w.StringField(1, name)
	w.VarintField(2, uint64(c))
	w.VarintField(3, uint64(rawSize))
	w.BytesField(4, payload)

	return w.Bytes()
}

// decodeRecord parses one archive record's fields, leaving Payload
// compressed: the caller decompresses it against RawSize.
func decodeRecord(buf []byte) (Entry, error) {
	var e Entry

	cur := decoder.NewCursor(buf)

	for !cur.Done() {
		num, typ, err := cur.Tag()
		if err != nil {
			return Entry{}, err
		}

		switch num {
		case 1:
			b, err := cur.Bytes()
			if err != nil {
				return Entry{}, err
			}

			e.Name = string(b)
		case 2:
			v, err := cur.Varint()
			if err != nil {
				return Entry{}, err
			}

			e.Compression = Compression(v)
		case 3:
			v, err := cur.VarintU32()
			if err != nil {
				return Entry{}, err
			}

			e.RawSize = v
		case 4:
			b, err := cur.Bytes()
			if err != nil {
				return Entry{}, err
			}

			e.Payload = b
		default:
			if err := cur.Skip(typ); err != nil {
				return Entry{}, err
			}
		}
	}

	return e, nil
}
