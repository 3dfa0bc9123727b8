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

package encoder

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"m4o.io/mvt/model"
)

// tag packs a type code and payload into the single varint word a version
// 3 complex value occupies on the wire: low 4 bits type code, upper 60
// bits payload.
func tag(code model.ValueType, payload uint64) uint64 {
	return uint64(code) | (payload << 4)
}

// EncodeComplexValue appends one complex value (scalar, list, or map;
// type codes 0-8) to w, interning strings/floats/doubles into table as
// needed. It reports the number of values written, counting itself,
// mirroring the decoder's accounting.
func EncodeComplexValue(w *Writer, table *Table, v model.Value) (int, error) {
	switch v.Type {
	case model.ValueString:
		w.Varint(tag(model.ValueString, uint64(table.Strings.Intern(v.Str))))
		return 1, nil
	case model.ValueFloat:
		w.Varint(tag(model.ValueFloat, uint64(table.Floats.Intern(v.Float32V))))
		return 1, nil
	case model.ValueDouble:
		w.Varint(tag(model.ValueDouble, uint64(table.Doubles.Intern(v.Float64V))))
		return 1, nil
	case model.ValueInt:
		w.Varint(tag(model.ValueInt, protowire.EncodeZigZag(v.Int64V)))
		return 1, nil
	case model.ValueUint:
		w.Varint(tag(model.ValueUint, v.Uint64V))
		return 1, nil
	case model.ValueSint:
		w.Varint(tag(model.ValueSint, protowire.EncodeZigZag(v.Int64V)))
		return 1, nil
	case model.ValueBool:
		payload := uint64(0)

		switch {
		case v.IsNull:
			payload = 2
		case v.BoolV:
			payload = 1
		}

		w.Varint(tag(model.ValueBool, payload))

		return 1, nil
	case model.ValueList:
		w.Varint(tag(model.ValueList, uint64(len(v.List))))

		count := 1

		for _, elem := range v.List {
			n, err := EncodeComplexValue(w, table, elem)
			if err != nil {
				return 0, err
			}

			count += n
		}

		return count, nil
	case model.ValueMap:
		w.Varint(tag(model.ValueMap, uint64(len(v.Map))))

		count := 1

		for _, entry := range v.Map {
			kn, err := EncodeComplexValue(w, table, entry.Key)
			if err != nil {
				return 0, err
			}

			vn, err := EncodeComplexValue(w, table, entry.Value)
			if err != nil {
				return 0, err
			}

			count += kn + vn
		}

		return count, nil
	default:
		return 0, fmt.Errorf("%w: type code %s not valid in a scalar attribute", model.ErrMalformedInput, v.Type)
	}
}
