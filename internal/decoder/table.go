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

package decoder

import (
	"fmt"
	"math"

	"m4o.io/mvt/model"
)

// Table holds a layer's six intern tables: the shared key table, the
// version 1/2 legacy value table, and the version 3 string/double/
// float/int tables. Entries are views into the layer's original buffer,
// or in the case of the legacy value table, eagerly decoded (it's a
// handful of small fixed-shape messages per layer, not worth a second
// indirection).
type Table struct {
	keys         [][]byte
	legacyValues []model.Value
	strings      [][]byte
	doubles      []float64
	floats       []float32
	ints         []int64
}

// Key resolves a key-table index into its string view.
func (t *Table) Key(i uint32) (string, error) {
	if int(i) >= len(t.keys) {
		return "", fmt.Errorf("%w: key index %d of %d", model.ErrOutOfRange, i, len(t.keys))
	}

	return string(t.keys[i]), nil
}

// LegacyValue resolves a version 1/2 value-table index.
func (t *Table) LegacyValue(i uint32) (model.Value, error) {
	if int(i) >= len(t.legacyValues) {
		return model.Value{}, fmt.Errorf("%w: value index %d of %d", model.ErrOutOfRange, i, len(t.legacyValues))
	}

	return t.legacyValues[i], nil
}

// String resolves a version 3 string-table index.
func (t *Table) String(i uint32) (string, error) {
	if int(i) >= len(t.strings) {
		return "", fmt.Errorf("%w: string table index %d of %d", model.ErrOutOfRange, i, len(t.strings))
	}

	return string(t.strings[i]), nil
}

// Double resolves a version 3 double-table index.
func (t *Table) Double(i uint32) (float64, error) {
	if int(i) >= len(t.doubles) {
		return 0, fmt.Errorf("%w: double table index %d of %d", model.ErrOutOfRange, i, len(t.doubles))
	}

	return t.doubles[i], nil
}

// Float resolves a version 3 float-table index.
func (t *Table) Float(i uint32) (float32, error) {
	if int(i) >= len(t.floats) {
		return 0, fmt.Errorf("%w: float table index %d of %d", model.ErrOutOfRange, i, len(t.floats))
	}

	return t.floats[i], nil
}

// Int resolves a version 3 int-table index.
func (t *Table) Int(i uint32) (int64, error) {
	if int(i) >= len(t.ints) {
		return 0, fmt.Errorf("%w: int table index %d of %d", model.ErrOutOfRange, i, len(t.ints))
	}

	return t.ints[i], nil
}

// decodeLegacyValue parses a version 1/2 Value message: a length-delimited
// sub-message with one of seven optional scalar fields.
func decodeLegacyValue(buf []byte) (model.Value, error) {
	cur := NewCursor(buf)

	var v model.Value

	seen := false

	for !cur.Done() {
		num, typ, err := cur.Tag()
		if err != nil {
			return model.Value{}, err
		}

		switch num {
		case 1:
			s, err := cur.Bytes()
			if err != nil {
				return model.Value{}, err
			}

			v, seen = model.StringValue(string(s)), true
		case 2:
			bits, err := cur.Fixed32()
			if err != nil {
				return model.Value{}, err
			}

			v, seen = model.FloatValue(math.Float32frombits(bits)), true
		case 3:
			bits, err := cur.Fixed64()
			if err != nil {
				return model.Value{}, err
			}

			v, seen = model.DoubleValue(math.Float64frombits(bits)), true
		case 4:
			raw, err := cur.ZigZag()
			if err != nil {
				return model.Value{}, err
			}

			v, seen = model.IntValue(raw), true
		case 5:
			raw, err := cur.Varint()
			if err != nil {
				return model.Value{}, err
			}

			v, seen = model.UintValue(raw), true
		case 6:
			raw, err := cur.ZigZag()
			if err != nil {
				return model.Value{}, err
			}

			v, seen = model.SintValue(raw), true
		case 7:
			raw, err := cur.Varint()
			if err != nil {
				return model.Value{}, err
			}

			v, seen = model.BoolValue(raw != 0), true
		default:
			if err := cur.Skip(typ); err != nil {
				return model.Value{}, err
			}
		}
	}

	if !seen {
		return model.Value{}, fmt.Errorf("%w: value message has no recognized field", model.ErrMalformedInput)
	}

	return v, nil
}
