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

import "m4o.io/mvt/model"

// Attribute is a builder-side key/value pair awaiting encoding.
type Attribute struct {
	Key   string
	Value model.Value
}

// EncodeLegacyAttributes appends a version 1/2 tags stream: packed
// (key_index, value_index) varint pairs.
func EncodeLegacyAttributes(w *Writer, table *Table, attrs []Attribute) {
	for _, a := range attrs {
		keyIdx := table.Keys.Intern(a.Key)
		valIdx := table.Legacy.Intern(a.Value)
		w.Varint(uint64(keyIdx))
		w.Varint(uint64(valIdx))
	}
}

// EncodeScalarAttributes appends a version 3 attributes stream: packed
// (key_index, complex_value) entries. It returns the attribute count and
// total value count, mirroring the decoder's accounting.
func EncodeScalarAttributes(w *Writer, table *Table, attrs []Attribute) (int, int, error) {
	valueCount := 0

	for _, a := range attrs {
		keyIdx := table.Keys.Intern(a.Key)
		w.Varint(uint64(keyIdx))

		n, err := EncodeComplexValue(w, table, a.Value)
		if err != nil {
			return 0, 0, err
		}

		valueCount += n
	}

	return len(attrs), valueCount, nil
}

// OptionalInt64 is one element of a number-list or geometric-attribute
// stream: either a value or an explicit null.
type OptionalInt64 struct {
	Null  bool
	Value int64
}

// NumberListSpec describes one keyed number-list (type 9) or geometric-
// attribute (type 10) stream to encode. ScalingIndex is -1 for an
// unscaled (raw) stream, otherwise the 0-based index into the layer's
// attribute scalings.
type NumberListSpec struct {
	Key          string
	Geometric    bool
	ScalingIndex int32
	Values       []OptionalInt64
}

// EncodeNumberList appends one number-list/geometric-attribute stream:
// tag word (key_index<<4 | type code), count, scaling_index_plus_one,
// then one word per value (0 for null, else EncodeCursorDelta(delta)
// against a running cursor over non-null values).
func EncodeNumberList(w *Writer, table *Table, spec NumberListSpec) {
	keyIdx := table.Keys.Intern(spec.Key)

	typeCode := model.ValueNumberList
	if spec.Geometric {
		typeCode = model.ValueGeometricAttr
	}

	w.Varint((uint64(keyIdx) << 4) | uint64(typeCode))
	w.Varint(uint64(len(spec.Values)))

	plusOne := uint32(0)
	if spec.ScalingIndex >= 0 {
		plusOne = uint32(spec.ScalingIndex) + 1
	}

	w.Varint(uint64(plusOne))

	cursor := int64(0)

	for _, v := range spec.Values {
		if v.Null {
			w.Varint(0)
			continue
		}

		delta := v.Value - cursor
		cursor = v.Value
		w.Varint(EncodeCursorDelta(delta))
	}
}
