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

// FeatureSpec is the fully assembled, builder-side description of one
// feature, ready to be serialized.
type FeatureSpec struct {
	ID       model.ID
	GeomType model.GeometryType

	Geometry  []byte
	Elevation []byte

	LegacyAttrs []Attribute // version 1/2
	ScalarAttrs []Attribute // version 3

	NumberLists []NumberListSpec // version 3 geometric attributes

	SplineKnots []byte
}

// EncodeFeature writes spec as a Feature message.
func EncodeFeature(table *Table, version uint32, spec FeatureSpec) ([]byte, error) {
	w := NewWriter(64)

	switch spec.ID.Kind {
	case model.IntegerID:
		w.VarintField(1, spec.ID.Integer)
	case model.StringID:
		w.StringField(8, spec.ID.Str)
	}

	if version < 3 {
		if len(spec.LegacyAttrs) > 0 {
			w.SubMessage(2, func(sub *Writer) {
				EncodeLegacyAttributes(sub, table, spec.LegacyAttrs)
			})
		}
	} else if len(spec.ScalarAttrs) > 0 {
		var encErr error

		w.SubMessage(6, func(sub *Writer) {
			_, _, encErr = EncodeScalarAttributes(sub, table, spec.ScalarAttrs)
		})

		if encErr != nil {
			return nil, encErr
		}
	}

	w.VarintField(3, uint64(spec.GeomType))

	if len(spec.Geometry) > 0 {
		w.BytesField(4, spec.Geometry)
	}

	if len(spec.Elevation) > 0 {
		w.BytesField(5, spec.Elevation)
	}

	if len(spec.NumberLists) > 0 {
		w.SubMessage(7, func(sub *Writer) {
			for _, nl := range spec.NumberLists {
				EncodeNumberList(sub, table, nl)
			}
		})
	}

	if len(spec.SplineKnots) > 0 {
		w.BytesField(9, spec.SplineKnots)
	}

	return w.Bytes(), nil
}
