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

// LayerSpec is the fully assembled, builder-side description of one
// layer, ready to be serialized.
type LayerSpec struct {
	Version uint32
	Name    string
	Extent  uint32

	Table            *Table
	AttrScalings     []model.Scaling
	ElevationScaling model.Scaling
	TileRef          []byte

	Features [][]byte
}

// EncodeLayer writes spec as a Layer message.
func EncodeLayer(spec LayerSpec) []byte {
	w := NewWriter(128)

	w.StringField(1, spec.Name)

	for _, f := range spec.Features {
		w.BytesField(2, f)
	}

	for _, k := range spec.Table.Keys.Values() {
		w.StringField(3, k)
	}

	for _, v := range spec.Table.Legacy.Values() {
		w.SubMessage(4, func(sub *Writer) { encodeLegacyValue(sub, v) })
	}

	w.VarintField(5, uint64(spec.Extent))

	for _, s := range spec.Table.Strings.Values() {
		w.StringField(6, s)
	}

	for _, d := range spec.Table.Doubles.Values() {
		w.DoubleField(7, d)
	}

	for _, f := range spec.Table.Floats.Values() {
		w.FloatField(8, f)
	}

	for _, i := range spec.Table.Ints.Values() {
		w.Tag(9, protowire.VarintType)
		w.ZigZag(i)
	}

	for _, s := range spec.AttrScalings {
		w.SubMessage(10, func(sub *Writer) { EncodeScaling(sub, s) })
	}

	if spec.ElevationScaling != model.DefaultScaling {
		w.SubMessage(11, func(sub *Writer) { EncodeScaling(sub, spec.ElevationScaling) })
	}

	if len(spec.TileRef) > 0 {
		w.BytesField(12, spec.TileRef)
	}

	w.VarintField(15, uint64(spec.Version))

	return w.Bytes()
}

func encodeLegacyValue(w *Writer, v model.Value) {
	switch v.Type {
	case model.ValueString:
		w.StringField(1, v.Str)
	case model.ValueFloat:
		w.FloatField(2, v.Float32V)
	case model.ValueDouble:
		w.DoubleField(3, v.Float64V)
	case model.ValueInt:
		w.Tag(4, protowire.VarintType)
		w.ZigZag(v.Int64V)
	case model.ValueUint:
		w.VarintField(5, v.Uint64V)
	case model.ValueSint:
		w.Tag(6, protowire.VarintType)
		w.ZigZag(v.Int64V)
	case model.ValueBool:
		b := uint64(0)
		if v.BoolV {
			b = 1
		}

		w.VarintField(7, b)
	default:
		panic(fmt.Sprintf("encoder: unsupported legacy value type %s", v.Type))
	}
}
