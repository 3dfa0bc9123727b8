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

// defaultExtent is used when a layer omits field 5.
const defaultExtent = 4096

// Layer is a parsed layer frame: the intern tables and scalings are fully
// materialized (they're small), but features are kept as unparsed byte
// spans until FeatureAt is called.
type Layer struct {
	Version uint32
	Name    string
	Extent  uint32

	Table            *Table
	AttrScalings     []model.Scaling
	ElevationScaling model.Scaling
	TileRef          []byte

	features [][]byte
	cfg      Config
}

// ParseLayer parses one Layer message.
func ParseLayer(raw []byte, cfg Config) (*Layer, error) {
	l := &Layer{Version: 1, Extent: defaultExtent, ElevationScaling: model.DefaultScaling, cfg: cfg.normalize()}

	table := &Table{}

	var rawValues [][]byte

	cur := NewCursor(raw)

	for !cur.Done() {
		num, typ, err := cur.Tag()
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			l.Name = string(b)
		case 2:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			l.features = append(l.features, b)
		case 3:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			table.keys = append(table.keys, b)
		case 4:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			rawValues = append(rawValues, b)
		case 5:
			v, err := cur.Varint()
			if err != nil {
				return nil, err
			}

			l.Extent = uint32(v)
		case 6:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			table.strings = append(table.strings, b)
		case 7:
			v, err := cur.Fixed64()
			if err != nil {
				return nil, err
			}

			table.doubles = append(table.doubles, math.Float64frombits(v))
		case 8:
			v, err := cur.Fixed32()
			if err != nil {
				return nil, err
			}

			table.floats = append(table.floats, math.Float32frombits(v))
		case 9:
			v, err := cur.ZigZag()
			if err != nil {
				return nil, err
			}

			table.ints = append(table.ints, v)
		case 10:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			s, err := decodeScaling(b)
			if err != nil {
				return nil, err
			}

			l.AttrScalings = append(l.AttrScalings, s)
		case 11:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			s, err := decodeScaling(b)
			if err != nil {
				return nil, err
			}

			l.ElevationScaling = s
		case 12:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			l.TileRef = b
		case 15:
			v, err := cur.Varint()
			if err != nil {
				return nil, err
			}

			l.Version = uint32(v)
		default:
			if err := cur.Skip(typ); err != nil {
				return nil, err
			}
		}
	}

	table.legacyValues = make([]model.Value, len(rawValues))

	for i, b := range rawValues {
		v, err := decodeLegacyValue(b)
		if err != nil {
			return nil, fmt.Errorf("legacy value %d: %w", i, err)
		}

		table.legacyValues[i] = v
	}

	l.Table = table

	return l, nil
}

// NumFeatures returns the number of features in the layer.
func (l *Layer) NumFeatures() int { return len(l.features) }

// FeatureAt parses the i-th feature frame.
func (l *Layer) FeatureAt(i int) (*Feature, error) {
	if i < 0 || i >= len(l.features) {
		return nil, fmt.Errorf("%w: feature index %d of %d", model.ErrOutOfRange, i, len(l.features))
	}

	return ParseFeature(l.features[i], l.Table, l.Version, l.cfg)
}

// Features returns a range-over-func iterator over the layer's features,
// parsed in wire order.
func (l *Layer) Features() func(yield func(int, *Feature, error) bool) {
	return func(yield func(int, *Feature, error) bool) {
		for i := range l.features {
			f, err := l.FeatureAt(i)
			if !yield(i, f, err) {
				return
			}

			if err != nil {
				return
			}
		}
	}
}

// FeatureByID does a linear scan for a feature with the given integer or
// string id, returning nil if none matches.
func (l *Layer) FeatureByID(id model.ID) (*Feature, error) {
	for i := range l.features {
		f, err := l.FeatureAt(i)
		if err != nil {
			return nil, err
		}

		if f.ID == id {
			return f, nil
		}
	}

	return nil, nil
}

// Scaling resolves a unified scaling index: 0 is the layer's elevation
// scaling, 1..N select AttrScalings[i-1].
func (l *Layer) Scaling(i uint32) (model.Scaling, error) {
	if i == 0 {
		return l.ElevationScaling, nil
	}

	idx := int(i) - 1
	if idx >= len(l.AttrScalings) {
		return model.Scaling{}, fmt.Errorf("%w: scaling index %d of %d", model.ErrOutOfRange, i, len(l.AttrScalings))
	}

	return l.AttrScalings[idx], nil
}

// NumAttributeScalings returns the count of attribute (non-elevation)
// scalings the layer carries.
func (l *Layer) NumAttributeScalings() int { return len(l.AttrScalings) }
