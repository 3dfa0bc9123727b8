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

	"m4o.io/mvt/model"
)

// Feature is a parsed, lazily-interpreted feature frame: parsing only
// locates each field's byte span, it never walks the geometry or
// attribute streams until the caller asks for them.
type Feature struct {
	ID       model.ID
	GeomType model.GeometryType

	legacyTags          []byte
	geometry            []byte
	elevation           []byte
	attributes          []byte
	geometricAttributes []byte
	splineKnots         []byte

	table *Table
	cfg   Config
}

// ParseFeature parses one Feature message. table and version are the
// owning layer's intern table and format version, needed to interpret the
// attribute streams.
func ParseFeature(raw []byte, table *Table, version uint32, cfg Config) (*Feature, error) {
	f := &Feature{table: table, cfg: cfg.normalize()}

	cur := NewCursor(raw)

	for !cur.Done() {
		num, typ, err := cur.Tag()
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := cur.Varint()
			if err != nil {
				return nil, err
			}

			f.ID = model.Integer(v)
		case 2:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			f.legacyTags = b
		case 3:
			v, err := cur.Varint()
			if err != nil {
				return nil, err
			}

			f.GeomType = model.GeometryType(v)
		case 4:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			f.geometry = b
		case 5:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			f.elevation = b
		case 6:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			f.attributes = b
		case 7:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			f.geometricAttributes = b
		case 8:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			f.ID = model.String(string(b))
		case 9:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			f.splineKnots = b
		default:
			if err := cur.Skip(typ); err != nil {
				return nil, err
			}
		}
	}

	if (len(f.attributes) > 0 || len(f.geometricAttributes) > 0 || len(f.splineKnots) > 0 || len(f.elevation) > 0) && version < 3 {
		return nil, fmt.Errorf("%w: version 3 feature field present in version %d layer", model.ErrVersionMismatch, version)
	}

	return f, nil
}

// DecodeGeometry runs the feature's command stream against h.
func (f *Feature) DecodeGeometry(h model.GeometryHandler) error {
	if err := decodeGeometry(f.GeomType, f.geometry, f.elevation, f.geometricAttributes, h); err != nil {
		return err
	}

	if f.GeomType == model.GeomSpline && len(f.splineKnots) > 0 {
		return decodeSplineKnots(f.splineKnots, h)
	}

	return nil
}

// HasAttributes reports whether the feature carries any scalar
// attributes, version 1/2 legacy tags or version 3 attributes alike.
func (f *Feature) HasAttributes() bool {
	return len(f.legacyTags) > 0 || len(f.attributes) > 0
}

// DecodeAttributes decodes the feature's scalar attributes: the version
// 1/2 tags stream if present, otherwise the version 3 attributes stream.
// It returns the number of top-level keys and the total value count.
func (f *Feature) DecodeAttributes(h model.AttributeHandler) (int, int, error) {
	if f.legacyTags != nil {
		n, err := decodeLegacyAttributes(f.legacyTags, f.table, h)
		return n, n, err
	}

	if f.attributes == nil {
		return 0, 0, nil
	}

	return decodeScalarAttributes(f.attributes, f.table, h, f.cfg.MaxComplexValueDepth)
}

// DecodeGeometricAttributes eagerly decodes the feature's number-list and
// geometric-attribute streams as flat number-lists, independent of any
// geometry decode.
func (f *Feature) DecodeGeometricAttributes(h model.AttributeHandler) (int, int, error) {
	if f.geometricAttributes == nil {
		return 0, 0, nil
	}

	return decodeGeometricAttributes(f.geometricAttributes, f.table, h)
}

// DecodeAllAttributes decodes scalar attributes followed by geometric
// attributes against the same handler, summing their counts.
func (f *Feature) DecodeAllAttributes(h model.AttributeHandler) (int, int, error) {
	sc, sv, err := f.DecodeAttributes(h)
	if err != nil {
		return 0, 0, err
	}

	gc, gv, err := f.DecodeGeometricAttributes(h)
	if err != nil {
		return 0, 0, err
	}

	return sc + gc, sv + gv, nil
}

func decodeSplineKnots(buf []byte, h model.GeometryHandler) error {
	cur := NewCursor(buf)

	count, err := cur.VarintU32()
	if err != nil {
		return err
	}

	if err := h.KnotsBegin(count); err != nil {
		return err
	}

	cursor := int64(0)

	for i := uint32(0); i < count; i++ {
		d, err := cur.ZigZag()
		if err != nil {
			return err
		}

		cursor += d

		if err := h.KnotValue(cursor); err != nil {
			return err
		}
	}

	return h.KnotsEnd()
}
