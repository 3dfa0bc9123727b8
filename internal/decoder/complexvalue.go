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

	"google.golang.org/protobuf/encoding/protowire"

	"m4o.io/mvt/model"
)

// decodeComplexValue reads one version 3 complex value: a varint tag whose
// low 4 bits are the type code and whose upper 60 bits are either an
// inline payload (int/uint/sint/bool-null) or a table index (string/
// float/double) or an element count (list/map). It reports the number of
// values consumed, counting itself: a scalar consumes 1, a list or map
// consumes 1 plus its elements' counts, matching the way vtzero's
// attribute-count tests add up a list header with its contents. maxDepth
// caps list/map recursion (see Config.MaxComplexValueDepth).
func decodeComplexValue(cur *Cursor, table *Table, h model.AttributeHandler, depth, maxDepth int) (int, error) {
	if depth > maxDepth {
		return 0, fmt.Errorf("%w: complex value nesting exceeds %d", model.ErrMalformedInput, maxDepth)
	}

	tag, err := cur.Varint()
	if err != nil {
		return 0, err
	}

	typeCode := model.ValueType(tag & 0xF)
	payload := tag >> 4

	if err := h.ValueIndexStart(typeCode); err != nil {
		return 0, err
	}

	consumed := 1

	switch typeCode {
	case model.ValueString:
		s, err := table.String(uint32(payload))
		if err != nil {
			return 0, err
		}

		err = h.ValueString(s)
	case model.ValueFloat:
		v, ferr := table.Float(uint32(payload))
		if ferr != nil {
			return 0, ferr
		}

		err = h.ValueFloat(v)
	case model.ValueDouble:
		v, derr := table.Double(uint32(payload))
		if derr != nil {
			return 0, derr
		}

		err = h.ValueDouble(v)
	case model.ValueInt:
		err = h.ValueInt(protowire.DecodeZigZag(payload))
	case model.ValueUint:
		err = h.ValueUint(payload)
	case model.ValueSint:
		err = h.ValueSint(protowire.DecodeZigZag(payload))
	case model.ValueBool:
		switch payload {
		case 0:
			err = h.ValueBool(false)
		case 1:
			err = h.ValueBool(true)
		case 2:
			err = h.ValueNull()
		default:
			return 0, fmt.Errorf("%w: bool/null payload %d", model.ErrMalformedInput, payload)
		}
	case model.ValueList:
		count := uint32(payload)

		if err := h.StartListAttribute(count); err != nil {
			return 0, err
		}

		for i := uint32(0); i < count; i++ {
			n, err := decodeComplexValue(cur, table, h, depth+1, maxDepth)
			if err != nil {
				return 0, err
			}

			consumed += n
		}

		err = h.EndListAttribute()
	case model.ValueMap:
		count := uint32(payload)

		if err := h.StartMapAttribute(count); err != nil {
			return 0, err
		}

		for i := uint32(0); i < count; i++ {
			kn, kerr := decodeComplexValue(cur, table, h, depth+1, maxDepth)
			if kerr != nil {
				return 0, kerr
			}

			vn, verr := decodeComplexValue(cur, table, h, depth+1, maxDepth)
			if verr != nil {
				return 0, verr
			}

			consumed += kn + vn
		}

		err = h.EndMapAttribute()
	case model.ValueNumberList, model.ValueGeometricAttr:
		return 0, fmt.Errorf("%w: type code %s not allowed in a scalar attribute stream", model.ErrMalformedInput, typeCode)
	default:
		return 0, fmt.Errorf("%w: unknown complex value type code %d", model.ErrMalformedInput, typeCode)
	}

	if err != nil {
		return 0, err
	}

	if err := h.ValueIndexEnd(typeCode); err != nil {
		return 0, err
	}

	return consumed, nil
}
