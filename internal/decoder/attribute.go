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

// decodeLegacyAttributes walks a version 1/2 "tags" stream: packed varints
// alternating key-table and value-table indices. It returns the number of
// key/value pairs read.
func decodeLegacyAttributes(buf []byte, table *Table, h model.AttributeHandler) (int, error) {
	cur := NewCursor(buf)

	count := 0

	for !cur.Done() {
		keyIdx, err := cur.VarintU32()
		if err != nil {
			return 0, err
		}

		if cur.Done() {
			return 0, fmt.Errorf("%w: odd-length legacy attribute stream", model.ErrMalformedInput)
		}

		valIdx, err := cur.VarintU32()
		if err != nil {
			return 0, err
		}

		key, err := table.Key(keyIdx)
		if err != nil {
			return 0, err
		}

		val, err := table.LegacyValue(valIdx)
		if err != nil {
			return 0, err
		}

		if err := h.AttributeKey(key); err != nil {
			return 0, err
		}

		if err := h.ValueIndexStart(val.Type); err != nil {
			return 0, err
		}

		if err := emitLegacyValue(val, h); err != nil {
			return 0, err
		}

		if err := h.ValueIndexEnd(val.Type); err != nil {
			return 0, err
		}

		count++
	}

	return count, nil
}

func emitLegacyValue(v model.Value, h model.AttributeHandler) error {
	switch v.Type {
	case model.ValueString:
		return h.ValueString(v.Str)
	case model.ValueFloat:
		return h.ValueFloat(v.Float32V)
	case model.ValueDouble:
		return h.ValueDouble(v.Float64V)
	case model.ValueInt, model.ValueSint:
		return h.ValueInt(v.Int64V)
	case model.ValueUint:
		return h.ValueUint(v.Uint64V)
	case model.ValueBool:
		return h.ValueBool(v.BoolV)
	default:
		return fmt.Errorf("%w: unsupported legacy value type %s", model.ErrMalformedInput, v.Type)
	}
}

// decodeScalarAttributes walks a version 3 "attributes" stream: packed
// (key_index, complex_value) pairs, where complex_value is any type code
// 0-8. It returns the number of top-level keys and the total value count
// (each key's value itself plus every value nested under it; keys are not
// counted, see decodeComplexValue).
func decodeScalarAttributes(buf []byte, table *Table, h model.AttributeHandler, maxDepth int) (int, int, error) {
	cur := NewCursor(buf)

	attrCount, valueCount := 0, 0

	for !cur.Done() {
		keyIdx, err := cur.VarintU32()
		if err != nil {
			return 0, 0, err
		}

		key, err := table.Key(keyIdx)
		if err != nil {
			return 0, 0, err
		}

		if err := h.AttributeKey(key); err != nil {
			return 0, 0, err
		}

		n, err := decodeComplexValue(cur, table, h, 0, maxDepth)
		if err != nil {
			return 0, 0, err
		}

		attrCount++
		valueCount += n
	}

	return attrCount, valueCount, nil
}

// numberListStream is one parsed header of a number-list (type code 9) or
// geometric-attribute (type code 10) stream: tag = (key_index<<4)|code,
// count, scaling_index_plus_one, followed by count zigzag deltas (raw
// value 0 means null, otherwise the delta is DecodeZigZag(raw-1)).
type numberListStream struct {
	keyIndex     uint32
	typeCode     model.ValueType
	scalingIndex int32 // -1 when unscaled
	count        uint32
	deltaStart   int
}

// scanGeometricAttributeStreams does a single linear pass over a
// "geometric_attributes" buffer, recording each stream's header and the
// byte offset of its first delta, without decoding the deltas themselves.
// Streams of both type 9 and type 10 are recorded. Only type 10 streams
// are stepped in lockstep with vertices (buildActiveAttrStreams in
// geometry.go drops the type 9 ones); decodeGeometricAttributes below
// decodes both kinds eagerly.
func scanGeometricAttributeStreams(buf []byte) ([]numberListStream, error) {
	cur := NewCursor(buf)

	var streams []numberListStream

	for !cur.Done() {
		tag, err := cur.Varint()
		if err != nil {
			return nil, err
		}

		typeCode := model.ValueType(tag & 0xF)
		if typeCode != model.ValueNumberList && typeCode != model.ValueGeometricAttr {
			return nil, fmt.Errorf("%w: type code %s not allowed in a geometric attribute stream", model.ErrMalformedInput, typeCode)
		}

		keyIndex := uint32(tag >> 4)

		count, err := cur.VarintU32()
		if err != nil {
			return nil, err
		}

		plusOne, err := cur.VarintU32()
		if err != nil {
			return nil, err
		}

		scalingIndex := int32(-1)
		if plusOne > 0 {
			scalingIndex = int32(plusOne) - 1
		}

		deltaStart := cur.Pos()

		for i := uint32(0); i < count; i++ {
			if _, err := cur.Varint(); err != nil {
				return nil, err
			}
		}

		streams = append(streams, numberListStream{
			keyIndex:     keyIndex,
			typeCode:     typeCode,
			scalingIndex: scalingIndex,
			count:        count,
			deltaStart:   deltaStart,
		})
	}

	return streams, nil
}

// decodeGeometricAttributes eagerly decodes every stream (both type 9 and
// type 10) found in a "geometric_attributes" buffer as a number-list,
// reporting raw, unscaled values. This is the standalone attribute view;
// internal/decoder/geometry.go re-derives the type-10 streams itself to
// step them against vertices instead.
func decodeGeometricAttributes(buf []byte, table *Table, h model.AttributeHandler) (int, int, error) {
	streams, err := scanGeometricAttributeStreams(buf)
	if err != nil {
		return 0, 0, err
	}

	attrCount, valueCount := 0, 0

	for _, st := range streams {
		key, err := table.Key(st.keyIndex)
		if err != nil {
			return 0, 0, err
		}

		if err := h.AttributeKey(key); err != nil {
			return 0, 0, err
		}

		if err := h.StartNumberList(st.count, st.scalingIndex); err != nil {
			return 0, 0, err
		}

		dc := newCursorAt(buf, st.deltaStart)

		cursor := int64(0)

		for i := uint32(0); i < st.count; i++ {
			raw, err := dc.Varint()
			if err != nil {
				return 0, 0, err
			}

			if raw == 0 {
				if err := h.NumberListNullValue(); err != nil {
					return 0, 0, err
				}

				continue
			}

			cursor += decodeCursorDelta(raw)

			if err := h.NumberListValue(cursor); err != nil {
				return 0, 0, err
			}
		}

		if err := h.EndNumberList(); err != nil {
			return 0, 0, err
		}

		attrCount++
		valueCount += int(st.count)
	}

	return attrCount, valueCount, nil
}
