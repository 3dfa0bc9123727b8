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

package model

import "strconv"

// ValueType is the 4-bit type code of a tile format version 3 complex
// value.
type ValueType uint8

const (
	ValueString ValueType = iota
	ValueFloat
	ValueDouble
	ValueInt
	ValueUint
	ValueSint
	ValueBool
	ValueList
	ValueMap
	ValueNumberList
	ValueGeometricAttr
)

// ValueTypeCount is the number of type codes defined by the format; any
// code at or beyond this is malformed input.
const ValueTypeCount = 11

func (t ValueType) String() string {
	switch t {
	case ValueString:
		return "string"
	case ValueFloat:
		return "float"
	case ValueDouble:
		return "double"
	case ValueInt:
		return "int"
	case ValueUint:
		return "uint"
	case ValueSint:
		return "sint"
	case ValueBool:
		return "bool"
	case ValueList:
		return "list"
	case ValueMap:
		return "map"
	case ValueNumberList:
		return "number-list"
	case ValueGeometricAttr:
		return "geometric-attribute"
	default:
		return "unknown"
	}
}

// Value is the tagged union decoded from (or encoded into) a scalar
// attribute's complex-value stream: type codes 0-8 of the format. Codes 9
// (number-list) and 10 (geometric-attribute) never appear as a scalar
// Value — they are separate streams, and only type 10 streams are stepped
// in lockstep with vertices by the geometry decoder, see
// internal/decoder/attribute.go.
type Value struct {
	Type ValueType

	Str      string
	Float32V float32
	Float64V float64
	Int64V   int64
	Uint64V  uint64
	BoolV    bool
	IsNull   bool

	List []Value
	Map  []MapEntry
}

// MapEntry is one key/value pair of a ValueMap complex value. Map keys are
// themselves complex values, not interned strings — see spec.md §3.
type MapEntry struct {
	Key   Value
	Value Value
}

func StringValue(v string) Value  { return Value{Type: ValueString, Str: v} }
func FloatValue(v float32) Value  { return Value{Type: ValueFloat, Float32V: v} }
func DoubleValue(v float64) Value { return Value{Type: ValueDouble, Float64V: v} }
func IntValue(v int64) Value      { return Value{Type: ValueInt, Int64V: v} }
func UintValue(v uint64) Value    { return Value{Type: ValueUint, Uint64V: v} }
func SintValue(v int64) Value     { return Value{Type: ValueSint, Int64V: v} }
func BoolValue(v bool) Value      { return Value{Type: ValueBool, BoolV: v} }
func NullValue() Value            { return Value{Type: ValueBool, IsNull: true} }
func ListValue(v []Value) Value   { return Value{Type: ValueList, List: v} }
func MapValue(v []MapEntry) Value { return Value{Type: ValueMap, Map: v} }

// Dump renders a scalar Value as plain text: strings as-is, numbers and
// bools in their Go form, and a null as "null". A list or map renders
// only as "<list>" or "<map>"; its elements are not printed. The root
// package's DumpHandler formats values itself and does not call Dump.
func (v Value) Dump() string {
	switch v.Type {
	case ValueString:
		return v.Str
	case ValueFloat:
		return strconv.FormatFloat(float64(v.Float32V), 'g', -1, 32)
	case ValueDouble:
		return strconv.FormatFloat(v.Float64V, 'g', -1, 64)
	case ValueInt, ValueSint:
		return strconv.FormatInt(v.Int64V, 10)
	case ValueUint:
		return strconv.FormatUint(v.Uint64V, 10)
	case ValueBool:
		if v.IsNull {
			return "null"
		}

		return strconv.FormatBool(v.BoolV)
	default:
		return "<" + v.Type.String() + ">"
	}
}
