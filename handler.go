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

package mvt

import "m4o.io/mvt/model"

// Type aliases so callers implement decode handlers and describe values
// against the mvt package alone, without a second import of m4o.io/mvt/model.
type (
	GeometryHandler      = model.GeometryHandler
	BaseGeometryHandler  = model.BaseGeometryHandler
	AttributeHandler     = model.AttributeHandler
	BaseAttributeHandler = model.BaseAttributeHandler

	Point        = model.Point
	ID           = model.ID
	GeometryType = model.GeometryType
	Winding      = model.Winding
	Scaling      = model.Scaling
	Value        = model.Value
	ValueType    = model.ValueType
	MapEntry     = model.MapEntry
)

// Geometry type constants, re-exported from model.
const (
	GeomUnknown    = model.GeomUnknown
	GeomPoint      = model.GeomPoint
	GeomLineString = model.GeomLineString
	GeomPolygon    = model.GeomPolygon
	GeomSpline     = model.GeomSpline
)

// Winding constants, re-exported from model.
const (
	WindingInvalid = model.Invalid
	WindingOuter   = model.Outer
	WindingInner   = model.Inner
)

// Value type code constants, re-exported from model.
const (
	ValueString        = model.ValueString
	ValueFloat         = model.ValueFloat
	ValueDouble        = model.ValueDouble
	ValueInt           = model.ValueInt
	ValueUint          = model.ValueUint
	ValueSint          = model.ValueSint
	ValueBool          = model.ValueBool
	ValueList          = model.ValueList
	ValueMap           = model.ValueMap
	ValueNumberList    = model.ValueNumberList
	ValueGeometricAttr = model.ValueGeometricAttr
)

// NoneID is the absent feature id.
var NoneID = model.NoneID

// IntegerID constructs an integer feature id.
func IntegerID(v uint64) ID { return model.Integer(v) }

// StringID constructs a string feature id (tile format version 3 only).
func StringID(v string) ID { return model.String(v) }

// DefaultScaling is the identity affine transform: apply(i) == i.
var DefaultScaling = model.DefaultScaling

// Value constructors, re-exported from model.
var (
	StringValue = model.StringValue
	FloatValue  = model.FloatValue
	DoubleValue = model.DoubleValue
	IntValue    = model.IntValue
	UintValue   = model.UintValue
	SintValue   = model.SintValue
	BoolValue   = model.BoolValue
	NullValue   = model.NullValue
	ListValue   = model.ListValue
	MapValue    = model.MapValue
)
