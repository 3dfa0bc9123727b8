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

// GeometryHandler receives the callback sequence produced by decoding a
// feature's geometry. Implementations embed BaseGeometryHandler and
// override only the methods they need; the embedded no-ops satisfy the
// rest of the interface.
//
// ScalingIndex passed to Attr is -1 when the stream carries raw integers
// (scaling_index_plus_one == 0 on the wire); otherwise it is the 0-based
// index into the owning layer's attribute scalings, suitable for
// layer.Scaling(1+idx). Value is always the raw, unscaled cursor value —
// applying a Scaling is left to the caller, exactly as the geometry
// decoder itself never applies one.
type GeometryHandler interface {
	PointsBegin(count uint32) error
	PointsPoint(p Point) error
	PointsEnd() error

	LineStringBegin(count uint32) error
	LineStringPoint(p Point) error
	LineStringEnd() error

	RingBegin(count uint32) error
	RingPoint(p Point) error
	RingEnd(w Winding) error

	KnotsBegin(count uint32) error
	KnotValue(v int64) error
	KnotsEnd() error

	Attr(keyIndex uint32, scalingIndex int32, value int64) error
	NullAttr(keyIndex uint32) error
}

// BaseGeometryHandler implements GeometryHandler with no-ops, for
// embedding by handlers that only care about a subset of callbacks.
type BaseGeometryHandler struct{}

func (BaseGeometryHandler) PointsBegin(uint32) error       { return nil }
func (BaseGeometryHandler) PointsPoint(Point) error        { return nil }
func (BaseGeometryHandler) PointsEnd() error                { return nil }
func (BaseGeometryHandler) LineStringBegin(uint32) error   { return nil }
func (BaseGeometryHandler) LineStringPoint(Point) error    { return nil }
func (BaseGeometryHandler) LineStringEnd() error            { return nil }
func (BaseGeometryHandler) RingBegin(uint32) error          { return nil }
func (BaseGeometryHandler) RingPoint(Point) error           { return nil }
func (BaseGeometryHandler) RingEnd(Winding) error           { return nil }
func (BaseGeometryHandler) KnotsBegin(uint32) error         { return nil }
func (BaseGeometryHandler) KnotValue(int64) error           { return nil }
func (BaseGeometryHandler) KnotsEnd() error                 { return nil }
func (BaseGeometryHandler) Attr(uint32, int32, int64) error { return nil }
func (BaseGeometryHandler) NullAttr(uint32) error           { return nil }

var _ GeometryHandler = BaseGeometryHandler{}

// AttributeHandler receives the callback sequence produced by decoding a
// feature's scalar or geometric attribute stream. See BaseAttributeHandler
// for embeddable no-ops.
type AttributeHandler interface {
	AttributeKey(key string) error

	ValueIndexStart(t ValueType) error
	ValueIndexEnd(t ValueType) error

	ValueString(v string) error
	ValueFloat(v float32) error
	ValueDouble(v float64) error
	ValueInt(v int64) error
	ValueUint(v uint64) error
	ValueSint(v int64) error
	ValueBool(v bool) error
	ValueNull() error

	StartListAttribute(count uint32) error
	EndListAttribute() error

	StartMapAttribute(count uint32) error
	EndMapAttribute() error

	// StartNumberList begins a number-list or geometric-attribute stream.
	// scalingIndex is -1 when the stream is unscaled (raw integers).
	StartNumberList(count uint32, scalingIndex int32) error
	NumberListValue(v int64) error
	NumberListNullValue() error
	EndNumberList() error
}

// BaseAttributeHandler implements AttributeHandler with no-ops.
type BaseAttributeHandler struct{}

func (BaseAttributeHandler) AttributeKey(string) error          { return nil }
func (BaseAttributeHandler) ValueIndexStart(ValueType) error    { return nil }
func (BaseAttributeHandler) ValueIndexEnd(ValueType) error      { return nil }
func (BaseAttributeHandler) ValueString(string) error           { return nil }
func (BaseAttributeHandler) ValueFloat(float32) error           { return nil }
func (BaseAttributeHandler) ValueDouble(float64) error          { return nil }
func (BaseAttributeHandler) ValueInt(int64) error               { return nil }
func (BaseAttributeHandler) ValueUint(uint64) error              { return nil }
func (BaseAttributeHandler) ValueSint(int64) error               { return nil }
func (BaseAttributeHandler) ValueBool(bool) error                { return nil }
func (BaseAttributeHandler) ValueNull() error                    { return nil }
func (BaseAttributeHandler) StartListAttribute(uint32) error     { return nil }
func (BaseAttributeHandler) EndListAttribute() error             { return nil }
func (BaseAttributeHandler) StartMapAttribute(uint32) error      { return nil }
func (BaseAttributeHandler) EndMapAttribute() error               { return nil }
func (BaseAttributeHandler) StartNumberList(uint32, int32) error { return nil }
func (BaseAttributeHandler) NumberListValue(int64) error          { return nil }
func (BaseAttributeHandler) NumberListNullValue() error            { return nil }
func (BaseAttributeHandler) EndNumberList() error                  { return nil }

var _ AttributeHandler = BaseAttributeHandler{}
