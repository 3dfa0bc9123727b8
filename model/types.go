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

// Package model contains the shared data model for Mapbox Vector Tile
// encoders/decoders: geometry types, feature ids, scalings and the tagged
// complex-value union used by tile format version 3.
package model

import "strconv"

// GeometryType is the kind of geometry carried by a feature.
type GeometryType uint8

const (
	// GeomUnknown is used for features whose geometry type could not be
	// determined; decoders must not attempt to interpret the command
	// stream of such a feature.
	GeomUnknown GeometryType = iota
	GeomPoint
	GeomLineString
	GeomPolygon
	// GeomSpline is a tile format version 3 extension: a linestring
	// command stream plus a parallel knot stream.
	GeomSpline
)

func (t GeometryType) String() string {
	switch t {
	case GeomPoint:
		return "POINT"
	case GeomLineString:
		return "LINESTRING"
	case GeomPolygon:
		return "POLYGON"
	case GeomSpline:
		return "SPLINE"
	default:
		return "UNKNOWN"
	}
}

// Winding is the orientation of a polygon ring, computed from the signed
// shoelace area of the ring in tile-local integer space.
type Winding int8

const (
	Invalid Winding = iota
	Outer
	Inner
)

func (w Winding) String() string {
	switch w {
	case Outer:
		return "outer"
	case Inner:
		return "inner"
	default:
		return "invalid"
	}
}

// WindingFromArea classifies a ring from twice its signed shoelace area:
// positive is an outer ring, negative an inner ring, zero is degenerate.
func WindingFromArea(signedArea2 int64) Winding {
	switch {
	case signedArea2 > 0:
		return Outer
	case signedArea2 < 0:
		return Inner
	default:
		return Invalid
	}
}

// Point is a decoded vertex in tile-local integer coordinates, optionally
// carrying a third (elevation) dimension.
type Point struct {
	X, Y int64
	// Z is only meaningful when the feature carries an elevation stream;
	// otherwise it is 0. Point itself does not record which case applies.
	Z int64
}

// IDKind discriminates the Id variant.
type IDKind uint8

const (
	NoID IDKind = iota
	IntegerID
	StringID
)

// ID is the variant feature identifier: absent, an unsigned integer
// (versions 1-3), or a string (version 3 only).
type ID struct {
	Kind    IDKind
	Integer uint64
	Str     string
}

// NoneID is the absent-id value.
var NoneID = ID{Kind: NoID}

// Integer constructs an integer feature id.
func Integer(v uint64) ID { return ID{Kind: IntegerID, Integer: v} }

// String constructs a string feature id (tile format version 3 only).
func String(v string) ID { return ID{Kind: StringID, Str: v} }

func (id ID) IsNone() bool { return id.Kind == NoID }

func (id ID) String() string {
	switch id.Kind {
	case IntegerID:
		return strconv.FormatUint(id.Integer, 10)
	case StringID:
		return id.Str
	default:
		return "<none>"
	}
}
