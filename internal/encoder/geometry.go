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

const (
	cmdMoveTo    = 1
	cmdLineTo    = 2
	cmdClosePath = 7
)

func command(id, count uint32) uint32 {
	return (id & 0x7) | (count << 3)
}

// geometryEncoder threads the running x/y/z position and an optional
// elevation writer through command emission, the write-side mirror of
// decoder.vertexCursor.
type geometryEncoder struct {
	geom    *Writer
	elev    *Writer
	x, y, z int64
}

func newGeometryEncoder(hasElevation bool) *geometryEncoder {
	ge := &geometryEncoder{geom: NewWriter(32)}
	if hasElevation {
		ge.elev = NewWriter(8)
	}

	return ge
}

func (ge *geometryEncoder) moveTo(count uint32) {
	ge.geom.Varint(uint64(command(cmdMoveTo, count)))
}

func (ge *geometryEncoder) lineTo(count uint32) {
	ge.geom.Varint(uint64(command(cmdLineTo, count)))
}

func (ge *geometryEncoder) closePath() {
	ge.geom.Varint(uint64(command(cmdClosePath, 1)))
}

func (ge *geometryEncoder) vertex(p model.Point) {
	ge.geom.ZigZag(p.X - ge.x)
	ge.geom.ZigZag(p.Y - ge.y)
	ge.x, ge.y = p.X, p.Y

	if ge.elev != nil {
		ge.elev.ZigZag(p.Z - ge.z)
		ge.z = p.Z
	}
}

// EncodePoints writes a POINT feature's command stream: a single
// MoveTo(len(points)) followed by each point's delta.
func EncodePoints(points []model.Point, hasElevation bool) (geometry, elevation []byte) {
	ge := newGeometryEncoder(hasElevation)

	ge.moveTo(uint32(len(points)))

	for _, p := range points {
		ge.vertex(p)
	}

	return ge.geom.Bytes(), elevationBytes(ge)
}

// EncodeLineStrings writes a LINESTRING feature's command stream: one
// MoveTo(1)+LineTo(n-1) run per line.
func EncodeLineStrings(lines [][]model.Point, hasElevation bool) (geometry, elevation []byte) {
	ge := newGeometryEncoder(hasElevation)

	for _, line := range lines {
		ge.moveTo(1)
		ge.vertex(line[0])
		ge.lineTo(uint32(len(line) - 1))

		for _, p := range line[1:] {
			ge.vertex(p)
		}
	}

	return ge.geom.Bytes(), elevationBytes(ge)
}

// EncodePolygons writes a POLYGON feature's command stream: one
// MoveTo(1)+LineTo(n-1)+ClosePath run per ring. ring[0] is the ring's
// first vertex; the implicit closing edge back to it is not repeated in
// the slice.
func EncodePolygons(rings [][]model.Point, hasElevation bool) (geometry, elevation []byte) {
	ge := newGeometryEncoder(hasElevation)

	for _, ring := range rings {
		ge.moveTo(1)
		ge.vertex(ring[0])
		ge.lineTo(uint32(len(ring) - 1))

		for _, p := range ring[1:] {
			ge.vertex(p)
		}

		ge.closePath()
	}

	return ge.geom.Bytes(), elevationBytes(ge)
}

func elevationBytes(ge *geometryEncoder) []byte {
	if ge.elev == nil {
		return nil
	}

	return ge.elev.Bytes()
}

// EncodeSplineKnots appends a spline's knot stream: count followed by
// zigzag deltas against a running cursor.
func EncodeSplineKnots(knots []int64) []byte {
	w := NewWriter(8 + len(knots)*2)
	w.Varint(uint64(len(knots)))

	cursor := int64(0)

	for _, k := range knots {
		w.ZigZag(k - cursor)
		cursor = k
	}

	return w.Bytes()
}
