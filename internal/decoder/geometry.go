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

const (
	cmdMoveTo    = 1
	cmdLineTo    = 2
	cmdClosePath = 7
)

func decodeCommand(word uint32) (id uint32, count uint32) {
	return word & 0x7, word >> 3
}

// activeAttrStream is a geometric-attribute (type 10) stream being stepped
// in lockstep with the vertices the geometry decoder emits.
type activeAttrStream struct {
	numberListStream
	cursor    *Cursor
	value     int64
	remaining uint32
}

// step reads this stream's next word, reporting whether it was null.
func (a *activeAttrStream) step() (null bool, value int64, err error) {
	if a.remaining == 0 {
		return true, 0, nil
	}

	raw, err := a.cursor.Varint()
	if err != nil {
		return false, 0, err
	}

	a.remaining--

	if raw == 0 {
		return true, 0, nil
	}

	a.value += decodeCursorDelta(raw)

	return false, a.value, nil
}

// buildActiveAttrStreams scans a feature's geometric_attributes buffer for
// its type-10 streams (ignoring type-9 number-lists, which aren't vertex
// aligned) and prepares each for stepwise consumption.
func buildActiveAttrStreams(buf []byte) ([]*activeAttrStream, error) {
	if len(buf) == 0 {
		return nil, nil
	}

	streams, err := scanGeometricAttributeStreams(buf)
	if err != nil {
		return nil, err
	}

	active := make([]*activeAttrStream, 0, len(streams))

	for _, st := range streams {
		if st.typeCode != model.ValueGeometricAttr {
			continue
		}

		active = append(active, &activeAttrStream{
			numberListStream: st,
			cursor:           newCursorAt(buf, st.deltaStart),
			remaining:        st.count,
		})
	}

	return active, nil
}

func emitAttrsForVertex(active []*activeAttrStream, h model.GeometryHandler) error {
	for _, a := range active {
		if a.remaining == 0 {
			continue // an exhausted stream drops out of the active set
		}

		null, value, err := a.step()
		if err != nil {
			return err
		}

		if null {
			if err := h.NullAttr(a.keyIndex); err != nil {
				return err
			}

			continue
		}

		if err := h.Attr(a.keyIndex, a.scalingIndex, value); err != nil {
			return err
		}
	}

	return nil
}

// vertexCursor threads the running x/y/z position and the elevation
// stream through the MoveTo/LineTo/ClosePath walk.
type vertexCursor struct {
	geom *Cursor
	elev *Cursor
	x, y int64
	z    int64
}

func newVertexCursor(geometry, elevation []byte) *vertexCursor {
	vc := &vertexCursor{geom: NewCursor(geometry)}
	if len(elevation) > 0 {
		vc.elev = NewCursor(elevation)
	}

	return vc
}

func (vc *vertexCursor) next() (model.Point, error) {
	dx, err := vc.geom.ZigZag()
	if err != nil {
		return model.Point{}, err
	}

	dy, err := vc.geom.ZigZag()
	if err != nil {
		return model.Point{}, err
	}

	vc.x += dx
	vc.y += dy

	if vc.elev != nil {
		if vc.elev.Done() {
			return model.Point{}, fmt.Errorf("%w: elevation stream length does not match vertex count", model.ErrGeometry)
		}

		dz, err := vc.elev.ZigZag()
		if err != nil {
			return model.Point{}, err
		}

		vc.z += dz
	}

	return model.Point{X: vc.x, Y: vc.y, Z: vc.z}, nil
}

// checkElevationDone reports ErrGeometry if the elevation stream has
// leftover deltas once the command walk has consumed every vertex it
// emits; one delta per vertex is the wire contract (a stream that runs
// out early is reported by next).
func checkElevationDone(vc *vertexCursor) error {
	if vc.elev != nil && !vc.elev.Done() {
		return fmt.Errorf("%w: elevation stream length does not match vertex count", model.ErrGeometry)
	}

	return nil
}

func (vc *vertexCursor) command(want ...uint32) (id uint32, count uint32, err error) {
	word, err := vc.geom.VarintU32()
	if err != nil {
		return 0, 0, err
	}

	id, count = decodeCommand(word)

	for _, w := range want {
		if id == w {
			return id, count, nil
		}
	}

	switch id {
	case cmdMoveTo, cmdLineTo, cmdClosePath:
		return id, count, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown command id %d", model.ErrGeometry, id)
	}
}

// decodeGeometry runs the MoveTo/LineTo/ClosePath command stream against
// h, stepping the elevation stream (if present) and any type-10 geometric
// attribute streams in lockstep with each emitted vertex.
func decodeGeometry(geomType model.GeometryType, geometry, elevation, geometricAttrs []byte, h model.GeometryHandler) error {
	active, err := buildActiveAttrStreams(geometricAttrs)
	if err != nil {
		return err
	}

	vc := newVertexCursor(geometry, elevation)

	switch geomType {
	case model.GeomPoint:
		return decodePoints(vc, active, h)
	case model.GeomLineString, model.GeomSpline:
		return decodeLineStrings(vc, active, h)
	case model.GeomPolygon:
		return decodePolygons(vc, active, h)
	default:
		return fmt.Errorf("%w: unsupported geometry type %s", model.ErrGeometry, geomType)
	}
}

func decodePoints(vc *vertexCursor, active []*activeAttrStream, h model.GeometryHandler) error {
	id, count, err := vc.command(cmdMoveTo)
	if err != nil {
		return err
	}

	if id != cmdMoveTo {
		return fmt.Errorf("%w: point geometry must start with MoveTo", model.ErrGeometry)
	}

	if err := h.PointsBegin(count); err != nil {
		return err
	}

	for i := uint32(0); i < count; i++ {
		p, err := vc.next()
		if err != nil {
			return err
		}

		if err := h.PointsPoint(p); err != nil {
			return err
		}

		if err := emitAttrsForVertex(active, h); err != nil {
			return err
		}
	}

	if !vc.geom.Done() {
		return fmt.Errorf("%w: trailing bytes after point geometry", model.ErrGeometry)
	}

	if err := checkElevationDone(vc); err != nil {
		return err
	}

	return h.PointsEnd()
}

func decodeLineStrings(vc *vertexCursor, active []*activeAttrStream, h model.GeometryHandler) error {
	for !vc.geom.Done() {
		id, count, err := vc.command(cmdMoveTo)
		if err != nil {
			return err
		}

		if id != cmdMoveTo || count != 1 {
			return fmt.Errorf("%w: linestring must start with MoveTo(1)", model.ErrGeometry)
		}

		start, err := vc.next()
		if err != nil {
			return err
		}

		lid, lcount, err := vc.command(cmdLineTo)
		if err != nil {
			return err
		}

		if lid != cmdLineTo {
			return fmt.Errorf("%w: linestring MoveTo must be followed by LineTo", model.ErrGeometry)
		}

		if err := h.LineStringBegin(lcount + 1); err != nil {
			return err
		}

		if err := h.LineStringPoint(start); err != nil {
			return err
		}

		if err := emitAttrsForVertex(active, h); err != nil {
			return err
		}

		for i := uint32(0); i < lcount; i++ {
			p, err := vc.next()
			if err != nil {
				return err
			}

			if err := h.LineStringPoint(p); err != nil {
				return err
			}

			if err := emitAttrsForVertex(active, h); err != nil {
				return err
			}
		}

		if err := h.LineStringEnd(); err != nil {
			return err
		}
	}

	return checkElevationDone(vc)
}

func decodePolygons(vc *vertexCursor, active []*activeAttrStream, h model.GeometryHandler) error {
	for !vc.geom.Done() {
		id, count, err := vc.command(cmdMoveTo)
		if err != nil {
			return err
		}

		if id != cmdMoveTo || count != 1 {
			return fmt.Errorf("%w: ring must start with MoveTo(1)", model.ErrGeometry)
		}

		start, err := vc.next()
		if err != nil {
			return err
		}

		area2 := int64(0)
		prev := start

		lid, lcount, err := vc.command(cmdLineTo)
		if err != nil {
			return err
		}

		if lid != cmdLineTo {
			return fmt.Errorf("%w: ring MoveTo must be followed by LineTo", model.ErrGeometry)
		}

		if err := h.RingBegin(lcount + 2); err != nil { // +1 start vertex, +1 implicit close
			return err
		}

		if err := h.RingPoint(start); err != nil {
			return err
		}

		if err := emitAttrsForVertex(active, h); err != nil {
			return err
		}

		for i := uint32(0); i < lcount; i++ {
			p, err := vc.next()
			if err != nil {
				return err
			}

			area2 += prev.X*p.Y - p.X*prev.Y
			prev = p

			if err := h.RingPoint(p); err != nil {
				return err
			}

			if err := emitAttrsForVertex(active, h); err != nil {
				return err
			}
		}

		cid, _, err := vc.command(cmdClosePath)
		if err != nil {
			return err
		}

		if cid != cmdClosePath {
			return fmt.Errorf("%w: ring must end with ClosePath", model.ErrGeometry)
		}

		area2 += prev.X*start.Y - start.X*prev.Y

		// The closing vertex repeats the MoveTo vertex; it has no deltas of
		// its own on the wire, so no elevation or attribute slot is read.
		if err := h.RingPoint(start); err != nil {
			return err
		}

		if err := h.RingEnd(model.WindingFromArea(area2)); err != nil {
			return err
		}
	}

	return checkElevationDone(vc)
}
