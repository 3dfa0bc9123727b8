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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/mvt/internal/encoder"
	"m4o.io/mvt/model"
)

func TestDecodeGeometryElevationRoundTrip(t *testing.T) {
	points := []model.Point{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: -1}}
	geometry, elevation := encoder.EncodePoints(points, true)

	var got []model.Point

	h := &recordingPointHandler{onPoint: func(p model.Point) { got = append(got, p) }}
	require.NoError(t, decodeGeometry(model.GeomPoint, geometry, elevation, nil, h))
	assert.Equal(t, points, got)
}

func TestDecodeGeometryElevationTooShort(t *testing.T) {
	points := []model.Point{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: -1}}
	geometry, elevation := encoder.EncodePoints(points, true)
	elevation = elevation[:len(elevation)-1]

	h := &recordingPointHandler{}
	err := decodeGeometry(model.GeomPoint, geometry, elevation, nil, h)
	assert.Error(t, err)
}

func TestDecodeGeometryElevationTooLong(t *testing.T) {
	points := []model.Point{{X: 1, Y: 2, Z: 3}}
	geometry, elevation := encoder.EncodePoints(points, true)
	elevation = append(elevation, elevation...)

	h := &recordingPointHandler{}
	err := decodeGeometry(model.GeomPoint, geometry, elevation, nil, h)
	assert.ErrorIs(t, err, model.ErrGeometry)
}

func TestDecodeGeometryElevationTooLongLineString(t *testing.T) {
	lines := [][]model.Point{{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 2}, {X: 2, Y: 2, Z: 3}}}
	geometry, elevation := encoder.EncodeLineStrings(lines, true)
	elevation = append(elevation, elevation...)

	h := &recordingPointHandler{}
	err := decodeGeometry(model.GeomLineString, geometry, elevation, nil, h)
	assert.ErrorIs(t, err, model.ErrGeometry)
}

func TestDecodeGeometryElevationTooLongPolygon(t *testing.T) {
	ring := [][]model.Point{{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 1}, {X: 10, Y: 10, Z: 2}, {X: 0, Y: 10, Z: 3}}}
	geometry, elevation := encoder.EncodePolygons(ring, true)
	elevation = append(elevation, elevation...)

	h := &recordingPointHandler{}
	err := decodeGeometry(model.GeomPolygon, geometry, elevation, nil, h)
	assert.ErrorIs(t, err, model.ErrGeometry)
}

type recordingPointHandler struct {
	model.BaseGeometryHandler
	onPoint func(model.Point)
}

func (r *recordingPointHandler) PointsPoint(p model.Point) error {
	if r.onPoint != nil {
		r.onPoint(p)
	}

	return nil
}

func (r *recordingPointHandler) LineStringPoint(model.Point) error { return nil }
func (r *recordingPointHandler) RingPoint(model.Point) error       { return nil }
func (r *recordingPointHandler) RingEnd(model.Winding) error       { return nil }
