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

package mvt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/mvt"
)

func buildSimpleTile(t *testing.T) []byte {
	t.Helper()

	tb := mvt.NewTileBuilder()
	lb := tb.Layer("roads", mvt.WithVersion(3), mvt.WithExtent(4096))

	fb := lb.Feature()
	fb.SetIntegerID(1)
	fb.AddScalarAttribute("name", mvt.StringValue("Main St"))
	fb.AddScalarAttribute("lanes", mvt.IntValue(2))

	require.NoError(t, fb.AddLineStrings([][]mvt.Point{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
	}, false))
	require.NoError(t, fb.Commit())

	lb.Commit()

	return tb.Serialize()
}

func TestTileRoundTrip(t *testing.T) {
	buf := buildSimpleTile(t)

	tile, err := mvt.DecodeTile(buf)
	require.NoError(t, err)
	require.Equal(t, 1, tile.NumLayers())

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)
	assert.Equal(t, "roads", layer.Name())
	assert.Equal(t, uint32(3), layer.Version())
	assert.Equal(t, uint32(4096), layer.Extent())
	assert.Equal(t, 1, layer.NumFeatures())

	feature, err := layer.FeatureAt(0)
	require.NoError(t, err)
	assert.Equal(t, mvt.GeomLineString, feature.GeometryType())
	assert.Equal(t, mvt.IntegerID(1), feature.ID())

	h := &mvt.DumpHandler{}
	attrCount, valCount, err := feature.DecodeAttributes(h)
	require.NoError(t, err)
	assert.Equal(t, 2, attrCount)
	assert.Equal(t, 2, valCount)
	assert.Equal(t, "name=Main St\nlanes=2\n", h.String())
}

func TestTileRoundTripGeometry(t *testing.T) {
	buf := buildSimpleTile(t)

	tile, err := mvt.DecodeTile(buf)
	require.NoError(t, err)

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)

	feature, err := layer.FeatureAt(0)
	require.NoError(t, err)

	var points []mvt.Point

	rec := &recordingGeometryHandler{onLineStringPoint: func(p mvt.Point) { points = append(points, p) }}
	require.NoError(t, feature.DecodeGeometry(rec))

	assert.Equal(t, []mvt.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, points)
}

func TestLayersIterator(t *testing.T) {
	buf := buildSimpleTile(t)

	tile, err := mvt.DecodeTile(buf)
	require.NoError(t, err)

	var names []string

	tile.Layers()(func(_ int, layer *mvt.LayerView, err error) bool {
		require.NoError(t, err)
		names = append(names, layer.Name())

		return true
	})

	assert.Equal(t, []string{"roads"}, names)
}

func TestDecodeTileMalformed(t *testing.T) {
	_, err := mvt.DecodeTile([]byte{0xff})
	assert.Error(t, err)
}

func TestLayerInternTableAccessors(t *testing.T) {
	buf := buildSimpleTile(t)

	tile, err := mvt.DecodeTile(buf)
	require.NoError(t, err)

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)

	key, err := layer.Key(0)
	require.NoError(t, err)
	assert.Equal(t, "name", key)

	_, err = layer.Key(999)
	assert.ErrorIs(t, err, mvt.ErrOutOfRange)

	_, err = layer.Value(999)
	assert.ErrorIs(t, err, mvt.ErrOutOfRange)

	_, err = layer.String(999)
	assert.ErrorIs(t, err, mvt.ErrOutOfRange)

	_, err = layer.Double(999)
	assert.ErrorIs(t, err, mvt.ErrOutOfRange)

	_, err = layer.Float(999)
	assert.ErrorIs(t, err, mvt.ErrOutOfRange)

	_, err = layer.Int(999)
	assert.ErrorIs(t, err, mvt.ErrOutOfRange)
}

func TestFeatureHasAttributes(t *testing.T) {
	buf := buildSimpleTile(t)

	tile, err := mvt.DecodeTile(buf)
	require.NoError(t, err)

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)

	feature, err := layer.FeatureAt(0)
	require.NoError(t, err)
	assert.True(t, feature.HasAttributes())

	tb := mvt.NewTileBuilder()
	lb := tb.Layer("empty")
	fb := lb.Feature()
	fb.SetIntegerID(1)
	require.NoError(t, fb.AddPoints([]mvt.Point{{X: 1, Y: 1}}, false))
	require.NoError(t, fb.Commit())
	lb.Commit()

	tile2, err := mvt.DecodeTile(tb.Serialize())
	require.NoError(t, err)

	layer2, err := tile2.LayerAt(0)
	require.NoError(t, err)

	feature2, err := layer2.FeatureAt(0)
	require.NoError(t, err)
	assert.False(t, feature2.HasAttributes())
}

type recordingGeometryHandler struct {
	mvt.BaseGeometryHandler
	onLineStringPoint func(mvt.Point)
}

func (r *recordingGeometryHandler) LineStringPoint(p mvt.Point) error {
	if r.onLineStringPoint != nil {
		r.onLineStringPoint(p)
	}

	return nil
}
