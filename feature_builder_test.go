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

func TestFeatureBuilderCommitWithoutGeometry(t *testing.T) {
	tb := mvt.NewTileBuilder()
	lb := tb.Layer("layer")
	fb := lb.Feature()

	err := fb.Commit()
	assert.ErrorIs(t, err, mvt.ErrBuilderState)
}

func TestFeatureBuilderGeometrySetTwice(t *testing.T) {
	tb := mvt.NewTileBuilder()
	lb := tb.Layer("layer")
	fb := lb.Feature()

	require.NoError(t, fb.AddPoints([]mvt.Point{{X: 0, Y: 0}}, false))

	err := fb.AddLineStrings([][]mvt.Point{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, false)
	assert.ErrorIs(t, err, mvt.ErrBuilderState)
}

func TestFeatureBuilderPolygonRoundTrip(t *testing.T) {
	tb := mvt.NewTileBuilder()
	lb := tb.Layer("polys")
	fb := lb.Feature()

	require.NoError(t, fb.AddPolygon([][]mvt.Point{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
	}, false))
	require.NoError(t, fb.Commit())

	lb.Commit()

	tile, err := mvt.DecodeTile(tb.Serialize())
	require.NoError(t, err)

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)

	feature, err := layer.FeatureAt(0)
	require.NoError(t, err)

	assert.Equal(t, mvt.GeomPolygon, feature.GeometryType())

	var windings []mvt.Winding

	h := &recordingRingHandler{onRingEnd: func(w mvt.Winding) { windings = append(windings, w) }}
	require.NoError(t, feature.DecodeGeometry(h))

	assert.Equal(t, []mvt.Winding{mvt.WindingOuter}, windings)
}

type recordingRingHandler struct {
	mvt.BaseGeometryHandler
	onRingEnd func(mvt.Winding)
}

func (r *recordingRingHandler) RingEnd(w mvt.Winding) error {
	if r.onRingEnd != nil {
		r.onRingEnd(w)
	}

	return nil
}
