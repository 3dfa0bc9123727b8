//go:build integration
// +build integration

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

// buildBuildingTile synthesizes a "building" layer of 937 features: every
// feature but #122 is a single point at (id, id); #122 is a polygon with no
// attributes. No such fixture tile ships with this repo, so the scenario is
// reproduced by construction instead of reading an external file.
func buildBuildingTile(t *testing.T) []byte {
	t.Helper()

	tb := mvt.NewTileBuilder()
	lb := tb.Layer("building")

	for id := uint64(1); id <= 937; id++ {
		fb := lb.Feature()
		fb.SetIntegerID(id)

		if id == 122 {
			require.NoError(t, fb.AddPolygon([][]mvt.Point{
				{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			}, false))
		} else {
			require.NoError(t, fb.AddPoints([]mvt.Point{{X: int64(id), Y: int64(id)}}, false))
		}

		require.NoError(t, fb.Commit())
	}

	lb.Commit()

	return tb.Serialize()
}

func TestBuildingLayerScenario(t *testing.T) {
	buf := buildBuildingTile(t)

	tile, err := mvt.DecodeTile(buf)
	require.NoError(t, err)

	layer, err := tile.LayerByName("building")
	require.NoError(t, err)
	require.NotNil(t, layer)

	assert.Equal(t, 937, layer.NumFeatures())

	feature, err := layer.FeatureByID(mvt.IntegerID(122))
	require.NoError(t, err)
	require.NotNil(t, feature)
	assert.Equal(t, mvt.GeomPolygon, feature.GeometryType())

	h := &mvt.DumpHandler{}
	attrCount, _, err := feature.DecodeAttributes(h)
	require.NoError(t, err)
	assert.Equal(t, 0, attrCount)

	var vertexCount int

	gh := &ringPointCounter{onRingPoint: func(mvt.Point) { vertexCount++ }}
	require.NoError(t, feature.DecodeGeometry(gh))
	assert.Positive(t, vertexCount)

	var sum int64

	layer.Features()(func(_ int, f *mvt.FeatureView, err error) bool {
		require.NoError(t, err)

		id := f.ID()
		if id.Integer == 10 {
			return false
		}

		sum += int64(id.Integer)

		return true
	})

	assert.Equal(t, int64(45), sum)
}

type ringPointCounter struct {
	mvt.BaseGeometryHandler
	onRingPoint func(mvt.Point)
}

func (r *ringPointCounter) RingPoint(p mvt.Point) error {
	if r.onRingPoint != nil {
		r.onRingPoint(p)
	}

	return nil
}
