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

func TestDumpHandlerList(t *testing.T) {
	tb := mvt.NewTileBuilder()
	lb := tb.Layer("layer")

	fb := lb.Feature()
	fb.SetIntegerID(1)
	fb.AddScalarAttribute("list", mvt.ListValue([]mvt.Value{
		mvt.IntValue(10),
		mvt.IntValue(20),
		mvt.IntValue(30),
	}))
	require.NoError(t, fb.AddPoints([]mvt.Point{{X: 0, Y: 0}}, false))
	require.NoError(t, fb.Commit())

	lb.Commit()

	tile, err := mvt.DecodeTile(tb.Serialize())
	require.NoError(t, err)

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)

	feature, err := layer.FeatureAt(0)
	require.NoError(t, err)

	h := &mvt.DumpHandler{}
	_, _, err = feature.DecodeAttributes(h)
	require.NoError(t, err)

	assert.Equal(t, "list=list(3)[\n10\n20\n30\n]\n", h.String())
}

func TestDumpHandlerMap(t *testing.T) {
	tb := mvt.NewTileBuilder()
	lb := tb.Layer("layer")

	fb := lb.Feature()
	fb.SetIntegerID(1)
	fb.AddScalarAttribute("map", mvt.MapValue([]mvt.MapEntry{
		{Key: mvt.StringValue("a"), Value: mvt.IntValue(1)},
	}))
	require.NoError(t, fb.AddPoints([]mvt.Point{{X: 0, Y: 0}}, false))
	require.NoError(t, fb.Commit())

	lb.Commit()

	tile, err := mvt.DecodeTile(tb.Serialize())
	require.NoError(t, err)

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)

	feature, err := layer.FeatureAt(0)
	require.NoError(t, err)

	h := &mvt.DumpHandler{}
	_, _, err = feature.DecodeAttributes(h)
	require.NoError(t, err)

	assert.Equal(t, "map=map(1)[\na\n1\n]\n", h.String())
}

func TestDumpHandlerNumberList(t *testing.T) {
	tb := mvt.NewTileBuilder()
	lb := tb.Layer("layer")
	lb.AddAttributeScaling(mvt.DefaultScaling)

	fb := lb.Feature()
	fb.SetIntegerID(1)
	fb.AddNumberList("nlist", false, 0, []mvt.OptionalInt64{
		{Value: 10},
		{Value: 20},
		{Null: true},
		{Value: 30},
	})
	require.NoError(t, fb.AddPoints([]mvt.Point{{X: 0, Y: 0}}, false))
	require.NoError(t, fb.Commit())

	lb.Commit()

	tile, err := mvt.DecodeTile(tb.Serialize())
	require.NoError(t, err)

	layer, err := tile.LayerAt(0)
	require.NoError(t, err)

	feature, err := layer.FeatureAt(0)
	require.NoError(t, err)

	h := &mvt.DumpHandler{}
	_, _, err = feature.DecodeGeometricAttributes(h)
	require.NoError(t, err)

	assert.Equal(t, "nlist=number-list(4,0)[\n10\n20\nnull\n30\n]\n", h.String())
}
