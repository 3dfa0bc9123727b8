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

package info

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/mvt"
)

func buildTile(t *testing.T) []byte {
	t.Helper()

	tb := mvt.NewTileBuilder()
	lb := tb.Layer("roads", mvt.WithVersion(3), mvt.WithExtent(4096))

	fb := lb.Feature()
	fb.SetIntegerID(1)
	require.NoError(t, fb.AddPoints([]mvt.Point{{X: 1, Y: 1}}, false))
	require.NoError(t, fb.Commit())

	lb.Commit()

	return tb.Serialize()
}

func TestRunInfo(t *testing.T) {
	info, err := runInfo(buildTile(t))
	require.NoError(t, err)

	require.Len(t, info.Layers, 1)
	assert.Equal(t, "roads", info.Layers[0].Name)
	assert.Equal(t, uint32(3), info.Layers[0].Version)
	assert.Equal(t, uint32(4096), info.Layers[0].Extent)
	assert.Equal(t, 1, info.Layers[0].FeatureCount)
}

func TestRunInfoMalformed(t *testing.T) {
	_, err := runInfo([]byte{0xff})
	assert.Error(t, err)
}

func TestRenderJSON(t *testing.T) {
	info := &tileInfo{Layers: []layerInfo{{Name: "roads", Version: 3, Extent: 4096, FeatureCount: 1}}}

	buf := &bytes.Buffer{}
	saved := out

	defer func() { out = saved }()

	out = buf

	renderJSON(info)

	var got tileInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *info, got)
}

func TestRenderTxt(t *testing.T) {
	info := &tileInfo{Layers: []layerInfo{{Name: "roads", Version: 3, Extent: 4096, FeatureCount: 1234}}}

	buf := &bytes.Buffer{}
	saved := out

	defer func() { out = saved }()

	out = buf

	renderTxt(info)

	assert.Equal(t, "roads: version=3 extent=4096 features=1,234\n", buf.String())
}
