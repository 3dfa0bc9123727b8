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

package dump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/mvt"
)

func TestRunDump(t *testing.T) {
	tb := mvt.NewTileBuilder()
	lb := tb.Layer("roads", mvt.WithVersion(3))

	fb := lb.Feature()
	fb.SetIntegerID(7)
	fb.AddScalarAttribute("name", mvt.StringValue("Main St"))
	require.NoError(t, fb.AddPoints([]mvt.Point{{X: 1, Y: 1}}, false))
	require.NoError(t, fb.Commit())

	lb.Commit()

	buf := &bytes.Buffer{}
	require.NoError(t, runDump(buf, tb.Serialize()))

	assert.Equal(t, "layer roads (version=3 extent=4096 features=1)\n"+
		"  feature 0 (geometry=POINT)\n"+
		"    name=Main St\n", buf.String())
}

func TestRunDumpMalformed(t *testing.T) {
	assert.Error(t, runDump(&bytes.Buffer{}, []byte{0xff}))
}
