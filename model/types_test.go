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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/mvt/model"
)

func TestGeometryTypeString(t *testing.T) {
	assert.Equal(t, "POINT", model.GeomPoint.String())
	assert.Equal(t, "LINESTRING", model.GeomLineString.String())
	assert.Equal(t, "POLYGON", model.GeomPolygon.String())
	assert.Equal(t, "SPLINE", model.GeomSpline.String())
	assert.Equal(t, "UNKNOWN", model.GeomUnknown.String())
}

func TestWindingFromArea(t *testing.T) {
	assert.Equal(t, model.Outer, model.WindingFromArea(100))
	assert.Equal(t, model.Inner, model.WindingFromArea(-100))
	assert.Equal(t, model.Invalid, model.WindingFromArea(0))
}

func TestIDVariants(t *testing.T) {
	assert.True(t, model.NoneID.IsNone())
	assert.Equal(t, "<none>", model.NoneID.String())

	id := model.Integer(42)
	assert.False(t, id.IsNone())
	assert.Equal(t, "42", id.String())

	sid := model.String("way/42")
	assert.False(t, sid.IsNone())
	assert.Equal(t, "way/42", sid.String())
}
