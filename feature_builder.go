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

package mvt

import (
	"fmt"

	"m4o.io/mvt/internal/encoder"
	"m4o.io/mvt/model"
)

// OptionalInt64 is one element of a number-list or geometric-attribute
// stream: either a value or an explicit null.
type OptionalInt64 = encoder.OptionalInt64

type featureBuilderState int

const (
	featureStateEmpty featureBuilderState = iota
	featureStateGeometry
	featureStateCommitted
)

// FeatureBuilder assembles one feature within a LayerBuilder. Exactly one
// of AddPoints/AddLineStrings/AddPolygon/AddSpline must be called before
// Commit; calling two, or committing before any, returns
// model.ErrBuilderState.
type FeatureBuilder struct {
	layer *LayerBuilder
	spec  encoder.FeatureSpec
	state featureBuilderState
}

// SetIntegerID sets the feature's integer id.
func (fb *FeatureBuilder) SetIntegerID(v uint64) *FeatureBuilder {
	fb.spec.ID = model.Integer(v)
	return fb
}

// SetStringID sets the feature's string id (tile format version 3 only).
func (fb *FeatureBuilder) SetStringID(v string) *FeatureBuilder {
	fb.spec.ID = model.String(v)
	return fb
}

func (fb *FeatureBuilder) requireEmpty() error {
	if fb.state != featureStateEmpty {
		return fmt.Errorf("%w: feature geometry already set", model.ErrBuilderState)
	}

	return nil
}

// AddPoints sets the feature's geometry to a MultiPoint (or single Point
// when len(points) == 1).
func (fb *FeatureBuilder) AddPoints(points []Point, hasElevation bool) error {
	if err := fb.requireEmpty(); err != nil {
		return err
	}

	fb.spec.GeomType = model.GeomPoint
	fb.spec.Geometry, fb.spec.Elevation = encoder.EncodePoints(points, hasElevation)
	fb.state = featureStateGeometry

	return nil
}

// AddLineStrings sets the feature's geometry to a MultiLineString.
func (fb *FeatureBuilder) AddLineStrings(lines [][]Point, hasElevation bool) error {
	if err := fb.requireEmpty(); err != nil {
		return err
	}

	fb.spec.GeomType = model.GeomLineString
	fb.spec.Geometry, fb.spec.Elevation = encoder.EncodeLineStrings(lines, hasElevation)
	fb.state = featureStateGeometry

	return nil
}

// AddPolygon sets the feature's geometry to a MultiPolygon. Each ring
// excludes the implicit closing vertex back to ring[0].
func (fb *FeatureBuilder) AddPolygon(rings [][]Point, hasElevation bool) error {
	if err := fb.requireEmpty(); err != nil {
		return err
	}

	fb.spec.GeomType = model.GeomPolygon
	fb.spec.Geometry, fb.spec.Elevation = encoder.EncodePolygons(rings, hasElevation)
	fb.state = featureStateGeometry

	return nil
}

// AddSpline sets the feature's geometry to a spline's control-point
// linestrings. knots may be nil if the spline uses uniform knot spacing.
func (fb *FeatureBuilder) AddSpline(lines [][]Point, hasElevation bool, knots []int64) error {
	if err := fb.requireEmpty(); err != nil {
		return err
	}

	fb.spec.GeomType = model.GeomSpline
	fb.spec.Geometry, fb.spec.Elevation = encoder.EncodeLineStrings(lines, hasElevation)

	if len(knots) > 0 {
		fb.spec.SplineKnots = encoder.EncodeSplineKnots(knots)
	}

	fb.state = featureStateGeometry

	return nil
}

// AddLegacyAttribute appends one version 1/2 tag. Only meaningful when the
// owning layer is encoded at version < 3.
func (fb *FeatureBuilder) AddLegacyAttribute(key string, v Value) *FeatureBuilder {
	fb.spec.LegacyAttrs = append(fb.spec.LegacyAttrs, encoder.Attribute{Key: key, Value: v})
	return fb
}

// AddScalarAttribute appends one version 3 scalar (or list/map) attribute.
func (fb *FeatureBuilder) AddScalarAttribute(key string, v Value) *FeatureBuilder {
	fb.spec.ScalarAttrs = append(fb.spec.ScalarAttrs, encoder.Attribute{Key: key, Value: v})
	return fb
}

// AddNumberList appends a keyed number-list (geometric=false) or
// geometric-attribute (geometric=true) stream, independent of the
// feature's own geometry stream. scalingIndex is -1 for raw/unscaled.
func (fb *FeatureBuilder) AddNumberList(key string, geometric bool, scalingIndex int32, values []OptionalInt64) *FeatureBuilder {
	fb.spec.NumberLists = append(fb.spec.NumberLists, encoder.NumberListSpec{
		Key:          key,
		Geometric:    geometric,
		ScalingIndex: scalingIndex,
		Values:       values,
	})

	return fb
}

// Commit encodes the feature and appends it to the owning layer. A
// FeatureBuilder must not be used again after Commit.
func (fb *FeatureBuilder) Commit() error {
	if fb.state != featureStateGeometry {
		return fmt.Errorf("%w: feature has no geometry", model.ErrBuilderState)
	}

	raw, err := encoder.EncodeFeature(fb.layer.table, fb.layer.version, fb.spec)
	if err != nil {
		return err
	}

	fb.layer.features = append(fb.layer.features, raw)
	fb.state = featureStateCommitted

	return nil
}
