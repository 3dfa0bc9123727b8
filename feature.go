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
	"m4o.io/mvt/internal/decoder"
	"m4o.io/mvt/model"
)

// FeatureView is a read-only, zero-copy view over one feature of a
// LayerView.
type FeatureView struct {
	feature *decoder.Feature
}

func (f *FeatureView) ID() model.ID                     { return f.feature.ID }
func (f *FeatureView) GeometryType() model.GeometryType { return f.feature.GeomType }

// HasAttributes reports whether the feature carries any scalar
// attributes, version 1/2 legacy tags or version 3 attributes alike.
func (f *FeatureView) HasAttributes() bool { return f.feature.HasAttributes() }

// DecodeGeometry runs the feature's command stream against h, stepping
// any geometric attribute streams and the elevation stream (if present)
// in lockstep with each emitted vertex.
func (f *FeatureView) DecodeGeometry(h model.GeometryHandler) error {
	return f.feature.DecodeGeometry(h)
}

// DecodeAttributes decodes the feature's scalar attributes (version 1/2
// tags or version 3 attributes, whichever the feature carries). It
// returns the number of top-level keys and the total value count.
func (f *FeatureView) DecodeAttributes(h model.AttributeHandler) (int, int, error) {
	return f.feature.DecodeAttributes(h)
}

// DecodeGeometricAttributes eagerly decodes the feature's number-list and
// geometric-attribute streams as flat number-lists, independent of any
// geometry decode.
func (f *FeatureView) DecodeGeometricAttributes(h model.AttributeHandler) (int, int, error) {
	return f.feature.DecodeGeometricAttributes(h)
}

// DecodeAllAttributes decodes scalar attributes followed by geometric
// attributes against the same handler, summing their counts.
func (f *FeatureView) DecodeAllAttributes(h model.AttributeHandler) (int, int, error) {
	return f.feature.DecodeAllAttributes(h)
}
