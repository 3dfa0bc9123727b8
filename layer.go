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

// LayerView is a read-only, zero-copy view over one layer of a TileView.
type LayerView struct {
	layer *decoder.Layer
}

func (l *LayerView) Version() uint32 { return l.layer.Version }
func (l *LayerView) Name() string    { return l.layer.Name }
func (l *LayerView) Extent() uint32  { return l.layer.Extent }

// Scaling resolves a unified scaling index: 0 is the layer's elevation
// scaling, 1..N select its N attribute scalings.
func (l *LayerView) Scaling(i uint32) (model.Scaling, error) { return l.layer.Scaling(i) }

// NumAttributeScalings returns the count of attribute (non-elevation)
// scalings the layer carries.
func (l *LayerView) NumAttributeScalings() int { return l.layer.NumAttributeScalings() }

// TileRef returns the layer's opaque tile reference blob, or nil.
func (l *LayerView) TileRef() []byte { return l.layer.TileRef }

// NumFeatures returns the number of features in the layer.
func (l *LayerView) NumFeatures() int { return l.layer.NumFeatures() }

// Key resolves a key-table index into its string view. It returns
// ErrOutOfRange if i is beyond the table.
func (l *LayerView) Key(i uint32) (string, error) { return l.layer.Table.Key(i) }

// Value resolves a version 1/2 value-table index. It returns
// ErrOutOfRange if i is beyond the table.
func (l *LayerView) Value(i uint32) (model.Value, error) { return l.layer.Table.LegacyValue(i) }

// String resolves a version 3 string-table index. It returns
// ErrOutOfRange if i is beyond the table.
func (l *LayerView) String(i uint32) (string, error) { return l.layer.Table.String(i) }

// Double resolves a version 3 double-table index. It returns
// ErrOutOfRange if i is beyond the table.
func (l *LayerView) Double(i uint32) (float64, error) { return l.layer.Table.Double(i) }

// Float resolves a version 3 float-table index. It returns
// ErrOutOfRange if i is beyond the table.
func (l *LayerView) Float(i uint32) (float32, error) { return l.layer.Table.Float(i) }

// Int resolves a version 3 int-table index. It returns ErrOutOfRange if
// i is beyond the table.
func (l *LayerView) Int(i uint32) (int64, error) { return l.layer.Table.Int(i) }

// FeatureAt parses and returns the i-th feature.
func (l *LayerView) FeatureAt(i int) (*FeatureView, error) {
	f, err := l.layer.FeatureAt(i)
	if err != nil {
		return nil, err
	}

	return &FeatureView{feature: f}, nil
}

// FeatureByID does a linear scan for a feature with the given id. It
// returns (nil, nil) if no feature matches.
func (l *LayerView) FeatureByID(id model.ID) (*FeatureView, error) {
	f, err := l.layer.FeatureByID(id)
	if err != nil || f == nil {
		return nil, err
	}

	return &FeatureView{feature: f}, nil
}

// Features returns a range-over-func iterator over the layer's features,
// in wire order.
func (l *LayerView) Features() func(yield func(int, *FeatureView, error) bool) {
	inner := l.layer.Features()

	return func(yield func(int, *FeatureView, error) bool) {
		inner(func(i int, f *decoder.Feature, err error) bool {
			var fv *FeatureView
			if f != nil {
				fv = &FeatureView{feature: f}
			}

			return yield(i, fv, err)
		})
	}
}
