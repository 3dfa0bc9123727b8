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
	"m4o.io/mvt/internal/encoder"
	"m4o.io/mvt/model"
)

const defaultLayerExtent = 4096

// LayerOption configures a LayerBuilder at creation time.
type LayerOption func(*LayerBuilder)

// WithVersion sets the layer's tile format version. The default is 3.
func WithVersion(v uint32) LayerOption {
	return func(lb *LayerBuilder) { lb.version = v }
}

// WithExtent sets the layer's tile extent. The default is 4096.
func WithExtent(e uint32) LayerOption {
	return func(lb *LayerBuilder) { lb.extent = e }
}

// WithTileRef attaches an opaque tile reference blob to the layer.
func WithTileRef(ref []byte) LayerOption {
	return func(lb *LayerBuilder) { lb.tileRef = ref }
}

// LayerBuilder assembles one layer within a TileBuilder: its intern
// tables are built up incrementally as features are added through
// Feature, then serialized on Commit.
type LayerBuilder struct {
	tile    *TileBuilder
	version uint32
	name    string
	extent  uint32

	table            *encoder.Table
	attrScalings     []model.Scaling
	elevationScaling model.Scaling
	tileRef          []byte

	features [][]byte
}

func newLayerBuilder(tile *TileBuilder, name string, opts []LayerOption) *LayerBuilder {
	lb := &LayerBuilder{
		tile:             tile,
		version:          3,
		name:             name,
		extent:           defaultLayerExtent,
		table:            encoder.NewTable(),
		elevationScaling: model.DefaultScaling,
	}

	for _, opt := range opts {
		opt(lb)
	}

	return lb
}

// Feature starts a new feature within the layer.
func (lb *LayerBuilder) Feature() *FeatureBuilder {
	return &FeatureBuilder{layer: lb}
}

// AddAttributeScaling registers an attribute scaling and returns its
// 0-based index, for use as NumberListSpec.ScalingIndex / the geometric
// attribute handler's scaling index.
func (lb *LayerBuilder) AddAttributeScaling(s Scaling) int32 {
	lb.attrScalings = append(lb.attrScalings, s)
	return int32(len(lb.attrScalings) - 1)
}

// SetElevationScaling sets the layer's elevation scaling (unified scaling
// index 0). The default is the identity transform.
func (lb *LayerBuilder) SetElevationScaling(s Scaling) {
	lb.elevationScaling = s
}

// Commit encodes the layer from its accumulated features and tables and
// appends it to the owning tile. A LayerBuilder must not be used again
// after Commit.
func (lb *LayerBuilder) Commit() {
	spec := encoder.LayerSpec{
		Version:          lb.version,
		Name:             lb.name,
		Extent:           lb.extent,
		Table:            lb.table,
		AttrScalings:     lb.attrScalings,
		ElevationScaling: lb.elevationScaling,
		TileRef:          lb.tileRef,
		Features:         lb.features,
	}

	lb.tile.layers = append(lb.tile.layers, encoder.EncodeLayer(spec))
}
