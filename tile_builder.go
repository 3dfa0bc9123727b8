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

import "m4o.io/mvt/internal/encoder"

// TileBuilder assembles a tile out of one or more layers, each built
// independently through Layer, and serializes the whole with Serialize.
type TileBuilder struct {
	layers [][]byte
}

// NewTileBuilder returns an empty TileBuilder.
func NewTileBuilder() *TileBuilder {
	return &TileBuilder{}
}

// Layer starts a new layer within the tile.
func (tb *TileBuilder) Layer(name string, opts ...LayerOption) *LayerBuilder {
	return newLayerBuilder(tb, name, opts)
}

// Serialize encodes the top-level Tile message from every layer
// committed so far.
func (tb *TileBuilder) Serialize() []byte {
	return encoder.EncodeTile(tb.layers)
}
