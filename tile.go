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

import "m4o.io/mvt/internal/decoder"

// TileView is a read-only, zero-copy view over an encoded tile's bytes.
type TileView struct {
	tile *decoder.Tile
}

// DecodeTile parses the top-level Tile message. buf is borrowed: the
// returned TileView, and every LayerView/FeatureView derived from it,
// stays valid only as long as buf is not modified or released.
func DecodeTile(buf []byte, opts ...DecodeOption) (*TileView, error) {
	t, err := decoder.ParseTile(buf, buildDecodeConfig(opts))
	if err != nil {
		return nil, err
	}

	return &TileView{tile: t}, nil
}

// NumLayers returns the number of layers in the tile.
func (t *TileView) NumLayers() int { return t.tile.NumLayers() }

// LayerAt parses and returns the i-th layer.
func (t *TileView) LayerAt(i int) (*LayerView, error) {
	l, err := t.tile.LayerAt(i)
	if err != nil {
		return nil, err
	}

	return &LayerView{layer: l}, nil
}

// LayerByName does a linear scan for a layer with the given name. It
// returns (nil, nil) if no layer matches.
func (t *TileView) LayerByName(name string) (*LayerView, error) {
	l, err := t.tile.LayerByName(name)
	if err != nil || l == nil {
		return nil, err
	}

	return &LayerView{layer: l}, nil
}

// Layers returns a range-over-func iterator over the tile's layers, in
// wire order: for i, layer, err := range tile.Layers() { ... }.
func (t *TileView) Layers() func(yield func(int, *LayerView, error) bool) {
	inner := t.tile.Layers()

	return func(yield func(int, *LayerView, error) bool) {
		inner(func(i int, l *decoder.Layer, err error) bool {
			var lv *LayerView
			if l != nil {
				lv = &LayerView{layer: l}
			}

			return yield(i, lv, err)
		})
	}
}
