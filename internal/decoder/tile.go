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

package decoder

import (
	"fmt"

	"m4o.io/mvt/model"
)

// Tile is a parsed tile: its layers are kept as unparsed byte spans until
// LayerAt is called, exactly like Layer does for its features.
type Tile struct {
	layers [][]byte
	cfg    Config
}

// ParseTile parses the top-level Tile message: a flat sequence of
// field-3 layer occurrences.
func ParseTile(raw []byte, cfg Config) (*Tile, error) {
	t := &Tile{cfg: cfg.normalize()}

	cur := NewCursor(raw)

	for !cur.Done() {
		num, typ, err := cur.Tag()
		if err != nil {
			return nil, err
		}

		switch num {
		case 3:
			b, err := cur.Bytes()
			if err != nil {
				return nil, err
			}

			t.layers = append(t.layers, b)
		default:
			if err := cur.Skip(typ); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// NumLayers returns the number of layers in the tile.
func (t *Tile) NumLayers() int { return len(t.layers) }

// LayerAt parses the i-th layer frame.
func (t *Tile) LayerAt(i int) (*Layer, error) {
	if i < 0 || i >= len(t.layers) {
		return nil, fmt.Errorf("%w: layer index %d of %d", model.ErrOutOfRange, i, len(t.layers))
	}

	return ParseLayer(t.layers[i], t.cfg)
}

// LayerByName does a linear scan for a layer with the given name,
// returning nil if none matches.
func (t *Tile) LayerByName(name string) (*Layer, error) {
	for i := range t.layers {
		l, err := t.LayerAt(i)
		if err != nil {
			return nil, err
		}

		if l.Name == name {
			return l, nil
		}
	}

	return nil, nil
}

// Layers returns a range-over-func iterator over the tile's layers,
// parsed in wire order.
func (t *Tile) Layers() func(yield func(int, *Layer, error) bool) {
	return func(yield func(int, *Layer, error) bool) {
		for i := range t.layers {
			l, err := t.LayerAt(i)
			if !yield(i, l, err) {
				return
			}

			if err != nil {
				return
			}
		}
	}
}
