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

// Package mvt is a decoder and encoder for the Mapbox Vector Tile binary
// tile format: layers of features whose geometry is a command stream of
// delta- and zigzag-encoded coordinates, compliant with format version 2
// and the version 3 draft extension (elevation, typed value tables,
// scalings, string feature ids, geometric attributes, splines).
//
// Decoding never copies the input buffer: TileView, LayerView and
// FeatureView are views into the caller-supplied bytes, valid only as
// long as those bytes are. Encoding is the mirror image: TileBuilder
// and friends own their buffers until Serialize returns the final bytes.
package mvt
