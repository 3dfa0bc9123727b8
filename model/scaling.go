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

package model

// Scaling is the affine transform tile format version 3 uses to turn a
// stream of integer deltas into real-valued numbers: apply(i) = base +
// offset + i*multiplier. Scaling index 0 of a layer is the implicit
// elevation scaling; scalings 1..N are the layer's attribute scalings,
// referenced from number-list and geometric-attribute streams.
type Scaling struct {
	Offset     int64
	Multiplier float64
	Base       float64
}

// DefaultScaling is used when a layer omits the scaling message entirely:
// offset 0, multiplier 1, base 0, i.e. apply(i) == i.
var DefaultScaling = Scaling{Offset: 0, Multiplier: 1.0, Base: 0.0}

// Apply decodes an integer stream value into its real-valued form.
func (s Scaling) Apply(i int64) float64 {
	return s.Base + float64(s.Offset) + float64(i)*s.Multiplier
}
