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
	"math"

	"m4o.io/mvt/model"
)

// decodeScaling parses a Scaling message: field 1 base (fixed64 double),
// field 2 multiplier (fixed64 double), field 3 offset (zigzag varint).
// Any field left unset keeps model.DefaultScaling's value for it.
func decodeScaling(buf []byte) (model.Scaling, error) {
	s := model.DefaultScaling

	cur := NewCursor(buf)

	for !cur.Done() {
		num, typ, err := cur.Tag()
		if err != nil {
			return model.Scaling{}, err
		}

		switch num {
		case 1:
			bits, err := cur.Fixed64()
			if err != nil {
				return model.Scaling{}, err
			}

			s.Base = math.Float64frombits(bits)
		case 2:
			bits, err := cur.Fixed64()
			if err != nil {
				return model.Scaling{}, err
			}

			s.Multiplier = math.Float64frombits(bits)
		case 3:
			v, err := cur.ZigZag()
			if err != nil {
				return model.Scaling{}, err
			}

			s.Offset = v
		default:
			if err := cur.Skip(typ); err != nil {
				return model.Scaling{}, err
			}
		}
	}

	return s, nil
}
