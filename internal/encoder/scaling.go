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

package encoder

import (
	"google.golang.org/protobuf/encoding/protowire"

	"m4o.io/mvt/model"
)

// EncodeScaling writes a Scaling message: field 1 base, field 2
// multiplier, field 3 offset. Fields equal to model.DefaultScaling's are
// omitted, the way an optional proto3 field would be.
func EncodeScaling(w *Writer, s model.Scaling) {
	if s.Base != model.DefaultScaling.Base {
		w.DoubleField(1, s.Base)
	}

	if s.Multiplier != model.DefaultScaling.Multiplier {
		w.DoubleField(2, s.Multiplier)
	}

	if s.Offset != model.DefaultScaling.Offset {
		w.Tag(3, protowire.VarintType)
		w.ZigZag(s.Offset)
	}
}
