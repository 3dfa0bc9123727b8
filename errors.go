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

import "m4o.io/mvt/model"

// The sentinel error taxonomy callers match against with errors.Is. These
// alias the model package's sentinels so internal/decoder, internal/
// encoder and this package all report (and callers all check) the exact
// same error values.
var (
	ErrMalformedInput  = model.ErrMalformedInput
	ErrOutOfRange      = model.ErrOutOfRange
	ErrVersionMismatch = model.ErrVersionMismatch
	ErrGeometry        = model.ErrGeometry
	ErrBuilderState    = model.ErrBuilderState
	ErrStopIteration   = model.ErrStopIteration
)
