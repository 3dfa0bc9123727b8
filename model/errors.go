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

import "errors"

// The sentinel error taxonomy shared by the decoder and encoder. Callers
// identify a failure kind with errors.Is, e.g. errors.Is(err,
// model.ErrGeometry). Concrete errors returned by this module wrap one of
// these with fmt.Errorf("...: %w", ...) for context.
var (
	// ErrMalformedInput covers varint overflow, truncated frames, wrong
	// tag wire types, odd-length v2 attribute streams, and type-code
	// mismatches in an attribute context.
	ErrMalformedInput = errors.New("mvt: malformed input")

	// ErrOutOfRange covers intern-table and scaling-table indices beyond
	// the table's length.
	ErrOutOfRange = errors.New("mvt: index out of range")

	// ErrVersionMismatch covers a version-3-only feature encountered in a
	// version 1/2 layer, or vice versa.
	ErrVersionMismatch = errors.New("mvt: version mismatch")

	// ErrGeometry covers an unknown command id, an unclosed polygon ring,
	// a MoveTo count other than 1 where exactly one is required, and an
	// elevation stream whose length does not match the vertex count.
	ErrGeometry = errors.New("mvt: invalid geometry")

	// ErrBuilderState covers a builder method called while the builder's
	// state machine is not in a state that permits it.
	ErrBuilderState = errors.New("mvt: invalid builder state")

	// ErrStopIteration is returned by a decode handler callback to stop
	// decoding early. The decoder stops at that callback and returns
	// ErrStopIteration to its caller unchanged, like any other handler
	// error; it does not turn it into nil, so callers that use it to stop
	// check for it with errors.Is.
	ErrStopIteration = errors.New("mvt: stop iteration")
)
