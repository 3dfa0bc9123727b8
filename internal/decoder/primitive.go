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

// Package decoder implements the read side of the Mapbox Vector Tile wire
// format: a cursor over a caller-owned byte slice that produces typed
// fields on demand. Nothing here copies the input buffer.
package decoder

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"m4o.io/mvt/model"
)

// Cursor is a read-only view over a byte slice, advancing as fields are
// consumed. It never allocates and never copies the underlying buffer.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a Cursor over buf. buf is borrowed, not copied; the
// caller must keep it alive and unmodified for the Cursor's lifetime.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Done reports whether the cursor has consumed the whole buffer.
func (c *Cursor) Done() bool { return c.pos >= len(c.buf) }

// Remaining returns the unconsumed tail of the buffer.
func (c *Cursor) Remaining() []byte { return c.buf[c.pos:] }

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Tag reads a protobuf-style field tag (field number, wire type).
func (c *Cursor) Tag() (protowire.Number, protowire.Type, error) {
	num, typ, n := protowire.ConsumeTag(c.buf[c.pos:])
	if n < 0 {
		return 0, 0, fmt.Errorf("reading tag at offset %d: %w: %v", c.pos, model.ErrMalformedInput, protowire.ParseError(n))
	}

	c.pos += n

	return num, typ, nil
}

// Varint reads an unsigned varint.
func (c *Cursor) Varint() (uint64, error) {
	v, n := protowire.ConsumeVarint(c.buf[c.pos:])
	if n < 0 {
		return 0, fmt.Errorf("reading varint at offset %d: %w: %v", c.pos, model.ErrMalformedInput, protowire.ParseError(n))
	}

	c.pos += n

	return v, nil
}

// VarintU32 reads an unsigned varint and truncates it to 32 bits, the way
// geometry command words and table indices are encoded.
func (c *Cursor) VarintU32() (uint32, error) {
	v, err := c.Varint()
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}

// ZigZag reads a zigzag-encoded varint and decodes it to a signed int64.
func (c *Cursor) ZigZag() (int64, error) {
	v, err := c.Varint()
	if err != nil {
		return 0, err
	}

	return protowire.DecodeZigZag(v), nil
}

// Fixed32 reads a little-endian 32-bit field.
func (c *Cursor) Fixed32() (uint32, error) {
	v, n := protowire.ConsumeFixed32(c.buf[c.pos:])
	if n < 0 {
		return 0, fmt.Errorf("reading fixed32 at offset %d: %w: %v", c.pos, model.ErrMalformedInput, protowire.ParseError(n))
	}

	c.pos += n

	return v, nil
}

// Fixed64 reads a little-endian 64-bit field.
func (c *Cursor) Fixed64() (uint64, error) {
	v, n := protowire.ConsumeFixed64(c.buf[c.pos:])
	if n < 0 {
		return 0, fmt.Errorf("reading fixed64 at offset %d: %w: %v", c.pos, model.ErrMalformedInput, protowire.ParseError(n))
	}

	c.pos += n

	return v, nil
}

// Bytes reads a length-delimited field and returns a view into the
// original buffer: no bytes are copied.
func (c *Cursor) Bytes() ([]byte, error) {
	v, n := protowire.ConsumeBytes(c.buf[c.pos:])
	if n < 0 {
		return nil, fmt.Errorf("reading length-delimited field at offset %d: %w: %v", c.pos, model.ErrMalformedInput, protowire.ParseError(n))
	}

	c.pos += n

	return v, nil
}

// Skip consumes and discards one field value of the given wire type,
// having already consumed its tag. Used when scanning past fields a
// particular frame doesn't care about.
func (c *Cursor) Skip(typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(1, typ, c.buf[c.pos:])
	if n < 0 {
		return fmt.Errorf("%w: skipping field at offset %d", model.ErrMalformedInput, c.pos)
	}

	c.pos += n

	return nil
}

// newCursorAt creates a Cursor over buf starting at a previously recorded
// offset, used to revisit a span found during an earlier scanning pass.
func newCursorAt(buf []byte, pos int) *Cursor {
	return &Cursor{buf: buf, pos: pos}
}

// decodeCursorDelta turns a raw non-zero stream word into the signed delta
// to add to a running cursor: the wire format biases the zigzag value by
// one so that zero is free to mean "null".
func decodeCursorDelta(raw uint64) int64 {
	return protowire.DecodeZigZag(raw - 1)
}
