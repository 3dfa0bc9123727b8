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

// Package encoder implements the write side of the Mapbox Vector Tile
// wire format: a growable buffer of protobuf-style fields, built up with
// the protowire Append helpers and owned by the caller until Serialize
// hands the final bytes over.
package encoder

import (
	"math"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/encoding/protowire"
)

// Writer accumulates encoded bytes. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with sizeHint as its starting capacity.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated buffer. The Writer retains ownership
// until this is called; after that the caller owns the returned slice.
func (w *Writer) Bytes() []byte { return w.buf }

// Len reports the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) Tag(num protowire.Number, typ protowire.Type) {
	w.buf = protowire.AppendTag(w.buf, num, typ)
}

func (w *Writer) Varint(v uint64) {
	w.buf = protowire.AppendVarint(w.buf, v)
}

func (w *Writer) VarintField(num protowire.Number, v uint64) {
	w.Tag(num, protowire.VarintType)
	w.Varint(v)
}

func (w *Writer) ZigZag(v int64) {
	w.Varint(protowire.EncodeZigZag(v))
}

func (w *Writer) Fixed32(v uint32) {
	w.buf = protowire.AppendFixed32(w.buf, v)
}

func (w *Writer) Fixed64(v uint64) {
	w.buf = protowire.AppendFixed64(w.buf, v)
}

func (w *Writer) DoubleField(num protowire.Number, v float64) {
	w.Tag(num, protowire.Fixed64Type)
	w.Fixed64(math.Float64bits(v))
}

func (w *Writer) FloatField(num protowire.Number, v float32) {
	w.Tag(num, protowire.Fixed32Type)
	w.Fixed32(math.Float32bits(v))
}

// BytesField writes num as a length-delimited field.
func (w *Writer) BytesField(num protowire.Number, v []byte) {
	w.Tag(num, protowire.BytesType)
	w.buf = protowire.AppendBytes(w.buf, v)
}

func (w *Writer) StringField(num protowire.Number, v string) {
	w.BytesField(num, []byte(v))
}

// SubMessage writes num as a length-delimited field whose payload is the
// bytes build appends to a fresh Writer.
func (w *Writer) SubMessage(num protowire.Number, build func(*Writer)) {
	sub := NewWriter(16)
	build(sub)
	w.BytesField(num, sub.Bytes())
}

// EncodeCursorDelta is the wire-format inverse of the decoder's
// decodeCursorDelta: a non-null stream word is EncodeZigZag(delta) + 1,
// reserving 0 to mean null.
func EncodeCursorDelta(delta int64) uint64 {
	return protowire.EncodeZigZag(delta) + 1
}

// Delta computes consecutive differences of a coordinate sequence, the
// way a geometry or table encoder turns absolute positions into the
// deltas the wire format actually stores.
func Delta[T constraints.Integer](values []T) []T {
	out := make([]T, len(values))

	var prev T

	for i, v := range values {
		out[i] = v - prev
		prev = v
	}

	return out
}
