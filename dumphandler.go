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

import (
	"strconv"
	"strings"
)

// DumpHandler renders a feature's attributes as plain text, one line per
// leaf value: "key=value", a list/map as "key=list(n)[" or "key=map(n)["
// followed by one line per element and a closing "]", and a number-list/
// geometric-attribute stream as "key=number-list(n,scalingIndex)[" with one
// line per element ("null" for an explicit null).
type DumpHandler struct {
	BaseAttributeHandler

	b strings.Builder

	pendingKey string
	depth      int
}

// String returns everything dumped so far.
func (h *DumpHandler) String() string { return h.b.String() }

func (h *DumpHandler) emit(text string) {
	if h.depth == 0 {
		h.b.WriteString(h.pendingKey)
		h.b.WriteByte('=')
	}

	h.b.WriteString(text)
	h.b.WriteByte('\n')
}

func (h *DumpHandler) AttributeKey(key string) error {
	h.pendingKey = key
	return nil
}

func (h *DumpHandler) ValueString(v string) error { h.emit(v); return nil }
func (h *DumpHandler) ValueFloat(v float32) error {
	h.emit(strconv.FormatFloat(float64(v), 'g', -1, 32))
	return nil
}

func (h *DumpHandler) ValueDouble(v float64) error {
	h.emit(strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

func (h *DumpHandler) ValueInt(v int64) error  { h.emit(strconv.FormatInt(v, 10)); return nil }
func (h *DumpHandler) ValueUint(v uint64) error { h.emit(strconv.FormatUint(v, 10)); return nil }
func (h *DumpHandler) ValueSint(v int64) error  { h.emit(strconv.FormatInt(v, 10)); return nil }
func (h *DumpHandler) ValueBool(v bool) error   { h.emit(strconv.FormatBool(v)); return nil }
func (h *DumpHandler) ValueNull() error          { h.emit("null"); return nil }

func (h *DumpHandler) StartListAttribute(count uint32) error {
	h.emit("list(" + strconv.FormatUint(uint64(count), 10) + ")[")
	h.depth++

	return nil
}

func (h *DumpHandler) EndListAttribute() error {
	h.depth--
	h.b.WriteString("]\n")

	return nil
}

func (h *DumpHandler) StartMapAttribute(count uint32) error {
	h.emit("map(" + strconv.FormatUint(uint64(count), 10) + ")[")
	h.depth++

	return nil
}

func (h *DumpHandler) EndMapAttribute() error {
	h.depth--
	h.b.WriteString("]\n")

	return nil
}

func (h *DumpHandler) StartNumberList(count uint32, scalingIndex int32) error {
	if h.depth == 0 {
		h.b.WriteString(h.pendingKey)
		h.b.WriteByte('=')
	}

	h.b.WriteString("number-list(")
	h.b.WriteString(strconv.FormatUint(uint64(count), 10))
	h.b.WriteByte(',')
	h.b.WriteString(strconv.FormatInt(int64(scalingIndex), 10))
	h.b.WriteString(")[\n")

	return nil
}

func (h *DumpHandler) NumberListValue(v int64) error {
	h.b.WriteString(strconv.FormatInt(v, 10))
	h.b.WriteByte('\n')

	return nil
}

func (h *DumpHandler) NumberListNullValue() error {
	h.b.WriteString("null\n")
	return nil
}

func (h *DumpHandler) EndNumberList() error {
	h.b.WriteString("]\n")
	return nil
}

var _ AttributeHandler = (*DumpHandler)(nil)
