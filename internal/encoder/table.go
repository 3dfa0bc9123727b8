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

import "m4o.io/mvt/model"

// Interner assigns a stable, insertion-ordered index to each distinct
// value added to it. Unlike the OSM string table this is generalized
// from, index 0 is not reserved: the tile format has no dense-info tag
// convention that needs it.
type Interner[T comparable] struct {
	index  map[T]uint32
	values []T
}

// NewInterner returns an empty Interner.
func NewInterner[T comparable]() *Interner[T] {
	return &Interner[T]{index: make(map[T]uint32)}
}

// Intern returns v's table index, assigning it the next index if this is
// the first time v has been seen.
func (in *Interner[T]) Intern(v T) uint32 {
	if i, ok := in.index[v]; ok {
		return i
	}

	i := uint32(len(in.values))
	in.index[v] = i
	in.values = append(in.values, v)

	return i
}

// Len reports how many distinct values have been interned.
func (in *Interner[T]) Len() int { return len(in.values) }

// Values returns the interned values in index order.
func (in *Interner[T]) Values() []T { return in.values }

// legacyKey is model.Value flattened to a comparable shape, since legacy
// (version 1/2) values are always scalar and never carry the List/Map
// slices that would make model.Value itself incomparable.
type legacyKey struct {
	typ model.ValueType
	s   string
	f32 float32
	f64 float64
	i64 int64
	u64 uint64
	b   bool
}

func keyForLegacy(v model.Value) legacyKey {
	return legacyKey{
		typ: v.Type,
		s:   v.Str,
		f32: v.Float32V,
		f64: v.Float64V,
		i64: v.Int64V,
		u64: v.Uint64V,
		b:   v.BoolV,
	}
}

// LegacyValueTable interns version 1/2 scalar values.
type LegacyValueTable struct {
	index  map[legacyKey]uint32
	values []model.Value
}

// NewLegacyValueTable returns an empty LegacyValueTable.
func NewLegacyValueTable() *LegacyValueTable {
	return &LegacyValueTable{index: make(map[legacyKey]uint32)}
}

// Intern returns v's table index, interning it if new.
func (t *LegacyValueTable) Intern(v model.Value) uint32 {
	k := keyForLegacy(v)
	if i, ok := t.index[k]; ok {
		return i
	}

	i := uint32(len(t.values))
	t.index[k] = i
	t.values = append(t.values, v)

	return i
}

// Len reports how many distinct values have been interned.
func (t *LegacyValueTable) Len() int { return len(t.values) }

// Values returns the interned values in index order.
func (t *LegacyValueTable) Values() []model.Value { return t.values }

// Table is a layer's full set of intern tables: the shared key table, the
// version 1/2 legacy value table, and the version 3 string/double/
// float/int tables.
type Table struct {
	Keys    *Interner[string]
	Legacy  *LegacyValueTable
	Strings *Interner[string]
	Doubles *Interner[float64]
	Floats  *Interner[float32]
	Ints    *Interner[int64]
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		Keys:    NewInterner[string](),
		Legacy:  NewLegacyValueTable(),
		Strings: NewInterner[string](),
		Doubles: NewInterner[float64](),
		Floats:  NewInterner[float32](),
		Ints:    NewInterner[int64](),
	}
}
