// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a map keyed by disjoint half-open intervals.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Map is a map from disjoint intervals [start, end) to values.
//
// A zero value is ready to use.
type Map[K Endpoint, V any] struct {
	// Keyed by the last point in each interval, that is, end-1.
	tree btree.Map[K, *Entry[K, V]]
}

// Entry is an interval in a [Map] and its associated value.
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains returns whether point is within this entry.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point < e.End
}

// Len returns the number of intervals in this map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval which contains point, if one exists.
func (m *Map[K, V]) Get(point K) (Entry[K, V], bool) {
	iter := m.tree.Iter()
	if !iter.Seek(point) || !iter.Value().Contains(point) {
		return Entry[K, V]{}, false
	}
	return *iter.Value(), true
}

// Insert inserts [start, end) into this map with the given value.
//
// If the interval overlaps an interval already in the map, nothing is
// inserted, and the overlapping interval with the least start is returned
// instead. Panics if the interval is empty.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Entry[K, V], ok bool) {
	if start >= end {
		panic(fmt.Sprintf("interval: empty interval [%#v, %#v)", start, end))
	}

	// The first interval whose last point is at or after start is the only
	// candidate for overlapping: every interval after it starts after it ends.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().Start < end {
		return *iter.Value(), false
	}

	m.tree.Set(end-1, &Entry[K, V]{Start: start, End: end, Value: value})
	return Entry[K, V]{}, true
}

// All returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		m.tree.Scan(func(_ K, e *Entry[K, V]) bool {
			return yield(*e)
		})
	}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	for e := range m.All() {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		fmt.Fprintf(s, "[%#v, %#v): ", e.Start, e.End)
		fmt.Fprintf(s, fmt.FormatString(s, v), e.Value)
	}
	fmt.Fprint(s, "}")
}
