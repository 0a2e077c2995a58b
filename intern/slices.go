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

package intern

import (
	"fmt"
	"hash/maphash"
	"slices"

	"github.com/bufbuild/sin/internal/arena"
)

// Slices is an interning table for slices of T.
//
// Interned slices are copied into the table, so callers may reuse the slice
// they passed in. The empty slice is always represented by the zero [Slice].
//
// The zero value of Slices is empty and ready to use.
type Slices[T comparable] struct {
	// Hash, if set, overrides the hash function used to key slices. It must
	// not be changed after the first call to Intern.
	Hash func([]T) uint64

	store store[[]T]
}

// Slice is a reference to a slice interned in a [Slices] table.
type Slice[T comparable] struct {
	table *Slices[T]
	ptr   arena.Pointer[entry[[]T]]
}

// Intern interns a copy of s into this table.
//
// This function may be called by multiple goroutines concurrently, but s must
// not be modified until it returns.
func (t *Slices[T]) Intern(s []T) Slice[T] {
	if len(s) == 0 {
		return Slice[T]{}
	}

	p := t.store.intern(t.hash(s),
		func(stored *[]T) bool { return slices.Equal(*stored, s) },
		func() []T { return slices.Clip(slices.Clone(s)) },
	)
	return Slice[T]{t, p}
}

// Query returns the handle for s if it has already been interned.
func (t *Slices[T]) Query(s []T) (Slice[T], bool) {
	if len(s) == 0 {
		return Slice[T]{}, true
	}

	p, ok := t.store.query(t.hash(s), func(stored *[]T) bool { return slices.Equal(*stored, s) })
	if !ok {
		return Slice[T]{}, false
	}
	return Slice[T]{t, p}, true
}

// Len returns the number of distinct non-empty slices in this table.
func (t *Slices[T]) Len() int {
	return t.store.len()
}

func (t *Slices[T]) hash(s []T) uint64 {
	if t.Hash != nil {
		return t.Hash(s)
	}

	seed := t.store.getSeed()
	if b, ok := any(s).([]byte); ok {
		return maphash.Bytes(seed, b)
	}

	var h maphash.Hash
	h.SetSeed(seed)
	for _, v := range s {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}

// IsZero returns whether this is the zero handle, i.e., the empty slice.
func (s Slice[T]) IsZero() bool {
	return s.table == nil
}

// Value returns the interned slice, without copying it.
//
// The returned slice must not be modified.
func (s Slice[T]) Value() []T {
	if s.IsZero() {
		return nil
	}
	return s.table.store.at(s.ptr).value
}

// Len returns the length of the interned slice.
func (s Slice[T]) Len() int {
	return len(s.Value())
}

// Hash returns the precomputed content hash of the interned slice.
func (s Slice[T]) Hash() uint64 {
	if s.IsZero() {
		return 0
	}
	return s.table.store.at(s.ptr).hash
}

// ID returns this handle's position in its table.
func (s Slice[T]) ID() ID {
	return ID(s.ptr)
}

// Compare orders handles by content hash, breaking ties by allocation order.
func (s Slice[T]) Compare(other Slice[T]) int {
	return compareIDs(s.Hash(), other.Hash(), s.ID(), other.ID())
}

// String implements [fmt.Stringer].
func (s Slice[T]) String() string {
	return fmt.Sprint(s.Value())
}
