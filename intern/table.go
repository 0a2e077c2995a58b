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

	"github.com/bufbuild/sin/internal/arena"
)

// Table is an interning table for scalar values of type T.
//
// The zero value of Table is empty and ready to use.
type Table[T comparable] struct {
	// Hash, if set, overrides the hash function used to key values. It must
	// not be changed after the first call to Intern.
	//
	// Equality is always verified on lookup, so a weak hash only costs
	// performance, never correctness.
	Hash func(T) uint64

	store store[T]
}

// Handle is a reference to a value interned in a [Table].
//
// Handles from the same table compare equal if and only if their values are
// equal. The zero Handle refers to no value.
type Handle[T comparable] struct {
	table *Table[T]
	ptr   arena.Pointer[entry[T]]
}

// Intern interns v into this table.
//
// This function may be called by multiple goroutines concurrently.
func (t *Table[T]) Intern(v T) Handle[T] {
	p := t.store.intern(t.hash(v),
		func(stored *T) bool { return *stored == v },
		func() T { return v },
	)
	return Handle[T]{t, p}
}

// Query returns the handle for v if it has already been interned.
func (t *Table[T]) Query(v T) (Handle[T], bool) {
	p, ok := t.store.query(t.hash(v), func(stored *T) bool { return *stored == v })
	if !ok {
		return Handle[T]{}, false
	}
	return Handle[T]{t, p}, true
}

// Len returns the number of distinct values interned into this table.
func (t *Table[T]) Len() int {
	return t.store.len()
}

func (t *Table[T]) hash(v T) uint64 {
	if t.Hash != nil {
		return t.Hash(v)
	}
	return maphash.Comparable(t.store.getSeed(), v)
}

// IsZero returns whether this is the zero handle.
func (h Handle[T]) IsZero() bool {
	return h.table == nil
}

// Value returns a copy of the interned value.
//
// Returns the zero T for the zero handle.
func (h Handle[T]) Value() T {
	if h.IsZero() {
		var z T
		return z
	}
	return *h.Ptr()
}

// Ptr returns a pointer to the interned value, without copying it.
//
// The pointee must not be modified. Returns nil for the zero handle.
func (h Handle[T]) Ptr() *T {
	if h.IsZero() {
		return nil
	}
	return &h.table.store.at(h.ptr).value
}

// Hash returns the precomputed content hash of the interned value.
func (h Handle[T]) Hash() uint64 {
	if h.IsZero() {
		return 0
	}
	return h.table.store.at(h.ptr).hash
}

// ID returns this handle's position in its table.
func (h Handle[T]) ID() ID {
	return ID(h.ptr)
}

// Table returns the table this handle was interned into.
func (h Handle[T]) Table() *Table[T] {
	return h.table
}

// Compare orders handles by content hash, breaking ties by allocation order.
//
// The order is stable for the lifetime of the table, but is otherwise
// arbitrary.
func (h Handle[T]) Compare(other Handle[T]) int {
	return compareIDs(h.Hash(), other.Hash(), h.ID(), other.ID())
}

// String implements [fmt.Stringer].
func (h Handle[T]) String() string {
	if h.IsZero() {
		return "intern.Handle(<nil>)"
	}
	return fmt.Sprintf("intern.Handle(%d: %v)", uint32(h.ptr), h.Value())
}
