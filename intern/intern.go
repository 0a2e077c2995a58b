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

// Package intern provides interning tables that give every distinct value a
// single, stable, cheaply comparable identity.
//
// Three shapes of data are supported, each with its own table type:
//
//   - [Table] interns comparable scalar values (including structs).
//   - [Slices] interns contiguous slices of comparable elements.
//   - [Strings] interns UTF-8 text.
//
// Interning the same content twice into the same table yields handles that
// are equal under ==. Values are stored in an arena and are never moved or
// freed while the table is reachable; a table is the teardown boundary for
// everything interned into it.
//
// Each stored value carries a precomputed 64-bit content hash. Lookups are
// keyed by that hash, and every hit is verified against the full content, so
// two values whose hashes collide still receive distinct handles.
//
// All tables may be used from multiple goroutines concurrently. Concurrent
// attempts to intern equal content race to exactly one allocation.
package intern

import (
	"fmt"
	"hash/maphash"
	"sync"

	"github.com/bufbuild/sin/internal/arena"
)

// ID is the position of an interned value within its table.
//
// IDs are only meaningful relative to the table that produced them; the zero
// ID never refers to a stored value.
type ID uint32

// String implements [fmt.Stringer].
func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", uint32(id))
}

// entry is a value stored in a table, along with its content hash.
type entry[T any] struct {
	value T
	hash  uint64
}

// store is the machinery shared by every table shape: a hash-keyed index
// into an arena of entries, guarded by a reader/writer lock.
type store[T any] struct {
	mu    sync.RWMutex
	index map[uint64][]arena.Pointer[entry[T]]
	arena arena.Arena[entry[T]]

	seedOnce sync.Once
	seed     maphash.Seed
}

// getSeed returns this store's hash seed, initializing it on first use so
// that zero tables are ready to use.
func (s *store[T]) getSeed() maphash.Seed {
	s.seedOnce.Do(func() { s.seed = maphash.MakeSeed() })
	return s.seed
}

// query looks up a value with the given hash that satisfies eq.
func (s *store[T]) query(hash uint64, eq func(*T) bool) (arena.Pointer[entry[T]], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(hash, eq)
}

// lookup is like query, but the caller must hold s.mu.
func (s *store[T]) lookup(hash uint64, eq func(*T) bool) (arena.Pointer[entry[T]], bool) {
	for _, p := range s.index[hash] {
		if eq(&s.arena.At(p).value) {
			return p, true
		}
	}
	return 0, false
}

// intern returns the pointer of the stored value with the given hash that
// satisfies eq, allocating the result of alloc if there is none.
//
// alloc is only called while holding the write lock, and at most once.
func (s *store[T]) intern(hash uint64, eq func(*T) bool, alloc func() T) arena.Pointer[entry[T]] {
	// Fast path for values that have already been interned. In the common case
	// most values are repeats, so we can take a read lock and avoid contending
	// with writers.
	if p, ok := s.query(hash, eq); ok {
		return p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check if someone raced us to intern this value between RUnlock and Lock.
	if p, ok := s.lookup(hash, eq); ok {
		return p
	}

	p := s.arena.New(entry[T]{value: alloc(), hash: hash})
	if s.index == nil {
		s.index = make(map[uint64][]arena.Pointer[entry[T]])
	}
	s.index[hash] = append(s.index[hash], p)
	return p
}

// at dereferences p. The returned entry never moves.
func (s *store[T]) at(p arena.Pointer[entry[T]]) *entry[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.arena.At(p)
}

// len returns the number of values in this store.
func (s *store[T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.arena.Len()
}

// compareIDs orders two handles by content hash, then by allocation order.
func compareIDs(ha, hb uint64, a, b ID) int {
	switch {
	case ha < hb:
		return -1
	case ha > hb:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
