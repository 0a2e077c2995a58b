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

// Package arena provides an append-only [Arena] whose elements never move,
// addressed by compressed [Pointer]s.
//
// Interning tables use it as their backing store: a [Pointer] is a small
// integer, so handles built from it can be compared and hashed cheaply, and
// a pointer returned by [Arena.At] remains valid for the lifetime of the
// arena.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	// minLenShift is the log2 of the size of the smallest slice in an Arena.
	minLenShift = 4
	minLen      = 1 << minLenShift
)

// Pointer is a compressed arena pointer.
//
// The value of a pointer is one plus the number of elements allocated before
// it. The zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In looks up this pointer in the given arena.
//
// arena must be the arena that allocated this pointer, otherwise this will
// either return an arbitrary pointer or panic. If p is nil, this panics.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.At(p)
}

// Index returns the zero-based allocation index of p.
func (p Pointer[T]) Index() int {
	return int(p) - 1
}

// Arena is a slice of T that guarantees the Ts will never be moved.
//
// It does this by maintaining a table of logarithmically-growing slices that
// mimic the resizing behavior of an ordinary slice. Lookup remains O(1), at
// the cost of two pointer loads instead of one.
//
// Arena performs no synchronization; callers that share an Arena between
// goroutines must guard both New and At.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == minLen.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. cap(table[n]) == len(table[n]) for n < len(table)-1.
	table [][]T
}

// New allocates a new value on the arena.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, minLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	n := a.Len()
	if uint64(n) > uint64(^uint32(0)) {
		panic(fmt.Sprintf("arena: %d pointers exhausted", n))
	}
	return Pointer[T](n)
}

// At dereferences an arena pointer, as if by [Pointer.In].
func (a *Arena[T]) At(p Pointer[T]) *T {
	if p.Nil() {
		panic("arena: dereferenced nil pointer")
	}
	slice, idx := a.coordinates(p.Index())
	return &a.table[slice][idx]
}

// Len returns the number of values allocated on this arena.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}

	// Only the last slice will be not-fully-filled.
	return a.lenOfFirstNSlices(len(a.table)-1) + len(a.table[len(a.table)-1])
}

// All returns an iterator over every value in allocation order, along with
// its pointer.
func (a *Arena[T]) All() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		n := 0
		for i := range a.table {
			for j := range a.table[i] {
				n++
				if !yield(Pointer[T](n), &a.table[i][j]) {
					return
				}
			}
		}
	}
}

// String implements [fmt.Stringer]. The boundaries between backing slices are
// shown as |.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	for i, slice := range a.table {
		if i != 0 {
			b.WriteRune('|')
		}
		for j, v := range slice {
			if j != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}

// lenOfFirstNSlices returns the length of the first n slices.
//
// The sum of 2^m + 2^(m+1) + ... + 2^(m+n-1) is 2^(m+n) - 2^m.
func (*Arena[T]) lenOfFirstNSlices(n int) int {
	return max(0, (minLen<<n)-minLen)
}

// coordinates calculates the coordinates of the given index in table. It
// also performs a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// The cumulative starting index of each slice is 0b0 << n, 0b1 << n,
	// 0b11 << n, ... for n == minLenShift. Adding minLen turns these into
	// powers of two whose one-indexed high bit, minus n+1, is the slice index.
	slice := bits.UintSize - bits.LeadingZeros(uint(idx)+minLen)
	slice -= minLenShift + 1

	return slice, idx - a.lenOfFirstNSlices(slice)
}
