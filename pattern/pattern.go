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

// Package pattern provides patterns over tokens: values that either match one
// specific token, or any token of some category.
//
// Patterns exist mostly to produce good diagnostics. Every pattern renders as
// the thing it expects, so that a parser that fails to match one can say
// "expected `struct`" or "expected integer literal".
package pattern

import "fmt"

// Pattern matches either one specific value of type T, or any T.
//
// The zero Pattern is a wildcard.
type Pattern[T comparable] struct {
	value    T
	specific bool
}

// Specific returns a pattern that matches only v.
func Specific[T comparable](v T) Pattern[T] {
	return Pattern[T]{value: v, specific: true}
}

// Wildcard returns a pattern that matches every T.
func Wildcard[T comparable]() Pattern[T] {
	return Pattern[T]{}
}

// Value returns the value this pattern matches, if it is specific.
func (p Pattern[T]) Value() (T, bool) {
	return p.value, p.specific
}

// IsWildcard returns whether this pattern matches every value.
func (p Pattern[T]) IsWildcard() bool {
	return !p.specific
}

// Matches returns whether v matches this pattern.
func (p Pattern[T]) Matches(v T) bool {
	return !p.specific || p.value == v
}

// String implements [fmt.Stringer].
//
// Specific patterns render as their value in backticks; wildcards render as
// "_".
func (p Pattern[T]) String() string {
	if !p.specific {
		return "_"
	}
	return fmt.Sprintf("`%v`", p.value)
}
