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

package parse

import (
	"fmt"

	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// Rep is a repetition of T separated by S, such as `a, b, c`.
//
// A trailing separator is allowed, so Rep has either as many separators as
// items, or one fewer. Rep parses until the end of the stream, and fails if
// any item or separator fails; see [Compact] for a repetition that stops
// early instead. Use [NoOp] as S for items without separators.
type Rep[T Node[T], S Node[S]] struct {
	items []T
	seps  []S
	span  source.Span
}

// Compact is like [Rep], except that it stops as soon as the next tokens are
// not an item (or separator), leaving them for the caller.
type Compact[T Node[T], S Node[S]] struct {
	Rep[T, S]
}

// Pair is an item of a [Rep] and the separator after it, if there is one.
type Pair[T, S any] struct {
	Item T
	Sep  *S
}

// NewRep builds a repetition out of items and separators.
//
// Panics if len(items) is not len(seps) or len(seps)+1.
func NewRep[T Node[T], S Node[S]](items []T, seps []S) Rep[T, S] {
	if n, m := len(items), len(seps); n != m && n != m+1 {
		panic(fmt.Sprintf("sin/parse: cannot pair %d items with %d separators", n, m))
	}

	r := Rep[T, S]{items: items, seps: seps}
	switch {
	case len(items) == 0:
	case len(seps) == len(items):
		r.span = source.JoinOr(items[0].Span(), seps[len(seps)-1].Span())
	default:
		r.span = source.JoinOr(items[0].Span(), items[len(items)-1].Span())
	}
	return r
}

// Parse implements [Node].
func (Rep[T, S]) Parse(c *token.Cursor) (Rep[T, S], error) {
	return parseRep[T, S](c, false)
}

// Parse implements [Node].
func (Compact[T, S]) Parse(c *token.Cursor) (Compact[T, S], error) {
	r, err := parseRep[T, S](c, true)
	return Compact[T, S]{r}, err
}

func parseRep[T Node[T], S Node[S]](c *token.Cursor, compact bool) (Rep[T, S], error) {
	var r Rep[T, S]
	first := c.Span()
	start := c.Pos()

	for !c.Done() {
		pos := c.Pos()

		mark := c.Mark()
		item, err := Parse[T](c)
		if err != nil {
			if !compact {
				return r, err
			}
			c.Rewind(mark)
			break
		}
		r.items = append(r.items, item)
		if c.Done() {
			break
		}

		mark = c.Mark()
		sep, err := Parse[S](c)
		if err != nil {
			if !compact {
				return r, err
			}
			c.Rewind(mark)
			break
		}
		r.seps = append(r.seps, sep)

		if c.Pos() == pos {
			var (
				t T
				s S
			)
			panic(fmt.Sprintf("sin/parse: repetition of %T separated by %T consumed no tokens", t, s))
		}
	}

	if c.Pos() > start {
		r.span = source.JoinOr(first, c.Last().Span())
	}
	return r, nil
}

// Items returns the items in this repetition.
func (r Rep[T, S]) Items() []T {
	return r.items
}

// Separators returns the separators in this repetition.
func (r Rep[T, S]) Separators() []S {
	return r.seps
}

// Len returns the number of items in this repetition.
func (r Rep[T, S]) Len() int {
	return len(r.items)
}

// Punctuated returns each item paired with the separator that follows it.
//
// The last pair has a nil separator if there is no trailing separator.
func (r Rep[T, S]) Punctuated() []Pair[T, S] {
	pairs := make([]Pair[T, S], len(r.items))
	for i := range r.items {
		pairs[i].Item = r.items[i]
		if i < len(r.seps) {
			pairs[i].Sep = &r.seps[i]
		}
	}
	return pairs
}

// Span implements [source.Spanner].
func (r Rep[T, S]) Span() source.Span {
	return r.span
}

// ToTokens implements [Node].
func (r Rep[T, S]) ToTokens(s *token.Stream) {
	for _, pair := range r.Punctuated() {
		pair.Item.ToTokens(s)
		if pair.Sep != nil {
			(*pair.Sep).ToTokens(s)
		}
	}
}
