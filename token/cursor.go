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

package token

import (
	"fmt"
	"iter"
	"math"

	"github.com/bufbuild/sin/source"
)

// Cursor is an iterator-like construct for looping over a [Stream]. Unlike a
// plain range func, it supports peeking and rewinding.
//
// A cursor also carries a user-defined state value alongside its position;
// see [IterWithState] and [State].
type Cursor struct {
	stream *Stream
	idx    int

	// Shared by a cursor and every cursor created from it with Enter.
	state *stateBox

	// The span to report at the end of the stream; zero means the end of
	// the stream's own span.
	end source.Span
}

// Mark is the return value of [Cursor.Mark], which marks a place on a cursor
// to rewind to.
type Mark struct {
	cursor *Cursor
	idx    int
	state  any
}

// Cloner is implemented by cursor state types that must be deep-copied when a
// cursor is marked. Other state types are copied by assignment.
type Cloner[S any] interface {
	Clone() S
}

type stateBox struct {
	value any // Always a *S.
	clone func(any) any
}

// IterWithState returns a new cursor over stream, carrying the given state.
func IterWithState[S any](stream *Stream, init S) *Cursor {
	c := stream.Iter()
	c.state.value = &init
	c.state.clone = cloneState[S]
	return c
}

// State returns a pointer to the state of type S carried by c.
//
// If c has no state yet, a zero S is created. The returned pointer is only
// valid until the next call to [Cursor.Rewind]. Panics if c carries a state of
// another type.
func State[S any](c *Cursor) *S {
	if c.state.value == nil {
		c.state.value = new(S)
		c.state.clone = cloneState[S]
	}

	s, ok := c.state.value.(*S)
	if !ok {
		var z S
		panic(fmt.Sprintf("sin/token: requested cursor state of type %T, but cursor carries %T", z, c.state.value))
	}
	return s
}

func cloneState[S any](v any) any {
	p := v.(*S) //nolint:errcheck // stateBox only holds *S alongside cloneState[S].
	var s S
	if c, ok := any(*p).(Cloner[S]); ok {
		s = c.Clone()
	} else {
		s = *p
	}
	return &s
}

// Stream returns the stream this cursor iterates over.
func (c *Cursor) Stream() *Stream {
	return c.stream
}

// Done returns whether there are no trees left to yield.
func (c *Cursor) Done() bool {
	return c.idx >= len(c.stream.trees)
}

// Peek returns the next tree, without consuming it.
//
// Returns the zero tree at the end of the stream.
func (c *Cursor) Peek() Tree {
	return c.PeekN(0)
}

// PeekN returns the tree n trees ahead of the next one; PeekN(0) is
// equivalent to Peek.
//
// Returns the zero tree if n is negative or past the end of the stream.
func (c *Cursor) PeekN(n int) Tree {
	if n < 0 || n >= len(c.stream.trees)-c.idx {
		return Tree{}
	}
	return c.stream.trees[c.idx+n]
}

// Next returns the next tree and advances the cursor.
//
// Returns the zero tree at the end of the stream; once the end has been
// reached, Next keeps returning the zero tree.
func (c *Cursor) Next() Tree {
	t := c.Peek()
	if !t.IsZero() {
		c.idx++
	}
	return t
}

// Last returns the most recently consumed tree, or the zero tree if nothing
// has been consumed yet.
func (c *Cursor) Last() Tree {
	if c.idx == 0 {
		return Tree{}
	}
	return c.stream.trees[c.idx-1]
}

// Pos returns the number of trees consumed so far.
func (c *Cursor) Pos() int {
	return c.idx
}

// Rest returns an iterator over the remaining trees, consuming each as it is
// yielded.
func (c *Cursor) Rest() iter.Seq[Tree] {
	return func(yield func(Tree) bool) {
		for !c.Done() {
			if !yield(c.Next()) {
				return
			}
		}
	}
}

// Span returns the span of the next tree, or a span for the end of the stream
// if there is none.
func (c *Cursor) Span() source.Span {
	if t := c.Peek(); !t.IsZero() {
		return t.Span()
	}
	return c.EndSpan()
}

// EndSpan returns a span for the end of this cursor's stream.
//
// For a cursor created with [Cursor.Enter], this is the group's closing
// delimiter. Otherwise, it is the empty span at the end of the stream's span.
func (c *Cursor) EndSpan() source.Span {
	if !c.end.IsZero() {
		return c.end
	}
	return c.stream.Span().Range(math.MaxInt, math.MaxInt)
}

// Enter returns a cursor over the contents of g.
//
// The new cursor shares this cursor's state.
func (c *Cursor) Enter(g *Group) *Cursor {
	return &Cursor{
		stream: g.Stream,
		state:  c.state,
		end:    g.Close,
	}
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to. The mark also records a copy of the cursor's state.
func (c *Cursor) Mark() Mark {
	m := Mark{cursor: c, idx: c.idx}
	if c.state.value != nil {
		m.state = c.state.clone(c.state.value)
	}
	return m
}

// Rewind moves this cursor back to the position described by mark, and
// restores the state it had at that point.
//
// A mark may be rewound to any number of times. Panics if mark was not
// created using this cursor's Mark method.
func (c *Cursor) Rewind(mark Mark) {
	if mark.cursor != c {
		panic("sin/token: rewound cursor using the wrong cursor's mark")
	}

	c.idx = mark.idx
	if mark.state == nil {
		c.state.value = nil
		return
	}
	c.state.value = c.state.clone(mark.state)
}
