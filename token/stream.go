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
	"iter"
	"slices"
	"strings"

	"github.com/bufbuild/sin/source"
)

// Stream is an ordered sequence of [Tree]s.
//
// A Stream is not safe for concurrent use. Streams are mutated only by
// appending; a [Cursor] over a stream must not be used after the stream is
// appended to.
type Stream struct {
	sess  *source.Session
	trees []Tree

	span     source.Span
	explicit bool // Whether span was set with SetSpan.
}

// NewStream returns a new, empty stream whose spans live in sess.
func NewStream(sess *source.Session, trees ...Tree) *Stream {
	return &Stream{sess: sess, trees: slices.Clone(trees)}
}

// Session returns the session this stream belongs to.
func (s *Stream) Session() *source.Session {
	return s.sess
}

// Push appends a tree to this stream.
func (s *Stream) Push(t Tree) {
	s.trees = append(s.trees, t)
	s.invalidate()
}

// PushToken appends a leaf token to this stream.
func (s *Stream) PushToken(tok Token, span source.Span) {
	s.Push(Leaf(tok, span))
}

// Extend appends every tree in seq to this stream.
func (s *Stream) Extend(seq iter.Seq[Tree]) {
	for t := range seq {
		s.trees = append(s.trees, t)
	}
	s.invalidate()
}

// Len returns the number of trees in this stream. Trees inside of groups are
// not counted.
func (s *Stream) Len() int {
	return len(s.trees)
}

// At returns the tree at index i.
func (s *Stream) At(i int) Tree {
	return s.trees[i]
}

// All returns an iterator over the trees in this stream.
func (s *Stream) All() iter.Seq[Tree] {
	return slices.Values(s.trees)
}

// String renders this stream as text: its trees separated by spaces, with
// groups enclosed in their delimiters.
func (s *Stream) String() string {
	var buf strings.Builder
	for i, t := range s.trees {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(t.String())
	}
	return buf.String()
}

// Span returns a span covering this whole stream.
//
// Unless a span was set with [Stream.SetSpan], this is a fallback span over
// the stream's rendering, recomputed whenever the stream changes.
func (s *Stream) Span() source.Span {
	if s.span.IsZero() && s.sess != nil {
		s.span = s.sess.FromSource(s.String())
	}
	return s.span
}

// SetSpan overrides the span of this stream; a lexer uses this to give a
// stream the span of the text it was lexed from.
func (s *Stream) SetSpan(span source.Span) {
	s.span = span
	s.explicit = !span.IsZero()
}

// Iter returns a new cursor over this stream, with no state.
func (s *Stream) Iter() *Cursor {
	return &Cursor{stream: s, state: new(stateBox)}
}

func (s *Stream) invalidate() {
	if !s.explicit {
		s.span = source.Span{}
	}
}
