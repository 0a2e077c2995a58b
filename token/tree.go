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

import "github.com/bufbuild/sin/source"

// Tree is an element of a [Stream]: either a leaf [Token] with a span, or a
// [Group].
//
// The zero Tree is returned by functions that want to indicate the absence of
// a tree, such as [Cursor.Next] at the end of a stream.
type Tree struct {
	tok   Token
	span  source.Span
	group *Group
}

// Group is a delimited sequence of trees, such as `( a, b )`.
type Group struct {
	Delimiter Delimiter

	// The span of the whole group, and of its opening and closing delimiters.
	Span, Open, Close source.Span

	Stream *Stream
}

// Leaf returns a tree for a single token.
//
// Panics if tok is a delimiter; delimiters only appear as part of a [Group].
func Leaf(tok Token, span source.Span) Tree {
	if tok.Kind() == DelimiterKind {
		panic("sin/token: delimiter token used as a leaf; use NewGroup instead")
	}
	return Tree{tok: tok, span: span}
}

// NewGroup returns a new group around stream.
//
// The span of the group covers both delimiters, if they can be joined.
func NewGroup(d Delimiter, stream *Stream, left, right source.Span) *Group {
	return &Group{
		Delimiter: d,
		Span:      source.JoinOr(left, right),
		Open:      left,
		Close:     right,
		Stream:    stream,
	}
}

// Tree wraps this group in a [Tree].
func (g *Group) Tree() Tree {
	return Tree{tok: NewDelimiter(g.Delimiter), span: g.Span, group: g}
}

// String returns the rendering of this group: its contents enclosed in its
// delimiters.
func (g *Group) String() string {
	return g.Delimiter.Enclose(g.Stream.String())
}

// IsZero returns whether this is the zero tree.
func (t Tree) IsZero() bool {
	return t.tok.IsZero()
}

// Token returns this tree's token. For a group, this is a delimiter token.
func (t Tree) Token() Token {
	return t.tok
}

// Span returns this tree's span.
func (t Tree) Span() source.Span {
	return t.span
}

// Group returns this tree's group, or nil if it is a leaf.
func (t Tree) Group() *Group {
	return t.group
}

// IsGroup returns whether this is a group.
func (t Tree) IsGroup() bool {
	return t.group != nil
}

// String returns the rendering of this tree.
func (t Tree) String() string {
	if t.group != nil {
		return t.group.String()
	}
	return t.tok.String()
}
