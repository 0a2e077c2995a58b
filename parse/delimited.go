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
	"github.com/bufbuild/sin/pattern"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// Delimited is a T enclosed in a group, such as `( T )`.
//
// D names the delimiter; use the aliases [Parens], [Braces], and [Brackets].
// The contents of the group must be exactly one T.
type Delimited[D Delimiter, T Node[T]] struct {
	Inner T

	// The spans of the opening and closing delimiters.
	Open, Close source.Span
}

// Delimiter names the delimiter of a [Delimited].
type Delimiter interface {
	// Delimiter returns the delimiter to match. It is called on the zero
	// value.
	Delimiter() token.Delimiter
}

type (
	// Parens is a T in parentheses.
	Parens[T Node[T]] = Delimited[paren, T]
	// Braces is a T in curly braces.
	Braces[T Node[T]] = Delimited[brace, T]
	// Brackets is a T in square brackets.
	Brackets[T Node[T]] = Delimited[bracket, T]
)

type (
	paren   struct{}
	brace   struct{}
	bracket struct{}
)

func (paren) Delimiter() token.Delimiter   { return token.Paren }
func (brace) Delimiter() token.Delimiter   { return token.Brace }
func (bracket) Delimiter() token.Delimiter { return token.Bracket }

// Parse implements [Node].
func (Delimited[D, T]) Parse(c *token.Cursor) (Delimited[D, T], error) {
	var d D
	delim := d.Delimiter()

	tree, err := Expect(c, pattern.Delimiter(pattern.Specific(delim)))
	if err != nil {
		return Delimited[D, T]{}, err
	}
	group := tree.Group()

	inner := c.Enter(group)
	v, err := Parse[T](inner)
	if err == nil && !inner.Done() {
		err = expected(inner, text("`"+delim.Close()+"`"))
	}
	if err != nil {
		return Delimited[D, T]{}, err
	}

	return Delimited[D, T]{Inner: v, Open: group.Open, Close: group.Close}, nil
}

// Span implements [source.Spanner].
func (d Delimited[D, T]) Span() source.Span {
	return source.JoinOr(d.Open, d.Close)
}

// ToTokens implements [Node].
func (d Delimited[D, T]) ToTokens(s *token.Stream) {
	var delim D
	inner := token.NewStream(s.Session())
	d.Inner.ToTokens(inner)
	s.Push(token.NewGroup(delim.Delimiter(), inner, d.Open, d.Close).Tree())
}
