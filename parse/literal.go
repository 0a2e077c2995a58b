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
	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
	"github.com/bufbuild/sin/token/literal"
)

// Literal is any single literal.
type Literal struct {
	Value   literal.Literal
	LitSpan source.Span
}

// Parse implements [Node].
func (Literal) Parse(c *token.Cursor) (Literal, error) {
	lit, span, err := parseLit(c, pattern.AnyLiteral())
	return Literal{lit, span}, err
}

// Span implements [source.Spanner].
func (l Literal) Span() source.Span { return l.LitSpan }

// ToTokens implements [Node].
func (l Literal) ToTokens(s *token.Stream) { pushLit(s, l.Value, l.LitSpan) }

// LitStr is a string literal.
type LitStr struct {
	Value   string
	Lit     literal.Literal // The literal Value was parsed from; may be zero.
	LitSpan source.Span
}

// Parse implements [Node].
func (LitStr) Parse(c *token.Cursor) (LitStr, error) {
	lit, span, err := parseLit(c, pattern.String(pattern.Wildcard[string]()))
	v, _ := lit.AsString()
	return LitStr{v, lit, span}, err
}

// Span implements [source.Spanner].
func (l LitStr) Span() source.Span { return l.LitSpan }

// ToTokens implements [Node].
func (l LitStr) ToTokens(s *token.Stream) {
	lit := l.Lit
	if lit.IsZero() {
		lit = literal.NewString(s.Session(), l.Value)
	}
	pushLit(s, lit, l.LitSpan)
}

// LitInt is an integer literal that fits in a uint64.
type LitInt struct {
	Value   uint64
	Lit     literal.Literal // The literal Value was parsed from; may be zero.
	LitSpan source.Span
}

// Parse implements [Node].
func (LitInt) Parse(c *token.Cursor) (LitInt, error) {
	lit, span, err := parseLit(c, pattern.Integer(pattern.Wildcard[uint64]()))
	if err != nil {
		return LitInt{}, err
	}

	v, ok := lit.Uint64()
	if !ok {
		return LitInt{}, report.Errorf(span, "integer literal `%v` does not fit in 64 bits", lit)
	}
	return LitInt{v, lit, span}, nil
}

// Span implements [source.Spanner].
func (l LitInt) Span() source.Span { return l.LitSpan }

// ToTokens implements [Node].
func (l LitInt) ToTokens(s *token.Stream) {
	lit := l.Lit
	if lit.IsZero() {
		lit = literal.NewInteger(s.Session(), l.Value)
	}
	pushLit(s, lit, l.LitSpan)
}

// LitFloat is a float literal.
type LitFloat struct {
	Value   float64
	Lit     literal.Literal // The literal Value was parsed from; may be zero.
	LitSpan source.Span
}

// Parse implements [Node].
func (LitFloat) Parse(c *token.Cursor) (LitFloat, error) {
	lit, span, err := parseLit(c, pattern.Float(pattern.Wildcard[float64]()))
	v, _ := lit.Float64()
	return LitFloat{v, lit, span}, err
}

// Span implements [source.Spanner].
func (l LitFloat) Span() source.Span { return l.LitSpan }

// ToTokens implements [Node].
func (l LitFloat) ToTokens(s *token.Stream) {
	lit := l.Lit
	if lit.IsZero() {
		lit = literal.NewFloat(s.Session(), l.Value)
	}
	pushLit(s, lit, l.LitSpan)
}

// LitBool is a boolean literal.
type LitBool struct {
	Value   bool
	LitSpan source.Span
}

// Parse implements [Node].
func (LitBool) Parse(c *token.Cursor) (LitBool, error) {
	lit, span, err := parseLit(c, pattern.Bool(pattern.Wildcard[bool]()))
	v, _ := lit.AsBool()
	return LitBool{v, span}, err
}

// Span implements [source.Spanner].
func (l LitBool) Span() source.Span { return l.LitSpan }

// ToTokens implements [Node].
func (l LitBool) ToTokens(s *token.Stream) {
	pushLit(s, literal.NewBool(s.Session(), l.Value), l.LitSpan)
}

// LitChar is a character literal.
type LitChar struct {
	Value   rune
	Lit     literal.Literal // The literal Value was parsed from; may be zero.
	LitSpan source.Span
}

// Parse implements [Node].
func (LitChar) Parse(c *token.Cursor) (LitChar, error) {
	lit, span, err := parseLit(c, pattern.Char(pattern.Wildcard[rune]()))
	v, _ := lit.AsChar()
	return LitChar{v, lit, span}, err
}

// Span implements [source.Spanner].
func (l LitChar) Span() source.Span { return l.LitSpan }

// ToTokens implements [Node].
func (l LitChar) ToTokens(s *token.Stream) {
	lit := l.Lit
	if lit.IsZero() {
		lit = literal.NewChar(s.Session(), l.Value)
	}
	pushLit(s, lit, l.LitSpan)
}

func parseLit(c *token.Cursor, p pattern.Literal) (literal.Literal, source.Span, error) {
	tree, err := Expect(c, pattern.Lit(p))
	if err != nil {
		return literal.Literal{}, source.Span{}, err
	}
	lit, _ := tree.Token().AsLiteral()
	return lit, tree.Span(), nil
}

func pushLit(s *token.Stream, lit literal.Literal, span source.Span) {
	s.PushToken(token.NewLiteral(lit), span)
}
