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
	"github.com/bufbuild/sin/intern"
	"github.com/bufbuild/sin/pattern"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// Ident is a single identifier.
type Ident struct {
	Name     intern.Text
	NameSpan source.Span
}

var anyIdent = pattern.Ident(pattern.Wildcard[string]())

// NewIdent returns an identifier with the given name and span.
func NewIdent(sess *source.Session, name string, span source.Span) Ident {
	return Ident{Name: sess.Intern(name), NameSpan: span}
}

// Parse implements [Node].
func (Ident) Parse(c *token.Cursor) (Ident, error) {
	tree, err := Expect(c, anyIdent)
	if err != nil {
		return Ident{}, err
	}
	name, _ := tree.Token().AsIdent()
	return Ident{Name: name, NameSpan: tree.Span()}, nil
}

// Span implements [source.Spanner].
func (i Ident) Span() source.Span {
	return i.NameSpan
}

// ToTokens implements [Node].
func (i Ident) ToTokens(s *token.Stream) {
	s.PushToken(token.NewIdent(s.Session(), i.Name.String()), i.NameSpan)
}

// String returns the identifier's name.
func (i Ident) String() string {
	return i.Name.String()
}

// Nothing matches the end of a stream, and consumes nothing.
type Nothing struct {
	EndSpan source.Span
}

// Parse implements [Node].
func (Nothing) Parse(c *token.Cursor) (Nothing, error) {
	if !c.Done() {
		return Nothing{}, expected(c, pattern.Nothing())
	}
	return Nothing{EndSpan: c.EndSpan()}, nil
}

// Span implements [source.Spanner].
func (n Nothing) Span() source.Span {
	return n.EndSpan
}

// ToTokens implements [Node].
func (Nothing) ToTokens(*token.Stream) {}

// NoOp always succeeds, and consumes nothing.
//
// It is useful as the separator of a [Rep] whose items are simply juxtaposed.
type NoOp struct{}

// Parse implements [Node].
func (NoOp) Parse(*token.Cursor) (NoOp, error) {
	return NoOp{}, nil
}

// Span implements [source.Spanner].
func (NoOp) Span() source.Span {
	return source.Span{}
}

// ToTokens implements [Node].
func (NoOp) ToTokens(*token.Stream) {}

// Word names a custom keyword; see [CustomKeyword].
type Word interface {
	// Word returns the spelling of the keyword. It is called on the zero
	// value.
	Word() string
}

// CustomKeyword is a word that a grammar reserves, such as `model`.
//
// W names the word:
//
//	type model struct{}
//	func (model) Word() string { return "model" }
//
//	var kw parse.CustomKeyword[model]
//
// It matches custom keyword tokens with that spelling, as well as identifiers
// with that spelling, since a host will usually not know which words a
// grammar reserves.
type CustomKeyword[W Word] struct {
	WordSpan source.Span
}

// Parse implements [Node].
func (CustomKeyword[W]) Parse(c *token.Cursor) (CustomKeyword[W], error) {
	var w W
	word := w.Word()

	tok := c.Peek().Token()
	text, ok := tok.AsCustomKeyword()
	if !ok {
		text, ok = tok.AsIdent()
	}
	if !ok || text.String() != word {
		return CustomKeyword[W]{}, expected(c, pattern.CustomKeyword(pattern.Specific(word)))
	}

	return CustomKeyword[W]{WordSpan: c.Next().Span()}, nil
}

// Span implements [source.Spanner].
func (k CustomKeyword[W]) Span() source.Span {
	return k.WordSpan
}

// ToTokens implements [Node].
func (k CustomKeyword[W]) ToTokens(s *token.Stream) {
	var w W
	s.PushToken(token.NewCustomKeyword(s.Session(), w.Word()), k.WordSpan)
}
