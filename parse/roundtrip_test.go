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

package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sin/parse"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// item is `struct Name { field: Type, ... }` or `enum Name;`.
type item struct {
	Struct *structItem
	Enum   *enumItem
}

type structItem struct {
	Kw     parse.Struct
	Name   parse.Ident
	Fields parse.Braces[parse.Rep[field, parse.Comma]]
}

type enumItem struct {
	Kw   parse.Enum
	Name parse.Ident
	Semi parse.Semi
}

type field struct {
	Name  parse.Ident
	Colon parse.Colon
	Type  parse.Compact[parse.Ident, parse.PathSep]
	Value parse.Option[defaultValue]
}

type defaultValue struct {
	Eq    parse.Eq
	Value parse.Literal
}

func (item) Parse(c *token.Cursor) (item, error) {
	return parse.First(c,
		parse.Alt(func(s structItem) item { return item{Struct: &s} }),
		parse.Alt(func(e enumItem) item { return item{Enum: &e} }),
	)
}

func (i item) Span() source.Span {
	if i.Struct != nil {
		return i.Struct.Span()
	}
	return i.Enum.Span()
}

func (i item) ToTokens(s *token.Stream) {
	if i.Struct != nil {
		i.Struct.ToTokens(s)
		return
	}
	i.Enum.ToTokens(s)
}

func (structItem) Parse(c *token.Cursor) (v structItem, err error) {
	if v.Kw, err = parse.Parse[parse.Struct](c); err != nil {
		return v, err
	}
	if v.Name, err = parse.Parse[parse.Ident](c); err != nil {
		return v, err
	}
	v.Fields, err = parse.Parse[parse.Braces[parse.Rep[field, parse.Comma]]](c)
	return v, err
}

func (s structItem) Span() source.Span {
	return source.JoinOr(s.Kw.Span(), s.Fields.Span())
}

func (s structItem) ToTokens(out *token.Stream) {
	s.Kw.ToTokens(out)
	s.Name.ToTokens(out)
	s.Fields.ToTokens(out)
}

func (enumItem) Parse(c *token.Cursor) (v enumItem, err error) {
	if v.Kw, err = parse.Parse[parse.Enum](c); err != nil {
		return v, err
	}
	if v.Name, err = parse.Parse[parse.Ident](c); err != nil {
		return v, err
	}
	v.Semi, err = parse.Parse[parse.Semi](c)
	return v, err
}

func (e enumItem) Span() source.Span {
	return source.JoinOr(e.Kw.Span(), e.Semi.Span())
}

func (e enumItem) ToTokens(out *token.Stream) {
	e.Kw.ToTokens(out)
	e.Name.ToTokens(out)
	e.Semi.ToTokens(out)
}

func (field) Parse(c *token.Cursor) (v field, err error) {
	if v.Name, err = parse.Parse[parse.Ident](c); err != nil {
		return v, err
	}
	if v.Colon, err = parse.Parse[parse.Colon](c); err != nil {
		return v, err
	}
	// The type stops at the first token that is not part of a path.
	if v.Type, err = parse.Parse[parse.Compact[parse.Ident, parse.PathSep]](c); err != nil {
		return v, err
	}
	v.Value, err = parse.Parse[parse.Option[defaultValue]](c)
	return v, err
}

func (f field) Span() source.Span {
	end := f.Type.Span()
	if f.Value.Some {
		end = f.Value.Span()
	}
	return source.JoinOr(f.Name.Span(), end)
}

func (f field) ToTokens(out *token.Stream) {
	f.Name.ToTokens(out)
	f.Colon.ToTokens(out)
	f.Type.ToTokens(out)
	f.Value.ToTokens(out)
}

func (defaultValue) Parse(c *token.Cursor) (v defaultValue, err error) {
	if v.Eq, err = parse.Parse[parse.Eq](c); err != nil {
		return v, err
	}
	v.Value, err = parse.Parse[parse.Literal](c)
	return v, err
}

func (d defaultValue) Span() source.Span {
	return source.JoinOr(d.Eq.Span(), d.Value.Span())
}

func (d defaultValue) ToTokens(out *token.Stream) {
	d.Eq.ToTokens(out)
	d.Value.ToTokens(out)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []string{
		"enum Empty;",
		"struct Foo {}",
		"struct Foo { bar: u32 }",
		"struct Foo { bar: std::string::String, baz: u8, }",
		"struct Point { x: f64 = 1.5, y: f64 = 0x2 }",
		"struct Names { first: String = \"ada\", }",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			sess := source.NewSession(source.DefaultConfig())

			parsed, err := parse.ParseTokens[item](lex(t, sess, text))
			require.NoError(t, err)

			src, ok := parsed.Span().SourceText()
			require.True(t, ok)
			assert.Equal(t, text, src)

			rendered := parse.Render(sess, parsed)
			reparsed, err := parse.ParseTokens[item](rendered)
			require.NoError(t, err)
			assert.Equal(t, parsed, reparsed)

			// Rendering is stable: the re-parsed value renders identically.
			assert.Equal(t, rendered.String(), parse.Render(sess, reparsed).String())
		})
	}
}

func TestFirstDiagnostics(t *testing.T) {
	t.Parallel()
	sess := source.NewSession(source.DefaultConfig())

	_, err := parse.ParseTokens[item](lex(t, sess, "union Foo;"))
	assert.Equal(t, []string{
		"expected `struct`, found `union`",
		"expected `enum`, found `union`",
	}, messages(t, err))

	_, err = parse.ParseTokens[item](lex(t, sess, "struct Foo { bar u32 }"))
	assert.Equal(t, []string{
		"expected `:`, found `u32`",
		"expected `enum`, found `struct`",
	}, messages(t, err))
}
