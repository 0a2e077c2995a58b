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

package lexer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sin/internal/corpora"
	"github.com/bufbuild/sin/lexer"
	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
	"github.com/bufbuild/sin/token/keyword"
	"github.com/bufbuild/sin/token/punct"
)

func TestLexer(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:       "testdata",
		Refresh:    "SIN_REFRESH",
		Extensions: []string{"rs"},
		Outputs: []corpora.Output{
			{Extension: "tokens.txt"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Run(t, func(t *testing.T, _, text string, outputs []string) {
		sess := source.NewSession(source.DefaultConfig())
		res, err := lexer.Lex(sess, text, lexer.Options{
			CustomKeywords: []string{"model"},
		})
		require.NotNil(t, res)

		var tokens strings.Builder
		dump(&tokens, res.Stream, 0)
		outputs[0] = tokens.String()

		if err != nil {
			t.Log(report.Renderer{}.RenderString(err.(*report.Report))) //nolint:errorlint
			outputs[1] = err.Error() + "\n"
		}
	})
}

func dump(out *strings.Builder, stream *token.Stream, depth int) {
	indent := strings.Repeat("  ", depth)
	for tree := range stream.All() {
		e, _ := tree.Span().Excerpt()
		if g := tree.Group(); g != nil {
			fmt.Fprintf(out, "%s%v\t%d:%d\t%s%s\n", indent, tree.Token().Kind(), e.Start, e.End, g.Delimiter.Open(), g.Delimiter.Close())
			dump(out, g.Stream, depth+1)
			continue
		}
		fmt.Fprintf(out, "%s%v\t%d:%d\t%v\n", indent, tree.Token().Kind(), e.Start, e.End, tree.Token())
	}
}

func TestTokenAt(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	res, err := lexer.Lex(sess, "foo::bar(1, 2)", lexer.Options{})
	require.NoError(t, err)

	tree, ok := res.TokenAt(1)
	require.True(t, ok)
	assert.Equal(t, "foo", tree.String())

	tree, ok = res.TokenAt(4)
	require.True(t, ok)
	assert.Equal(t, token.NewPunct(punct.PathSep), tree.Token())

	// Both delimiters map to the group.
	open, ok := res.TokenAt(8)
	require.True(t, ok)
	closing, ok := res.TokenAt(13)
	require.True(t, ok)
	assert.True(t, open.IsGroup())
	assert.Equal(t, open, closing)
	assert.Equal(t, "( 1 , 2 )", open.String())

	_, ok = res.TokenAt(11)
	assert.False(t, ok, "whitespace")
	_, ok = res.TokenAt(100)
	assert.False(t, ok)
}

func TestSpans(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	text := "a /* b /* nested */ */ c"
	res, err := lexer.Lex(sess, text, lexer.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, res.Stream.Len())

	c := res.Stream.At(1)
	src, ok := c.Span().SourceText()
	assert.True(t, ok)
	assert.Equal(t, "c", src)

	// Every span in the stream can be joined with the stream's own span, which
	// covers the whole text.
	whole, ok := res.Stream.Span().SourceText()
	assert.True(t, ok)
	assert.Equal(t, text, whole)
	joined, err := res.Stream.At(0).Span().Join(c.Span())
	require.NoError(t, err)
	src, _ = joined.SourceText()
	assert.Equal(t, text, src)
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	res, err := lexer.Lex(sess, "fn self Self", lexer.Options{})
	require.NoError(t, err)
	assert.Equal(t, token.NewKeyword(keyword.Fn), res.Stream.At(0).Token())
	assert.Equal(t, token.NewKeyword(keyword.SelfValue), res.Stream.At(1).Token())
	assert.Equal(t, token.NewKeyword(keyword.SelfType), res.Stream.At(2).Token())

	res, err = lexer.Lex(sess, "fn self", lexer.Options{NoKeywords: true})
	require.NoError(t, err)
	assert.Equal(t, token.NewIdent(sess, "fn"), res.Stream.At(0).Token())
	assert.Equal(t, token.NewIdent(sess, "self"), res.Stream.At(1).Token())
}

func TestUnterminated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text, err string
	}{
		{`"abc`, "unterminated string literal"},
		{`r##"abc"#`, "unterminated raw string literal"},
		{"'a\nb'", "unterminated character literal"},
		{"/* a /* b */", "unterminated block comment"},
		{"}", "unexpected closing delimiter `}`"},
		{"\xff", "invalid UTF-8 byte 0xff"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			sess := source.NewSession(source.DefaultConfig())
			_, err := lexer.Lex(sess, test.text, lexer.Options{})
			require.Error(t, err)

			var r *report.Report
			require.ErrorAs(t, err, &r)
			assert.Equal(t, test.err, r.Diagnostics[0].Message)
		})
	}
}

func TestUnpairedQuote(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	res, err := lexer.Lex(sess, "fn f<'a>(x: &'a u8) { x }", lexer.Options{})
	require.Error(t, err)

	var r *report.Report
	require.ErrorAs(t, err, &r)
	require.Len(t, r.Diagnostics, 2)
	for _, d := range r.Diagnostics {
		assert.Equal(t, "unterminated character literal", d.Message)
		src, _ := d.Span.SourceText()
		assert.Equal(t, "'", src)
	}

	var words []string
	for tree := range res.Stream.All() {
		words = append(words, tree.String())
	}
	assert.Equal(t, []string{"fn", "f", "<", "a", ">", "( x : & a u8 )", "{ x }"}, words)
}

func TestLexAll(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	texts := make([]string, 64)
	for i := range texts {
		texts[i] = fmt.Sprintf("let x%d = %d;", i%8, i)
	}
	texts[10] = "let y = ("

	results, err := lexer.LexAll(context.Background(), sess, texts, lexer.Options{Workers: 4})
	require.Error(t, err)
	assert.Equal(t, "error: unclosed delimiter `(`", err.Error())

	require.Len(t, results, len(texts))
	var words []string
	for tree := range results[1].Stream.All() {
		words = append(words, tree.String())
	}
	if diff := cmp.Diff([]string{"let", "x1", "=", "1", ";"}, words); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	for i, res := range results {
		require.NotNil(t, res, "%d", i)
		if i != 10 {
			assert.Equal(t, 5, res.Stream.Len(), "%d", i)
		}
	}

	// Identifiers lexed on different goroutines share one interned name.
	a, _ := results[1].Stream.At(1).Token().AsIdent()
	b, _ := results[9].Stream.At(1).Token().AsIdent()
	assert.Equal(t, "x1", a.String())
	assert.Equal(t, a, b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = lexer.LexAll(ctx, sess, texts, lexer.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
