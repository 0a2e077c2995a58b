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

package token_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// words builds a stream of identifiers, each spanning its word in text.
func words(sess *source.Session, text string) *token.Stream {
	src := sess.Intern(text)
	stream := token.NewStream(sess)
	var offset int
	for _, word := range strings.Fields(text) {
		start := offset + strings.Index(text[offset:], word)
		offset = start + len(word)
		stream.PushToken(token.NewIdent(sess, word), sess.Excerpt(src, start, offset))
	}
	stream.SetSpan(sess.Excerpt(src, 0, len(text)))
	return stream
}

func TestCursor(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	c := words(sess, "a b c").Iter()

	assert.Equal(t, "a", c.Peek().String())
	assert.Equal(t, "b", c.PeekN(1).String())
	assert.Equal(t, "c", c.PeekN(2).String())
	assert.True(t, c.PeekN(3).IsZero())
	assert.True(t, c.PeekN(-1).IsZero())
	assert.True(t, c.Last().IsZero())

	assert.Equal(t, "a", c.Next().String())
	assert.Equal(t, "a", c.Last().String())
	assert.Equal(t, "b", c.Peek().String())
	assert.Equal(t, 1, c.Pos())
	assert.True(t, c.PeekN(math.MaxInt).IsZero())

	mark := c.Mark()
	assert.Equal(t, "b", c.Next().String())
	assert.Equal(t, "c", c.Next().String())
	assert.True(t, c.Done())
	assert.True(t, c.Next().IsZero())
	assert.True(t, c.Next().IsZero())

	end, _ := c.Span().Location()
	assert.Equal(t, 5, end.Offset)

	c.Rewind(mark)
	var rest []string
	for tree := range c.Rest() {
		rest = append(rest, tree.String())
	}
	assert.Equal(t, []string{"b", "c"}, rest)

	other := words(sess, "x").Iter()
	assert.Panics(t, func() { other.Rewind(mark) })
}

type path []string

func (p path) Clone() path {
	return slices.Clone(p)
}

func TestCursorState(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	c := token.IterWithState(words(sess, "a b"), path{"root"})

	mark := c.Mark()
	c.Next()
	*token.State[path](c) = append(*token.State[path](c), "a")
	assert.Equal(t, path{"root", "a"}, *token.State[path](c))

	c.Rewind(mark)
	assert.Equal(t, path{"root"}, *token.State[path](c))
	assert.Equal(t, 0, c.Pos())

	assert.Panics(t, func() { token.State[int](c) })

	// Cursors without state get a zero state on demand.
	plain := words(sess, "a").Iter()
	assert.Equal(t, 0, *token.State[int](plain))
	*token.State[int](plain)++
	assert.Equal(t, 1, *token.State[int](plain))
}

func TestEnter(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	closing := sess.FromSource("}")
	group := token.NewGroup(token.Brace, words(sess, "x y"), sess.FromSource("{"), closing)

	outer := token.NewStream(sess)
	outer.Push(group.Tree())

	c := token.IterWithState(outer, 7)
	tree := c.Next()
	assert.True(t, tree.IsGroup())
	assert.Equal(t, "{ x y }", tree.String())

	inner := c.Enter(tree.Group())
	*token.State[int](inner) = 8
	assert.Equal(t, 8, *token.State[int](c))

	inner.Next()
	inner.Next()
	assert.True(t, inner.Done())
	assert.True(t, inner.Span() == closing)
}
