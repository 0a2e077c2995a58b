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

// Package parse provides parser combinators over token streams.
//
// A syntax type participates by implementing [Node]: it knows how to parse
// itself from a [token.Cursor], and how to render itself back into a
// [token.Stream]. Composite nodes such as [Rep] and [Delimited] are generic
// over the nodes they contain.
//
// Every parse failure is reported as a [*report.Report], and every rendered
// node parses back into an equal node.
package parse

import (
	"fmt"

	"github.com/bufbuild/sin/pattern"
	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// Node is a syntax value that can be parsed from tokens and rendered back into
// them.
//
// Parse is called on the zero value of T, and must not depend on its
// receiver. On failure, it should return a [*report.Report] describing what
// was expected; the cursor may be left anywhere.
type Node[T any] interface {
	source.Spanner

	Parse(c *token.Cursor) (T, error)
	ToTokens(s *token.Stream)
}

// Parse parses a T from c.
//
// Tokens after the T are left for the caller.
func Parse[T Node[T]](c *token.Cursor) (T, error) {
	var z T
	return z.Parse(c)
}

// ParseTokens parses all of stream as a T.
//
// Unlike [Parse], trailing tokens are an error.
func ParseTokens[T Node[T]](stream *token.Stream) (T, error) {
	return ParseAll[T](stream.Iter())
}

// ParseAll is like [ParseTokens], but parses the rest of an existing cursor,
// such as one created with [token.IterWithState].
func ParseAll[T Node[T]](c *token.Cursor) (T, error) {
	v, err := Parse[T](c)
	if err == nil && !c.Done() {
		err = expected(c, pattern.Nothing())
	}

	if err != nil {
		if sess := c.Stream().Session(); sess != nil {
			sess.Logger().WithField("node", fmt.Sprintf("%T", v)).Debugf("parse failed: %v", err)
		}
		var z T
		return z, err
	}
	return v, nil
}

// Render renders node into a new stream.
func Render[T Node[T]](sess *source.Session, node T) *token.Stream {
	s := token.NewStream(sess)
	node.ToTokens(s)
	return s
}

// Peek returns whether a T could be parsed from c, without consuming any
// tokens.
func Peek[T Node[T]](c *token.Cursor) bool {
	mark := c.Mark()
	defer c.Rewind(mark)

	_, err := Parse[T](c)
	return err == nil
}

// Expect consumes the next tree if it matches p.
//
// Otherwise, returns an error of the form "expected {p}, found {tree}".
func Expect(c *token.Cursor, p pattern.Token) (token.Tree, error) {
	tree := c.Peek()
	if !p.MatchesTree(tree) {
		return token.Tree{}, expected(c, p)
	}
	c.Next()
	return tree, nil
}

// expected returns an error saying that what was expected at the current
// position of c.
func expected(c *token.Cursor, what fmt.Stringer) error {
	r := new(report.Report)
	r.Append(pattern.Expected(what, c.Peek(), c.Span()))
	return r
}

// text is a fmt.Stringer for a fixed description.
type text string

func (t text) String() string { return string(t) }
