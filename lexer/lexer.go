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

// Package lexer turns source text into token streams.
//
// It is the fallback for when no host provides tokens: the lexical grammar
// is Rust-like, and every leaf span is an excerpt of the lexed text, so
// diagnostics can point into it.
package lexer

import (
	"github.com/sirupsen/logrus"

	"github.com/bufbuild/sin/internal/interval"
	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// MaxSize is the largest text the lexer accepts.
const MaxSize = 1 << 30

// Options configures a lexer.
type Options struct {
	// Words to lex as [token.CustomKeywordKind] tokens instead of
	// identifiers.
	CustomKeywords []string

	// If set, reserved words are lexed as identifiers.
	NoKeywords bool

	// The number of goroutines [LexAll] may use. If zero, one per CPU.
	Workers int
}

// Result is the result of lexing some text.
type Result struct {
	// The lexed tokens. Its span covers the whole text.
	Stream *token.Stream

	// Indexed by byte offset. Delimiters map to their group.
	trees interval.Map[int, token.Tree]
}

// TokenAt returns the tree of the token covering the given byte offset.
//
// For a delimiter, this is the tree of its group. Returns false for offsets
// in whitespace or comments.
func (r *Result) TokenAt(offset int) (token.Tree, bool) {
	e, ok := r.trees.Get(offset)
	return e.Value, ok
}

// Lex lexes text.
//
// The result is returned even when lexing produces errors; its stream
// contains every token that could be lexed. The error, if any, is a
// [*report.Report].
func Lex(sess *source.Session, text string, opts Options) (*Result, error) {
	log := sess.Logger().WithFields(logrus.Fields{
		"component": "lexer",
		"bytes":     len(text),
	})

	l := newLexer(sess, text, opts)
	res := &Result{Stream: l.frames[0].stream}
	l.trees = &res.trees

	if len(text) > MaxSize {
		l.report.Errorf(l.span(0, 0), "text larger than %d bytes is not supported", MaxSize)
	} else {
		loop(l)
	}

	log.WithField("tokens", res.trees.Len()).Debug("lexed text")
	if l.report.Len() > 0 {
		log.Debugf("lexing produced %d error(s)", l.report.Len())
	}
	return res, l.report.Err()
}

// lexer is the book-keeping for one call to [Lex].
type lexer struct {
	sess   *source.Session
	text   string
	file   source.Span
	opts   Options
	custom map[string]bool

	cursor int
	frames []frame
	report *report.Report
	trees  *interval.Map[int, token.Tree]
}

// frame is a group that has been opened, but not closed.
type frame struct {
	delim  token.Delimiter
	open   int // Offset of the open delimiter.
	stream *token.Stream
}

func newLexer(sess *source.Session, text string, opts Options) *lexer {
	l := &lexer{
		sess:   sess,
		text:   text,
		file:   sess.FromSource(text),
		opts:   opts,
		custom: make(map[string]bool, len(opts.CustomKeywords)),
		report: new(report.Report),
	}
	for _, kw := range opts.CustomKeywords {
		l.custom[kw] = true
	}

	root := token.NewStream(sess)
	root.SetSpan(l.file)
	l.frames = []frame{{open: -1, stream: root}}
	return l
}

func (l *lexer) span(start, end int) source.Span {
	return l.file.Range(start, end)
}

// push pushes a leaf for text[start:l.cursor] onto the innermost stream.
func (l *lexer) push(tok token.Token, start int) {
	span := l.span(start, l.cursor)
	tree := token.Leaf(tok, span)
	l.top().stream.Push(tree)
	l.trees.Insert(start, l.cursor, tree)
}

func (l *lexer) top() *frame {
	return &l.frames[len(l.frames)-1]
}

// open starts a new group at text[start].
func (l *lexer) open(d token.Delimiter, start int) {
	l.frames = append(l.frames, frame{
		delim:  d,
		open:   start,
		stream: token.NewStream(l.sess),
	})
}

// close closes the innermost group, whose closing delimiter is
// text[start:end]. An unclosed group has start == end.
func (l *lexer) close(start, end int) {
	f := l.frames[len(l.frames)-1]
	l.frames = l.frames[:len(l.frames)-1]

	f.stream.SetSpan(l.span(f.open+1, start))
	g := token.NewGroup(f.delim, f.stream, l.span(f.open, f.open+1), l.span(start, end))
	tree := g.Tree()
	l.top().stream.Push(tree)

	l.trees.Insert(f.open, f.open+1, tree)
	if start < end {
		l.trees.Insert(start, end, tree)
	}
}
