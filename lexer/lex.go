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

package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/sin/internal/ext/unicodex"
	"github.com/bufbuild/sin/token"
	"github.com/bufbuild/sin/token/keyword"
	"github.com/bufbuild/sin/token/literal"
	"github.com/bufbuild/sin/token/punct"
)

// loop is the main loop of the lexer. Each iteration examines the next rune
// to decide what to lex.
func loop(l *lexer) {
	prev := -1
	for !l.done() {
		if l.cursor == prev {
			panic("sin/lexer: lexer failed to make progress")
		}
		prev = l.cursor

		start := l.cursor
		rest := l.rest()
		r, n := utf8.DecodeRuneInString(rest)

		switch {
		case r == utf8.RuneError && n == 1:
			l.cursor++
			l.report.Errorf(l.span(start, l.cursor), "invalid UTF-8 byte %#02x", rest[0])

		case unicode.In(r, unicode.Pattern_White_Space):
			l.takeWhile(func(r rune) bool {
				return unicode.In(r, unicode.Pattern_White_Space)
			})

		case strings.HasPrefix(rest, "//"):
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				l.cursor += i + 1
			} else {
				l.cursor = len(l.text)
			}

		case strings.HasPrefix(rest, "/*"):
			lexBlockComment(l)

		case strings.ContainsRune("([{", r):
			d, _ := token.DelimiterFor(string(r))
			l.cursor++
			l.open(d, start)

		case strings.ContainsRune(")]}", r):
			d, _ := token.DelimiterFor(string(r))
			l.cursor++
			l.closeDelim(d, start)

		case r == '"':
			lexString(l, start)

		case r == '\'':
			lexChar(l, start)

		case r >= '0' && r <= '9':
			lexNumber(l)

		case unicodex.IsXIDStart(r):
			lexWord(l)

		default:
			p := punct.Prefix(rest)
			if p == punct.Unknown {
				l.cursor += n
				l.report.Errorf(l.span(start, l.cursor), "unexpected character %q", r)
				continue
			}
			l.cursor += len(p.String())
			l.push(token.NewPunct(p), start)
		}
	}

	for len(l.frames) > 1 {
		f := l.top()
		l.report.Errorf(l.span(f.open, f.open+1), "unclosed delimiter `%s`", f.delim.Open())
		l.close(len(l.text), len(l.text))
	}
}

func (l *lexer) done() bool {
	return l.cursor >= len(l.text)
}

func (l *lexer) rest() string {
	return l.text[l.cursor:]
}

// peek returns the rune at the given byte offset past the cursor, or -1.
func (l *lexer) peek(offset int) rune {
	if l.cursor+offset >= len(l.text) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.text[l.cursor+offset:])
	return r
}

func (l *lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() {
		r, n := utf8.DecodeRuneInString(l.rest())
		if !f(r) {
			break
		}
		l.cursor += n
	}
	return l.text[start:l.cursor]
}

// closeDelim closes the innermost group opened with d, whose closing
// delimiter starts at start.
func (l *lexer) closeDelim(d token.Delimiter, start int) {
	idx := -1
	for i := len(l.frames) - 1; i > 0; i-- {
		if l.frames[i].delim == d {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.report.Errorf(l.span(start, l.cursor), "unexpected closing delimiter `%s`", d.Close())
		return
	}

	for len(l.frames)-1 > idx {
		f := l.top()
		l.report.Errorf(l.span(f.open, f.open+1), "unclosed delimiter `%s`", f.delim.Open()).
			Note("expected `%s` before `%s`", f.delim.Close(), d.Close())
		l.close(start, start)
	}
	l.close(start, l.cursor)
}

// lexBlockComment skips a block comment. Block comments nest.
func lexBlockComment(l *lexer) {
	start := l.cursor
	depth := 0
	for !l.done() {
		rest := l.rest()
		switch {
		case strings.HasPrefix(rest, "/*"):
			depth++
			l.cursor += 2
		case strings.HasPrefix(rest, "*/"):
			depth--
			l.cursor += 2
			if depth == 0 {
				return
			}
		default:
			l.cursor++
		}
	}
	l.report.Errorf(l.span(start, start+2), "unterminated block comment")
}

// lexWord lexes an identifier, a keyword, or a prefixed literal.
func lexWord(l *lexer) {
	start := l.cursor
	word := l.takeWhile(unicodex.IsXIDContinue)
	next := l.peek(0)

	switch {
	case (word == "b" || word == "r" || word == "br") && next == '"',
		(word == "r" || word == "br") && next == '#' && (l.peek(1) == '"' || l.peek(1) == '#'):
		lexString(l, start)
		return

	case word == "b" && next == '\'':
		lexChar(l, start)
		return

	case word == "r" && next == '#' && unicodex.IsXIDStart(l.peek(1)):
		l.cursor++
		l.takeWhile(unicodex.IsXIDContinue)
		l.push(token.NewIdent(l.sess, l.text[start:l.cursor]), start)
		return
	}

	var tok token.Token
	kw, err := keyword.Lookup(word)
	switch {
	case word == "_":
		tok = token.NewPunct(punct.Underscore)
	case word == "true" || word == "false":
		tok = token.NewLiteral(literal.NewBool(l.sess, word == "true"))
	case l.custom[word]:
		tok = token.NewCustomKeyword(l.sess, word)
	case err == nil && !l.opts.NoKeywords:
		tok = token.NewKeyword(kw)
	default:
		tok = token.NewIdent(l.sess, word)
	}
	l.push(tok, start)
}

// lexString lexes a string or byte string literal starting at start. The
// cursor is at the opening quote, or at the hashes of a raw string.
func lexString(l *lexer, start int) {
	raw := strings.HasPrefix(l.text[start:], "r") || strings.HasPrefix(l.text[start:], "br")
	if raw {
		hashes := l.takeWhile(func(r rune) bool { return r == '#' })
		if l.peek(0) != '"' {
			l.report.Errorf(l.span(start, l.cursor), "expected `\"` to start raw string")
			return
		}
		l.cursor++

		end := "\"" + hashes
		i := strings.Index(l.rest(), end)
		if i < 0 {
			l.cursor = len(l.text)
			l.report.Errorf(l.span(start, l.cursor), "unterminated raw string literal")
			return
		}
		l.cursor += i + len(end)
	} else {
		l.cursor++ // Skip the quote.
		if !l.skipQuoted('"') {
			l.report.Errorf(l.span(start, l.cursor), "unterminated string literal")
			return
		}
	}

	lexLiteral(l, start)
}

// lexChar lexes a character or byte literal starting at start. The cursor is
// at the opening quote.
func lexChar(l *lexer, start int) {
	quote := l.cursor
	l.cursor++

	// A character literal must close on the same line. If it does not, only
	// the quote is consumed and lexing resumes right after it.
	line := l.rest()
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if !strings.HasPrefix(line, "\\") {
		// Unescaped: exactly one rune, then the quote.
		if _, n := utf8.DecodeRuneInString(line); len(line) > n && line[n] == '\'' {
			l.cursor += n + 1
			lexLiteral(l, start)
			return
		}
	} else if len(line) > 2 {
		// Escaped: skip the escaped character, then find the quote.
		if i := strings.IndexByte(line[2:], '\''); i >= 0 {
			l.cursor += 2 + i + 1
			lexLiteral(l, start)
			return
		}
	}

	l.cursor = quote + 1
	l.report.Errorf(l.span(start, l.cursor), "unterminated character literal")
}

// lexNumber lexes a numeric literal.
func lexNumber(l *lexer) {
	start := l.cursor
	_, n := unicodex.Prefix(l.rest())
	prefixed := n > 0

	l.takeDigits(prefixed)
	if !prefixed && l.peek(0) == '.' && l.peek(1) != '.' && !unicodex.IsXIDStart(l.peek(1)) {
		l.cursor++
		if next := l.peek(0); next >= '0' && next <= '9' {
			l.takeDigits(false)
		}
	}

	lexLiteral(l, start)
}

// takeDigits consumes digits, letters, and underscores, as well as the sign
// of an exponent unless hex is set.
func (l *lexer) takeDigits(hex bool) {
	for !l.done() {
		c := l.text[l.cursor]
		if c != '_' && !('0' <= c && c <= '9') && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			return
		}
		l.cursor++

		if !hex && (c == 'e' || c == 'E') {
			if sign := l.peek(0); (sign == '+' || sign == '-') && l.peek(1) >= '0' && l.peek(1) <= '9' {
				l.cursor++
			}
		}
	}
}

// skipQuoted advances past the closing quote of a quoted literal, skipping
// escapes. Returns false if the text ends first.
func (l *lexer) skipQuoted(quote byte) bool {
	for !l.done() {
		switch l.text[l.cursor] {
		case '\\':
			l.cursor += 2
		case quote:
			l.cursor++
			return true
		default:
			l.cursor++
		}
	}
	l.cursor = len(l.text)
	return false
}

// lexLiteral finishes lexing the literal that starts at start, whose closing
// quote or last digit is just before the cursor, by consuming its suffix.
func lexLiteral(l *lexer, start int) {
	if unicodex.IsXIDStart(l.peek(0)) {
		l.takeWhile(unicodex.IsXIDContinue)
	}

	text := l.text[start:l.cursor]
	lit, err := literal.Parse(l.sess, text)
	if err != nil {
		l.report.Errorf(l.span(start, l.cursor), "%v", err)
		return
	}
	l.push(token.NewLiteral(lit), start)
}
