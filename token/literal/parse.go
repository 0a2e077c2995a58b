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

package literal

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/sin/internal/ext/unicodex"
	"github.com/bufbuild/sin/source"
)

var (
	intSuffixes = []string{
		"u8", "u16", "u32", "u64", "u128", "usize",
		"i8", "i16", "i32", "i64", "i128", "isize",
	}
	floatSuffixes = []string{"f32", "f64"}
)

// Parse parses text as a literal, interning it into sess.
//
// text must be the complete spelling of exactly one literal, including any
// quotes, prefixes, and suffixes. Malformed text produces an [*Error].
func Parse(sess *source.Session, text string) (Literal, error) {
	s := &scanner{text: text}
	var v value

	switch {
	case text == "":
		return Literal{}, &Error{Kind: Empty}
	case text == "true" || text == "false":
		v = value{kind: Bool, flag: text == "true"}
	case text[0] >= '0' && text[0] <= '9':
		v = s.number()
	case text[0] == '\'':
		v = s.char(false)
	case text[0] == '"':
		v = s.str(false)
	case strings.HasPrefix(text, `r"`), strings.HasPrefix(text, "r#"):
		s.cursor++
		v = s.rawStr(false)
	case strings.HasPrefix(text, "b'"):
		s.cursor++
		v = s.char(true)
	case strings.HasPrefix(text, `b"`):
		s.cursor++
		v = s.str(true)
	case strings.HasPrefix(text, `br"`), strings.HasPrefix(text, "br#"):
		s.cursor += 2
		v = s.rawStr(true)
	default:
		s.fail(Unknown, 0)
	}

	if s.err != nil {
		return Literal{}, s.err
	}

	lit := Literal{
		kind:   v.kind,
		raw:    sess.Intern(text),
		text:   sess.Intern(v.text),
		suffix: sess.Intern(v.suffix),
		char:   v.char,
		base:   v.base,
		flag:   v.flag,
	}
	if v.kind == ByteString {
		lit.text = sess.Intern("")
		lit.bytes = sess.InternBytes([]byte(v.text))
	}
	return lit, nil
}

// value is a parsed literal before interning.
type value struct {
	kind         Kind
	text, suffix string
	char         rune
	base         uint8
	flag         bool
}

// scanner is a cursor over the text of a single literal.
type scanner struct {
	text   string
	cursor int
	err    *Error
}

// Done returns whether the whole text has been consumed, or an error has been
// recorded.
func (s *scanner) Done() bool {
	return s.err != nil || s.cursor >= len(s.text)
}

// Rest returns the unconsumed text.
func (s *scanner) Rest() string {
	return s.text[s.cursor:]
}

// Peek returns the next rune, or -1 if there is none.
func (s *scanner) Peek() rune {
	if s.Done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.Rest())
	return r
}

// Pop consumes and returns the next rune, or -1 if there is none.
func (s *scanner) Pop() rune {
	if s.Done() {
		return -1
	}
	r, n := utf8.DecodeRuneInString(s.Rest())
	s.cursor += n
	return r
}

// TakeWhile consumes runes while f returns true, returning the consumed text.
func (s *scanner) TakeWhile(f func(rune) bool) string {
	start := s.cursor
	for !s.Done() && f(s.Peek()) {
		s.Pop()
	}
	return s.text[start:s.cursor]
}

// fail records an error. Only the first error is kept.
func (s *scanner) fail(kind ErrorKind, offset int) {
	if s.err == nil {
		s.err = &Error{Kind: kind, Text: s.text, Offset: offset}
	}
}

// noSuffix fails if any text remains.
func (s *scanner) noSuffix() {
	if !s.Done() {
		s.fail(InvalidSuffix, s.cursor)
	}
}

// number parses an integer or float literal.
func (s *scanner) number() value {
	v := value{kind: Integer}
	var prefix int
	v.base, prefix = unicodex.Prefix(s.text)
	s.cursor += prefix

	var digits strings.Builder
	s.digits(&digits, v.base)
	if digits.Len() == 0 {
		s.fail(NoDigits, s.cursor)
		return v
	}

	if v.base == 10 {
		// A dot followed by another dot or an identifier is a range or a
		// method call, not a decimal point.
		rest := s.Rest()
		if len(rest) > 0 && rest[0] == '.' && (len(rest) == 1 || !isIdentStart(rest[1])) && !strings.HasPrefix(rest, "..") {
			v.kind = Float
			digits.WriteRune(s.Pop())
			s.digits(&digits, 10)
		}

		if r := s.Peek(); r == 'e' || r == 'E' {
			v.kind = Float
			digits.WriteRune(s.Pop())
			if r := s.Peek(); r == '+' || r == '-' {
				digits.WriteRune(s.Pop())
			}

			start := s.cursor
			n := digits.Len()
			s.digits(&digits, 10)
			if digits.Len() == n {
				s.fail(NoDigits, start)
			}
		}
	}

	v.text = digits.String()
	v.suffix = s.Rest()
	s.cursor = len(s.text)

	switch {
	case v.suffix == "":
	case v.kind == Integer && slices.Contains(intSuffixes, v.suffix):
	case v.base == 10 && slices.Contains(floatSuffixes, v.suffix):
		// 2f32 is a float, even without a decimal point.
		v.kind = Float
	default:
		s.fail(InvalidSuffix, len(s.text)-len(v.suffix))
	}
	return v
}

// digits consumes digits and underscores valid for base, appending the digits
// to buf.
//
// Decimal digits too large for base are an error rather than the start of a
// suffix.
func (s *scanner) digits(buf *strings.Builder, base uint8) {
	for !s.Done() {
		r := s.Peek()
		if r == '_' {
			s.Pop()
			continue
		}

		if _, ok := unicodex.Digit(r, base); ok {
			buf.WriteRune(s.Pop())
			continue
		}
		if _, ok := unicodex.Digit(r, 10); ok {
			s.fail(InvalidDigit, s.cursor)
		}
		return
	}
}

// char parses a character or byte literal. The cursor must be at the opening
// quote.
func (s *scanner) char(isByte bool) value {
	v := value{kind: Char}
	if isByte {
		v.kind = Byte
	}

	s.Pop() // '
	if s.Peek() == '\'' {
		s.fail(CharCount, s.cursor)
		return v
	}

	start := s.cursor
	r, ok := s.content('\'', isByte)
	if !ok {
		return v
	}
	v.char = r

	if s.Peek() != '\'' {
		if strings.ContainsRune(s.Rest(), '\'') {
			s.fail(CharCount, start)
		} else {
			s.fail(Unterminated, len(s.text))
		}
		return v
	}
	s.Pop()
	s.noSuffix()
	return v
}

// str parses a string or byte string literal. The cursor must be at the
// opening quote.
func (s *scanner) str(isByte bool) value {
	v := value{kind: String}
	if isByte {
		v.kind = ByteString
	}

	s.Pop() // "
	var buf strings.Builder
	for {
		switch s.Peek() {
		case -1:
			s.fail(Unterminated, len(s.text))
			return v
		case '"':
			s.Pop()
			v.text = buf.String()
			s.noSuffix()
			return v
		}

		// Line continuation: a backslash before a newline swallows the
		// newline and any leading whitespace on the next line.
		if strings.HasPrefix(s.Rest(), "\\\n") || strings.HasPrefix(s.Rest(), "\\\r\n") {
			s.Pop()
			s.TakeWhile(func(r rune) bool {
				return r == ' ' || r == '\t' || r == '\n' || r == '\r'
			})
			continue
		}

		r, ok := s.content('"', isByte)
		if !ok {
			return v
		}
		if isByte {
			buf.WriteByte(byte(r))
		} else {
			buf.WriteRune(r)
		}
	}
}

// rawStr parses a raw string or raw byte string. The cursor must be just
// after the r.
func (s *scanner) rawStr(isByte bool) value {
	v := value{kind: String, flag: true}
	if isByte {
		v.kind = ByteString
	}

	hashes := s.TakeWhile(func(r rune) bool { return r == '#' })
	if s.Peek() != '"' {
		// r#foo is a raw identifier.
		s.fail(Unknown, 0)
		return v
	}
	s.Pop()

	start := s.cursor
	end := strings.Index(s.Rest(), `"`+hashes)
	if end < 0 {
		s.fail(Unterminated, len(s.text))
		return v
	}

	v.text = s.text[start : start+end]
	s.cursor = start + end + 1 + len(hashes)
	if isByte {
		for i := range len(v.text) {
			if v.text[i] >= 0x80 {
				s.fail(NonASCII, start+i)
				return v
			}
		}
	}
	s.noSuffix()
	return v
}

// content parses a single unit of quoted content: a character or an escape.
func (s *scanner) content(quote rune, isByte bool) (rune, bool) {
	start := s.cursor
	r := s.Pop()
	switch {
	case r == -1:
		s.fail(Unterminated, len(s.text))
		return 0, false
	case r == '\\':
		return s.escape(start, quote, isByte)
	case quote == '\'' && (r == '\n' || r == '\r' || r == '\t'):
		// These must be escaped in character literals.
		s.fail(InvalidEscape, start)
		return 0, false
	case isByte && r >= utf8.RuneSelf:
		s.fail(NonASCII, start)
		return 0, false
	}
	return r, true
}

// escape parses the remainder of an escape sequence; start is the offset of
// the backslash.
func (s *scanner) escape(start int, quote rune, isByte bool) (rune, bool) {
	switch r := s.Pop(); r {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '0':
		return 0, true
	case '\\', '\'', '"':
		return r, true

	case 'x':
		if len(s.Rest()) < 2 {
			s.fail(InvalidEscape, start)
			return 0, false
		}
		hi, ok1 := unicodex.Digit(rune(s.text[s.cursor]), 16)
		lo, ok2 := unicodex.Digit(rune(s.text[s.cursor+1]), 16)
		if !ok1 || !ok2 {
			s.fail(InvalidEscape, start)
			return 0, false
		}
		s.cursor += 2

		v := rune(hi)<<4 | rune(lo)
		if !isByte && v >= 0x80 {
			// \x is limited to ASCII outside of byte literals.
			s.fail(InvalidEscape, start)
			return 0, false
		}
		return v, true

	case 'u':
		if isByte || s.Peek() != '{' {
			s.fail(InvalidEscape, start)
			return 0, false
		}
		s.Pop()

		var v rune
		var n int
		for {
			r := s.Pop()
			if r == '}' {
				break
			}
			if r == '_' && n > 0 {
				continue
			}

			d, ok := unicodex.Digit(r, 16)
			if !ok || n == 6 {
				s.fail(InvalidEscape, start)
				return 0, false
			}
			v = v<<4 | rune(d)
			n++
		}

		switch {
		case n == 0:
			s.fail(InvalidEscape, start)
			return 0, false
		case v > utf8.MaxRune || (v >= 0xd800 && v < 0xe000):
			s.fail(Overflow, start)
			return 0, false
		}
		return v, true

	default:
		s.fail(InvalidEscape, start)
		return 0, false
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || b >= 0x80 ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
