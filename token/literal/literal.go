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

// Package literal provides [Literal], the value of a literal token.
//
// Literals remember the exact text they were parsed from, so that printing a
// literal reproduces its source byte for byte: `0x_FF_u8` stays `0x_FF_u8`
// rather than becoming `255`. The structured value is available through the
// accessors for each [Kind].
package literal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/sin/intern"
	"github.com/bufbuild/sin/source"
)

const (
	Invalid Kind = iota // The zero literal.

	Bool       // true or false.
	Char       // A character, such as 'a'.
	Integer    // An integer, such as 0x2a or 42u8.
	Float      // A floating-point number, such as 1.5e3 or 2f32.
	String     // A string, such as "foo" or r#"foo"#.
	Byte       // A byte, such as b'a'.
	ByteString // A byte string, such as b"foo" or br"foo".
)

// Kind is a category of [Literal].
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Byte:
		return "byte"
	case ByteString:
		return "byte string"
	default:
		return fmt.Sprintf("literal.Kind(%d)", int(k))
	}
}

// Literal is a parsed literal.
//
// Literals are comparable. Two literals are == exactly when they were parsed
// from the same text in the same session.
type Literal struct {
	kind Kind
	raw  intern.Text

	// The decoded value of a string, the digits of an integer, or the number
	// part of a float. Digits never contain underscores.
	text   intern.Text
	suffix intern.Text
	bytes  intern.Slice[byte]

	char rune  // Char and Byte.
	base uint8 // Integer.
	flag bool  // The value of a Bool; whether a String or ByteString is raw.
}

// IsZero returns whether this is the zero literal.
func (l Literal) IsZero() bool {
	return l.kind == Invalid
}

// Kind returns this literal's category.
func (l Literal) Kind() Kind {
	return l.kind
}

// Raw returns the interned text this literal was parsed from.
func (l Literal) Raw() intern.Text {
	return l.raw
}

// String returns the text this literal was parsed from.
func (l Literal) String() string {
	return l.raw.String()
}

// GoString implements [fmt.GoStringer].
func (l Literal) GoString() string {
	return fmt.Sprintf("literal.%s(%s)", strings.ReplaceAll(l.kind.String(), " ", "_"), l.raw)
}

// AsBool returns this literal's value if it is a [Bool].
func (l Literal) AsBool() (value, ok bool) {
	return l.flag, l.kind == Bool
}

// AsChar returns this literal's value if it is a [Char].
func (l Literal) AsChar() (rune, bool) {
	return l.char, l.kind == Char
}

// AsByte returns this literal's value if it is a [Byte].
func (l Literal) AsByte() (byte, bool) {
	return byte(l.char), l.kind == Byte
}

// AsString returns this literal's decoded value if it is a [String].
func (l Literal) AsString() (string, bool) {
	return l.text.String(), l.kind == String
}

// AsByteString returns this literal's decoded value if it is a [ByteString].
//
// The returned slice is shared and must not be modified.
func (l Literal) AsByteString() ([]byte, bool) {
	if l.kind != ByteString {
		return nil, false
	}
	return l.bytes.Value(), true
}

// IsRaw returns whether this is a raw [String] or [ByteString], such as
// r"foo".
func (l Literal) IsRaw() bool {
	return (l.kind == String || l.kind == ByteString) && l.flag
}

// Base returns the base of an [Integer]: one of 2, 8, 10, or 16.
//
// Returns 10 for a [Float], and 0 for anything else.
func (l Literal) Base() int {
	switch l.kind {
	case Integer:
		return int(l.base)
	case Float:
		return 10
	default:
		return 0
	}
}

// Digits returns the digits of an [Integer] or [Float], without any base
// prefix, suffix, or underscores.
func (l Literal) Digits() string {
	if l.kind != Integer && l.kind != Float {
		return ""
	}
	return l.text.String()
}

// Suffix returns the type suffix of a numeric literal, such as "u8".
func (l Literal) Suffix() string {
	return l.suffix.String()
}

// Uint64 returns the value of an [Integer].
//
// Returns false if this is not an integer, or if its value does not fit in
// a uint64.
func (l Literal) Uint64() (uint64, bool) {
	if l.kind != Integer {
		return 0, false
	}
	v, err := strconv.ParseUint(l.text.String(), int(l.base), 64)
	return v, err == nil
}

// Float64 returns the value of a [Float], rounded to the nearest float64.
//
// Returns false if this is not a float, or if its value is out of range.
func (l Literal) Float64() (float64, bool) {
	if l.kind != Float {
		return 0, false
	}
	v, err := strconv.ParseFloat(l.text.String(), 64)
	return v, err == nil
}

// NewBool returns a boolean literal.
func NewBool(sess *source.Session, value bool) Literal {
	return mustParse(sess, strconv.FormatBool(value))
}

// NewChar returns a character literal, escaping r as necessary.
//
// A surrogate or out-of-range r has no character literal; it is replaced
// with U+FFFD.
func NewChar(sess *source.Session, r rune) Literal {
	return mustParse(sess, QuoteChar(r))
}

// NewByte returns a byte literal, escaping b as necessary.
func NewByte(sess *source.Session, b byte) Literal {
	return mustParse(sess, QuoteByte(b))
}

// NewInteger returns an unsuffixed decimal integer literal.
func NewInteger(sess *source.Session, value uint64) Literal {
	return mustParse(sess, strconv.FormatUint(value, 10))
}

// NewFloat returns an unsuffixed float literal.
//
// Panics if value is negative or not finite: such values have no literal form.
func NewFloat(sess *source.Session, value float64) Literal {
	if math.IsInf(value, 0) || math.IsNaN(value) || value < 0 {
		panic(fmt.Sprintf("sin/literal: %v has no literal form", value))
	}

	text := strconv.FormatFloat(value, 'g', -1, 64)
	text = strings.Replace(text, "e+", "e", 1)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return mustParse(sess, text)
}

// NewString returns a string literal, escaping value as necessary.
func NewString(sess *source.Session, value string) Literal {
	return mustParse(sess, QuoteString(value))
}

// NewByteString returns a byte string literal, escaping value as necessary.
func NewByteString(sess *source.Session, value []byte) Literal {
	return mustParse(sess, QuoteByteString(value))
}

// QuoteChar returns the character literal spelling of r, such as '\0' or
// '\u{7f}'. Invalid runes are spelled as U+FFFD.
func QuoteChar(r rune) string {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}

	var buf strings.Builder
	buf.WriteByte('\'')
	escapeRune(&buf, r, '\'')
	buf.WriteByte('\'')
	return buf.String()
}

// QuoteByte returns the byte literal spelling of b, such as b'\x7f'.
func QuoteByte(b byte) string {
	var buf strings.Builder
	buf.WriteString("b'")
	escapeByte(&buf, b, '\'')
	buf.WriteByte('\'')
	return buf.String()
}

// QuoteString returns the string literal spelling of value. Invalid UTF-8 is
// spelled as U+FFFD.
func QuoteString(value string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, r := range value {
		escapeRune(&buf, r, '"')
	}
	buf.WriteByte('"')
	return buf.String()
}

// QuoteByteString returns the byte string literal spelling of value.
func QuoteByteString(value []byte) string {
	var buf strings.Builder
	buf.WriteString(`b"`)
	for _, b := range value {
		escapeByte(&buf, b, '"')
	}
	buf.WriteByte('"')
	return buf.String()
}

func mustParse(sess *source.Session, text string) Literal {
	lit, err := Parse(sess, text)
	if err != nil {
		panic(fmt.Sprintf("sin/literal: generated invalid literal: %v", err))
	}
	return lit
}

func escapeRune(buf *strings.Builder, r rune, quote rune) {
	switch {
	case r == quote || r == '\\':
		buf.WriteByte('\\')
		buf.WriteRune(r)
	case r == '\n':
		buf.WriteString(`\n`)
	case r == '\r':
		buf.WriteString(`\r`)
	case r == '\t':
		buf.WriteString(`\t`)
	case r == 0:
		buf.WriteString(`\0`)
	case !strconv.IsPrint(r):
		fmt.Fprintf(buf, `\u{%x}`, r)
	default:
		buf.WriteRune(r)
	}
}

func escapeByte(buf *strings.Builder, b byte, quote byte) {
	switch {
	case b == quote || b == '\\':
		buf.WriteByte('\\')
		buf.WriteByte(b)
	case b == '\n':
		buf.WriteString(`\n`)
	case b == '\r':
		buf.WriteString(`\r`)
	case b == '\t':
		buf.WriteString(`\t`)
	case b == 0:
		buf.WriteString(`\0`)
	case b < 0x20 || b >= 0x7f:
		fmt.Fprintf(buf, `\x%02x`, b)
	default:
		buf.WriteByte(b)
	}
}
