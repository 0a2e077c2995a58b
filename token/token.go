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

package token

import (
	"fmt"

	"github.com/bufbuild/sin/intern"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token/keyword"
	"github.com/bufbuild/sin/token/literal"
	"github.com/bufbuild/sin/token/punct"
)

// Token is a single lexical token.
//
// Tokens are small, comparable values. The zero Token is not a valid token;
// it is returned by functions that want to indicate the absence of a token.
type Token struct {
	kind    Kind
	text    intern.Text // Ident and CustomKeyword.
	lit     literal.Literal
	delim   Delimiter
	punct   punct.Punct
	keyword keyword.Keyword
}

// NewIdent returns an identifier token.
func NewIdent(sess *source.Session, name string) Token {
	return Token{kind: IdentKind, text: sess.Intern(name)}
}

// NewCustomKeyword returns a custom keyword token.
func NewCustomKeyword(sess *source.Session, word string) Token {
	return Token{kind: CustomKeywordKind, text: sess.Intern(word)}
}

// NewLiteral returns a literal token.
func NewLiteral(lit literal.Literal) Token {
	return Token{kind: LiteralKind, lit: lit}
}

// NewDelimiter returns the token for a delimiter.
func NewDelimiter(d Delimiter) Token {
	return Token{kind: DelimiterKind, delim: d}
}

// NewPunct returns a punctuation token.
func NewPunct(p punct.Punct) Token {
	return Token{kind: PunctKind, punct: p}
}

// NewKeyword returns a keyword token.
func NewKeyword(kw keyword.Keyword) Token {
	return Token{kind: KeywordKind, keyword: kw}
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.kind == InvalidKind
}

// Kind returns what kind of token this is.
func (t Token) Kind() Kind {
	return t.kind
}

// AsIdent returns the name of an identifier token.
func (t Token) AsIdent() (intern.Text, bool) {
	if t.kind != IdentKind {
		return intern.Text{}, false
	}
	return t.text, true
}

// AsCustomKeyword returns the word of a custom keyword token.
func (t Token) AsCustomKeyword() (intern.Text, bool) {
	if t.kind != CustomKeywordKind {
		return intern.Text{}, false
	}
	return t.text, true
}

// AsLiteral returns the value of a literal token.
func (t Token) AsLiteral() (literal.Literal, bool) {
	return t.lit, t.kind == LiteralKind
}

// AsDelimiter returns the delimiter of a delimiter token.
func (t Token) AsDelimiter() (Delimiter, bool) {
	return t.delim, t.kind == DelimiterKind
}

// AsPunct returns the punctuation of a punctuation token.
func (t Token) AsPunct() (punct.Punct, bool) {
	return t.punct, t.kind == PunctKind
}

// AsKeyword returns the keyword of a keyword token.
func (t Token) AsKeyword() (keyword.Keyword, bool) {
	return t.keyword, t.kind == KeywordKind
}

// String returns the canonical spelling of this token.
//
// Delimiter tokens are spelled as their opening delimiter.
func (t Token) String() string {
	switch t.kind {
	case IdentKind, CustomKeywordKind:
		return t.text.String()
	case LiteralKind:
		return t.lit.String()
	case DelimiterKind:
		return t.delim.Open()
	case PunctKind:
		return t.punct.String()
	case KeywordKind:
		return t.keyword.String()
	default:
		return "<invalid>"
	}
}

// GoString implements [fmt.GoStringer].
func (t Token) GoString() string {
	if t.IsZero() {
		return "token.Token{}"
	}
	return fmt.Sprintf("token.%v(%s)", t.kind, t)
}
