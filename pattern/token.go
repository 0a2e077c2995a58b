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

package pattern

import (
	"fmt"

	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
	"github.com/bufbuild/sin/token/keyword"
	"github.com/bufbuild/sin/token/punct"
)

// Token is a pattern over tokens.
//
// Each category of token has its own arm wrapping a pattern over that
// category's payload. A token only matches an arm of its own category; the
// exceptions are [Any], which matches every token, and [Nothing], which
// matches only the absence of a token.
//
// The zero Token is [Nothing].
type Token struct {
	kind     token.Kind // InvalidKind for Nothing and Any.
	anyToken bool

	text    Pattern[string] // Ident and CustomKeyword.
	lit     Literal
	delim   Pattern[token.Delimiter]
	punct   Pattern[punct.Punct]
	keyword Pattern[keyword.Keyword]
}

// Nothing returns a pattern that matches the end of a stream.
func Nothing() Token {
	return Token{}
}

// Any returns a pattern that matches any token, but not the end of a stream.
func Any() Token {
	return Token{anyToken: true}
}

// Ident returns a pattern over identifiers.
func Ident(p Pattern[string]) Token {
	return Token{kind: token.IdentKind, text: p}
}

// CustomKeyword returns a pattern over custom keywords.
func CustomKeyword(p Pattern[string]) Token {
	return Token{kind: token.CustomKeywordKind, text: p}
}

// Lit returns a pattern over literals.
func Lit(p Literal) Token {
	return Token{kind: token.LiteralKind, lit: p}
}

// Delimiter returns a pattern over groups, matching on their delimiters.
func Delimiter(p Pattern[token.Delimiter]) Token {
	return Token{kind: token.DelimiterKind, delim: p}
}

// Punct returns a pattern over punctuation.
func Punct(p Pattern[punct.Punct]) Token {
	return Token{kind: token.PunctKind, punct: p}
}

// Keyword returns a pattern over keywords.
func Keyword(p Pattern[keyword.Keyword]) Token {
	return Token{kind: token.KeywordKind, keyword: p}
}

// Of returns a pattern that matches only tokens equal to tok.
//
// Literals are matched by value; see [OfLiteral]. Of the zero token is
// [Nothing].
func Of(tok token.Token) Token {
	switch tok.Kind() {
	case token.IdentKind:
		text, _ := tok.AsIdent()
		return Ident(Specific(text.String()))
	case token.CustomKeywordKind:
		text, _ := tok.AsCustomKeyword()
		return CustomKeyword(Specific(text.String()))
	case token.LiteralKind:
		lit, _ := tok.AsLiteral()
		return Lit(OfLiteral(lit))
	case token.DelimiterKind:
		d, _ := tok.AsDelimiter()
		return Delimiter(Specific(d))
	case token.PunctKind:
		p, _ := tok.AsPunct()
		return Punct(Specific(p))
	case token.KeywordKind:
		kw, _ := tok.AsKeyword()
		return Keyword(Specific(kw))
	default:
		return Nothing()
	}
}

// IsNothing returns whether this is the [Nothing] pattern.
func (p Token) IsNothing() bool {
	return p.kind == token.InvalidKind && !p.anyToken
}

// Matches returns whether tok matches this pattern. A nil tok means that
// there is no token, such as at the end of a stream.
func (p Token) Matches(tok *token.Token) bool {
	switch {
	case tok == nil || tok.IsZero():
		return p.IsNothing()
	case p.anyToken:
		return true
	case tok.Kind() != p.kind:
		return false
	}

	switch p.kind {
	case token.IdentKind:
		text, _ := tok.AsIdent()
		return p.text.Matches(text.String())
	case token.CustomKeywordKind:
		text, _ := tok.AsCustomKeyword()
		return p.text.Matches(text.String())
	case token.LiteralKind:
		lit, _ := tok.AsLiteral()
		return p.lit.Matches(lit)
	case token.DelimiterKind:
		d, _ := tok.AsDelimiter()
		return p.delim.Matches(d)
	case token.PunctKind:
		v, _ := tok.AsPunct()
		return p.punct.Matches(v)
	case token.KeywordKind:
		kw, _ := tok.AsKeyword()
		return p.keyword.Matches(kw)
	default:
		return false
	}
}

// MatchesTree is like [Token.Matches], but takes a tree; the zero tree means
// that there is no token.
func (p Token) MatchesTree(t token.Tree) bool {
	if t.IsZero() {
		return p.Matches(nil)
	}
	tok := t.Token()
	return p.Matches(&tok)
}

// String implements [fmt.Stringer].
//
// This is the text used to describe what a parser expected in a diagnostic,
// such as "ident" or "`struct`".
func (p Token) String() string {
	if p.anyToken {
		return "token"
	}

	switch p.kind {
	case token.InvalidKind:
		return "end of tokens"
	case token.IdentKind:
		if p.text.IsWildcard() {
			return "ident"
		}
		return p.text.String()
	case token.CustomKeywordKind:
		if p.text.IsWildcard() {
			return "custom keyword"
		}
		return p.text.String()
	case token.LiteralKind:
		return p.lit.String()
	case token.DelimiterKind:
		if d, ok := p.delim.Value(); ok {
			return "`" + d.Open() + "`"
		}
		return "delimiter"
	case token.PunctKind:
		if p.punct.IsWildcard() {
			return "punctuation"
		}
		return p.punct.String()
	case token.KeywordKind:
		if p.keyword.IsWildcard() {
			return "keyword"
		}
		return p.keyword.String()
	default:
		return fmt.Sprintf("pattern.Token(%v)", p.kind)
	}
}

// Expected builds the diagnostic for failing to match what, which describes
// the expected token(s), against found. The zero tree means the end of the
// stream was found.
//
// The message reads "expected {what}, found `{found}`", or "expected {what},
// found end of tokens".
func Expected(what fmt.Stringer, found token.Tree, span source.Span) report.Diagnostic {
	if found.IsZero() {
		return report.Diagnostic{
			Span:    span,
			Message: fmt.Sprintf("expected %v, found end of tokens", what),
		}
	}
	return report.Diagnostic{
		Span:    span,
		Message: fmt.Sprintf("expected %v, found `%v`", what, found.Token()),
	}
}
