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

// Package punct provides [Punct], an enum of every punctuation token.
package punct

import (
	"fmt"
	"iter"

	"github.com/bufbuild/sin/internal/trie"
)

const (
	Unknown Punct = iota

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	Caret      // ^
	Not        // !
	And        // &
	Or         // |
	AndAnd     // &&
	OrOr       // ||
	Shl        // <<
	Shr        // >>
	PlusEq     // +=
	MinusEq    // -=
	StarEq     // *=
	SlashEq    // /=
	PercentEq  // %=
	CaretEq    // ^=
	AndEq      // &=
	OrEq       // |=
	ShlEq      // <<=
	ShrEq      // >>=
	Eq         // =
	EqEq       // ==
	Ne         // !=
	Gt         // >
	Lt         // <
	Ge         // >=
	LArrow     // <-
	Le         // <=
	At         // @
	Underscore // _
	Dot        // .
	DotDot     // ..
	DotDotDot  // ...
	DotDotEq   // ..=
	Comma      // ,
	Semi       // ;
	Colon      // :
	PathSep    // ::
	RArrow     // ->
	FatArrow   // =>
	Pound      // #
	Dollar     // $
	Question   // ?
	Tilde      // ~

	total
)

// Punct is a punctuation token, such as `::` or `+=`.
//
// The zero value is [Unknown], which is not valid punctuation.
type Punct byte

// UnknownError is returned by [Lookup] for text that is not punctuation.
type UnknownError struct {
	Text string
}

// Error implements [error].
func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown punctuation %q", e.Text)
}

var spellings = [...]string{
	Unknown:    "<unknown>",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Caret:      "^",
	Not:        "!",
	And:        "&",
	Or:         "|",
	AndAnd:     "&&",
	OrOr:       "||",
	Shl:        "<<",
	Shr:        ">>",
	PlusEq:     "+=",
	MinusEq:    "-=",
	StarEq:     "*=",
	SlashEq:    "/=",
	PercentEq:  "%=",
	CaretEq:    "^=",
	AndEq:      "&=",
	OrEq:       "|=",
	ShlEq:      "<<=",
	ShrEq:      ">>=",
	Eq:         "=",
	EqEq:       "==",
	Ne:         "!=",
	Gt:         ">",
	Lt:         "<",
	Ge:         ">=",
	LArrow:     "<-",
	Le:         "<=",
	At:         "@",
	Underscore: "_",
	Dot:        ".",
	DotDot:     "..",
	DotDotDot:  "...",
	DotDotEq:   "..=",
	Comma:      ",",
	Semi:       ";",
	Colon:      ":",
	PathSep:    "::",
	RArrow:     "->",
	FatArrow:   "=>",
	Pound:      "#",
	Dollar:     "$",
	Question:   "?",
	Tilde:      "~",
	total:      "",
}

var names = [...]string{
	Unknown:    "Unknown",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Caret:      "Caret",
	Not:        "Not",
	And:        "And",
	Or:         "Or",
	AndAnd:     "AndAnd",
	OrOr:       "OrOr",
	Shl:        "Shl",
	Shr:        "Shr",
	PlusEq:     "PlusEq",
	MinusEq:    "MinusEq",
	StarEq:     "StarEq",
	SlashEq:    "SlashEq",
	PercentEq:  "PercentEq",
	CaretEq:    "CaretEq",
	AndEq:      "AndEq",
	OrEq:       "OrEq",
	ShlEq:      "ShlEq",
	ShrEq:      "ShrEq",
	Eq:         "Eq",
	EqEq:       "EqEq",
	Ne:         "Ne",
	Gt:         "Gt",
	Lt:         "Lt",
	Ge:         "Ge",
	LArrow:     "LArrow",
	Le:         "Le",
	At:         "At",
	Underscore: "Underscore",
	Dot:        "Dot",
	DotDot:     "DotDot",
	DotDotDot:  "DotDotDot",
	DotDotEq:   "DotDotEq",
	Comma:      "Comma",
	Semi:       "Semi",
	Colon:      "Colon",
	PathSep:    "PathSep",
	RArrow:     "RArrow",
	FatArrow:   "FatArrow",
	Pound:      "Pound",
	Dollar:     "Dollar",
	Question:   "Question",
	Tilde:      "Tilde",
	total:      "",
}

var (
	lookup = func() map[string]Punct {
		m := make(map[string]Punct, total-1)
		for p := range All() {
			m[p.String()] = p
		}
		return m
	}()

	prefixes = func() *trie.Trie[Punct] {
		t := new(trie.Trie[Punct])
		for p := range All() {
			t.Insert(p.String(), p)
		}
		return t
	}()
)

// All returns an iterator over every valid punctuation value, in declaration
// order.
func All() iter.Seq[Punct] {
	return func(yield func(Punct) bool) {
		for p := Unknown + 1; p < total; p++ {
			if !yield(p) {
				return
			}
		}
	}
}

// Lookup looks up the punctuation spelled text.
//
// Returns an [*UnknownError] if text is not exactly the spelling of some
// punctuation.
func Lookup(text string) (Punct, error) {
	if p, ok := lookup[text]; ok {
		return p, nil
	}
	return Unknown, &UnknownError{Text: text}
}

// Prefix returns the longest punctuation that text starts with.
//
// Returns [Unknown] if text does not start with punctuation.
func Prefix(text string) Punct {
	_, p := prefixes.Get(text)
	return p
}

// IsValid returns whether this is a valid punctuation value (not including
// [Unknown]).
func (p Punct) IsValid() bool {
	return p > Unknown && p < total
}

// String returns the spelling of this punctuation.
func (p Punct) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("punct.Punct(%d)", int(p))
	}
	return spellings[p]
}

// GoString implements [fmt.GoStringer].
func (p Punct) GoString() string {
	if int(p) >= len(names) || names[p] == "" {
		return fmt.Sprintf("punct.Punct(%d)", int(p))
	}
	return "punct." + names[p]
}
