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

// Package keyword provides [Keyword], an enum of every reserved word.
package keyword

import (
	"fmt"
	"iter"
)

const (
	Unknown Keyword = iota

	Abstract  // abstract
	As        // as
	Async     // async
	Auto      // auto
	Await     // await
	Become    // become
	Box       // box
	Break     // break
	Const     // const
	Continue  // continue
	Crate     // crate
	Default   // default
	Do        // do
	Dyn       // dyn
	Else      // else
	Enum      // enum
	Extern    // extern
	Final     // final
	Fn        // fn
	For       // for
	If        // if
	Impl      // impl
	In        // in
	Let       // let
	Loop      // loop
	Macro     // macro
	Match     // match
	Mod       // mod
	Move      // move
	Mut       // mut
	Override  // override
	Priv      // priv
	Pub       // pub
	Ref       // ref
	Return    // return
	SelfType  // Self
	SelfValue // self
	Static    // static
	Struct    // struct
	Super     // super
	Trait     // trait
	Try       // try
	Type      // type
	Typeof    // typeof
	Union     // union
	Unsafe    // unsafe
	Unsized   // unsized
	Use       // use
	Virtual   // virtual
	Where     // where
	While     // while
	Yield     // yield

	total
)

// Keyword is a reserved word, such as `struct` or `Self`.
//
// The zero value is [Unknown], which is not a valid keyword.
type Keyword byte

// UnknownError is returned by [Lookup] for text that is not a keyword.
type UnknownError struct {
	Text string
}

// Error implements [error].
func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown keyword %q", e.Text)
}

var spellings = [...]string{
	Abstract:  "abstract",
	As:        "as",
	Async:     "async",
	Auto:      "auto",
	Await:     "await",
	Become:    "become",
	Box:       "box",
	Break:     "break",
	Const:     "const",
	Continue:  "continue",
	Crate:     "crate",
	Default:   "default",
	Do:        "do",
	Dyn:       "dyn",
	Else:      "else",
	Enum:      "enum",
	Extern:    "extern",
	Final:     "final",
	Fn:        "fn",
	For:       "for",
	If:        "if",
	Impl:      "impl",
	In:        "in",
	Let:       "let",
	Loop:      "loop",
	Macro:     "macro",
	Match:     "match",
	Mod:       "mod",
	Move:      "move",
	Mut:       "mut",
	Override:  "override",
	Priv:      "priv",
	Pub:       "pub",
	Ref:       "ref",
	Return:    "return",
	SelfType:  "Self",
	SelfValue: "self",
	Static:    "static",
	Struct:    "struct",
	Super:     "super",
	Trait:     "trait",
	Try:       "try",
	Type:      "type",
	Typeof:    "typeof",
	Union:     "union",
	Unsafe:    "unsafe",
	Unsized:   "unsized",
	Use:       "use",
	Virtual:   "virtual",
	Where:     "where",
	While:     "while",
	Yield:     "yield",
}

var names = [...]string{
	Abstract:  "Abstract",
	As:        "As",
	Async:     "Async",
	Auto:      "Auto",
	Await:     "Await",
	Become:    "Become",
	Box:       "Box",
	Break:     "Break",
	Const:     "Const",
	Continue:  "Continue",
	Crate:     "Crate",
	Default:   "Default",
	Do:        "Do",
	Dyn:       "Dyn",
	Else:      "Else",
	Enum:      "Enum",
	Extern:    "Extern",
	Final:     "Final",
	Fn:        "Fn",
	For:       "For",
	If:        "If",
	Impl:      "Impl",
	In:        "In",
	Let:       "Let",
	Loop:      "Loop",
	Macro:     "Macro",
	Match:     "Match",
	Mod:       "Mod",
	Move:      "Move",
	Mut:       "Mut",
	Override:  "Override",
	Priv:      "Priv",
	Pub:       "Pub",
	Ref:       "Ref",
	Return:    "Return",
	SelfType:  "SelfType",
	SelfValue: "SelfValue",
	Static:    "Static",
	Struct:    "Struct",
	Super:     "Super",
	Trait:     "Trait",
	Try:       "Try",
	Type:      "Type",
	Typeof:    "Typeof",
	Union:     "Union",
	Unsafe:    "Unsafe",
	Unsized:   "Unsized",
	Use:       "Use",
	Virtual:   "Virtual",
	Where:     "Where",
	While:     "While",
	Yield:     "Yield",
}

var lookup = func() map[string]Keyword {
	m := make(map[string]Keyword, total-1)
	for k := range All() {
		m[k.String()] = k
	}
	return m
}()

// All returns an iterator over every valid keyword, in declaration order.
func All() iter.Seq[Keyword] {
	return func(yield func(Keyword) bool) {
		for k := Unknown + 1; k < total; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// Lookup looks up the keyword spelled text.
//
// Keywords are case-sensitive: "Self" and "self" are different keywords, and
// "Struct" is not a keyword at all. Returns an [*UnknownError] if text is not
// a keyword.
func Lookup(text string) (Keyword, error) {
	if k, ok := lookup[text]; ok {
		return k, nil
	}
	return Unknown, &UnknownError{Text: text}
}

// IsValid returns whether this is a valid keyword (not including [Unknown]).
func (k Keyword) IsValid() bool {
	return k > Unknown && k < total
}

// String returns the spelling of this keyword.
func (k Keyword) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("keyword.Keyword(%d)", int(k))
	}
	return spellings[k]
}

// GoString implements [fmt.GoStringer].
func (k Keyword) GoString() string {
	if !k.IsValid() {
		return fmt.Sprintf("keyword.Keyword(%d)", int(k))
	}
	return "keyword." + names[k]
}
