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
	"strconv"
	"strings"

	"github.com/bufbuild/sin/token/literal"
)

// Literal is a pattern over literals.
//
// It either matches any literal, any literal of one [literal.Kind], or one
// specific literal value.
type Literal struct {
	kind literal.Kind // Invalid means any literal.

	b Pattern[bool]
	r Pattern[rune]   // Char and Byte.
	s Pattern[string] // String and ByteString.
	u Pattern[uint64]
	f Pattern[float64]
}

// AnyLiteral returns a pattern that matches every literal.
func AnyLiteral() Literal {
	return Literal{}
}

// Bool returns a pattern over boolean literals.
func Bool(p Pattern[bool]) Literal {
	return Literal{kind: literal.Bool, b: p}
}

// Char returns a pattern over character literals.
func Char(p Pattern[rune]) Literal {
	return Literal{kind: literal.Char, r: p}
}

// Byte returns a pattern over byte literals.
func Byte(p Pattern[byte]) Literal {
	l := Literal{kind: literal.Byte}
	if v, ok := p.Value(); ok {
		l.r = Specific(rune(v))
	}
	return l
}

// Integer returns a pattern over integer literals, matching on their value.
//
// Integers too large for a uint64 only match a wildcard.
func Integer(p Pattern[uint64]) Literal {
	return Literal{kind: literal.Integer, u: p}
}

// Float returns a pattern over float literals, matching on their value.
func Float(p Pattern[float64]) Literal {
	return Literal{kind: literal.Float, f: p}
}

// String returns a pattern over string literals, matching on their decoded
// value.
func String(p Pattern[string]) Literal {
	return Literal{kind: literal.String, s: p}
}

// ByteString returns a pattern over byte string literals, matching on their
// decoded value.
func ByteString(p Pattern[string]) Literal {
	return Literal{kind: literal.ByteString, s: p}
}

// OfLiteral returns a pattern that matches literals with the same kind and
// value as lit.
//
// Spelling is not significant: a pattern built from 0x10 matches 16.
func OfLiteral(lit literal.Literal) Literal {
	switch lit.Kind() {
	case literal.Bool:
		v, _ := lit.AsBool()
		return Bool(Specific(v))
	case literal.Char:
		v, _ := lit.AsChar()
		return Char(Specific(v))
	case literal.Byte:
		v, _ := lit.AsByte()
		return Byte(Specific(v))
	case literal.Integer:
		v, ok := lit.Uint64()
		if !ok {
			return Integer(Wildcard[uint64]())
		}
		return Integer(Specific(v))
	case literal.Float:
		v, _ := lit.Float64()
		return Float(Specific(v))
	case literal.String:
		v, _ := lit.AsString()
		return String(Specific(v))
	case literal.ByteString:
		v, _ := lit.AsByteString()
		return ByteString(Specific(string(v)))
	default:
		return AnyLiteral()
	}
}

// Kind returns the kind of literal this pattern matches, or
// [literal.Invalid] if it matches any literal.
func (p Literal) Kind() literal.Kind {
	return p.kind
}

// Matches returns whether lit matches this pattern.
//
// Literals of a different kind never match, even if this pattern is a
// wildcard for its kind.
func (p Literal) Matches(lit literal.Literal) bool {
	if lit.IsZero() {
		return false
	}
	if p.kind == literal.Invalid {
		return true
	}
	if lit.Kind() != p.kind {
		return false
	}

	switch p.kind {
	case literal.Bool:
		v, _ := lit.AsBool()
		return p.b.Matches(v)
	case literal.Char:
		v, _ := lit.AsChar()
		return p.r.Matches(v)
	case literal.Byte:
		v, _ := lit.AsByte()
		return p.r.Matches(rune(v))
	case literal.Integer:
		v, ok := lit.Uint64()
		return p.u.IsWildcard() || (ok && p.u.Matches(v))
	case literal.Float:
		v, ok := lit.Float64()
		return p.f.IsWildcard() || (ok && p.f.Matches(v))
	case literal.String:
		v, _ := lit.AsString()
		return p.s.Matches(v)
	case literal.ByteString:
		v, _ := lit.AsByteString()
		return p.s.Matches(string(v))
	default:
		return false
	}
}

// IsWildcard returns whether this pattern matches every literal of its kind.
func (p Literal) IsWildcard() bool {
	switch p.kind {
	case literal.Bool:
		return p.b.IsWildcard()
	case literal.Char, literal.Byte:
		return p.r.IsWildcard()
	case literal.Integer:
		return p.u.IsWildcard()
	case literal.Float:
		return p.f.IsWildcard()
	case literal.String, literal.ByteString:
		return p.s.IsWildcard()
	default:
		return true
	}
}

// String implements [fmt.Stringer].
//
// Wildcards render as the name of what they match, such as "integer literal";
// specific patterns render as a literal in backticks.
func (p Literal) String() string {
	if p.kind == literal.Invalid {
		return "literal"
	}
	if p.IsWildcard() {
		return p.kind.String() + " literal"
	}

	var text string
	switch p.kind {
	case literal.Bool:
		text = strconv.FormatBool(p.b.value)
	case literal.Char:
		text = literal.QuoteChar(p.r.value)
	case literal.Byte:
		text = literal.QuoteByte(byte(p.r.value))
	case literal.Integer:
		text = strconv.FormatUint(p.u.value, 10)
	case literal.Float:
		text = strconv.FormatFloat(p.f.value, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eEn") {
			text += ".0"
		}
	case literal.String:
		text = literal.QuoteString(p.s.value)
	case literal.ByteString:
		text = literal.QuoteByteString([]byte(p.s.value))
	}
	return "`" + text + "`"
}
