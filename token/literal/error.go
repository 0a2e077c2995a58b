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

import "fmt"

const (
	Empty         ErrorKind = 1 + iota // The text is empty.
	Unknown                            // The text does not look like any kind of literal.
	Unterminated                       // A quoted literal is missing its closing quote.
	InvalidEscape                      // A backslash escape is malformed or not allowed here.
	InvalidSuffix                      // Unexpected text follows the literal.
	InvalidDigit                       // A digit is too large for the base of its number.
	NoDigits                           // A number or exponent has no digits.
	CharCount                          // A character literal does not contain exactly one character.
	NonASCII                           // A byte literal contains a non-ASCII character.
	Overflow                           // A Unicode escape is out of range.
)

// ErrorKind is the reason [Parse] rejected some text.
type ErrorKind int

// String implements [fmt.Stringer].
func (k ErrorKind) String() string {
	switch k {
	case Empty:
		return "empty literal"
	case Unknown:
		return "not a literal"
	case Unterminated:
		return "unterminated literal"
	case InvalidEscape:
		return "invalid escape"
	case InvalidSuffix:
		return "invalid suffix"
	case InvalidDigit:
		return "invalid digit"
	case NoDigits:
		return "missing digits"
	case CharCount:
		return "character literal must contain exactly one character"
	case NonASCII:
		return "non-ASCII character in byte literal"
	case Overflow:
		return "escape out of range"
	default:
		return fmt.Sprintf("literal.ErrorKind(%d)", int(k))
	}
}

// Error is returned by [Parse] for malformed literal text.
type Error struct {
	Kind ErrorKind
	Text string // The text that was being parsed.

	// The byte offset within Text where the problem was found.
	Offset int
}

// Error implements [error].
func (e *Error) Error() string {
	if e.Kind == Empty {
		return "invalid literal: " + e.Kind.String()
	}
	return fmt.Sprintf("invalid literal `%s`: %v at offset %d", e.Text, e.Kind, e.Offset)
}
