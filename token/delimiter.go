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

import "fmt"

const (
	Paren   Delimiter = iota + 1 // ( )
	Brace                        // { }
	Bracket                      // [ ]
)

// Delimiter is a kind of matched bracket pair that encloses a [Group].
type Delimiter byte

// Open returns the opening delimiter.
func (d Delimiter) Open() string {
	switch d {
	case Paren:
		return "("
	case Brace:
		return "{"
	case Bracket:
		return "["
	default:
		return "<invalid>"
	}
}

// Close returns the closing delimiter.
func (d Delimiter) Close() string {
	switch d {
	case Paren:
		return ")"
	case Brace:
		return "}"
	case Bracket:
		return "]"
	default:
		return "<invalid>"
	}
}

// Enclose wraps text in this delimiter, separated by spaces: "{ text }".
//
// Empty text produces "{ }".
func (d Delimiter) Enclose(text string) string {
	if text == "" {
		return d.Open() + " " + d.Close()
	}
	return d.Open() + " " + text + " " + d.Close()
}

// DelimiterFor returns the delimiter that text opens or closes.
func DelimiterFor(text string) (d Delimiter, open bool) {
	switch text {
	case "(":
		return Paren, true
	case ")":
		return Paren, false
	case "{":
		return Brace, true
	case "}":
		return Brace, false
	case "[":
		return Bracket, true
	case "]":
		return Bracket, false
	default:
		return 0, false
	}
}

// String implements [fmt.Stringer].
func (d Delimiter) String() string {
	switch d {
	case Paren:
		return "Paren"
	case Brace:
		return "Brace"
	case Bracket:
		return "Bracket"
	default:
		return fmt.Sprintf("token.Delimiter(%d)", int(d))
	}
}
