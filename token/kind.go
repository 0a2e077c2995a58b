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
	InvalidKind Kind = iota // The zero token.

	IdentKind         // An identifier.
	LiteralKind       // A literal, such as a string or a number.
	DelimiterKind     // A delimiter; only appears as the token of a [Group].
	PunctKind         // Some punctuation.
	KeywordKind       // A reserved word.
	CustomKeywordKind // A word that a grammar has chosen to reserve.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case InvalidKind:
		return "Invalid"
	case IdentKind:
		return "Ident"
	case LiteralKind:
		return "Literal"
	case DelimiterKind:
		return "Delimiter"
	case PunctKind:
		return "Punct"
	case KeywordKind:
		return "Keyword"
	case CustomKeywordKind:
		return "CustomKeyword"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
