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

// Package token provides the token model: [Token]s, and the [Tree]s and
// [Stream]s built out of them.
//
// The vocabularies a token can draw from live in subpackages: punct and
// keyword hold the fixed spelling tables, and literal parses and validates
// literal text.
//
// # Token Trees
//
// A token stream is a sequence of trees: each [Tree] is either a single leaf
// [Token] with a span, or a [Group] of further trees enclosed in a matched
// pair of [Delimiter]s. Matching delimiters is the lexer's job, so parsers
// never see a lone bracket.
//
// # Cursors
//
// Streams are never consumed directly. Instead, a [Cursor] is derived from a
// stream, which supports lookahead, backtracking via [Cursor.Mark], and
// carrying a user-defined parse state alongside the position; see
// [IterWithState].
package token
