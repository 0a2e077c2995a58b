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

package source

import "fmt"

const (
	MissingSourceA JoinErrorKind = 1 + iota // The first span has no excerpt.
	MissingSourceB                          // The second span has no excerpt.
	SourceMismatch                          // The spans excerpt different sources.
	OutOfOrder                              // The second span starts before the first ends.
)

// JoinErrorKind is the reason [Span.Join] failed.
type JoinErrorKind int

// String implements [fmt.Stringer].
func (k JoinErrorKind) String() string {
	switch k {
	case MissingSourceA:
		return "MissingSourceA"
	case MissingSourceB:
		return "MissingSourceB"
	case SourceMismatch:
		return "SourceMismatch"
	case OutOfOrder:
		return "OutOfOrder"
	default:
		return fmt.Sprintf("source.JoinErrorKind(%d)", int(k))
	}
}

// JoinError is returned by [Span.Join].
type JoinError struct {
	Kind JoinErrorKind
	A, B Span
}

// Error implements [error].
func (e *JoinError) Error() string {
	switch e.Kind {
	case MissingSourceA:
		return fmt.Sprintf("cannot join spans: %v has no source text", e.A)
	case MissingSourceB:
		return fmt.Sprintf("cannot join spans: %v has no source text", e.B)
	case SourceMismatch:
		return fmt.Sprintf("cannot join spans from different sources: %v and %v", e.A, e.B)
	case OutOfOrder:
		return fmt.Sprintf("cannot join spans out of order: %v starts before %v ends", e.B, e.A)
	default:
		return "cannot join spans"
	}
}

// Join returns a span covering s, other, and everything between them.
//
// Both spans must be fallback spans with excerpts of the same source, and
// other must not start before s ends. The result has the style of s.
func (s Span) Join(other Span) (Span, error) {
	a, ok := s.Excerpt()
	if !ok || s.IsHost() {
		return Span{}, &JoinError{MissingSourceA, s, other}
	}
	b, ok := other.Excerpt()
	if !ok || other.IsHost() {
		return Span{}, &JoinError{MissingSourceB, s, other}
	}
	if a.Source != b.Source {
		return Span{}, &JoinError{SourceMismatch, s, other}
	}
	if b.Start < a.End {
		return Span{}, &JoinError{OutOfOrder, s, other}
	}

	return s.sess.span(SpanData{
		style:   s.Style(),
		excerpt: Excerpt{Source: a.Source, Start: a.Start, End: b.End},
		hasText: true,
	}), nil
}

// JoinOr is like [Span.Join], but returns a when the spans cannot be joined.
//
// Zero spans are ignored: joining with a zero span returns the other span.
func JoinOr(a, b Span) Span {
	switch {
	case a.IsZero():
		return b
	case b.IsZero(), a == b:
		return a
	}

	joined, err := a.Join(b)
	if err != nil {
		return a
	}
	return joined
}
