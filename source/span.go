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

import (
	"errors"
	"fmt"

	"github.com/bufbuild/sin/intern"
)

const (
	Normal    Style = iota // Resolves like ordinary source text.
	CallSite               // Resolves as if written at the macro call site.
	MixedSite              // Resolves locals at the definition site, everything else at the call site.
)

var (
	// ErrNoHost is returned when converting a host span without a host.
	ErrNoHost = errors.New("session has no expansion host")
	// ErrStaleHostSpan is returned when a host does not recognize a span id.
	ErrStaleHostSpan = errors.New("unknown host span")
)

// Style is the hygiene style of a fallback span. It decides which host span a
// fallback span becomes when converted back into one.
type Style uint8

// String implements [fmt.Stringer].
func (s Style) String() string {
	switch s {
	case Normal:
		return "normal"
	case CallSite:
		return "call_site"
	case MixedSite:
		return "mixed_site"
	default:
		return fmt.Sprintf("source.Style(%d)", int(s))
	}
}

// HostID is a span identifier that was minted by a [Host].
//
// HostIDs can only be obtained from a [Session] that has validated them with
// its host.
type HostID struct {
	raw uint32
}

// Raw returns the identifier the host uses for this span.
func (id HostID) Raw() uint32 {
	return id.raw
}

// String implements [fmt.Stringer].
func (id HostID) String() string {
	return fmt.Sprintf("host#%d", id.raw)
}

// Excerpt is a range of bytes within some interned source text.
type Excerpt struct {
	Source     intern.Text
	Start, End int
}

// Text returns the excerpted text.
func (e Excerpt) Text() string {
	return e.Source.String()[e.Start:e.End]
}

// SpanData is the information a [Span] carries.
//
// It is either a host span, which only the host can interpret, or a fallback
// span, which has a [Style] and optionally an [Excerpt].
type SpanData struct {
	host    HostID
	isHost  bool
	style   Style
	excerpt Excerpt
	hasText bool
}

// IsHost returns whether this is a host span.
func (d SpanData) IsHost() bool {
	return d.isHost
}

// HostID returns the host identifier for a host span.
func (d SpanData) HostID() (HostID, bool) {
	return d.host, d.isHost
}

// Style returns the hygiene style of a fallback span. Host spans always
// report [Normal].
func (d SpanData) Style() Style {
	return d.style
}

// Excerpt returns the source excerpt of a fallback span, if it has one.
func (d SpanData) Excerpt() (Excerpt, bool) {
	return d.excerpt, d.hasText
}

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero [Span] to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is an interned location.
//
// Spans are cheap to copy and compare: two spans with equal [SpanData] from
// the same session are ==.
type Span struct {
	sess *Session
	data intern.Handle[SpanData]
}

// CallSite returns the fallback span with call-site hygiene and no text.
func (s *Session) CallSite() Span {
	return s.span(SpanData{style: CallSite})
}

// MixedSite returns the fallback span with mixed-site hygiene and no text.
func (s *Session) MixedSite() Span {
	return s.span(SpanData{style: MixedSite})
}

// FromSource returns a fallback span whose excerpt is all of text.
func (s *Session) FromSource(text string) Span {
	return s.Excerpt(s.Intern(text), 0, len(text))
}

// Excerpt returns a fallback span covering source[start:end].
//
// Panics if the range is out of bounds; this is a programming error.
func (s *Session) Excerpt(source intern.Text, start, end int) Span {
	if start < 0 || start > end || end > source.Len() {
		panic(fmt.Sprintf("sin/source: excerpt [%d:%d] out of range for %d bytes", start, end, source.Len()))
	}
	return s.span(SpanData{
		style:   Normal,
		excerpt: Excerpt{Source: source, Start: start, End: end},
		hasText: true,
	})
}

// FromHost converts a host span identifier into a span.
//
// Returns an error wrapping [ErrNoHost] or [ErrStaleHostSpan] if the session
// cannot vouch for raw.
func (s *Session) FromHost(raw uint32) (Span, error) {
	if s.host == nil {
		return Span{}, ErrNoHost
	}
	if !s.host.Resolve(raw) {
		return Span{}, fmt.Errorf("%w: %d", ErrStaleHostSpan, raw)
	}
	return s.span(SpanData{host: HostID{raw}, isHost: true}), nil
}

// IsZero returns whether this is the zero span, which carries no location
// information at all.
func (s Span) IsZero() bool {
	return s.sess == nil
}

// Session returns the session this span belongs to.
func (s Span) Session() *Session {
	return s.sess
}

// Data returns the data for this span.
func (s Span) Data() SpanData {
	return s.data.Value()
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// IsHost returns whether this span refers into the host.
func (s Span) IsHost() bool {
	return s.Data().isHost
}

// IsFallback returns whether this is a self-contained fallback span.
func (s Span) IsFallback() bool {
	return !s.IsZero() && !s.IsHost()
}

// HostID returns the host identifier for a host span.
func (s Span) HostID() (HostID, bool) {
	return s.Data().HostID()
}

// Style returns the hygiene style of this span.
func (s Span) Style() Style {
	return s.Data().style
}

// Excerpt returns the excerpt of a fallback span, if it has one.
func (s Span) Excerpt() (Excerpt, bool) {
	return s.Data().Excerpt()
}

// SourceText returns the text this span covers.
//
// Returns false for hygiene-only fallback spans, and for host spans whose
// text the host cannot provide.
func (s Span) SourceText() (string, bool) {
	if s.IsZero() {
		return "", false
	}

	data := s.Data()
	if data.isHost {
		return s.sess.host.SourceText(data.host.raw)
	}
	if !data.hasText {
		return "", false
	}
	return data.excerpt.Text(), true
}

// Range slices this span along the given byte indices, relative to the start
// of its excerpt.
//
// Unlike slicing into a string, out-of-bounds indices are snapped to the
// boundaries of the excerpt, and negative indices are taken from the back of
// it. Spans without an excerpt are returned unchanged.
func (s Span) Range(i, j int) Span {
	e, ok := s.Excerpt()
	if !ok {
		return s
	}

	n := e.End - e.Start
	i = idxToByteOffset(n, i)
	j = idxToByteOffset(n, j)
	if i > j {
		i, j = j, i
	}
	return s.sess.Excerpt(e.Source, e.Start+i, e.Start+j)
}

// ToFallback converts a host span into a fallback span, by asking the host
// for its source text.
//
// This loses the host's resolution semantics. If the host cannot provide
// text, the result is the call-site span. Fallback spans are returned as-is.
func (s Span) ToFallback() Span {
	id, ok := s.HostID()
	if !ok {
		return s
	}

	text, ok := s.sess.host.SourceText(id.raw)
	if !ok {
		s.sess.log.Debugf("no source text for %v, falling back to call site", id)
		return s.sess.CallSite()
	}
	return s.sess.FromSource(text)
}

// ToHost converts this span into the host's nearest equivalent.
//
// Host spans convert losslessly. Fallback spans become the host's mixed-site
// span if they have [MixedSite] hygiene, and its call-site span otherwise.
// Returns false if the session has no host.
func (s Span) ToHost() (HostID, bool) {
	if s.IsZero() || s.sess.host == nil {
		return HostID{}, false
	}

	data := s.Data()
	switch {
	case data.isHost:
		return data.host, true
	case data.style == MixedSite:
		return HostID{s.sess.host.MixedSite()}, true
	default:
		return HostID{s.sess.host.CallSite()}, true
	}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<no span>"
	}

	data := s.Data()
	switch {
	case data.isHost:
		return data.host.String()
	case data.hasText:
		return fmt.Sprintf("%q[%d:%d]", data.excerpt.Text(), data.excerpt.Start, data.excerpt.End)
	default:
		return data.style.String()
	}
}

// idxToByteOffset converts an index into a string of length n into a byte
// offset.
//
// If i is negative, this produces the index of the -ith byte from the end of
// the string. If i > n or i < -n, returns n or 0, respectively.
func idxToByteOffset(n, i int) int {
	switch {
	case i > n:
		return n
	case i < -n:
		return 0
	case i < 0:
		return n + i
	default:
		return i
	}
}
