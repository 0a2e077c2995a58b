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
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/sin/intern"
)

// Location is a user-displayable location within some source text.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// Columns are measured in terminal cells, so that wide characters such as
	// CJK ideographs and emoji count for two columns.
	Line, Column int
}

type locationKey struct {
	source intern.Text
	offset int
}

// Location returns the location of the start of this span.
//
// Returns false if the span has no excerpt.
func (s Span) Location() (Location, bool) {
	e, ok := s.Excerpt()
	if !ok {
		return Location{}, false
	}
	return s.sess.location(e.Source, e.Start), true
}

// EndLocation returns the location just past the end of this span.
//
// Returns false if the span has no excerpt.
func (s Span) EndLocation() (Location, bool) {
	e, ok := s.Excerpt()
	if !ok {
		return Location{}, false
	}
	return s.sess.location(e.Source, e.End), true
}

// location computes the location of an offset into source.
//
// Results are memoized, since diagnostics tend to ask about the same few
// positions repeatedly.
func (s *Session) location(source intern.Text, offset int) Location {
	return s.locations.From(locationKey{source, offset}, func(k locationKey) Location {
		prefix := k.source.String()[:k.offset]
		line := strings.Count(prefix, "\n") + 1
		if nl := strings.LastIndexByte(prefix, '\n'); nl >= 0 {
			prefix = prefix[nl+1:]
		}

		return Location{
			Offset: k.offset,
			Line:   line,
			Column: uniseg.StringWidth(prefix) + 1,
		}
	}).Value()
}
