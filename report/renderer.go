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

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/sin/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool
}

// Render renders a diagnostic report.
//
// Returns the number of diagnostics rendered. The error return is an error
// when writing to out.
func (r Renderer) Render(report *Report, out io.Writer) (count int, err error) {
	if report == nil {
		return 0, nil
	}

	for _, d := range report.Diagnostics {
		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return count, err
		}
		count++

		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return count, err
			}
		}
	}

	if !r.Compact && count > 0 {
		c := newStyleSheet(r)
		noun := "errors"
		if count == 1 {
			noun = "error"
		}
		_, err = fmt.Fprintf(out, "%sencountered %d %s%s\n", c.bError, count, noun, c.reset)
	}
	return count, err
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report *Report) string {
	var buf strings.Builder
	_, _ = r.Render(report, &buf)
	return buf.String()
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d Diagnostic) string {
	c := newStyleSheet(r)
	var out strings.Builder

	fmt.Fprintf(&out, "%serror: %s%s", c.bError, d.Message, c.reset)

	start, hasLoc := d.Span.Location()
	if r.Compact {
		if hasLoc {
			fmt.Fprintf(&out, " at %d:%d", start.Line, start.Column)
		}
		return out.String()
	}

	switch {
	case hasLoc:
		end, _ := d.Span.EndLocation()
		excerpt, _ := d.Span.Excerpt()
		r.snippet(&out, c, excerpt.Source.String(), start, end)
	case d.Span.IsHost():
		id, _ := d.Span.HostID()
		fmt.Fprintf(&out, "\n%s --> %s%v%s", c.bAccent, c.nAccent, id, c.reset)
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&out, "\n%s  = note: %s%s%s", c.bAccent, c.nAccent, note, c.reset)
	}
	return out.String()
}

// snippet renders the line of text that start is on, with the range from start
// to end underlined.
//
// If end is on a later line, the underline extends to the end of the first
// line.
func (r Renderer) snippet(out *strings.Builder, c styleSheet, text string, start, end source.Location) {
	lineStart := strings.LastIndexByte(text[:start.Offset], '\n') + 1
	lineEnd := strings.IndexByte(text[start.Offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += start.Offset
	}
	line := strings.TrimRight(text[lineStart:lineEnd], "\r")

	underline := 1
	if end.Line == start.Line && end.Offset > start.Offset {
		underline = uniseg.StringWidth(text[start.Offset:end.Offset])
	} else if end.Line > start.Line {
		underline = max(1, uniseg.StringWidth(text[start.Offset:lineEnd]))
	}

	number := strconv.Itoa(start.Line)
	gutter := strings.Repeat(" ", len(number))

	fmt.Fprintf(out, "\n%s%s--> %s%d:%d", c.bAccent, gutter, c.reset, start.Line, start.Column)
	fmt.Fprintf(out, "\n%s%s |%s", c.bAccent, gutter, c.reset)
	fmt.Fprintf(out, "\n%s%s |%s %s", c.bAccent, number, c.reset, line)
	fmt.Fprintf(out, "\n%s%s |%s %s%s%s%s",
		c.bAccent, gutter, c.reset,
		strings.Repeat(" ", start.Column-1),
		c.bError, strings.Repeat("^", underline), c.reset,
	)
}
