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

// Package report provides [Report], an ordered collection of diagnostics
// produced while parsing, and a [Renderer] that prints them for humans.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/sin/source"
)

// Diagnostic is a single problem found while parsing: a message, and the span
// it is about.
type Diagnostic struct {
	Span    source.Span
	Message string

	// Notes are additional remarks printed after the message by a [Renderer].
	// They do not contribute to [Report.Error].
	Notes []string
}

// Note appends a note to this diagnostic.
func (d *Diagnostic) Note(format string, args ...any) *Diagnostic {
	d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	return d
}

// String implements [fmt.Stringer].
func (d Diagnostic) String() string {
	return "error: " + d.Message
}

// Report is an append-only list of diagnostics. A non-empty *Report is an
// error.
//
// Diagnostics are never replaced: a failed attempt that is followed by
// another failed attempt reports both, in the order they happened.
type Report struct {
	Diagnostics []Diagnostic
}

// Errorf returns a new report containing a single diagnostic.
func Errorf(span source.Span, format string, args ...any) *Report {
	r := new(Report)
	r.Errorf(span, format, args...)
	return r
}

// FromError converts err into a report.
//
// If err is or wraps a *Report, that report is returned. Otherwise, the
// result has one diagnostic at span with err's message. Returns nil for a nil
// error.
func FromError(span source.Span, err error) *Report {
	if err == nil {
		return nil
	}
	var r *Report
	if errors.As(err, &r) {
		return r
	}
	return Errorf(span, "%v", err)
}

// Errorf appends a new diagnostic to this report, and returns it for further
// modification.
func (r *Report) Errorf(span source.Span, format string, args ...any) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}

// Append appends diagnostics to this report.
func (r *Report) Append(diagnostics ...Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, diagnostics...)
}

// Merge appends every diagnostic in other to this report. other may be nil.
func (r *Report) Merge(other *Report) {
	if other != nil {
		r.Append(other.Diagnostics...)
	}
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Diagnostics)
}

// Err returns r as an error, or nil if r is empty.
func (r *Report) Err() error {
	if r.Len() == 0 {
		return nil
	}
	return r
}

// Error implements [error].
//
// Each diagnostic is printed as "error: {message}", one per line, in the
// order they were added.
func (r *Report) Error() string {
	if r == nil {
		return ""
	}

	var buf strings.Builder
	for i, d := range r.Diagnostics {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(d.String())
	}
	return buf.String()
}
