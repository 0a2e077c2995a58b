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

package report_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
)

func TestReport(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	r := new(report.Report)
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Len())

	r.Errorf(sess.CallSite(), "expected ident, found `%s`", ",")
	other := report.Errorf(sess.CallSite(), "expected `struct`, found end of tokens")
	r.Merge(other)
	r.Merge(nil)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "error: expected ident, found `,`\nerror: expected `struct`, found end of tokens", r.Error())

	err := fmt.Errorf("parsing: %w", r.Err())
	var got *report.Report
	require.ErrorAs(t, err, &got)
	assert.Same(t, r, got)
	assert.Same(t, r, report.FromError(source.Span{}, err))

	plain := report.FromError(sess.CallSite(), errors.New("boom"))
	assert.Equal(t, "error: boom", plain.Error())
	assert.Nil(t, report.FromError(sess.CallSite(), nil))
	assert.Equal(t, 0, (*report.Report)(nil).Len())
	assert.Empty(t, (*report.Report)(nil).Error())
}

func TestRenderer(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	src := sess.Intern("struct Foo {\n    bar: 猫, baz\n}")

	r := new(report.Report)
	r.Errorf(sess.Excerpt(src, 25, 26), "expected ident, found `,`").Note("separators must be followed by a field")
	r.Errorf(sess.Excerpt(src, 17, 20), "unknown field")
	r.Errorf(sess.CallSite(), "something went wrong")

	assert.Equal(t, `error: expected ident, found `+"`,`"+`
 --> 2:12
  |
2 |     bar: 猫, baz
  |            ^
  = note: separators must be followed by a field

error: unknown field
 --> 2:5
  |
2 |     bar: 猫, baz
  |     ^^^

error: something went wrong

encountered 3 errors
`, report.Renderer{}.RenderString(r))

	assert.Equal(t, "error: expected ident, found `,` at 2:12\nerror: unknown field at 2:5\nerror: something went wrong\n",
		report.Renderer{Compact: true}.RenderString(r))

	colored := report.Renderer{Colorize: true}.Diagnostic(r.Diagnostics[2])
	assert.Equal(t, "\033[1;31merror: something went wrong\033[0m", colored)

	noted := report.Errorf(sess.CallSite(), "bad")
	noted.Diagnostics[0].Note("try again")
	colored = report.Renderer{Colorize: true}.Diagnostic(noted.Diagnostics[0])
	assert.Equal(t, "\033[1;31merror: bad\033[0m\n\033[1;34m  = note: \033[0;34mtry again\033[0m", colored)
}
