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

// Package corpora runs golden tests: table-driven tests where the table
// lives in a testdata directory.
//
// Each test case is an input file; its expected outputs live next to it, in
// files named after the input with an extra extension. Setting the refresh
// environment variable to a glob regenerates the outputs of every matching
// case instead of comparing them.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// The test data directory, relative to the file that calls [Corpus.Run].
	Root string

	// An environment variable holding a glob of test cases to refresh.
	Refresh string

	// Extensions (without a dot) of files which define a test case.
	Extensions []string

	// Outputs of each test case. A missing output file is treated as an
	// expected empty output.
	Outputs []Output
}

// Output is one output of a test case.
type Output struct {
	// The extension of the output file, appended to the test case's name:
	// for a case "ident.rs" and extension "tokens.tsv", the output lives in
	// "ident.rs.tokens.tsv".
	Extension string

	// Compares an output. If nil, outputs are compared byte-for-byte.
	Compare Compare
}

// Compare compares two outputs, returning a description of the difference, or
// "" if they match.
type Compare func(got, want string) string

// Run executes test for every case in this corpus, in parallel subtests.
//
// test receives the case's path, relative to Root, and its contents, and
// writes one string per element of Outputs into outputs.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()

	root := filepath.Join(callerDir(0), c.Root)
	cases, err := c.cases(root)
	if err != nil {
		t.Fatalf("corpora: error while searching %q: %v", root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no test cases found in %q", root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob %s=%q", c.Refresh, refresh)
		}
	}

	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(root, filepath.FromSlash(name))
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input %q: %v", path, err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(input), outputs)

			if refresh != "" && doublestar.MatchUnvalidated(refresh, name) {
				c.refresh(t, path, outputs)
				return
			}
			c.compare(t, path, outputs)
		})
	}
}

func (c Corpus) cases(root string) ([]string, error) {
	var cases []string
	for _, ext := range c.Extensions {
		matches, err := doublestar.Glob(os.DirFS(root), "**/*."+ext)
		if err != nil {
			return nil, err
		}
		cases = append(cases, matches...)
	}
	slices.Sort(cases)
	return slices.Compact(cases), nil
}

func (c Corpus) compare(t *testing.T, path string, outputs []string) {
	t.Helper()

	for i, output := range c.Outputs {
		file := fmt.Sprint(path, ".", output.Extension)
		want, err := os.ReadFile(file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while loading output %q: %v", file, err)
			continue
		}

		cmp := output.Compare
		if cmp == nil {
			cmp = Diff
		}
		if diff := cmp(outputs[i], string(want)); diff != "" {
			t.Errorf("corpora: output mismatch for %q:\n%s", file, diff)
		}
	}
}

func (c Corpus) refresh(t *testing.T, path string, outputs []string) {
	t.Helper()

	for i, output := range c.Outputs {
		file := fmt.Sprint(path, ".", output.Extension)
		if outputs[i] == "" {
			if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Errorf("corpora: error while deleting output %q: %v", file, err)
			}
			continue
		}
		if err := os.WriteFile(file, []byte(outputs[i]), 0o600); err != nil {
			t.Errorf("corpora: error while writing output %q: %v", file, err)
		}
	}
	t.Logf("corpora: refreshed %q", path)
}

// Diff is the default [Compare]: it returns a unified diff between got and
// want, if they differ.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return strings.TrimRight(diff, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
