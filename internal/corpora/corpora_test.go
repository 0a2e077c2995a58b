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

package corpora_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/sin/internal/corpora"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	assert.Empty(t, corpora.Diff("a\nb\n", "a\nb\n"))

	diff := corpora.Diff("a\nc\n", "a\nb\n")
	assert.True(t, strings.HasPrefix(diff, "--- want\n+++ got\n"), diff)
	assert.Contains(t, diff, "-b\n")
	assert.Contains(t, diff, "+c")
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:       "testdata",
		Extensions: []string{"txt"},
		Outputs:    []corpora.Output{{Extension: "upper"}},
	}
	corpus.Run(t, func(_ *testing.T, _, text string, outputs []string) {
		outputs[0] = strings.ToUpper(text)
	})
}
