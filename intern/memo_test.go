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

package intern_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/sin/intern"
)

func TestMemo(t *testing.T) {
	t.Parallel()

	var calls int
	length := func(s string) int {
		calls++
		return len(s)
	}

	var memo intern.Memo[string, int]
	a := memo.From("some_input", length)
	b := memo.From("some_input", length)

	assert.Equal(t, 10, a.Value())
	assert.Equal(t, a, b)
	assert.Equal(t, 1, calls)
	assert.EqualValues(t, 1, memo.Hits())
	assert.EqualValues(t, 1, memo.Misses())

	// A different input with an equal output shares the output's identity.
	c := memo.From("other_text", length)
	assert.Equal(t, 2, calls)
	assert.Equal(t, a, c)
	assert.Equal(t, 1, memo.Outputs().Len())

	q, ok := memo.Query("other_text")
	assert.True(t, ok)
	assert.Equal(t, c, q)
	_, ok = memo.Query("never")
	assert.False(t, ok)
}

func TestMemoCollisions(t *testing.T) {
	t.Parallel()

	memo := intern.Memo[string, string]{Hash: func(string) uint64 { return 3 }}
	upper := func(s string) string { return s + "!" }

	assert.Equal(t, "a!", memo.From("a", upper).Value())
	assert.Equal(t, "b!", memo.From("b", upper).Value())
	assert.Equal(t, "a!", memo.From("a", upper).Value())
	assert.EqualValues(t, 2, memo.Misses())
}

func TestMemoConcurrent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	gen := func(n int) int {
		calls.Add(1)
		return n * n
	}

	var memo intern.Memo[int, int]
	var g errgroup.Group
	for range 64 {
		g.Go(func() error {
			if got := memo.From(12, gen).Value(); got != 144 {
				t.Errorf("got %d, want 144", got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, 1, calls.Load())
}
