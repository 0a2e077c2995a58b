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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/sin/intern"
)

func TestStrings(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"a",
		"abc",
		"?",
		"xy.z",
		"a_b_c",
		"very long string that is long",
		" ",
	}

	var table intern.Strings
	for i := range 3 {
		for _, s := range data {
			t.Run(fmt.Sprintf("%q/%d", s, i), func(t *testing.T) {
				t.Parallel()

				text := table.Intern(s)
				assert.Equal(t, s, text.String())
				assert.Equal(t, s == "", text.IsZero())
				assert.Equal(t, table.Intern(s), text)
				assert.Equal(t, table.InternBytes([]byte(s)), text)
			})
		}
	}
}

func TestStringsIdentity(t *testing.T) {
	t.Parallel()

	var a, b intern.Strings
	foo := a.Intern("foo")
	assert.Equal(t, foo, a.Intern("foo"))
	assert.NotEqual(t, foo, a.Intern("bar"))
	assert.True(t, foo != b.Intern("foo"), "handles are scoped to their table")
	assert.Equal(t, 2, a.Len())

	_, ok := a.Query("baz")
	assert.False(t, ok)
	q, ok := a.Query("foo")
	assert.True(t, ok)
	assert.Equal(t, foo, q)
	assert.True(t, foo.Equal("foo"))
	assert.Equal(t, foo.Hash(), q.Hash())
	assert.Zero(t, foo.Compare(q))
}

func TestSlicesIdentity(t *testing.T) {
	t.Parallel()

	var table intern.Slices[int]
	input := []int{1, 2, 3}
	a := table.Intern(input)
	b := table.Intern([]int{1, 2, 3})
	c := table.Intern([]int{3, 2, 1})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, []int{1, 2, 3}, a.Value())
	assert.Equal(t, 3, a.Len())

	// The table holds its own copy.
	input[0] = 42
	assert.Equal(t, []int{1, 2, 3}, a.Value())
	assert.Equal(t, a, table.Intern([]int{1, 2, 3}))

	assert.True(t, table.Intern(nil).IsZero())
	assert.Equal(t, table.Intern(nil), table.Intern([]int{}))
	assert.Equal(t, 2, table.Len())
}

func TestBytes(t *testing.T) {
	t.Parallel()

	var table intern.Slices[byte]
	a := table.Intern([]byte("hello"))
	assert.Equal(t, a, table.Intern([]byte("hello")))
	assert.NotEqual(t, a, table.Intern([]byte("hellO")))
	assert.Equal(t, "hello", string(a.Value()))
}

func TestTableStructs(t *testing.T) {
	t.Parallel()

	type point struct{ x, y int }

	var table intern.Table[point]
	a := table.Intern(point{1, 2})
	assert.Equal(t, a, table.Intern(point{1, 2}))
	assert.NotEqual(t, a, table.Intern(point{2, 1}))
	assert.Equal(t, point{1, 2}, a.Value())
	assert.Same(t, a.Ptr(), table.Intern(point{1, 2}).Ptr())
	assert.Equal(t, &table, a.Table())

	var zero intern.Handle[point]
	assert.True(t, zero.IsZero())
	assert.Equal(t, point{}, zero.Value())
	assert.Nil(t, zero.Ptr())
}

func TestCollisionsAreVerified(t *testing.T) {
	t.Parallel()

	// Every value hashes to the same bucket, so only full equality can tell
	// them apart.
	table := intern.Table[string]{Hash: func(string) uint64 { return 7 }}
	a := table.Intern("a")
	b := table.Intern("b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a, table.Intern("a"))
	assert.Equal(t, "b", b.Value())
	assert.Equal(t, 2, table.Len())
	assert.Negative(t, a.Compare(b))

	strs := intern.Strings{Hash: func(string) uint64 { return 0 }}
	assert.NotEqual(t, strs.Intern("x"), strs.Intern("y"))
	assert.Equal(t, "y", strs.Intern("y").String())

	slices := intern.Slices[int]{Hash: func([]int) uint64 { return 1 }}
	assert.NotEqual(t, slices.Intern([]int{1}), slices.Intern([]int{1, 1}))
}

func TestConcurrentIntern(t *testing.T) {
	t.Parallel()

	const workers = 32
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	var table intern.Strings
	results := make([][]intern.Text, workers)

	var g errgroup.Group
	for i := range workers {
		g.Go(func() error {
			for _, w := range words {
				results[i] = append(results[i], table.Intern(w))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, len(words), table.Len())
	for i := range workers {
		assert.Equal(t, results[0], results[i])
	}
}
