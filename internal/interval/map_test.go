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

package interval_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/sin/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r    // Ranges to insert.
		want   string // If not "", the value of the overlap for the last range.
	}{
		{
			name:   "empty-map",
			ranges: []r{{0, 10, "foo"}},
		},
		{
			name:   "new-max",
			ranges: []r{{0, 10, "foo"}, {30, 40, "bar"}},
		},
		{
			name:   "new-min",
			ranges: []r{{30, 40, "bar"}, {0, 10, "foo"}},
		},
		{
			name:   "between",
			ranges: []r{{0, 10, "foo"}, {30, 40, "bar"}, {10, 30, "baz"}},
		},
		{
			name:   "adjacent",
			ranges: []r{{0, 10, "foo"}, {10, 11, "baz"}},
		},
		{
			name:   "subset",
			ranges: []r{{0, 10, "foo"}, {1, 3, "baz"}},
			want:   "foo",
		},
		{
			name:   "equal",
			ranges: []r{{0, 10, "foo"}, {0, 10, "baz"}},
			want:   "foo",
		},
		{
			name:   "left-overlap",
			ranges: []r{{0, 10, "foo"}, {30, 40, "bar"}, {9, 12, "baz"}},
			want:   "foo",
		},
		{
			name:   "right-overlap",
			ranges: []r{{0, 10, "foo"}, {30, 40, "bar"}, {20, 31, "baz"}},
			want:   "bar",
		},
		{
			name:   "superset",
			ranges: []r{{5, 10, "foo"}, {30, 40, "bar"}, {0, 50, "baz"}},
			want:   "foo",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var m interval.Map[int, string]
			for i, r := range test.ranges {
				overlap, ok := m.Insert(r.start, r.end, r.value)
				if i < len(test.ranges)-1 || test.want == "" {
					assert.True(t, ok, "%v", r)
					continue
				}
				assert.False(t, ok)
				assert.Equal(t, test.want, overlap.Value)
			}

			inserted := len(test.ranges)
			if test.want != "" {
				inserted--
			}
			assert.Equal(t, inserted, m.Len())

			entries := slices.Collect(m.All())
			assert.True(t, slices.IsSortedFunc(entries, func(a, b interval.Entry[int, string]) int {
				return a.Start - b.Start
			}), "%v", &m)
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	var m interval.Map[uint32, string]
	m.Insert(0, 3, "foo")
	m.Insert(4, 5, ",")
	m.Insert(6, 9, "bar")

	tests := []struct {
		point uint32
		want  string
	}{
		{0, "foo"}, {2, "foo"}, {3, ""}, {4, ","}, {5, ""}, {8, "bar"}, {9, ""}, {100, ""},
	}
	for _, test := range tests {
		e, ok := m.Get(test.point)
		assert.Equal(t, test.want != "", ok, "%d", test.point)
		assert.Equal(t, test.want, e.Value, "%d", test.point)
		if ok {
			assert.True(t, e.Contains(test.point))
		}
	}

	assert.Equal(t, `{[0x0, 0x3): foo, [0x4, 0x5): ,, [0x6, 0x9): bar}`, fmt.Sprintf("%v", &m))
	assert.Panics(t, func() { m.Insert(10, 10, "empty") })
}
