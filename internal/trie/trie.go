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

// Package trie provides a longest-prefix string map.
package trie

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Trie implements a map from strings to V, except lookups return the key
// which is the longest prefix of a given query.
//
// The zero value is empty and ready to use. A Trie is not safe for concurrent
// mutation; tables built once at init time may be read concurrently.
type Trie[V any] struct {
	nodes []node // nodes[0] is the root, once allocated.
	vals  []V
	size  int
}

type node struct {
	edges []edge // Sorted by label.
	val   int    // Index into vals, or -1.
}

type edge struct {
	label byte
	to    int
}

// Len returns the number of keys in this trie.
func (t *Trie[V]) Len() int {
	return t.size
}

// Get returns the value corresponding to the longest prefix of key present
// in the trie. The match is exact when len(key) == len(prefix).
//
// If no key in the trie is a prefix of key, returns "" and the zero value of V.
func (t *Trie[V]) Get(key string) (prefix string, value V) {
	for p, v := range t.Prefixes(key) {
		prefix, value = p, v
	}
	return prefix, value
}

// Prefixes returns an iterator over every key in the trie that is a prefix
// of key, shortest first.
func (t *Trie[V]) Prefixes(key string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if len(t.nodes) == 0 {
			return
		}

		n := 0
		for i := 0; ; i++ {
			if v := t.nodes[n].val; v >= 0 && !yield(key[:i], t.vals[v]) {
				return
			}
			if i == len(key) {
				return
			}

			next, ok := t.child(n, key[i])
			if !ok {
				return
			}
			n = next
		}
	}
}

// Insert adds a new value to this trie, replacing any value already present
// for key.
func (t *Trie[V]) Insert(key string, value V) {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{val: -1})
	}

	n := 0
	for i := range len(key) {
		next, ok := t.child(n, key[i])
		if !ok {
			next = len(t.nodes)
			t.nodes = append(t.nodes, node{val: -1})

			edges := t.nodes[n].edges
			idx, _ := slices.BinarySearchFunc(edges, key[i], searchEdge)
			t.nodes[n].edges = slices.Insert(edges, idx, edge{key[i], next})
		}
		n = next
	}

	if v := t.nodes[n].val; v >= 0 {
		t.vals[v] = value
		return
	}
	t.nodes[n].val = len(t.vals)
	t.vals = append(t.vals, value)
	t.size++
}

// Dump renders the structure of this trie, for debugging.
func (t *Trie[V]) Dump() string {
	var buf strings.Builder
	if len(t.nodes) > 0 {
		t.dump(&buf, 0, 0)
	}
	return buf.String()
}

func (t *Trie[V]) dump(buf *strings.Builder, n, depth int) {
	for _, e := range t.nodes[n].edges {
		fmt.Fprintf(buf, "%s%q", strings.Repeat("  ", depth), e.label)
		if v := t.nodes[e.to].val; v >= 0 {
			fmt.Fprintf(buf, ": %v", t.vals[v])
		}
		buf.WriteByte('\n')
		t.dump(buf, e.to, depth+1)
	}
}

func (t *Trie[V]) child(n int, b byte) (int, bool) {
	edges := t.nodes[n].edges
	idx, ok := slices.BinarySearchFunc(edges, b, searchEdge)
	if !ok {
		return 0, false
	}
	return edges[idx].to, true
}

func searchEdge(e edge, b byte) int {
	return int(e.label) - int(b)
}
