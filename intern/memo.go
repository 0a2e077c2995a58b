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

package intern

import (
	"hash/maphash"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Memo caches the output of a pure function, keyed by its input.
//
// Outputs are interned into a [Table], so two inputs that produce equal
// outputs share a single [Handle].
//
// The zero value of Memo is empty and ready to use.
type Memo[In, Out comparable] struct {
	// Hash, if set, overrides the hash function used to key inputs. It must
	// not be changed after the first call to From.
	Hash func(In) uint64

	outputs Table[Out]

	mu    sync.RWMutex
	index map[uint64][]memoEntry[In, Out]

	// flight collapses concurrent misses on the same input into a single
	// call to the generator.
	flight singleflight.Group

	seedOnce sync.Once
	seed     maphash.Seed

	hits, misses atomic.Int64
}

type memoEntry[In, Out comparable] struct {
	in  In
	out Handle[Out]
}

// From returns the memoized output of gen(in).
//
// If an equal input has been seen before, the previous output is returned and
// gen is not called. gen is called at most once per distinct input, even when
// From is called concurrently.
func (m *Memo[In, Out]) From(in In, gen func(In) Out) Handle[Out] {
	hash := m.hash(in)
	if out, ok := m.lookup(hash, in); ok {
		m.hits.Add(1)
		return out
	}

	key := strconv.FormatUint(hash, 16)
	v, _, _ := m.flight.Do(key, func() (any, error) {
		if out, ok := m.lookup(hash, in); ok {
			m.hits.Add(1)
			return memoEntry[In, Out]{in, out}, nil
		}

		m.misses.Add(1)
		e := memoEntry[In, Out]{in, m.outputs.Intern(gen(in))}

		m.mu.Lock()
		if m.index == nil {
			m.index = make(map[uint64][]memoEntry[In, Out])
		}
		m.index[hash] = append(m.index[hash], e)
		m.mu.Unlock()

		return e, nil
	})

	e := v.(memoEntry[In, Out]) //nolint:errcheck // The flight only returns memoEntry.
	if e.in != in {
		// We joined a flight for a different input whose hash collides with
		// ours. That flight has finished now, so retrying starts our own.
		return m.From(in, gen)
	}
	return e.out
}

// Query returns the memoized output for in, if there is one.
func (m *Memo[In, Out]) Query(in In) (Handle[Out], bool) {
	return m.lookup(m.hash(in), in)
}

// Outputs returns the table that outputs are interned into.
func (m *Memo[In, Out]) Outputs() *Table[Out] {
	return &m.outputs
}

// Hits returns the number of calls to From that did not call the generator.
func (m *Memo[In, Out]) Hits() int64 {
	return m.hits.Load()
}

// Misses returns the number of times the generator has been called.
func (m *Memo[In, Out]) Misses() int64 {
	return m.misses.Load()
}

func (m *Memo[In, Out]) lookup(hash uint64, in In) (Handle[Out], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.index[hash] {
		if e.in == in {
			return e.out, true
		}
	}
	return Handle[Out]{}, false
}

func (m *Memo[In, Out]) hash(in In) uint64 {
	if m.Hash != nil {
		return m.Hash(in)
	}
	m.seedOnce.Do(func() { m.seed = maphash.MakeSeed() })
	return maphash.Comparable(m.seed, in)
}
