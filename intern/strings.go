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
	"strings"
	"unsafe"

	"github.com/bufbuild/sin/internal/arena"
)

// Strings is an interning table for text.
//
// The empty string is always represented by the zero [Text], so it compares
// equal across tables.
//
// The zero value of Strings is empty and ready to use.
type Strings struct {
	// Hash, if set, overrides the hash function used to key strings. It must
	// not be changed after the first call to Intern.
	Hash func(string) uint64

	store store[string]
}

// Text is a reference to a string interned in a [Strings] table.
//
// Texts can be compared very cheaply.
type Text struct {
	table *Strings
	ptr   arena.Pointer[entry[string]]
}

// Intern interns the given string into this table.
//
// This function may be called by multiple goroutines concurrently.
func (t *Strings) Intern(s string) Text {
	if s == "" {
		return Text{}
	}

	p := t.store.intern(t.hash(s),
		func(stored *string) bool { return *stored == s },
		// Tables are expected to be long-lived. Avoid holding onto a larger
		// buffer that s is an internal pointer to by cloning it. This is also
		// necessary for the correctness of InternBytes.
		func() string { return strings.Clone(s) },
	)
	return Text{t, p}
}

// InternBytes interns the given byte string into this table.
//
// This function may be called by multiple goroutines concurrently, but b
// must not be modified until this function returns.
func (t *Strings) InternBytes(b []byte) Text {
	// Intern will not hold onto its argument after it returns, so we can
	// alias b as a string temporarily.
	return t.Intern(unsafe.String(unsafe.SliceData(b), len(b)))
}

// Query returns the handle for s if it has already been interned.
func (t *Strings) Query(s string) (Text, bool) {
	if s == "" {
		return Text{}, true
	}

	p, ok := t.store.query(t.hash(s), func(stored *string) bool { return *stored == s })
	if !ok {
		return Text{}, false
	}
	return Text{t, p}, true
}

// Len returns the number of distinct non-empty strings in this table.
func (t *Strings) Len() int {
	return t.store.len()
}

func (t *Strings) hash(s string) uint64 {
	if t.Hash != nil {
		return t.Hash(s)
	}
	return maphash.String(t.store.getSeed(), s)
}

// IsZero returns whether this is the zero handle, i.e., the empty string.
func (t Text) IsZero() bool {
	return t.table == nil
}

// String returns the interned string. This does not copy.
func (t Text) String() string {
	if t.IsZero() {
		return ""
	}
	return t.table.store.at(t.ptr).value
}

// Len returns the length of the interned string, in bytes.
func (t Text) Len() int {
	return len(t.String())
}

// Hash returns the precomputed content hash of the interned string.
func (t Text) Hash() uint64 {
	if t.IsZero() {
		return 0
	}
	return t.table.store.at(t.ptr).hash
}

// ID returns this handle's position in its table.
func (t Text) ID() ID {
	return ID(t.ptr)
}

// Table returns the table this text was interned into.
func (t Text) Table() *Strings {
	return t.table
}

// Compare orders texts by content hash, breaking ties by allocation order.
//
// To order texts lexicographically, compare their String values instead.
func (t Text) Compare(other Text) int {
	return compareIDs(t.Hash(), other.Hash(), t.ID(), other.ID())
}

// Equal returns whether this text is equal to s, without interning s.
func (t Text) Equal(s string) bool {
	return t.String() == s
}

// GoString implements [fmt.GoStringer].
func (t Text) GoString() string {
	return "intern.Text(" + strconv.Quote(t.String()) + ")"
}
