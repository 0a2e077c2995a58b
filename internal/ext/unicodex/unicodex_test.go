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

package unicodex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/sin/internal/ext/unicodex"
)

func TestIdent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"x", "_x", "seg_1", "café", "Σ2", "猫", "x́"} {
		assert.True(t, unicodex.IsIdent(s), "%q", s)
	}
	for _, s := range []string{"", "_", "1x", "a-b", "a b", "✨", "x+"} {
		assert.False(t, unicodex.IsIdent(s), "%q", s)
	}
}

func TestDigit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d     rune
		base  byte
		value byte
		ok    bool
	}{
		{'0', 2, 0, true},
		{'2', 2, 0, false},
		{'7', 8, 7, true},
		{'9', 10, 9, true},
		{'f', 16, 15, true},
		{'F', 16, 15, true},
		{'g', 16, 0, false},
		{'a', 10, 0, false},
		{'z', 36, 0, false},
		{'1', 3, 0, false},
		{'_', 16, 0, false},
		{'٣', 10, 0, false},
		{-1, 16, 0, false},
	}
	for _, test := range tests {
		v, ok := unicodex.Digit(test.d, test.base)
		assert.Equal(t, test.ok, ok, "%q in base %d", test.d, test.base)
		assert.Equal(t, test.value, v, "%q in base %d", test.d, test.base)
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		base byte
		n    int
	}{
		{"0b101", 2, 2},
		{"0o17", 8, 2},
		{"0xFF_u8", 16, 2},
		{"0X1F", 10, 0},
		{"0", 10, 0},
		{"012", 10, 0},
		{"", 10, 0},
	}
	for _, test := range tests {
		base, n := unicodex.Prefix(test.text)
		assert.Equal(t, test.base, base, "%q", test.text)
		assert.Equal(t, test.n, n, "%q", test.text)
	}
}
