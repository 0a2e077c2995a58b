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

package unicodex

// Prefix returns the base named by the radix prefix of a numeric literal
// (0b, 0o or 0x), and the length of that prefix. Unprefixed text is decimal.
func Prefix(text string) (base byte, n int) {
	if len(text) < 2 || text[0] != '0' {
		return 10, 0
	}
	switch text[1] {
	case 'b':
		return 2, 2
	case 'o':
		return 8, 2
	case 'x':
		return 16, 2
	}
	return 10, 0
}

// Digit returns the value of d as a digit in base, which must be 2, 8, 10
// or 16. Hex digits may be in either case. Any other base accepts nothing.
func Digit(d rune, base byte) (value byte, ok bool) {
	switch {
	case d >= '0' && d <= '9':
		value = byte(d - '0')
	case base == 16 && d >= 'a' && d <= 'f':
		value = byte(d-'a') + 10
	case base == 16 && d >= 'A' && d <= 'F':
		value = byte(d-'A') + 10
	default:
		return 0, false
	}

	switch base {
	case 2, 8, 10, 16:
		return value, value < base
	}
	return 0, false
}
