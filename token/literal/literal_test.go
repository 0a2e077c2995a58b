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

package literal_test

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token/literal"
)

type literalCase struct {
	Text   string `yaml:"text"`
	Kind   string `yaml:"kind"`
	Value  string `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Raw    bool   `yaml:"raw"`
	Error  string `yaml:"error"`
	Offset int    `yaml:"offset"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/literals.yaml")
	require.NoError(t, err)
	var cases []literalCase
	require.NoError(t, yaml.Unmarshal(data, &cases))

	sess := source.NewSession(source.DefaultConfig())
	for _, test := range cases {
		t.Run(test.Text, func(t *testing.T) {
			t.Parallel()

			lit, err := literal.Parse(sess, test.Text)
			if test.Error != "" {
				var litErr *literal.Error
				require.ErrorAs(t, err, &litErr)
				assert.Equal(t, test.Error, litErr.Kind.String())
				assert.Equal(t, test.Offset, litErr.Offset)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.Text, lit.String())
			assert.Equal(t, test.Kind, lit.Kind().String())
			assert.Equal(t, test.Suffix, lit.Suffix())
			assert.Equal(t, test.Raw, lit.IsRaw())
			assert.Equal(t, test.Value, valueOf(t, lit))

			again, err := literal.Parse(sess, test.Text)
			require.NoError(t, err)
			assert.True(t, lit == again)
		})
	}
}

func valueOf(t *testing.T, lit literal.Literal) string {
	switch lit.Kind() {
	case literal.Bool:
		v, _ := lit.AsBool()
		return strconv.FormatBool(v)
	case literal.Char:
		v, _ := lit.AsChar()
		return string(v)
	case literal.Byte:
		v, _ := lit.AsByte()
		return string(rune(v))
	case literal.Integer:
		v, ok := lit.Uint64()
		assert.True(t, ok)
		return strconv.FormatUint(v, 10)
	case literal.Float:
		v, ok := lit.Float64()
		assert.True(t, ok)
		return strconv.FormatFloat(v, 'g', -1, 64)
	case literal.String:
		v, _ := lit.AsString()
		return v
	case literal.ByteString:
		v, _ := lit.AsByteString()
		return string(v)
	default:
		t.Fatalf("unexpected literal kind %v", lit.Kind())
		return ""
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	tests := []struct {
		lit  literal.Literal
		text string
	}{
		{literal.NewBool(sess, true), "true"},
		{literal.NewChar(sess, 'x'), "'x'"},
		{literal.NewChar(sess, '\''), `'\''`},
		{literal.NewChar(sess, '"'), `'"'`},
		{literal.NewChar(sess, 0x7f), `'\u{7f}'`},
		{literal.NewByte(sess, 0xff), `b'\xff'`},
		{literal.NewInteger(sess, 1234), "1234"},
		{literal.NewFloat(sess, 1.5), "1.5"},
		{literal.NewFloat(sess, 3), "3.0"},
		{literal.NewFloat(sess, 1e21), "1e21"},
		{literal.NewString(sess, "say \"hi\"\n"), `"say \"hi\"\n"`},
		{literal.NewString(sess, "é"), `"é"`},
		{literal.NewByteString(sess, []byte{'a', 0, 0x80}), `b"a\0\x80"`},
		{literal.NewChar(sess, 0xd800), "'\ufffd'"},
		{literal.NewChar(sess, -1), "'\ufffd'"},
		{literal.NewChar(sess, 0x110000), "'\ufffd'"},
	}
	for _, test := range tests {
		assert.Equal(t, test.text, test.lit.String())

		parsed, err := literal.Parse(sess, test.text)
		require.NoError(t, err)
		assert.True(t, test.lit == parsed, "%#v != %#v", test.lit, parsed)
	}

	v, _ := literal.NewString(sess, "say \"hi\"\n").AsString()
	assert.Equal(t, "say \"hi\"\n", v)

	assert.Panics(t, func() { literal.NewFloat(sess, -1) })
}

func TestAccessorsOnWrongKind(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	lit := literal.NewString(sess, "s")

	_, ok := lit.AsBool()
	assert.False(t, ok)
	_, ok = lit.Uint64()
	assert.False(t, ok)
	_, ok = lit.Float64()
	assert.False(t, ok)
	_, ok = lit.AsByteString()
	assert.False(t, ok)
	assert.Equal(t, 0, lit.Base())
	assert.Empty(t, lit.Digits())

	var zero literal.Literal
	assert.True(t, zero.IsZero())
	assert.Equal(t, "invalid", zero.Kind().String())
}

func TestOverflow(t *testing.T) {
	t.Parallel()

	sess := source.NewSession(source.DefaultConfig())
	lit, err := literal.Parse(sess, "340282366920938463463374607431768211455u128")
	require.NoError(t, err)
	_, ok := lit.Uint64()
	assert.False(t, ok)
	assert.Equal(t, "u128", lit.Suffix())
}
