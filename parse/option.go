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

package parse

import (
	"github.com/bufbuild/sin/report"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
)

// Option is an optional T.
//
// Parsing an Option never fails: if a T cannot be parsed, the cursor is
// rewound and the result is absent.
type Option[T Node[T]] struct {
	Value T
	Some  bool
}

// Some returns a present [Option].
func Some[T Node[T]](v T) Option[T] {
	return Option[T]{Value: v, Some: true}
}

// Parse implements [Node].
func (Option[T]) Parse(c *token.Cursor) (Option[T], error) {
	mark := c.Mark()
	v, err := Parse[T](c)
	if err != nil {
		c.Rewind(mark)
		return Option[T]{}, nil
	}
	return Some(v), nil
}

// Get returns the value, if present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Some
}

// Span implements [source.Spanner].
func (o Option[T]) Span() source.Span {
	if !o.Some {
		return source.Span{}
	}
	return o.Value.Span()
}

// ToTokens implements [Node].
func (o Option[T]) ToTokens(s *token.Stream) {
	if o.Some {
		o.Value.ToTokens(s)
	}
}

// First tries each alternative in order, returning the result of the first
// one that succeeds.
//
// The cursor is rewound after each failed alternative. If every alternative
// fails, the returned report contains the diagnostics of all of them, in
// order.
func First[T any](c *token.Cursor, alts ...func(*token.Cursor) (T, error)) (T, error) {
	var errs report.Report
	for _, alt := range alts {
		mark := c.Mark()
		v, err := alt(c)
		if err == nil {
			return v, nil
		}
		c.Rewind(mark)
		errs.Merge(report.FromError(c.Span(), err))
	}

	var z T
	if errs.Len() == 0 {
		return z, expected(c, text("one of zero alternatives"))
	}
	return z, &errs
}

// Alt adapts [Parse] for T into an alternative for [First], converting the
// result with f.
func Alt[T Node[T], U any](f func(T) U) func(*token.Cursor) (U, error) {
	return func(c *token.Cursor) (U, error) {
		v, err := Parse[T](c)
		if err != nil {
			var z U
			return z, err
		}
		return f(v), nil
	}
}
