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

// Package source provides the span model: [Span]s record where a token came
// from, either as an opaque identifier understood by an expansion [Host], or
// as a self-contained excerpt of some source text.
//
// Every span, and every piece of interned data that tokens refer to, lives in
// a [Session]. Sessions are the unit of isolation and of teardown: handles
// from different sessions never compare equal, and everything interned into a
// session is released once the session becomes unreachable.
package source

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/bufbuild/sin/intern"
)

// Host is the expansion host that spans may refer into.
//
// Host implementations are provided by the embedding program. Raw span
// identifiers are opaque to this package.
type Host interface {
	// Resolve returns whether raw names a span that the host currently knows
	// about.
	Resolve(raw uint32) bool
	// SourceText returns the source text for a span, if the host can
	// provide it.
	SourceText(raw uint32) (string, bool)
	// CallSite returns the host's call-site span.
	CallSite() uint32
	// MixedSite returns the host's mixed-site span.
	MixedSite() uint32
}

// Config configures a [Session].
type Config struct {
	// The expansion host, if any. Without a host, every span is a fallback
	// span.
	Host Host

	// Logger receives debug information about the session. If nil, a logger
	// that only reports warnings is created.
	Logger logrus.FieldLogger

	// Debug enables debug logging on the default logger.
	Debug bool
}

// DefaultConfig returns the configuration used by a [Session] without a host.
func DefaultConfig() Config {
	var c Config
	c.Validate()
	return c
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.WarnLevel)
		if c.Debug {
			logger.SetLevel(logrus.DebugLevel)
		}
		c.Logger = logger
	}
}

// Session owns the interning tables for a single parse session.
//
// A Session may be used by multiple goroutines concurrently.
type Session struct {
	host Host
	log  logrus.FieldLogger

	strings   intern.Strings
	bytes     intern.Slices[byte]
	spans     intern.Table[SpanData]
	locations intern.Memo[locationKey, Location]
}

// NewSession creates a new session with the given configuration.
func NewSession(config Config) *Session {
	config.Validate()
	s := &Session{
		host: config.Host,
		log:  config.Logger.WithField("component", "source"),
	}
	if config.Debug {
		s.log.Debugf("new session: %s", spew.Sdump(struct {
			HasHost bool
			Debug   bool
		}{config.Host != nil, config.Debug}))
	}
	return s
}

// Host returns this session's host, or nil if it has none.
func (s *Session) Host() Host {
	return s.host
}

// Logger returns this session's logger.
func (s *Session) Logger() logrus.FieldLogger {
	return s.log
}

// Intern interns text into this session.
func (s *Session) Intern(text string) intern.Text {
	return s.strings.Intern(text)
}

// InternBytes interns a byte string into this session.
func (s *Session) InternBytes(b []byte) intern.Slice[byte] {
	return s.bytes.Intern(b)
}

// Strings returns this session's string table.
func (s *Session) Strings() *intern.Strings {
	return &s.strings
}

// Stats returns the number of distinct strings, byte strings, and spans
// interned into this session.
func (s *Session) Stats() (strings, bytes, spans int) {
	return s.strings.Len(), s.bytes.Len(), s.spans.Len()
}

// String implements [fmt.Stringer].
func (s *Session) String() string {
	strs, bytes, spans := s.Stats()
	return fmt.Sprintf("source.Session{strings: %d, bytes: %d, spans: %d}", strs, bytes, spans)
}

// span interns data as a span in this session.
func (s *Session) span(data SpanData) Span {
	return Span{s, s.spans.Intern(data)}
}
