// Package sin is a toolkit for writing parsers over pre-lexed token trees.
//
// Rather than scanning characters, parsers built with sin consume a stream
// of token trees: identifiers, keywords, punctuation, literals and
// delimited groups, where a group owns the stream of tokens between its
// delimiters. Grammars are written as ordinary Go types; a type becomes a
// parser by implementing [parse.Node], and composite types are assembled
// from the combinators in the parse package.
//
// The sub-packages are layered bottom up:
//  1. intern deduplicates strings and slices into comparable handles.
//     Also see: intern.Strings, intern.Table
//  2. source attaches spans to tokens and owns their lifetime.
//     Also see: source.Session, source.Span
//  3. token defines token trees, streams and cursors.
//     Also see: token.Stream, token.Cursor
//  4. pattern describes what a parser expects to see next.
//     Also see: pattern.Token
//  5. parse provides the Node interface and its combinators.
//     Also see: parse.Parse, parse.Rep, parse.Delimited
//
// The report package collects diagnostics and renders them against source
// text. The lexer package turns Rust-like source into a token stream so
// that grammars can be tested against real text.
//
// # Sessions
//
// Everything interned or allocated while lexing and parsing belongs to a
// [source.Session]. Spans and handles from one session are not meaningful
// in another. Dropping the session releases everything it interned:
//
//	sess := source.NewSession(source.DefaultConfig())
//
//	res, err := lexer.Lex(sess, "struct Point { x: i32, y: i32 }", lexer.Options{})
//	if err != nil {
//	    return err
//	}
//	item, err := parse.ParseTokens[Item](res.Stream)
package sin
