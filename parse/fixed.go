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
	"github.com/bufbuild/sin/pattern"
	"github.com/bufbuild/sin/source"
	"github.com/bufbuild/sin/token"
	"github.com/bufbuild/sin/token/keyword"
	"github.com/bufbuild/sin/token/punct"
)

// Fixed is a single fixed token, such as `::` or `struct`.
//
// K names the token. Every punctuation and keyword has an alias, such as
// [PathSep] or [Struct], so K never needs to be spelled out.
type Fixed[K Fixer] struct {
	TokenSpan source.Span
}

// Fixer names the token matched by a [Fixed].
type Fixer interface {
	// Fixed returns the token to match. It is called on the zero value.
	Fixed() token.Token
}

// Parse implements [Node].
func (Fixed[K]) Parse(c *token.Cursor) (Fixed[K], error) {
	var k K
	tree, err := Expect(c, pattern.Of(k.Fixed()))
	return Fixed[K]{TokenSpan: tree.Span()}, err
}

// Span implements [source.Spanner].
func (f Fixed[K]) Span() source.Span {
	return f.TokenSpan
}

// ToTokens implements [Node].
func (f Fixed[K]) ToTokens(s *token.Stream) {
	s.PushToken(f.Token(), f.TokenSpan)
}

// Token returns the token this parser matches.
func (Fixed[K]) Token() token.Token {
	var k K
	return k.Fixed()
}

// Punctuation.
type (
	Plus       = Fixed[pPlus]       // +
	Minus      = Fixed[pMinus]      // -
	Star       = Fixed[pStar]       // *
	Slash      = Fixed[pSlash]      // /
	Percent    = Fixed[pPercent]    // %
	Caret      = Fixed[pCaret]      // ^
	Not        = Fixed[pNot]        // !
	And        = Fixed[pAnd]        // &
	Or         = Fixed[pOr]         // |
	AndAnd     = Fixed[pAndAnd]     // &&
	OrOr       = Fixed[pOrOr]       // ||
	Shl        = Fixed[pShl]        // <<
	Shr        = Fixed[pShr]        // >>
	PlusEq     = Fixed[pPlusEq]     // +=
	MinusEq    = Fixed[pMinusEq]    // -=
	StarEq     = Fixed[pStarEq]     // *=
	SlashEq    = Fixed[pSlashEq]    // /=
	PercentEq  = Fixed[pPercentEq]  // %=
	CaretEq    = Fixed[pCaretEq]    // ^=
	AndEq      = Fixed[pAndEq]      // &=
	OrEq       = Fixed[pOrEq]       // |=
	ShlEq      = Fixed[pShlEq]      // <<=
	ShrEq      = Fixed[pShrEq]      // >>=
	Eq         = Fixed[pEq]         // =
	EqEq       = Fixed[pEqEq]       // ==
	Ne         = Fixed[pNe]         // !=
	Gt         = Fixed[pGt]         // >
	Lt         = Fixed[pLt]         // <
	Ge         = Fixed[pGe]         // >=
	LArrow     = Fixed[pLArrow]     // <-
	Le         = Fixed[pLe]         // <=
	At         = Fixed[pAt]         // @
	Underscore = Fixed[pUnderscore] // _
	Dot        = Fixed[pDot]        // .
	DotDot     = Fixed[pDotDot]     // ..
	DotDotDot  = Fixed[pDotDotDot]  // ...
	DotDotEq   = Fixed[pDotDotEq]   // ..=
	Comma      = Fixed[pComma]      // ,
	Semi       = Fixed[pSemi]       // ;
	Colon      = Fixed[pColon]      // :
	PathSep    = Fixed[pPathSep]    // ::
	RArrow     = Fixed[pRArrow]     // ->
	FatArrow   = Fixed[pFatArrow]   // =>
	Pound      = Fixed[pPound]      // #
	Dollar     = Fixed[pDollar]     // $
	Question   = Fixed[pQuestion]   // ?
	Tilde      = Fixed[pTilde]      // ~
)

// Keywords.
type (
	Abstract  = Fixed[kAbstract]  // abstract
	As        = Fixed[kAs]        // as
	Async     = Fixed[kAsync]     // async
	Auto      = Fixed[kAuto]      // auto
	Await     = Fixed[kAwait]     // await
	Become    = Fixed[kBecome]    // become
	Box       = Fixed[kBox]       // box
	Break     = Fixed[kBreak]     // break
	Const     = Fixed[kConst]     // const
	Continue  = Fixed[kContinue]  // continue
	Crate     = Fixed[kCrate]     // crate
	Default   = Fixed[kDefault]   // default
	Do        = Fixed[kDo]        // do
	Dyn       = Fixed[kDyn]       // dyn
	Else      = Fixed[kElse]      // else
	Enum      = Fixed[kEnum]      // enum
	Extern    = Fixed[kExtern]    // extern
	Final     = Fixed[kFinal]     // final
	Fn        = Fixed[kFn]        // fn
	For       = Fixed[kFor]       // for
	If        = Fixed[kIf]        // if
	Impl      = Fixed[kImpl]      // impl
	In        = Fixed[kIn]        // in
	Let       = Fixed[kLet]       // let
	Loop      = Fixed[kLoop]      // loop
	Macro     = Fixed[kMacro]     // macro
	Match     = Fixed[kMatch]     // match
	Mod       = Fixed[kMod]       // mod
	Move      = Fixed[kMove]      // move
	Mut       = Fixed[kMut]       // mut
	Override  = Fixed[kOverride]  // override
	Priv      = Fixed[kPriv]      // priv
	Pub       = Fixed[kPub]       // pub
	Ref       = Fixed[kRef]       // ref
	Return    = Fixed[kReturn]    // return
	SelfType  = Fixed[kSelfType]  // Self
	SelfValue = Fixed[kSelfValue] // self
	Static    = Fixed[kStatic]    // static
	Struct    = Fixed[kStruct]    // struct
	Super     = Fixed[kSuper]     // super
	Trait     = Fixed[kTrait]     // trait
	Try       = Fixed[kTry]       // try
	Type      = Fixed[kType]      // type
	Typeof    = Fixed[kTypeof]    // typeof
	Union     = Fixed[kUnion]     // union
	Unsafe    = Fixed[kUnsafe]    // unsafe
	Unsized   = Fixed[kUnsized]   // unsized
	Use       = Fixed[kUse]       // use
	Virtual   = Fixed[kVirtual]   // virtual
	Where     = Fixed[kWhere]     // where
	While     = Fixed[kWhile]     // while
	Yield     = Fixed[kYield]     // yield
)

type (
	pPlus       struct{}
	pMinus      struct{}
	pStar       struct{}
	pSlash      struct{}
	pPercent    struct{}
	pCaret      struct{}
	pNot        struct{}
	pAnd        struct{}
	pOr         struct{}
	pAndAnd     struct{}
	pOrOr       struct{}
	pShl        struct{}
	pShr        struct{}
	pPlusEq     struct{}
	pMinusEq    struct{}
	pStarEq     struct{}
	pSlashEq    struct{}
	pPercentEq  struct{}
	pCaretEq    struct{}
	pAndEq      struct{}
	pOrEq       struct{}
	pShlEq      struct{}
	pShrEq      struct{}
	pEq         struct{}
	pEqEq       struct{}
	pNe         struct{}
	pGt         struct{}
	pLt         struct{}
	pGe         struct{}
	pLArrow     struct{}
	pLe         struct{}
	pAt         struct{}
	pUnderscore struct{}
	pDot        struct{}
	pDotDot     struct{}
	pDotDotDot  struct{}
	pDotDotEq   struct{}
	pComma      struct{}
	pSemi       struct{}
	pColon      struct{}
	pPathSep    struct{}
	pRArrow     struct{}
	pFatArrow   struct{}
	pPound      struct{}
	pDollar     struct{}
	pQuestion   struct{}
	pTilde      struct{}
	kAbstract   struct{}
	kAs         struct{}
	kAsync      struct{}
	kAuto       struct{}
	kAwait      struct{}
	kBecome     struct{}
	kBox        struct{}
	kBreak      struct{}
	kConst      struct{}
	kContinue   struct{}
	kCrate      struct{}
	kDefault    struct{}
	kDo         struct{}
	kDyn        struct{}
	kElse       struct{}
	kEnum       struct{}
	kExtern     struct{}
	kFinal      struct{}
	kFn         struct{}
	kFor        struct{}
	kIf         struct{}
	kImpl       struct{}
	kIn         struct{}
	kLet        struct{}
	kLoop       struct{}
	kMacro      struct{}
	kMatch      struct{}
	kMod        struct{}
	kMove       struct{}
	kMut        struct{}
	kOverride   struct{}
	kPriv       struct{}
	kPub        struct{}
	kRef        struct{}
	kReturn     struct{}
	kSelfType   struct{}
	kSelfValue  struct{}
	kStatic     struct{}
	kStruct     struct{}
	kSuper      struct{}
	kTrait      struct{}
	kTry        struct{}
	kType       struct{}
	kTypeof     struct{}
	kUnion      struct{}
	kUnsafe     struct{}
	kUnsized    struct{}
	kUse        struct{}
	kVirtual    struct{}
	kWhere      struct{}
	kWhile      struct{}
	kYield      struct{}
)

func (pPlus) Fixed() token.Token       { return token.NewPunct(punct.Plus) }
func (pMinus) Fixed() token.Token      { return token.NewPunct(punct.Minus) }
func (pStar) Fixed() token.Token       { return token.NewPunct(punct.Star) }
func (pSlash) Fixed() token.Token      { return token.NewPunct(punct.Slash) }
func (pPercent) Fixed() token.Token    { return token.NewPunct(punct.Percent) }
func (pCaret) Fixed() token.Token      { return token.NewPunct(punct.Caret) }
func (pNot) Fixed() token.Token        { return token.NewPunct(punct.Not) }
func (pAnd) Fixed() token.Token        { return token.NewPunct(punct.And) }
func (pOr) Fixed() token.Token         { return token.NewPunct(punct.Or) }
func (pAndAnd) Fixed() token.Token     { return token.NewPunct(punct.AndAnd) }
func (pOrOr) Fixed() token.Token       { return token.NewPunct(punct.OrOr) }
func (pShl) Fixed() token.Token        { return token.NewPunct(punct.Shl) }
func (pShr) Fixed() token.Token        { return token.NewPunct(punct.Shr) }
func (pPlusEq) Fixed() token.Token     { return token.NewPunct(punct.PlusEq) }
func (pMinusEq) Fixed() token.Token    { return token.NewPunct(punct.MinusEq) }
func (pStarEq) Fixed() token.Token     { return token.NewPunct(punct.StarEq) }
func (pSlashEq) Fixed() token.Token    { return token.NewPunct(punct.SlashEq) }
func (pPercentEq) Fixed() token.Token  { return token.NewPunct(punct.PercentEq) }
func (pCaretEq) Fixed() token.Token    { return token.NewPunct(punct.CaretEq) }
func (pAndEq) Fixed() token.Token      { return token.NewPunct(punct.AndEq) }
func (pOrEq) Fixed() token.Token       { return token.NewPunct(punct.OrEq) }
func (pShlEq) Fixed() token.Token      { return token.NewPunct(punct.ShlEq) }
func (pShrEq) Fixed() token.Token      { return token.NewPunct(punct.ShrEq) }
func (pEq) Fixed() token.Token         { return token.NewPunct(punct.Eq) }
func (pEqEq) Fixed() token.Token       { return token.NewPunct(punct.EqEq) }
func (pNe) Fixed() token.Token         { return token.NewPunct(punct.Ne) }
func (pGt) Fixed() token.Token         { return token.NewPunct(punct.Gt) }
func (pLt) Fixed() token.Token         { return token.NewPunct(punct.Lt) }
func (pGe) Fixed() token.Token         { return token.NewPunct(punct.Ge) }
func (pLArrow) Fixed() token.Token     { return token.NewPunct(punct.LArrow) }
func (pLe) Fixed() token.Token         { return token.NewPunct(punct.Le) }
func (pAt) Fixed() token.Token         { return token.NewPunct(punct.At) }
func (pUnderscore) Fixed() token.Token { return token.NewPunct(punct.Underscore) }
func (pDot) Fixed() token.Token        { return token.NewPunct(punct.Dot) }
func (pDotDot) Fixed() token.Token     { return token.NewPunct(punct.DotDot) }
func (pDotDotDot) Fixed() token.Token  { return token.NewPunct(punct.DotDotDot) }
func (pDotDotEq) Fixed() token.Token   { return token.NewPunct(punct.DotDotEq) }
func (pComma) Fixed() token.Token      { return token.NewPunct(punct.Comma) }
func (pSemi) Fixed() token.Token       { return token.NewPunct(punct.Semi) }
func (pColon) Fixed() token.Token      { return token.NewPunct(punct.Colon) }
func (pPathSep) Fixed() token.Token    { return token.NewPunct(punct.PathSep) }
func (pRArrow) Fixed() token.Token     { return token.NewPunct(punct.RArrow) }
func (pFatArrow) Fixed() token.Token   { return token.NewPunct(punct.FatArrow) }
func (pPound) Fixed() token.Token      { return token.NewPunct(punct.Pound) }
func (pDollar) Fixed() token.Token     { return token.NewPunct(punct.Dollar) }
func (pQuestion) Fixed() token.Token   { return token.NewPunct(punct.Question) }
func (pTilde) Fixed() token.Token      { return token.NewPunct(punct.Tilde) }

func (kAbstract) Fixed() token.Token  { return token.NewKeyword(keyword.Abstract) }
func (kAs) Fixed() token.Token        { return token.NewKeyword(keyword.As) }
func (kAsync) Fixed() token.Token     { return token.NewKeyword(keyword.Async) }
func (kAuto) Fixed() token.Token      { return token.NewKeyword(keyword.Auto) }
func (kAwait) Fixed() token.Token     { return token.NewKeyword(keyword.Await) }
func (kBecome) Fixed() token.Token    { return token.NewKeyword(keyword.Become) }
func (kBox) Fixed() token.Token       { return token.NewKeyword(keyword.Box) }
func (kBreak) Fixed() token.Token     { return token.NewKeyword(keyword.Break) }
func (kConst) Fixed() token.Token     { return token.NewKeyword(keyword.Const) }
func (kContinue) Fixed() token.Token  { return token.NewKeyword(keyword.Continue) }
func (kCrate) Fixed() token.Token     { return token.NewKeyword(keyword.Crate) }
func (kDefault) Fixed() token.Token   { return token.NewKeyword(keyword.Default) }
func (kDo) Fixed() token.Token        { return token.NewKeyword(keyword.Do) }
func (kDyn) Fixed() token.Token       { return token.NewKeyword(keyword.Dyn) }
func (kElse) Fixed() token.Token      { return token.NewKeyword(keyword.Else) }
func (kEnum) Fixed() token.Token      { return token.NewKeyword(keyword.Enum) }
func (kExtern) Fixed() token.Token    { return token.NewKeyword(keyword.Extern) }
func (kFinal) Fixed() token.Token     { return token.NewKeyword(keyword.Final) }
func (kFn) Fixed() token.Token        { return token.NewKeyword(keyword.Fn) }
func (kFor) Fixed() token.Token       { return token.NewKeyword(keyword.For) }
func (kIf) Fixed() token.Token        { return token.NewKeyword(keyword.If) }
func (kImpl) Fixed() token.Token      { return token.NewKeyword(keyword.Impl) }
func (kIn) Fixed() token.Token        { return token.NewKeyword(keyword.In) }
func (kLet) Fixed() token.Token       { return token.NewKeyword(keyword.Let) }
func (kLoop) Fixed() token.Token      { return token.NewKeyword(keyword.Loop) }
func (kMacro) Fixed() token.Token     { return token.NewKeyword(keyword.Macro) }
func (kMatch) Fixed() token.Token     { return token.NewKeyword(keyword.Match) }
func (kMod) Fixed() token.Token       { return token.NewKeyword(keyword.Mod) }
func (kMove) Fixed() token.Token      { return token.NewKeyword(keyword.Move) }
func (kMut) Fixed() token.Token       { return token.NewKeyword(keyword.Mut) }
func (kOverride) Fixed() token.Token  { return token.NewKeyword(keyword.Override) }
func (kPriv) Fixed() token.Token      { return token.NewKeyword(keyword.Priv) }
func (kPub) Fixed() token.Token       { return token.NewKeyword(keyword.Pub) }
func (kRef) Fixed() token.Token       { return token.NewKeyword(keyword.Ref) }
func (kReturn) Fixed() token.Token    { return token.NewKeyword(keyword.Return) }
func (kSelfType) Fixed() token.Token  { return token.NewKeyword(keyword.SelfType) }
func (kSelfValue) Fixed() token.Token { return token.NewKeyword(keyword.SelfValue) }
func (kStatic) Fixed() token.Token    { return token.NewKeyword(keyword.Static) }
func (kStruct) Fixed() token.Token    { return token.NewKeyword(keyword.Struct) }
func (kSuper) Fixed() token.Token     { return token.NewKeyword(keyword.Super) }
func (kTrait) Fixed() token.Token     { return token.NewKeyword(keyword.Trait) }
func (kTry) Fixed() token.Token       { return token.NewKeyword(keyword.Try) }
func (kType) Fixed() token.Token      { return token.NewKeyword(keyword.Type) }
func (kTypeof) Fixed() token.Token    { return token.NewKeyword(keyword.Typeof) }
func (kUnion) Fixed() token.Token     { return token.NewKeyword(keyword.Union) }
func (kUnsafe) Fixed() token.Token    { return token.NewKeyword(keyword.Unsafe) }
func (kUnsized) Fixed() token.Token   { return token.NewKeyword(keyword.Unsized) }
func (kUse) Fixed() token.Token       { return token.NewKeyword(keyword.Use) }
func (kVirtual) Fixed() token.Token   { return token.NewKeyword(keyword.Virtual) }
func (kWhere) Fixed() token.Token     { return token.NewKeyword(keyword.Where) }
func (kWhile) Fixed() token.Token     { return token.NewKeyword(keyword.While) }
func (kYield) Fixed() token.Token     { return token.NewKeyword(keyword.Yield) }
