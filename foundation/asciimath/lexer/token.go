// File: token.go
// Title: AsciiMath Tokens
// Description: Token kinds and the Token value produced by the lexer. A
//              token carries its matched text, its source span and, for
//              keyword tokens, the keyword kind of its category.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-03 v0.1.0: Initial token definitions

package lexer

import (
	"fmt"

	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	"github.com/mathemascii/mathemascii/foundation/asciimath/scanner"
)

// TokenKind represents the category of a lexical token
type TokenKind uint8

const (
	TokenNumber TokenKind = iota
	TokenGreek
	TokenArrow
	TokenFunction
	TokenOperator
	TokenRelation
	TokenLogical
	TokenGrouping
	TokenOther
	TokenAccent
	TokenFontCommand
	TokenVariable // single-letter identifier
	TokenUnknown  // placeholder, never produced by the lexer
)

// String returns a string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenGreek:
		return "Greek"
	case TokenArrow:
		return "Arrow"
	case TokenFunction:
		return "Function"
	case TokenOperator:
		return "Operator"
	case TokenRelation:
		return "Relation"
	case TokenLogical:
		return "Logical"
	case TokenGrouping:
		return "Grouping"
	case TokenOther:
		return "Other"
	case TokenAccent:
		return "Accent"
	case TokenFontCommand:
		return "FontCommand"
	case TokenVariable:
		return "Variable"
	case TokenUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

func kindOf(c keywords.Category) TokenKind {
	switch c {
	case keywords.CategoryGreek:
		return TokenGreek
	case keywords.CategoryArrow:
		return TokenArrow
	case keywords.CategoryFunction:
		return TokenFunction
	case keywords.CategoryOperator:
		return TokenOperator
	case keywords.CategoryRelation:
		return TokenRelation
	case keywords.CategoryLogical:
		return TokenLogical
	case keywords.CategoryGrouping:
		return TokenGrouping
	case keywords.CategoryOther:
		return TokenOther
	case keywords.CategoryAccent:
		return TokenAccent
	case keywords.CategoryFontCommand:
		return TokenFontCommand
	default:
		return TokenUnknown
	}
}

// Token is one lexical unit.
type Token struct {
	Kind TokenKind
	Text string // matched text; the enclosed text for free-text tokens
	Span scanner.Span
	code uint8
}

// NewToken creates a token without a keyword kind (numbers, variables and
// placeholders).
func NewToken(kind TokenKind, text string, span scanner.Span) Token {
	return Token{Kind: kind, Text: text, Span: span}
}

// KeywordToken creates a token for a keyword kind.
func KeywordToken[K keywords.Kind](kind K, text string, span scanner.Span) Token {
	tok := Token{Text: text, Span: span, code: uint8(kind)}
	switch any(kind).(type) {
	case keywords.Greek:
		tok.Kind = TokenGreek
	case keywords.Arrow:
		tok.Kind = TokenArrow
	case keywords.Function:
		tok.Kind = TokenFunction
	case keywords.Operator:
		tok.Kind = TokenOperator
	case keywords.Relation:
		tok.Kind = TokenRelation
	case keywords.Logical:
		tok.Kind = TokenLogical
	case keywords.Grouping:
		tok.Kind = TokenGrouping
	case keywords.Other:
		tok.Kind = TokenOther
	case keywords.Accent:
		tok.Kind = TokenAccent
	case keywords.FontCommand:
		tok.Kind = TokenFontCommand
	default:
		tok.Kind = TokenUnknown
	}
	return tok
}

// TextToken creates a free-text token.
func TextToken(text string, span scanner.Span) Token {
	return KeywordToken(keywords.OtherText, text, span)
}

// Greek returns the Greek letter of a Greek token.
func (t Token) Greek() (keywords.Greek, bool) {
	return keywords.Greek(t.code), t.Kind == TokenGreek
}

// Arrow returns the arrow of an Arrow token.
func (t Token) Arrow() (keywords.Arrow, bool) {
	return keywords.Arrow(t.code), t.Kind == TokenArrow
}

// Function returns the function of a Function token.
func (t Token) Function() (keywords.Function, bool) {
	return keywords.Function(t.code), t.Kind == TokenFunction
}

// Operator returns the operator of an Operator token.
func (t Token) Operator() (keywords.Operator, bool) {
	return keywords.Operator(t.code), t.Kind == TokenOperator
}

// Relation returns the relation of a Relation token.
func (t Token) Relation() (keywords.Relation, bool) {
	return keywords.Relation(t.code), t.Kind == TokenRelation
}

// Logical returns the logical symbol of a Logical token.
func (t Token) Logical() (keywords.Logical, bool) {
	return keywords.Logical(t.code), t.Kind == TokenLogical
}

// Grouping returns the grouping symbol of a Grouping token.
func (t Token) Grouping() (keywords.Grouping, bool) {
	return keywords.Grouping(t.code), t.Kind == TokenGrouping
}

// Other returns the symbol of an Other token.
func (t Token) Other() (keywords.Other, bool) {
	return keywords.Other(t.code), t.Kind == TokenOther
}

// Accent returns the accent of an Accent token.
func (t Token) Accent() (keywords.Accent, bool) {
	return keywords.Accent(t.code), t.Kind == TokenAccent
}

// FontCommand returns the font of a FontCommand token.
func (t Token) FontCommand() (keywords.FontCommand, bool) {
	return keywords.FontCommand(t.code), t.Kind == TokenFontCommand
}

// IsOther reports whether the token is the given Other symbol.
func (t Token) IsOther(k keywords.Other) bool {
	o, ok := t.Other()
	return ok && o == k
}

// IsText reports whether the token is free text.
func (t Token) IsText() bool {
	return t.IsOther(keywords.OtherText)
}

// Name returns the keyword kind's name, or "" for non-keyword tokens.
func (t Token) Name() string {
	switch t.Kind {
	case TokenGreek:
		return keywords.Greek(t.code).String()
	case TokenArrow:
		return keywords.Arrow(t.code).String()
	case TokenFunction:
		return keywords.Function(t.code).String()
	case TokenOperator:
		return keywords.Operator(t.code).String()
	case TokenRelation:
		return keywords.Relation(t.code).String()
	case TokenLogical:
		return keywords.Logical(t.code).String()
	case TokenGrouping:
		return keywords.Grouping(t.code).String()
	case TokenOther:
		return keywords.Other(t.code).String()
	case TokenAccent:
		return keywords.Accent(t.code).String()
	case TokenFontCommand:
		return keywords.FontCommand(t.code).String()
	}
	return ""
}

// String returns a string representation of the token, e.g. Greek(Gamma)
// or Number(24.42).
func (t Token) String() string {
	if t.IsText() {
		return fmt.Sprintf("Text(%s)", t.Text)
	}
	if name := t.Name(); name != "" {
		return fmt.Sprintf("%s(%s)", t.Kind, name)
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}
