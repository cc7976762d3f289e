// File: lexer.go
// Title: AsciiMath Lexical Analyzer
// Description: Lazy longest-match tokenizer over the symbol stream. Numbers
//              are tried first, then every keyword table in priority order;
//              single letters fall back to variables. Free-text literals
//              (text(...) and "...") become one token spanning their
//              delimiters.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-03 v0.1.0: Initial lexer implementation
// - 2026-10-08 v0.1.0: Raw grouping reads for color names, warnings

package lexer

import (
	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	"github.com/mathemascii/mathemascii/foundation/asciimath/scanner"
)

// Lexer tokenizes one input. It is single-pass and not safe for
// concurrent use.
type Lexer struct {
	src      *scanner.Source
	cursor   int
	tables   []keywords.Keyword
	warnings diag.List
	done     bool
}

// New creates a lexer over input.
func New(input string) *Lexer {
	return FromSource(scanner.New(input))
}

// FromSource creates a lexer over an already scanned source.
func FromSource(src *scanner.Source) *Lexer {
	return &Lexer{
		src:    src,
		tables: keywords.Ordered(),
	}
}

// Source returns the scanned input.
func (l *Lexer) Source() *scanner.Source { return l.src }

// Cursor returns the symbol offset of the next unread symbol.
func (l *Lexer) Cursor() int { return l.cursor }

// Warnings returns the diagnostics collected so far.
func (l *Lexer) Warnings() []diag.Warning { return l.warnings.Items() }

// Next returns the next token. ok is false once the input is exhausted or
// an unrecognized symbol was reached; the lexer stays exhausted afterwards.
func (l *Lexer) Next() (tok Token, ok bool) {
	if l.done {
		return Token{}, false
	}

	l.skipWhitespace()
	sym, ok := l.src.At(l.cursor)
	if !ok {
		l.done = true
		return Token{}, false
	}

	if tok, ok := l.lexNumber(); ok {
		l.cursor = tok.Span.End
		return tok, true
	}

	if tok, ok := l.lexKeywords(); ok {
		if other, _ := tok.Other(); tok.Kind == TokenOther && other.IsFreeText() {
			tok = l.lexFreeText(tok)
		}
		l.cursor = tok.Span.End
		return tok, true
	}

	if sym.IsLetter() {
		l.cursor++
		return NewToken(TokenVariable, sym.Content, scanner.NewSpan(sym.Offset, sym.Offset+1)), true
	}

	l.warnings.Addf(diag.CodeUnrecognizedSymbol, scanner.NewSpan(sym.Offset, sym.Offset+1),
		"symbol %q is not part of the notation; the rest of the input is ignored", sym.Content)
	l.done = true
	return Token{}, false
}

// Tokenize drains the lexer.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Tokenize is a convenience wrapper returning every token of input.
func Tokenize(input string) []Token {
	return New(input).Tokenize()
}

func (l *Lexer) skipWhitespace() {
	for {
		sym, ok := l.src.At(l.cursor)
		if !ok || !sym.IsWhitespace() {
			return
		}
		l.cursor++
	}
}

// lexNumber matches digits with at most one decimal point. A dot is only
// taken when it is followed by a digit or ends a run of digits without
// starting another dot, so "1...n" keeps its ellipsis.
func (l *Lexer) lexNumber() (Token, bool) {
	start := l.cursor
	end := start
	digits, dot := false, false

	for {
		sym, ok := l.src.At(end)
		if !ok {
			break
		}
		if sym.IsDigit() {
			digits = true
			end++
			continue
		}
		if sym.IsDot() && !dot {
			next, hasNext := l.src.At(end + 1)
			if hasNext && next.IsDigit() || digits && !(hasNext && next.IsDot()) {
				dot = true
				end++
				continue
			}
		}
		break
	}

	if !digits {
		return Token{}, false
	}
	span := scanner.NewSpan(start, end)
	return NewToken(TokenNumber, l.src.SpanText(span), span), true
}

// lexKeywords walks the tables in priority order. A later table only wins
// with a strictly longer match; a match followed by whitespace is final.
func (l *Lexer) lexKeywords() (Token, bool) {
	var (
		best   Token
		found  bool
		minLen = 1
	)

	for _, table := range l.tables {
		tok, ok := l.lexKeyword(table, minLen)
		if !ok {
			continue
		}
		best, found = tok, true
		minLen = tok.Span.Len() + 1

		if next, ok := l.src.At(tok.Span.End); ok && next.IsWhitespace() {
			break
		}
	}
	return best, found
}

// lexKeyword grows a candidate from minLen symbols up to the table's
// maximum, never across whitespace. After a match the scan continues only
// while a longer literal of the same table may still extend it.
func (l *Lexer) lexKeyword(table keywords.Keyword, minLen int) (Token, bool) {
	start := l.cursor
	first, ok := l.src.At(start)
	if !ok || !table.StartsWith(first.Content) {
		return Token{}, false
	}

	limit := table.MaxLen()
	for n := 1; n <= limit; n++ {
		sym, ok := l.src.At(start + n - 1)
		if !ok || sym.IsWhitespace() {
			limit = n - 1
			break
		}
	}

	var (
		best  Token
		found bool
	)
	for n := max(minLen, table.MinLen()); n <= limit; n++ {
		span := scanner.NewSpan(start, start+n)
		text := l.src.SpanText(span)
		code, ok := table.Lookup(text)
		if !ok {
			continue
		}
		best = Token{Kind: kindOf(table.Category()), Text: text, Span: span, code: code}
		found = true

		ext, isPrefix := table.LongestExtension(code)
		if !isPrefix {
			break
		}
		limit = min(limit, ext)
	}
	return best, found
}

// lexFreeText turns a text or quote marker into a free-text token covering
// the delimiters. "text" without a following "(" is taken as the word
// itself. An unterminated literal runs to the end of the input.
func (l *Lexer) lexFreeText(marker Token) Token {
	var closer string
	contentStart := marker.Span.End

	if marker.IsOther(keywords.OtherQuote) {
		closer = `"`
	} else {
		sym, ok := l.src.At(marker.Span.End)
		if !ok || !sym.Is("(") {
			return TextToken(marker.Text, marker.Span)
		}
		closer = ")"
		contentStart++
	}

	for i := contentStart; i < l.src.Len(); i++ {
		if sym, _ := l.src.At(i); sym.Is(closer) {
			return TextToken(l.src.Slice(contentStart, i), scanner.NewSpan(marker.Span.Start, i+1))
		}
	}

	span := scanner.NewSpan(marker.Span.Start, l.src.Len())
	l.warnings.Addf(diag.CodeUnterminatedText, span, "free text is missing its closing %q", closer)
	return TextToken(l.src.Slice(contentStart, l.src.Len()), span)
}

var rawClosers = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// RawGroup reads a bracketed run of symbols verbatim, e.g. the "(red)" of
// color(red)(x), and returns it as a free-text token. Keyword matching is
// bypassed. ok is false, and nothing is consumed, if the next symbol is not
// an opening bracket.
func (l *Lexer) RawGroup() (Token, bool) {
	if l.done {
		return Token{}, false
	}
	l.skipWhitespace()

	open, ok := l.src.At(l.cursor)
	if !ok {
		return Token{}, false
	}
	closer, ok := rawClosers[open.Content]
	if !ok {
		return Token{}, false
	}

	start := l.cursor
	for i := start + 1; i < l.src.Len(); i++ {
		if sym, _ := l.src.At(i); sym.Is(closer) {
			l.cursor = i + 1
			return TextToken(l.src.Slice(start+1, i), scanner.NewSpan(start, i+1)), true
		}
	}

	span := scanner.NewSpan(start, l.src.Len())
	l.warnings.Addf(diag.CodeUnterminatedText, span, "group is missing its closing %q", closer)
	l.cursor = l.src.Len()
	return TextToken(l.src.Slice(start+1, l.src.Len()), span), true
}
