// File: scanner.go
// Title: AsciiMath Symbol Stream
// Description: Decomposes raw input into indexed code-point symbols and
//              defines the half-open Span used by tokens and tree nodes.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial symbol stream

package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Symbol is one code point of the input.
type Symbol struct {
	Content string // the code point as a string, never empty
	Offset  int    // symbol index
	Byte    int    // byte offset into the source text
}

// IsWhitespace reports whether the symbol is a Unicode space.
func (s Symbol) IsWhitespace() bool {
	r, _ := utf8.DecodeRuneInString(s.Content)
	return unicode.IsSpace(r)
}

// IsDigit reports whether the symbol is an ASCII digit.
func (s Symbol) IsDigit() bool {
	return len(s.Content) == 1 && s.Content[0] >= '0' && s.Content[0] <= '9'
}

// IsDot reports whether the symbol is a decimal point.
func (s Symbol) IsDot() bool {
	return s.Content == "."
}

// IsLetter reports whether the symbol is a Unicode letter.
func (s Symbol) IsLetter() bool {
	r, _ := utf8.DecodeRuneInString(s.Content)
	return unicode.IsLetter(r)
}

// Is reports whether the symbol equals the given text.
func (s Symbol) Is(text string) bool {
	return s.Content == text
}

// Source is an immutable sequence of symbols over one input string.
type Source struct {
	text    string
	symbols []Symbol
}

// New scans text into symbols. Invalid UTF-8 bytes become U+FFFD symbols.
func New(text string) *Source {
	src := &Source{
		text:    text,
		symbols: make([]Symbol, 0, utf8.RuneCountInString(text)),
	}
	for pos, r := range text {
		size := utf8.RuneLen(r)
		if r == utf8.RuneError {
			_, size = utf8.DecodeRuneInString(text[pos:])
		}
		src.symbols = append(src.symbols, Symbol{
			Content: text[pos : pos+size],
			Offset:  len(src.symbols),
			Byte:    pos,
		})
	}
	return src
}

// Text returns the scanned input.
func (s *Source) Text() string { return s.text }

// Len returns the number of symbols.
func (s *Source) Len() int { return len(s.symbols) }

// Symbols returns the symbol slice. Callers must not modify it.
func (s *Source) Symbols() []Symbol { return s.symbols }

// At returns the symbol at index i. ok is false when i is out of range.
func (s *Source) At(i int) (Symbol, bool) {
	if i < 0 || i >= len(s.symbols) {
		return Symbol{}, false
	}
	return s.symbols[i], true
}

// Slice returns the text covered by the symbol range [start, end).
// The range is clamped to the source.
func (s *Source) Slice(start, end int) string {
	start = max(start, 0)
	end = min(end, len(s.symbols))
	if start >= end {
		return ""
	}
	return s.text[s.byteAt(start):s.byteAt(end)]
}

// SpanText returns the text covered by sp.
func (s *Source) SpanText(sp Span) string {
	return s.Slice(sp.Start, sp.End)
}

func (s *Source) byteAt(i int) int {
	if i >= len(s.symbols) {
		return len(s.text)
	}
	return s.symbols[i].Byte
}

// Span is a half-open [Start, End) range of symbol offsets.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of symbols covered.
func (sp Span) Len() int { return sp.End - sp.Start }

// IsEmpty reports whether the span covers no symbol.
func (sp Span) IsEmpty() bool { return sp.End <= sp.Start }

// IsValid reports whether Start <= End and both are non-negative.
func (sp Span) IsValid() bool { return sp.Start >= 0 && sp.Start <= sp.End }

// Contains reports whether other lies inside sp.
func (sp Span) Contains(other Span) bool {
	return sp.Start <= other.Start && other.End <= sp.End
}

// Cover returns the smallest span containing both sp and other.
func (sp Span) Cover(other Span) Span {
	return Span{Start: min(sp.Start, other.Start), End: max(sp.End, other.End)}
}

func (sp Span) String() string {
	return fmt.Sprintf("%d..%d", sp.Start, sp.End)
}
