// File: diag.go
// Title: AsciiMath Diagnostics
// Description: Position-tagged warnings emitted at every recovery point of
//              the lexer and parser, plus a caret renderer for terminals.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-03 v0.1.0: Initial warning type
// - 2026-10-09 v0.1.0: Caret formatting with colour support
// - 2026-10-12 v0.1.0: Caret column follows display width

package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/mathemascii/mathemascii/foundation/asciimath/scanner"
)

// Code classifies a warning.
type Code string

const (
	CodeUnrecognizedSymbol Code = "unrecognized-symbol"
	CodeUnterminatedText   Code = "unterminated-text"
	CodeUnclosedGrouping   Code = "unclosed-grouping"
	CodeMissingOperand     Code = "missing-operand"
	CodeMissingScript      Code = "missing-script"
	CodeMissingDenominator Code = "missing-denominator"
	CodeUnexpectedToken    Code = "unexpected-token"
	CodeTrailingInput      Code = "trailing-input"
)

// Warning reports input that was recovered from or dropped.
type Warning struct {
	Code    Code         `json:"code" yaml:"code"`
	Message string       `json:"message" yaml:"message"`
	Span    scanner.Span `json:"span" yaml:"span"`
}

// New creates a warning.
func New(code Code, span scanner.Span, format string, args ...interface{}) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...), Span: span}
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at %s: %s", w.Code, w.Span, w.Message)
}

// List accumulates warnings in emission order.
type List struct {
	items []Warning
}

// Add appends a warning.
func (l *List) Add(w Warning) {
	l.items = append(l.items, w)
}

// Addf builds and appends a warning.
func (l *List) Addf(code Code, span scanner.Span, format string, args ...interface{}) {
	l.Add(New(code, span, format, args...))
}

// Items returns a copy of the collected warnings.
func (l *List) Items() []Warning {
	if len(l.items) == 0 {
		return nil
	}
	return append([]Warning(nil), l.items...)
}

// Len returns the number of warnings.
func (l *List) Len() int { return len(l.items) }

// Format renders w as a two-line caret diagnostic against input:
//
//	warning: unrecognized-symbol: symbol "?" is not part of the notation
//	  | x + ? y
//	  |     ^
func Format(input string, w Warning, withColor bool) string {
	yellowBold := color.New(color.FgYellow, color.Bold)
	blue := color.New(color.FgBlue)
	yellow := color.New(color.FgYellow)
	if !withColor {
		yellowBold.DisableColor()
		blue.DisableColor()
		yellow.DisableColor()
	}

	src := scanner.New(input)
	start := min(max(w.Span.Start, 0), src.Len())
	end := min(max(w.Span.End, start), src.Len())
	pad := runewidth.StringWidth(strings.ReplaceAll(src.Slice(0, start), "\n", " "))
	width := max(runewidth.StringWidth(src.Slice(start, end)), 1)

	var b strings.Builder
	b.WriteString(yellowBold.Sprintf("warning: %s", w.Code))
	b.WriteString(": ")
	b.WriteString(w.Message)
	b.WriteByte('\n')
	b.WriteString(blue.Sprint("  | "))
	b.WriteString(strings.ReplaceAll(input, "\n", " "))
	b.WriteByte('\n')
	b.WriteString(blue.Sprint("  | "))
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(yellow.Sprint(strings.Repeat("^", width)))
	return b.String()
}

// FormatAll renders every warning, separated by blank lines.
func FormatAll(input string, warnings []Warning, withColor bool) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, Format(input, w, withColor))
	}
	return strings.Join(parts, "\n\n")
}
