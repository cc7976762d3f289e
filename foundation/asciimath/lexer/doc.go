// File: doc.go
// Title: AsciiMath Lexer Package Documentation
// Description: Longest-match tokenizer for AsciiMath notation.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-03 v0.1.0: Initial lexer

/*
Package lexer turns AsciiMath text into a lazy sequence of tokens.

At every position the lexer tries, in order:

 1. a number (digits with at most one decimal point),
 2. every keyword table (Greek, Arrow, Function, Operator, Relation,
    Logical, Grouping, Other, Accent, FontCommand), where a later table
    only replaces an earlier match with a strictly longer one,
 3. a single letter as a Variable.

Within a table the candidate grows symbol by symbol up to the table's
longest literal and never across whitespace. Once a literal matches, the
scan continues only while a longer literal of the same table can still
extend it, so "gamma" is one Greek token while "gammag" is Gamma followed
by the function g.

The text marker text(...) and double quotes produce a single free-text
token whose span covers the delimiters.

A symbol that is neither whitespace, a letter, a digit nor the start of a
keyword ends the stream; the position is reported through Warnings.

Example:

	l := lexer.New("alpha + beta")
	for tok, ok := l.Next(); ok; tok, ok = l.Next() {
		fmt.Println(tok, tok.Span)
	}
*/
package lexer
