// File: doc.go
// Title: AsciiMath Parser Package Documentation
// Description: Recursive-descent parser producing expression trees.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial parser

/*
Package parser builds ast trees from AsciiMath input.

Grammar, lowest precedence first:

	expr    := interm ('/' expr)?
	interm  := simple ('_' simple)? ('^' simple)?
	simple  := unary | binary | grouping | var

The implicit fraction is right-associative, so a/b/c parses as a/(b/c).
A grouping ends at the first delimiter compatible with its opener; with
none left it closes invisibly after its last child.

The parser never fails. Malformed input yields the expressions recovered
so far and a warning for every recovery point:

	unary without operand     a zero-width Unknown placeholder operand
	script marker without one the expression keeps only its base
	binary without operands   the expression stream ends
	'/' without denominator   the expression stream ends
	unclosed grouping         an invisible closer

Example:

	p := parser.New("sum_(i=1)^n i = (n(n+1))/2")
	for e, ok := p.Next(); ok; e, ok = p.Next() {
		fmt.Println(e)
	}
	for _, w := range p.Warnings() {
		fmt.Println(w)
	}
*/
package parser
