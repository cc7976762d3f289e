/*
Package ast defines the expression tree produced by the AsciiMath parser.

An input parses into a flat sequence of *Expression values. Each one has a
SimpleExpr base and optional subscript and superscript:

	Var       a single token: number, identifier, symbol or free text
	Grouping  delimited expressions, e.g. (a, b) or {: x :}
	Unary     sqrt, abs, accents and font commands with one operand
	Binary    frac, root, overset, underset and color with two operands
	Interm    an implicit-fraction operand that keeps its own scripts

Every node reports the span of input symbols it covers, and a parent's
span always contains its children's. Matrix detection, comma splitting
and under/over placement live in helpers.go; Dump, Describe and
CheckSpans walk a tree through the Visitor interface.
*/
package ast
