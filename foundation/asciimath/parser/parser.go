// File: parser.go
// Title: AsciiMath Recursive-Descent Parser
// Description: Builds expression trees from the lexer's token stream with
//              one token of look-ahead. Implements groupings with
//              compatible delimiters, unary and binary prefix forms,
//              sub/superscripts and right-associative implicit fractions.
//              Malformed input is recovered as far as possible and every
//              recovery point leaves a positioned warning.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial parser implementation
// - 2026-10-07 v0.1.0: Raw colour operands through the lexer
// - 2026-10-09 v0.1.0: Warnings at every recovery point

package parser

import (
	"sort"

	"github.com/mathemascii/mathemascii/foundation/asciimath/ast"
	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	"github.com/mathemascii/mathemascii/foundation/asciimath/lexer"
	"github.com/mathemascii/mathemascii/foundation/asciimath/scanner"
)

// Parser yields the top-level expressions of one input. It is single-pass
// and not safe for concurrent use.
type Parser struct {
	lex      *lexer.Lexer
	peeked   lexer.Token
	hasPeek  bool
	open     []keywords.Grouping // delimiters of the enclosing groupings
	warnings diag.List
	done     bool
}

// New creates a parser over input.
func New(input string) *Parser {
	return FromLexer(lexer.New(input))
}

// FromLexer creates a parser reading from an existing lexer.
func FromLexer(l *lexer.Lexer) *Parser {
	return &Parser{lex: l}
}

// Source returns the scanned input.
func (p *Parser) Source() *scanner.Source { return p.lex.Source() }

// Warnings returns the lexer and parser diagnostics ordered by position.
func (p *Parser) Warnings() []diag.Warning {
	all := append(p.lex.Warnings(), p.warnings.Items()...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Span.Start < all[j].Span.Start
	})
	return all
}

// Next returns the next top-level expression. ok is false once the input
// is exhausted or the remaining tokens cannot form an expression.
func (p *Parser) Next() (*ast.Expression, bool) {
	if p.done {
		return nil, false
	}

	e := p.parseExpr()
	if e == nil {
		p.done = true
		if tok, ok := p.peek(); ok {
			span := scanner.NewSpan(tok.Span.Start, p.Source().Len())
			p.warnings.Addf(diag.CodeTrailingInput, span, "input from %s on could not be parsed and was ignored", tok)
		}
		return nil, false
	}
	return e, true
}

// Parse drains the parser.
func (p *Parser) Parse() []*ast.Expression {
	var exprs []*ast.Expression
	for {
		e, ok := p.Next()
		if !ok {
			return exprs
		}
		exprs = append(exprs, e)
	}
}

// Parse is a convenience wrapper returning every expression of input.
func Parse(input string) []*ast.Expression {
	return New(input).Parse()
}

func (p *Parser) peek() (lexer.Token, bool) {
	if !p.hasPeek {
		tok, ok := p.lex.Next()
		if !ok {
			return lexer.Token{}, false
		}
		p.peeked, p.hasPeek = tok, true
	}
	return p.peeked, true
}

func (p *Parser) advance() (lexer.Token, bool) {
	tok, ok := p.peek()
	p.hasPeek = false
	return tok, ok
}

// parseExpr parses intermediate ('/' expr)?.
func (p *Parser) parseExpr() *ast.Expression {
	num := p.parseInterm()
	if num == nil {
		return nil
	}

	tok, ok := p.peek()
	if !ok || !tok.IsOther(keywords.OtherForwardSlash) {
		return num
	}
	p.advance()

	den := p.parseExpr()
	if den == nil {
		p.warnings.Addf(diag.CodeMissingDenominator, tok.Span, "fraction bar has no denominator")
		return nil
	}

	return &ast.Expression{
		Base: &ast.Binary{
			Kind:   ast.BinaryFraction,
			First:  fractionOperand(num),
			Second: fractionOperand(den),
			Loc:    scanner.NewSpan(num.Span().Start, den.Span().End),
		},
	}
}

// fractionOperand keeps a scripted operand whole and hides the
// delimiters of a bare grouping.
func fractionOperand(e *ast.Expression) ast.SimpleExpr {
	if e.IsScripted() {
		return &ast.Interm{Expr: e}
	}
	if g, ok := e.Base.(*ast.Grouping); ok {
		return g.IgnoredParentheses()
	}
	return e.Base
}

// parseInterm parses simple ('_' simple)? ('^' simple)?.
func (p *Parser) parseInterm() *ast.Expression {
	base := p.parseSimple()
	if base == nil {
		return nil
	}
	e := &ast.Expression{Base: base}

	if tok, ok := p.peek(); ok && tok.IsOther(keywords.OtherSubscript) {
		p.advance()
		if e.Sub = p.parseSimple(); e.Sub == nil {
			p.warnings.Addf(diag.CodeMissingScript, tok.Span, "subscript marker has no operand")
			return e
		}
	}

	if tok, ok := p.peek(); ok && tok.IsOther(keywords.OtherPower) {
		p.advance()
		if e.Sup = p.parseSimple(); e.Sup == nil {
			p.warnings.Addf(diag.CodeMissingScript, tok.Span, "superscript marker has no operand")
		}
	}
	return e
}

func (p *Parser) parseSimple() ast.SimpleExpr {
	tok, ok := p.peek()
	if !ok {
		return nil
	}

	if kind, ok := ast.UnaryKindOf(tok); ok {
		p.advance()
		return p.parseUnary(tok, kind)
	}
	if kind, ok := ast.BinaryKindOf(tok); ok {
		p.advance()
		return p.parseBinary(tok, kind)
	}
	if g, ok := tok.Grouping(); ok {
		if p.closesEnclosing(g) {
			return nil
		}
		p.advance()
		return p.parseGrouping(tok, g)
	}

	v, ok := ast.NewVar(tok)
	if !ok {
		p.warnings.Addf(diag.CodeUnexpectedToken, tok.Span, "%s cannot start an expression", tok)
		return nil
	}
	p.advance()
	return v
}

func (p *Parser) parseUnary(tok lexer.Token, kind ast.UnaryKind) ast.SimpleExpr {
	operand := p.parseSimple()
	if operand == nil {
		p.warnings.Addf(diag.CodeMissingOperand, tok.Span, "%s has no operand", tok)
		operand = ast.Placeholder(tok.Span.End)
	}
	return &ast.Unary{
		Kind:    kind,
		Operand: operand,
		Loc:     scanner.NewSpan(tok.Span.Start, operand.Span().End),
	}
}

func (p *Parser) parseBinary(tok lexer.Token, kind ast.BinaryKind) ast.SimpleExpr {
	var first ast.SimpleExpr
	if kind == ast.BinaryColor {
		// the prefix token was just consumed, so the look-ahead is empty
		if raw, ok := p.lex.RawGroup(); ok {
			first = ast.TextVar(raw.Text, raw.Span)
		}
	} else {
		first = p.parseSimple()
	}
	if first == nil {
		p.warnings.Addf(diag.CodeMissingOperand, tok.Span, "%s is missing its first operand", tok)
		return nil
	}

	second := p.parseSimple()
	if second == nil {
		p.warnings.Addf(diag.CodeMissingOperand, tok.Span, "%s is missing its second operand", tok)
		return nil
	}

	return &ast.Binary{
		Kind:   kind,
		First:  first,
		Second: second,
		Loc:    scanner.NewSpan(tok.Span.Start, second.Span().End),
	}
}

// closesEnclosing reports whether g would close one of the groupings
// currently being parsed.
func (p *Parser) closesEnclosing(g keywords.Grouping) bool {
	for _, open := range p.open {
		if open.Closes(g) {
			return true
		}
	}
	return false
}

// parseGrouping collects expressions until a compatible closer. Any
// delimiter opens a grouping, closers included, so ")x(" and "]a,b["
// parse as groupings too. Without a closer, or when a delimiter closes an
// enclosing grouping first, the grouping ends with an invisible closer
// after its last child.
func (p *Parser) parseGrouping(open lexer.Token, kind keywords.Grouping) ast.SimpleExpr {
	g := &ast.Grouping{Open: kind}
	end := open.Span.End

	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		if closer, ok := tok.Grouping(); ok {
			if kind.Closes(closer) {
				p.advance()
				g.Close = closer
				g.Loc = scanner.NewSpan(open.Span.Start, tok.Span.End)
				return g
			}
			if p.closesEnclosing(closer) {
				break
			}
		}

		p.open = append(p.open, kind)
		e := p.parseExpr()
		p.open = p.open[:len(p.open)-1]
		if e == nil {
			break
		}
		g.Exprs = append(g.Exprs, e)
		end = e.Span().End
	}

	p.warnings.Addf(diag.CodeUnclosedGrouping, open.Span, "%s is never closed", kind)
	g.Close = keywords.GroupCloseIgnored
	g.Loc = scanner.NewSpan(open.Span.Start, end)
	return g
}
