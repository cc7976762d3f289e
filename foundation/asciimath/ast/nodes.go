// File: nodes.go
// Title: AsciiMath Expression Tree Nodes
// Description: Defines the expression tree built by the parser: leaves,
//              groupings, unary and binary forms, the intermediate wrapper
//              used by implicit fractions and the scripted Expression.
//              Every node carries a symbol span into the input.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-04 v0.1.0: Initial node definitions
// - 2026-10-08 v0.1.0: Placeholder leaves and kind conversions

package ast

import (
	"fmt"
	"strings"

	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	"github.com/mathemascii/mathemascii/foundation/asciimath/lexer"
	"github.com/mathemascii/mathemascii/foundation/asciimath/scanner"
)

// Span is a half-open range of symbol offsets.
type Span = scanner.Span

// Node is implemented by every tree node.
type Node interface {
	Span() Span
	Accept(v Visitor) interface{}
	String() string
}

// SimpleExpr is a node that can be the base or a script of an Expression.
type SimpleExpr interface {
	Node
	simpleExpr()
}

// VarKind classifies a leaf.
type VarKind uint8

const (
	VarNumber VarKind = iota
	VarIdent
	VarGreek
	VarFunction
	VarOperator
	VarRelation
	VarLogical
	VarArrow
	VarOther
	VarText
	VarUnknown
)

func (k VarKind) String() string {
	switch k {
	case VarNumber:
		return "Number"
	case VarIdent:
		return "Variable"
	case VarGreek:
		return "Greek"
	case VarFunction:
		return "Function"
	case VarOperator:
		return "Operator"
	case VarRelation:
		return "Relation"
	case VarLogical:
		return "Logical"
	case VarArrow:
		return "Arrow"
	case VarOther:
		return "Other"
	case VarText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Var is a leaf wrapping one token.
type Var struct {
	Kind  VarKind
	Token lexer.Token
}

// NewVar converts a token into a leaf. Tokens that introduce structure
// (groupings, accents, font commands, script markers and the structural
// Other symbols) are rejected.
func NewVar(tok lexer.Token) (*Var, bool) {
	var kind VarKind
	switch tok.Kind {
	case lexer.TokenNumber:
		kind = VarNumber
	case lexer.TokenVariable:
		kind = VarIdent
	case lexer.TokenGreek:
		kind = VarGreek
	case lexer.TokenFunction:
		kind = VarFunction
	case lexer.TokenOperator:
		kind = VarOperator
	case lexer.TokenRelation:
		kind = VarRelation
	case lexer.TokenLogical:
		kind = VarLogical
	case lexer.TokenArrow:
		kind = VarArrow
	case lexer.TokenUnknown:
		kind = VarUnknown
	case lexer.TokenOther:
		other, _ := tok.Other()
		switch other {
		case keywords.OtherText, keywords.OtherQuote:
			kind = VarText
		case keywords.OtherPower, keywords.OtherSubscript,
			keywords.OtherFraction, keywords.OtherRoot, keywords.OtherSquareRoot:
			return nil, false
		default:
			kind = VarOther
		}
	default:
		return nil, false
	}
	return &Var{Kind: kind, Token: tok}, true
}

// Placeholder returns an empty unknown leaf of zero width at offset.
func Placeholder(offset int) *Var {
	return &Var{
		Kind:  VarUnknown,
		Token: lexer.NewToken(lexer.TokenUnknown, "", scanner.NewSpan(offset, offset)),
	}
}

// TextVar returns a free-text leaf.
func TextVar(text string, span Span) *Var {
	return &Var{Kind: VarText, Token: lexer.TextToken(text, span)}
}

func (v *Var) Span() Span                    { return v.Token.Span }
func (v *Var) Accept(vi Visitor) interface{} { return vi.VisitVar(v) }
func (v *Var) simpleExpr()                   {}

// Text returns the leaf's source text, or the enclosed text for free text.
func (v *Var) Text() string { return v.Token.Text }

func (v *Var) String() string {
	switch v.Kind {
	case VarNumber, VarIdent, VarText:
		return fmt.Sprintf("%s(%s)", v.Kind, v.Token.Text)
	case VarUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("%s(%s)", v.Kind, v.Token.Name())
	}
}

// Grouping is a delimited list of expressions. Open and Close are
// compatible per keywords.Grouping.Closes but need not be identical.
type Grouping struct {
	Open  keywords.Grouping
	Close keywords.Grouping
	Exprs []*Expression
	Loc   Span
}

func (g *Grouping) Span() Span                   { return g.Loc }
func (g *Grouping) Accept(v Visitor) interface{} { return v.VisitGrouping(g) }
func (g *Grouping) simpleExpr()                  {}

func (g *Grouping) String() string {
	parts := make([]string, len(g.Exprs))
	for i, e := range g.Exprs {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Grouping(%s, [%s], %s)", g.Open, strings.Join(parts, ", "), g.Close)
}

// UnaryKind is the operator of a Unary node.
type UnaryKind uint8

const (
	UnarySqrt UnaryKind = iota
	UnaryAbs
	UnaryFloor
	UnaryCeil
	UnaryNorm
	UnaryHat
	UnaryOverline
	UnaryUnderline
	UnaryVector
	UnaryTilde
	UnaryDot
	UnaryDoubleDot
	UnaryUnderbrace
	UnaryOverbrace
	UnaryCancel
	UnaryBold
	UnaryBlackboardBold
	UnaryCalligraphic
	UnaryTypewriter
	UnaryGothic
	UnarySansSerif
)

var unaryNames = [...]string{
	UnarySqrt:           "Sqrt",
	UnaryAbs:            "Abs",
	UnaryFloor:          "Floor",
	UnaryCeil:           "Ceil",
	UnaryNorm:           "Norm",
	UnaryHat:            "Hat",
	UnaryOverline:       "Overline",
	UnaryUnderline:      "Underline",
	UnaryVector:         "Vector",
	UnaryTilde:          "Tilde",
	UnaryDot:            "Dot",
	UnaryDoubleDot:      "DoubleDot",
	UnaryUnderbrace:     "Underbrace",
	UnaryOverbrace:      "Overbrace",
	UnaryCancel:         "Cancel",
	UnaryBold:           "Bold",
	UnaryBlackboardBold: "BlackboardBold",
	UnaryCalligraphic:   "Calligraphic",
	UnaryTypewriter:     "Typewriter",
	UnaryGothic:         "Gothic",
	UnarySansSerif:      "SansSerif",
}

func (k UnaryKind) String() string {
	if int(k) < len(unaryNames) {
		return unaryNames[k]
	}
	return "Unknown"
}

// IsFont reports whether the operator only changes the font.
func (k UnaryKind) IsFont() bool { return k >= UnaryBold }

// UnaryKindOf maps a prefix token to its unary operator.
func UnaryKindOf(tok lexer.Token) (UnaryKind, bool) {
	if tok.IsOther(keywords.OtherSquareRoot) {
		return UnarySqrt, true
	}
	if g, ok := tok.Grouping(); ok {
		switch g {
		case keywords.GroupAbsolute:
			return UnaryAbs, true
		case keywords.GroupFloor:
			return UnaryFloor, true
		case keywords.GroupCeiling:
			return UnaryCeil, true
		case keywords.GroupNorm:
			return UnaryNorm, true
		}
		return 0, false
	}
	if a, ok := tok.Accent(); ok {
		switch a {
		case keywords.AccentHat:
			return UnaryHat, true
		case keywords.AccentOverline:
			return UnaryOverline, true
		case keywords.AccentUnderline:
			return UnaryUnderline, true
		case keywords.AccentVector:
			return UnaryVector, true
		case keywords.AccentTilde:
			return UnaryTilde, true
		case keywords.AccentDot:
			return UnaryDot, true
		case keywords.AccentDoubleDot:
			return UnaryDoubleDot, true
		case keywords.AccentUnderbrace:
			return UnaryUnderbrace, true
		case keywords.AccentOverbrace:
			return UnaryOverbrace, true
		case keywords.AccentCancel:
			return UnaryCancel, true
		}
		return 0, false
	}
	if f, ok := tok.FontCommand(); ok {
		switch f {
		case keywords.FontBold:
			return UnaryBold, true
		case keywords.FontBlackboardBold:
			return UnaryBlackboardBold, true
		case keywords.FontCalligraphic:
			return UnaryCalligraphic, true
		case keywords.FontTypewriter:
			return UnaryTypewriter, true
		case keywords.FontGothic:
			return UnaryGothic, true
		case keywords.FontSansSerif:
			return UnarySansSerif, true
		}
	}
	return 0, false
}

// Unary is a prefix operator applied to one operand.
type Unary struct {
	Kind    UnaryKind
	Operand SimpleExpr
	Loc     Span
}

func (u *Unary) Span() Span                   { return u.Loc }
func (u *Unary) Accept(v Visitor) interface{} { return v.VisitUnary(u) }
func (u *Unary) simpleExpr()                  {}

func (u *Unary) String() string {
	return fmt.Sprintf("Unary(%s, %s)", u.Kind, u.Operand)
}

// BinaryKind is the operator of a Binary node.
type BinaryKind uint8

const (
	BinaryFraction BinaryKind = iota
	BinaryRoot
	BinaryOverset
	BinaryUnderset
	BinaryColor
)

func (k BinaryKind) String() string {
	switch k {
	case BinaryFraction:
		return "Fraction"
	case BinaryRoot:
		return "Root"
	case BinaryOverset:
		return "Overset"
	case BinaryUnderset:
		return "Underset"
	case BinaryColor:
		return "Color"
	default:
		return "Unknown"
	}
}

// BinaryKindOf maps a prefix token to its binary operator.
func BinaryKindOf(tok lexer.Token) (BinaryKind, bool) {
	switch {
	case tok.IsOther(keywords.OtherFraction):
		return BinaryFraction, true
	case tok.IsOther(keywords.OtherRoot):
		return BinaryRoot, true
	}
	if a, ok := tok.Accent(); ok {
		switch a {
		case keywords.AccentOverset:
			return BinaryOverset, true
		case keywords.AccentUnderset:
			return BinaryUnderset, true
		case keywords.AccentColor:
			return BinaryColor, true
		}
	}
	return 0, false
}

// Binary is a prefix operator applied to two operands. For BinaryColor the
// first operand is always a free-text *Var holding the colour name.
type Binary struct {
	Kind   BinaryKind
	First  SimpleExpr
	Second SimpleExpr
	Loc    Span
}

func (b *Binary) Span() Span                   { return b.Loc }
func (b *Binary) Accept(v Visitor) interface{} { return v.VisitBinary(b) }
func (b *Binary) simpleExpr()                  {}

func (b *Binary) String() string {
	return fmt.Sprintf("Binary(%s, %s, %s)", b.Kind, b.First, b.Second)
}

// Interm keeps an implicit-fraction operand together with its own scripts.
type Interm struct {
	Expr *Expression
}

func (i *Interm) Span() Span                   { return i.Expr.Span() }
func (i *Interm) Accept(v Visitor) interface{} { return v.VisitInterm(i) }
func (i *Interm) simpleExpr()                  {}

func (i *Interm) String() string {
	return fmt.Sprintf("Interm(%s)", i.Expr)
}

// Expression is a simple expression with optional subscript and
// superscript.
type Expression struct {
	Base SimpleExpr
	Sub  SimpleExpr
	Sup  SimpleExpr
}

// Span runs from the base to the superscript if present, else the
// subscript, else the base.
func (e *Expression) Span() Span {
	sp := e.Base.Span()
	switch {
	case e.Sup != nil:
		sp.End = e.Sup.Span().End
	case e.Sub != nil:
		sp.End = e.Sub.Span().End
	}
	return sp
}

func (e *Expression) Accept(v Visitor) interface{} { return v.VisitExpression(e) }

func (e *Expression) String() string {
	if e.Sub == nil && e.Sup == nil {
		return fmt.Sprintf("Expression(%s)", e.Base)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Expression(%s", e.Base)
	if e.Sub != nil {
		fmt.Fprintf(&b, ", sub: %s", e.Sub)
	}
	if e.Sup != nil {
		fmt.Fprintf(&b, ", sup: %s", e.Sup)
	}
	b.WriteString(")")
	return b.String()
}
