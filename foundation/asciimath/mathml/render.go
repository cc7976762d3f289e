// File: render.go
// Title: Expression Tree to MathML
// Description: Converts parsed expressions to presentation MathML. Handles
//              leaves, fenced groupings, scripts (beside or under/over the
//              base), unary and binary forms, colour and font styling and
//              matrices with column separators.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-10
//
// Change History:
// - 2026-10-06 v0.1.0: Initial renderer
// - 2026-10-08 v0.1.0: Matrix column lines
// - 2026-10-10 v0.1.0: Display modes and indented output

package mathml

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mathemascii/mathemascii/foundation/asciimath/ast"
	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
	"github.com/mathemascii/mathemascii/foundation/asciimath/parser"
)

// Namespace is the MathML XML namespace.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// Display selects inline or block layout of the math element.
type Display int

const (
	DisplayInline Display = iota
	DisplayBlock
)

func (d Display) String() string {
	if d == DisplayBlock {
		return "block"
	}
	return "inline"
}

// ParseDisplay parses "inline" or "block".
func ParseDisplay(s string) (Display, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inline", "":
		return DisplayInline, true
	case "block":
		return DisplayBlock, true
	}
	return DisplayInline, false
}

// Options controls rendering.
type Options struct {
	Display Display
	Indent  string // empty for compact output
}

// Renderer converts expression trees to MathML. The zero value renders
// compact inline math.
type Renderer struct {
	opts Options
}

// New creates a renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Math wraps the rendered expressions in a math element.
func (r *Renderer) Math(exprs []*ast.Expression) *Element {
	math := El("math").With("xmlns", Namespace).With("display", r.opts.Display.String())
	for _, e := range exprs {
		math.Append(r.Expression(e)...)
	}
	return math
}

// Render serializes the expressions as a math element.
func (r *Renderer) Render(exprs []*ast.Expression) string {
	m := r.Math(exprs)
	if r.opts.Indent != "" {
		return m.Indent(r.opts.Indent)
	}
	return m.String()
}

// Render parses input and renders it with default options.
func Render(input string) string {
	return New(Options{}).Render(parser.Parse(input))
}

// Expression renders one expression. Groupings contribute their fences and
// children side by side, so the result may hold several elements.
func (r *Renderer) Expression(e *ast.Expression) []*Element {
	if g, ok := e.Matrix(); ok {
		return []*Element{r.matrix(g)}
	}

	base := r.simple(e.Base)
	if e.Sub == nil && e.Sup == nil {
		return base
	}

	b := row(base)
	var sub, sup *Element
	if e.Sub != nil {
		sub = row(r.script(e.Sub))
	}
	if e.Sup != nil {
		sup = row(r.script(e.Sup))
	}

	if ast.IsUnderOver(e.Base) {
		switch {
		case sub != nil && sup != nil:
			return []*Element{El("munderover", b, sub, sup)}
		case sub != nil:
			return []*Element{El("munder", b, sub)}
		default:
			return []*Element{El("mover", b, sup)}
		}
	}

	switch {
	case sub != nil && sup != nil:
		return []*Element{El("msubsup", b, sub, sup)}
	case sub != nil:
		return []*Element{El("msub", b, sub)}
	default:
		return []*Element{El("msup", b, sup)}
	}
}

// script renders a script operand, dropping the fences of a grouping.
func (r *Renderer) script(s ast.SimpleExpr) []*Element {
	if g, ok := s.(*ast.Grouping); ok {
		return r.inner(g)
	}
	return r.simple(s)
}

func (r *Renderer) simple(s ast.SimpleExpr) []*Element {
	switch n := s.(type) {
	case *ast.Var:
		return []*Element{r.leaf(n)}
	case *ast.Grouping:
		out := make([]*Element, 0, len(n.Exprs)+2)
		if f := fence(n.Open); f != nil {
			out = append(out, f)
		}
		out = append(out, r.inner(n)...)
		if f := fence(n.Close); f != nil {
			out = append(out, f)
		}
		return out
	case *ast.Unary:
		return []*Element{r.unary(n)}
	case *ast.Binary:
		return []*Element{r.binary(n)}
	case *ast.Interm:
		return r.Expression(n.Expr)
	}
	return nil
}

func (r *Renderer) inner(g *ast.Grouping) []*Element {
	var out []*Element
	for _, e := range g.Exprs {
		out = append(out, r.Expression(e)...)
	}
	return out
}

// operand renders the operand of a prefix form without its fences.
func (r *Renderer) operand(s ast.SimpleExpr) *Element {
	return row(r.script(s))
}

func fence(g keywords.Grouping) *Element {
	glyph, ok := groupingGlyphs[g]
	if !ok {
		return nil
	}
	return Leaf("mo", glyph)
}

func row(elems []*Element) *Element {
	if len(elems) == 1 {
		return elems[0]
	}
	return El("mrow", elems...)
}

func (r *Renderer) leaf(v *ast.Var) *Element {
	tok := v.Token
	switch v.Kind {
	case ast.VarNumber:
		return Leaf("mn", tok.Text)
	case ast.VarIdent:
		return Leaf("mi", tok.Text)
	case ast.VarText:
		return Leaf("mtext", tok.Text)
	case ast.VarGreek:
		g, _ := tok.Greek()
		return ident(greekGlyphs[g])
	case ast.VarFunction:
		f, _ := tok.Function()
		return Leaf("mi", keywords.Functions.Canonical(f))
	case ast.VarOperator:
		op, _ := tok.Operator()
		return Leaf("mo", operatorGlyphs[op])
	case ast.VarRelation:
		rel, _ := tok.Relation()
		return Leaf("mo", relationGlyphs[rel])
	case ast.VarArrow:
		a, _ := tok.Arrow()
		return Leaf("mo", arrowGlyphs[a])
	case ast.VarLogical:
		l, _ := tok.Logical()
		glyph := logicalGlyphs[l]
		if isWord(glyph) {
			return El("mrow",
				El("mspace").With("width", "1ex"),
				Leaf("mtext", glyph),
				El("mspace").With("width", "1ex"))
		}
		return Leaf("mo", glyph)
	case ast.VarOther:
		o, _ := tok.Other()
		if width, ok := spaceWidths[o]; ok {
			return El("mspace").With("width", width)
		}
		switch o {
		case keywords.OtherComplex, keywords.OtherNatural, keywords.OtherRational,
			keywords.OtherIrrational, keywords.OtherInteger:
			return ident(otherGlyphs[o])
		}
		if glyph, ok := otherGlyphs[o]; ok {
			return Leaf("mo", glyph)
		}
		return Leaf("mo", tok.Text)
	}
	return El("mrow")
}

// ident renders a single identifier glyph, upright when it is an
// uppercase letter.
func ident(glyph string) *Element {
	mi := Leaf("mi", glyph)
	if r, _ := utf8.DecodeRuneInString(glyph); unicode.IsUpper(r) {
		mi.With("mathvariant", "normal")
	}
	return mi
}

func isWord(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}

var fencedUnary = map[ast.UnaryKind][2]string{
	ast.UnaryAbs:   {"|", "|"},
	ast.UnaryFloor: {"⌊", "⌋"},
	ast.UnaryCeil:  {"⌈", "⌉"},
	ast.UnaryNorm:  {"‖", "‖"},
}

var accentOver = map[ast.UnaryKind]string{
	ast.UnaryHat:       "^",
	ast.UnaryOverline:  "¯",
	ast.UnaryVector:    "→",
	ast.UnaryTilde:     "~",
	ast.UnaryDot:       ".",
	ast.UnaryDoubleDot: "..",
	ast.UnaryOverbrace: "⏞",
}

var accentUnder = map[ast.UnaryKind]string{
	ast.UnaryUnderline:  "_",
	ast.UnaryUnderbrace: "⏟",
}

var fontVariants = map[ast.UnaryKind]string{
	ast.UnaryBold:           "bold",
	ast.UnaryBlackboardBold: "double-struck",
	ast.UnaryCalligraphic:   "script",
	ast.UnaryTypewriter:     "monospace",
	ast.UnaryGothic:         "fraktur",
	ast.UnarySansSerif:      "sans-serif",
}

func (r *Renderer) unary(u *ast.Unary) *Element {
	body := r.operand(u.Operand)

	if u.Kind == ast.UnarySqrt {
		return El("msqrt", body)
	}
	if f, ok := fencedUnary[u.Kind]; ok {
		return El("mrow", Leaf("mo", f[0]), body, Leaf("mo", f[1]))
	}
	if glyph, ok := accentOver[u.Kind]; ok {
		return El("mover", body, Leaf("mo", glyph)).With("accent", "true")
	}
	if glyph, ok := accentUnder[u.Kind]; ok {
		return El("munder", body, Leaf("mo", glyph)).With("accentunder", "true")
	}
	if u.Kind == ast.UnaryCancel {
		return El("menclose", body).With("notation", "updiagonalstrike")
	}
	if variant, ok := fontVariants[u.Kind]; ok {
		return El("mstyle", body).With("mathvariant", variant)
	}
	return body
}

func (r *Renderer) binary(b *ast.Binary) *Element {
	switch b.Kind {
	case ast.BinaryFraction:
		return El("mfrac", r.operand(b.First), r.operand(b.Second))
	case ast.BinaryRoot:
		return El("mroot", r.operand(b.Second), r.operand(b.First))
	case ast.BinaryOverset:
		return El("mover", r.operand(b.Second), r.operand(b.First))
	case ast.BinaryUnderset:
		return El("munder", r.operand(b.Second), r.operand(b.First))
	case ast.BinaryColor:
		style := El("mstyle", r.operand(b.Second))
		if v, ok := b.First.(*ast.Var); ok && v.Kind == ast.VarText {
			style.With("mathcolor", strings.TrimSpace(v.Text()))
		}
		return style
	}
	return El("mrow")
}

// matrix renders a matrix-shaped grouping as a fenced table. Rows mark
// column separators with lone "|" cells. A boundary gets a solid line
// when a "|" cell sits on it; the line after the last column is only
// kept when every row ends in a "|".
func (r *Renderer) matrix(g *ast.Grouping) *Element {
	rows := g.Rows()

	lines := make([]string, rows[0].Len())
	for i := range lines {
		lines[i] = "solid"
	}

	table := El("mtable")
	maxLen := 0
	lastWasLine := true

	for _, rg := range rows {
		tr := El("mtr")
		inserted, prevLine := 0, false

		n := len(rg.Exprs)
		lastWasLine = lastWasLine && n > 0 && rg.Exprs[n-1].IsVerticalBar()

		for curr, cell := range ast.GroupByCommas(rg.Exprs) {
			isLine := len(cell) == 1 && cell[0].IsVerticalBar()

			if inserted != curr && !isLine {
				if !prevLine && inserted < len(lines) {
					lines[inserted] = "none"
				}
				prevLine = false
			} else if isLine {
				if inserted != curr {
					prevLine = true
				}
				continue
			}

			td := El("mtd")
			for _, e := range cell {
				td.Append(r.Expression(e)...)
			}
			if len(td.Children) > 1 {
				td = El("mtd", El("mrow", td.Children...))
			}
			tr.Append(td)
			inserted = len(tr.Children) - 1
		}

		maxLen = max(maxLen, len(tr.Children))
		table.Append(tr)
	}

	if maxLen > 0 && len(lines) > 0 {
		if maxLen < len(lines) {
			lines = lines[:maxLen]
		}
		if !lastWasLine {
			lines[len(lines)-1] = "none"
		}
		table.With("columnlines", strings.Join(lines, " "))
	}

	return El("mrow", fence(g.Open), table, fence(g.Close))
}
