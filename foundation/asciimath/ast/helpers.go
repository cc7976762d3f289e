package ast

import (
	"github.com/mathemascii/mathemascii/foundation/asciimath/keywords"
)

// IsComma reports whether e is an unscripted comma.
func (e *Expression) IsComma() bool {
	return e.isOther(keywords.OtherComma)
}

// IsVerticalBar reports whether e is an unscripted "|".
func (e *Expression) IsVerticalBar() bool {
	return e.isOther(keywords.OtherVerticalBar)
}

func (e *Expression) isOther(k keywords.Other) bool {
	if e.IsScripted() {
		return false
	}
	v, ok := e.Base.(*Var)
	return ok && v.Kind == VarOther && v.Token.IsOther(k)
}

// IsScripted reports whether e has a subscript or a superscript.
func (e *Expression) IsScripted() bool {
	return e.Sub != nil || e.Sup != nil
}

// GroupByCommas splits exprs at every comma. Empty runs between adjacent
// commas are kept, so n commas always give n+1 runs; an empty list gives
// none.
func GroupByCommas(exprs []*Expression) [][]*Expression {
	if len(exprs) == 0 {
		return nil
	}
	runs := make([][]*Expression, 0, 4)
	start := 0
	for i, e := range exprs {
		if e.IsComma() {
			runs = append(runs, exprs[start:i])
			start = i + 1
		}
	}
	return append(runs, exprs[start:])
}

// Len returns the number of comma-separated runs in the grouping.
func (g *Grouping) Len() int {
	return len(GroupByCommas(g.Exprs))
}

// Commas returns the number of top-level commas.
func (g *Grouping) Commas() int {
	n := 0
	for _, e := range g.Exprs {
		if e.IsComma() {
			n++
		}
	}
	return n
}

// IsIgnored reports whether both delimiters are invisible.
func (g *Grouping) IsIgnored() bool {
	return g.Open == keywords.GroupOpenIgnored && g.Close == keywords.GroupCloseIgnored
}

// IgnoredParentheses returns a copy of g with invisible delimiters.
func (g *Grouping) IgnoredParentheses() *Grouping {
	return &Grouping{
		Open:  keywords.GroupOpenIgnored,
		Close: keywords.GroupCloseIgnored,
		Exprs: g.Exprs,
		Loc:   g.Loc,
	}
}

// Rows returns the row groupings of a matrix-shaped grouping.
func (g *Grouping) Rows() []*Grouping {
	var rows []*Grouping
	for _, e := range g.Exprs {
		if e.IsComma() {
			continue
		}
		if row, ok := e.Base.(*Grouping); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Matrix returns the grouping base of e if it is laid out as a matrix: at
// least two comma-separated rows, each a grouping, where every row holds
// as many comma-separated cells as the first one.
func (e *Expression) Matrix() (*Grouping, bool) {
	g, ok := e.Base.(*Grouping)
	if !ok {
		return nil, false
	}

	rows, width := 0, 0
	for _, child := range g.Exprs {
		if child.IsComma() {
			continue
		}
		row, ok := child.Base.(*Grouping)
		if !ok {
			return nil, false
		}
		rows++
		if width == 0 {
			width = row.Len()
			continue
		}
		if row.Commas()+1 != width {
			return nil, false
		}
	}

	if width == 0 || rows < 2 || g.Commas() != rows-1 {
		return nil, false
	}
	return g, true
}

// IsMatrix reports whether e renders as a matrix.
func (e *Expression) IsMatrix() bool {
	_, ok := e.Matrix()
	return ok
}

// IsUnderOver reports whether the scripts of s are placed under and over
// it instead of beside it.
func IsUnderOver(s SimpleExpr) bool {
	switch n := s.(type) {
	case *Var:
		if op, ok := n.Token.Operator(); ok {
			switch op {
			case keywords.OpSum, keywords.OpProd, keywords.OpBigCap,
				keywords.OpBigCup, keywords.OpBigWedge, keywords.OpBigVee:
				return true
			}
		}
		if fn, ok := n.Token.Function(); ok {
			return fn == keywords.FuncLim || fn == keywords.FuncBigLim
		}
	case *Unary:
		return n.Kind == UnaryUnderbrace || n.Kind == UnaryOverbrace
	}
	return false
}
