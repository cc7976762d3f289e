// File: visitor.go
// Title: Expression Tree Visitors
// Description: Visitor pattern over the expression tree with the common
//              implementations: indented dump, serializable description
//              for JSON/YAML output and a span consistency checker.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-04 v0.1.0: Initial visitor implementation
// - 2026-10-09 v0.1.0: Describe visitor for tree output formats

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing tree nodes using the visitor pattern
type Visitor interface {
	VisitExpression(e *Expression) interface{}
	VisitVar(v *Var) interface{}
	VisitGrouping(g *Grouping) interface{}
	VisitUnary(u *Unary) interface{}
	VisitBinary(b *Binary) interface{}
	VisitInterm(i *Interm) interface{}
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Expression:
		out := []Node{n.Base}
		if n.Sub != nil {
			out = append(out, n.Sub)
		}
		if n.Sup != nil {
			out = append(out, n.Sup)
		}
		return out
	case *Grouping:
		out := make([]Node, len(n.Exprs))
		for i, e := range n.Exprs {
			out[i] = e
		}
		return out
	case *Unary:
		return []Node{n.Operand}
	case *Binary:
		return []Node{n.First, n.Second}
	case *Interm:
		return []Node{n.Expr}
	}
	return nil
}

// Inspect traverses the tree depth-first, calling f for every node. The
// children of a node are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// DumpVisitor renders a tree as indented text, one node per line
type DumpVisitor struct {
	buf    strings.Builder
	indent int
}

func NewDumpVisitor() *DumpVisitor {
	return &DumpVisitor{}
}

// String returns the accumulated dump
func (dv *DumpVisitor) String() string {
	return dv.buf.String()
}

func (dv *DumpVisitor) Reset() {
	dv.buf.Reset()
	dv.indent = 0
}

func (dv *DumpVisitor) line(format string, args ...interface{}) {
	dv.buf.WriteString(strings.Repeat("  ", dv.indent))
	fmt.Fprintf(&dv.buf, format, args...)
	dv.buf.WriteByte('\n')
}

func (dv *DumpVisitor) nested(label string, n Node) {
	dv.indent++
	if label != "" {
		dv.line("%s:", label)
		dv.indent++
	}
	n.Accept(dv)
	if label != "" {
		dv.indent--
	}
	dv.indent--
}

func (dv *DumpVisitor) VisitExpression(e *Expression) interface{} {
	dv.line("Expression %s", e.Span())
	dv.nested("", e.Base)
	if e.Sub != nil {
		dv.nested("sub", e.Sub)
	}
	if e.Sup != nil {
		dv.nested("sup", e.Sup)
	}
	return nil
}

func (dv *DumpVisitor) VisitVar(v *Var) interface{} {
	dv.line("%s %s", v, v.Span())
	return nil
}

func (dv *DumpVisitor) VisitGrouping(g *Grouping) interface{} {
	dv.line("Grouping %s %s %s", g.Open, g.Close, g.Span())
	for _, e := range g.Exprs {
		dv.nested("", e)
	}
	return nil
}

func (dv *DumpVisitor) VisitUnary(u *Unary) interface{} {
	dv.line("Unary %s %s", u.Kind, u.Span())
	dv.nested("", u.Operand)
	return nil
}

func (dv *DumpVisitor) VisitBinary(b *Binary) interface{} {
	dv.line("Binary %s %s", b.Kind, b.Span())
	dv.nested("", b.First)
	dv.nested("", b.Second)
	return nil
}

func (dv *DumpVisitor) VisitInterm(i *Interm) interface{} {
	dv.line("Interm %s", i.Span())
	dv.nested("", i.Expr)
	return nil
}

// Description is a format-neutral view of a node for JSON and YAML output.
type Description struct {
	Type     string         `json:"type" yaml:"type"`
	Kind     string         `json:"kind,omitempty" yaml:"kind,omitempty"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Span     Span           `json:"span" yaml:"span"`
	Open     string         `json:"open,omitempty" yaml:"open,omitempty"`
	Close    string         `json:"close,omitempty" yaml:"close,omitempty"`
	Matrix   bool           `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Children []*Description `json:"children,omitempty" yaml:"children,omitempty"`
	Sub      *Description   `json:"sub,omitempty" yaml:"sub,omitempty"`
	Sup      *Description   `json:"sup,omitempty" yaml:"sup,omitempty"`
}

// DescribeVisitor builds a *Description for every node it visits.
type DescribeVisitor struct{}

func (dv DescribeVisitor) describe(n Node) *Description {
	if n == nil {
		return nil
	}
	return n.Accept(dv).(*Description)
}

func (dv DescribeVisitor) VisitExpression(e *Expression) interface{} {
	return &Description{
		Type:     "expression",
		Span:     e.Span(),
		Matrix:   e.IsMatrix(),
		Children: []*Description{dv.describe(e.Base)},
		Sub:      dv.describe(e.Sub),
		Sup:      dv.describe(e.Sup),
	}
}

func (dv DescribeVisitor) VisitVar(v *Var) interface{} {
	d := &Description{Type: "var", Kind: v.Kind.String(), Text: v.Text(), Span: v.Span()}
	if name := v.Token.Name(); name != "" && v.Kind != VarText {
		d.Kind += "." + name
	}
	return d
}

func (dv DescribeVisitor) VisitGrouping(g *Grouping) interface{} {
	d := &Description{
		Type:  "grouping",
		Span:  g.Span(),
		Open:  g.Open.String(),
		Close: g.Close.String(),
	}
	for _, e := range g.Exprs {
		d.Children = append(d.Children, dv.describe(e))
	}
	return d
}

func (dv DescribeVisitor) VisitUnary(u *Unary) interface{} {
	return &Description{
		Type:     "unary",
		Kind:     u.Kind.String(),
		Span:     u.Span(),
		Children: []*Description{dv.describe(u.Operand)},
	}
}

func (dv DescribeVisitor) VisitBinary(b *Binary) interface{} {
	return &Description{
		Type:     "binary",
		Kind:     b.Kind.String(),
		Span:     b.Span(),
		Children: []*Description{dv.describe(b.First), dv.describe(b.Second)},
	}
}

func (dv DescribeVisitor) VisitInterm(i *Interm) interface{} {
	return &Description{
		Type:     "interm",
		Span:     i.Span(),
		Children: []*Description{dv.describe(i.Expr)},
	}
}

// SpanChecker verifies that every span is well formed and that every
// child lies within its parent.
type SpanChecker struct {
	errors []error
}

func NewSpanChecker() *SpanChecker {
	return &SpanChecker{}
}

// Errors returns all span violations found
func (sc *SpanChecker) Errors() []error {
	return sc.errors
}

func (sc *SpanChecker) HasErrors() bool {
	return len(sc.errors) > 0
}

func (sc *SpanChecker) Reset() {
	sc.errors = nil
}

func (sc *SpanChecker) check(parent Node) {
	ps := parent.Span()
	if !ps.IsValid() {
		sc.errors = append(sc.errors, fmt.Errorf("%T has inverted span %s", parent, ps))
	}
	for _, c := range Children(parent) {
		if cs := c.Span(); !ps.Contains(cs) {
			sc.errors = append(sc.errors, fmt.Errorf("%T %s is outside its parent %T %s", c, cs, parent, ps))
		}
		c.Accept(sc)
	}
}

func (sc *SpanChecker) VisitExpression(e *Expression) interface{} { sc.check(e); return nil }
func (sc *SpanChecker) VisitVar(v *Var) interface{}               { sc.check(v); return nil }
func (sc *SpanChecker) VisitGrouping(g *Grouping) interface{}     { sc.check(g); return nil }
func (sc *SpanChecker) VisitUnary(u *Unary) interface{}           { sc.check(u); return nil }
func (sc *SpanChecker) VisitBinary(b *Binary) interface{}         { sc.check(b); return nil }
func (sc *SpanChecker) VisitInterm(i *Interm) interface{}         { sc.check(i); return nil }

// Utility functions for common visitor operations

// Dump returns the indented text form of a tree
func Dump(node Node) string {
	dv := NewDumpVisitor()
	node.Accept(dv)
	return dv.String()
}

// Describe returns the serializable form of a tree
func Describe(node Node) *Description {
	return DescribeVisitor{}.describe(node)
}

// CheckSpans validates the spans of a tree and returns all violations
func CheckSpans(node Node) []error {
	sc := NewSpanChecker()
	node.Accept(sc)
	return sc.Errors()
}
