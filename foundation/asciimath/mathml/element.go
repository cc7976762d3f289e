// File: element.go
// Title: MathML Element Tree
// Description: Minimal presentation-MathML element tree with compact and
//              indented XML serialization.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial element tree

package mathml

import (
	"encoding/xml"
	"strings"
)

// Attr is one XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a MathML node. Leaves carry Text, containers carry Children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// El creates a container element. Nil children are skipped.
func El(tag string, children ...*Element) *Element {
	e := &Element{Tag: tag}
	e.Append(children...)
	return e
}

// Leaf creates a text element.
func Leaf(tag, text string) *Element {
	return &Element{Tag: tag, Text: text}
}

// With adds an attribute and returns e.
func (e *Element) With(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds the non-nil children.
func (e *Element) Append(children ...*Element) {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
}

// Find returns every element with the given tag in document order.
func (e *Element) Find(tag string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		if n.Tag == tag {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(e)
	return out
}

// String serializes e without whitespace.
func (e *Element) String() string {
	var b strings.Builder
	e.write(&b, "", 0)
	return b.String()
}

// Indent serializes e with one element per line.
func (e *Element) Indent(indent string) string {
	var b strings.Builder
	e.write(&b, indent, 0)
	return b.String()
}

func (e *Element) write(b *strings.Builder, indent string, depth int) {
	pretty := indent != ""
	if pretty {
		if depth > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indent, depth))
	}

	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		escape(b, a.Value)
		b.WriteByte('"')
	}

	if e.Text == "" && len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')

	escape(b, e.Text)
	for _, c := range e.Children {
		c.write(b, indent, depth+1)
	}

	if pretty && len(e.Children) > 0 {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indent, depth))
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

func escape(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	// strings.Builder never fails to write
	_ = xml.EscapeText(b, []byte(s))
}
