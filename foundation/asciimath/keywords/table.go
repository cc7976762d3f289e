// File: table.go
// Title: Keyword Table
// Description: Generic literal-to-kind table with length bounds, a first
//              symbol filter and the prefix extension map used by the
//              longest-match lexer. Tables are built once on first use and
//              are read-only afterwards.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-02 v0.1.0: Initial table implementation
// - 2026-10-06 v0.1.0: Derive prefix extensions from the literal set

package keywords

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Category identifies one keyword table.
type Category uint8

const (
	CategoryGreek Category = iota
	CategoryArrow
	CategoryFunction
	CategoryOperator
	CategoryRelation
	CategoryLogical
	CategoryGrouping
	CategoryOther
	CategoryAccent
	CategoryFontCommand
)

var categoryNames = [...]string{
	CategoryGreek:       "greek",
	CategoryArrow:       "arrow",
	CategoryFunction:    "function",
	CategoryOperator:    "operator",
	CategoryRelation:    "relation",
	CategoryLogical:     "logical",
	CategoryGrouping:    "grouping",
	CategoryOther:       "other",
	CategoryAccent:      "accent",
	CategoryFontCommand: "font",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory resolves a category by name.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return Category(c), true
		}
	}
	return 0, false
}

// Kind is implemented by the per-category kind enums.
type Kind interface {
	~uint8
	String() string
}

// Spelling binds a kind to its name and every literal that denotes it.
// The first literal is the canonical spelling.
type Spelling[K Kind] struct {
	Kind     K
	Name     string
	Literals []string
}

// Table maps literal spellings of one category to kinds.
type Table[K Kind] struct {
	category  Category
	spellings []Spelling[K]

	once      sync.Once
	byText    map[string]K
	byKind    map[K]*Spelling[K]
	first     map[string]struct{}
	extension map[K]int
	minLen    int
	maxLen    int
}

func newTable[K Kind](category Category, spellings ...Spelling[K]) *Table[K] {
	return &Table[K]{category: category, spellings: spellings}
}

func (t *Table[K]) build() {
	t.byText = make(map[string]K)
	t.byKind = make(map[K]*Spelling[K], len(t.spellings))
	t.first = make(map[string]struct{})
	t.extension = make(map[K]int)
	t.minLen = -1

	for i := range t.spellings {
		sp := &t.spellings[i]
		t.byKind[sp.Kind] = sp
		for _, lit := range sp.Literals {
			n := utf8.RuneCountInString(lit)
			t.byText[lit] = sp.Kind
			_, size := utf8.DecodeRuneInString(lit)
			t.first[lit[:size]] = struct{}{}
			if t.minLen < 0 || n < t.minLen {
				t.minLen = n
			}
			t.maxLen = max(t.maxLen, n)
		}
	}

	// A kind is a prefix exception when one of its literals is a strict
	// prefix of any literal in the table; the exception records the
	// longest such literal.
	for i := range t.spellings {
		sp := &t.spellings[i]
		for _, short := range sp.Literals {
			for long := range t.byText {
				if len(long) > len(short) && strings.HasPrefix(long, short) {
					t.extension[sp.Kind] = max(t.extension[sp.Kind], utf8.RuneCountInString(long))
				}
			}
		}
	}
	if t.minLen < 0 {
		t.minLen = 0
	}
}

func (t *Table[K]) init() { t.once.Do(t.build) }

// Category returns the table's category.
func (t *Table[K]) Category() Category { return t.category }

// Get looks up an exact literal.
func (t *Table[K]) Get(text string) (K, bool) {
	t.init()
	k, ok := t.byText[text]
	return k, ok
}

// MinLen returns the length in symbols of the shortest literal.
func (t *Table[K]) MinLen() int {
	t.init()
	return t.minLen
}

// MaxLen returns the length in symbols of the longest literal.
func (t *Table[K]) MaxLen() int {
	t.init()
	return t.maxLen
}

// StartsWith reports whether any literal begins with symbol.
func (t *Table[K]) StartsWith(symbol string) bool {
	t.init()
	_, ok := t.first[symbol]
	return ok
}

// PrefixOf returns the length of the longest literal that strictly extends
// one of kind's spellings, if there is one.
func (t *Table[K]) PrefixOf(kind K) (int, bool) {
	t.init()
	n, ok := t.extension[kind]
	return n, ok
}

// Name returns the kind's name, or "" for kinds outside the table.
func (t *Table[K]) Name(kind K) string {
	t.init()
	if sp, ok := t.byKind[kind]; ok {
		return sp.Name
	}
	return ""
}

// Canonical returns the kind's first literal.
func (t *Table[K]) Canonical(kind K) string {
	t.init()
	if sp, ok := t.byKind[kind]; ok && len(sp.Literals) > 0 {
		return sp.Literals[0]
	}
	return ""
}

// Literals returns every spelling of kind.
func (t *Table[K]) Literals(kind K) []string {
	t.init()
	if sp, ok := t.byKind[kind]; ok {
		return append([]string(nil), sp.Literals...)
	}
	return nil
}

// Kinds returns the table's kinds in declaration order.
func (t *Table[K]) Kinds() []K {
	kinds := make([]K, 0, len(t.spellings))
	for _, sp := range t.spellings {
		kinds = append(kinds, sp.Kind)
	}
	return kinds
}

// Lookup is the untyped form of Get.
func (t *Table[K]) Lookup(text string) (uint8, bool) {
	k, ok := t.Get(text)
	return uint8(k), ok
}

// LongestExtension is the untyped form of PrefixOf.
func (t *Table[K]) LongestExtension(code uint8) (int, bool) {
	return t.PrefixOf(K(code))
}

// Entries lists every spelling of the table in declaration order.
func (t *Table[K]) Entries() []Entry {
	t.init()
	entries := make([]Entry, 0, len(t.spellings))
	for _, sp := range t.spellings {
		entries = append(entries, Entry{
			Category: t.category,
			Name:     sp.Name,
			Literals: append([]string(nil), sp.Literals...),
		})
	}
	return entries
}

// Keyword is the category-independent view of a table used by the lexer.
type Keyword interface {
	Category() Category
	MinLen() int
	MaxLen() int
	StartsWith(symbol string) bool
	Lookup(text string) (uint8, bool)
	LongestExtension(code uint8) (int, bool)
	Entries() []Entry
}

// Entry describes one kind for listings.
type Entry struct {
	Category Category `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
	Literals []string `json:"literals" yaml:"literals"`
}

// Ordered returns the tables in lexer priority order.
func Ordered() []Keyword {
	return []Keyword{
		Greeks,
		Arrows,
		Functions,
		Operators,
		Relations,
		Logicals,
		Groupings,
		Others,
		Accents,
		FontCommands,
	}
}

// ByCategory returns the table for c.
func ByCategory(c Category) (Keyword, bool) {
	for _, kw := range Ordered() {
		if kw.Category() == c {
			return kw, true
		}
	}
	return nil, false
}
