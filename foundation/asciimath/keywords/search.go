// File: search.go
// Title: Keyword Search
// Description: Listing and fuzzy search over every keyword spelling, used
//              by the keywords command and the HTTP API.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial search

package keywords

import "github.com/sahilm/fuzzy"

// All returns every entry in lexer priority order.
func All() []Entry {
	var out []Entry
	for _, kw := range Ordered() {
		out = append(out, kw.Entries()...)
	}
	return out
}

// Match is an entry found by Search together with the literal that matched.
type Match struct {
	Entry   `yaml:",inline"`
	Literal string `json:"literal" yaml:"literal"`
	Score   int    `json:"score" yaml:"score"`
}

type literalSource []literalRef

type literalRef struct {
	entry   int
	literal string
}

func (s literalSource) String(i int) string { return s[i].literal }
func (s literalSource) Len() int            { return len(s) }

// Search fuzzy-matches term against every literal and returns one match
// per entry, best first. An empty term matches nothing.
func Search(term string) []Match {
	if term == "" {
		return nil
	}

	entries := All()
	var src literalSource
	for i, e := range entries {
		for _, lit := range e.Literals {
			src = append(src, literalRef{entry: i, literal: lit})
		}
	}

	seen := make(map[int]bool)
	var out []Match
	for _, m := range fuzzy.FindFrom(term, src) {
		ref := src[m.Index]
		if seen[ref.entry] {
			continue
		}
		seen[ref.entry] = true
		out = append(out, Match{Entry: entries[ref.entry], Literal: ref.literal, Score: m.Score})
	}
	return out
}
