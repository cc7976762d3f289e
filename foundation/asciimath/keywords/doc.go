// File: doc.go
// Title: AsciiMath Keyword Tables Package Documentation
// Description: Static literal-to-kind tables for every AsciiMath symbol
//              category, consumed by the lexer's longest-match scan.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-02 v0.1.0: Initial keyword tables

/*
Package keywords defines the AsciiMath symbol tables.

Every category (Greek letters, arrows, functions, operators, relations,
logical symbols, groupings, miscellaneous symbols, accents and font
commands) is a Table mapping literal spellings to a small enum. A table
answers four questions for the lexer:

  - Get: which kind does this exact text denote?
  - MinLen / MaxLen: how long can a literal of this table be?
  - StartsWith: can any literal begin with this symbol?
  - PrefixOf: is this kind's spelling a strict prefix of a longer literal,
    and how long is the longest such literal?

The prefix map is derived from the literal set when the table is first
used, so adding a spelling never requires updating a hand-kept exception
list. Tables are immutable after construction and safe for concurrent use.
*/
package keywords
