package keywords

// Grouping enumerates brackets, fences and the bracket-like prefixes.
type Grouping uint8

const (
	GroupOpenParen Grouping = iota
	GroupCloseParen
	GroupOpenBracket
	GroupCloseBracket
	GroupOpenBrace
	GroupCloseBrace
	GroupLeftAngled
	GroupRightAngled
	GroupOpenIgnored
	GroupCloseIgnored
	GroupAbsolute
	GroupFloor
	GroupCeiling
	GroupNorm
)

// Groupings holds the grouping symbols.
var Groupings = newTable(CategoryGrouping,
	Spelling[Grouping]{GroupOpenParen, "OpenParen", []string{"("}},
	Spelling[Grouping]{GroupCloseParen, "CloseParen", []string{")"}},
	Spelling[Grouping]{GroupOpenBracket, "OpenBracket", []string{"["}},
	Spelling[Grouping]{GroupCloseBracket, "CloseBracket", []string{"]"}},
	Spelling[Grouping]{GroupOpenBrace, "OpenBrace", []string{"{"}},
	Spelling[Grouping]{GroupCloseBrace, "CloseBrace", []string{"}"}},
	Spelling[Grouping]{GroupLeftAngled, "LeftAngled", []string{"(:", "langle", "<<"}},
	Spelling[Grouping]{GroupRightAngled, "RightAngled", []string{":)", "rangle", ">>"}},
	Spelling[Grouping]{GroupOpenIgnored, "OpenIgnored", []string{"{:"}},
	Spelling[Grouping]{GroupCloseIgnored, "CloseIgnored", []string{":}"}},
	Spelling[Grouping]{GroupAbsolute, "Absolute", []string{"abs"}},
	Spelling[Grouping]{GroupFloor, "Floor", []string{"floor"}},
	Spelling[Grouping]{GroupCeiling, "Ceiling", []string{"ceil"}},
	Spelling[Grouping]{GroupNorm, "Norm", []string{"norm"}},
)

func (k Grouping) String() string { return Groupings.Name(k) }

// IsIgnored reports whether the symbol is an invisible delimiter.
func (k Grouping) IsIgnored() bool {
	return k == GroupOpenIgnored || k == GroupCloseIgnored
}

// IsPrefix reports whether the symbol acts as a unary prefix (abs, floor,
// ceil, norm) instead of a delimiter.
func (k Grouping) IsPrefix() bool {
	switch k {
	case GroupAbsolute, GroupFloor, GroupCeiling, GroupNorm:
		return true
	}
	return false
}

// IsOpening reports whether the symbol is a left delimiter.
func (k Grouping) IsOpening() bool {
	switch k {
	case GroupOpenParen, GroupOpenBracket, GroupOpenBrace, GroupLeftAngled, GroupOpenIgnored:
		return true
	}
	return false
}

// Closes reports whether other may terminate a grouping opened by k.
// The relation is symmetric: a closer used as an opener pairs with its
// own opener.
func (k Grouping) Closes(other Grouping) bool {
	switch k {
	case GroupOpenParen:
		return other == GroupCloseParen || other == GroupCloseIgnored
	case GroupOpenBracket:
		return other == GroupCloseBracket || other == GroupCloseIgnored
	case GroupOpenBrace:
		return other == GroupCloseBrace || other == GroupCloseIgnored
	case GroupLeftAngled:
		return other == GroupRightAngled || other == GroupCloseIgnored
	case GroupCloseParen:
		return other == GroupOpenParen || other == GroupOpenIgnored
	case GroupCloseBracket:
		return other == GroupOpenBracket || other == GroupOpenIgnored
	case GroupCloseBrace:
		return other == GroupOpenBrace || other == GroupOpenIgnored
	case GroupRightAngled:
		return other == GroupLeftAngled || other == GroupOpenIgnored
	case GroupOpenIgnored:
		switch other {
		case GroupCloseParen, GroupCloseBracket, GroupCloseBrace, GroupRightAngled, GroupCloseIgnored:
			return true
		}
	case GroupCloseIgnored:
		switch other {
		case GroupOpenParen, GroupOpenBracket, GroupOpenBrace, GroupLeftAngled, GroupOpenIgnored:
			return true
		}
	case GroupAbsolute, GroupFloor, GroupCeiling, GroupNorm:
		return other == k
	}
	return false
}
