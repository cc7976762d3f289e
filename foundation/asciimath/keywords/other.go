package keywords

// Other enumerates the miscellaneous symbols: separators, script markers,
// calculus and set symbols, dots, spacing and the free-text markers.
type Other uint8

const (
	OtherComma Other = iota
	OtherFraction
	OtherForwardSlash
	OtherPower
	OtherSubscript
	OtherSquareRoot
	OtherRoot
	OtherIntegral
	OtherOIntegral
	OtherPartial
	OtherNabla
	OtherPlusMinus
	OtherEmptySet
	OtherInfinity
	OtherAleph
	OtherTherefore
	OtherBecause
	OtherLowDots
	OtherCenterDots
	OtherVerticalDots
	OtherDiagonalDots
	OtherVerticalBar
	OtherVerticalBars
	OtherVerticalBarsWide
	OtherAngle
	OtherFrown
	OtherTriangle
	OtherDiamond
	OtherSquare
	OtherLeftFloor
	OtherRightFloor
	OtherLeftCeiling
	OtherRightCeiling
	OtherComplex
	OtherNatural
	OtherRational
	OtherIrrational
	OtherInteger
	OtherPrime
	OtherQuad
	OtherQQuad
	OtherText
	OtherQuote
)

// Others holds the miscellaneous symbols.
var Others = newTable(CategoryOther,
	Spelling[Other]{OtherComma, "Comma", []string{","}},
	Spelling[Other]{OtherFraction, "Fraction", []string{"frac"}},
	Spelling[Other]{OtherForwardSlash, "ForwardSlash", []string{"/"}},
	Spelling[Other]{OtherPower, "Power", []string{"^"}},
	Spelling[Other]{OtherSubscript, "Subscript", []string{"_"}},
	Spelling[Other]{OtherSquareRoot, "SquareRoot", []string{"sqrt"}},
	Spelling[Other]{OtherRoot, "Root", []string{"root"}},
	Spelling[Other]{OtherIntegral, "Integral", []string{"int"}},
	Spelling[Other]{OtherOIntegral, "OIntegral", []string{"oint"}},
	Spelling[Other]{OtherPartial, "Partial", []string{"del", "partial"}},
	Spelling[Other]{OtherNabla, "Nabla", []string{"grad", "nabla"}},
	Spelling[Other]{OtherPlusMinus, "PlusMinus", []string{"+-", "pm"}},
	Spelling[Other]{OtherEmptySet, "EmptySet", []string{"O/", "emptyset"}},
	Spelling[Other]{OtherInfinity, "Infinity", []string{"oo", "infty"}},
	Spelling[Other]{OtherAleph, "Aleph", []string{"aleph"}},
	Spelling[Other]{OtherTherefore, "Therefore", []string{":.", "therefore"}},
	Spelling[Other]{OtherBecause, "Because", []string{":'", "because"}},
	Spelling[Other]{OtherLowDots, "LowDots", []string{"...", "ldots"}},
	Spelling[Other]{OtherCenterDots, "CenterDots", []string{"cdots"}},
	Spelling[Other]{OtherVerticalDots, "VerticalDots", []string{"vdots"}},
	Spelling[Other]{OtherDiagonalDots, "DiagonalDots", []string{"ddots"}},
	Spelling[Other]{OtherVerticalBar, "VerticalBar", []string{"|"}},
	Spelling[Other]{OtherVerticalBars, "VerticalBars", []string{`|\|`}},
	Spelling[Other]{OtherVerticalBarsWide, "VerticalBarsWide", []string{"|quad|"}},
	Spelling[Other]{OtherAngle, "Angle", []string{"/_"}},
	Spelling[Other]{OtherFrown, "Frown", []string{"frown"}},
	Spelling[Other]{OtherTriangle, "Triangle", []string{`/_\`, "triangle"}},
	Spelling[Other]{OtherDiamond, "Diamond", []string{"diamond"}},
	Spelling[Other]{OtherSquare, "Square", []string{"square"}},
	Spelling[Other]{OtherLeftFloor, "LeftFloor", []string{"|__", "lfloor"}},
	Spelling[Other]{OtherRightFloor, "RightFloor", []string{"__|", "rfloor"}},
	Spelling[Other]{OtherLeftCeiling, "LeftCeiling", []string{"|~", "lceiling"}},
	Spelling[Other]{OtherRightCeiling, "RightCeiling", []string{"~|", "rceiling"}},
	Spelling[Other]{OtherComplex, "Complex", []string{"CC"}},
	Spelling[Other]{OtherNatural, "Natural", []string{"NN"}},
	Spelling[Other]{OtherRational, "Rational", []string{"QQ"}},
	Spelling[Other]{OtherIrrational, "Irrational", []string{"RR"}},
	Spelling[Other]{OtherInteger, "Integer", []string{"ZZ"}},
	Spelling[Other]{OtherPrime, "Prime", []string{"'"}},
	Spelling[Other]{OtherQuad, "Quad", []string{"quad"}},
	Spelling[Other]{OtherQQuad, "QQuad", []string{"qquad"}},
	Spelling[Other]{OtherText, "Text", []string{"text"}},
	Spelling[Other]{OtherQuote, "Quote", []string{`"`}},
)

func (k Other) String() string { return Others.Name(k) }

// IsFreeText reports whether the symbol opens a free-text literal.
func (k Other) IsFreeText() bool {
	return k == OtherText || k == OtherQuote
}
