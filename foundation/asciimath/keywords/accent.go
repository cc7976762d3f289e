package keywords

// Accent enumerates the accents and over/under constructs table.
type Accent uint8

const (
	AccentHat Accent = iota
	AccentOverline
	AccentUnderline
	AccentVector
	AccentTilde
	AccentDot
	AccentDoubleDot
	AccentOverset
	AccentUnderset
	AccentUnderbrace
	AccentOverbrace
	AccentColor
	AccentCancel
)

// Accents holds the accents and over/under constructs.
var Accents = newTable(CategoryAccent,
	Spelling[Accent]{AccentHat, "Hat", []string{"hat"}},
	Spelling[Accent]{AccentOverline, "Overline", []string{"bar", "overline"}},
	Spelling[Accent]{AccentUnderline, "Underline", []string{"ul", "underline"}},
	Spelling[Accent]{AccentVector, "Vector", []string{"vec"}},
	Spelling[Accent]{AccentTilde, "Tilde", []string{"tilde"}},
	Spelling[Accent]{AccentDot, "Dot", []string{"dot"}},
	Spelling[Accent]{AccentDoubleDot, "DoubleDot", []string{"ddot"}},
	Spelling[Accent]{AccentOverset, "Overset", []string{"overset"}},
	Spelling[Accent]{AccentUnderset, "Underset", []string{"underset"}},
	Spelling[Accent]{AccentUnderbrace, "Underbrace", []string{"ubrace", "underbrace"}},
	Spelling[Accent]{AccentOverbrace, "Overbrace", []string{"obrace", "overbrace"}},
	Spelling[Accent]{AccentColor, "Color", []string{"color"}},
	Spelling[Accent]{AccentCancel, "Cancel", []string{"cancel"}},
)

func (k Accent) String() string { return Accents.Name(k) }
