package keywords

// FontCommand enumerates the font style commands table.
type FontCommand uint8

const (
	FontBold FontCommand = iota
	FontBlackboardBold
	FontCalligraphic
	FontTypewriter
	FontGothic
	FontSansSerif
)

// FontCommands holds the font style commands.
var FontCommands = newTable(CategoryFontCommand,
	Spelling[FontCommand]{FontBold, "Bold", []string{"bb", "mathbf"}},
	Spelling[FontCommand]{FontBlackboardBold, "BlackboardBold", []string{"bbb", "mathbb"}},
	Spelling[FontCommand]{FontCalligraphic, "Calligraphic", []string{"cc", "mathcal"}},
	Spelling[FontCommand]{FontTypewriter, "Typewriter", []string{"tt", "mathtt"}},
	Spelling[FontCommand]{FontGothic, "Gothic", []string{"fr", "mathfrak"}},
	Spelling[FontCommand]{FontSansSerif, "SansSerif", []string{"sf", "mathsf"}},
)

func (k FontCommand) String() string { return FontCommands.Name(k) }
