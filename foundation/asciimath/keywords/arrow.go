package keywords

// Arrow enumerates the arrows table.
type Arrow uint8

const (
	ArrowUp Arrow = iota
	ArrowDown
	ArrowRight
	ArrowRightTail
	ArrowTwoHeadRight
	ArrowTwoHeadRightTail
	ArrowMapsTo
	ArrowLeft
	ArrowLeftRight
	ArrowBigRight
	ArrowBigLeft
	ArrowBigLeftRight
)

// Arrows holds the arrows.
var Arrows = newTable(CategoryArrow,
	Spelling[Arrow]{ArrowUp, "Up", []string{"uarr", "uparrow"}},
	Spelling[Arrow]{ArrowDown, "Down", []string{"darr", "downarrow"}},
	Spelling[Arrow]{ArrowRight, "Right", []string{"->", "to", "rarr", "rightarrow"}},
	Spelling[Arrow]{ArrowRightTail, "RightTail", []string{">->", "rightarrowtail"}},
	Spelling[Arrow]{ArrowTwoHeadRight, "TwoHeadRight", []string{"->>", "twoheadrightarrow"}},
	Spelling[Arrow]{ArrowTwoHeadRightTail, "TwoHeadRightTail", []string{">->>", "twoheadrightarrowtail"}},
	Spelling[Arrow]{ArrowMapsTo, "MapsTo", []string{"|->", "mapsto"}},
	Spelling[Arrow]{ArrowLeft, "Left", []string{"larr", "leftarrow"}},
	Spelling[Arrow]{ArrowLeftRight, "LeftRight", []string{"harr", "leftrightarrow"}},
	Spelling[Arrow]{ArrowBigRight, "BigRight", []string{"rArr", "Rightarrow"}},
	Spelling[Arrow]{ArrowBigLeft, "BigLeft", []string{"lArr", "Leftarrow"}},
	Spelling[Arrow]{ArrowBigLeftRight, "BigLeftRight", []string{"hArr", "Leftrightarrow"}},
)

func (k Arrow) String() string { return Arrows.Name(k) }
