package keywords

// Logical enumerates the logical symbols table.
type Logical uint8

const (
	LogicAnd Logical = iota
	LogicOr
	LogicNot
	LogicImplies
	LogicIf
	LogicIfAndOnlyIf
	LogicForAll
	LogicExists
	LogicBottom
	LogicTop
	LogicVerticalDash
	LogicModels
)

// Logicals holds the logical symbols.
var Logicals = newTable(CategoryLogical,
	Spelling[Logical]{LogicAnd, "And", []string{"and"}},
	Spelling[Logical]{LogicOr, "Or", []string{"or"}},
	Spelling[Logical]{LogicNot, "Not", []string{"not", "neg"}},
	Spelling[Logical]{LogicImplies, "Implies", []string{"=>", "implies"}},
	Spelling[Logical]{LogicIf, "If", []string{"if"}},
	Spelling[Logical]{LogicIfAndOnlyIf, "IfAndOnlyIf", []string{"<=>", "iff"}},
	Spelling[Logical]{LogicForAll, "ForAll", []string{"AA", "forall"}},
	Spelling[Logical]{LogicExists, "Exists", []string{"EE", "exists"}},
	Spelling[Logical]{LogicBottom, "Bottom", []string{"_|_", "bot"}},
	Spelling[Logical]{LogicTop, "Top", []string{"TT", "top"}},
	Spelling[Logical]{LogicVerticalDash, "VerticalDash", []string{"|--", "vdash"}},
	Spelling[Logical]{LogicModels, "Models", []string{"|==", "models"}},
)

func (k Logical) String() string { return Logicals.Name(k) }
