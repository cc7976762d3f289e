package keywords

// Operator enumerates the binary and large operators table.
type Operator uint8

const (
	OpPlus Operator = iota
	OpMinus
	OpDot
	OpAsterisk
	OpStar
	OpForwardSlash
	OpBackslash
	OpTimes
	OpDivide
	OpLTimes
	OpRTimes
	OpBowtie
	OpCircle
	OpOPlus
	OpOTimes
	OpODot
	OpSum
	OpProd
	OpWedge
	OpBigWedge
	OpVee
	OpBigVee
	OpCap
	OpBigCap
	OpCup
	OpBigCup
)

// Operators holds the binary and large operators.
var Operators = newTable(CategoryOperator,
	Spelling[Operator]{OpPlus, "Plus", []string{"+"}},
	Spelling[Operator]{OpMinus, "Minus", []string{"-"}},
	Spelling[Operator]{OpDot, "Dot", []string{"*", "cdot"}},
	Spelling[Operator]{OpAsterisk, "Asterisk", []string{"**", "ast"}},
	Spelling[Operator]{OpStar, "Star", []string{"***", "star"}},
	Spelling[Operator]{OpForwardSlash, "ForwardSlash", []string{"//"}},
	Spelling[Operator]{OpBackslash, "Backslash", []string{`\\`, `\`, "backslash", "setminus"}},
	Spelling[Operator]{OpTimes, "Times", []string{"xx", "times"}},
	Spelling[Operator]{OpDivide, "Divide", []string{"-:", "div"}},
	Spelling[Operator]{OpLTimes, "LTimes", []string{"|><", "ltimes"}},
	Spelling[Operator]{OpRTimes, "RTimes", []string{"><|", "rtimes"}},
	Spelling[Operator]{OpBowtie, "Bowtie", []string{"|><|", "bowtie"}},
	Spelling[Operator]{OpCircle, "Circle", []string{"@", "circ"}},
	Spelling[Operator]{OpOPlus, "OPlus", []string{"o+", "oplus"}},
	Spelling[Operator]{OpOTimes, "OTimes", []string{"ox", "otimes"}},
	Spelling[Operator]{OpODot, "ODot", []string{"o.", "odot"}},
	Spelling[Operator]{OpSum, "Sum", []string{"sum"}},
	Spelling[Operator]{OpProd, "Prod", []string{"prod"}},
	Spelling[Operator]{OpWedge, "Wedge", []string{"^^", "wedge"}},
	Spelling[Operator]{OpBigWedge, "BigWedge", []string{"^^^", "bigwedge"}},
	Spelling[Operator]{OpVee, "Vee", []string{"vv", "vee"}},
	Spelling[Operator]{OpBigVee, "BigVee", []string{"vvv", "bigvee"}},
	Spelling[Operator]{OpCap, "Cap", []string{"nn", "cap"}},
	Spelling[Operator]{OpBigCap, "BigCap", []string{"nnn", "bigcap"}},
	Spelling[Operator]{OpCup, "Cup", []string{"uu", "cup"}},
	Spelling[Operator]{OpBigCup, "BigCup", []string{"uuu", "bigcup"}},
)

func (k Operator) String() string { return Operators.Name(k) }
