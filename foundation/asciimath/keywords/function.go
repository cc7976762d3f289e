package keywords

// Function enumerates the named functions table.
type Function uint8

const (
	FuncSin Function = iota
	FuncCos
	FuncTan
	FuncSec
	FuncCsc
	FuncCot
	FuncArcsin
	FuncArccos
	FuncArctan
	FuncSinh
	FuncCosh
	FuncTanh
	FuncSech
	FuncCsch
	FuncCoth
	FuncExp
	FuncLog
	FuncLn
	FuncDet
	FuncDim
	FuncMod
	FuncGcd
	FuncLcm
	FuncLub
	FuncGlb
	FuncMin
	FuncMax
	FuncF
	FuncG
	FuncLim
	FuncBigLim
)

// Functions holds the named functions.
var Functions = newTable(CategoryFunction,
	Spelling[Function]{FuncSin, "Sin", []string{"sin"}},
	Spelling[Function]{FuncCos, "Cos", []string{"cos"}},
	Spelling[Function]{FuncTan, "Tan", []string{"tan"}},
	Spelling[Function]{FuncSec, "Sec", []string{"sec"}},
	Spelling[Function]{FuncCsc, "Csc", []string{"csc"}},
	Spelling[Function]{FuncCot, "Cot", []string{"cot"}},
	Spelling[Function]{FuncArcsin, "Arcsin", []string{"arcsin"}},
	Spelling[Function]{FuncArccos, "Arccos", []string{"arccos"}},
	Spelling[Function]{FuncArctan, "Arctan", []string{"arctan"}},
	Spelling[Function]{FuncSinh, "Sinh", []string{"sinh"}},
	Spelling[Function]{FuncCosh, "Cosh", []string{"cosh"}},
	Spelling[Function]{FuncTanh, "Tanh", []string{"tanh"}},
	Spelling[Function]{FuncSech, "Sech", []string{"sech"}},
	Spelling[Function]{FuncCsch, "Csch", []string{"csch"}},
	Spelling[Function]{FuncCoth, "Coth", []string{"coth"}},
	Spelling[Function]{FuncExp, "Exp", []string{"exp"}},
	Spelling[Function]{FuncLog, "Log", []string{"log"}},
	Spelling[Function]{FuncLn, "Ln", []string{"ln"}},
	Spelling[Function]{FuncDet, "Det", []string{"det"}},
	Spelling[Function]{FuncDim, "Dim", []string{"dim"}},
	Spelling[Function]{FuncMod, "Mod", []string{"mod"}},
	Spelling[Function]{FuncGcd, "Gcd", []string{"gcd"}},
	Spelling[Function]{FuncLcm, "Lcm", []string{"lcm"}},
	Spelling[Function]{FuncLub, "Lub", []string{"lub"}},
	Spelling[Function]{FuncGlb, "Glb", []string{"glb"}},
	Spelling[Function]{FuncMin, "Min", []string{"min"}},
	Spelling[Function]{FuncMax, "Max", []string{"max"}},
	Spelling[Function]{FuncF, "F", []string{"f"}},
	Spelling[Function]{FuncG, "G", []string{"g"}},
	Spelling[Function]{FuncLim, "Lim", []string{"lim"}},
	Spelling[Function]{FuncBigLim, "BigLim", []string{"Lim"}},
)

func (k Function) String() string { return Functions.Name(k) }
