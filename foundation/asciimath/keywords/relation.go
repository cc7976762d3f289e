package keywords

// Relation enumerates the relations table.
type Relation uint8

const (
	RelEq Relation = iota
	RelNotEq
	RelDefine
	RelLessThan
	RelGreaterThan
	RelLessEqualThan
	RelGreaterEqualThan
	RelMuchLessThan
	RelMuchGreaterThan
	RelPrec
	RelPrecEq
	RelSucc
	RelSuccEq
	RelIn
	RelNotIn
	RelSubset
	RelSuperset
	RelSubsetEq
	RelSupersetEq
	RelEquivalent
	RelCongruent
	RelApproximate
	RelProp
)

// Relations holds the relations.
var Relations = newTable(CategoryRelation,
	Spelling[Relation]{RelEq, "Eq", []string{"="}},
	Spelling[Relation]{RelNotEq, "NotEq", []string{"!=", "ne"}},
	Spelling[Relation]{RelDefine, "Define", []string{":="}},
	Spelling[Relation]{RelLessThan, "LessThan", []string{"<", "lt"}},
	Spelling[Relation]{RelGreaterThan, "GreaterThan", []string{">", "gt"}},
	Spelling[Relation]{RelLessEqualThan, "LessEqualThan", []string{"<=", "le"}},
	Spelling[Relation]{RelGreaterEqualThan, "GreaterEqualThan", []string{">=", "ge"}},
	Spelling[Relation]{RelMuchLessThan, "MuchLessThan", []string{"mlt", "ll"}},
	Spelling[Relation]{RelMuchGreaterThan, "MuchGreaterThan", []string{"mgt", "gg"}},
	Spelling[Relation]{RelPrec, "Prec", []string{"-<", "prec"}},
	Spelling[Relation]{RelPrecEq, "PrecEq", []string{"-<=", "preceq"}},
	Spelling[Relation]{RelSucc, "Succ", []string{">-", "succ"}},
	Spelling[Relation]{RelSuccEq, "SuccEq", []string{">-=", "succeq"}},
	Spelling[Relation]{RelIn, "In", []string{"in"}},
	Spelling[Relation]{RelNotIn, "NotIn", []string{"!in", "notin"}},
	Spelling[Relation]{RelSubset, "Subset", []string{"sub", "subset"}},
	Spelling[Relation]{RelSuperset, "Superset", []string{"sup", "supset"}},
	Spelling[Relation]{RelSubsetEq, "SubsetEq", []string{"sube", "subseteq"}},
	Spelling[Relation]{RelSupersetEq, "SupersetEq", []string{"supe", "supseteq"}},
	Spelling[Relation]{RelEquivalent, "Equivalent", []string{"_=", "equiv"}},
	Spelling[Relation]{RelCongruent, "Congruent", []string{"~=", "cong"}},
	Spelling[Relation]{RelApproximate, "Approximate", []string{"~~", "approx"}},
	Spelling[Relation]{RelProp, "Prop", []string{"prop", "propto"}},
)

func (k Relation) String() string { return Relations.Name(k) }
