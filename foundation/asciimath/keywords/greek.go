package keywords

// Greek enumerates the greek letters table.
type Greek uint8

const (
	GreekAlpha Greek = iota
	GreekBeta
	GreekGamma
	GreekBigGamma
	GreekDelta
	GreekBigDelta
	GreekEpsilon
	GreekVarepsilon
	GreekZeta
	GreekEta
	GreekTheta
	GreekBigTheta
	GreekVartheta
	GreekIota
	GreekKappa
	GreekLambda
	GreekBigLambda
	GreekMu
	GreekNu
	GreekXi
	GreekBigXi
	GreekPi
	GreekBigPi
	GreekRho
	GreekSigma
	GreekBigSigma
	GreekTau
	GreekUpsilon
	GreekPhi
	GreekBigPhi
	GreekVarphi
	GreekChi
	GreekPsi
	GreekBigPsi
	GreekOmega
	GreekBigOmega
)

// Greeks holds the greek letters.
var Greeks = newTable(CategoryGreek,
	Spelling[Greek]{GreekAlpha, "Alpha", []string{"alpha"}},
	Spelling[Greek]{GreekBeta, "Beta", []string{"beta"}},
	Spelling[Greek]{GreekGamma, "Gamma", []string{"gamma"}},
	Spelling[Greek]{GreekBigGamma, "BigGamma", []string{"Gamma"}},
	Spelling[Greek]{GreekDelta, "Delta", []string{"delta"}},
	Spelling[Greek]{GreekBigDelta, "BigDelta", []string{"Delta"}},
	Spelling[Greek]{GreekEpsilon, "Epsilon", []string{"epsilon"}},
	Spelling[Greek]{GreekVarepsilon, "Varepsilon", []string{"varepsilon"}},
	Spelling[Greek]{GreekZeta, "Zeta", []string{"zeta"}},
	Spelling[Greek]{GreekEta, "Eta", []string{"eta"}},
	Spelling[Greek]{GreekTheta, "Theta", []string{"theta"}},
	Spelling[Greek]{GreekBigTheta, "BigTheta", []string{"Theta"}},
	Spelling[Greek]{GreekVartheta, "Vartheta", []string{"vartheta"}},
	Spelling[Greek]{GreekIota, "Iota", []string{"iota"}},
	Spelling[Greek]{GreekKappa, "Kappa", []string{"kappa"}},
	Spelling[Greek]{GreekLambda, "Lambda", []string{"lambda"}},
	Spelling[Greek]{GreekBigLambda, "BigLambda", []string{"Lambda"}},
	Spelling[Greek]{GreekMu, "Mu", []string{"mu"}},
	Spelling[Greek]{GreekNu, "Nu", []string{"nu"}},
	Spelling[Greek]{GreekXi, "Xi", []string{"xi"}},
	Spelling[Greek]{GreekBigXi, "BigXi", []string{"Xi"}},
	Spelling[Greek]{GreekPi, "Pi", []string{"pi"}},
	Spelling[Greek]{GreekBigPi, "BigPi", []string{"Pi"}},
	Spelling[Greek]{GreekRho, "Rho", []string{"rho"}},
	Spelling[Greek]{GreekSigma, "Sigma", []string{"sigma"}},
	Spelling[Greek]{GreekBigSigma, "BigSigma", []string{"Sigma"}},
	Spelling[Greek]{GreekTau, "Tau", []string{"tau"}},
	Spelling[Greek]{GreekUpsilon, "Upsilon", []string{"upsilon"}},
	Spelling[Greek]{GreekPhi, "Phi", []string{"phi"}},
	Spelling[Greek]{GreekBigPhi, "BigPhi", []string{"Phi"}},
	Spelling[Greek]{GreekVarphi, "Varphi", []string{"varphi"}},
	Spelling[Greek]{GreekChi, "Chi", []string{"chi"}},
	Spelling[Greek]{GreekPsi, "Psi", []string{"psi"}},
	Spelling[Greek]{GreekBigPsi, "BigPsi", []string{"Psi"}},
	Spelling[Greek]{GreekOmega, "Omega", []string{"omega"}},
	Spelling[Greek]{GreekBigOmega, "BigOmega", []string{"Omega"}},
)

func (k Greek) String() string { return Greeks.Name(k) }
