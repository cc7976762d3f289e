package mathml

import "github.com/mathemascii/mathemascii/foundation/asciimath/keywords"

var greekGlyphs = map[keywords.Greek]string{
	keywords.GreekAlpha:      "α",
	keywords.GreekBeta:       "β",
	keywords.GreekGamma:      "γ",
	keywords.GreekBigGamma:   "Γ",
	keywords.GreekDelta:      "δ",
	keywords.GreekBigDelta:   "Δ",
	keywords.GreekEpsilon:    "ε",
	keywords.GreekVarepsilon: "ɛ",
	keywords.GreekZeta:       "ζ",
	keywords.GreekEta:        "η",
	keywords.GreekTheta:      "θ",
	keywords.GreekBigTheta:   "Θ",
	keywords.GreekVartheta:   "ϑ",
	keywords.GreekIota:       "ι",
	keywords.GreekKappa:      "κ",
	keywords.GreekLambda:     "λ",
	keywords.GreekBigLambda:  "Λ",
	keywords.GreekMu:         "μ",
	keywords.GreekNu:         "ν",
	keywords.GreekXi:         "ξ",
	keywords.GreekBigXi:      "Ξ",
	keywords.GreekPi:         "π",
	keywords.GreekBigPi:      "Π",
	keywords.GreekRho:        "ρ",
	keywords.GreekSigma:      "σ",
	keywords.GreekBigSigma:   "Σ",
	keywords.GreekTau:        "τ",
	keywords.GreekUpsilon:    "υ",
	keywords.GreekPhi:        "ϕ",
	keywords.GreekBigPhi:     "Φ",
	keywords.GreekVarphi:     "φ",
	keywords.GreekChi:        "χ",
	keywords.GreekPsi:        "ψ",
	keywords.GreekBigPsi:     "Ψ",
	keywords.GreekOmega:      "ω",
	keywords.GreekBigOmega:   "Ω",
}

var operatorGlyphs = map[keywords.Operator]string{
	keywords.OpPlus:         "+",
	keywords.OpMinus:        "−",
	keywords.OpDot:          "⋅",
	keywords.OpAsterisk:     "∗",
	keywords.OpStar:         "⋆",
	keywords.OpForwardSlash: "/",
	keywords.OpBackslash:    "\\",
	keywords.OpTimes:        "×",
	keywords.OpDivide:       "÷",
	keywords.OpLTimes:       "⋉",
	keywords.OpRTimes:       "⋊",
	keywords.OpBowtie:       "⋈",
	keywords.OpCircle:       "∘",
	keywords.OpOPlus:        "⊕",
	keywords.OpOTimes:       "⊗",
	keywords.OpODot:         "⊙",
	keywords.OpSum:          "∑",
	keywords.OpProd:         "∏",
	keywords.OpWedge:        "∧",
	keywords.OpBigWedge:     "⋀",
	keywords.OpVee:          "∨",
	keywords.OpBigVee:       "⋁",
	keywords.OpCap:          "∩",
	keywords.OpBigCap:       "⋂",
	keywords.OpCup:          "∪",
	keywords.OpBigCup:       "⋃",
}

var relationGlyphs = map[keywords.Relation]string{
	keywords.RelEq:               "=",
	keywords.RelNotEq:            "≠",
	keywords.RelDefine:           ":=",
	keywords.RelLessThan:         "<",
	keywords.RelGreaterThan:      ">",
	keywords.RelLessEqualThan:    "≤",
	keywords.RelGreaterEqualThan: "≥",
	keywords.RelMuchLessThan:     "≪",
	keywords.RelMuchGreaterThan:  "≫",
	keywords.RelPrec:             "≺",
	keywords.RelPrecEq:           "⪯",
	keywords.RelSucc:             "≻",
	keywords.RelSuccEq:           "⪰",
	keywords.RelIn:               "∈",
	keywords.RelNotIn:            "∉",
	keywords.RelSubset:           "⊂",
	keywords.RelSuperset:         "⊃",
	keywords.RelSubsetEq:         "⊆",
	keywords.RelSupersetEq:       "⊇",
	keywords.RelEquivalent:       "≡",
	keywords.RelCongruent:        "≅",
	keywords.RelApproximate:      "≈",
	keywords.RelProp:             "∝",
}

// logical connectives spelled as words render as text
var logicalGlyphs = map[keywords.Logical]string{
	keywords.LogicAnd:          "and",
	keywords.LogicOr:           "or",
	keywords.LogicNot:          "¬",
	keywords.LogicImplies:      "⇒",
	keywords.LogicIf:           "if",
	keywords.LogicIfAndOnlyIf:  "⇔",
	keywords.LogicForAll:       "∀",
	keywords.LogicExists:       "∃",
	keywords.LogicBottom:       "⊥",
	keywords.LogicTop:          "⊤",
	keywords.LogicVerticalDash: "⊢",
	keywords.LogicModels:       "⊨",
}

var arrowGlyphs = map[keywords.Arrow]string{
	keywords.ArrowUp:               "↑",
	keywords.ArrowDown:             "↓",
	keywords.ArrowRight:            "→",
	keywords.ArrowRightTail:        "↣",
	keywords.ArrowTwoHeadRight:     "↠",
	keywords.ArrowTwoHeadRightTail: "⤖",
	keywords.ArrowMapsTo:           "↦",
	keywords.ArrowLeft:             "←",
	keywords.ArrowLeftRight:        "↔",
	keywords.ArrowBigRight:         "⇒",
	keywords.ArrowBigLeft:          "⇐",
	keywords.ArrowBigLeftRight:     "⇔",
}

var otherGlyphs = map[keywords.Other]string{
	keywords.OtherComma:            ",",
	keywords.OtherForwardSlash:     "/",
	keywords.OtherIntegral:         "∫",
	keywords.OtherOIntegral:        "∮",
	keywords.OtherPartial:          "∂",
	keywords.OtherNabla:            "∇",
	keywords.OtherPlusMinus:        "±",
	keywords.OtherEmptySet:         "∅",
	keywords.OtherInfinity:         "∞",
	keywords.OtherAleph:            "ℵ",
	keywords.OtherTherefore:        "∴",
	keywords.OtherBecause:          "∵",
	keywords.OtherLowDots:          "…",
	keywords.OtherCenterDots:       "⋯",
	keywords.OtherVerticalDots:     "⋮",
	keywords.OtherDiagonalDots:     "⋱",
	keywords.OtherVerticalBar:      "|",
	keywords.OtherVerticalBars:     "‖",
	keywords.OtherVerticalBarsWide: "∣ ∣",
	keywords.OtherAngle:            "∠",
	keywords.OtherFrown:            "⌢",
	keywords.OtherTriangle:         "△",
	keywords.OtherDiamond:          "◇",
	keywords.OtherSquare:           "□",
	keywords.OtherLeftFloor:        "⌊",
	keywords.OtherRightFloor:       "⌋",
	keywords.OtherLeftCeiling:      "⌈",
	keywords.OtherRightCeiling:     "⌉",
	keywords.OtherComplex:          "ℂ",
	keywords.OtherNatural:          "ℕ",
	keywords.OtherRational:         "ℚ",
	keywords.OtherIrrational:       "ℝ",
	keywords.OtherInteger:          "ℤ",
	keywords.OtherPrime:            "′",
}

var groupingGlyphs = map[keywords.Grouping]string{
	keywords.GroupOpenParen:    "(",
	keywords.GroupCloseParen:   ")",
	keywords.GroupOpenBracket:  "[",
	keywords.GroupCloseBracket: "]",
	keywords.GroupOpenBrace:    "{",
	keywords.GroupCloseBrace:   "}",
	keywords.GroupLeftAngled:   "⟨",
	keywords.GroupRightAngled:  "⟩",
}

var spaceWidths = map[keywords.Other]string{
	keywords.OtherQuad:  "1em",
	keywords.OtherQQuad: "2em",
}
