// Package command holds the static, closed mapping from a control
// sequence's name (the text following the escape character, without
// the backslash) to its pre-classified token. Lookup is O(1) and
// case-sensitive; a name absent from the table yields an
// token.KindUnknownCommand token rather than an error — raising an
// error is the parser's job, only if the unknown command is actually
// used.
package command

import (
	"github.com/mathmlgo/latexmml/internal/glyph"
	"github.com/mathmlgo/latexmml/internal/token"
)

func op(o glyph.Op) token.Token                 { return token.Token{Kind: token.KindOperator, Op: o} }
func paren(o glyph.Op) token.Token              { return token.Token{Kind: token.KindParen, Op: o} }
func bigOp(o glyph.Op) token.Token              { return token.Token{Kind: token.KindBigOp, Op: o} }
func integral(o glyph.Op) token.Token           { return token.Token{Kind: token.KindIntegral, Op: o} }
func over(o glyph.Op) token.Token               { return token.Token{Kind: token.KindOverUnder, Op: o, IsOver: true} }
func under(o glyph.Op) token.Token              { return token.Token{Kind: token.KindOverUnder, Op: o, IsOver: false} }
func overbrace(o glyph.Op) token.Token          { return token.Token{Kind: token.KindOverUnderBrace, Op: o, IsOver: true} }
func underbrace(o glyph.Op) token.Token         { return token.Token{Kind: token.KindOverUnderBrace, Op: o, IsOver: false} }
func normalLetter(ch rune) token.Token          { return token.Token{Kind: token.KindNormalLetter, Ch: ch} }
func letter(ch rune) token.Token                { return token.Token{Kind: token.KindLetter, Ch: ch} }
func space(amount string) token.Token           { return token.Token{Kind: token.KindSpace, Str: amount} }
func big(size string) token.Token               { return token.Token{Kind: token.KindBig, Str: size} }
func function(name string) token.Token          { return token.Token{Kind: token.KindFunction, Str: name} }
func lim(name string) token.Token               { return token.Token{Kind: token.KindLim, Str: name} }
func frac(attr token.FracAttr) token.Token      { return token.Token{Kind: token.KindFrac, FracAttr: attr} }
func binom(attr token.FracAttr) token.Token     { return token.Token{Kind: token.KindBinom, FracAttr: attr} }
func transform(t token.TextTransform) token.Token {
	return token.Token{Kind: token.KindTransform, Transform: t}
}
func style(s token.Style) token.Token { return token.Token{Kind: token.KindStyle, Style: s} }
func bare(k token.Kind) token.Token   { return token.Token{Kind: k} }

// table is transcribed entry-for-entry from the retrieved reference
// command table; codepoints for named operators are assigned in
// internal/glyph by Unicode Character Database name.
var table = map[string]token.Token{
	" ":  space("1"),
	"!":  space("-0.1667"),
	"#":  normalLetter('#'),
	"$":  normalLetter('$'),
	"%":  normalLetter('%'),
	"&":  bare(token.KindOpAmpersand),
	",":  space("0.1667"),
	":":  space("0.2222"),
	";":  space("0.2778"),
	"A":  normalLetter('Å'),
	"AE": normalLetter('Æ'),
	"Alpha": normalLetter('Α'),
	"And":    bare(token.KindOpAmpersand),
	"Beta":   normalLetter('Β'),
	"Big":    big("1.623em"),
	"Bigg":   big("2.470em"),
	"Biggl":  big("2.470em"),
	"Biggr":  big("2.470em"),
	"Bigl":   big("1.623em"),
	"Bigr":   big("1.623em"),
	"Box":    normalLetter('◻'),
	"Cap":    op(glyph.DoubleIntersection),
	"Chi":    normalLetter('Χ'),
	"Cup":    op(glyph.DoubleUnion),
	"DH":     normalLetter('Ð'),
	"Dagger": normalLetter('‡'),
	"Delta":  normalLetter('Δ'),
	"Diamond": normalLetter('◊'),
	"Doteq":   op(glyph.GeometricallyEqualTo),
	"Downarrow": op(glyph.DownwardsDoubleArrow),
	"Epsilon":   normalLetter('Ε'),
	"Eta":       normalLetter('Η'),
	"Finv":      normalLetter('Ⅎ'),
	"Game":      normalLetter('⅁'),
	"Gamma":     normalLetter('Γ'),
	"Im":        normalLetter('ℑ'),
	"Iota":      normalLetter('Ι'),
	"Join":      op(glyph.Bowtie),
	"Kappa":     normalLetter('Κ'),
	"L":         normalLetter('Ł'),
	"Lambda":    normalLetter('Λ'),
	"Leftarrow": op(glyph.LeftwardsDoubleArrow),
	"Leftrightarrow":     op(glyph.LeftRightDoubleArrow),
	"Lleftarrow":         op(glyph.LeftwardsTripleArrow),
	"Longleftarrow":      op(glyph.LongLeftwardsDoubleArrow),
	"Longleftrightarrow": op(glyph.LongLeftRightDoubleArrow),
	"Longrightarrow":     op(glyph.LongRightwardsDoubleArrow),
	"Lsh":                op(glyph.UpwardsArrowWithTipLeftwards),
	"Mu":                 normalLetter('Μ'),
	"NG":                 normalLetter('Ŋ'),
	"Nu":                 normalLetter('Ν'),
	"O":                  normalLetter('Ø'),
	"OE":                 normalLetter('Œ'),
	"Omega":              normalLetter('Ω'),
	"Omicron":            normalLetter('Ο'),
	"P":                  normalLetter('¶'),
	"Phi":                normalLetter('Φ'),
	"Pi":                 normalLetter('Π'),
	"Psi":                normalLetter('Ψ'),
	"Re":                 normalLetter('ℜ'),
	"Rho":                normalLetter('Ρ'),
	"Rightarrow":         op(glyph.RightwardsDoubleArrow),
	"Rrightarrow":        op(glyph.RightwardsTripleArrow),
	"Rsh":                op(glyph.UpwardsArrowWithTipRightwards),
	"S":                  normalLetter('§'),
	"Sigma":              normalLetter('Σ'),
	"TH":                 normalLetter('Þ'),
	"Tau":                normalLetter('Τ'),
	"Theta":              normalLetter('Θ'),
	"Uparrow":            op(glyph.UpwardsDoubleArrow),
	"Updownarrow":        op(glyph.UpDownDoubleArrow),
	"Upsilon":            normalLetter('Υ'),
	"Vdash":              op(glyph.Forces),
	"Xi":                 normalLetter('Ξ'),
	"Yleft":              op(glyph.LeftwardsArrowTail),
	"Yright":             op(glyph.RightwardsArrowTail),
	"Zeta":               normalLetter('Ζ'),
	"\\":                 bare(token.KindNewLine),
	"_":                  normalLetter('_'),
	"a":                  normalLetter('å'),
	"acute":              over(glyph.AcuteAccent),
	"ae":                 normalLetter('æ'),
	"aleph":              normalLetter('ℵ'),
	"alpha":              letter('α'),
	"amalg":              op(glyph.AmalgamationOrCoproduct),
	"angle":              normalLetter('∠'),
	"approx":             op(glyph.AlmostEqualTo),
	"approxeq":           op(glyph.AlmostEqualOrEqualTo),
	"arccos":             function("arccos"),
	"arcsin":             function("arcsin"),
	"arctan":             function("arctan"),
	"arg":                function("arg"),
	"ascnode":            normalLetter('☊'),
	"ast":                op(glyph.AsteriskOperator),
	"astrosun":           normalLetter('☉'),
	"asymp":              op(glyph.EquivalentTo),
	"backslash":          op(glyph.ReverseSolidus),
	"bar":                over(glyph.Macron),
	"barwedge":           op(glyph.Nand),
	"because":            normalLetter('∵'),
	"begin":              bare(token.KindBegin),
	"beta":               letter('β'),
	"beth":               normalLetter('ℶ'),
	"big":                big("1.2em"),
	"bigcap":             bigOp(glyph.NAryIntersection),
	"bigcirc":            op(glyph.LargeCircle),
	"bigcup":             bigOp(glyph.NAryUnion),
	"bigg":               big("2.047em"),
	"biggl":              big("2.047em"),
	"biggr":              big("2.047em"),
	"bigl":                big("1.2em"),
	"bigodot":             bigOp(glyph.NAryCircledDotOperator),
	"bigoplus":            bigOp(glyph.NAryCircledPlusOperator),
	"bigr":                big("1.2em"),
	"bigsqcup":            bigOp(glyph.NArySquareUnionOperator),
	"bigtimes":            bigOp(glyph.NAryTimesOperator),
	"bigtriangleup":       normalLetter('△'),
	"biguplus":            bigOp(glyph.NAryUnionOperatorWithPlus),
	"bigvee":              bigOp(glyph.NAryLogicalOr),
	"bigwedge":            bigOp(glyph.NAryLogicalAnd),
	"binom":               binom(token.FracAttrNone),
	"bitotimes":           bigOp(glyph.NAryCircledTimesOperator),
	"bm":                  transform(token.TransformBoldItalic),
	"boldsymbol":          transform(token.TransformBoldItalic),
	"bot":                 op(glyph.UpTack),
	"botdoteq":            op(glyph.EqualsSignWithDotBelow),
	"boxbox":              op(glyph.SquaredSquare),
	"boxbslash":           op(glyph.SquaredFallingDiagonalSlash),
	"boxdot":              op(glyph.SquaredDotOperator),
	"boxminus":            op(glyph.SquaredMinus),
	"boxplus":             op(glyph.SquaredPlus),
	"boxslash":            op(glyph.SquaredRisingDiagonalSlash),
	"boxtimes":            op(glyph.SquaredTimes),
	"breve":               over(glyph.Breve),
	"bullet":              op(glyph.BulletOperator),
	"cap":                 op(glyph.Intersection),
	"cdot":                op(glyph.MiddleDot),
	"cdots":               op(glyph.MidlineHorizontalEllipsis),
	"centerdot":           op(glyph.BulletOperator),
	"cfrac":               frac(token.FracAttrCFracStyle),
	"check":               over(glyph.Caron),
	"checkmark":           normalLetter('✓'),
	"chi":                 letter('χ'),
	"circ":                op(glyph.RingOperator),
	"circeq":               op(glyph.RingEqualTo),
	"circlearrowleft":      op(glyph.AnticlockwiseOpenCircleArrow),
	"circlearrowright":     op(glyph.ClockwiseOpenCircleArrow),
	"circledR":             normalLetter('Ⓡ'),
	"circledast":           op(glyph.CircledAsteriskOperator),
	"circledcirc":          op(glyph.CircledRingOperator),
	"circleddash":          op(glyph.CircledDash),
	"clubsuit":             normalLetter('♣'),
	"colon":                normalLetter(':'),
	"coloneq":              op(glyph.ColonEquals),
	"complement":           normalLetter('∁'),
	"cong":                 op(glyph.ApproximatelyEqualTo),
	"coprod":               bigOp(glyph.NAryCoproduct),
	"copyright":            normalLetter('©'),
	"cos":                  function("cos"),
	"cosh":                 function("cosh"),
	"cot":                  function("cot"),
	"coth":                 function("coth"),
	"csc":                  function("csc"),
	"cup":                  op(glyph.Union),
	"curlyvee":             op(glyph.CurlyLogicalOr),
	"curlywedge":           op(glyph.CurlyLogicalAnd),
	"curvearrowleft":       op(glyph.AnticlockwiseTopSemicircleArrow),
	"curvearrowright":      op(glyph.ClockwiseTopSemicircleArrow),
	"dag":                  normalLetter('†'),
	"dagger":               normalLetter('†'),
	"daleth":               normalLetter('ℸ'),
	"dashv":                op(glyph.LeftTack),
	"dbinom":               binom(token.FracAttrDisplayStyleTrue),
	"ddag":                 normalLetter('‡'),
	"ddot":                 over(glyph.Diaeresis),
	"ddots":                op(glyph.DownRightDiagonalEllipsis),
	"delta":                letter('δ'),
	"det":                  function("det"),
	"dfrac":                frac(token.FracAttrDisplayStyleTrue),
	"dh":                   normalLetter('ð'),
	"diamondsuit":          normalLetter('♢'),
	"digamma":              letter('ϝ'),
	"dim":                  function("dim"),
	"displaystyle":         style(token.StyleDisplayStyle),
	"div":                  op(glyph.DivisionSign),
	"divideontimes":        op(glyph.DivisionTimes),
	"dj":                   normalLetter('đ'),
	"dot":                  over(glyph.DotAbove),
	"doteq":                op(glyph.ApproachesTheLimit),
	"doteqdot":             op(glyph.GeometricallyEqualTo),
	"dotplus":              op(glyph.DotPlus),
	"dots":                 op(glyph.MidlineHorizontalEllipsis),
	"downarrow":            paren(glyph.DownwardsArrow),
	"downdownarrows":       op(glyph.DownwardsPairedArrows),
	"downharpoonleft":      op(glyph.DownwardsHarpoonWithBarbLeftwards),
	"downharpoonright":     op(glyph.DownwardsHarpoonWithBarbRightwards),
	"earth":                normalLetter('♁'),
	"ell":                  letter('ℓ'),
	"emptyset":             normalLetter('∅'),
	"end":                  bare(token.KindEnd),
	"epsilon":              letter('ϵ'),
	"eqcirc":               op(glyph.RingInEqualTo),
	"eqcolon":              op(glyph.EqualsColon),
	"eqslantgtr":           op(glyph.SlantedEqualToOrGreaterThan),
	"eqslantless":          op(glyph.SlantedEqualToOrLessThan),
	"equiv":                op(glyph.IdenticalTo),
	"erf":                  function("erf"),
	"erfc":                 function("erfc"),
	"eta":                  letter('η'),
	"eth":                  normalLetter('ð'),
	"euro":                 normalLetter('€'),
	"exists":               op(glyph.ThereExists),
	"exp":                  function("exp"),
	"fallingdotseq":        op(glyph.ApproximatelyEqualToOrTheImageOf),
	"flat":                 normalLetter('♭'),
	"forall":               op(glyph.ForAll),
	"frac":                 frac(token.FracAttrNone),
	"frown":                op(glyph.Frown),
	"gamma":                letter('γ'),
	"ge":                   op(glyph.GreaterThanOrEqualTo),
	"genfrac":              bare(token.KindGenfrac),
	"geq":                  op(glyph.GreaterThanOrEqualTo),
	"geqq":                 op(glyph.GreaterThanOverEqualTo),
	"geqslant":             op(glyph.GreaterThanOrSlantedEqualTo),
	"gets":                 op(glyph.LeftwardsArrow),
	"gg":                   op(glyph.MuchGreaterThan),
	"gimel":                normalLetter('ℷ'),
	"grave":                over(glyph.GraveAccent),
	"gt":                   bare(token.KindOpGreaterThan),
	"gtrapprox":            op(glyph.GreaterThanOrApproximate),
	"gtrsim":               op(glyph.GreaterThanOrEquivalentTo),
	"hat":                  over(glyph.CircumflexAccent),
	"hbar":                 letter('ℏ'),
	"heartsuit":            normalLetter('♡'),
	"hookleftarrow":        op(glyph.LeftwardsArrowWithHook),
	"hookrightarrow":       op(glyph.RightwardsArrowWithHook),
	"hslash":               letter('ℏ'),
	"iff":                  op(glyph.LongLeftRightDoubleArrow),
	"iiint":                integral(glyph.TripleIntegral),
	"iint":                 integral(glyph.DoubleIntegral),
	"imath":                letter('ı'),
	"impliedby":            op(glyph.LongLeftwardsDoubleArrow),
	"implies":              op(glyph.LongRightwardsDoubleArrow),
	"in":                   op(glyph.ElementOf),
	"inf":                  lim("inf"),
	"infty":                letter('∞'),
	"int":                  integral(glyph.Integral),
	"intercal":             op(glyph.Intercalate),
	"iota":                 letter('ι'),
	"jmath":                letter('ȷ'),
	"jupiter":              normalLetter('♃'),
	"kappa":                letter('κ'),
	"ker":                  function("ker"),
	"l":                    normalLetter('ł'),
	"lambda":               letter('λ'),
	"land":                 op(glyph.LogicalAnd),
	"langle":               paren(glyph.MathematicalLeftAngleBracket),
	"lceil":                paren(glyph.LeftCeiling),
	"ldots":                op(glyph.HorizontalEllipsis),
	"le":                   op(glyph.LessThanOrEqualTo),
	"left":                 bare(token.KindLeft),
	"leftarrow":            op(glyph.LeftwardsArrow),
	"leftarrowtail":        op(glyph.LeftwardsArrowWithTail),
	"leftharpoondown":      op(glyph.LeftwardsHarpoonWithBarbDownwards),
	"leftharpoonup":        op(glyph.LeftwardsHarpoonWithBarbUpwards),
	"leftleftarrows":       op(glyph.LeftwardsPairedArrows),
	"leftrightarrow":       op(glyph.LeftRightArrow),
	"leftrightarrows":      op(glyph.LeftwardsArrowOverRightwardsArrow),
	"leftrightharpoons":    op(glyph.LeftwardsHarpoonOverRightwardsHarpoon),
	"leftrightsquigarrow":  op(glyph.LeftRightWaveArrow),
	"leftthreetimes":       op(glyph.LeftSemidirectProduct),
	"leq":                  op(glyph.LessThanOrEqualTo),
	"leqq":                 op(glyph.LessThanOverEqualTo),
	"leqslant":             op(glyph.LessThanOrSlantedEqualTo),
	"lessapprox":           op(glyph.LessThanOrApproximate),
	"lessdot":              op(glyph.LessThanWithDot),
	"lesseqgtr":            op(glyph.LessThanEqualToOrGreaterThan),
	"lesseqqgtr":           op(glyph.LessThanAboveDoubleLineEqualAboveGreaterThan),
	"lessgtr":              op(glyph.LessThanOrGreaterThan),
	"lesssim":              op(glyph.LessThanOrEquivalentTo),
	"lfloor":               paren(glyph.LeftFloor),
	"lgroup":               paren(glyph.MathematicalLeftFlattenedParenthesis),
	"lhd":                  op(glyph.NormalSubgroupOf),
	"lightning":            op(glyph.DownwardsZigzagArrow),
	"lim":                  lim("lim"),
	"liminf":               lim("lim inf"),
	"limits":               bare(token.KindLimits),
	"limsup":               lim("lim sup"),
	"ll":                   op(glyph.MuchLessThan),
	"llbracket":            paren(glyph.MathematicalLeftWhiteSquareBracket),
	"lll":                  op(glyph.VeryMuchLessThan),
	"ln":                   function("ln"),
	"lnot":                 op(glyph.NotSign),
	"log":                  function("log"),
	"longleftarrow":        op(glyph.LongLeftwardsArrow),
	"longleftrightarrow":   op(glyph.LongLeftRightArrow),
	"longmapsto":           op(glyph.LongRightwardsArrowFromBar),
	"longrightarrow":       op(glyph.LongRightwardsArrow),
	"looparrowleft":        op(glyph.LeftwardsArrowWithLoop),
	"looparrowright":       op(glyph.RightwardsArrowWithLoop),
	"lor":                  op(glyph.LogicalOr),
	"lozenge":              letter('◊'),
	"lt":                   bare(token.KindOpLessThan),
	"ltimes":               op(glyph.LeftNormalFactorSemidirectProduct),
	"lvert":                paren(glyph.VerticalLine),
	"maltese":              letter('✠'),
	"mapsto":               op(glyph.RightwardsArrowFromBar),
	"mars":                 letter('♂'),
	"mathbb":               transform(token.TransformDoubleStruck),
	"mathbf":               transform(token.TransformBold),
	"mathcal":              transform(token.TransformScript),
	"mathfrak":             transform(token.TransformFraktur),
	"mathit":               transform(token.TransformItalic),
	"mathrm":               bare(token.KindNormalVariant),
	"mathscr":              transform(token.TransformScript),
	"mathsf":               transform(token.TransformSansSerif),
	"mathstrut":            bare(token.KindMathstrut),
	"max":                  lim("max"),
	"mercury":              letter('☿'),
	"mho":                  normalLetter('℧'),
	"mid":                  op(glyph.Divides),
	"middle":                bare(token.KindMiddle),
	"min":                  lim("min"),
	"models":               op(glyph.True),
	"mp":                   op(glyph.MinusOrPlusSign),
	"mu":                   letter('μ'),
	"multimap":             op(glyph.Multimap),
	"nLeftarrow":           op(glyph.LeftwardsDoubleArrowWithStroke),
	"nLeftrightarrow":      op(glyph.LeftRightDoubleArrowWithStroke),
	"nRightarrow":          op(glyph.RightwardsDoubleArrowWithStroke),
	"nabla":                op(glyph.Nabla),
	"natural":              normalLetter('♮'),
	"ne":                   op(glyph.NotEqualTo),
	"nearrow":              op(glyph.NorthEastArrow),
	"neg":                  op(glyph.NotSign),
	"neptune":              normalLetter('♆'),
	"neq":                  op(glyph.NotEqualTo),
	"nequiv":               op(glyph.NotIdenticalTo),
	"nexists":              op(glyph.ThereDoesNotExist),
	"ng":                   normalLetter('ŋ'),
	"ngtr":                 op(glyph.NotGreaterThan),
	"ni":                   op(glyph.ContainsAsMember),
	"nleftarrow":           op(glyph.LeftwardsArrowWithStroke),
	"nleftrightarrow":      op(glyph.LeftRightArrowWithStroke),
	"nless":                op(glyph.NotLessThan),
	"nmid":                 op(glyph.DoesNotDivide),
	"not":                  bare(token.KindNot),
	"notin":                op(glyph.NotAnElementOf),
	"nparallel":            op(glyph.NotParallelTo),
	"nprec":                op(glyph.DoesNotPrecede),
	"nrightarrow":          op(glyph.RightwardsArrowWithStroke),
	"nsim":                 op(glyph.NotTilde),
	"nsubset":              op(glyph.NotASubsetOf),
	"nsubseteq":            op(glyph.NeitherASubsetOfNorEqualTo),
	"nsucc":                op(glyph.DoesNotSucceed),
	"nsupset":              op(glyph.NotASupersetOf),
	"nsupseteq":            op(glyph.NeitherASupersetOfNorEqualTo),
	"nu":                   letter('ν'),
	"nwarrow":              op(glyph.NorthWestArrow),
	"o":                    normalLetter('ø'),
	"odot":                 op(glyph.CircledDotOperator),
	"oe":                   normalLetter('œ'),
	"oint":                 integral(glyph.ContourIntegral),
	"omega":                letter('ω'),
	"omicron":              letter('ο'),
	"ominus":               op(glyph.CircledMinus),
	"operatorname":         bare(token.KindOperatorName),
	"oplus":                op(glyph.CircledPlus),
	"oslash":               op(glyph.CircledDivisionSlash),
	"otimes":               op(glyph.CircledTimes),
	"overbrace":            overbrace(glyph.TopCurlyBracket),
	"overbracket":          overbrace(glyph.TopSquareBracket),
	"overleftarrow":        over(glyph.LeftwardsArrow),
	"overline":             over(glyph.LowLine),
	"overparen":            overbrace(glyph.TopParenthesis),
	"overrightarrow":       over(glyph.RightwardsArrow),
	"overset":              bare(token.KindOverset),
	"parallel":             op(glyph.ParallelTo),
	"partial":              letter('∂'),
	"perp":                 op(glyph.UpTack),
	"phi":                  letter('ϕ'),
	"pi":                   letter('π'),
	"pm":                   op(glyph.PlusMinusSign),
	"pounds":               normalLetter('£'),
	"prec":                 op(glyph.Precedes),
	"preceq":               op(glyph.PrecedesAboveSingleLineEqualsSign),
	"prime":                op(glyph.Prime),
	"prod":                 bigOp(glyph.NAryProduct),
	"propto":               op(glyph.ProportionalTo),
	"psi":                  letter('ψ'),
	"qquad":                space("2"),
	"quad":                 space("1"),
	"rangle":               paren(glyph.MathematicalRightAngleBracket),
	"rceil":                paren(glyph.RightCeiling),
	"rfloor":               paren(glyph.RightFloor),
	"rgroup":               paren(glyph.MathematicalRightFlattenedParenthesis),
	"rhd":                  op(glyph.ContainsAsNormalSubgroup),
	"rho":                  letter('ρ'),
	"right":                bare(token.KindRight),
	"rightarrow":           op(glyph.RightwardsArrow),
	"rightarrowtail":       op(glyph.RightwardsArrowWithTail),
	"rightharpoondown":     op(glyph.RightwardsHarpoonWithBarbDownwards),
	"rightharpoonup":       op(glyph.RightwardsHarpoonWithBarbUpwards),
	"rightleftarrows":      op(glyph.RightwardsArrowOverLeftwardsArrow),
	"rightleftharpoons":    op(glyph.RightwardsHarpoonOverLeftwardsHarpoon),
	"rightrightarrows":     op(glyph.RightwardsPairedArrows),
	"rightsquigarrow":      op(glyph.RightwardsSquiggleArrow),
	"rightthreetimes":      op(glyph.RightSemidirectProduct),
	"risingdotseq":         op(glyph.ImageOfOrApproximatelyEqualTo),
	"rq":                   letter('’'),
	"rrbracket":            paren(glyph.MathematicalRightWhiteSquareBracket),
	"rtimes":               op(glyph.RightNormalFactorSemidirectProduct),
	"rupee":                normalLetter('₹'),
	"rvert":                paren(glyph.VerticalLine),
	"saturn":               normalLetter('♄'),
	"scriptstyle":          style(token.StyleScriptStyle),
	"scriptscriptstyle":    style(token.StyleScriptScriptStyle),
	"searrow":              op(glyph.SouthEastArrow),
	"sec":                  function("sec"),
	"setminus":             op(glyph.SetMinus),
	"sharp":                normalLetter('♯'),
	"sigma":                letter('σ'),
	"sim":                  op(glyph.TildeOperator),
	"simeq":                op(glyph.AsymptoticallyEqualTo),
	"sin":                  function("sin"),
	"sinh":                 function("sinh"),
	"slashed":               bare(token.KindSlashed),
	"smallsetminus":        op(glyph.SmallReverseSolidus),
	"smile":                op(glyph.Smile),
	"spadesuit":            normalLetter('♠'),
	"sphericalangle":       normalLetter('∢'),
	"sqcap":                op(glyph.SquareCap),
	"sqcup":                op(glyph.SquareCup),
	"sqrt":                 bare(token.KindSqrt),
	"sqsubset":             op(glyph.SquareImageOf),
	"sqsubseteq":           op(glyph.SquareImageOfOrEqualTo),
	"sqsupset":             op(glyph.SquareOriginalOf),
	"sqsupseteq":           op(glyph.SquareOriginalOfOrEqualTo),
	"square":               normalLetter('□'),
	"ss":                   normalLetter('ß'),
	"star":                 op(glyph.StarOperator),
	"subset":               op(glyph.SubsetOf),
	"subseteq":             op(glyph.SubsetOfOrEqualTo),
	"subsetneq":            op(glyph.SubsetOfWithNotEqualTo),
	"succ":                 op(glyph.Succeeds),
	"succeq":               op(glyph.SucceedsAboveSingleLineEqualsSign),
	"sum":                  bigOp(glyph.NArySummation),
	"sun":                  normalLetter('☼'),
	"sup":                  lim("sup"),
	"supset":               op(glyph.SupersetOf),
	"supseteq":             op(glyph.SupersetOfOrEqualTo),
	"supsetneq":            op(glyph.SupersetOfWithNotEqualTo),
	"swarrow":              op(glyph.SouthWestArrow),
	"symbf":                transform(token.TransformBoldItalic),
	"tan":                  function("tan"),
	"tanh":                 function("tanh"),
	"tau":                  letter('τ'),
	"tbinom":               binom(token.FracAttrDisplayStyleFalse),
	"text":                 bare(token.KindText),
	"textbf":               transform(token.TransformBold),
	"textit":               transform(token.TransformItalic),
	"textstyle":            style(token.StyleTextStyle),
	"texttt":               transform(token.TransformMonospace),
	"textyen":              normalLetter('¥'),
	"tfrac":                frac(token.FracAttrDisplayStyleFalse),
	"th":                   normalLetter('þ'),
	"therefore":            normalLetter('∴'),
	"theta":                letter('θ'),
	"tilde":                over(glyph.Tilde),
	"times":                op(glyph.MultiplicationSign),
	"to":                   op(glyph.RightwardsArrow),
	"top":                  op(glyph.DownTack),
	"triangle":             normalLetter('△'),
	"triangleq":            op(glyph.DeltaEqualTo),
	"triangledown":         op(glyph.WhiteDownPointingTriangle),
	"triangleleft":         op(glyph.WhiteLeftPointingTriangle),
	"triangleright":        op(glyph.WhiteRightPointingTriangle),
	"underbrace":           underbrace(glyph.BottomCurlyBracket),
	"underbracket":         underbrace(glyph.BottomSquareBracket),
	"underline":            under(glyph.LowLine),
	"underparen":           underbrace(glyph.BottomParenthesis),
	"underset":             bare(token.KindUnderset),
	"unlhd":                op(glyph.NormalSubgroupOfOrEqualTo),
	"unrhd":                op(glyph.ContainsAsNormalSubgroupOrEqualTo),
	"uparrow":              paren(glyph.UpwardsArrow),
	"updownarrow":          op(glyph.UpDownArrow),
	"upharpoonleft":        op(glyph.UpwardsHarpoonWithBarbLeftwards),
	"upharpoonright":       op(glyph.UpwardsHarpoonWithBarbRightwards),
	"uplus":                op(glyph.MultisetUnion),
	"upsilon":              letter('υ'),
	"upuparrows":           op(glyph.UpwardsPairedArrows),
	"uranus":               normalLetter('♅'),
	"vDash":                op(glyph.True),
	"varepsilon":           letter('ε'),
	"varnothing":           letter('⌀'),
	"varphi":               letter('φ'),
	"varpi":                letter('ϖ'),
	"varrho":               letter('ϱ'),
	"varsigma":             letter('ς'),
	"vartheta":             letter('ϑ'),
	"vartriangle":          op(glyph.WhiteUpPointingTriangle),
	"vdash":                op(glyph.RightTack),
	"vdots":                op(glyph.VerticalEllipsis),
	"vec":                  over(glyph.RightwardsArrow),
	"vee":                  op(glyph.LogicalOr),
	"veebar":                op(glyph.Xor),
	"venus":                normalLetter('♀'),
	"vert":                 paren(glyph.VerticalLine),
	"wedge":                op(glyph.LogicalAnd),
	"widehat":              over(glyph.CircumflexAccent),
	"widetilde":            over(glyph.Tilde),
	"wp":                   function("℘"),
	"wr":                   op(glyph.WreathProduct),
	"xi":                   letter('ξ'),
	"zeta":                 letter('ζ'),
	"{":                    paren(glyph.LeftCurlyBracket),
	"|":                    paren(glyph.DoubleVerticalLine),
	"}":                    paren(glyph.RightCurlyBracket),
}

// Lookup returns the pre-classified token for a control-sequence name
// (without the leading backslash), or a KindUnknownCommand token
// carrying the name if it is not in the table.
func Lookup(name string) token.Token {
	if tok, ok := table[name]; ok {
		return tok
	}
	return token.Token{Kind: token.KindUnknownCommand, Str: name}
}
