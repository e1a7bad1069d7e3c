package glyph

// negated maps an operator to its negated counterpart, used by the
// parser's \not prefix. Only operators with a conventional stroked
// Unicode counterpart are listed; the parser leaves any other operator
// after \not unchanged.
var negated = map[Op]Op{
	AlmostEqualTo:         NotAlmostEqualTo,
	AsymptoticallyEqualTo: NotAsymptoticallyEqualTo,
	ElementOf:             NotAnElementOf,
	EqualsSign:            NotEqualTo,
	GreaterThanOrEqualTo:  NeitherGreaterThanNorEqualTo,
	LessThanOrEqualTo:     NeitherLessThanNorEqualTo,
	Precedes:              DoesNotPrecede,
	SubsetOf:              NotASubsetOf,
	SubsetOfOrEqualTo:     NeitherASubsetOfNorEqualTo,
	Succeeds:              DoesNotSucceed,
	SupersetOf:            NotASupersetOf,
	SupersetOfOrEqualTo:   NeitherASupersetOfNorEqualTo,
}

// Negated returns the negated partner of op, if one is tabulated.
func Negated(op Op) (Op, bool) {
	n, ok := negated[op]
	return n, ok
}
