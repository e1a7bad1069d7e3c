package parser

import "github.com/mathmlgo/latexmml/internal/token"

// transformRange maps the Latin upper/lower-case letter blocks onto a
// contiguous run of Mathematical Alphanumeric Symbols (U+1D400 block),
// the way every LaTeX-to-MathML identifier builder does: most letters
// are a fixed offset from their ASCII code point, with a handful of
// legacy pre-block code points substituted in for letters that already
// had an older symbol (Planck's h, the blackboard N, ...).
type transformRange struct {
	upperBase, lowerBase rune
}

var transformRanges = map[token.TextTransform]transformRange{
	token.TransformBold:         {0x1D400, 0x1D41A},
	token.TransformItalic:       {0x1D434, 0x1D44E},
	token.TransformBoldItalic:   {0x1D468, 0x1D482},
	token.TransformScript:       {0x1D49C, 0x1D4B6},
	token.TransformFraktur:      {0x1D504, 0x1D51E},
	token.TransformSansSerif:    {0x1D5A0, 0x1D5BA},
	token.TransformMonospace:   {0x1D670, 0x1D68A},
	token.TransformDoubleStruck: {0x1D538, 0x1D552},
}

// exceptions holds the legacy code points every non-bold, non-sans,
// non-monospace alphabet carries for a few letters: the Unicode block
// reserves those slots for the pre-existing symbol rather than adding
// a duplicate.
var scriptExceptions = map[rune]rune{
	'B': 0x212C, 'E': 0x2130, 'F': 0x2131, 'H': 0x210B, 'I': 0x2110,
	'L': 0x2112, 'M': 0x2133, 'R': 0x211B,
	'e': 0x212F, 'g': 0x210A, 'o': 0x2134,
}

var frakturExceptions = map[rune]rune{
	'C': 0x212D, 'H': 0x210C, 'I': 0x2111, 'R': 0x211C, 'Z': 0x2128,
}

var doubleStruckExceptions = map[rune]rune{
	'C': 0x2102, 'H': 0x210D, 'N': 0x2115, 'P': 0x2119,
	'Q': 0x211A, 'R': 0x211D, 'Z': 0x2124,
}

var italicExceptions = map[rune]rune{
	'h': 0x210E,
}

var digitBases = map[token.TextTransform]rune{
	token.TransformBold:         0x1D7CE,
	token.TransformDoubleStruck: 0x1D7D8,
	token.TransformSansSerif:    0x1D7E2,
	token.TransformMonospace:    0x1D7F6,
}

// transformRune maps ch through tf, returning ch unchanged if tf has
// no effect on it (punctuation, or a transform with no digit range).
func transformRune(ch rune, tf token.TextTransform) rune {
	if tf == token.TransformNone {
		return ch
	}

	if ch >= '0' && ch <= '9' {
		if base, ok := digitBases[tf]; ok {
			return base + (ch - '0')
		}
		return ch
	}

	var exceptions map[rune]rune
	switch tf {
	case token.TransformScript:
		exceptions = scriptExceptions
	case token.TransformFraktur:
		exceptions = frakturExceptions
	case token.TransformDoubleStruck:
		exceptions = doubleStruckExceptions
	case token.TransformItalic:
		exceptions = italicExceptions
	}
	if exceptions != nil {
		if mapped, ok := exceptions[ch]; ok {
			return mapped
		}
	}

	rng, ok := transformRanges[tf]
	if !ok {
		return ch
	}
	switch {
	case ch >= 'A' && ch <= 'Z':
		return rng.upperBase + (ch - 'A')
	case ch >= 'a' && ch <= 'z':
		return rng.lowerBase + (ch - 'a')
	default:
		return ch
	}
}

// transformString maps every rune of s through tf.
func transformString(s string, tf token.TextTransform) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = transformRune(r, tf)
	}
	return string(runes)
}
