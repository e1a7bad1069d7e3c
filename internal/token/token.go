// Package token defines the closed token taxonomy produced by the lexer.
//
// Token is a tagged union: a single Kind discriminant plus a payload of
// fields whose meaning depends on Kind. This avoids the open
// interface-based polymorphism a generic Go AST might reach for — the
// token set is closed and known at compile time, so a flat struct with
// a switch on Kind is both cheaper and easier to exhaust-check than a
// family of types implementing a marker interface.
package token

import "github.com/mathmlgo/latexmml/internal/glyph"

// Kind discriminates the members of the Token sum type.
type Kind int

const (
	KindEOF Kind = iota

	// Literals
	KindDigit
	KindLetter       // italic-by-default identifier character
	KindNormalLetter // upright identifier character
	KindNumber       // reserved for lexers that aggregate digit runs themselves
	KindPrime
	KindWhitespace
	KindNewline
	KindNBSP

	// Operator-bearing
	KindOperator
	KindParen
	KindBigOp
	KindIntegral
	KindOverUnder      // \over, \under style accents (Over/Under in the source grammar)
	KindOverUnderBrace // \overbrace, \underbrace

	// Structural
	KindGroupBegin
	KindGroupEnd
	KindSquareBracketOpen
	KindSquareBracketClose
	KindLeft
	KindRight
	KindMiddle
	KindBegin
	KindEnd
	KindAmpersand
	KindUnderscore
	KindCircumflex
	KindColon
	KindLimits
	KindNot
	KindMathstrut
	KindSlashed
	KindOperatorName
	KindText

	// Builders
	KindFrac
	KindBinom
	KindGenfrac
	KindSqrt
	KindOverset
	KindUnderset
	KindBig
	KindStyle
	KindTransform
	KindNormalVariant // \mathrm
	KindFunction
	KindLim
	KindSpace
	KindNewLine
	KindOpAmpersand
	KindOpLessThan
	KindOpGreaterThan

	// Error carrier
	KindUnknownCommand
)

// ParenAttr distinguishes an "ordinary" paren glyph (rendered as an
// identifier) from a fence operator. No command-table entry or lexer
// token sets ParenAttrOrdinary; \{ and ( are fence operators.
type ParenAttr int

const (
	ParenAttrNone ParenAttr = iota
	ParenAttrOrdinary
)

// FracAttr tags the style carried by \frac-family builders.
type FracAttr int

const (
	FracAttrNone FracAttr = iota
	FracAttrDisplayStyleTrue
	FracAttrDisplayStyleFalse
	FracAttrCFracStyle
)

// Style is an explicit \displaystyle/\textstyle/\scriptstyle switch.
type Style int

const (
	StyleNone Style = iota
	StyleDisplayStyle
	StyleTextStyle
	StyleScriptStyle
	StyleScriptScriptStyle
)

// TextTransform is a character-mapping applied when building identifiers
// (bold, italic, script, fraktur, ...).
type TextTransform int

const (
	TransformNone TextTransform = iota
	TransformBold
	TransformItalic
	TransformBoldItalic
	TransformScript
	TransformFraktur
	TransformSansSerif
	TransformMonospace
	TransformDoubleStruck
)

// Variant marks an explicit math-variant override (currently only Normal,
// selected by \mathrm).
type Variant int

const (
	VariantNone Variant = iota
	VariantNormal
)

// Token is the tagged union produced by the lexer. Pos is the byte
// offset of the first byte of the lexeme in the NFC-normalized input
// the lexer scans, which equals the original input unless
// normalization changed it.
type Token struct {
	Kind Kind
	Pos  int

	Op        glyph.Op
	Ch        rune
	Str       string // function/lim name, space amount, big size, unknown command name
	ParenAttr ParenAttr
	Stretchy  bool
	IsOver    bool // true for Over/Overbrace variants, false for Under/Underbrace
	FracAttr  FracAttr
	Style     Style
	Transform TextTransform
	Variant   Variant
}

// New builds a bare token of the given kind at the given position.
func New(kind Kind, pos int) Token { return Token{Kind: kind, Pos: pos} }

// String renders a human-readable, non-exhaustive description used in
// error messages and debug dumps.
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "end of input"
	case KindDigit:
		return "digit"
	case KindLetter, KindNormalLetter:
		return string(t.Ch)
	case KindOperator:
		return t.Op.String()
	case KindParen:
		return t.Op.String()
	case KindBigOp:
		return t.Op.String()
	case KindIntegral:
		return t.Op.String()
	case KindGroupBegin:
		return "{"
	case KindGroupEnd:
		return "}"
	case KindSquareBracketOpen:
		return "["
	case KindSquareBracketClose:
		return "]"
	case KindLeft:
		return "\\left"
	case KindRight:
		return "\\right"
	case KindMiddle:
		return "\\middle"
	case KindBegin:
		return "\\begin"
	case KindEnd:
		return "\\end"
	case KindAmpersand:
		return "&"
	case KindUnderscore:
		return "_"
	case KindCircumflex:
		return "^"
	case KindColon:
		return ":"
	case KindLimits:
		return "\\limits"
	case KindNot:
		return "\\not"
	case KindFunction, KindLim:
		return t.Str
	case KindUnknownCommand:
		return "\\" + t.Str
	default:
		return kindNames[t.Kind]
	}
}

var kindNames = map[Kind]string{
	KindNumber:             "number",
	KindPrime:              "prime",
	KindWhitespace:         "whitespace",
	KindNewline:            "newline",
	KindNBSP:               "non-breaking space",
	KindOverUnder:          "accent",
	KindOverUnderBrace:     "brace accent",
	KindMathstrut:          "\\mathstrut",
	KindSlashed:            "\\slashed",
	KindOperatorName:       "\\operatorname",
	KindText:               "\\text",
	KindFrac:               "\\frac",
	KindBinom:              "\\binom",
	KindGenfrac:            "\\genfrac",
	KindSqrt:               "\\sqrt",
	KindOverset:            "\\overset",
	KindUnderset:           "\\underset",
	KindBig:                "\\big",
	KindStyle:              "style switch",
	KindTransform:          "text transform",
	KindNormalVariant:      "\\mathrm",
	KindSpace:              "space",
	KindNewLine:            "\\\\",
	KindOpAmpersand:        "\\&",
	KindOpLessThan:         "<",
	KindOpGreaterThan:      ">",
}
