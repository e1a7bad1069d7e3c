// Package lexer turns UTF-8 math source into a stream of tagged
// tokens, each carrying the byte offset of its first byte. The lexer
// makes a single pass with one rune of lookahead and never backs up;
// the parser works with one token of lookahead and never rewinds it
// either.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/mathmlgo/latexmml/internal/command"
	"github.com/mathmlgo/latexmml/internal/errors"
	"github.com/mathmlgo/latexmml/internal/glyph"
	"github.com/mathmlgo/latexmml/internal/token"
)

// Lexer scans one math region. TextMode is exported rather than
// hidden behind a setter because the parser flips it around a single
// parse_node call (entering for \text{...}, leaving again once the
// body is consumed) and a plain field read/write is cheaper to reason
// about at every call site than a pair of Enter/Leave methods.
type Lexer struct {
	input string

	pos      int // byte offset of ch
	readPos  int // byte offset of the rune after ch
	ch       rune
	TextMode bool
}

// New returns a Lexer over input, first normalizing it to NFC so that
// combining-character sequences the command table or parser compares
// against compose the way a single typed keystroke would.
func New(input string) *Lexer {
	l := &Lexer{input: norm.NFC.String(input)}
	l.readChar()
	return l
}

// Pos reports the byte offset of the rune currently under the peek
// cursor. The next token returned by Next carries this offset unless
// Next first skips whitespace or a comment.
func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readChar() {
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += size
}

func (l *Lexer) skipComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == '%' || (l.ch != 0 && unicode.IsSpace(l.ch) && isASCII(l.ch)) {
		if l.ch == '%' {
			l.skipComment()
			continue
		}
		l.readChar()
	}
}

func isASCII(r rune) bool { return r < utf8.RuneSelf }

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIAlnum(r rune) bool {
	return isASCIIAlpha(r) || (r >= '0' && r <= '9')
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// readCommand consumes an ASCII-alphabetic run following a backslash,
// or exactly one character if the run would be empty, and returns the
// raw name (without the leading backslash).
func (l *Lexer) readCommand() string {
	start := l.pos
	for isASCIIAlpha(l.ch) {
		l.readChar()
	}
	if l.pos == start {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// Next produces the next token. Outside text mode it skips whitespace
// and line comments before dispatching; inside text mode a run of
// whitespace is folded into a single Whitespace token instead.
func (l *Lexer) Next() token.Token {
	if l.TextMode {
		if l.ch != 0 && isASCII(l.ch) && unicode.IsSpace(l.ch) {
			start := l.pos
			for l.ch != 0 && isASCII(l.ch) && unicode.IsSpace(l.ch) {
				l.readChar()
			}
			return token.Token{Kind: token.KindWhitespace, Pos: start}
		}
	} else {
		l.skipWhitespace()
	}

	pos := l.pos
	ch := l.ch

	switch ch {
	case 0:
		return token.Token{Kind: token.KindEOF, Pos: pos}
	case '\'':
		l.readChar()
		return token.Token{Kind: token.KindPrime, Pos: pos}
	case '{':
		l.readChar()
		return token.Token{Kind: token.KindGroupBegin, Pos: pos}
	case '}':
		l.readChar()
		return token.Token{Kind: token.KindGroupEnd, Pos: pos}
	case '[':
		l.readChar()
		return token.Token{Kind: token.KindSquareBracketOpen, Pos: pos}
	case ']':
		l.readChar()
		return token.Token{Kind: token.KindSquareBracketClose, Pos: pos}
	case '<':
		l.readChar()
		return token.Token{Kind: token.KindOpLessThan, Pos: pos}
	case '>':
		l.readChar()
		return token.Token{Kind: token.KindOpGreaterThan, Pos: pos}
	case '_':
		l.readChar()
		return token.Token{Kind: token.KindUnderscore, Pos: pos}
	case '^':
		l.readChar()
		return token.Token{Kind: token.KindCircumflex, Pos: pos}
	case '&':
		l.readChar()
		return token.Token{Kind: token.KindAmpersand, Pos: pos}
	case '~':
		l.readChar()
		return token.Token{Kind: token.KindNBSP, Pos: pos}
	case ':':
		l.readChar()
		return token.Token{Kind: token.KindColon, Pos: pos}
	case ' ':
		l.readChar()
		return token.Token{Kind: token.KindNormalLetter, Ch: ' ', Pos: pos}
	case '\\':
		l.readChar()
		name := l.readCommand()
		tok := command.Lookup(name)
		tok.Pos = pos
		if l.TextMode && tok.Kind != token.KindUnknownCommand {
			l.skipWhitespace()
		}
		return tok
	}

	if opKind, op, ok := singleCharOperator(ch); ok {
		l.readChar()
		return token.Token{Kind: opKind, Op: op, Pos: pos}
	}

	if isASCIIDigit(ch) {
		l.readChar()
		return token.Token{Kind: token.KindDigit, Ch: ch, Pos: pos}
	}
	if isASCIIAlpha(ch) {
		l.readChar()
		return token.Token{Kind: token.KindLetter, Ch: ch, Pos: pos}
	}
	l.readChar()
	return token.Token{Kind: token.KindNormalLetter, Ch: ch, Pos: pos}
}

// ScanEnvName reads the ASCII-alphanumeric environment name following
// \begin{ or \end{ and the closing brace, entered explicitly by the
// parser (the lexer has no general notion of "environment mode").
func (l *Lexer) ScanEnvName() (string, *errors.LatexError) {
	start := l.pos
	for isASCIIAlnum(l.ch) {
		l.readChar()
	}
	name := l.input[start:l.pos]
	if l.ch != '}' {
		return "", errors.UnparsableEnvName(l.pos)
	}
	l.readChar()
	return name, nil
}

// ScanTextGroup reads verbatim text up to the matching closing brace
// of a brace group (the parser uses it for \genfrac's length
// argument), counting nested braces so a literal `{` or `}` in the
// body doesn't end the scan early. Only \{ and \} are recognized as
// escapes inside the group; any other backslash is kept verbatim.
func (l *Lexer) ScanTextGroup() (string, *errors.LatexError) {
	depth := 1
	start := l.pos
	for {
		if l.ch == 0 {
			return "", errors.UnclosedGroup(start, token.Token{Kind: token.KindGroupEnd})
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == '{' || l.ch == '}' {
				l.readChar()
			}
			continue
		}
		if l.ch == '{' {
			depth++
		} else if l.ch == '}' {
			depth--
			if depth == 0 {
				end := l.pos
				l.readChar()
				return l.input[start:end], nil
			}
		}
		l.readChar()
	}
}

// singleCharOperator maps the single-character operator and paren
// lexemes to their token kind and glyph, per the fixed punctuation
// table: most become Operator, the parenthesis-family characters
// become Paren so the parser can treat them as stretchy fences.
func singleCharOperator(ch rune) (token.Kind, glyph.Op, bool) {
	switch ch {
	case '=':
		return token.KindOperator, glyph.EqualsSign, true
	case ';':
		return token.KindOperator, glyph.Semicolon, true
	case ',':
		return token.KindOperator, glyph.Comma, true
	case '.':
		return token.KindOperator, glyph.FullStop, true
	case '+':
		return token.KindOperator, glyph.PlusSign, true
	case '-':
		return token.KindOperator, glyph.MinusSign, true
	case '*':
		return token.KindOperator, glyph.AsteriskOperator, true
	case '/':
		return token.KindOperator, glyph.Solidus, true
	case '!':
		return token.KindOperator, glyph.ExclamationMark, true
	case '(':
		return token.KindParen, glyph.LeftParenthesis, true
	case ')':
		return token.KindParen, glyph.RightParenthesis, true
	case '|':
		return token.KindParen, glyph.VerticalLine, true
	default:
		return 0, 0, false
	}
}
