// Package latexmml is the public entry point for the math-markup
// parser: turning a LaTeX math expression into an arena-resident AST,
// and splitting inline/block math spans out of a larger document so a
// host can convert each one in turn. Rendering the AST to MathML is a
// concern for a host to supply, not something this package does.
package latexmml

import (
	"github.com/mathmlgo/latexmml/internal/ast"
	"github.com/mathmlgo/latexmml/internal/errors"
	"github.com/mathmlgo/latexmml/internal/parser"
	"github.com/mathmlgo/latexmml/internal/replace"
)

// Tree is the parsed representation of one math expression.
type Tree = ast.Tree

// ParseError is returned by Parse when the input cannot be parsed; it
// carries the byte offset of the offending token alongside a message.
type ParseError = errors.LatexError

// Parse parses a single LaTeX math expression (no surrounding
// delimiters) into a Tree, or returns the first ParseError
// encountered.
func Parse(input string) (*Tree, *ParseError) {
	p := parser.New(input)
	if _, err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Tree(), nil
}

// Dump renders tree's root as an indented debug outline, for the parse
// and replace CLI commands. It is not a stable serialization format.
func Dump(tree *Tree) string {
	return tree.Dump(tree.Root)
}

// Display says whether a math span was delimited as inline or block
// math, passed to a Replacer's ConvertFunc so it can choose an
// appropriate output attribute.
type Display = replace.Display

const (
	DisplayInline = replace.DisplayInline
	DisplayBlock  = replace.DisplayBlock
)

// ConvertFunc converts the content of one delimited math span, in the
// given Display mode, appending its result to out.
type ConvertFunc = replace.ConvertFunc

// ConversionError is returned by a Replacer's Replace method.
type ConversionError = replace.ConversionError

// Replacer splits inline and block math spans out of a larger
// document and hands each one to a ConvertFunc supplied by the host.
type Replacer = replace.Replacer

// NewReplacer returns a Replacer watching for inlineDelim and
// blockDelim, each given as an (opening, closing) pair.
func NewReplacer(inlineDelim, blockDelim [2]string) *Replacer {
	return replace.NewReplacer(inlineDelim, blockDelim)
}
