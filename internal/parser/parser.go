// Package parser implements the recursive-descent parser that turns
// a lexer's token stream into an arena-resident AST. The parser owns
// the lexer outright: callers never see individual tokens, only the
// resulting Tree or a *errors.LatexError.
package parser

import (
	"github.com/mathmlgo/latexmml/internal/ast"
	"github.com/mathmlgo/latexmml/internal/errors"
	"github.com/mathmlgo/latexmml/internal/lexer"
	"github.com/mathmlgo/latexmml/internal/token"
)

// Parser consumes one token of lookahead. tf and variant track the
// transform/variant currently in effect for identifier construction;
// both are saved and restored around the single parse_single_token
// call a \mathXX/\textXX command wraps, rather than threaded as
// explicit arguments through every production.
type Parser struct {
	lex  *lexer.Lexer
	peek token.Token

	tf      token.TextTransform
	hasTF   bool
	variant token.Variant

	tree *ast.Tree
}

// New returns a Parser over input, backed by a freshly allocated Tree
// sized in proportion to the input length.
func New(input string) *Parser {
	p := &Parser{
		lex:  lexer.New(input),
		tree: ast.NewTree(input, len(input)/2+8),
	}
	p.advance()
	return p
}

// Tree returns the parser's arena-backed tree. Valid only after Parse
// has returned successfully.
func (p *Parser) Tree() *ast.Tree {
	return p.tree
}

// advance discards the current peek and loads the next token from the
// lexer, returning the token that was discarded.
func (p *Parser) advance() token.Token {
	next := p.lex.Next()
	prev := p.peek
	p.peek = next
	return prev
}

// Parse consumes the entire input and returns a PseudoRow of the
// top-level nodes, or the first error encountered.
func (p *Parser) Parse() (ast.Ref, *errors.LatexError) {
	var children []ast.Ref
	for {
		cur := p.advance()
		if cur.Kind == token.KindEOF {
			break
		}
		node, err := p.parseNode(cur)
		if err != nil {
			return ast.NoRef, err
		}
		children = append(children, node)
	}
	root := p.tree.Push(ast.Node{Kind: ast.KindPseudoRow, Children: children})
	p.tree.Root = root
	return root, nil
}

// parseNode reads a single node, then folds any immediately following
// sub/superscript bounds onto it.
func (p *Parser) parseNode(cur token.Token) (ast.Ref, *errors.LatexError) {
	target, err := p.parseSingleNode(cur)
	if err != nil {
		return ast.NoRef, err
	}

	sub, sup, err := p.getBounds()
	if err != nil {
		return ast.NoRef, err
	}
	switch {
	case sub != ast.NoRef && sup != ast.NoRef:
		return p.tree.Push(ast.Node{Kind: ast.KindSubSup, Target: target, Sub: sub, Sup: sup}), nil
	case sub != ast.NoRef:
		return p.tree.Push(ast.Node{Kind: ast.KindSubscript, Target: target, Sub: sub}), nil
	case sup != ast.NoRef:
		return p.tree.Push(ast.Node{Kind: ast.KindSuperscript, Target: target, Sup: sup}), nil
	default:
		return target, nil
	}
}

// parseToken advances and parses the resulting token with the full
// bound-folding parseNode.
func (p *Parser) parseToken() (ast.Ref, *errors.LatexError) {
	return p.parseNode(p.advance())
}

// parseSingleToken advances and parses the resulting token without
// attempting to fold trailing sub/superscript bounds onto it. Used
// where the grammar already knows the next node is a bound, a target
// consumed whole by a builder, or otherwise not eligible for further
// scripting at this position.
func (p *Parser) parseSingleToken() (ast.Ref, *errors.LatexError) {
	return p.parseSingleNode(p.advance())
}

// parseGroup consumes nodes until peek matches end (compared by Kind
// only; payload is ignored). The terminator itself is left in peek
// for the caller to discard explicitly.
func (p *Parser) parseGroup(end token.Kind) ([]ast.Ref, *errors.LatexError) {
	var children []ast.Ref
	for p.peek.Kind != end {
		next := p.advance()
		if next.Kind == token.KindEOF {
			return nil, errors.UnclosedGroup(next.Pos, token.Token{Kind: end})
		}
		node, err := p.parseNode(next)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return children, nil
}

// parseTextGroup reads a verbatim text group via the lexer's
// brace-counting scan. The opening `{` must still be sitting in peek;
// it is discarded here.
func (p *Parser) parseTextGroup() (string, *errors.LatexError) {
	content, err := p.lex.ScanTextGroup()
	opening := p.advance()
	if err != nil {
		return "", errors.UnclosedGroup(opening.Pos, token.Token{Kind: token.KindGroupEnd})
	}
	return content, nil
}

// parseEnvName reads a \begin{name} or \end{name} environment name via
// the lexer's dedicated ASCII-alphanumeric scan mode. The opening `{`
// must still be sitting in peek; it is discarded here. Unlike
// parseTextGroup, the lexer's own error already carries the right
// LatexError kind (UnparsableEnvName), so it is returned unchanged.
func (p *Parser) parseEnvName() (string, *errors.LatexError) {
	name, err := p.lex.ScanEnvName()
	p.advance()
	if err != nil {
		return "", err
	}
	return name, nil
}

// checkLBrace requires peek to be a GroupBegin without consuming it.
func (p *Parser) checkLBrace() *errors.LatexError {
	if p.peek.Kind != token.KindGroupBegin {
		got := p.advance()
		return errors.UnexpectedToken(got.Pos, token.Token{Kind: token.KindGroupBegin}, got)
	}
	return nil
}

// squeeze collapses a single-child list into its lone child, and
// wraps anything else (including the empty list) in a Row.
func (p *Parser) squeeze(children []ast.Ref, style token.Style, hasStyle bool) ast.Ref {
	if len(children) == 1 && !hasStyle {
		return children[0]
	}
	return p.tree.Push(ast.Node{Kind: ast.KindRow, Children: children, RowStyle: style, HasRowStyle: hasStyle})
}
