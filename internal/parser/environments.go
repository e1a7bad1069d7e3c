package parser

import (
	"github.com/mathmlgo/latexmml/internal/ast"
	"github.com/mathmlgo/latexmml/internal/errors"
	"github.com/mathmlgo/latexmml/internal/glyph"
	"github.com/mathmlgo/latexmml/internal/token"
)

// environment parses a complete \begin{name}...\end{name} block. The
// name is read twice, once at \begin and once at \end, and the two
// must match; a fenced wrapper is layered on top of the Table node for
// the environments that imply visible delimiters.
func (p *Parser) environment(cur token.Token) (ast.Ref, *errors.LatexError) {
	if err := p.checkLBrace(); err != nil {
		return ast.NoRef, err
	}
	name, err := p.parseEnvName()
	if err != nil {
		return ast.NoRef, err
	}

	content, gerr := p.parseGroup(token.KindEnd)
	if gerr != nil {
		return ast.NoRef, gerr
	}
	p.advance() // discard End

	node, env, uerr := p.tableNodeFor(cur.Pos, name, content)
	if uerr != nil {
		return ast.NoRef, uerr
	}

	if err := p.checkLBrace(); err != nil {
		return ast.NoRef, err
	}
	endName, err := p.parseEnvName()
	if err != nil {
		return ast.NoRef, err
	}
	if endName != name {
		return ast.NoRef, errors.MismatchedEnvironment(cur.Pos, name, endName)
	}

	_ = env
	return node, nil
}

func (p *Parser) tableNodeFor(pos int, name string, content []ast.Ref) (ast.Ref, ast.Env, *errors.LatexError) {
	switch name {
	case "align", "align*", "aligned":
		env := ast.EnvAlign
		switch name {
		case "align*":
			env = ast.EnvAlignStar
		case "aligned":
			env = ast.EnvAligned
		}
		return p.push(ast.Node{Kind: ast.KindTable, Pos: pos, Children: content, TableEnv: env}), env, nil

	case "cases":
		table := p.push(ast.Node{Kind: ast.KindTable, Pos: pos, Children: content, TableEnv: ast.EnvCases})
		fenced := p.push(ast.Node{Kind: ast.KindFenced, Pos: pos, Open: glyph.LeftCurlyBracket, Close: glyph.Null, Content: table})
		return fenced, ast.EnvCases, nil

	case "matrix":
		return p.push(ast.Node{Kind: ast.KindTable, Pos: pos, Children: content, TableEnv: ast.EnvMatrix}), ast.EnvMatrix, nil

	case "pmatrix", "bmatrix", "vmatrix":
		var env ast.Env
		var open, close glyph.Op
		switch name {
		case "pmatrix":
			env, open, close = ast.EnvPMatrix, glyph.LeftParenthesis, glyph.RightParenthesis
		case "bmatrix":
			env, open, close = ast.EnvBMatrix, glyph.LeftSquareBracket, glyph.RightSquareBracket
		case "vmatrix":
			env, open, close = ast.EnvVMatrix, glyph.VerticalLine, glyph.VerticalLine
		}
		table := p.push(ast.Node{Kind: ast.KindTable, Pos: pos, Children: content, TableEnv: env})
		fenced := p.push(ast.Node{Kind: ast.KindFenced, Pos: pos, Open: open, Close: close, Content: table})
		return fenced, env, nil

	default:
		return ast.NoRef, 0, errors.UnknownEnvironment(pos, name)
	}
}
