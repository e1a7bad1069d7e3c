package parser

import (
	"github.com/mathmlgo/latexmml/internal/ast"
	"github.com/mathmlgo/latexmml/internal/errors"
	"github.com/mathmlgo/latexmml/internal/glyph"
	"github.com/mathmlgo/latexmml/internal/token"
)

// getBounds collects leading primes, then at most one of `_`/`^` in
// either order, folding the result into (sub, sup) Refs (ast.NoRef
// when absent). Primes are appended to whatever superscript results,
// wrapped in a Row if more than one node ends up there.
func (p *Parser) getBounds() (sub, sup ast.Ref, err *errors.LatexError) {
	sub, sup = ast.NoRef, ast.NoRef

	var primes []ast.Ref
	for p.peek.Kind == token.KindPrime {
		p.advance()
		primes = append(primes, p.tree.Push(ast.Node{Kind: ast.KindOperator, Op: glyph.Prime}))
	}

	firstUnderscore := p.peek.Kind == token.KindUnderscore
	firstCircumflex := p.peek.Kind == token.KindCircumflex

	if firstUnderscore || firstCircumflex {
		first, ferr := p.getSubOrSup()
		if ferr != nil {
			return ast.NoRef, ast.NoRef, ferr
		}

		secondUnderscore := p.peek.Kind == token.KindUnderscore
		secondCircumflex := p.peek.Kind == token.KindCircumflex

		switch {
		case (!firstUnderscore && secondCircumflex) || (firstUnderscore && secondUnderscore):
			got := p.advance()
			return ast.NoRef, ast.NoRef, errors.CannotBeUsedHere(got.Pos, got, errors.AfterOpOrIdent)
		case (firstUnderscore && secondCircumflex) || (!firstUnderscore && secondUnderscore):
			second, serr := p.getSubOrSup()
			if serr != nil {
				return ast.NoRef, ast.NoRef, serr
			}
			if firstUnderscore {
				sub, sup = first, second
			} else {
				sub, sup = second, first
			}
		case firstUnderscore:
			sub = first
		default:
			sup = first
		}
	}

	if len(primes) > 0 {
		if sup != ast.NoRef {
			primes = append(primes, sup)
		}
		sup = p.squeeze(primes, token.StyleNone, false)
	}

	return sub, sup, nil
}

// getSubOrSup discards the `_`/`^` token and parses the single node
// that follows, rejecting another bound-introducing token immediately
// after it (`__`, `^^`, a stray prime).
func (p *Parser) getSubOrSup() (ast.Ref, *errors.LatexError) {
	p.advance()
	next := p.advance()
	if next.Kind == token.KindUnderscore || next.Kind == token.KindCircumflex || next.Kind == token.KindPrime {
		return ast.NoRef, errors.CannotBeUsedHere(next.Pos, next, errors.AfterOpOrIdent)
	}
	return p.parseSingleNode(next)
}
