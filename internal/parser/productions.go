package parser

import (
	"strings"

	"github.com/mathmlgo/latexmml/internal/arena"
	"github.com/mathmlgo/latexmml/internal/ast"
	"github.com/mathmlgo/latexmml/internal/errors"
	"github.com/mathmlgo/latexmml/internal/glyph"
	"github.com/mathmlgo/latexmml/internal/token"
)

// parseSingleNode builds exactly one node from cur without attempting
// to fold trailing sub/superscript bounds onto it — that is
// parseNode's job. Call this only when the caller already knows no
// further scripting should be attempted at this position (e.g. a bound
// itself, or a builder's child slot).
func (p *Parser) parseSingleNode(cur token.Token) (ast.Ref, *errors.LatexError) {
	switch cur.Kind {

	case token.KindDigit:
		return p.push(p.numberNode(cur)), nil

	case token.KindLetter:
		ch := p.applyTransform(cur.Ch)
		return p.push(ast.Node{Kind: ast.KindSingleLetterIdent, Pos: cur.Pos, Ch: ch, Variant: p.variantFor()}), nil

	case token.KindNormalLetter:
		ch := p.applyTransform(cur.Ch)
		return p.push(ast.Node{Kind: ast.KindSingleLetterIdent, Pos: cur.Pos, Ch: ch, Variant: token.VariantNormal}), nil

	case token.KindOperator:
		if p.hasTF {
			return p.push(ast.Node{Kind: ast.KindSingleLetterIdent, Pos: cur.Pos, Ch: transformRune(cur.Op.Rune(), p.tf)}), nil
		}
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: cur.Op}), nil

	case token.KindOpGreaterThan:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: glyph.GreaterThanSign}), nil
	case token.KindOpLessThan:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: glyph.LessThanSign}), nil

	case token.KindOpAmpersand:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: '&'}), nil

	case token.KindFunction:
		return p.pushIdent(cur.Str), nil

	case token.KindSpace:
		return p.push(ast.Node{Kind: ast.KindSpace, Pos: cur.Pos, StrSlice: p.tree.Strings.Append(cur.Str)}), nil

	case token.KindWhitespace, token.KindNBSP:
		return p.push(ast.Node{Kind: ast.KindText, Pos: cur.Pos, StrSlice: p.tree.Strings.Append(" ")}), nil

	case token.KindSqrt:
		return p.sqrt(cur)

	case token.KindFrac:
		return p.frac(cur, false)
	case token.KindBinom:
		return p.frac(cur, true)

	case token.KindGenfrac:
		return p.genfrac(cur)

	case token.KindOverUnder:
		target, err := p.parseToken()
		if err != nil {
			return ast.NoRef, err
		}
		kind := ast.KindUnderOp
		if cur.IsOver {
			kind = ast.KindOverOp
		}
		return p.push(ast.Node{Kind: kind, Pos: cur.Pos, Op: cur.Op, Accent: true, Target: target}), nil

	case token.KindOverset, token.KindUnderset:
		symbol, err := p.parseToken()
		if err != nil {
			return ast.NoRef, err
		}
		target, err := p.parseToken()
		if err != nil {
			return ast.NoRef, err
		}
		kind := ast.KindUnderset
		if cur.Kind == token.KindOverset {
			kind = ast.KindOverset
		}
		return p.push(ast.Node{Kind: kind, Pos: cur.Pos, Symbol: symbol, Target: target}), nil

	case token.KindOverUnderBrace:
		return p.overUnderBrace(cur)

	case token.KindBigOp:
		return p.bigOp(cur)

	case token.KindIntegral:
		return p.integral(cur)

	case token.KindLim:
		return p.lim(cur)

	case token.KindSlashed:
		return p.slashed(cur)

	case token.KindNot:
		return p.not(cur)

	case token.KindNormalVariant, token.KindTransform:
		return p.withVariantOrTransform(cur)

	case token.KindColon:
		return p.colon(cur)

	case token.KindGroupBegin:
		children, err := p.parseGroup(token.KindGroupEnd)
		if err != nil {
			return ast.NoRef, err
		}
		p.advance() // discard GroupEnd
		return p.squeeze(children, token.StyleNone, false), nil

	case token.KindParen:
		if cur.ParenAttr == token.ParenAttrOrdinary {
			return p.push(ast.Node{Kind: ast.KindSingleLetterIdent, Pos: cur.Pos, Ch: cur.Op.Rune()}), nil
		}
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: cur.Op, Stretchy: false}), nil

	case token.KindSquareBracketClose:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: glyph.RightSquareBracket, Stretchy: false}), nil

	case token.KindLeft:
		return p.left(cur)

	case token.KindMiddle:
		return p.middle(cur)

	case token.KindBig:
		return p.sizedParen(cur)

	case token.KindBegin:
		return p.environment(cur)

	case token.KindOperatorName:
		return p.operatorName(cur)

	case token.KindText:
		return p.text(cur)

	case token.KindAmpersand:
		return p.push(ast.Node{Kind: ast.KindColumnSeparator, Pos: cur.Pos}), nil
	case token.KindNewLine:
		return p.push(ast.Node{Kind: ast.KindRowSeparator, Pos: cur.Pos}), nil
	case token.KindMathstrut:
		return p.push(ast.Node{Kind: ast.KindMathstrut, Pos: cur.Pos}), nil

	case token.KindStyle:
		children, err := p.parseGroup(token.KindGroupEnd)
		if err != nil {
			return ast.NoRef, err
		}
		return p.push(ast.Node{Kind: ast.KindRow, Pos: cur.Pos, Children: children, RowStyle: cur.Style, HasRowStyle: true}), nil

	case token.KindUnknownCommand:
		return ast.NoRef, errors.UnknownCommand(cur.Pos, cur.Str)

	case token.KindCircumflex, token.KindPrime:
		return ast.NoRef, errors.CannotBeUsedHere(cur.Pos, cur, errors.AfterOpOrIdent)

	case token.KindUnderscore:
		sub, err := p.parseSingleToken()
		if err != nil {
			return ast.NoRef, err
		}
		base, err := p.parseSingleToken()
		if err != nil {
			return ast.NoRef, err
		}
		return p.push(ast.Node{Kind: ast.KindMultiscript, Pos: cur.Pos, Base: base, Sub: sub}), nil

	case token.KindLimits:
		return ast.NoRef, errors.CannotBeUsedHere(cur.Pos, cur, errors.AfterBigOp)

	case token.KindEOF:
		return ast.NoRef, errors.UnexpectedEOF(cur.Pos)

	case token.KindEnd, token.KindRight, token.KindGroupEnd:
		return ast.NoRef, errors.UnexpectedClose(cur.Pos, cur)

	default:
		return ast.NoRef, errors.UnexpectedEOF(cur.Pos)
	}
}

func (p *Parser) push(n ast.Node) ast.Ref {
	return p.tree.Push(n)
}

func (p *Parser) pushIdent(name string) ast.Ref {
	return p.push(ast.Node{Kind: ast.KindMultiLetterIdent, StrSlice: p.tree.Strings.Append(name)})
}

// numberNode builds the leaf for a digit token, applying the active
// text transform by synthesizing a multi-letter identifier instead of
// a bare Number — a transformed digit is no longer a plain number for
// rendering purposes.
func (p *Parser) numberNode(cur token.Token) ast.Node {
	digit := string(cur.Ch)
	if p.hasTF {
		return ast.Node{Kind: ast.KindMultiLetterIdent, Pos: cur.Pos, StrSlice: p.tree.Strings.Append(transformString(digit, p.tf))}
	}
	return ast.Node{Kind: ast.KindNumber, Pos: cur.Pos, StrSlice: p.tree.Strings.Append(digit)}
}

func (p *Parser) applyTransform(ch rune) rune {
	if p.hasTF {
		return transformRune(ch, p.tf)
	}
	return ch
}

func (p *Parser) variantFor() token.Variant {
	return p.variant
}

func (p *Parser) sqrt(cur token.Token) (ast.Ref, *errors.LatexError) {
	next := p.advance()
	if next.Kind == token.KindSquareBracketOpen {
		degree, err := p.parseGroup(token.KindSquareBracketClose)
		if err != nil {
			return ast.NoRef, err
		}
		p.advance() // discard ]
		content, cerr := p.parseToken()
		if cerr != nil {
			return ast.NoRef, cerr
		}
		return p.push(ast.Node{Kind: ast.KindRoot, Pos: cur.Pos, Degree: p.squeeze(degree, token.StyleNone, false), Target: content}), nil
	}
	content, err := p.parseNode(next)
	if err != nil {
		return ast.NoRef, err
	}
	return p.push(ast.Node{Kind: ast.KindSqrt, Pos: cur.Pos, Target: content}), nil
}

func (p *Parser) frac(cur token.Token, binom bool) (ast.Ref, *errors.LatexError) {
	num, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}
	den, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}
	fracNode := ast.Node{Kind: ast.KindFrac, Pos: cur.Pos, Num: num, Den: den, FracStyle: styleFromFracAttr(cur.FracAttr)}
	if binom {
		fracNode.HasThickness = true
		fracNode.LineThickness = p.tree.Strings.Append("0")
		content := p.push(fracNode)
		return p.push(ast.Node{Kind: ast.KindFenced, Pos: cur.Pos, Open: glyph.LeftParenthesis, Close: glyph.RightParenthesis, Content: content}), nil
	}
	return p.push(fracNode), nil
}

func styleFromFracAttr(attr token.FracAttr) token.Style {
	switch attr {
	case token.FracAttrDisplayStyleTrue:
		return token.StyleDisplayStyle
	case token.FracAttrDisplayStyleFalse:
		return token.StyleTextStyle
	default:
		return token.StyleNone
	}
}

func (p *Parser) genfrac(cur token.Token) (ast.Ref, *errors.LatexError) {
	openRef, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}
	open, oerr := p.operatorOrEmpty(openRef)
	if oerr != nil {
		return ast.NoRef, oerr
	}
	closeRef, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}
	closeOp, cerr := p.operatorOrEmpty(closeRef)
	if cerr != nil {
		return ast.NoRef, cerr
	}
	if lerr := p.checkLBrace(); lerr != nil {
		return ast.NoRef, lerr
	}
	lengthText, lerr := p.parseTextGroup()
	if lerr != nil {
		return ast.NoRef, lerr
	}
	hasThickness := false
	switch strings.TrimSpace(lengthText) {
	case "":
	case "0pt":
		hasThickness = true
	default:
		return ast.NoRef, errors.ExpectedLength(cur.Pos, lengthText)
	}

	styleRef, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}
	styleVal, hasStyle, serr := p.styleDigitOrEmpty(styleRef)
	if serr != nil {
		return ast.NoRef, serr
	}

	num, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}
	den, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}

	fracNode := ast.Node{Kind: ast.KindFrac, Pos: cur.Pos, Num: num, Den: den}
	if hasThickness {
		fracNode.HasThickness = true
		fracNode.LineThickness = p.tree.Strings.Append("0")
	}
	content := p.push(fracNode)

	fenced := ast.Node{Kind: ast.KindFenced, Pos: cur.Pos, Open: open, Close: closeOp, Content: content}
	if hasStyle {
		fenced.RowStyle = styleVal
		fenced.HasRowStyle = true
	}
	return p.push(fenced), nil
}

// operatorOrEmpty extracts the operator glyph from a genfrac
// delimiter slot, which accepts either a bare operator or an empty
// group (standing for the null/absent fence).
func (p *Parser) operatorOrEmpty(ref ast.Ref) (glyph.Op, *errors.LatexError) {
	n := p.tree.Get(ref)
	switch {
	case n.Kind == ast.KindOperator:
		return n.Op, nil
	case (n.Kind == ast.KindRow || n.Kind == ast.KindPseudoRow) && len(n.Children) == 0:
		return glyph.Null, nil
	default:
		return glyph.Null, errors.UnexpectedEOF(n.Pos)
	}
}

func (p *Parser) styleDigitOrEmpty(ref ast.Ref) (token.Style, bool, *errors.LatexError) {
	n := p.tree.Get(ref)
	switch {
	case n.Kind == ast.KindNumber:
		switch p.tree.Text(n.StrSlice) {
		case "0":
			return token.StyleDisplayStyle, true, nil
		case "1":
			return token.StyleTextStyle, true, nil
		case "2":
			return token.StyleScriptStyle, true, nil
		case "3":
			return token.StyleScriptScriptStyle, true, nil
		default:
			return token.StyleNone, false, errors.UnexpectedEOF(n.Pos)
		}
	case (n.Kind == ast.KindRow || n.Kind == ast.KindPseudoRow) && len(n.Children) == 0:
		return token.StyleNone, false, nil
	default:
		return token.StyleNone, false, errors.UnexpectedEOF(n.Pos)
	}
}

func (p *Parser) overUnderBrace(cur token.Token) (ast.Ref, *errors.LatexError) {
	target, err := p.parseSingleToken()
	if err != nil {
		return ast.NoRef, err
	}
	op := p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: cur.Op})

	wantsExplanation := (cur.IsOver && p.peek.Kind == token.KindCircumflex) ||
		(!cur.IsOver && p.peek.Kind == token.KindUnderscore)
	if !wantsExplanation {
		kind := ast.KindUnderset
		if cur.IsOver {
			kind = ast.KindOverset
		}
		return p.push(ast.Node{Kind: kind, Pos: cur.Pos, Symbol: op, Target: target}), nil
	}

	p.advance() // discard ^ or _
	expl, eerr := p.parseSingleToken()
	if eerr != nil {
		return ast.NoRef, eerr
	}
	if cur.IsOver {
		inner := p.push(ast.Node{Kind: ast.KindOverset, Pos: cur.Pos, Symbol: expl, Target: op})
		return p.push(ast.Node{Kind: ast.KindOverset, Pos: cur.Pos, Symbol: inner, Target: target}), nil
	}
	inner := p.push(ast.Node{Kind: ast.KindUnderset, Pos: cur.Pos, Symbol: expl, Target: op})
	return p.push(ast.Node{Kind: ast.KindUnderset, Pos: cur.Pos, Symbol: inner, Target: target}), nil
}

func (p *Parser) bigOp(cur token.Token) (ast.Ref, *errors.LatexError) {
	noMovable := false
	if p.peek.Kind == token.KindLimits {
		p.advance()
		noMovable = true
	}
	target := p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: cur.Op, NoMovableLimits: noMovable})
	return p.wrapUnderOver(cur.Pos, target)
}

func (p *Parser) integral(cur token.Token) (ast.Ref, *errors.LatexError) {
	if p.peek.Kind == token.KindLimits {
		p.advance()
		target := p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: cur.Op})
		return p.wrapUnderOver(cur.Pos, target)
	}
	target := p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: cur.Op})
	sub, sup, err := p.getBounds()
	if err != nil {
		return ast.NoRef, err
	}
	switch {
	case sub != ast.NoRef && sup != ast.NoRef:
		return p.push(ast.Node{Kind: ast.KindSubSup, Pos: cur.Pos, Target: target, Sub: sub, Sup: sup}), nil
	case sub != ast.NoRef:
		return p.push(ast.Node{Kind: ast.KindSubscript, Pos: cur.Pos, Target: target, Sub: sub}), nil
	case sup != ast.NoRef:
		return p.push(ast.Node{Kind: ast.KindSuperscript, Pos: cur.Pos, Target: target, Sup: sup}), nil
	default:
		return target, nil
	}
}

// wrapUnderOver folds the bounds following a BigOp/limits target into
// UnderOver/Underset/Overset, matching the movable-limits convention
// (sub/super become under/over instead of the usual script position).
func (p *Parser) wrapUnderOver(pos int, target ast.Ref) (ast.Ref, *errors.LatexError) {
	under, over, err := p.getBounds()
	if err != nil {
		return ast.NoRef, err
	}
	switch {
	case under != ast.NoRef && over != ast.NoRef:
		return p.push(ast.Node{Kind: ast.KindUnderOver, Pos: pos, Target: target, Under: under, Over: over}), nil
	case under != ast.NoRef:
		return p.push(ast.Node{Kind: ast.KindUnderset, Pos: pos, Target: target, Symbol: under}), nil
	case over != ast.NoRef:
		return p.push(ast.Node{Kind: ast.KindOverset, Pos: pos, Target: target, Symbol: over}), nil
	default:
		return target, nil
	}
}

func (p *Parser) lim(cur token.Token) (ast.Ref, *errors.LatexError) {
	limRef := p.pushIdent(cur.Str)
	if p.peek.Kind != token.KindUnderscore {
		return limRef, nil
	}
	p.advance()
	under, err := p.parseSingleToken()
	if err != nil {
		return ast.NoRef, err
	}
	return p.push(ast.Node{Kind: ast.KindUnderset, Pos: cur.Pos, Target: limRef, Symbol: under}), nil
}

func (p *Parser) slashed(cur token.Token) (ast.Ref, *errors.LatexError) {
	p.advance() // assumed {
	node, err := p.parseToken()
	if err != nil {
		return ast.NoRef, err
	}
	p.advance() // assumed }
	return p.push(ast.Node{Kind: ast.KindSlashed, Pos: cur.Pos, Target: node}), nil
}

func (p *Parser) not(cur token.Token) (ast.Ref, *errors.LatexError) {
	next := p.advance()
	switch next.Kind {
	case token.KindOperator:
		op := next.Op
		if negated, ok := glyph.Negated(op); ok {
			op = negated
		}
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: op}), nil
	case token.KindOpLessThan:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: glyph.NotLessThan}), nil
	case token.KindOpGreaterThan:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: glyph.NotGreaterThan}), nil
	case token.KindLetter, token.KindNormalLetter:
		text := string(next.Ch) + "̸"
		return p.push(ast.Node{Kind: ast.KindMultiLetterIdent, Pos: cur.Pos, StrSlice: p.tree.Strings.Append(text)}), nil
	default:
		return ast.NoRef, errors.CannotBeUsedHere(cur.Pos, cur, errors.BeforeSomeOps)
	}
}

func (p *Parser) withVariantOrTransform(cur token.Token) (ast.Ref, *errors.LatexError) {
	oldTF, oldHasTF, oldVariant := p.tf, p.hasTF, p.variant
	if cur.Kind == token.KindNormalVariant {
		p.variant = token.VariantNormal
		p.hasTF = false
	} else {
		p.tf = cur.Transform
		p.hasTF = true
	}

	ref, err := p.parseSingleToken()

	p.tf, p.hasTF, p.variant = oldTF, oldHasTF, oldVariant
	if err != nil {
		return ast.NoRef, err
	}

	n := p.tree.Get(ref)
	if n.Kind == ast.KindRow {
		return p.mergeSingleLetters(n.Children, n.RowStyle, n.HasRowStyle), nil
	}
	return ref, nil
}

func (p *Parser) colon(cur token.Token) (ast.Ref, *errors.LatexError) {
	if p.peek.Kind == token.KindOperator && (p.peek.Op == glyph.EqualsSign || p.peek.Op == glyph.IdenticalTo) {
		op := p.peek.Op
		p.advance()
		first := p.push(ast.Node{Kind: ast.KindOperatorWithSpacing, Pos: cur.Pos, Op: ':', LeftSpacing: ast.SpacingFourMu, RightSpacing: ast.SpacingZero})
		second := p.push(ast.Node{Kind: ast.KindOperatorWithSpacing, Pos: cur.Pos, Op: op, LeftSpacing: ast.SpacingZero})
		return p.push(ast.Node{Kind: ast.KindPseudoRow, Children: []ast.Ref{first, second}}), nil
	}
	return p.push(ast.Node{Kind: ast.KindOperatorWithSpacing, Pos: cur.Pos, Op: ':', LeftSpacing: ast.SpacingFourMu, RightSpacing: ast.SpacingFourMu}), nil
}

func (p *Parser) left(cur token.Token) (ast.Ref, *errors.LatexError) {
	next := p.advance()
	open, oerr := fenceGlyph(next)
	if oerr {
		return ast.NoRef, errors.MissingParenthesis(next.Pos, token.Token{Kind: token.KindLeft}, next)
	}
	content, err := p.parseGroup(token.KindRight)
	if err != nil {
		return ast.NoRef, err
	}
	p.advance() // discard Right
	closeTok := p.advance()
	closeOp, cerr := fenceGlyph(closeTok)
	if cerr {
		return ast.NoRef, errors.MissingParenthesis(closeTok.Pos, token.Token{Kind: token.KindRight}, closeTok)
	}
	return p.push(ast.Node{Kind: ast.KindFenced, Pos: cur.Pos, Open: open, Close: closeOp, Content: p.squeeze(content, token.StyleNone, false)}), nil
}

// fenceGlyph resolves a \left/\right delimiter token to its glyph,
// accepting the null sentinel spelled `.`.
func fenceGlyph(t token.Token) (glyph.Op, bool) {
	switch {
	case t.Kind == token.KindParen:
		return t.Op, false
	case t.Kind == token.KindSquareBracketClose:
		return glyph.RightSquareBracket, false
	case t.Kind == token.KindNormalLetter && t.Ch == '.',
		t.Kind == token.KindOperator && t.Op == glyph.FullStop:
		return glyph.Null, false
	default:
		return glyph.Null, true
	}
}

func (p *Parser) middle(cur token.Token) (ast.Ref, *errors.LatexError) {
	next := p.advance()
	switch {
	case next.Kind == token.KindOperator || next.Kind == token.KindParen:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: next.Op, Stretchy: true}), nil
	case next.Kind == token.KindSquareBracketClose:
		return p.push(ast.Node{Kind: ast.KindOperator, Pos: cur.Pos, Op: glyph.RightSquareBracket, Stretchy: true}), nil
	default:
		return ast.NoRef, errors.UnexpectedToken(next.Pos, token.Token{Kind: token.KindOperator}, next)
	}
}

func (p *Parser) sizedParen(cur token.Token) (ast.Ref, *errors.LatexError) {
	next := p.advance()
	switch {
	case next.Kind == token.KindParen:
		return p.push(ast.Node{Kind: ast.KindSizedParen, Pos: cur.Pos, SizedOp: next.Op, SizeEm: cur.Str}), nil
	case next.Kind == token.KindSquareBracketClose:
		return p.push(ast.Node{Kind: ast.KindSizedParen, Pos: cur.Pos, SizedOp: glyph.RightSquareBracket, SizeEm: cur.Str}), nil
	default:
		return ast.NoRef, errors.UnexpectedToken(next.Pos, token.Token{Kind: token.KindParen}, next)
	}
}

func (p *Parser) operatorName(cur token.Token) (ast.Ref, *errors.LatexError) {
	ref, err := p.parseSingleToken()
	if err != nil {
		return ast.NoRef, err
	}
	start := p.tree.Strings.StartAppend()
	run, eerr := p.extractLetters(p.tree.Get(ref), start, token.TransformNone, false)
	if eerr != nil {
		return ast.NoRef, eerr
	}
	return p.push(ast.Node{Kind: ast.KindMultiLetterIdent, Pos: cur.Pos, StrSlice: run}), nil
}

func (p *Parser) text(cur token.Token) (ast.Ref, *errors.LatexError) {
	p.lex.TextMode = true
	ref, err := p.parseSingleToken()
	if err != nil {
		p.lex.TextMode = false
		return ast.NoRef, err
	}
	start := p.tree.Strings.StartAppend()
	run, eerr := p.extractLetters(p.tree.Get(ref), start, cur.Transform, cur.Transform != token.TransformNone)
	p.lex.TextMode = false
	if eerr != nil {
		return ast.NoRef, eerr
	}
	if p.peek.Kind == token.KindWhitespace {
		p.advance()
	}
	return p.push(ast.Node{Kind: ast.KindText, Pos: cur.Pos, StrSlice: run}), nil
}

// extractLetters recursively gathers the textual content of node
// (single-letter and multi-letter identifiers, numbers, operators,
// already-extracted text) into a running Buffered StrRef, applying tf
// if hasTF. Anything else is not representable as plain text and is
// rejected with ExpectedText.
func (p *Parser) extractLetters(node ast.Node, run arena.StrRef, tf token.TextTransform, hasTF bool) (arena.StrRef, *errors.LatexError) {
	switch node.Kind {
	case ast.KindSingleLetterIdent:
		ch := node.Ch
		if hasTF {
			ch = transformRune(ch, tf)
		}
		return p.tree.Strings.AppendRune(run, ch), nil
	case ast.KindRow, ast.KindPseudoRow:
		for _, child := range node.Children {
			var err *errors.LatexError
			run, err = p.extractLetters(p.tree.Get(child), run, tf, hasTF)
			if err != nil {
				return run, err
			}
		}
		return run, nil
	case ast.KindNumber:
		text := p.tree.Text(node.StrSlice)
		if hasTF {
			text = transformString(text, tf)
		}
		for _, r := range text {
			run = p.tree.Strings.AppendRune(run, r)
		}
		return run, nil
	case ast.KindOperator, ast.KindOperatorWithSpacing:
		return p.tree.Strings.AppendRune(run, node.Op.Rune()), nil
	case ast.KindText, ast.KindMultiLetterIdent:
		text := p.tree.Text(node.StrSlice)
		for _, r := range text {
			run = p.tree.Strings.AppendRune(run, r)
		}
		return run, nil
	default:
		return run, errors.ExpectedText(node.Pos, `\operatorname`)
	}
}

// mergeSingleLetters collapses consecutive SingleLetterIdent children
// of a \mathXX/\textXX-wrapped Row into a single MultiLetterIdent, so
// "abc" typed inside \mathbf renders as one identifier rather than
// three adjacent ones.
func (p *Parser) mergeSingleLetters(children []ast.Ref, style token.Style, hasStyle bool) ast.Ref {
	var merged []ast.Ref
	var run arena.StrRef
	collecting := false
	runCount := 0
	var firstRef ast.Ref

	flush := func() {
		if collecting {
			if runCount > 1 {
				merged = append(merged, p.push(ast.Node{Kind: ast.KindMultiLetterIdent, StrSlice: run}))
			} else {
				merged = append(merged, firstRef)
			}
			collecting = false
			runCount = 0
		}
	}

	for _, ref := range children {
		n := p.tree.Get(ref)
		if n.Kind == ast.KindSingleLetterIdent {
			if !collecting {
				collecting = true
				run = p.tree.Strings.StartAppend()
				firstRef = ref
			}
			run = p.tree.Strings.AppendRune(run, n.Ch)
			runCount++
			continue
		}
		flush()
		merged = append(merged, ref)
	}
	flush()

	return p.squeeze(merged, style, hasStyle)
}
