// Package ast defines the closed AST node taxonomy produced by the
// parser. Like the token package, Node is a tagged union: a Kind
// discriminant plus a flat struct whose fields are reinterpreted
// depending on Kind, dispatched with a single switch rather than a
// family of types behind a marker interface. The AST is closed and
// known in full at compile time, so there is nothing for an open
// interface hierarchy to buy here.
package ast

import (
	"github.com/mathmlgo/latexmml/internal/arena"
	"github.com/mathmlgo/latexmml/internal/glyph"
	"github.com/mathmlgo/latexmml/internal/token"
)

// Ref addresses a Node held by a Tree's arena.
type Ref = arena.NodeRef

// NoRef is used in optional Ref fields (e.g. a bound that getBounds
// did not find) to mean "not present". Every optional Ref field is paired
// with nothing else to check: callers compare against NoRef directly.
const NoRef Ref = -1

// Kind discriminates the members of the Node sum type.
type Kind int

const (
	// Leaves
	KindNumber Kind = iota
	KindSingleLetterIdent
	KindMultiLetterIdent
	KindOperator
	KindOperatorWithSpacing
	KindText
	KindSpace
	KindColumnSeparator
	KindRowSeparator
	KindMathstrut
	KindSizedParen

	// Unary
	KindSqrt
	KindSlashed

	// Binary
	KindFrac
	KindRoot
	KindSubscript
	KindSuperscript
	KindOverset
	KindUnderset
	KindOverOp
	KindUnderOp
	KindMultiscript

	// Ternary
	KindSubSup
	KindUnderOver

	// Containers
	KindRow
	KindPseudoRow
	KindFenced
	KindTable
)

// Variant marks a single-letter identifier's math variant.
type Variant = token.Variant

// Style is an explicit display/text/script/scriptscript override
// attached to a Row, a Frac, or (via Genfrac) a Fenced.
type Style = token.Style

// MathSpacing is an explicit inter-operator spacing override; the
// zero value means no override was specified.
type MathSpacing int

const (
	SpacingUnset MathSpacing = iota
	SpacingZero
	SpacingFourMu
)

// Env names the table environment a Table node was built from; it
// only affects column alignment and the fence glyphs the parser
// already resolved into the wrapping Fenced node's Open/Close, so the
// parser does not
// need to retain it past those two decisions, but keeping it on the
// node aids debugging and snapshot tests.
type Env int

const (
	EnvAlign Env = iota
	EnvAlignStar
	EnvAligned
	EnvCases
	EnvMatrix
	EnvPMatrix
	EnvBMatrix
	EnvVMatrix
)

// Node is the tagged union produced by the parser. Every Node that is
// reachable from a Tree's root lives in that Tree's arena; Refs are
// meaningless outside the arena that produced them.
type Node struct {
	Kind Kind
	Pos  int // byte offset of the node's leading token, for diagnostics

	// Leaves
	Ch              rune
	StrSlice        arena.StrRef
	Variant         Variant
	Op              glyph.Op
	Stretchy        bool
	NoMovableLimits bool // BigOp target, set when \limits was consumed
	SizedOp         glyph.Op
	SizeEm          string

	// OperatorWithSpacing (the `:` colon productions)
	LeftSpacing  MathSpacing
	RightSpacing MathSpacing

	// Common child slots. Not every Kind uses every slot; see the
	// per-Kind comment for which ones are live.
	Target Ref // Subscript/Superscript/SubSup/UnderOver/OverOp/UnderOp/Sqrt-body/Slashed-body
	Sub    Ref // Subscript/SubSup/Multiscript
	Sup    Ref // Superscript/SubSup
	Under  Ref // UnderOver
	Over   Ref // UnderOver
	Base   Ref // Multiscript
	Num    Ref // Frac
	Den    Ref // Frac
	Degree Ref // Root

	LineThickness arena.StrRef // Frac; empty+absent flag below
	HasThickness  bool
	FracStyle     Style

	Symbol Ref // Overset/Underset (the decoration itself)

	AccentOp glyph.Op // not set by the parser; OverOp/UnderOp keep their glyph in Op
	Accent   bool     // true when the accent attribute is set

	// Fenced
	Open    glyph.Op
	Close   glyph.Op
	Content Ref
	RowStyle Style
	HasRowStyle bool

	// Row/PseudoRow/Table
	Children []Ref
	TableEnv Env
}

// Tree owns every Node produced while parsing one math region, plus
// the string buffer backing any Buffered StrRefs those nodes hold.
type Tree struct {
	Nodes   *arena.Arena[Node]
	Strings *arena.StringBuffer
	Input   string
	Root    Ref
}

// NewTree allocates a Tree sized for roughly n nodes and the string
// synthesis that typically accompanies parsing input of that size.
func NewTree(input string, n int) *Tree {
	return &Tree{
		Nodes:   arena.New[Node](n),
		Strings: arena.NewStringBuffer(n * 4),
		Input:   input,
	}
}

// Push stores n in the tree's arena and returns its Ref.
func (t *Tree) Push(n Node) Ref {
	return t.Nodes.Push(n)
}

// Get dereferences ref.
func (t *Tree) Get(ref Ref) Node {
	return t.Nodes.Get(ref)
}

// Text resolves a StrRef against the tree's input and string buffer.
func (t *Tree) Text(ref arena.StrRef) string {
	return ref.Resolve(t.Input, t.Strings)
}

// Reset empties the tree's arena and string buffer so it can be
// reused for the next math region without reallocating.
func (t *Tree) Reset(input string) {
	t.Nodes.Reset()
	t.Strings.Reset()
	t.Input = input
	t.Root = NoRef
}
