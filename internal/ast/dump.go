package ast

import (
	"fmt"
	"strings"
)

// kindNames gives every Kind a short debug label, used by Dump and by
// diagnostic tooling; it is not part of any wire format.
var kindNames = map[Kind]string{
	KindNumber:              "Number",
	KindSingleLetterIdent:   "SingleLetterIdent",
	KindMultiLetterIdent:    "MultiLetterIdent",
	KindOperator:            "Operator",
	KindOperatorWithSpacing: "OperatorWithSpacing",
	KindText:                "Text",
	KindSpace:               "Space",
	KindColumnSeparator:     "ColumnSeparator",
	KindRowSeparator:        "RowSeparator",
	KindMathstrut:           "Mathstrut",
	KindSizedParen:          "SizedParen",
	KindSqrt:                "Sqrt",
	KindSlashed:             "Slashed",
	KindFrac:                "Frac",
	KindRoot:                "Root",
	KindSubscript:           "Subscript",
	KindSuperscript:         "Superscript",
	KindOverset:             "Overset",
	KindUnderset:            "Underset",
	KindOverOp:              "OverOp",
	KindUnderOp:             "UnderOp",
	KindMultiscript:         "Multiscript",
	KindSubSup:              "SubSup",
	KindUnderOver:           "UnderOver",
	KindRow:                 "Row",
	KindPseudoRow:           "PseudoRow",
	KindFenced:              "Fenced",
	KindTable:               "Table",
}

// String renders k's debug label, or "Kind(n)" for an out-of-range
// value (which should not occur outside a corrupted arena).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Dump renders tree as an indented, human-readable outline rooted at
// ref, for debugging and snapshot tests. It is not a serialization
// format: field order and wording may change freely.
func (t *Tree) Dump(ref Ref) string {
	var b strings.Builder
	t.dumpNode(&b, ref, 0)
	return b.String()
}

func (t *Tree) dumpNode(b *strings.Builder, ref Ref, depth int) {
	indent := strings.Repeat("  ", depth)
	if ref == NoRef {
		fmt.Fprintf(b, "%s<none>\n", indent)
		return
	}
	n := t.Get(ref)
	fmt.Fprintf(b, "%s%s%s\n", indent, n.Kind, t.dumpInline(n))

	for _, child := range n.Children {
		t.dumpNode(b, child, depth+1)
	}
	for _, ref := range t.dumpChildSlots(n) {
		t.dumpNode(b, ref, depth+1)
	}
}

// dumpInline renders the leaf payload relevant to n's Kind, inline
// after the kind name (e.g. the character of a SingleLetterIdent or
// the glyph of an Operator).
func (t *Tree) dumpInline(n Node) string {
	switch n.Kind {
	case KindSingleLetterIdent:
		return fmt.Sprintf(" %q", n.Ch)
	case KindMultiLetterIdent, KindText, KindSpace:
		return fmt.Sprintf(" %q", t.Text(n.StrSlice))
	case KindNumber:
		return fmt.Sprintf(" %s", t.Text(n.StrSlice))
	case KindOperator, KindOperatorWithSpacing:
		return fmt.Sprintf(" %q", n.Op.String())
	case KindSizedParen:
		return fmt.Sprintf(" %q", n.SizedOp.String())
	case KindFenced:
		return fmt.Sprintf(" open=%q close=%q", n.Open.String(), n.Close.String())
	case KindTable:
		return fmt.Sprintf(" env=%d", n.TableEnv)
	default:
		return ""
	}
}

// dumpChildSlots returns the non-Children Ref fields n actually uses,
// in a fixed, Kind-dependent order.
func (t *Tree) dumpChildSlots(n Node) []Ref {
	var refs []Ref
	push := func(r Ref) {
		if r != NoRef {
			refs = append(refs, r)
		}
	}
	switch n.Kind {
	case KindSqrt, KindSlashed:
		push(n.Target)
	case KindRoot:
		push(n.Degree)
		push(n.Target)
	case KindFrac:
		push(n.Num)
		push(n.Den)
	case KindSubscript:
		push(n.Target)
		push(n.Sub)
	case KindSuperscript:
		push(n.Target)
		push(n.Sup)
	case KindSubSup:
		push(n.Target)
		push(n.Sub)
		push(n.Sup)
	case KindUnderOver:
		push(n.Target)
		push(n.Under)
		push(n.Over)
	case KindOverOp, KindUnderOp:
		push(n.Target)
	case KindOverset, KindUnderset:
		push(n.Symbol)
		push(n.Target)
	case KindMultiscript:
		push(n.Base)
		push(n.Sub)
	case KindFenced:
		push(n.Content)
	}
	return refs
}
