package ast

import (
	"strings"
	"testing"

	"github.com/mathmlgo/latexmml/internal/arena"
)

func TestKindStringKnownAndUnknown(t *testing.T) {
	if got := KindFrac.String(); got != "Frac" {
		t.Errorf("got %q, want %q", got, "Frac")
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Errorf("got %q, want %q", got, "Kind(999)")
	}
}

func TestDumpSingleLetterIdent(t *testing.T) {
	tree := NewTree("x", 4)
	ref := tree.Push(Node{Kind: KindSingleLetterIdent, Ch: 'x'})

	got := tree.Dump(ref)
	if !strings.Contains(got, "SingleLetterIdent") || !strings.Contains(got, `'x'`) {
		t.Errorf("got %q, want it to mention SingleLetterIdent and 'x'", got)
	}
}

func TestDumpFracRendersBothChildren(t *testing.T) {
	tree := NewTree("", 8)
	num := tree.Push(Node{Kind: KindSingleLetterIdent, Ch: '1'})
	den := tree.Push(Node{Kind: KindSingleLetterIdent, Ch: '2'})
	frac := tree.Push(Node{Kind: KindFrac, Num: num, Den: den})

	got := tree.Dump(frac)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "Frac") {
		t.Errorf("line 0 = %q, want it to start with Frac", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  ") || !strings.HasPrefix(lines[2], "  ") {
		t.Errorf("expected both children to be indented, got:\n%s", got)
	}
}

func TestDumpRowRendersChildrenSlice(t *testing.T) {
	tree := NewTree("", 8)
	a := tree.Push(Node{Kind: KindSingleLetterIdent, Ch: 'a'})
	b := tree.Push(Node{Kind: KindSingleLetterIdent, Ch: 'b'})
	row := tree.Push(Node{Kind: KindRow, Children: []Ref{a, b}})

	got := tree.Dump(row)
	if !strings.Contains(got, `'a'`) || !strings.Contains(got, `'b'`) {
		t.Errorf("got %q, want both children rendered", got)
	}
}

func TestDumpNoRef(t *testing.T) {
	tree := NewTree("", 4)
	got := tree.Dump(NoRef)
	if !strings.Contains(got, "<none>") {
		t.Errorf("got %q, want it to render <none> for NoRef", got)
	}
}

func TestDumpMultiLetterIdentResolvesBorrowedText(t *testing.T) {
	tree := NewTree("sin", 4)
	ref := tree.Push(Node{
		Kind:     KindMultiLetterIdent,
		StrSlice: arena.StrRef{Kind: arena.Borrowed, Start: 0, End: 3},
	})

	got := tree.Dump(ref)
	if !strings.Contains(got, `"sin"`) {
		t.Errorf("got %q, want it to contain the resolved text %q", got, "sin")
	}
}

func TestDumpFencedShowsOpenAndClose(t *testing.T) {
	tree := NewTree("", 4)
	inner := tree.Push(Node{Kind: KindSingleLetterIdent, Ch: 'x'})
	fenced := tree.Push(Node{Kind: KindFenced, Open: '(', Close: ')', Content: inner})

	got := tree.Dump(fenced)
	if !strings.Contains(got, `open="("`) || !strings.Contains(got, `close=")"`) {
		t.Errorf("got %q, want open/close glyphs rendered", got)
	}
}
