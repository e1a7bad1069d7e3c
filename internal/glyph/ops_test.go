package glyph

import "testing"

func TestOpStringReturnsGlyph(t *testing.T) {
	if got := Integral.String(); got != "∫" {
		t.Errorf("got %q, want %q", got, "∫")
	}
	if got := PlusSign.String(); got != "+" {
		t.Errorf("got %q, want %q", got, "+")
	}
}

func TestOpRune(t *testing.T) {
	if Integral.Rune() != '∫' {
		t.Errorf("got %q, want integral sign", Integral.Rune())
	}
}

func TestNullIsZero(t *testing.T) {
	if Null.Rune() != 0 {
		t.Errorf("Null should be the zero rune, got %q", Null.Rune())
	}
}

func TestNamedConstantsAreDistinctFromBrackets(t *testing.T) {
	if LeftSquareBracket == RightSquareBracket {
		t.Errorf("LeftSquareBracket and RightSquareBracket must differ")
	}
	if GreaterThanSign == LessThanSign {
		t.Errorf("GreaterThanSign and LessThanSign must differ")
	}
	if LeftSquareBracket.Rune() != '[' || RightSquareBracket.Rune() != ']' {
		t.Errorf("got %q/%q, want '['/']'", LeftSquareBracket, RightSquareBracket)
	}
}

func TestNegatedKnownPairs(t *testing.T) {
	cases := []struct {
		in   Op
		want Op
	}{
		{ElementOf, NotAnElementOf},
		{SubsetOf, NotASubsetOf},
		{Precedes, DoesNotPrecede},
		{Succeeds, DoesNotSucceed},
	}
	for _, c := range cases {
		got, ok := Negated(c.in)
		if !ok {
			t.Fatalf("Negated(%q) not found", c.in)
		}
		if got != c.want {
			t.Errorf("Negated(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNegatedUnknownOperator(t *testing.T) {
	if _, ok := Negated(PlusSign); ok {
		t.Errorf("expected PlusSign to have no tabulated negation")
	}
}
