package token

import "testing"

func TestNewBuildsBareToken(t *testing.T) {
	tok := New(KindEOF, 7)
	if tok.Kind != KindEOF || tok.Pos != 7 {
		t.Errorf("got %+v, want Kind=KindEOF Pos=7", tok)
	}
}

func TestStringKnownKinds(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: KindEOF}, "end of input"},
		{Token{Kind: KindGroupBegin}, "{"},
		{Token{Kind: KindGroupEnd}, "}"},
		{Token{Kind: KindLeft}, "\\left"},
		{Token{Kind: KindUnknownCommand, Str: "foo"}, "\\foo"},
		{Token{Kind: KindFunction, Str: "sin"}, "sin"},
		{Token{Kind: KindLetter, Ch: 'x'}, "x"},
		{Token{Kind: KindFrac}, "\\frac"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("Token{Kind: %v}.String() = %q, want %q", c.tok.Kind, got, c.want)
		}
	}
}
