package lexer

import (
	"testing"

	"github.com/mathmlgo/latexmml/internal/token"
)

func collectKinds(t *testing.T, input string) []token.Kind {
	t.Helper()
	l := New(input)
	var kinds []token.Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.KindEOF {
			return kinds
		}
	}
}

func TestNextBasicPunctuation(t *testing.T) {
	got := collectKinds(t, "{}[]_^&~:")
	want := []token.Kind{
		token.KindGroupBegin, token.KindGroupEnd,
		token.KindSquareBracketOpen, token.KindSquareBracketClose,
		token.KindUnderscore, token.KindCircumflex,
		token.KindAmpersand, token.KindNBSP, token.KindColon,
		token.KindEOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNextSkipsWhitespaceAndComments(t *testing.T) {
	l := New("a   % a comment\nb")
	first := l.Next()
	if first.Kind != token.KindLetter || first.Ch != 'a' {
		t.Fatalf("got %+v, want letter 'a'", first)
	}
	second := l.Next()
	if second.Kind != token.KindLetter || second.Ch != 'b' {
		t.Fatalf("got %+v, want letter 'b'", second)
	}
}

func TestNextCommand(t *testing.T) {
	l := New(`\frac{1}{2}`)
	tok := l.Next()
	if tok.Kind != token.KindFrac {
		t.Fatalf("got kind %v, want KindFrac", tok.Kind)
	}
}

func TestNextUnknownCommand(t *testing.T) {
	l := New(`\notarealcommand`)
	tok := l.Next()
	if tok.Kind != token.KindUnknownCommand {
		t.Fatalf("got kind %v, want KindUnknownCommand", tok.Kind)
	}
	if tok.Str != "notarealcommand" {
		t.Errorf("got name %q, want %q", tok.Str, "notarealcommand")
	}
}

func TestTextModeCollapsesWhitespace(t *testing.T) {
	l := New("a   b")
	l.TextMode = true

	first := l.Next()
	if first.Kind != token.KindLetter {
		t.Fatalf("got %+v", first)
	}
	space := l.Next()
	if space.Kind != token.KindWhitespace {
		t.Fatalf("got %+v, want a single Whitespace token", space)
	}
	second := l.Next()
	if second.Kind != token.KindLetter || second.Ch != 'b' {
		t.Fatalf("got %+v", second)
	}
}

func TestScanEnvName(t *testing.T) {
	l := New("matrix}rest")
	name, err := l.ScanEnvName()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "matrix" {
		t.Errorf("got %q, want %q", name, "matrix")
	}
}

func TestScanEnvNameUnterminated(t *testing.T) {
	l := New("matrix")
	if _, err := l.ScanEnvName(); err == nil {
		t.Fatal("expected an error for a missing closing brace")
	}
}

func TestScanTextGroupHandlesEscapedBraces(t *testing.T) {
	l := New(`a \{ b \} c}rest`)
	content, err := l.ScanTextGroup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != `a \{ b \} c` {
		t.Errorf("got %q", content)
	}
}

func TestScanTextGroupCountsBraceDepth(t *testing.T) {
	l := New("a{b}c}rest")
	content, err := l.ScanTextGroup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "a{b}c" {
		t.Errorf("got %q", content)
	}
}

func TestNextNormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent decomposes; New should compose it to
	// a single precomposed rune before lexing sees it.
	l := New("é")
	tok := l.Next()
	if tok.Ch != 'é' {
		t.Errorf("got %q (%U), want %q", tok.Ch, tok.Ch, 'é')
	}
}
