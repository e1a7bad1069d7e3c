package command

import (
	"testing"

	"github.com/mathmlgo/latexmml/internal/token"
)

func TestLookupKnownCommands(t *testing.T) {
	cases := []struct {
		name string
		want token.Kind
	}{
		{"frac", token.KindFrac},
		{"sqrt", token.KindSqrt},
		{"sum", token.KindBigOp},
		{"alpha", token.KindLetter},
		{"mathbf", token.KindTransform},
		{"left", token.KindLeft},
		{"right", token.KindRight},
		{"begin", token.KindBegin},
		{"end", token.KindEnd},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Lookup(c.name)
			if got.Kind != c.want {
				t.Errorf("Lookup(%q).Kind = %v, want %v", c.name, got.Kind, c.want)
			}
		})
	}
}

func TestLookupUnknownCommandFallsBack(t *testing.T) {
	got := Lookup("notarealcommand")
	if got.Kind != token.KindUnknownCommand {
		t.Fatalf("got kind %v, want KindUnknownCommand", got.Kind)
	}
	if got.Str != "notarealcommand" {
		t.Errorf("got Str %q, want %q", got.Str, "notarealcommand")
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	lower := Lookup("alpha")
	upper := Lookup("Alpha")
	if lower.Kind != token.KindLetter {
		t.Fatalf("Lookup(%q).Kind = %v, want KindLetter", "alpha", lower.Kind)
	}
	if upper.Kind == token.KindUnknownCommand {
		t.Fatalf("expected %q to resolve, got KindUnknownCommand", "Alpha")
	}
	if lower.Ch == upper.Ch {
		t.Errorf("expected \\alpha and \\Alpha to map to different letters")
	}
}

func TestLookupBraceCommands(t *testing.T) {
	open := Lookup("{")
	close := Lookup("}")
	if open.Kind != token.KindParen || close.Kind != token.KindParen {
		t.Fatalf("got %v / %v, want KindParen for both", open.Kind, close.Kind)
	}
	if open.Op == close.Op {
		t.Errorf("expected distinct glyphs for \\{ and \\}")
	}
}
