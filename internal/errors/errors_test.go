package errors

import (
	"strings"
	"testing"

	"github.com/mathmlgo/latexmml/internal/token"
)

func TestErrorIncludesOffset(t *testing.T) {
	err := UnexpectedEOF(42)
	if got := err.Error(); !strings.HasPrefix(got, "42: ") {
		t.Errorf("got %q, want it to start with %q", got, "42: ")
	}
}

func TestCodeMatchesKind(t *testing.T) {
	cases := []struct {
		err  *LatexError
		code string
	}{
		{UnexpectedEOF(0), CodeUnexpectedEOF},
		{UnparsableEnvName(0), CodeUnparsableEnvName},
		{UnknownCommand(0, "foo"), CodeUnknownCommand},
		{UnknownEnvironment(0, "foo"), CodeUnknownEnvironment},
	}
	for _, c := range cases {
		if got := c.err.Code(); got != c.code {
			t.Errorf("got code %q, want %q", got, c.code)
		}
	}
}

func TestUnknownCommandMessageIncludesName(t *testing.T) {
	err := UnknownCommand(10, "notarealcommand")
	if !strings.Contains(err.Error(), "notarealcommand") {
		t.Errorf("got %q, want it to mention the unknown command name", err.Error())
	}
}

func TestMismatchedEnvironmentMessageNamesBoth(t *testing.T) {
	err := MismatchedEnvironment(5, "matrix", "pmatrix")
	msg := err.Error()
	if !strings.Contains(msg, "matrix") || !strings.Contains(msg, "pmatrix") {
		t.Errorf("got %q, want it to mention both environment names", msg)
	}
}

func TestCannotBeUsedHereMentionsPlace(t *testing.T) {
	err := CannotBeUsedHere(0, token.Token{Kind: token.KindOpAmpersand}, AfterBigOp)
	if !strings.Contains(err.Error(), `\int`) {
		t.Errorf("got %q, want it to describe the AfterBigOp place", err.Error())
	}
}

func TestExpectedLengthReportsAsUnexpectedEOF(t *testing.T) {
	// ExpectedLength intentionally reuses the KindUnexpectedEOF path;
	// verify the constructor still stashes the offending text.
	err := ExpectedLength(3, "2px")
	if err.Kind != KindUnexpectedEOF {
		t.Fatalf("got Kind %v, want KindUnexpectedEOF", err.Kind)
	}
	if err.LengthGot != "2px" {
		t.Errorf("got LengthGot %q, want %q", err.LengthGot, "2px")
	}
}

func TestPlaceString(t *testing.T) {
	cases := map[Place]string{
		AfterBigOp:     `after \int, \sum, ...`,
		BeforeSomeOps:  "before supported operators",
		AfterOpOrIdent: "after an identifier or operator",
	}
	for place, want := range cases {
		if got := place.String(); got != want {
			t.Errorf("Place(%d).String() = %q, want %q", place, got, want)
		}
	}
}
