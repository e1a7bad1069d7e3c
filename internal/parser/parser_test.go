package parser

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func mustParse(t *testing.T, input string) string {
	t.Helper()
	p := New(input)
	root, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", input, err)
	}
	return p.Tree().Dump(root)
}

func TestParseSnapshots(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"single_letter", "x"},
		{"simple_sum", "a+b"},
		{"frac", `\frac{1}{2}`},
		{"sqrt", `\sqrt{2}`},
		{"sqrt_with_degree", `\sqrt[3]{x}`},
		{"subscript", "x_1"},
		{"superscript", "x^2"},
		{"subsup", "x_1^2"},
		{"prime", "f'"},
		{"bigop_with_bounds", `\sum_{i=1}^{n} i`},
		{"mathbf_group", `\mathbf{abc}`},
		{"mathrm_single", `\mathrm{d}x`},
		{"left_right", `\left(x\right)`},
		{"matrix", `\begin{matrix}a&b\\c&d\end{matrix}`},
		{"pmatrix", `\begin{pmatrix}1&0\\0&1\end{pmatrix}`},
		{"cases", `\begin{cases}1&x>0\\0&x=0\end{cases}`},
		{"operatorname", `\operatorname{sin}x`},
		{"text", `\text{hello world}`},
		{"colon_equals", `a := b`},
		{"not_equals", `a \not= b`},
		{"overbrace", `\overbrace{x+y}^{n}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := mustParse(t, c.input)
			snaps.MatchSnapshot(t, c.name, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unclosed_group", `\frac{1}{2`},
		{"unknown_command", `\notarealcommand`},
		{"unknown_environment", `\begin{bogus}x\end{bogus}`},
		{"mismatched_environment", `\begin{matrix}a\end{pmatrix}`},
		{"double_subscript", "x__1"},
		{"stray_circumflex", "^2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := New(c.input)
			if _, err := p.Parse(); err == nil {
				t.Fatalf("expected a parse error for %q, got none", c.input)
			}
		})
	}
}

func TestMergeSingleLetters(t *testing.T) {
	got := mustParse(t, `\mathbf{xyz}`)
	snaps.MatchSnapshot(t, "merge_single_letters_mathbf_xyz", got)
}
