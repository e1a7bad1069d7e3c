package replace

import (
	"fmt"
	"strings"
	"testing"
)

func mockConvert(out *strings.Builder, content string, d Display) error {
	if d == DisplayBlock {
		fmt.Fprintf(out, "[T2:%s]", content)
	} else {
		fmt.Fprintf(out, "[T1:%s]", content)
	}
	return nil
}

func TestReplaceBasic(t *testing.T) {
	cases := []struct {
		name           string
		input          string
		inline, block  [2]string
		want           string
	}{
		{"basic", "Hello $world$ and $$universe$$", [2]string{"$", "$"}, [2]string{"$$", "$$"}, "Hello [T1:world] and [T2:universe]"},
		{"empty input", "", [2]string{"$", "$"}, [2]string{"$$", "$$"}, ""},
		{"no delimiters", "Hello, world!", [2]string{"$", "$"}, [2]string{"$$", "$$"}, "Hello, world!"},
		{"multiple", "$a$ then $$b$$ then $c$ and $$d$$", [2]string{"$", "$"}, [2]string{"$$", "$$"}, "[T1:a] then [T2:b] then [T1:c] and [T2:d]"},
		{"complete", "$a then b then c and d$", [2]string{"$", "$"}, [2]string{"$$", "$$"}, "[T1:a then b then c and d]"},
		{"identical delimiters", "|a| and ||b||", [2]string{"|", "|"}, [2]string{"||", "||"}, "[T1:a] and [T2:b]"},
		{"asymmetric", `let \(a=1\) and \[b=2\].`, [2]string{`\(`, `\)`}, [2]string{`\[`, `\]`}, "let [T1:a=1] and [T2:b=2]."},
		{"asymmetric partial delim", `let\ \(a=1\) and \[b=2\].`, [2]string{`\(`, `\)`}, [2]string{`\[`, `\]`}, `let\ [T1:a=1] and [T2:b=2].`},
		{"asymmetric dangling", `let a=1\) and \(b=2\).`, [2]string{`\(`, `\)`}, [2]string{`\[`, `\]`}, `let a=1\) and [T1:b=2].`},
		{"asymmetric dangling2", `let \(a=1\) and b=2\).`, [2]string{`\(`, `\)`}, [2]string{`\[`, `\]`}, `let [T1:a=1] and b=2\).`},
		{"multibyte delimiters", "this is über ü(a=2ü).", [2]string{"ü(", "ü)"}, [2]string{"ü[", "ü]"}, "this is über [T1:a=2]."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReplacer(c.inline, c.block)
			got, err := r.Replace(c.input, mockConvert)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestReplaceLongDelimiters(t *testing.T) {
	input := "based on its length, <span class=\"math inline\">P(p)=2^{-len(p)}</span>, and then for a given\n    <span class=\"math block\">\n    P(p)=2^{-len(p)}\n    </span>\n    Hello."
	want := "based on its length, [T1:P(p)=2^{-len(p)}], and then for a given\n    [T2:\n    P(p)=2^{-len(p)}\n    ]\n    Hello."

	r := NewReplacer([2]string{`<span class="math inline">`, `</span>`}, [2]string{`<span class="math block">`, `</span>`})
	got, err := r.Replace(input, mockConvert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplaceErrors(t *testing.T) {
	cases := []struct {
		name          string
		input         string
		inline, block [2]string
		wantKind      ErrorKind
		check         func(t *testing.T, err *ConversionError)
	}{
		{
			name: "nested delimiters", input: "Nested $$outer $inner$ delimiter$$",
			inline: [2]string{"$", "$"}, block: [2]string{"$$", "$$"},
			wantKind: ErrMismatchedDelimiters,
			check: func(t *testing.T, err *ConversionError) {
				if err.OpenPos != 7 || err.ClosePos != 15 {
					t.Errorf("got (%d,%d), want (7,15)", err.OpenPos, err.ClosePos)
				}
			},
		},
		{
			name: "nested delimiters 2", input: "Nested $outer $$inner$$ delimiter$",
			inline: [2]string{"$", "$"}, block: [2]string{"$$", "$$"},
			wantKind: ErrMismatchedDelimiters,
			check: func(t *testing.T, err *ConversionError) {
				if err.OpenPos != 7 || err.ClosePos != 14 {
					t.Errorf("got (%d,%d), want (7,14)", err.OpenPos, err.ClosePos)
				}
			},
		},
		{
			name: "unclosed", input: "Unclosed $delimiter",
			inline: [2]string{"$", "$"}, block: [2]string{"$$", "$$"},
			wantKind: ErrUnclosedDelimiter,
			check: func(t *testing.T, err *ConversionError) {
				if err.Pos != 9 {
					t.Errorf("got pos %d, want 9", err.Pos)
				}
			},
		},
		{
			name: "mismatched", input: "Mismatch $$ and $ signs",
			inline: [2]string{"$", "$"}, block: [2]string{"$$", "$$"},
			wantKind: ErrMismatchedDelimiters,
			check: func(t *testing.T, err *ConversionError) {
				if err.OpenPos != 9 || err.ClosePos != 16 {
					t.Errorf("got (%d,%d), want (9,16)", err.OpenPos, err.ClosePos)
				}
			},
		},
		{
			name: "asymmetric nested", input: `let \(a=1 and \[b=2\]\).`,
			inline: [2]string{`\(`, `\)`}, block: [2]string{`\[`, `\]`},
			wantKind: ErrMismatchedDelimiters,
			check: func(t *testing.T, err *ConversionError) {
				if err.OpenPos != 4 || err.ClosePos != 19 {
					t.Errorf("got (%d,%d), want (4,19)", err.OpenPos, err.ClosePos)
				}
			},
		},
		{
			name: "asymmetric nested 2", input: `let \(a=1 and \[b=2\).`,
			inline: [2]string{`\(`, `\)`}, block: [2]string{`\[`, `\]`},
			wantKind: ErrNestedDelimiters,
			check: func(t *testing.T, err *ConversionError) {
				if err.Pos != 14 {
					t.Errorf("got pos %d, want 14", err.Pos)
				}
			},
		},
		{
			name: "asymmetric unclosed", input: `let \(a=1 and b=2.`,
			inline: [2]string{`\(`, `\)`}, block: [2]string{`\[`, `\]`},
			wantKind: ErrUnclosedDelimiter,
			check: func(t *testing.T, err *ConversionError) {
				if err.Pos != 4 {
					t.Errorf("got pos %d, want 4", err.Pos)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReplacer(c.inline, c.block)
			_, err := r.Replace(c.input, mockConvert)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			convErr, ok := err.(*ConversionError)
			if !ok {
				t.Fatalf("expected *ConversionError, got %T", err)
			}
			if convErr.Kind != c.wantKind {
				t.Fatalf("got kind %v, want %v", convErr.Kind, c.wantKind)
			}
			c.check(t, convErr)
		})
	}
}

func TestReplaceConvertError(t *testing.T) {
	failing := func(out *strings.Builder, content string, d Display) error {
		return fmt.Errorf("boom: %s", content)
	}
	r := NewReplacer([2]string{"$", "$"}, [2]string{"$$", "$$"})
	_, err := r.Replace("bad $input$ here", failing)
	if err == nil {
		t.Fatal("expected an error")
	}
	convErr, ok := err.(*ConversionError)
	if !ok || convErr.Kind != ErrConvert {
		t.Fatalf("got %#v, want ErrConvert", err)
	}
	if convErr.Content != "input" {
		t.Errorf("got content %q, want %q", convErr.Content, "input")
	}
}
