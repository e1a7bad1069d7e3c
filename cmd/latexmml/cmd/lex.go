package cmd

import (
	"fmt"
	"os"

	"github.com/mathmlgo/latexmml/internal/lexer"
	"github.com/mathmlgo/latexmml/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexExpr   string
	lexTextMode bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a LaTeX math expression",
	Long: `Tokenize a LaTeX math expression and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
a math expression is tokenized.

Examples:
  # Tokenize a file
  latexmml lex expr.tex

  # Tokenize an inline expression
  latexmml lex -e '\frac{1}{2}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize an inline expression instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexTextMode, "text-mode", false, "start the lexer in text mode, as inside \\text{...}")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, err := readInput(lexExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	l.TextMode = lexTextMode

	count := 0
	for {
		tok := l.Next()
		fmt.Printf("@%-4d %s\n", tok.Pos, tok.String())
		count++
		if tok.Kind == token.KindEOF {
			break
		}
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("---\ntotal tokens: %d\n", count)
	}
	return nil
}

// readInput resolves the lex command's input: an inline expression via
// -e or a file path argument. With neither it returns an error; it does
// not read stdin.
func readInput(expr string, args []string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e for an inline expression")
}
