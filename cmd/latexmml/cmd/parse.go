package cmd

import (
	"fmt"
	"os"

	"github.com/mathmlgo/latexmml/pkg/latexmml"
	"github.com/spf13/cobra"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a LaTeX math expression and dump its AST",
	Long: `Parse a LaTeX math expression and display the resulting AST as an
indented outline.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse an inline expression instead of reading from a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readParseInput(args)
	if err != nil {
		return err
	}

	tree, perr := latexmml.Parse(input)
	if perr != nil {
		return fmt.Errorf("parse error: %w", perr)
	}

	fmt.Print(latexmml.Dump(tree))
	return nil
}

func readParseInput(args []string) (string, error) {
	if parseExpr != "" {
		return parseExpr, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := readAllStdin()
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return data, nil
}
