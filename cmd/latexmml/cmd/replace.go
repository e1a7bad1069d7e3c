package cmd

import (
	"fmt"
	"strings"

	"github.com/mathmlgo/latexmml/pkg/latexmml"
	"github.com/spf13/cobra"
)

var (
	replaceInlineOpen, replaceInlineClose string
	replaceBlockOpen, replaceBlockClose   string
)

var replaceCmd = &cobra.Command{
	Use:   "replace [file]",
	Short: "Split inline/block math spans out of a document and parse each one",
	Long: `Scan a document for inline and block math delimiters, parse the
content found between each pair, and print a dump of its AST in place
of the original span.

This exercises the delimiter-splitting collaborator a host embeds the
core behind; it does not render MathML, since this tool has no
renderer of its own.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)

	replaceCmd.Flags().StringVar(&replaceInlineOpen, "inline-open", "$", "inline math opening delimiter")
	replaceCmd.Flags().StringVar(&replaceInlineClose, "inline-close", "$", "inline math closing delimiter")
	replaceCmd.Flags().StringVar(&replaceBlockOpen, "block-open", "$$", "block math opening delimiter")
	replaceCmd.Flags().StringVar(&replaceBlockClose, "block-close", "$$", "block math closing delimiter")
}

func runReplace(cmd *cobra.Command, args []string) error {
	input, err := readParseInput(args)
	if err != nil {
		return err
	}

	r := latexmml.NewReplacer(
		[2]string{replaceInlineOpen, replaceInlineClose},
		[2]string{replaceBlockOpen, replaceBlockClose},
	)

	out, err := r.Replace(input, func(out *strings.Builder, content string, display latexmml.Display) error {
		tree, perr := latexmml.Parse(content)
		if perr != nil {
			return perr
		}
		fmt.Fprintf(out, "<%s>\n%s</%s>", display, latexmml.Dump(tree), display)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
