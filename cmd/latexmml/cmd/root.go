package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "latexmml",
	Short: "LaTeX math to MathML AST tooling",
	Long: `latexmml tokenizes and parses LaTeX math expressions into an
arena-backed AST, and can split inline/block math spans out of a
larger document.

It does not render MathML itself: the lex/parse commands exist to
inspect the core's tokenizer and parser, and the replace command
exercises the delimiter-splitting collaborator a host would embed.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
