// Command latexmml tokenizes, parses, and splits LaTeX math out of
// surrounding text, for debugging the core and exercising it as a
// host would.
package main

import (
	"fmt"
	"os"

	"github.com/mathmlgo/latexmml/cmd/latexmml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
