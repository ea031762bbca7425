package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/lintlayer/internal/cli"
	"github.com/arthur-debert/lintlayer/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var reported *cli.ReportedError
		if !stderrors.As(err, &reported) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
