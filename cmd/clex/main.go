// This is a REPL and one-shot evaluator for arithmetic statements.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ltungv/clex/cmd/clex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
