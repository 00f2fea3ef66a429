package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/clex/internal/clex"
)

func newEvalCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "eval [statement...]",
		Short: "Evaluate statements and exit",
		Long: `Evaluates each argument as a statement, in order, in one session.
With --file the statements are read from a file, one per line.

Evaluation stops at the first error. The exit status is 65 for a syntax
error and 70 for an evaluation error.`,
		Example: `  clex eval "r = 2" "pi * r ^ 2"
  clex eval -D x=3 "x ^ 2"
  clex eval --file statements.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 0 {
				return fmt.Errorf("nothing to evaluate: pass statements or --file")
			}
			sources := args
			if file != "" {
				content, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading statements: %w", err)
				}
				sources = append([]string{string(content)}, args...)
			}
			return runEval(cmd, opts, sources)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read statements from file")
	return cmd
}

func runEval(cmd *cobra.Command, opts *options, sources []string) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	clexOpts, err := interpreterOptions(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reporter := clex.NewStyledReporter(cmd.ErrOrStderr(), errorRenderer(cmd.ErrOrStderr()))
	interpreter := clex.NewInterpreter(
		clex.NewSymbolTableFrom(cfg.Variables),
		cmd.OutOrStdout(),
		reporter,
		clexOpts...,
	)
	for _, source := range sources {
		interpreter.Run(source)
		if reporter.HadError() {
			return &ExitError{ExitSyntax}
		}
		if reporter.HadRuntimeError() {
			return &ExitError{ExitRuntime}
		}
	}
	return nil
}
