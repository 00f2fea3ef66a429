package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate statements line by line",
		Long: `Reads one statement per line and prints its result.

Commands:
  vars         - list the variables in scope
  reset        - forget every variable except the constants
  exit, quit   - leave the REPL`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func runREPL(cmd *cobra.Command, opts *options) error {
	session, err := opts.newSession(cmd)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	render := errorRenderer(cmd.ErrOrStderr())
	interactive := isTerminal(in)

	s := bufio.NewScanner(in)
	s.Split(bufio.ScanLines)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !s.Scan() {
			break
		}
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}

		res := session.Execute(s.Text())
		if res.Quit {
			return nil
		}
		fmt.Fprint(out, res.Output)
		for _, line := range strings.Split(strings.TrimRight(res.Errors, "\n"), "\n") {
			if line != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), render(line))
			}
		}
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return s.Err()
}
