package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ltungv/clex/internal/clex"
	"github.com/ltungv/clex/internal/config"
	"github.com/ltungv/clex/internal/tui"
)

// Exit statuses of a failed evaluation
const (
	ExitSyntax  = 65
	ExitRuntime = 70
)

// ExitError asks main to exit with Code. The diagnostics have already been
// printed when it is returned.
type ExitError struct {
	Code int
}

func (err *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", err.Code)
}

type options struct {
	cfgFile string
	defines []string
	format  string
	showAST bool
	verbose bool
}

// NewRootCommand builds the clex command tree. Running it without a
// subcommand starts the line REPL.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "clex",
		Short: "clex - arithmetic statement evaluator",
		Long: `clex evaluates arithmetic statements over real numbers.

A statement is an expression or an assignment:
  1 + 2 * 3
  r = 2
  area = pi * r ^ 2
  sqrt(2) / 2

Operators: + - * / ^ and unary + -
Functions: sqrt log sin cos tan arcsin arccos arctan
Constants: pi euler phi eulerMascheroni

Without a subcommand clex starts the line REPL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file, toml or yaml (default: $CLEX_CONFIG or ./clex.toml)")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "define a variable as name=value, repeatable")
	flags.StringVar(&opts.format, "fmt", clex.DefaultFormat, "fmt verb used to print results")
	flags.BoolVar(&opts.showAST, "ast", false, "print the syntax tree of every statement")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newReplCommand(opts),
		newEvalCommand(opts),
		newTUICommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command line
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig reads the config file and applies the command line on top.
func (opts *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.cfgFile != "" {
		cfg, err = config.Load(opts.cfgFile)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("fmt") {
		cfg.Format = opts.format
	}
	if flags.Changed("ast") {
		cfg.ShowAST = opts.showAST
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	for _, binding := range opts.defines {
		if err := cfg.Define(binding); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// interpreterOptions turns cfg into interpreter options. Logs go to logs.
func interpreterOptions(cfg *config.Config, logs io.Writer) ([]clex.Option, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: level}))
	return []clex.Option{
		clex.WithFormat(cfg.Format),
		clex.WithAST(cfg.ShowAST),
		clex.WithLogger(logger),
	}, nil
}

// newSession creates a session seeded with the configured variables.
func (opts *options) newSession(cmd *cobra.Command) (*clex.Session, error) {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	clexOpts, err := interpreterOptions(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return clex.NewSession(clex.NewSymbolTableFrom(cfg.Variables), clexOpts...), nil
}

func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// errorRenderer colours messages when w is a terminal.
func errorRenderer(w io.Writer) func(string) string {
	if isTerminal(w) {
		return tui.RenderError
	}
	return func(msg string) string { return msg }
}
