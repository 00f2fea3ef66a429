package clex

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultFormat is the fmt verb used to print results.
const DefaultFormat = "%g"

// Interpreter runs statements against a session symbol table and prints
// their results. This struct implements StmtVisitor
type Interpreter struct {
	symbols  *SymbolTable
	output   io.Writer
	reporter Reporter
	format   string
	showAST  bool
	logger   *slog.Logger
}

// Option customizes an Interpreter.
type Option func(*Interpreter)

// WithFormat sets the fmt verb used to print results, e.g. "%.4f".
func WithFormat(format string) Option {
	return func(in *Interpreter) {
		if format != "" {
			in.format = format
		}
	}
}

// WithAST makes the interpreter print the prefix form of every statement
// before its result.
func WithAST(show bool) Option {
	return func(in *Interpreter) { in.showAST = show }
}

// WithLogger sets the logger passed down to the parser.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// NewInterpreter creates an interpreter over symbols. A nil table is replaced
// by a fresh one holding the standard constants.
func NewInterpreter(symbols *SymbolTable, output io.Writer, reporter Reporter, opts ...Option) *Interpreter {
	if symbols == nil {
		symbols = NewSymbolTable()
	}
	in := &Interpreter{
		symbols:  symbols,
		output:   output,
		reporter: reporter,
		format:   DefaultFormat,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Symbols returns the session symbol table.
func (in *Interpreter) Symbols() *SymbolTable {
	return in.symbols
}

// Run scans, parses and interprets source. Every statement in source runs in
// order; the first error is reported and stops the run.
func (in *Interpreter) Run(source string) {
	scanner := NewScanner([]rune(source), in.reporter)
	tokens := scanner.Scan()
	if scanner.HadError() {
		return
	}

	parser := NewParser(tokens, in.logger)
	statements, err := parser.Parse()
	// Statements before a syntax error still run, like lines typed one by one.
	for _, stmt := range statements {
		if _, ok := in.Interpret(stmt); !ok {
			return
		}
	}
	if err != nil {
		in.reporter.Report(err)
	}
}

// Interpret executes a single statement and prints its result. Errors go to
// the reporter and ok is false.
func (in *Interpreter) Interpret(stmt Stmt) (value float64, ok bool) {
	if in.showAST {
		printer := AstPrinter{}
		fmt.Fprintln(in.output, printer.PrintStmt(stmt))
	}
	result, err := stmt.Accept(in)
	if err != nil {
		in.logger.Debug("evaluation failed", "error", err)
		in.reporter.Report(err)
		return 0, false
	}
	return result.(float64), true
}

func (in *Interpreter) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	value, err := stmt.Execute(in.symbols)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(in.output, "%s = %s\n", stmt.Name.Lexeme, in.Format(value))
	return value, nil
}

func (in *Interpreter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	value, err := stmt.Execute(in.symbols)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, in.Format(value))
	return value, nil
}

// Format renders value with the interpreter's result format.
func (in *Interpreter) Format(value float64) string {
	return fmt.Sprintf(in.format, value)
}
