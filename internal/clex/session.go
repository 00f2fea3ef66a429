package clex

import (
	"fmt"
	"strings"
)

// Session commands. A line consisting of exactly one of these words is a
// command, not a statement.
const (
	CommandVars  = "vars"
	CommandReset = "reset"
	CommandExit  = "exit"
	CommandQuit  = "quit"
)

// Result is what a session produced for one input line.
type Result struct {
	Output string
	Errors string
	// Failed is set when Errors holds a syntax or evaluation error.
	Failed bool
	Quit   bool
}

// Session drives an interpreter one input line at a time and captures what
// it prints. It is used by the interactive front ends.
type Session struct {
	interpreter *Interpreter
	reporter    *SimpleReporter
	output      strings.Builder
	errors      strings.Builder
}

// NewSession creates a session over symbols, see NewInterpreter.
func NewSession(symbols *SymbolTable, opts ...Option) *Session {
	session := new(Session)
	session.reporter = NewSimpleReporter(&session.errors)
	session.interpreter = NewInterpreter(symbols, &session.output, session.reporter, opts...)
	return session
}

// Interpreter returns the interpreter the session drives.
func (session *Session) Interpreter() *Interpreter {
	return session.interpreter
}

// Execute runs a command or a statement line.
func (session *Session) Execute(line string) Result {
	session.output.Reset()
	session.errors.Reset()
	session.reporter.Reset()

	switch strings.TrimSpace(line) {
	case CommandExit, CommandQuit:
		return Result{Quit: true}
	case CommandReset:
		session.interpreter.Symbols().Reset()
		return Result{}
	case CommandVars:
		session.listVariables()
	default:
		session.interpreter.Run(line)
	}

	return Result{
		Output: session.output.String(),
		Errors: session.errors.String(),
		Failed: session.reporter.HadError() || session.reporter.HadRuntimeError(),
	}
}

func (session *Session) listVariables() {
	symbols := session.interpreter.Symbols()
	for _, name := range symbols.Names() {
		value, _ := symbols.Get(name)
		fmt.Fprintf(&session.output, "%s = %s\n", name, session.interpreter.Format(value))
	}
}
