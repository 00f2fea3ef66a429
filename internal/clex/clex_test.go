package clex

import (
	"errors"

	"github.com/ltungv/clex/internal/token"
)

type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func tokEOF(line, col int) *token.Token {
	return token.New(token.EOF, "", nil, line, col)
}

func num(v float64) *OperandExpr {
	return NewOperandExpr(token.Number(v))
}

func ident(name string) *OperandExpr {
	return NewOperandExpr(token.Identifier(name))
}

func op(typ token.Type) *token.Token {
	return token.Simple(typ)
}

// scanSource scans src, failing loudly on anything the scanner rejects.
func scanSource(src string) []*token.Token {
	reporter := newMockReporter()
	tokens := NewScanner([]rune(src), reporter).Scan()
	if reporter.HadError() {
		panic(reporter.errors[0])
	}
	return tokens
}

func parseSource(src string) (Stmt, error) {
	return NewParser(scanSource(src), nil).ParseStatement()
}

// evalSource parses and runs a single statement against symbols.
func evalSource(src string, symbols *SymbolTable) (float64, error) {
	stmt, err := parseSource(src)
	if err != nil {
		return 0, err
	}
	return stmt.Execute(symbols)
}
