package clex

import (
	"fmt"
	"strings"

	"github.com/ltungv/clex/internal/token"
)

// ScanError reports a run of characters that does not start any token.
type ScanError struct {
	Line int
	Col  int
	Text string
}

// NewScanError creates a new scanner error
func NewScanError(line, col int, text string) error {
	return &ScanError{line, col, text}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[line %d:%d] Error: Unexpected character '%s'.",
		err.Line,
		err.Col,
		err.Text,
	)
}

// NumberRangeError reports a number literal outside the range of float64. The
// literal still scans as a NUMBER token holding ±Inf or zero.
type NumberRangeError struct {
	ScanError
}

// NewNumberRangeError creates an error for the literal text at line:col.
func NewNumberRangeError(line, col int, text string) error {
	return &NumberRangeError{ScanError{line, col, text}}
}

func (err *NumberRangeError) Error() string {
	return fmt.Sprintf(
		"[line %d:%d] Error: Number '%s' out of range.",
		err.Line,
		err.Col,
		err.Text,
	)
}

func (err *NumberRangeError) Unwrap() error {
	return &err.ScanError
}

// ParseError is a syntax error found at Token. Every error returned by the
// parser unwraps to a *ParseError.
type ParseError struct {
	Token   *token.Token
	Message string
}

// NewParseError creates a new parser error
func NewParseError(tok *token.Token, message string) error {
	return &ParseError{tok, message}
}

func (err *ParseError) Error() string {
	switch err.Token.Typ {
	case token.EOF, token.NEWLINE:
		return fmt.Sprintf(
			"[line %d:%d] Error at end: %s",
			err.Token.Line,
			err.Token.Col,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[line %d:%d] Error at '%s': %s",
		err.Token.Line,
		err.Token.Col,
		err.Token.Lexeme,
		err.Message,
	)
}

// ExpectedTokenError is returned when the token read is none of the kinds the
// grammar allows at that point.
type ExpectedTokenError struct {
	ParseError
	Expected []token.Type
}

func newExpectedTokenError(actual *token.Token, expected ...token.Type) *ExpectedTokenError {
	if len(expected) == 0 {
		panic("clex: expected token error without expected tokens")
	}
	var msg string
	if len(expected) == 1 {
		msg = fmt.Sprintf("Expect %s.", expected[0].Describe())
	} else {
		names := make([]string, len(expected))
		for i, typ := range expected {
			names[i] = typ.Describe()
		}
		msg = fmt.Sprintf("Expect one of %s.", strings.Join(names, ", "))
	}
	return &ExpectedTokenError{ParseError{actual, msg}, expected}
}

// NewExpectedTokenError creates an error for actual, listing the acceptable
// token types.
func NewExpectedTokenError(actual *token.Token, expected ...token.Type) error {
	return newExpectedTokenError(actual, expected...)
}

func (err *ExpectedTokenError) Unwrap() error {
	return &err.ParseError
}

// ExpectedOperatorError is an ExpectedTokenError where only a binary operator
// could continue the expression.
type ExpectedOperatorError struct {
	ExpectedTokenError
}

// NewExpectedOperatorError creates an error for actual where a binary
// operator was required.
func NewExpectedOperatorError(actual *token.Token) error {
	return &ExpectedOperatorError{*newExpectedTokenError(actual, token.BinaryOperators...)}
}

func (err *ExpectedOperatorError) Unwrap() error {
	return &err.ExpectedTokenError
}

// MismatchedParenError reports a parenthesis without its partner. Paren is
// the unmatched parenthesis, Token is where the parser noticed.
type MismatchedParenError struct {
	ParseError
	Paren *token.Token
}

// NewMismatchedParenError creates an error for paren, found unmatched near
// nearby.
func NewMismatchedParenError(paren *token.Token, nearby *token.Token) error {
	var msg string
	if paren.Typ == token.LEFT_PAREN {
		msg = fmt.Sprintf("Expect ')' to close '(' at %d:%d.", paren.Line, paren.Col)
	} else {
		msg = "Unmatched ')'."
	}
	return &MismatchedParenError{ParseError{nearby, msg}, paren}
}

func (err *MismatchedParenError) Unwrap() error {
	return &err.ParseError
}

// EvalError is an error raised while evaluating a well-formed expression.
// Expr is a copy of the subexpression that failed. Every error returned by
// evaluation unwraps to an *EvalError.
type EvalError struct {
	Expr    Expr
	Message string
}

// NewEvalError creates an evaluation error for a copy of expr.
func NewEvalError(expr Expr, message string) *EvalError {
	return &EvalError{expr.Clone(), message}
}

func (err *EvalError) Error() string {
	tok := exprToken(err.Expr)
	return fmt.Sprintf(
		"[line %d:%d] Error at '%s': %s",
		tok.Line,
		tok.Col,
		tok.Lexeme,
		err.Message,
	)
}

// Token returns the token that identifies the failed subexpression: the
// operator for operations, the literal or name for operands.
func (err *EvalError) Token() *token.Token {
	return exprToken(err.Expr)
}

// UndefinedVariableError is returned when an identifier has no binding.
type UndefinedVariableError struct {
	EvalError
	Name string
}

func newUndefinedVariableError(expr *OperandExpr) error {
	name := expr.Tok.Lexeme
	return &UndefinedVariableError{
		*NewEvalError(expr, fmt.Sprintf("Undefined variable '%s'.", name)),
		name,
	}
}

func (err *UndefinedVariableError) Unwrap() error {
	return &err.EvalError
}

// DivideByZeroError is returned for a division whose divisor is exactly
// zero. Divisors that are only close to zero because of rounding, such as
// sin(pi), are divided normally.
type DivideByZeroError struct {
	EvalError
}

func newDivideByZeroError(expr *BinaryExpr) error {
	return &DivideByZeroError{
		*NewEvalError(expr, fmt.Sprintf("Division by zero in %s.", printExpr(expr))),
	}
}

func (err *DivideByZeroError) Unwrap() error {
	return &err.EvalError
}

// ComplexResultError is returned when an operation has no real result, e.g.
// a negative base raised to a fractional power.
type ComplexResultError struct {
	EvalError
}

func newComplexResultError(expr Expr) error {
	return &ComplexResultError{
		*NewEvalError(expr, fmt.Sprintf("Result of %s is not a real number.", printExpr(expr))),
	}
}

func (err *ComplexResultError) Unwrap() error {
	return &err.EvalError
}

func exprToken(expr Expr) *token.Token {
	switch expr := expr.(type) {
	case *OperandExpr:
		return expr.Tok
	case *UnaryExpr:
		return expr.Op
	case *BinaryExpr:
		return expr.Op
	}
	panic("Unreachable")
}

func printExpr(expr Expr) string {
	printer := AstPrinter{}
	return printer.Print(expr)
}
