package clex

import (
	"math"

	"github.com/ltungv/clex/internal/token"
)

// Evaluate returns the literal value, or looks the name up in symbols.
func (expr *OperandExpr) Evaluate(symbols *SymbolTable) (float64, error) {
	if v, ok := expr.Tok.Num(); ok {
		return v, nil
	}
	if v, ok := symbols.Get(expr.Tok.Lexeme); ok {
		return v, nil
	}
	return 0, newUndefinedVariableError(expr)
}

// Evaluate applies the prefix operator to the value of its operand.
func (expr *UnaryExpr) Evaluate(symbols *SymbolTable) (float64, error) {
	v, err := expr.Expr.Evaluate(symbols)
	if err != nil {
		return 0, err
	}

	var result float64
	switch expr.Op.Typ {
	case token.PLUS:
		return v, nil
	case token.MINUS:
		return -v, nil
	case token.SQRT:
		result = math.Sqrt(v)
	case token.LOG:
		result = math.Log(v)
	case token.SIN:
		result = math.Sin(v)
	case token.COS:
		result = math.Cos(v)
	case token.TAN:
		result = math.Tan(v)
	case token.ARCSIN:
		result = math.Asin(v)
	case token.ARCCOS:
		result = math.Acos(v)
	case token.ARCTAN:
		result = math.Atan(v)
	default:
		panic("Unreachable")
	}
	// The math functions answer NaN outside their real domain.
	if math.IsNaN(result) && !math.IsNaN(v) {
		return 0, newComplexResultError(expr)
	}
	return result, nil
}

// Evaluate computes both operands, left first, then combines them. There is
// no short-circuiting.
func (expr *BinaryExpr) Evaluate(symbols *SymbolTable) (float64, error) {
	lhs, err := expr.Lhs.Evaluate(symbols)
	if err != nil {
		return 0, err
	}
	rhs, err := expr.Rhs.Evaluate(symbols)
	if err != nil {
		return 0, err
	}

	switch expr.Op.Typ {
	case token.PLUS:
		return lhs + rhs, nil
	case token.MINUS:
		return lhs - rhs, nil
	case token.STAR:
		return lhs * rhs, nil
	case token.SLASH:
		// Exact comparison. -0 == 0 holds for floats.
		if rhs == 0 {
			return 0, newDivideByZeroError(expr)
		}
		return lhs / rhs, nil
	case token.CARET:
		result := math.Pow(lhs, rhs)
		if math.IsNaN(result) && !math.IsNaN(lhs) && !math.IsNaN(rhs) {
			return 0, newComplexResultError(expr)
		}
		return result, nil
	}
	panic("Unreachable")
}

// Execute evaluates the expression. The symbol table is not modified.
func (stmt *ExpressionStmt) Execute(symbols *SymbolTable) (float64, error) {
	return stmt.Expr.Evaluate(symbols)
}

// Execute evaluates the right-hand side and binds the result. On error the
// table is left untouched.
func (stmt *AssignStmt) Execute(symbols *SymbolTable) (float64, error) {
	v, err := stmt.Value.Evaluate(symbols)
	if err != nil {
		return 0, err
	}
	symbols.Set(stmt.Name.Lexeme, v)
	return v, nil
}
