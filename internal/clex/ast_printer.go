package clex

import (
	"fmt"
	"strconv"
)

// AstPrinter renders syntax trees in prefix form, e.g. (+ 1 (* 2 x)). It
// implements both ExprVisitor and StmtVisitor.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	s, _ := stmt.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	left, _ := expr.Lhs.Accept(printer)
	right, _ := expr.Rhs.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", expr.Op.Lexeme, left, right), nil
}

func (printer *AstPrinter) VisitOperandExpr(expr *OperandExpr) (interface{}, error) {
	if v, ok := expr.Tok.Num(); ok {
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return expr.Tok.Lexeme, nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprStr, _ := expr.Expr.Accept(printer)
	return fmt.Sprintf("(%s %s)", expr.Op.Lexeme, exprStr), nil
}

func (printer *AstPrinter) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	valueStr, _ := stmt.Value.Accept(printer)
	return fmt.Sprintf("(= %s %s)", stmt.Name.Lexeme, valueStr), nil
}

func (printer *AstPrinter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	return stmt.Expr.Accept(printer)
}
