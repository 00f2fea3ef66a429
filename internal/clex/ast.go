package clex

import "github.com/ltungv/clex/internal/token"

//go:generate go run ../cmd/ast_codegen ../clex

// NewOperandExpr creates a leaf holding a NUMBER or IDENTIFIER token.
func NewOperandExpr(tok *token.Token) *OperandExpr {
	if tok == nil || !tok.IsOperand() {
		panic("clex: invalid token for operand")
	}
	return &OperandExpr{tok}
}

// NewUnaryExpr creates a prefix operation. op must have a unary binding
// power.
func NewUnaryExpr(op *token.Token, expr Expr) *UnaryExpr {
	if op == nil || !op.IsUnaryOperator() {
		panic("clex: invalid token for unary operation")
	}
	if expr == nil {
		panic("clex: nil operand for unary operation")
	}
	return &UnaryExpr{op, expr}
}

// NewBinaryExpr creates an infix operation. op must have a binary binding
// power.
func NewBinaryExpr(op *token.Token, lhs Expr, rhs Expr) *BinaryExpr {
	if op == nil || !op.IsBinaryOperator() {
		panic("clex: invalid token for binary operation")
	}
	if lhs == nil || rhs == nil {
		panic("clex: nil operand for binary operation")
	}
	return &BinaryExpr{op, lhs, rhs}
}

// NewAssignStmt creates an assignment of value to the variable named by name.
func NewAssignStmt(name *token.Token, value Expr) *AssignStmt {
	if name == nil || name.Typ != token.IDENTIFIER {
		panic("clex: left-hand side of assignment must be an identifier")
	}
	if value == nil {
		panic("clex: nil right-hand side for assignment")
	}
	return &AssignStmt{name, value}
}

// NewExpressionStmt wraps an expression so it can be run as a statement.
func NewExpressionStmt(expr Expr) *ExpressionStmt {
	if expr == nil {
		panic("clex: nil expression statement")
	}
	return &ExpressionStmt{expr}
}

// Clone returns a deep copy of the operand.
func (expr *OperandExpr) Clone() Expr {
	return &OperandExpr{expr.Tok.Copy()}
}

// Clone returns a deep copy of the whole subtree. The copy costs time and
// memory linear in the number of nodes below expr; evaluation errors pay it
// once for the subexpression they point at.
func (expr *UnaryExpr) Clone() Expr {
	return &UnaryExpr{expr.Op.Copy(), expr.Expr.Clone()}
}

// Clone returns a deep copy of the whole subtree, see UnaryExpr.Clone.
func (expr *BinaryExpr) Clone() Expr {
	return &BinaryExpr{expr.Op.Copy(), expr.Lhs.Clone(), expr.Rhs.Clone()}
}
