package clex

import (
	"context"
	"io"
	"log/slog"

	"github.com/ltungv/clex/internal/token"
)

// lowestPower is below every binding power, so parsing at this level consumes
// a whole expression.
const lowestPower = -1

// Parser composes the syntax tree of one statement from a token stream. See
// the package documentation for the grammar.
type Parser struct {
	tokens *TokenStream
	logger *slog.Logger
}

// NewParser creates a new parser over tokens. A nil logger discards logs.
func NewParser(tokens []*token.Token, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{NewTokenStream(tokens), logger.With("component", "parser")}
}

// Parse parses every statement until the end of input, skipping blank lines.
// It stops at the first error and returns the statements parsed before it.
func (parser *Parser) Parse() ([]Stmt, error) {
	statements := make([]Stmt, 0)
	for {
		for parser.tokens.Peek().Typ == token.NEWLINE {
			parser.tokens.Next()
		}
		if parser.AtEnd() {
			return statements, nil
		}
		stmt, err := parser.ParseStatement()
		if err != nil {
			return statements, err
		}
		statements = append(statements, stmt)
	}
}

// ParseStatement parses the next statement, which is either an assignment or
// an expression. The statement must end at a line break or at the end of
// input; a line break is consumed.
func (parser *Parser) ParseStatement() (Stmt, error) {
	stmt, err := parser.statement()
	if err != nil {
		parser.logger.Debug("parse failed", "error", err)
		return nil, err
	}

	switch tok := parser.tokens.Peek(); tok.Typ {
	case token.NEWLINE:
		parser.tokens.Next()
	case token.EOF:
	case token.RIGHT_PAREN:
		return nil, NewMismatchedParenError(tok, tok)
	default:
		// parseExpression only stops on the tokens above.
		panic("Unreachable")
	}

	if parser.logger.Enabled(context.Background(), slog.LevelDebug) {
		printer := AstPrinter{}
		parser.logger.Debug("parsed statement", "ast", printer.PrintStmt(stmt))
	}
	return stmt, nil
}

// ParseExpression parses a single expression.
func (parser *Parser) ParseExpression() (Expr, error) {
	return parser.parseExpression(lowestPower)
}

// AtEnd reports whether every token before EOF has been consumed.
func (parser *Parser) AtEnd() bool {
	return parser.tokens.AtEnd()
}

// stmt --> IDENT "=" expr | expr ;
func (parser *Parser) statement() (Stmt, error) {
	if parser.tokens.Peek().Typ != token.IDENTIFIER {
		expr, err := parser.ParseExpression()
		if err != nil {
			return nil, err
		}
		return NewExpressionStmt(expr), nil
	}

	name := parser.tokens.Next()
	if parser.tokens.Peek().Typ != token.EQUAL {
		parser.tokens.GiveBack(name)
		expr, err := parser.ParseExpression()
		if err != nil {
			return nil, err
		}
		return NewExpressionStmt(expr), nil
	}

	parser.tokens.Next() // consume '='
	value, err := parser.ParseExpression()
	if err != nil {
		return nil, err
	}
	return NewAssignStmt(name, value), nil
}

// parseExpression reads a prefix, then keeps folding binary operators into
// the left-hand side while they bind tighter than minPower.
func (parser *Parser) parseExpression(minPower int) (Expr, error) {
	lhs, err := parser.prefix()
	if err != nil {
		return nil, err
	}

	for {
		op := parser.tokens.Peek()
		switch op.Typ {
		case token.EOF, token.NEWLINE, token.RIGHT_PAREN:
			return lhs, nil
		}
		power, ok := op.BinaryPower()
		if !ok {
			return nil, NewExpectedOperatorError(op)
		}
		// '^' continues on an equal power so that it groups to the right,
		// every other operator stops so that it groups to the left.
		if op.IsRightAssociative() && power < minPower ||
			!op.IsRightAssociative() && power <= minPower {
			return lhs, nil
		}

		parser.tokens.Next()
		rhs, err := parser.parseExpression(power)
		if err != nil {
			return nil, err
		}
		lhs = NewBinaryExpr(op, lhs, rhs)
	}
}

// prefix --> NUMBER | IDENT | "(" expr ")" | unop expr ;
func (parser *Parser) prefix() (Expr, error) {
	tok := parser.tokens.Next()
	switch tok.Typ {
	case token.NUMBER, token.IDENTIFIER:
		return NewOperandExpr(tok), nil
	case token.LEFT_PAREN:
		expr, err := parser.parseExpression(lowestPower)
		if err != nil {
			return nil, err
		}
		if closing := parser.tokens.Next(); closing.Typ != token.RIGHT_PAREN {
			return nil, NewMismatchedParenError(tok, closing)
		}
		return expr, nil
	}

	if power, ok := tok.UnaryPower(); ok {
		expr, err := parser.parseExpression(power)
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(tok, expr), nil
	}
	return nil, NewExpectedTokenError(tok, token.IDENTIFIER, token.NUMBER, token.LEFT_PAREN)
}
