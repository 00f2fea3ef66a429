package token

import (
	"fmt"
	"strconv"
)

// Token represents group a characters with additional information that was
// obtained during the scanning phase. Only NUMBER tokens carry a literal, and
// only IDENTIFIER tokens use their lexeme as a payload.
type Token struct {
	Typ     Type
	Lexeme  string
	Literal interface{}
	Line    int
	Col     int
}

// New creates a new token
func New(typ Type, lexeme string, literal interface{}, line, col int) *Token {
	return &Token{typ, lexeme, literal, line, col}
}

// Number creates a NUMBER token holding the given value.
func Number(value float64) *Token {
	return &Token{Typ: NUMBER, Lexeme: strconv.FormatFloat(value, 'g', -1, 64), Literal: value}
}

// Identifier creates an IDENTIFIER token for the given name.
func Identifier(name string) *Token {
	return &Token{Typ: IDENTIFIER, Lexeme: name}
}

// Simple creates a token that carries no payload. Panics for NUMBER and
// IDENTIFIER, use Number and Identifier instead.
func Simple(typ Type) *Token {
	if typ == NUMBER || typ == IDENTIFIER {
		panic("token: no payload provided for " + typ.String())
	}
	return &Token{Typ: typ, Lexeme: typ.Lexeme()}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

// Num returns the value of a NUMBER token.
func (t *Token) Num() (float64, bool) {
	if t.Typ != NUMBER {
		return 0, false
	}
	v, ok := t.Literal.(float64)
	return v, ok
}

// Ident returns the name of an IDENTIFIER token.
func (t *Token) Ident() (string, bool) {
	if t.Typ != IDENTIFIER {
		return "", false
	}
	return t.Lexeme, true
}

// Equal compares the kinds of both tokens and, for numbers and identifiers,
// their payloads. Positions are ignored.
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Typ != other.Typ {
		return false
	}
	switch t.Typ {
	case NUMBER:
		a, _ := t.Num()
		b, _ := other.Num()
		return a == b
	case IDENTIFIER:
		return t.Lexeme == other.Lexeme
	}
	return true
}

// Copy returns a shallow copy of the token.
func (t *Token) Copy() *Token {
	c := *t
	return &c
}

// BinaryPower returns the binding power of the token when it is used as a
// binary operator.
func (t *Token) BinaryPower() (int, bool) {
	switch t.Typ {
	case PLUS, MINUS:
		return 1, true
	case STAR, SLASH:
		return 2, true
	case CARET:
		return 3, true
	}
	return 0, false
}

// UnaryPower returns the binding power of the token when it is used as a
// prefix operator.
func (t *Token) UnaryPower() (int, bool) {
	switch t.Typ {
	case PLUS, MINUS:
		return 5, true
	case SQRT, LOG, SIN, COS, TAN, ARCSIN, ARCCOS, ARCTAN:
		return 4, true
	}
	return 0, false
}

// IsOperand reports whether the token can be a leaf of the syntax tree.
func (t *Token) IsOperand() bool {
	return t.Typ == NUMBER || t.Typ == IDENTIFIER
}

// IsUnaryOperator reports whether the token can prefix an operand.
func (t *Token) IsUnaryOperator() bool {
	_, ok := t.UnaryPower()
	return ok
}

// IsBinaryOperator reports whether the token can join two operands.
func (t *Token) IsBinaryOperator() bool {
	_, ok := t.BinaryPower()
	return ok
}

// IsRightAssociative reports whether a chain of this operator groups from the
// right. Only '^' does.
func (t *Token) IsRightAssociative() bool {
	return t.Typ == CARET
}
