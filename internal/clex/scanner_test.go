package clex

import (
	"errors"
	"math"
	"testing"

	"github.com/ltungv/clex/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		// single character token
		{"(", []*token.Token{{Typ: token.LEFT_PAREN, Lexeme: "(", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{")", []*token.Token{{Typ: token.RIGHT_PAREN, Lexeme: ")", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{"+", []*token.Token{{Typ: token.PLUS, Lexeme: "+", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{"-", []*token.Token{{Typ: token.MINUS, Lexeme: "-", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{"*", []*token.Token{{Typ: token.STAR, Lexeme: "*", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{"/", []*token.Token{{Typ: token.SLASH, Lexeme: "/", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{"^", []*token.Token{{Typ: token.CARET, Lexeme: "^", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{"=", []*token.Token{{Typ: token.EQUAL, Lexeme: "=", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		// literals
		{"a", []*token.Token{{Typ: token.IDENTIFIER, Lexeme: "a", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 2)}},
		{"abc123", []*token.Token{{Typ: token.IDENTIFIER, Lexeme: "abc123", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 7)}},
		{"_a_1", []*token.Token{{Typ: token.IDENTIFIER, Lexeme: "_a_1", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 5)}},
		{"sqrtx", []*token.Token{{Typ: token.IDENTIFIER, Lexeme: "sqrtx", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 6)}},
		{"10", []*token.Token{{Typ: token.NUMBER, Lexeme: "10", Literal: 10.0, Line: 1, Col: 1}, tokEOF(1, 3)}},
		{"001", []*token.Token{{Typ: token.NUMBER, Lexeme: "001", Literal: 1.0, Line: 1, Col: 1}, tokEOF(1, 4)}},
		{"0.1", []*token.Token{{Typ: token.NUMBER, Lexeme: "0.1", Literal: 0.1, Line: 1, Col: 1}, tokEOF(1, 4)}},
		{".5", []*token.Token{{Typ: token.NUMBER, Lexeme: ".5", Literal: 0.5, Line: 1, Col: 1}, tokEOF(1, 3)}},
		{"123.456", []*token.Token{{Typ: token.NUMBER, Lexeme: "123.456", Literal: 123.456, Line: 1, Col: 1}, tokEOF(1, 8)}},
		{"1.5e3", []*token.Token{{Typ: token.NUMBER, Lexeme: "1.5e3", Literal: 1500.0, Line: 1, Col: 1}, tokEOF(1, 6)}},
		{"2E-2", []*token.Token{{Typ: token.NUMBER, Lexeme: "2E-2", Literal: 0.02, Line: 1, Col: 1}, tokEOF(1, 5)}},
		// keywords
		{"sqrt", []*token.Token{{Typ: token.SQRT, Lexeme: "sqrt", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 5)}},
		{"log", []*token.Token{{Typ: token.LOG, Lexeme: "log", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 4)}},
		{"sin", []*token.Token{{Typ: token.SIN, Lexeme: "sin", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 4)}},
		{"cos", []*token.Token{{Typ: token.COS, Lexeme: "cos", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 4)}},
		{"tan", []*token.Token{{Typ: token.TAN, Lexeme: "tan", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 4)}},
		{"arcsin", []*token.Token{{Typ: token.ARCSIN, Lexeme: "arcsin", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 7)}},
		{"arccos", []*token.Token{{Typ: token.ARCCOS, Lexeme: "arccos", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 7)}},
		{"arctan", []*token.Token{{Typ: token.ARCTAN, Lexeme: "arctan", Literal: nil, Line: 1, Col: 1}, tokEOF(1, 7)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		reporter := newMockReporter()
		scanner := NewScanner([]rune(tc.src), reporter)

		assert.Equal(tc.toks, scanner.Scan(), tc.src)
		assert.False(reporter.HadError())
		assert.False(scanner.HadError())
	}
}

func TestScanPositions(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		{"", []*token.Token{tokEOF(1, 1)}},
		{" \t\r ", []*token.Token{tokEOF(1, 5)}},
		{
			"1 + 2",
			[]*token.Token{
				{Typ: token.NUMBER, Lexeme: "1", Literal: 1.0, Line: 1, Col: 1},
				{Typ: token.PLUS, Lexeme: "+", Literal: nil, Line: 1, Col: 3},
				{Typ: token.NUMBER, Lexeme: "2", Literal: 2.0, Line: 1, Col: 5},
				tokEOF(1, 6),
			},
		},
		{
			"a\nb",
			[]*token.Token{
				{Typ: token.IDENTIFIER, Lexeme: "a", Literal: nil, Line: 1, Col: 1},
				{Typ: token.NEWLINE, Lexeme: "\n", Literal: nil, Line: 1, Col: 2},
				{Typ: token.IDENTIFIER, Lexeme: "b", Literal: nil, Line: 2, Col: 1},
				tokEOF(2, 2),
			},
		},
		{
			"x=sin(pi)",
			[]*token.Token{
				{Typ: token.IDENTIFIER, Lexeme: "x", Literal: nil, Line: 1, Col: 1},
				{Typ: token.EQUAL, Lexeme: "=", Literal: nil, Line: 1, Col: 2},
				{Typ: token.SIN, Lexeme: "sin", Literal: nil, Line: 1, Col: 3},
				{Typ: token.LEFT_PAREN, Lexeme: "(", Literal: nil, Line: 1, Col: 6},
				{Typ: token.IDENTIFIER, Lexeme: "pi", Literal: nil, Line: 1, Col: 7},
				{Typ: token.RIGHT_PAREN, Lexeme: ")", Literal: nil, Line: 1, Col: 9},
				tokEOF(1, 10),
			},
		},
		// an exponent marker without digits belongs to the next token
		{
			"2e",
			[]*token.Token{
				{Typ: token.NUMBER, Lexeme: "2", Literal: 2.0, Line: 1, Col: 1},
				{Typ: token.IDENTIFIER, Lexeme: "e", Literal: nil, Line: 1, Col: 2},
				tokEOF(1, 3),
			},
		},
		{
			"2.x",
			[]*token.Token{
				{Typ: token.NUMBER, Lexeme: "2", Literal: 2.0, Line: 1, Col: 1},
				{Typ: token.ERROR, Lexeme: ".", Literal: nil, Line: 1, Col: 2},
				{Typ: token.IDENTIFIER, Lexeme: "x", Literal: nil, Line: 1, Col: 3},
				tokEOF(1, 4),
			},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		scanner := NewScanner([]rune(tc.src), newMockReporter())
		assert.Equal(tc.toks, scanner.Scan(), tc.src)
	}
}

func TestScanInvalidCharacters(t *testing.T) {
	assert := assert.New(t)

	reporter := newMockReporter()
	scanner := NewScanner([]rune("1 $% + 2"), reporter)
	toks := scanner.Scan()

	assert.Equal([]*token.Token{
		{Typ: token.NUMBER, Lexeme: "1", Literal: 1.0, Line: 1, Col: 1},
		{Typ: token.ERROR, Lexeme: "$%", Literal: nil, Line: 1, Col: 3},
		{Typ: token.PLUS, Lexeme: "+", Literal: nil, Line: 1, Col: 6},
		{Typ: token.NUMBER, Lexeme: "2", Literal: 2.0, Line: 1, Col: 8},
		tokEOF(1, 9),
	}, toks)
	assert.True(scanner.HadError())
	assert.True(reporter.HadError())
	assert.False(reporter.HadRuntimeError())
	if assert.Len(reporter.errors, 1) {
		assert.Equal(&ScanError{1, 3, "$%"}, reporter.errors[0])
		assert.Equal("[line 1:3] Error: Unexpected character '$%'.", reporter.errors[0].Error())
	}
}

func TestScanNumberOutOfRange(t *testing.T) {
	assert := assert.New(t)

	reporter := newMockReporter()
	scanner := NewScanner([]rune("1e400"), reporter)
	toks := scanner.Scan()

	assert.True(scanner.HadError())
	assert.False(reporter.HadRuntimeError())
	if assert.Len(reporter.errors, 1) {
		var rangeErr *NumberRangeError
		assert.True(errors.As(reporter.errors[0], &rangeErr))
		var scanErr *ScanError
		assert.True(errors.As(reporter.errors[0], &scanErr))
		assert.Equal(&ScanError{1, 1, "1e400"}, scanErr)
		assert.Equal("[line 1:1] Error: Number '1e400' out of range.", reporter.errors[0].Error())
	}
	v, ok := toks[0].Num()
	assert.True(ok)
	assert.True(math.IsInf(v, 1))
}

func TestScanNonASCIIDigits(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
		err  *ScanError
	}{
		{
			"\u0663 + 1",
			[]*token.Token{
				{Typ: token.ERROR, Lexeme: "\u0663", Literal: nil, Line: 1, Col: 1},
				{Typ: token.PLUS, Lexeme: "+", Literal: nil, Line: 1, Col: 3},
				{Typ: token.NUMBER, Lexeme: "1", Literal: 1.0, Line: 1, Col: 5},
				tokEOF(1, 6),
			},
			&ScanError{1, 1, "\u0663"},
		},
		{
			"2*\uff11\uff12",
			[]*token.Token{
				{Typ: token.NUMBER, Lexeme: "2", Literal: 2.0, Line: 1, Col: 1},
				{Typ: token.STAR, Lexeme: "*", Literal: nil, Line: 1, Col: 2},
				{Typ: token.ERROR, Lexeme: "\uff11\uff12", Literal: nil, Line: 1, Col: 3},
				tokEOF(1, 5),
			},
			&ScanError{1, 3, "\uff11\uff12"},
		},
		{
			"1.\u0665",
			[]*token.Token{
				{Typ: token.NUMBER, Lexeme: "1", Literal: 1.0, Line: 1, Col: 1},
				{Typ: token.ERROR, Lexeme: ".\u0665", Literal: nil, Line: 1, Col: 2},
				tokEOF(1, 4),
			},
			&ScanError{1, 2, ".\u0665"},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		reporter := newMockReporter()
		scanner := NewScanner([]rune(tc.src), reporter)

		assert.Equal(tc.toks, scanner.Scan(), tc.src)
		assert.True(scanner.HadError(), tc.src)
		if assert.Len(reporter.errors, 1, tc.src) {
			assert.Equal(tc.err, reporter.errors[0], tc.src)
			var rangeErr *NumberRangeError
			assert.False(errors.As(reporter.errors[0], &rangeErr), tc.src)
		}
	}
}

func TestScanIsCached(t *testing.T) {
	assert := assert.New(t)

	reporter := newMockReporter()
	scanner := NewScanner([]rune("$"), reporter)
	first := scanner.Scan()
	second := scanner.Scan()

	assert.Equal(first, second)
	assert.Len(reporter.errors, 1)
}
