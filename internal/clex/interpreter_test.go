package clex

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpreterRun(t *testing.T) {
	testCases := []struct {
		src string
		out string
	}{
		{"", ""},
		{"1 + 2", "3\n"},
		{"7 / 2", "3.5\n"},
		{"2 ^ 0.5", "1.4142135623730951\n"},
		{"1e21 * 10", "1e+22\n"},
		{"a = 2", "a = 2\n"},
		{"a = 2\na * 3", "a = 2\n6\n"},
		{"\n\n1\n\n", "1\n"},
		{"pi", "3.141592653589793\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		reporter := newMockReporter()
		var out strings.Builder
		interpreter := NewInterpreter(nil, &out, reporter)
		interpreter.Run(tc.src)

		assert.False(reporter.HadError(), tc.src)
		assert.False(reporter.HadRuntimeError(), tc.src)
		assert.Equal(tc.out, out.String(), tc.src)
	}
}

func TestInterpreterKeepsSession(t *testing.T) {
	assert := assert.New(t)

	reporter := newMockReporter()
	var out strings.Builder
	interpreter := NewInterpreter(NewSymbolTableFrom(map[string]float64{"r": 2}), &out, reporter)
	interpreter.Run("area = pi * r ^ 2")
	interpreter.Run("area / pi")

	assert.Equal("area = 12.566370614359172\n4\n", out.String())
	v, ok := interpreter.Symbols().Get("area")
	assert.True(ok)
	assert.InDelta(12.566370614359172, v, 1e-12)
}

func TestInterpreterFormat(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	interpreter := NewInterpreter(nil, &out, newMockReporter(), WithFormat("%.3f"))
	interpreter.Run("x = 1 / 3\nx * 3")

	assert.Equal("x = 0.333\n1.000\n", out.String())
	assert.Equal("0.500", interpreter.Format(0.5))

	interpreter = NewInterpreter(nil, &out, newMockReporter(), WithFormat(""))
	assert.Equal("0.5", interpreter.Format(0.5))
}

func TestInterpreterShowAST(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	interpreter := NewInterpreter(nil, &out, newMockReporter(), WithAST(true))
	interpreter.Run("a = -2 ^ 2")

	assert.Equal("(= a (^ (- 2) 2))\na = 4\n", out.String())
}

func TestInterpreterReportsSyntaxError(t *testing.T) {
	assert := assert.New(t)

	reporter := newMockReporter()
	var out strings.Builder
	interpreter := NewInterpreter(nil, &out, reporter)
	interpreter.Run("1 +")

	assert.True(reporter.HadError())
	assert.False(reporter.HadRuntimeError())
	assert.Empty(out.String())
	if assert.Len(reporter.errors, 1) {
		var expectedErr *ExpectedTokenError
		assert.ErrorAs(reporter.errors[0], &expectedErr)
	}
}

func TestInterpreterReportsScanError(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{"1 # 2", "[line 1:3] Error: Unexpected character '#'."},
		{"\u0661 + 1", "[line 1:1] Error: Unexpected character '\u0661'."},
		{"\uff11 + 1", "[line 1:1] Error: Unexpected character '\uff11'."},
		{"1e400 + 1", "[line 1:1] Error: Number '1e400' out of range."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		reporter := newMockReporter()
		var out strings.Builder
		interpreter := NewInterpreter(nil, &out, reporter)
		interpreter.Run(tc.src)

		assert.True(reporter.HadError(), tc.src)
		assert.Empty(out.String(), tc.src)
		// the scan error is the only one, the parser never runs
		if assert.Len(reporter.errors, 1, tc.src) {
			var scanErr *ScanError
			assert.ErrorAs(reporter.errors[0], &scanErr, tc.src)
			assert.Equal(tc.msg, reporter.errors[0].Error(), tc.src)
		}
	}
}

func TestInterpreterReportsRuntimeError(t *testing.T) {
	assert := assert.New(t)

	reporter := newMockReporter()
	var out strings.Builder
	interpreter := NewInterpreter(nil, &out, reporter)
	interpreter.Run("a = 1\nb = a / 0\na + 1")

	assert.False(reporter.HadError())
	assert.True(reporter.HadRuntimeError())
	assert.Equal("a = 1\n", out.String())
	_, ok := interpreter.Symbols().Get("b")
	assert.False(ok)
}

func TestInterpreterRunsStatementsBeforeSyntaxError(t *testing.T) {
	assert := assert.New(t)

	reporter := newMockReporter()
	var out strings.Builder
	interpreter := NewInterpreter(nil, &out, reporter)
	interpreter.Run("a = 1\n(a")

	assert.True(reporter.HadError())
	assert.Equal("a = 1\n", out.String())
	v, _ := interpreter.Symbols().Get("a")
	assert.Equal(1.0, v)
}

func TestInterpreterInterpretReturnsValue(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	interpreter := NewInterpreter(nil, &out, newMockReporter())

	stmt, err := parseSource("2 * 21")
	assert.NoError(err)
	v, ok := interpreter.Interpret(stmt)
	assert.True(ok)
	assert.Equal(42.0, v)

	stmt, err = parseSource("2 / 0")
	assert.NoError(err)
	_, ok = interpreter.Interpret(stmt)
	assert.False(ok)
}

func TestInterpreterLogsParsedStatements(t *testing.T) {
	assert := assert.New(t)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	interpreter := NewInterpreter(nil, &strings.Builder{}, newMockReporter(), WithLogger(logger))
	interpreter.Run("1 + 2")

	assert.Contains(logs.String(), "parsed statement")
	assert.Contains(logs.String(), `ast="(+ 1 2)"`)
	assert.Contains(logs.String(), "component=parser")
}
