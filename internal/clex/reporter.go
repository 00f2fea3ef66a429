package clex

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadRuntimeError() bool
}

// SimpleReporter writes each error on its own line to inner writer. Errors
// raised while evaluating are counted as runtime errors, everything else as
// syntax errors.
type SimpleReporter struct {
	writer        io.Writer
	render        func(string) string
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a reporter that writes errors as-is
func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

// NewStyledReporter creates a reporter that passes every message through
// render before writing it, e.g. to colour it.
func NewStyledReporter(writer io.Writer, render func(string) string) *SimpleReporter {
	return &SimpleReporter{writer: writer, render: render}
}

func (reporter *SimpleReporter) Report(err error) {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}

	msg := err.Error()
	if reporter.render != nil {
		msg = reporter.render(msg)
	}
	fmt.Fprintln(reporter.writer, msg)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}
