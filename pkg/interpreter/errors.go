package interpreter

import (
	"fmt"

	"github.com/2jungg/mol-lang/pkg/parser"
)

// Runtime error kinds. Each is fatal to the run and caught exactly once at
// the Run boundary; nothing is retried or resumed.

// nameError reports a variable or function referenced before definition.
type nameError struct {
	message string
}

func (e nameError) Error() string { return e.message }

func newNameError(format string, args ...any) error {
	return nameError{message: fmt.Sprintf(format, args...)}
}

// typeError reports an invalid combination of runtime value kinds in a
// binary operation.
type typeError struct {
	message string
}

func (e typeError) Error() string { return e.message }

func newTypeError(format string, args ...any) error {
	return typeError{message: fmt.Sprintf(format, args...)}
}

// valueError reports conditions a well-formed AST cannot produce, like an
// operator tag outside the closed set.
type valueError struct {
	message string
}

func (e valueError) Error() string { return e.message }

func newValueError(format string, args ...any) error {
	return valueError{message: fmt.Sprintf(format, args...)}
}

// errorKind maps a caught error onto the kind label of the reported
// `Error: <Kind>: <message>` line.
func errorKind(err error) string {
	switch err.(type) {
	case *parser.SyntaxError:
		return "SyntaxError"
	case nameError:
		return "NameError"
	case typeError:
		return "TypeError"
	case valueError:
		return "ValueError"
	case returnSignal:
		return "ReturnError"
	}
	return "RuntimeError"
}
