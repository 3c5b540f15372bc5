package interpreter

import (
	"strconv"
	"strings"

	"github.com/2jungg/mol-lang/pkg/ast"
	"github.com/2jungg/mol-lang/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.AssignmentStatement:
		value, err := i.evaluateExpression(n.Value)
		if err != nil {
			return nil, err
		}
		i.env.Define(n.Name, value)
		// Assignments yield their stored value; statement position
		// discards it.
		return value, nil

	case *ast.PrintStatement:
		value, err := i.evaluateExpression(n.Value)
		if err != nil {
			return nil, err
		}
		i.emitLine(valueToString(value))
		return runtime.NilValue{}, nil

	case *ast.IfStatement:
		condition, err := i.evaluateExpression(n.Condition)
		if err != nil {
			return nil, err
		}
		if isTruthy(condition) {
			if err := i.executeBlock(n.Body); err != nil {
				return nil, err
			}
		}
		return runtime.NilValue{}, nil

	case *ast.WhileLoop:
		// No iteration cap: a non-terminating condition is a user error.
		for {
			condition, err := i.evaluateExpression(n.Condition)
			if err != nil {
				return nil, err
			}
			if !isTruthy(condition) {
				return runtime.NilValue{}, nil
			}
			if err := i.executeBlock(n.Body); err != nil {
				return nil, err
			}
		}

	case *ast.FunctionDefinition:
		i.env.DefineFunction(&runtime.Function{Name: n.Name, Body: n.Body})
		return runtime.NilValue{}, nil

	case *ast.FunctionCall:
		return i.evaluateFunctionCall(n)

	case *ast.ReturnStatement:
		value, err := i.evaluateExpression(n.Value)
		if err != nil {
			return nil, err
		}
		return nil, returnSignal{value: value}
	}
	return nil, newValueError("unhandled statement node: %s", node.NodeType())
}

// executeBlock runs body statements in order. Errors, including a
// returnSignal from any nesting depth, pass through untouched.
func (i *Interpreter) executeBlock(body []ast.Statement) error {
	for _, stmt := range body {
		if _, err := i.evaluateStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// evaluateFunctionCall runs the registered body in the caller's global
// environment: no parameter binding, no call frame. The body runs until it
// completes (result is "no value") or a 퇴근 signal unwinds to here, whose
// value becomes the call's result.
func (i *Interpreter) evaluateFunctionCall(n *ast.FunctionCall) (runtime.Value, error) {
	fn, ok := i.env.GetFunction(n.Name)
	if !ok {
		return nil, newNameError("function '%s' is not defined", n.Name)
	}
	for _, stmt := range fn.Body {
		if _, err := i.evaluateStatement(stmt); err != nil {
			if ret, ok := err.(returnSignal); ok {
				return ret.value, nil
			}
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evaluateExpression(node ast.Expression) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil

	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil

	case *ast.Identifier:
		value, ok := i.env.Get(n.Name)
		if !ok {
			return nil, newNameError("variable '%s' is not defined", n.Name)
		}
		return value, nil

	case *ast.InputExpression:
		return i.readInput(), nil

	case *ast.BinaryExpression:
		left, err := i.evaluateExpression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.evaluateExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return applyBinaryOperator(n.Op, left, right)
	}
	return nil, newValueError("unhandled expression node: %s", node.NodeType())
}

// readInput consumes the next input line. A line that parses as a base-10
// integer (surrounding whitespace tolerated) yields that integer, anything
// else the raw line. Exhausted input degrades to the empty string.
func (i *Interpreter) readInput() runtime.Value {
	line, ok := i.input.ReadLine()
	if !ok {
		return runtime.StringValue{}
	}
	if value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64); err == nil {
		return runtime.IntegerValue{Val: value}
	}
	return runtime.StringValue{Val: line}
}
