package interpreter

import (
	"strconv"
	"strings"

	"github.com/2jungg/mol-lang/pkg/ast"
	"github.com/2jungg/mol-lang/pkg/runtime"
)

func applyBinaryOperator(op ast.Operator, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.OpAdd:
		return evaluateAdd(left, right)
	case ast.OpMul:
		return evaluateMultiply(left, right)
	case ast.OpEq:
		return boolValue(valuesEqual(left, right)), nil
	case ast.OpLt, ast.OpLe:
		return evaluateOrdering(op, left, right)
	}
	// Unreachable from a well-formed AST; the parser's operator table is
	// the same closed set.
	return nil, newValueError("unsupported operator: %s", op)
}

func evaluateAdd(left runtime.Value, right runtime.Value) (runtime.Value, error) {
	switch l := left.(type) {
	case runtime.IntegerValue:
		if r, ok := right.(runtime.IntegerValue); ok {
			return runtime.IntegerValue{Val: l.Val + r.Val}, nil
		}
	case runtime.StringValue:
		if r, ok := right.(runtime.StringValue); ok {
			return runtime.StringValue{Val: l.Val + r.Val}, nil
		}
	}
	return nil, newTypeError("unsupported operand types for +: %s and %s", left.Kind(), right.Kind())
}

func evaluateMultiply(left runtime.Value, right runtime.Value) (runtime.Value, error) {
	switch l := left.(type) {
	case runtime.IntegerValue:
		switch r := right.(type) {
		case runtime.IntegerValue:
			return runtime.IntegerValue{Val: l.Val * r.Val}, nil
		case runtime.StringValue:
			repeated, err := repeatString(r.Val, l.Val)
			if err != nil {
				return nil, err
			}
			return runtime.StringValue{Val: repeated}, nil
		}
	case runtime.StringValue:
		if r, ok := right.(runtime.IntegerValue); ok {
			repeated, err := repeatString(l.Val, r.Val)
			if err != nil {
				return nil, err
			}
			return runtime.StringValue{Val: repeated}, nil
		}
	}
	return nil, newTypeError("unsupported operand types for *: %s and %s", left.Kind(), right.Kind())
}

// maxRepeatLen bounds the product of a string repetition. The limit keeps
// a runaway count from crashing the run; the failure must surface as a
// reported error line like any other.
const maxRepeatLen = 1 << 30

// repeatString carries the host * semantics for string repetition: a
// non-positive count yields the empty string. A product too large to
// allocate is a runtime error, not a crash.
func repeatString(s string, count int64) (string, error) {
	if count <= 0 || s == "" {
		return "", nil
	}
	if count > int64(maxRepeatLen/len(s)) {
		return "", newValueError("repeated string is too long")
	}
	return strings.Repeat(s, int(count)), nil
}

// valuesEqual never fails: mismatched kinds simply compare unequal.
func valuesEqual(left runtime.Value, right runtime.Value) bool {
	switch l := left.(type) {
	case runtime.IntegerValue:
		r, ok := right.(runtime.IntegerValue)
		return ok && l.Val == r.Val
	case runtime.StringValue:
		r, ok := right.(runtime.StringValue)
		return ok && l.Val == r.Val
	case runtime.NilValue:
		_, ok := right.(runtime.NilValue)
		return ok
	}
	return false
}

// evaluateOrdering handles 작 and 같작 between two integers or two strings
// (byte-wise lexicographic order). Mixed operands are a type mismatch.
func evaluateOrdering(op ast.Operator, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	if l, ok := left.(runtime.IntegerValue); ok {
		if r, ok := right.(runtime.IntegerValue); ok {
			if op == ast.OpLt {
				return boolValue(l.Val < r.Val), nil
			}
			return boolValue(l.Val <= r.Val), nil
		}
	}
	if l, ok := left.(runtime.StringValue); ok {
		if r, ok := right.(runtime.StringValue); ok {
			if op == ast.OpLt {
				return boolValue(l.Val < r.Val), nil
			}
			return boolValue(l.Val <= r.Val), nil
		}
	}
	return nil, newTypeError("'%s' not supported between %s and %s", op, left.Kind(), right.Kind())
}

// boolValue renders comparison results as integers 0/1. The language has
// no boolean kind; conditions take integer truthiness, so comparisons
// participate exactly as 0/1 would.
func boolValue(b bool) runtime.Value {
	if b {
		return runtime.IntegerValue{Val: 1}
	}
	return runtime.IntegerValue{Val: 0}
}

// isTruthy: non-zero integer or non-empty string.
func isTruthy(v runtime.Value) bool {
	switch val := v.(type) {
	case runtime.IntegerValue:
		return val.Val != 0
	case runtime.StringValue:
		return val.Val != ""
	}
	return false
}

func valueToString(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.IntegerValue:
		return strconv.FormatInt(val.Val, 10)
	case runtime.StringValue:
		return val.Val
	}
	return ""
}
