package interpreter

import "github.com/2jungg/mol-lang/pkg/runtime"

// returnSignal carries a 퇴근 value up through statement execution until a
// function-call boundary absorbs it. It travels the error path as an
// explicit control value: block, loop, and conditional execution pass it
// through untouched, so a return deep inside nested constructs unwinds the
// whole call. Only evaluateFunctionCall and the top-level run boundary
// inspect it.
type returnSignal struct {
	value runtime.Value
}

// Error is only ever rendered when the signal escapes every function call
// and surfaces at top level.
func (returnSignal) Error() string {
	return "return outside of function"
}
