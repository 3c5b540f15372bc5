package runtime

import "github.com/2jungg/mol-lang/pkg/ast"

// Function is a registered function body. Functions take no parameters and
// run directly in the global environment.
type Function struct {
	Name string
	Body []ast.Statement
}

// Environment is the single flat scope a program runs in: one namespace
// for variables and a separate one for functions. Neither nests: loops
// and function bodies read and write the same bindings as top-level code.
// A run is single-threaded, so access is unsynchronized.
type Environment struct {
	variables map[string]Value
	functions map[string]*Function
}

// NewEnvironment creates an empty environment for one program run.
func NewEnvironment() *Environment {
	return &Environment{
		variables: make(map[string]Value),
		functions: make(map[string]*Function),
	}
}

// Get looks up a variable binding.
func (e *Environment) Get(name string) (Value, bool) {
	value, ok := e.variables[name]
	return value, ok
}

// Define creates or overwrites a variable binding.
func (e *Environment) Define(name string, value Value) {
	e.variables[name] = value
}

// GetFunction looks up a registered function by its exact name.
func (e *Environment) GetFunction(name string) (*Function, bool) {
	fn, ok := e.functions[name]
	return fn, ok
}

// DefineFunction registers or overwrites a function body.
func (e *Environment) DefineFunction(fn *Function) {
	e.functions[fn.Name] = fn
}

// Snapshot returns a copy of the current variable bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.variables))
	for name, value := range e.variables {
		out[name] = value
	}
	return out
}
