// Package interpreter walks the parsed statement list directly. One
// Interpreter owns one environment for one program run; the top-level Run
// boundary is where every failure is caught and rendered.
package interpreter

import (
	"fmt"
	"io"
	"strings"

	"github.com/2jungg/mol-lang/pkg/ast"
	"github.com/2jungg/mol-lang/pkg/lexer"
	"github.com/2jungg/mol-lang/pkg/parser"
	"github.com/2jungg/mol-lang/pkg/runtime"
)

type Interpreter struct {
	env    *runtime.Environment
	input  InputSource
	stdout io.Writer
}

// New constructs an interpreter with an empty environment. Output lines go
// to stdout as they are produced; input supplies the lines 뭐먹 consumes.
func New(stdout io.Writer, input InputSource) *Interpreter {
	if stdout == nil {
		stdout = io.Discard
	}
	if input == nil {
		input = NewLineInput("")
	}
	return &Interpreter{
		env:    runtime.NewEnvironment(),
		input:  input,
		stdout: stdout,
	}
}

// Environment exposes the run's global environment, mainly for tests and
// embedding hosts inspecting final state.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// Run tokenizes, parses, and executes source. Any failure from any stage
// (syntax, undefined name, type mismatch, an escaped 퇴근) is rendered
// exactly once as a single `Error: <Kind>: <message>` output line; Run
// itself never fails. Statements already executed keep their output.
func (i *Interpreter) Run(source string) {
	program, err := parser.New(lexer.Tokenize(source)).Parse()
	if err != nil {
		i.reportError(err)
		return
	}
	if err := i.executeProgram(program); err != nil {
		i.reportError(err)
	}
}

func (i *Interpreter) executeProgram(statements []ast.Statement) error {
	for _, stmt := range statements {
		if _, err := i.evaluateStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) emitLine(line string) {
	fmt.Fprintln(i.stdout, line)
}

func (i *Interpreter) reportError(err error) {
	i.emitLine(fmt.Sprintf("Error: %s: %s", errorKind(err), err.Error()))
}

// Execute is the embedding surface: run source against pre-supplied
// newline-delimited input and return the captured output, one line per
// emitted print, with failures folded in as their own line. Each call is a
// fresh run with an empty environment.
func Execute(source string, input string) string {
	var out strings.Builder
	New(&out, NewLineInput(input)).Run(source)
	return out.String()
}
