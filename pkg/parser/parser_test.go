package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/2jungg/mol-lang/pkg/ast"
)

func parseOne(t *testing.T, source string) ast.Statement {
	t.Helper()
	program, err := Parse(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	if len(program) != 1 {
		t.Fatalf("parse %q: %d statements, want 1", source, len(program))
	}
	return program[0]
}

func expectSyntaxError(t *testing.T, source string, fragment string) {
	t.Helper()
	_, err := Parse(source)
	if err == nil {
		t.Fatalf("parse %q: expected syntax error", source)
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("parse %q: error %T, want *SyntaxError", source, err)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Fatalf("parse %q: error %q does not mention %q", source, err, fragment)
	}
}

func TestVariableNames(t *testing.T) {
	valid := []string{"밥", "바압", "바아압", "바아아압", "바아아아아압"}
	for _, name := range valid {
		if !IsVariableName(name) {
			t.Errorf("IsVariableName(%q) = false, want true", name)
		}
	}
	invalid := []string{"바", "압", "바아", "바아아", "밥밥", "아압", "바압압", "캠프", ""}
	for _, name := range invalid {
		if IsVariableName(name) {
			t.Errorf("IsVariableName(%q) = true, want false", name)
		}
	}
}

func TestAssignment(t *testing.T) {
	stmt := parseOne(t, "밥 은 5")
	want := ast.Assign("밥", ast.Int(5))
	if !reflect.DeepEqual(stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", stmt, want)
	}
}

// Expressions are strictly left-associative with no precedence:
// 1 곱셈 2 덧셈 3 is (1*2)+3.
func TestNoOperatorPrecedence(t *testing.T) {
	stmt := parseOne(t, "스크럼 1 곱셈 2 덧셈 3")
	want := ast.Print(
		ast.BinOp(ast.OpAdd,
			ast.BinOp(ast.OpMul, ast.Int(1), ast.Int(2)),
			ast.Int(3)))
	if !reflect.DeepEqual(stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", stmt, want)
	}
}

func TestParseDeterminism(t *testing.T) {
	source := "밥 은 0 몰 밥 작 3 [ 스크럼 밥 밥 은 밥 덧셈 1 ] 캠프묘 [ 퇴근 밥 ] 캠프묘"
	first, err := Parse(source)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := Parse(source)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parses differ:\n%#v\n%#v", first, second)
	}
}

func TestOperatorTokens(t *testing.T) {
	cases := map[string]ast.Operator{
		"덧셈":  ast.OpAdd,
		"합":   ast.OpAdd,
		"더하기": ast.OpAdd,
		"곱셈":  ast.OpMul,
		"곱":   ast.OpMul,
		"같":   ast.OpEq,
		"작":   ast.OpLt,
		"같작":  ast.OpLe,
		"작같":  ast.OpLe,
	}
	for tok, want := range cases {
		stmt := parseOne(t, "스크럼 1 "+tok+" 2")
		bin, ok := stmt.(*ast.PrintStatement).Value.(*ast.BinaryExpression)
		if !ok {
			t.Fatalf("operator %q: value is %T, want binary expression", tok, stmt.(*ast.PrintStatement).Value)
		}
		if bin.Op != want {
			t.Errorf("operator %q = %q, want %q", tok, bin.Op, want)
		}
	}
}

func TestPredefinedStringSubstitution(t *testing.T) {
	stmt := parseOne(t, "스크럼 커서")
	want := ast.Print(ast.Str("커서는 신이야"))
	if !reflect.DeepEqual(stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", stmt, want)
	}
}

func TestStringLiterals(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{`스크럼 "hi"`, "hi"},
		{`스크럼 'a "quoted" bit'`, `a "quoted" bit`},
		{"스크럼 `back`", "back"},
		{`스크럼 ""`, ""},
		{`스크럼 "`, ""}, // a lone quote character is the empty string
	}
	for _, tc := range cases {
		stmt := parseOne(t, tc.source)
		lit, ok := stmt.(*ast.PrintStatement).Value.(*ast.StringLiteral)
		if !ok {
			t.Fatalf("%q: value is %T, want string literal", tc.source, stmt.(*ast.PrintStatement).Value)
		}
		if lit.Value != tc.want {
			t.Errorf("%q: literal = %q, want %q", tc.source, lit.Value, tc.want)
		}
	}
}

func TestFunctionDefinitionVersusCall(t *testing.T) {
	program, err := Parse("캠프묘 [ 퇴근 5 ] 캠프묘")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(program) != 2 {
		t.Fatalf("statements = %d, want 2", len(program))
	}
	def, ok := program[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("first statement is %T, want function definition", program[0])
	}
	if def.Name != "캠프묘" || len(def.Body) != 1 {
		t.Fatalf("definition = %#v", def)
	}
	call, ok := program[1].(*ast.FunctionCall)
	if !ok {
		t.Fatalf("second statement is %T, want function call", program[1])
	}
	if call.Name != "캠프묘" {
		t.Fatalf("call name = %q", call.Name)
	}
}

// Distinct 캠프 tokens name distinct functions.
func TestFunctionIdentityIsFullToken(t *testing.T) {
	program, err := Parse("캠프하나 [ 퇴근 1 ] 캠프둘 [ 퇴근 2 ]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	names := []string{
		program[0].(*ast.FunctionDefinition).Name,
		program[1].(*ast.FunctionDefinition).Name,
	}
	if names[0] == names[1] {
		t.Fatalf("both definitions named %q", names[0])
	}
}

// An expression ends on a variable-name lookahead, which is what lets two
// statements follow each other without terminators.
func TestExpressionEndsBeforeVariable(t *testing.T) {
	program, err := Parse("밥 은 1 바압 은 밥")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(program) != 2 {
		t.Fatalf("statements = %d, want 2", len(program))
	}
}

// Only the five exact keywords terminate an expression. A function-call
// token like 캠프묘 is not in that set, so it is consumed as an operator
// and rejected, a known grammar quirk that must be preserved.
func TestCallTokenDoesNotTerminateExpression(t *testing.T) {
	expectSyntaxError(t, "스크럼 1 캠프묘", "unknown operator")
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		fragment string
	}{
		{"missing assignment separator", "밥 5", "expected '은'"},
		{"missing value at end", "밥 은", "end of input"},
		{"unknown operator", "스크럼 1 나눗셈 2", "unknown operator"},
		{"unknown value", "스크럼 안녕", "unknown value or variable"},
		{"statement start", "은 5", "unexpected statement start"},
		{"bracket as value", "스크럼 [", "unknown value or variable"},
		{"unterminated string", `스크럼 "abc`, "unknown value or variable"},
		{"unclosed block", "몰 1 [ 스크럼 1", "expected ']'"},
		{"missing block", "입 1", "expected '['"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectSyntaxError(t, tc.source, tc.fragment)
		})
	}
}

func TestInputExpression(t *testing.T) {
	stmt := parseOne(t, "밥 은 뭐먹")
	want := ast.Assign("밥", ast.Input())
	if !reflect.DeepEqual(stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", stmt, want)
	}
}

func TestNegativeIntegerLiteral(t *testing.T) {
	stmt := parseOne(t, "밥 은 -3")
	want := ast.Assign("밥", ast.Int(-3))
	if !reflect.DeepEqual(stmt, want) {
		t.Fatalf("stmt = %#v, want %#v", stmt, want)
	}
}
