// Package ast defines the node variants produced by the parser and walked
// by the interpreter. Nodes are immutable once built.
package ast

type NodeType string

const (
	NodeIntegerLiteral      NodeType = "IntegerLiteral"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeInputExpression     NodeType = "InputExpression"
	NodeIdentifier          NodeType = "Identifier"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeAssignmentStatement NodeType = "AssignmentStatement"
	NodePrintStatement      NodeType = "PrintStatement"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileLoop           NodeType = "WhileLoop"
	NodeFunctionDefinition  NodeType = "FunctionDefinition"
	NodeFunctionCall        NodeType = "FunctionCall"
	NodeReturnStatement     NodeType = "ReturnStatement"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces. Statements and expressions are disjoint in this
// grammar: an expression can never stand alone as a statement.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Operator is the closed set of binary operators the grammar's operator
// tokens map onto.
type Operator string

const (
	OpAdd Operator = "+"
	OpMul Operator = "*"
	OpEq  Operator = "=="
	OpLt  Operator = "<"
	OpLe  Operator = "<="
)

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int64
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

// InputExpression reads one line of external input when evaluated.
type InputExpression struct {
	nodeImpl
	expressionMarker
}

func NewInputExpression() *InputExpression {
	return &InputExpression{nodeImpl: newNodeImpl(NodeInputExpression)}
}

// Identifier references a stored variable by name.
type Identifier struct {
	nodeImpl
	expressionMarker

	Name string
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// BinaryExpression applies Op to its evaluated operands. The parser builds
// these left-deepening; the language has no operator precedence.
type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Op    Operator
	Left  Expression
	Right Expression
}

func NewBinaryExpression(op Operator, left Expression, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Op: op, Left: left, Right: right}
}

// Statements

type AssignmentStatement struct {
	nodeImpl
	statementMarker

	Name  string
	Value Expression
}

func NewAssignmentStatement(name string, value Expression) *AssignmentStatement {
	return &AssignmentStatement{nodeImpl: newNodeImpl(NodeAssignmentStatement), Name: name, Value: value}
}

type PrintStatement struct {
	nodeImpl
	statementMarker

	Value Expression
}

func NewPrintStatement(value Expression) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Value: value}
}

// IfStatement has no else branch.
type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression
	Body      []Statement
}

func NewIfStatement(condition Expression, body []Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Body: body}
}

type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition Expression
	Body      []Statement
}

func NewWhileLoop(condition Expression, body []Statement) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

// FunctionDefinition registers Body under Name. Functions take no
// parameters and share the caller's global environment.
type FunctionDefinition struct {
	nodeImpl
	statementMarker

	Name string
	Body []Statement
}

func NewFunctionDefinition(name string, body []Statement) *FunctionDefinition {
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), Name: name, Body: body}
}

type FunctionCall struct {
	nodeImpl
	statementMarker

	Name string
}

func NewFunctionCall(name string) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Name: name}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}
