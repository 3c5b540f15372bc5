package ast

// Short constructors for building trees by hand, mainly in tests.

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Input() *InputExpression {
	return NewInputExpression()
}

func BinOp(op Operator, left Expression, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Assign(name string, value Expression) *AssignmentStatement {
	return NewAssignmentStatement(name, value)
}

func Print(value Expression) *PrintStatement {
	return NewPrintStatement(value)
}

func If(condition Expression, body ...Statement) *IfStatement {
	return NewIfStatement(condition, body)
}

func While(condition Expression, body ...Statement) *WhileLoop {
	return NewWhileLoop(condition, body)
}

func FuncDef(name string, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(name, body)
}

func Call(name string) *FunctionCall {
	return NewFunctionCall(name)
}

func Ret(value Expression) *ReturnStatement {
	return NewReturnStatement(value)
}
