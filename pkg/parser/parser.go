// Package parser consumes the token sequence exactly once, with one-token
// lookahead and no backtracking, producing the statement list a program is.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/2jungg/mol-lang/pkg/ast"
	"github.com/2jungg/mol-lang/pkg/lexer"
)

// SyntaxError covers every way tokens can fail to form a program: a missing
// required token, an unknown operator or value token, or a statement that
// starts with nothing recognizable.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

func newSyntaxError(format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

// Keyword tokens.
const (
	KeywordPrint  = "스크럼"
	KeywordIf     = "입"
	KeywordWhile  = "몰"
	KeywordReturn = "퇴근"
	KeywordAssign = "은"
	KeywordInput  = "뭐먹"

	// FunctionPrefix starts both definitions and calls; the full token text
	// is the function's identity.
	FunctionPrefix = "캠프"
)

var variableNamePattern = regexp.MustCompile(`^바아*압$`)

// IsVariableName reports whether tok names a variable: the literal 밥, or
// 바 followed by any number of 아 and one trailing 압. Names differing in
// repetition count are distinct variables.
func IsVariableName(tok string) bool {
	return tok == "밥" || variableNamePattern.MatchString(tok)
}

// PredefinedStrings substitutes fixed literal tokens with their text
// whenever one appears in literal position.
var PredefinedStrings = map[string]string{
	"커서":   "커서는 신이야",
	"지피티":  "지피티는 요즘 애매해",
	"제미나이": "제미나이는 잘 따라가는중",
	"클로드":  "클로드는 LLM 중 코딩 끝판왕",
	"클라인":  "클라인도 레전드입니다… 꼭 쓰세요",
	"그록":   "그록 누가씀?",
}

// isStatementStarter matches a token against the exact keyword set that
// ends an expression. Deliberately exact equality: a function-call token
// such as 캠프묘 does NOT terminate an expression (only the bare prefix
// would), so a call directly after an expression is rejected as an unknown
// operator. Compatibility requires preserving this as-is.
func isStatementStarter(tok string) bool {
	switch tok {
	case KeywordIf, KeywordWhile, KeywordPrint, FunctionPrefix, KeywordReturn:
		return true
	}
	return false
}

type Parser struct {
	tokens []lexer.Token
	pos    int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is the package-level convenience: tokenize source and parse it.
func Parse(source string) ([]ast.Statement, error) {
	return New(lexer.Tokenize(source)).Parse()
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *Parser) expect(text string) error {
	tok, ok := p.peek()
	if !ok {
		return newSyntaxError("expected '%s' but found end of input", text)
	}
	if tok.Text != text {
		return newSyntaxError("expected '%s' but found '%s'", text, tok.Text)
	}
	p.pos++
	return nil
}

// Parse consumes the whole token sequence into an ordered statement list.
func (p *Parser) Parse() ([]ast.Statement, error) {
	statements := make([]ast.Statement, 0)
	for p.pos < len(p.tokens) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, newSyntaxError("expected a statement but found end of input")
	}
	switch {
	case tok.Kind == lexer.TokenBare && IsVariableName(tok.Text):
		name := tok.Text
		p.pos++
		if err := p.expect(KeywordAssign); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewAssignmentStatement(name, value), nil

	case tok.Text == KeywordPrint:
		p.pos++
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewPrintStatement(value), nil

	case tok.Text == KeywordIf:
		p.pos++
		condition, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewIfStatement(condition, body), nil

	case tok.Text == KeywordWhile:
		p.pos++
		condition, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewWhileLoop(condition, body), nil

	case tok.Kind == lexer.TokenBare && strings.HasPrefix(tok.Text, FunctionPrefix):
		name := tok.Text
		p.pos++
		if after, ok := p.peek(); ok && after.Kind == lexer.TokenBracket && after.Text == "[" {
			body, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			return ast.NewFunctionDefinition(name, body), nil
		}
		return ast.NewFunctionCall(name), nil

	case tok.Text == KeywordReturn:
		p.pos++
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStatement(value), nil
	}
	return nil, newSyntaxError("unexpected statement start: %s", tok.Text)
}

// parseBlock consumes a bracketed statement sequence.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if err := p.expect("["); err != nil {
		return nil, err
	}
	statements := make([]ast.Statement, 0)
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, newSyntaxError("expected ']' but found end of input")
		}
		if tok.Kind == lexer.TokenBracket && tok.Text == "]" {
			p.pos++
			return statements, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
}

// parseExpression folds simple expressions left to right with no operator
// precedence: 1 곱셈 2 덧셈 3 parses as (1*2)+3. An expression ends exactly
// when the lookahead can no longer be an operator: end of tokens, a block
// delimiter, a variable name, or a statement keyword. The language has no
// explicit terminators, so this lookahead heuristic is load-bearing and
// format-fragile; do not replace it with a precedence-climbing parser.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseSimpleExpression()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind == lexer.TokenBracket ||
			(tok.Kind == lexer.TokenBare && IsVariableName(tok.Text)) ||
			isStatementStarter(tok.Text) {
			return left, nil
		}
		p.pos++
		op, err := operatorFor(tok.Text)
		if err != nil {
			return nil, err
		}
		right, err := p.parseSimpleExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
}

func operatorFor(tok string) (ast.Operator, error) {
	switch tok {
	case "덧셈", "합", "더하기":
		return ast.OpAdd, nil
	case "곱셈", "곱":
		return ast.OpMul, nil
	case "같":
		return ast.OpEq, nil
	case "작":
		return ast.OpLt, nil
	case "같작", "작같":
		return ast.OpLe, nil
	}
	return "", newSyntaxError("unknown operator: %s", tok)
}

func (p *Parser) parseSimpleExpression() (ast.Expression, error) {
	tok, ok := p.next()
	if !ok {
		return nil, newSyntaxError("expected a value but found end of input")
	}
	if tok.Kind == lexer.TokenString {
		if content, ok := stringContent(tok.Text); ok {
			return ast.NewStringLiteral(content), nil
		}
		// Unterminated: the tokenizer kept only the opening quote.
		return nil, newSyntaxError("unknown value or variable: %s", tok.Text)
	}
	if tok.Text == KeywordInput {
		return ast.NewInputExpression(), nil
	}
	if text, ok := PredefinedStrings[tok.Text]; ok {
		return ast.NewStringLiteral(text), nil
	}
	if IsVariableName(tok.Text) {
		return ast.NewIdentifier(tok.Text), nil
	}
	if value, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
		return ast.NewIntegerLiteral(value), nil
	}
	return nil, newSyntaxError("unknown value or variable: %s", tok.Text)
}

// stringContent strips one pair of matching quote characters; everything
// between is taken verbatim, including quote characters of other kinds.
// A token that is exactly one quote character counts as an empty string.
func stringContent(text string) (string, bool) {
	r := []rune(text)
	if len(r) == 1 {
		return "", true
	}
	if r[len(r)-1] != r[0] {
		return "", false
	}
	return string(r[1 : len(r)-1]), true
}
