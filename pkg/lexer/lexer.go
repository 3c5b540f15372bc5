// Package lexer turns raw source text into a flat token sequence. Tokens
// carry no position metadata; the grammar distinguishes them purely by
// shape. Tokenizing never fails; malformed input is the parser's problem.
package lexer

import (
	"strings"
	"unicode"
)

type TokenKind int

const (
	// TokenBare is any whitespace-delimited run of non-quote, non-bracket
	// characters: keywords, variable names, operators, integer literals.
	TokenBare TokenKind = iota
	// TokenString is a quoted literal. Text keeps both delimiters when the
	// string is terminated, and only the opening quote when input ran out
	// first.
	TokenString
	// TokenBracket is a standalone `[` or `]`.
	TokenBracket
)

func (k TokenKind) String() string {
	switch k {
	case TokenBare:
		return "bare"
	case TokenString:
		return "string"
	case TokenBracket:
		return "bracket"
	default:
		return "unknown"
	}
}

// Token is a raw slice of the (bracket-padded) source. Joining token texts
// with single spaces and re-tokenizing reproduces the same sequence.
type Token struct {
	Kind TokenKind
	Text string
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

func isBracket(r rune) bool {
	return r == '[' || r == ']'
}

type Lexer struct {
	src []rune
	pos int
}

func New(source string) *Lexer {
	// Pad brackets so they always tokenize standalone, whatever they touch.
	source = strings.ReplaceAll(source, "[", " [ ")
	source = strings.ReplaceAll(source, "]", " ] ")
	return &Lexer{src: []rune(source)}
}

// Tokenize consumes the remaining source and returns its tokens in order.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		switch {
		case unicode.IsSpace(ch):
			l.pos++
		case isQuote(ch):
			tokens = append(tokens, l.scanString(ch))
		case isBracket(ch):
			l.pos++
			tokens = append(tokens, Token{Kind: TokenBracket, Text: string(ch)})
		default:
			tokens = append(tokens, l.scanBare())
		}
	}
	return tokens
}

// scanString accumulates verbatim until the same quote character recurs.
// There is no escape processing. At end of input the token degrades to the
// opening quote plus whatever followed it.
func (l *Lexer) scanString(quote rune) Token {
	var sb strings.Builder
	sb.WriteRune(quote)
	l.pos++
	for l.pos < len(l.src) && l.src[l.pos] != quote {
		sb.WriteRune(l.src[l.pos])
		l.pos++
	}
	if l.pos < len(l.src) {
		sb.WriteRune(quote)
		l.pos++
	}
	return Token{Kind: TokenString, Text: sb.String()}
}

func (l *Lexer) scanBare() Token {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if unicode.IsSpace(ch) || isQuote(ch) || isBracket(ch) {
			break
		}
		l.pos++
	}
	return Token{Kind: TokenBare, Text: string(l.src[start:l.pos])}
}

// Tokenize is the package-level convenience over New + Tokenize.
func Tokenize(source string) []Token {
	return New(source).Tokenize()
}
