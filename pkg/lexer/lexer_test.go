package lexer

import (
	"reflect"
	"strings"
	"testing"
)

func texts(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out
}

func TestTokenizeStatement(t *testing.T) {
	tokens := Tokenize("밥 은 0 몰 밥 작 3 [ 스크럼 밥 ]")
	want := []string{"밥", "은", "0", "몰", "밥", "작", "3", "[", "스크럼", "밥", "]"}
	if !reflect.DeepEqual(texts(tokens), want) {
		t.Fatalf("tokens = %v, want %v", texts(tokens), want)
	}
	for _, tok := range tokens {
		wantKind := TokenBare
		if tok.Text == "[" || tok.Text == "]" {
			wantKind = TokenBracket
		}
		if tok.Kind != wantKind {
			t.Errorf("token %q kind = %s, want %s", tok.Text, tok.Kind, wantKind)
		}
	}
}

func TestBracketsWithoutWhitespace(t *testing.T) {
	tokens := Tokenize("몰 밥[스크럼 밥]")
	want := []string{"몰", "밥", "[", "스크럼", "밥", "]"}
	if !reflect.DeepEqual(texts(tokens), want) {
		t.Fatalf("tokens = %v, want %v", texts(tokens), want)
	}
}

func TestAdjacentBrackets(t *testing.T) {
	tokens := Tokenize("]][[")
	want := []string{"]", "]", "[", "["}
	if !reflect.DeepEqual(texts(tokens), want) {
		t.Fatalf("tokens = %v, want %v", texts(tokens), want)
	}
}

func TestQuotedStrings(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"double", `"hello world"`, `"hello world"`},
		{"single", `'hello'`, `'hello'`},
		{"backtick", "`hi`", "`hi`"},
		{"other quotes verbatim", `"it's a 'test'"`, `"it's a 'test'"`},
		{"empty", `""`, `""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.source)
			if len(tokens) != 1 {
				t.Fatalf("token count = %d, want 1 (%v)", len(tokens), texts(tokens))
			}
			if tokens[0].Kind != TokenString {
				t.Fatalf("kind = %s, want string", tokens[0].Kind)
			}
			if tokens[0].Text != tc.want {
				t.Fatalf("text = %q, want %q", tokens[0].Text, tc.want)
			}
		})
	}
}

func TestQuoteEndsBareToken(t *testing.T) {
	tokens := Tokenize(`스크럼"hi"`)
	want := []string{"스크럼", `"hi"`}
	if !reflect.DeepEqual(texts(tokens), want) {
		t.Fatalf("tokens = %v, want %v", texts(tokens), want)
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens := Tokenize(`"abc`)
	if len(tokens) != 1 || tokens[0].Kind != TokenString || tokens[0].Text != `"abc` {
		t.Fatalf("tokens = %+v, want one string token \"abc", tokens)
	}
}

func TestEmptyInput(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Fatalf("tokens = %v, want none", texts(tokens))
	}
	if tokens := Tokenize("  \n\t "); len(tokens) != 0 {
		t.Fatalf("tokens = %v, want none", texts(tokens))
	}
}

// Joining token texts with single spaces and re-tokenizing must reproduce
// the sequence (modulo unterminated strings, which lose information).
func TestRetokenizeIdempotence(t *testing.T) {
	sources := []string{
		"밥 은 0 몰 밥 작 3 [ 스크럼 밥 밥 은 밥 덧셈 1 ]",
		`스크럼 "hello world" 스크럼 커서`,
		"캠프묘[퇴근 5]캠프묘",
		"입 1 같 1 [ 스크럼 '같 작 몰' ]",
	}
	for _, source := range sources {
		first := Tokenize(source)
		second := Tokenize(strings.Join(texts(first), " "))
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("re-tokenizing %q: got %v, want %v", source, second, first)
		}
	}
}
