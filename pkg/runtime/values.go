// Package runtime holds the value model and the environment a program run
// mutates. The language has exactly two user-visible value kinds: integers
// and strings. Comparison results are integers 0/1; there is no boolean.
package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindString
	KindNil
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindNil:
		return "nil"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

type IntegerValue struct {
	Val int64
}

func (IntegerValue) Kind() Kind { return KindInteger }

type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

// NilValue is the "no value" result of definitions, prints, and calls that
// complete without 퇴근. It is never observable from inside the language.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }
