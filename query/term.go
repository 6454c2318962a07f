package query

import (
	"strconv"
)

// Term is one of Variable, IntConstant or StringConstant. The kind of a term
// is fixed when the query is parsed.
type Term interface {
	// String returns the literal text of the term as it is written in a query.
	String() string
	isTerm()
}

type Variable struct {
	Name string
}

type IntConstant struct {
	Value int64
}

// StringConstant holds the text between the single quotes.
type StringConstant struct {
	Value string
}

func NewVariable(name string) Variable { return Variable{name} }

func NewIntConstant(value int64) IntConstant { return IntConstant{value} }

func NewStringConstant(value string) StringConstant { return StringConstant{value} }

func (v Variable) String() string { return v.Name }

func (c IntConstant) String() string { return strconv.FormatInt(c.Value, 10) }

func (c StringConstant) String() string { return "'" + c.Value + "'" }

func (Variable) isTerm()       {}
func (IntConstant) isTerm()    {}
func (StringConstant) isTerm() {}

func IsConstant(t Term) bool {
	switch t.(type) {
	case IntConstant, StringConstant:
		return true
	}
	return false
}
