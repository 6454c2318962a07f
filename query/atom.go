package query

import (
	"strings"
)

type Atom interface {
	String() string
	isAtom()
}

type RelationalAtom struct {
	Name  string
	Terms []Term
}

type ComparisonOperator int

const (
	EQ ComparisonOperator = iota
	NEQ
	GT  // A > B
	GEQ // A >= B
	LT  // A < B
	LEQ // A <= B
)

func (op ComparisonOperator) String() string {
	switch op {
	case EQ:
		return "="
	case NEQ:
		return "!="
	case GT:
		return ">"
	case GEQ:
		return ">="
	case LT:
		return "<"
	case LEQ:
		return "<="
	}
	return "?"
}

// ParseComparisonOperator accepts the textual operator of a comparison atom.
func ParseComparisonOperator(text string) (ComparisonOperator, bool) {
	switch text {
	case "=":
		return EQ, true
	case "!=", "<>":
		return NEQ, true
	case ">":
		return GT, true
	case ">=":
		return GEQ, true
	case "<":
		return LT, true
	case "<=":
		return LEQ, true
	}
	return EQ, false
}

type ComparisonAtom struct {
	Left  Term
	Op    ComparisonOperator
	Right Term
}

func NewRelationalAtom(name string, terms ...Term) *RelationalAtom {
	return &RelationalAtom{name, terms}
}

func NewComparisonAtom(left Term, op ComparisonOperator, right Term) *ComparisonAtom {
	return &ComparisonAtom{left, op, right}
}

func (a *RelationalAtom) Arity() int {
	return len(a.Terms)
}

func (a *RelationalAtom) String() string {
	return a.Name + "(" + joinTerms(a.Terms, ", ") + ")"
}

func (a *ComparisonAtom) String() string {
	return a.Left.String() + " " + a.Op.String() + " " + a.Right.String()
}

func (*RelationalAtom) isAtom() {}
func (*ComparisonAtom) isAtom() {}

func joinTerms(terms []Term, sep string) string {
	strs := make([]string, 0, len(terms))
	for _, t := range terms {
		strs = append(strs, t.String())
	}
	return strings.Join(strs, sep)
}
