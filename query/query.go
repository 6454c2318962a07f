package query

import (
	"strings"
)

// SumAggregate is SUM(t1 * t2 * ...) in a query head.
type SumAggregate struct {
	ProductTerms []Term
}

func (s *SumAggregate) String() string {
	return "SUM(" + joinTerms(s.ProductTerms, " * ") + ")"
}

// IsConstant reports whether every product term is a literal, which makes the
// aggregate a scaled count.
func (s *SumAggregate) IsConstant() bool {
	for _, t := range s.ProductTerms {
		if !IsConstant(t) {
			return false
		}
	}
	return len(s.ProductTerms) > 0
}

type Head struct {
	Name         string
	Variables    []Variable
	SumAggregate *SumAggregate
}

func (h *Head) String() string {
	parts := make([]string, 0, len(h.Variables)+1)
	for _, v := range h.Variables {
		parts = append(parts, v.String())
	}
	if h.SumAggregate != nil {
		parts = append(parts, h.SumAggregate.String())
	}
	return h.Name + "(" + strings.Join(parts, ", ") + ")"
}

type Query struct {
	Head *Head
	Body []Atom
}

func NewQuery(head *Head, body []Atom) *Query {
	return &Query{head, body}
}

// String renders the canonical textual form, e.g. "Q(x) :- R(x, y), x > 3".
func (q *Query) String() string {
	parts := make([]string, 0, len(q.Body))
	for _, a := range q.Body {
		parts = append(parts, a.String())
	}
	return q.Head.String() + " :- " + strings.Join(parts, ", ")
}

func (q *Query) RelationalAtoms() []*RelationalAtom {
	ret := make([]*RelationalAtom, 0, len(q.Body))
	for _, a := range q.Body {
		if ra, ok := a.(*RelationalAtom); ok {
			ret = append(ret, ra)
		}
	}
	return ret
}

func (q *Query) ComparisonAtoms() []*ComparisonAtom {
	ret := make([]*ComparisonAtom, 0)
	for _, a := range q.Body {
		if ca, ok := a.(*ComparisonAtom); ok {
			ret = append(ret, ca)
		}
	}
	return ret
}

// WithoutAtom returns a query sharing the head whose body lacks the atom at idx.
func (q *Query) WithoutAtom(idx int) *Query {
	body := make([]Atom, 0, len(q.Body)-1)
	body = append(body, q.Body[:idx]...)
	body = append(body, q.Body[idx+1:]...)
	return &Query{q.Head, body}
}
