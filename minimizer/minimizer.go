package minimizer

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/query"
)

// MinimizeQuery removes redundant relational atoms from q until none can be
// removed. Each pass removes the first atom whose removal keeps the head
// covered and leaves a query q maps into homomorphically, then starts over.
// Comparison atoms are never removed.
func MinimizeQuery(q *query.Query) *query.Query {
	current := q
	for {
		reduced, ok := removeOneAtom(current)
		if !ok {
			return current
		}
		current = reduced
	}
}

func removeOneAtom(q *query.Query) (*query.Query, bool) {
	for i, atom := range q.Body {
		if _, ok := atom.(*query.RelationalAtom); !ok {
			continue
		}
		candidate := q.WithoutAtom(i)
		if !checkFreeVariableContain(candidate) {
			continue
		}
		if checkQueryHomo(q, candidate) {
			common.ShPrintf(common.DEBUG_INFO, "minimizer: removed %s\n", atom.String())
			return candidate, true
		}
	}
	return nil, false
}

// checkFreeVariableContain reports whether every variable of the head and of
// the comparison atoms still occurs in a relational atom of q.
func checkFreeVariableContain(q *query.Query) bool {
	bodyVars := mapset.NewSet[query.Variable]()
	for _, atom := range q.RelationalAtoms() {
		bodyVars.Append(variablesOf(atom.Terms)...)
	}

	required := mapset.NewSet[query.Variable](q.Head.Variables...)
	if q.Head.SumAggregate != nil {
		required.Append(variablesOf(q.Head.SumAggregate.ProductTerms)...)
	}
	for _, c := range q.ComparisonAtoms() {
		required.Append(variablesOf([]query.Term{c.Left, c.Right})...)
	}
	return required.IsSubset(bodyVars)
}

func variablesOf(terms []query.Term) []query.Variable {
	ret := make([]query.Variable, 0, len(terms))
	for _, t := range terms {
		if v, ok := t.(query.Variable); ok {
			ret = append(ret, v)
		}
	}
	return ret
}
