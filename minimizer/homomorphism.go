package minimizer

import (
	"github.com/notEpsilon/go-pair"

	"github.com/ryogrid/cqbase/query"
)

// mapping sends variables of one query to terms of another. A mapping is
// never modified once built; extending it yields a new one.
type mapping map[query.Variable]query.Term

func (m mapping) apply(t query.Term) query.Term {
	if v, ok := t.(query.Variable); ok {
		if target, ok := m[v]; ok {
			return target
		}
	}
	return t
}

// checkQueryHomo reports whether there is a homomorphism from the relational
// atoms of from into those of to which preserves the head.
func checkQueryHomo(from *query.Query, to *query.Query) bool {
	return dfsSearch(from.RelationalAtoms(), 0, to.RelationalAtoms(), mapping{}, from.Head, to.Head)
}

func dfsSearch(fromAtoms []*query.RelationalAtom, idx int, toAtoms []*query.RelationalAtom, m mapping, fromHead *query.Head, toHead *query.Head) bool {
	if idx == len(fromAtoms) {
		return checkHeadEqual(m, fromHead, toHead)
	}
	src := fromAtoms[idx]
	for _, dst := range toAtoms {
		if dst.Name != src.Name || dst.Arity() != src.Arity() {
			continue
		}
		trial, ok := trialMapping(src, dst)
		if !ok {
			continue
		}
		merged, ok := checkMerge(m, trial)
		if !ok {
			continue
		}
		if dfsSearch(fromAtoms, idx+1, toAtoms, merged, fromHead, toHead) {
			return true
		}
	}
	return false
}

// trialMapping pairs the terms of src and dst position by position. It fails
// when a constant would have to map to anything but itself, or when one
// variable would need two targets.
func trialMapping(src *query.RelationalAtom, dst *query.RelationalAtom) ([]pair.Pair[query.Term, query.Term], bool) {
	trial := make([]pair.Pair[query.Term, query.Term], 0, src.Arity())
	for i, from := range src.Terms {
		to := dst.Terms[i]
		if query.IsConstant(from) && from != to {
			return nil, false
		}
		trial = append(trial, pair.Pair[query.Term, query.Term]{First: from, Second: to})
	}
	return trial, true
}

// checkMerge extends m with trial, returning a fresh mapping. It fails when a
// variable is already mapped to a different term.
func checkMerge(m mapping, trial []pair.Pair[query.Term, query.Term]) (mapping, bool) {
	merged := make(mapping, len(m)+len(trial))
	for k, v := range m {
		merged[k] = v
	}
	for _, p := range trial {
		v, ok := p.First.(query.Variable)
		if !ok {
			continue
		}
		if prev, ok := merged[v]; ok && prev != p.Second {
			return nil, false
		}
		merged[v] = p.Second
	}
	return merged, true
}

// checkHeadEqual requires equal head names and that m sends the head
// variables of from, in order, onto those of to. The SUM product terms must
// map the same way.
func checkHeadEqual(m mapping, from *query.Head, to *query.Head) bool {
	if from.Name != to.Name || len(from.Variables) != len(to.Variables) {
		return false
	}
	for i, v := range from.Variables {
		if m.apply(v) != query.Term(to.Variables[i]) {
			return false
		}
	}
	if (from.SumAggregate == nil) != (to.SumAggregate == nil) {
		return false
	}
	if from.SumAggregate == nil {
		return true
	}
	fromTerms, toTerms := from.SumAggregate.ProductTerms, to.SumAggregate.ProductTerms
	if len(fromTerms) != len(toTerms) {
		return false
	}
	for i, t := range fromTerms {
		if m.apply(t) != toTerms[i] {
			return false
		}
	}
	return true
}
