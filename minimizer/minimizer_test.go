package minimizer

import (
	"testing"

	"github.com/ryogrid/cqbase/parser"
	"github.com/ryogrid/cqbase/query"
	testingpkg "github.com/ryogrid/cqbase/testing/testing_assert"
)

func parse(t *testing.T, text string) *query.Query {
	q, err := parser.ProcessQueryStr(text)
	testingpkg.Ok(t, err)
	return q
}

func TestMinimizeQuery(t *testing.T) {
	cases := []struct {
		in  string
		exp string
	}{
		// self join on an existential variable collapses
		{"Ans(x) :- R(x, y), R(x, z)", "Ans(x) :- R(x, z)"},
		{"Q(x, y) :- R(x, y), R(x, z), R(x, w)", "Q(x, y) :- R(x, y)"},
		{"Q(x) :- R(x, y), S(y, z), S(y, w)", "Q(x) :- R(x, y), S(y, w)"},
		// constants are frozen
		{"Q(x) :- R(x, 1), R(x, 2)", "Q(x) :- R(x, 1), R(x, 2)"},
		{"Q(x) :- R(x, 'a'), R(x, y)", "Q(x) :- R(x, 'a')"},
		// head variables must stay covered
		{"Q(y) :- R(x, y), R(x, z)", "Q(y) :- R(x, y)"},
		// a comparison keeps its variable bound
		{"Q(x) :- R(x, y), R(x, z), z > 3", "Q(x) :- R(x, z), z > 3"},
		{"Q() :- R(x, y), R(y, x), R(z, z)", "Q() :- R(z, z)"},
		{"Q(SUM(y)) :- R(x, y), R(x, z)", "Q(SUM(y)) :- R(x, y)"},
	}
	for _, c := range cases {
		testingpkg.Equals(t, c.exp, MinimizeQuery(parse(t, c.in)).String())
	}
}

func TestMinimizeFixedPoint(t *testing.T) {
	for _, text := range []string{
		"Q(x) :- R(x, y)",
		"Q(x, z) :- R(x, y), S(y, z)",
		"Q(x) :- R(x, y), R(y, x)",
		"Q(x) :- R(x, 1), x > 2",
	} {
		q := parse(t, text)
		once := MinimizeQuery(q)
		testingpkg.Equals(t, text, once.String())
		testingpkg.Equals(t, once.String(), MinimizeQuery(once).String())
	}
}

func TestMinimizePreservesEquivalence(t *testing.T) {
	for _, text := range []string{
		"Ans(x) :- R(x, y), R(x, z)",
		"Q(a, b) :- R(a, b), R(a, c), S(c, d), S(b, e), R(a, f)",
		"Q(x) :- R(x, y), S(y, y), S(y, z), R(x, z)",
	} {
		q := parse(t, text)
		m := MinimizeQuery(q)
		testingpkg.Assert(t, len(m.Body) <= len(q.Body), "%s grew", text)
		testingpkg.Assert(t, checkQueryHomo(q, m), "%s has no homomorphism into %s", text, m.String())
		testingpkg.Assert(t, checkFreeVariableContain(m), "%s lost a head variable", m.String())
	}
}

func TestCheckQueryHomo(t *testing.T) {
	from := parse(t, "Q(x) :- R(x, y), R(y, z)")
	testingpkg.Assert(t, checkQueryHomo(from, parse(t, "Q(x) :- R(x, x)")), "y, z -> x")
	testingpkg.Assert(t, !checkQueryHomo(from, parse(t, "Q(x) :- R(x, 1)")), "y can not map to both 1 and x")
	testingpkg.Assert(t, !checkQueryHomo(from, parse(t, "P(x) :- R(x, x)")), "head names differ")
	testingpkg.Assert(t, !checkQueryHomo(parse(t, "Q(x, y) :- R(x, y)"), parse(t, "Q(y, x) :- R(x, y)")), "head order matters")
}

func TestCheckMergeKeepsSnapshot(t *testing.T) {
	x, y, z := query.NewVariable("x"), query.NewVariable("y"), query.NewVariable("z")
	base := mapping{x: y}

	trial, ok := trialMapping(query.NewRelationalAtom("R", x, z), query.NewRelationalAtom("R", y, x))
	testingpkg.Assert(t, ok, "trial must succeed")
	merged, ok := checkMerge(base, trial)
	testingpkg.Assert(t, ok, "merge must succeed")
	testingpkg.Equals(t, 2, len(merged))
	testingpkg.Equals(t, 1, len(base))

	conflict, _ := trialMapping(query.NewRelationalAtom("R", x), query.NewRelationalAtom("R", z))
	_, ok = checkMerge(base, conflict)
	testingpkg.Assert(t, !ok, "x cannot map to both y and z")

	_, ok = trialMapping(query.NewRelationalAtom("R", query.NewIntConstant(1)), query.NewRelationalAtom("R", x))
	testingpkg.Assert(t, !ok, "a constant maps only to itself")
}
