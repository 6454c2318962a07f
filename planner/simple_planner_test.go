package planner

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryogrid/cqbase/catalog"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/parser"
	"github.com/ryogrid/cqbase/types"
)

func makeCatalog() *catalog.Catalog {
	c := catalog.NewCatalog("db")
	c.CreateTable("R", []types.TypeID{types.Integer, types.Integer}, nil)
	c.CreateTable("S", []types.TypeID{types.Integer, types.Varchar}, nil)
	return c
}

func plan(t *testing.T, text string) (plans.Plan, error) {
	q, err := parser.ProcessQueryStr(text)
	require.NoError(t, err)
	return NewSimplePlanner(makeCatalog()).MakePlan(q)
}

func TestPlanShapes(t *testing.T) {
	cases := []struct {
		query string
		tree  string
	}{
		{
			"Q(x) :- R(x, y)",
			"Projection Q(x)\n" +
				"  SeqScan R(x, y)\n",
		},
		{
			"Q(x) :- R(x, y), y > 3",
			"Projection Q(x)\n" +
				"  Selection [y > 3]\n" +
				"    SeqScan R(x, y)\n",
		},
		{
			"Q(x, s) :- R(x, y), S(y, s)",
			"Projection Q(x, s)\n" +
				"  Join\n" +
				"    SeqScan R(x, y)\n" +
				"    SeqScan S(y, s)\n",
		},
		{
			"Q(x, SUM(y)) :- R(x, y), S(y, 'a'), x != 1",
			"Sum SUM(y)\n" +
				"  Projection Q(x, SUM(y))\n" +
				"    Selection [x != 1]\n" +
				"      Join [x != 1]\n" +
				"        SeqScan R(x, y)\n" +
				"        SeqScan S(y, 'a')\n",
		},
	}
	for _, c := range cases {
		p, err := plan(t, c.query)
		require.NoError(t, err, c.query)
		assert.Equal(t, c.tree, plans.PlanTreeString(p), c.query)
	}
}

func TestPlanOutputSchema(t *testing.T) {
	p, err := plan(t, "Q(s, x) :- R(x, y), S(y, s)")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "x"}, p.OutputSchema().GetColumnNames())
	assert.Equal(t, types.Varchar, p.OutputSchema().GetColumn(0).GetType())

	p, err = plan(t, "Q(x, SUM(y * 2)) :- R(x, y)")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "SUM(y * 2)"}, p.OutputSchema().GetColumnNames())
}

func TestPlanValidation(t *testing.T) {
	cases := []struct {
		query string
		err   error
	}{
		{"Q(x) :- T(x)", catalog.ErrUnknownRelation},
		{"Q(x) :- R(x)", catalog.ErrArityMismatch},
		{"Q() :- 1 = 1", ErrNoRelationalAtom},
		{"Q(z) :- R(x, y)", ErrUnboundHeadVariable},
		{"Q(x, SUM(z)) :- R(x, y)", ErrUnboundHeadVariable},
	}
	for _, c := range cases {
		_, err := plan(t, c.query)
		require.Error(t, err, c.query)
		assert.True(t, errors.Is(err, c.err), "%s: %v", c.query, err)
	}
}
