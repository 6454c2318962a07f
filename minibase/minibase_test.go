package minibase

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/parser"
	"github.com/ryogrid/cqbase/testing/testing_util"
)

const testDatabaseDir = "testdata/db"

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestEvaluateCQGolden(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"eval_scan", "Q(x, z) :- R(x, y, z)"},
		{"eval_join", "Q(x, w) :- R(x, y, z), S(y, w, u)"},
		{"eval_select_constant", "Q(x) :- R(x, y, 'ppls'), y < 7"},
		{"eval_sum_group", "Q(w, SUM(u)) :- S(y, w, u)"},
		{"eval_sum_constant", "Q(SUM(2)) :- R(x, y, z), S(y, w, u)"},
		{"eval_type_mismatch", "Q(x) :- R(x, y, z), z = 5"},
		{"eval_self_join", "Q(a, c) :- T(a, b), T(b, c)"},
		{"eval_sum_product", "Q(x, SUM(y * u)) :- R(x, y, z), S(y, w, u), x >= 2"},
		{"eval_boolean", "Q() :- T(x, y)"},
	}
	g := newGoldie(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			input := testing_util.WriteFile(t, dir, "query.txt", c.query)
			output := filepath.Join(dir, "out", "result.csv")

			require.NoError(t, EvaluateCQ(testDatabaseDir, input, output, nil, nil))
			actual, err := os.ReadFile(output)
			require.NoError(t, err)
			g.Assert(t, c.name, actual)
		})
	}
}

func TestMinimizeCQGolden(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"min_self_join", "Ans(x) :- R(x, y), R(x, z)"},
		{"min_constants", "Q(x, y) :- R(x, y, z), R(x, y, w), S(z, 'a'), S(w, u)"},
		{"min_comparison", "Q(x) :- R(x, y), R(x, z), y > 5"},
	}
	g := newGoldie(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			input := testing_util.WriteFile(t, dir, "query.txt", c.query+"\n")
			output := filepath.Join(dir, "minimized.txt")

			require.NoError(t, MinimizeCQ(input, output))
			actual, err := os.ReadFile(output)
			require.NoError(t, err)
			g.Assert(t, c.name, actual)
		})
	}
}

func TestEvaluateCQErrors(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.csv")

	bad := testing_util.WriteFile(t, dir, "bad.txt", "Q(x) :- R(x")
	err := EvaluateCQ(testDatabaseDir, bad, output, nil, nil)
	assert.ErrorIs(t, err, parser.ErrSyntax)

	unknown := testing_util.WriteFile(t, dir, "unknown.txt", "Q(x) :- Z(x)")
	assert.Error(t, EvaluateCQ(testDatabaseDir, unknown, output, nil, nil))

	good := testing_util.WriteFile(t, dir, "good.txt", "Q(x) :- T(x, y)")
	assert.Error(t, EvaluateCQ(filepath.Join(dir, "nodb"), good, output, nil, nil))
	assert.Error(t, EvaluateCQ(testDatabaseDir, filepath.Join(dir, "missing.txt"), output, nil, nil))

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err), "no output is written for a failed run")
}

func TestExecuteQueryPreviewAndExplain(t *testing.T) {
	db := testing_util.MakeDatabaseDir(t, testing_util.Relation{
		Name:  "Emp",
		Types: []string{"string", "int"},
		Rows:  [][]string{{"'ann'", "3"}, {"'bob'", "5"}},
	})
	cfg := common.NewConfig()
	cfg.Output.Preview = true
	cfg.Output.Explain = true
	var console bytes.Buffer

	instance, err := NewMinibaseInstance(db, cfg, &console)
	require.NoError(t, err)
	q, err := parser.ProcessQueryStr("Q(n) :- Emp(n, a), a > 4")
	require.NoError(t, err)
	result, err := instance.ExecuteQuery(q)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"'bob'"}}, result.Rows())
	assert.Equal(t, []string{"n"}, result.Columns)
	text := console.String()
	assert.True(t, strings.HasPrefix(text, "Projection Q(n)\n  Selection [a > 4]\n    SeqScan Emp(n, a)\n"), text)
	assert.Contains(t, text, "'bob'")
}

func TestWriteTuplesSeparator(t *testing.T) {
	db := testing_util.MakeDatabaseDir(t, testing_util.Relation{
		Name:  "P",
		Types: []string{"int", "int"},
		Rows:  [][]string{{"1", "2"}},
	})
	cfg := common.NewConfig()
	cfg.Output.Separator = "|"
	instance, err := NewMinibaseInstance(db, cfg, nil)
	require.NoError(t, err)
	q, err := parser.ProcessQueryStr("Q(b, a) :- P(a, b)")
	require.NoError(t, err)
	result, err := instance.ExecuteQuery(q)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTuples(&buf, result.Tuples, cfg.Output.Separator))
	assert.Equal(t, "2|1\n", buf.String())
}
