package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/types"
)

func TestLoadSchema(t *testing.T) {
	c := NewCatalog("db")
	err := LoadSchema(c, strings.NewReader("R int int\n\nS string INT\nT\n"))
	require.NoError(t, err)

	r := c.GetTableByName("R")
	require.NotNil(t, r)
	assert.Equal(t, []types.TypeID{types.Integer, types.Integer}, r.ColumnTypes())
	assert.Equal(t, filepath.Join("db", "files", "R.csv"), r.File().Path())

	s := c.GetTableByName("S")
	require.NotNil(t, s)
	assert.Equal(t, []types.TypeID{types.Varchar, types.Integer}, s.ColumnTypes())
	assert.Equal(t, s, c.GetTableByOID(s.OID()))

	assert.Equal(t, 0, c.GetTableByName("T").Arity())
	assert.Nil(t, c.GetTableByName("U"))
}

func TestLoadSchemaMalformed(t *testing.T) {
	for _, text := range []string{
		"R int\n int string\n",
		"R int float\n",
	} {
		err := LoadSchema(NewCatalog(""), strings.NewReader(text))
		require.Error(t, err, text)
		assert.True(t, errors.Is(err, ErrMalformedSchemaLine), "%q: %v", text, err)
	}
}

func TestBootstrapCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.txt"), []byte("R int string\n"), 0o644))

	c, err := BootstrapCatalog(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, c.GetDatabaseDir())
	assert.Equal(t, 2, c.GetTableByName("R").Arity())

	_, err = BootstrapCatalog(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestValidateAtom(t *testing.T) {
	c := NewCatalog("")
	c.CreateTable("R", []types.TypeID{types.Integer, types.Integer}, nil)

	tbl, err := c.ValidateAtom(query.NewRelationalAtom("R", query.NewVariable("x"), query.NewIntConstant(1)))
	require.NoError(t, err)
	assert.Equal(t, "R", tbl.GetTableName())

	_, err = c.ValidateAtom(query.NewRelationalAtom("R", query.NewVariable("x")))
	assert.True(t, errors.Is(err, ErrArityMismatch), "%v", err)

	_, err = c.ValidateAtom(query.NewRelationalAtom("Z", query.NewVariable("x")))
	assert.True(t, errors.Is(err, ErrUnknownRelation), "%v", err)
}

func TestTupleList(t *testing.T) {
	c := NewCatalog("")
	assert.Empty(t, c.GetTupleList())
	c.AddTuple(nil)
	assert.Len(t, c.GetTupleList(), 1)
	c.ClearTupleList()
	assert.Empty(t, c.GetTupleList())
}
