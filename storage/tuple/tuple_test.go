package tuple

import (
	"testing"

	"github.com/ryogrid/cqbase/storage/table/column"
	"github.com/ryogrid/cqbase/storage/table/schema"
	testingpkg "github.com/ryogrid/cqbase/testing/testing_assert"
	"github.com/ryogrid/cqbase/types"
)

func TestTuple(t *testing.T) {
	columnA := column.NewColumn("a", types.Integer)
	columnB := column.NewColumn("b", types.Varchar)
	columnC := column.NewConstantColumn("100", types.Integer)

	schema_ := schema.NewSchema([]*column.Column{columnA, columnB, columnC})

	expA, expB, expC := int64(99), "'Hello World'", int64(100)
	row := []types.Value{types.NewInteger(expA), types.NewVarchar(expB), types.NewInteger(expC)}

	tuple := NewTuple("R", schema_, row)

	testingpkg.Equals(t, "R", tuple.GetTableName())
	testingpkg.Equals(t, uint32(3), tuple.Size())
	testingpkg.Assert(t, !tuple.IsEmpty(), "tuple must not be empty")

	a, err := tuple.GetValue(0).ToInteger()
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, expA, a)
	testingpkg.Equals(t, expB, tuple.GetValue(1).ToString())

	c, ok := tuple.GetValueByName("100")
	testingpkg.Assert(t, ok, "constant column must be found by its literal")
	testingpkg.Equals(t, "100", c.ToString())

	_, ok = tuple.GetValueByName("zz")
	testingpkg.Assert(t, !ok, "unknown label must not be found")

	testingpkg.Equals(t, []string{"99", "'Hello World'", "100"}, tuple.ValueStrings())
}

func TestHasConsistentLabels(t *testing.T) {
	schema_ := schema.NewSchemaFromNames([]string{"x", "y", "x"}, []types.TypeID{types.Integer, types.Integer, types.Integer})

	same := NewTuple("R", schema_, []types.Value{types.NewInteger(1), types.NewInteger(2), types.NewInteger(1)})
	testingpkg.Assert(t, same.HasConsistentLabels(), "repeated label with equal values must be consistent")

	differ := NewTuple("R", schema_, []types.Value{types.NewInteger(1), types.NewInteger(2), types.NewInteger(3)})
	testingpkg.Assert(t, !differ.HasConsistentLabels(), "repeated label with different values must be inconsistent")
}

func TestConcat(t *testing.T) {
	left := NewTuple("R", schema.NewSchemaFromNames([]string{"x", "y"}, []types.TypeID{types.Integer, types.Integer}),
		[]types.Value{types.NewInteger(1), types.NewInteger(2)})
	right := NewTuple("S", schema.NewSchemaFromNames([]string{"y", "z"}, []types.TypeID{types.Integer, types.Integer}),
		[]types.Value{types.NewInteger(2), types.NewInteger(5)})

	joined := Concat([]*Tuple{left, right})
	testingpkg.Equals(t, "R", joined.GetTableName())
	testingpkg.Equals(t, []string{"x", "y", "y", "z"}, joined.GetSchema().GetColumnNames())
	testingpkg.Equals(t, []string{"1", "2", "2", "5"}, joined.ValueStrings())
	testingpkg.Assert(t, joined.HasConsistentLabels(), "shared y must agree")
}

func TestEmptyTuple(t *testing.T) {
	empty := NewTuple("Q", schema.NewSchema(nil), nil)
	testingpkg.Assert(t, empty.IsEmpty(), "tuple without columns must be empty")
	testingpkg.Equals(t, 0, len(empty.ValueStrings()))
}
