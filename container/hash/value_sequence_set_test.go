package hash

import (
	"testing"

	testingpkg "github.com/ryogrid/cqbase/testing/testing_assert"
	"github.com/ryogrid/cqbase/testing/testing_util"
	"github.com/ryogrid/cqbase/types"
)

func TestHashValuesIsDeterministic(t *testing.T) {
	a := []types.Value{types.NewInteger(1), types.NewVarchar("'x'")}
	b := []types.Value{testing_util.GetValue(1), testing_util.GetValue("'x'")}
	testingpkg.Equals(t, HashValues(a), HashValues(b))

	// length prefixes keep the split point significant
	c := []types.Value{types.NewVarchar("ab"), types.NewVarchar("c")}
	d := []types.Value{types.NewVarchar("a"), types.NewVarchar("bc")}
	testingpkg.Assert(t, HashValues(c) != HashValues(d), "different splits should hash differently")
}

func TestValueSequenceSet(t *testing.T) {
	set := NewValueSequenceSet()
	testingpkg.Assert(t, set.Insert([]types.Value{types.NewInteger(1), types.NewInteger(2)}), "first insert must succeed")
	testingpkg.Assert(t, !set.Insert([]types.Value{types.NewInteger(1), types.NewInteger(2)}), "duplicate must be rejected")
	testingpkg.Assert(t, set.Insert([]types.Value{types.NewInteger(2), types.NewInteger(1)}), "order matters")
	testingpkg.Assert(t, set.Insert([]types.Value{}), "the empty sequence is a member too")
	testingpkg.Equals(t, 3, set.Size())

	testingpkg.Assert(t, set.Contains([]types.Value{types.NewInteger(2), types.NewInteger(1)}), "must contain inserted sequence")
	testingpkg.Assert(t, !set.Contains([]types.Value{types.NewInteger(2)}), "prefix is not a member")

	set.Clear()
	testingpkg.Equals(t, 0, set.Size())
	testingpkg.Assert(t, !set.Contains([]types.Value{types.NewInteger(1), types.NewInteger(2)}), "cleared set must be empty")
}
