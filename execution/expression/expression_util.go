package expression

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

// CheckConstantBindings reports whether every constant-labelled column of the
// tuple holds exactly its label's literal.
func CheckConstantBindings(tuple_ *tuple.Tuple) bool {
	for i, col := range tuple_.GetSchema().GetColumns() {
		if !col.IsConstant() {
			continue
		}
		val := tuple_.GetValue(uint32(i))
		if col.GetType() == types.Integer {
			lit := types.NewValueFromText(col.GetColumnName(), types.Integer)
			eq, err := equalIntegers(val, lit)
			if err != nil || !eq {
				return false
			}
			continue
		}
		if val.ToString() != col.GetColumnName() {
			return false
		}
	}
	return true
}

func equalIntegers(lhs types.Value, rhs types.Value) (bool, error) {
	l, err := lhs.ToInteger()
	if err != nil {
		return false, err
	}
	r, err := rhs.ToInteger()
	if err != nil {
		return false, err
	}
	return l == r, nil
}

// EvaluateAll reports whether the tuple satisfies every comparison.
func EvaluateAll(comparisons []*Comparison, tuple_ *tuple.Tuple) bool {
	for _, c := range comparisons {
		if !c.Evaluate(tuple_) {
			return false
		}
	}
	return true
}

// CheckCompatibility decides, from the columns of a probe schema alone, whether
// the comparisons can ever hold. A false result means no tuple of that schema
// can pass, so the caller may treat its input as empty.
func CheckCompatibility(comparisons []*Comparison, probe *schema.Schema) bool {
	labels := mapset.NewSet[string](probe.GetColumnNames()...)
	empty := tuple.NewTuple("", schema.NewSchema(nil), nil)
	for _, c := range comparisons {
		lhs, rhs := c.GetChildAt(0), c.GetChildAt(1)
		if !operandAvailable(lhs, labels) || !operandAvailable(rhs, labels) {
			common.ShPrintf(common.DEBUG_INFO, "%s refers to an unknown column\n", c.String())
			return false
		}
		if lhs.GetType() == EXPRESSION_TYPE_CONSTANT_VALUE && rhs.GetType() == EXPRESSION_TYPE_CONSTANT_VALUE {
			// identical literals only agree under =
			if lhs.String() == rhs.String() && c.GetComparisonType() != Equal {
				return false
			}
			if !c.Evaluate(empty) {
				return false
			}
			continue
		}
		if !typesCompatible(lhs, rhs, probe) {
			common.ShPrintf(common.DEBUG_INFO, "%s compares incompatible types\n", c.String())
			return false
		}
	}
	return true
}

// typesCompatible requires equal types between two columns. Against a
// literal only a string column paired with an integer literal is rejected;
// other pairings are left to the per-row comparison.
func typesCompatible(lhs Operand, rhs Operand, probe *schema.Schema) bool {
	if constant, ok := rhs.(*ConstantValue); ok {
		lType, _ := lhs.DeclaredType(probe)
		return !(lType == types.Varchar && constant.IsIntConstant())
	}
	if constant, ok := lhs.(*ConstantValue); ok {
		rType, _ := rhs.DeclaredType(probe)
		return !(rType == types.Varchar && constant.IsIntConstant())
	}
	lType, _ := lhs.DeclaredType(probe)
	rType, _ := rhs.DeclaredType(probe)
	return lType == rType
}

func operandAvailable(op Operand, labels mapset.Set[string]) bool {
	col, ok := op.(*ColumnValue)
	if !ok {
		return true
	}
	return labels.Contains(col.GetColumnName())
}
