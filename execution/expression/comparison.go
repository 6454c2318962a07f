package expression

import (
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

type ComparisonType int

/** ComparisonType represents the type of comparison that we want to perform. */
const (
	Equal ComparisonType = iota
	NotEqual
	GreaterThan        // A > B
	GreaterThanOrEqual // A >= B
	LessThan           // A < B
	LessThanOrEqual    // A <= B
)

func comparisonTypeOf(op query.ComparisonOperator) ComparisonType {
	switch op {
	case query.EQ:
		return Equal
	case query.NEQ:
		return NotEqual
	case query.GT:
		return GreaterThan
	case query.GEQ:
		return GreaterThanOrEqual
	case query.LT:
		return LessThan
	case query.LEQ:
		return LessThanOrEqual
	}
	panic("illegal comparison operator is passed!")
}

/**
 * Comparison represents two operands being compared.
 */
type Comparison struct {
	children       [2]Operand
	comparisonType ComparisonType
	atom           *query.ComparisonAtom
}

func NewComparison(left Operand, right Operand, comparisonType ComparisonType) *Comparison {
	return &Comparison{[2]Operand{left, right}, comparisonType, nil}
}

func NewComparisonFromAtom(atom *query.ComparisonAtom) *Comparison {
	ret := NewComparison(NewOperand(atom.Left), NewOperand(atom.Right), comparisonTypeOf(atom.Op))
	ret.atom = atom
	return ret
}

func NewComparisons(atoms []*query.ComparisonAtom) []*Comparison {
	ret := make([]*Comparison, 0, len(atoms))
	for _, atom := range atoms {
		ret = append(ret, NewComparisonFromAtom(atom))
	}
	return ret
}

// Evaluate reports whether the tuple satisfies the comparison. A comparison
// naming a column the tuple does not carry is not decidable yet and holds.
func (c *Comparison) Evaluate(tuple_ *tuple.Tuple) bool {
	lhs, okL := c.children[0].Resolve(tuple_)
	rhs, okR := c.children[1].Resolve(tuple_)
	if !okL || !okR {
		return true
	}
	return c.performComparison(lhs, rhs)
}

func (c *Comparison) performComparison(lhs types.Value, rhs types.Value) bool {
	var ret bool
	var err error
	switch c.comparisonType {
	case Equal:
		return lhs.CompareEquals(rhs)
	case NotEqual:
		return lhs.CompareNotEquals(rhs)
	case GreaterThan:
		ret, err = lhs.CompareGreaterThan(rhs)
	case GreaterThanOrEqual:
		ret, err = lhs.CompareGreaterThanOrEqual(rhs)
	case LessThan:
		ret, err = lhs.CompareLessThan(rhs)
	case LessThanOrEqual:
		ret, err = lhs.CompareLessThanOrEqual(rhs)
	default:
		panic("illegal comparisonType is passed!")
	}
	if err != nil {
		// ordering needs integers on both sides
		common.ShPrintf(common.DEBUG_INFO_DETAIL, "comparison %s: %v\n", c.String(), err)
		return false
	}
	return ret
}

func (c *Comparison) GetChildAt(child_idx uint32) Operand {
	if int(child_idx) >= len(c.children) {
		return nil
	}
	return c.children[child_idx]
}

func (c *Comparison) GetComparisonType() ComparisonType {
	return c.comparisonType
}

func (c *Comparison) GetType() ExpressionType {
	return EXPRESSION_TYPE_COMPARISON
}

func (c *Comparison) String() string {
	if c.atom != nil {
		return c.atom.String()
	}
	return c.children[0].String() + " ? " + c.children[1].String()
}
