package expression

import (
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

/**
 * ConstantValue represents constants.
 */
type ConstantValue struct {
	term  query.Term
	value types.Value
}

func NewConstantValue(term query.Term, value types.Value) *ConstantValue {
	return &ConstantValue{term, value}
}

func (c *ConstantValue) Resolve(tuple_ *tuple.Tuple) (types.Value, bool) {
	return c.value, true
}

func (c *ConstantValue) DeclaredType(schema_ *schema.Schema) (types.TypeID, bool) {
	return c.value.ValueType(), true
}

func (c *ConstantValue) IsIntConstant() bool {
	_, ok := c.term.(query.IntConstant)
	return ok
}

func (c *ConstantValue) GetType() ExpressionType {
	return EXPRESSION_TYPE_CONSTANT_VALUE
}

func (c *ConstantValue) String() string {
	return c.term.String()
}
