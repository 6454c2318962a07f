package expression

import (
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

/**
 * ColumnValue refers to the first column of a tuple carrying a label.
 */
type ColumnValue struct {
	colName string
}

func NewColumnValue(colName string) *ColumnValue {
	return &ColumnValue{colName}
}

func (c *ColumnValue) Resolve(tuple_ *tuple.Tuple) (types.Value, bool) {
	return tuple_.GetValueByName(c.colName)
}

func (c *ColumnValue) DeclaredType(schema_ *schema.Schema) (types.TypeID, bool) {
	idx := schema_.GetColIndex(c.colName)
	if idx >= schema_.GetColumnCount() {
		return types.Invalid, false
	}
	return schema_.GetColumn(idx).GetType(), true
}

func (c *ColumnValue) GetColumnName() string {
	return c.colName
}

func (c *ColumnValue) GetType() ExpressionType {
	return EXPRESSION_TYPE_COLUMN_VALUE
}

func (c *ColumnValue) String() string {
	return c.colName
}
