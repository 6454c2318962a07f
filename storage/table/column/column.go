package column

import (
	"github.com/ryogrid/cqbase/types"
)

// Column is a label plus a declared type. Labels come from query terms, so
// two columns of one schema may carry the same label.
type Column struct {
	columnName string
	columnType types.TypeID
	isConstant bool // the label is the literal text of a constant term
}

func NewColumn(name string, columnType types.TypeID) *Column {
	return &Column{name, columnType, false}
}

// NewConstantColumn creates a column whose label is a constant literal. A row
// only satisfies such a column when its value equals the label.
func NewConstantColumn(literal string, columnType types.TypeID) *Column {
	return &Column{literal, columnType, true}
}

func (c *Column) IsConstant() bool {
	return c.isConstant
}

func (c *Column) GetType() types.TypeID {
	return c.columnType
}

func (c *Column) GetColumnName() string {
	return c.columnName
}
