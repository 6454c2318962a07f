package schema

import (
	"math"

	"github.com/ryogrid/cqbase/storage/table/column"
	"github.com/ryogrid/cqbase/types"
)

type Schema struct {
	columns []*column.Column
}

func NewSchema(columns []*column.Column) *Schema {
	return &Schema{columns}
}

// NewSchemaFromNames builds a schema whose i-th column has names[i] and colTypes[i].
func NewSchemaFromNames(names []string, colTypes []types.TypeID) *Schema {
	columns := make([]*column.Column, 0, len(names))
	for i, name := range names {
		columns = append(columns, column.NewColumn(name, colTypes[i]))
	}
	return &Schema{columns}
}

func (s *Schema) GetColumn(colIndex uint32) *column.Column {
	return s.columns[colIndex]
}

func (s *Schema) GetColumnCount() uint32 {
	return uint32(len(s.columns))
}

// GetColIndex returns the first column carrying columnName, or math.MaxUint32.
func (s *Schema) GetColIndex(columnName string) uint32 {
	for i := uint32(0); i < s.GetColumnCount(); i++ {
		if s.columns[i].GetColumnName() == columnName {
			return i
		}
	}

	return math.MaxUint32
}

func (s *Schema) GetColumns() []*column.Column {
	return s.columns
}

func (s *Schema) IsHaveColumn(columnName string) bool {
	return s.GetColIndex(columnName) != math.MaxUint32
}

func (s *Schema) GetColumnNames() []string {
	ret := make([]string, 0, len(s.columns))
	for _, col := range s.columns {
		ret = append(ret, col.GetColumnName())
	}
	return ret
}

// MergeSchemas concatenates the columns of the given schemas in order.
func MergeSchemas(schemas ...*Schema) *Schema {
	columns := make([]*column.Column, 0)
	for _, s := range schemas {
		columns = append(columns, s.columns...)
	}
	return &Schema{columns}
}
