package tuple

import (
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/types"
)

/**
 * A Tuple is a table tag plus positionally aligned columns (label, type)
 * and values. Column labels repeat when one variable occurs several times.
 */
type Tuple struct {
	tableName string
	schema    *schema.Schema
	values    []types.Value
}

func NewTuple(tableName string, schema_ *schema.Schema, values []types.Value) *Tuple {
	common.SH_Assert(schema_.GetColumnCount() == uint32(len(values)), "column count and value count of a tuple must be equal")
	return &Tuple{tableName, schema_, values}
}

func (t *Tuple) GetTableName() string {
	return t.tableName
}

func (t *Tuple) GetSchema() *schema.Schema {
	return t.schema
}

func (t *Tuple) GetValue(colIndex uint32) types.Value {
	return t.values[colIndex]
}

func (t *Tuple) GetValues() []types.Value {
	return t.values
}

// Size returns the number of columns
func (t *Tuple) Size() uint32 {
	return uint32(len(t.values))
}

func (t *Tuple) IsEmpty() bool {
	return len(t.values) == 0
}

// GetValueByName returns the value of the first column labelled columnName.
func (t *Tuple) GetValueByName(columnName string) (types.Value, bool) {
	idx := t.schema.GetColIndex(columnName)
	if idx >= t.Size() {
		return types.Value{}, false
	}
	return t.values[idx], true
}

// ValueStrings returns the literal text of every value
func (t *Tuple) ValueStrings() []string {
	ret := make([]string, 0, len(t.values))
	for _, v := range t.values {
		ret = append(ret, v.ToString())
	}
	return ret
}

// HasConsistentLabels reports whether all columns sharing a label hold equal values.
func (t *Tuple) HasConsistentLabels() bool {
	firstSeen := make(map[string]types.Value, len(t.values))
	for i, col := range t.schema.GetColumns() {
		if prev, ok := firstSeen[col.GetColumnName()]; ok {
			if !prev.CompareEquals(t.values[i]) {
				return false
			}
			continue
		}
		firstSeen[col.GetColumnName()] = t.values[i]
	}
	return true
}

// Concat joins tuples side by side. The result carries the first tuple's table tag.
func Concat(tuples []*Tuple) *Tuple {
	schemas := make([]*schema.Schema, 0, len(tuples))
	values := make([]types.Value, 0)
	for _, t := range tuples {
		schemas = append(schemas, t.schema)
		values = append(values, t.values...)
	}
	return NewTuple(tuples[0].tableName, schema.MergeSchemas(schemas...), values)
}
