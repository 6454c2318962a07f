package expression

import (
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

type ExpressionType int

const (
	EXPRESSION_TYPE_COLUMN_VALUE ExpressionType = iota
	EXPRESSION_TYPE_CONSTANT_VALUE
	EXPRESSION_TYPE_COMPARISON
)

/**
 * Operand is one side of a comparison: either a column looked up by label
 * or a constant literal.
 */
type Operand interface {
	// Resolve returns the operand's value for the tuple. ok is false when the
	// operand names a column the tuple does not have.
	Resolve(tuple_ *tuple.Tuple) (val types.Value, ok bool)
	// DeclaredType returns the column type in schema_, or the literal kind.
	DeclaredType(schema_ *schema.Schema) (types.TypeID, bool)
	GetType() ExpressionType
	String() string
}

// NewOperand converts a query term to an operand
func NewOperand(term query.Term) Operand {
	switch t := term.(type) {
	case query.Variable:
		return NewColumnValue(t.Name)
	case query.IntConstant:
		return NewConstantValue(term, types.NewInteger(t.Value))
	case query.StringConstant:
		return NewConstantValue(term, types.NewVarchar(t.String()))
	}
	panic("unknown term kind")
}
