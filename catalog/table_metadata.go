package catalog

import (
	"github.com/ryogrid/cqbase/storage/access"
	"github.com/ryogrid/cqbase/types"
)

type TableMetadata struct {
	name        string
	columnTypes []types.TypeID
	file        access.TableFile
	oid         uint32
}

func (t *TableMetadata) GetTableName() string {
	return t.name
}

// ColumnTypes returns the declared type of each position of the relation.
func (t *TableMetadata) ColumnTypes() []types.TypeID {
	return t.columnTypes
}

func (t *TableMetadata) Arity() int {
	return len(t.columnTypes)
}

func (t *TableMetadata) File() access.TableFile {
	return t.file
}

func (t *TableMetadata) OID() uint32 {
	return t.oid
}
