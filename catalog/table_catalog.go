package catalog

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/access"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

var (
	ErrUnknownRelation = errors.New("unknown relation")
	ErrArityMismatch   = errors.New("arity mismatch")
)

// Catalog maps relation names to their column types and backing files.
// It also owns the result tuple list of one evaluation run.
type Catalog struct {
	databaseDir string
	tableIds    map[uint32]*TableMetadata
	tableNames  map[string]*TableMetadata
	nextTableId uint32
	tupleList   []*tuple.Tuple
}

func NewCatalog(databaseDir string) *Catalog {
	return &Catalog{databaseDir, make(map[uint32]*TableMetadata), make(map[string]*TableMetadata), 0, make([]*tuple.Tuple, 0)}
}

// CreateTable registers a relation. A nil file means files/<name>.csv under the database dir.
func (c *Catalog) CreateTable(name string, columnTypes []types.TypeID, file access.TableFile) *TableMetadata {
	if file == nil {
		file = access.NewDiskTableFile(c.RelationFilePath(name))
	}
	oid := c.nextTableId
	c.nextTableId++

	tableMetadata := &TableMetadata{name, columnTypes, file, oid}
	c.tableIds[oid] = tableMetadata
	c.tableNames[name] = tableMetadata
	return tableMetadata
}

func (c *Catalog) GetTableByName(table string) *TableMetadata {
	if table, ok := c.tableNames[table]; ok {
		return table
	}
	return nil
}

func (c *Catalog) GetTableByOID(oid uint32) *TableMetadata {
	if table, ok := c.tableIds[oid]; ok {
		return table
	}
	return nil
}

func (c *Catalog) GetDatabaseDir() string {
	return c.databaseDir
}

func (c *Catalog) RelationFilePath(name string) string {
	return filepath.Join(c.databaseDir, common.RelationFilesDir, name+common.RelationFileExt)
}

// ValidateAtom checks that the atom's relation exists and that its arity matches.
func (c *Catalog) ValidateAtom(atom *query.RelationalAtom) (*TableMetadata, error) {
	tableMetadata := c.GetTableByName(atom.Name)
	if tableMetadata == nil {
		return nil, errors.Wrapf(ErrUnknownRelation, "%s", atom.Name)
	}
	if tableMetadata.Arity() != atom.Arity() {
		return nil, errors.Wrapf(ErrArityMismatch, "%s has %d columns but atom %s has %d terms",
			atom.Name, tableMetadata.Arity(), atom.String(), atom.Arity())
	}
	return tableMetadata, nil
}

func (c *Catalog) AddTuple(t *tuple.Tuple) {
	c.tupleList = append(c.tupleList, t)
}

func (c *Catalog) GetTupleList() []*tuple.Tuple {
	return c.tupleList
}

// SetTupleList replaces the whole result list
func (c *Catalog) SetTupleList(tuples []*tuple.Tuple) {
	c.tupleList = tuples
}

// ClearTupleList drops the results of a previous run.
func (c *Catalog) ClearTupleList() {
	c.tupleList = make([]*tuple.Tuple, 0)
}
