package plans

import (
	"github.com/ryogrid/cqbase/catalog"
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/table/column"
	"github.com/ryogrid/cqbase/storage/table/schema"
)

// SeqScanPlanNode reads every row of the relation a relational atom names.
// Output columns are labelled with the atom's terms.
type SeqScanPlanNode struct {
	*AbstractPlanNode
	atom          *query.RelationalAtom
	tableMetadata *catalog.TableMetadata
}

func NewSeqScanPlanNode(atom *query.RelationalAtom, tableMetadata *catalog.TableMetadata) *SeqScanPlanNode {
	outSchema := makeScanOutputSchema(atom, tableMetadata)
	return &SeqScanPlanNode{&AbstractPlanNode{outSchema, nil}, atom, tableMetadata}
}

func makeScanOutputSchema(atom *query.RelationalAtom, tableMetadata *catalog.TableMetadata) *schema.Schema {
	colTypes := tableMetadata.ColumnTypes()
	columns := make([]*column.Column, 0, len(atom.Terms))
	for i, term := range atom.Terms {
		if query.IsConstant(term) {
			columns = append(columns, column.NewConstantColumn(term.String(), colTypes[i]))
		} else {
			columns = append(columns, column.NewColumn(term.String(), colTypes[i]))
		}
	}
	return schema.NewSchema(columns)
}

func (p *SeqScanPlanNode) GetAtom() *query.RelationalAtom {
	return p.atom
}

func (p *SeqScanPlanNode) GetTableMetadata() *catalog.TableMetadata {
	return p.tableMetadata
}

func (p *SeqScanPlanNode) GetType() PlanType {
	return SeqScan
}

func (p *SeqScanPlanNode) GetDebugStr() string {
	return "SeqScan " + p.atom.String()
}
