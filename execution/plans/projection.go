package plans

import (
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/table/column"
	"github.com/ryogrid/cqbase/storage/table/schema"
)

type ProjectionPlanNode struct {
	*AbstractPlanNode
	head *query.Head
}

func NewProjectionPlanNode(child Plan, head *query.Head) *ProjectionPlanNode {
	return &ProjectionPlanNode{&AbstractPlanNode{makeProjectionOutputSchema(child.OutputSchema(), head), []Plan{child}}, head}
}

// ProjectedLabels returns the column labels a projection emits: the head
// variables followed by the variable product terms of the SUM aggregate.
func ProjectedLabels(head *query.Head) []string {
	labels := make([]string, 0, len(head.Variables))
	for _, v := range head.Variables {
		labels = append(labels, v.Name)
	}
	if head.SumAggregate != nil {
		for _, t := range head.SumAggregate.ProductTerms {
			if v, ok := t.(query.Variable); ok {
				labels = append(labels, v.Name)
			}
		}
	}
	return labels
}

func makeProjectionOutputSchema(childSchema *schema.Schema, head *query.Head) *schema.Schema {
	labels := ProjectedLabels(head)
	columns := make([]*column.Column, 0, len(labels))
	for _, label := range labels {
		idx := childSchema.GetColIndex(label)
		common.SH_Assert(idx < childSchema.GetColumnCount(), "projected variable "+label+" is not bound by the body")
		columns = append(columns, column.NewColumn(label, childSchema.GetColumn(idx).GetType()))
	}
	return schema.NewSchema(columns)
}

func (p *ProjectionPlanNode) GetHead() *query.Head {
	return p.head
}

// IsDistinct reports whether the projection must suppress duplicate output.
func (p *ProjectionPlanNode) IsDistinct() bool {
	return p.head.SumAggregate == nil
}

func (p *ProjectionPlanNode) GetType() PlanType {
	return Projection
}

func (p *ProjectionPlanNode) GetDebugStr() string {
	return "Projection " + p.head.String()
}
