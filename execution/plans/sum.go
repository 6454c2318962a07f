package plans

import (
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/table/column"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/types"
)

/**
 * SumPlanNode post-processes the materialized output of its child. With a SUM
 * aggregate in the head it groups by the head variables and sums the product
 * of the aggregate's terms. Without one it removes duplicate tuples; the
 * planner never builds that form since Projection already emits distinct
 * tuples, so it is only reached by constructing the node directly.
 */
type SumPlanNode struct {
	*AbstractPlanNode
	head *query.Head
}

func NewSumPlanNode(child Plan, head *query.Head) *SumPlanNode {
	return &SumPlanNode{&AbstractPlanNode{makeSumOutputSchema(child.OutputSchema(), head), []Plan{child}}, head}
}

func makeSumOutputSchema(childSchema *schema.Schema, head *query.Head) *schema.Schema {
	if head.SumAggregate == nil {
		return childSchema
	}
	columns := make([]*column.Column, 0, len(head.Variables)+1)
	for i := range head.Variables {
		columns = append(columns, childSchema.GetColumn(uint32(i)))
	}
	columns = append(columns, column.NewColumn(head.SumAggregate.String(), types.Integer))
	return schema.NewSchema(columns)
}

func (p *SumPlanNode) GetHead() *query.Head {
	return p.head
}

func (p *SumPlanNode) GetAggregate() *query.SumAggregate {
	return p.head.SumAggregate
}

// GroupByCount is the number of leading columns forming the group key.
func (p *SumPlanNode) GroupByCount() int {
	return len(p.head.Variables)
}

func (p *SumPlanNode) GetType() PlanType {
	return Sum
}

func (p *SumPlanNode) GetDebugStr() string {
	if p.head.SumAggregate == nil {
		return "Sum (distinct)"
	}
	return "Sum " + p.head.SumAggregate.String()
}
