package plans

import (
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/table/schema"
)

/**
 * JoinPlanNode combines N scans. Tuples are matched on identically labelled
 * columns, and embedded comparisons are tested against each combination.
 */
type JoinPlanNode struct {
	*AbstractPlanNode
	comparisons []*query.ComparisonAtom
}

func NewJoinPlanNode(children []*SeqScanPlanNode, comparisons []*query.ComparisonAtom) *JoinPlanNode {
	schemas := make([]*schema.Schema, 0, len(children))
	childPlans := make([]Plan, 0, len(children))
	for _, child := range children {
		schemas = append(schemas, child.OutputSchema())
		childPlans = append(childPlans, child)
	}
	return &JoinPlanNode{&AbstractPlanNode{schema.MergeSchemas(schemas...), childPlans}, comparisons}
}

// GetComparisons returns the comparisons evaluated on every combination.
// They may be empty when the planner places a SelectionPlanNode on top instead.
func (p *JoinPlanNode) GetComparisons() []*query.ComparisonAtom {
	return p.comparisons
}

func (p *JoinPlanNode) GetType() PlanType {
	return Join
}

func (p *JoinPlanNode) GetDebugStr() string {
	if len(p.comparisons) == 0 {
		return "Join"
	}
	return "Join [" + joinAtoms(p.comparisons) + "]"
}
