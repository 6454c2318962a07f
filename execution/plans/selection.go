package plans

import (
	"github.com/ryogrid/cqbase/query"
)

// do filtering according to comparison atoms of the query body

type SelectionPlanNode struct {
	*AbstractPlanNode
	comparisons []*query.ComparisonAtom
}

func NewSelectionPlanNode(child Plan, comparisons []*query.ComparisonAtom) *SelectionPlanNode {
	return &SelectionPlanNode{&AbstractPlanNode{child.OutputSchema(), []Plan{child}}, comparisons}
}

func (p *SelectionPlanNode) GetComparisons() []*query.ComparisonAtom {
	return p.comparisons
}

func (p *SelectionPlanNode) GetType() PlanType {
	return Selection
}

func (p *SelectionPlanNode) GetDebugStr() string {
	return "Selection [" + joinAtoms(p.comparisons) + "]"
}
