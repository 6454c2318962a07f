package plans

import (
	"github.com/ryogrid/cqbase/storage/table/schema"
)

type PlanType int

const (
	SeqScan PlanType = iota
	Selection
	Join
	Projection
	Sum
)

type Plan interface {
	OutputSchema() *schema.Schema
	GetChildAt(childIndex uint32) Plan
	GetChildren() []Plan
	GetType() PlanType
	GetDebugStr() string
}

/**
 * AbstractPlanNode holds what every plan node has: the schema of the tuples
 * it produces and the plans it reads from. A plan node exclusively owns its
 * children.
 */
type AbstractPlanNode struct {
	/**
	 * The schema for the output of this plan node. In the volcano model, every plan node will spit out tuples,
	 * and this tells you what schema this plan node's tuples will have.
	 */
	outputSchema *schema.Schema
	/** The children of this plan node. */
	children []Plan
}

func (p *AbstractPlanNode) GetChildAt(childIndex uint32) Plan {
	if int(childIndex) >= len(p.children) {
		return nil
	}
	return p.children[childIndex]
}

func (p *AbstractPlanNode) GetChildren() []Plan {
	return p.children
}

func (p *AbstractPlanNode) OutputSchema() *schema.Schema {
	return p.outputSchema
}
