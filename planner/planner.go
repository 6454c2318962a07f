package planner

import (
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/query"
)

type Planner interface {
	MakePlan(*query.Query) (plans.Plan, error)
}
