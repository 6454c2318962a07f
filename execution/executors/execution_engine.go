package executors

import (
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/execution/plans"
)

type ExecutionEngine struct {
}

// Execute drains the plan into the catalog's result list. A SumPlanNode at the
// root runs after its child has been fully materialized.
func (e *ExecutionEngine) Execute(plan plans.Plan, context *ExecutorContext) error {
	context.GetCatalog().ClearTupleList()
	if sumPlan, ok := plan.(*plans.SumPlanNode); ok {
		if err := e.drain(sumPlan.GetChildAt(0), context); err != nil {
			return err
		}
		return NewSumExecutor(context, sumPlan).Execute()
	}
	return e.drain(plan, context)
}

func (e *ExecutionEngine) drain(plan plans.Plan, context *ExecutorContext) (err error) {
	executor := e.CreateExecutor(plan, context)
	defer func() {
		if closeErr := executor.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = executor.Init(); err != nil {
		return err
	}
	filtered := 0
	for {
		t, state, err := executor.Next()
		if err != nil {
			return err
		}
		if state == EndOfStream {
			break
		}
		if state == Filtered {
			filtered++
			continue
		}
		context.GetCatalog().AddTuple(t)
	}
	common.ShPrintf(common.DEBUG_INFO, "ExecutionEngine: %d tuples materialized, %d filtered\n",
		len(context.GetCatalog().GetTupleList()), filtered)
	return nil
}

// CreateExecutor builds the executor tree of a pull based plan. SumPlanNode is
// not pull based and is handled by Execute.
func (e *ExecutionEngine) CreateExecutor(plan plans.Plan, context *ExecutorContext) Executor {
	switch p := plan.(type) {
	case *plans.SeqScanPlanNode:
		return NewSeqScanExecutor(context, p)
	case *plans.SelectionPlanNode:
		return NewSelectionExecutor(context, p, e.CreateExecutor(p.GetChildAt(0), context))
	case *plans.JoinPlanNode:
		return NewJoinExecutor(context, p)
	case *plans.ProjectionPlanNode:
		return NewProjectionExecutor(context, p, e.CreateExecutor(p.GetChildAt(0), context))
	}
	panic("illegal plan type is passed to CreateExecutor")
}
