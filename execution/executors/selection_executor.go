package executors

import (
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/execution/expression"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
)

/**
 * SelectionExecutor filters the tuples of its child by comparison atoms.
 * Init checks the comparisons against the columns of one probe tuple. When
 * they can never hold, the executor reports EndOfStream from then on and does
 * not touch its child again.
 */
type SelectionExecutor struct {
	context     *ExecutorContext
	plan        *plans.SelectionPlanNode
	child       Executor
	comparisons []*expression.Comparison
	alwaysEmpty bool
}

func NewSelectionExecutor(context *ExecutorContext, plan *plans.SelectionPlanNode, child Executor) *SelectionExecutor {
	return &SelectionExecutor{context, plan, child, expression.NewComparisons(plan.GetComparisons()), false}
}

func (e *SelectionExecutor) Init() error {
	if err := e.child.Init(); err != nil {
		return err
	}
	probe, err := e.fetchProbe()
	if err != nil {
		return err
	}
	if probe == nil {
		common.ShPrintf(common.DEBUG_INFO, "SelectionExecutor: child is empty\n")
		e.alwaysEmpty = true
		return nil
	}
	e.alwaysEmpty = !expression.CheckCompatibility(e.comparisons, probe.GetSchema())
	if e.alwaysEmpty {
		common.ShPrintf(common.DEBUG_INFO, "SelectionExecutor: %s can not hold for %v\n",
			e.plan.GetDebugStr(), probe.GetSchema().GetColumnNames())
		return nil
	}
	return e.child.Reset()
}

// fetchProbe returns the first valid tuple of the child, or nil when it has none.
func (e *SelectionExecutor) fetchProbe() (*tuple.Tuple, error) {
	for {
		t, state, err := e.child.Next()
		if err != nil {
			return nil, err
		}
		switch state {
		case Valid:
			return t, nil
		case EndOfStream:
			return nil, nil
		}
	}
}

func (e *SelectionExecutor) Next() (*tuple.Tuple, State, error) {
	if e.alwaysEmpty {
		return nil, EndOfStream, nil
	}
	t, state, err := e.child.Next()
	if err != nil || state != Valid {
		return nil, state, err
	}
	if !EvaluateSelection(e.comparisons, t) {
		return nil, Filtered, nil
	}
	return t, Valid, nil
}

// EvaluateSelection filters one tuple without the static check. Constant
// labelled columns must hold their literal and every comparison must pass.
func EvaluateSelection(comparisons []*expression.Comparison, t *tuple.Tuple) bool {
	return expression.CheckConstantBindings(t) && expression.EvaluateAll(comparisons, t)
}

func (e *SelectionExecutor) GetOutputSchema() *schema.Schema {
	return e.plan.OutputSchema()
}

func (e *SelectionExecutor) Reset() error {
	if e.alwaysEmpty {
		return nil
	}
	return e.child.Reset()
}

func (e *SelectionExecutor) Close() error {
	return e.child.Close()
}
