package executors

import (
	"github.com/ryogrid/cqbase/container/hash"
	"github.com/ryogrid/cqbase/execution/expression"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

/**
 * ProjectionExecutor narrows each child tuple to the head variables followed
 * by the SUM product term columns. Without a SUM aggregate a value sequence is
 * emitted at most once.
 */
type ProjectionExecutor struct {
	context *ExecutorContext
	plan    *plans.ProjectionPlanNode
	child   Executor
	labels  []string
	emitted *hash.ValueSequenceSet
}

func NewProjectionExecutor(context *ExecutorContext, plan *plans.ProjectionPlanNode, child Executor) *ProjectionExecutor {
	return &ProjectionExecutor{context, plan, child, plans.ProjectedLabels(plan.GetHead()), hash.NewValueSequenceSet()}
}

func (e *ProjectionExecutor) Init() error {
	e.emitted.Clear()
	return e.child.Init()
}

func (e *ProjectionExecutor) Next() (*tuple.Tuple, State, error) {
	for {
		t, state, err := e.child.Next()
		if err != nil || state == EndOfStream {
			return nil, EndOfStream, err
		}
		if state == Filtered {
			continue
		}
		// a bare scan has no selection above it to check its labels
		if !t.HasConsistentLabels() || !expression.CheckConstantBindings(t) {
			continue
		}
		values := e.project(t)
		if e.plan.IsDistinct() && !e.emitted.Insert(values) {
			continue
		}
		return tuple.NewTuple(t.GetTableName(), e.GetOutputSchema(), values), Valid, nil
	}
}

// project keeps the first column of each label and orders them by e.labels.
func (e *ProjectionExecutor) project(t *tuple.Tuple) []types.Value {
	firstIdx := make(map[string]int, t.Size())
	for i, col := range t.GetSchema().GetColumns() {
		if _, ok := firstIdx[col.GetColumnName()]; !ok {
			firstIdx[col.GetColumnName()] = i
		}
	}
	values := make([]types.Value, 0, len(e.labels))
	for _, label := range e.labels {
		values = append(values, t.GetValue(uint32(firstIdx[label])))
	}
	return values
}

func (e *ProjectionExecutor) GetOutputSchema() *schema.Schema {
	return e.plan.OutputSchema()
}

func (e *ProjectionExecutor) Reset() error {
	e.emitted.Clear()
	return e.child.Reset()
}

func (e *ProjectionExecutor) Close() error {
	return e.child.Close()
}
