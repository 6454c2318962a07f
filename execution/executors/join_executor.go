package executors

import (
	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/execution/expression"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
)

/**
 * JoinExecutor enumerates the Cartesian product of its scans. The scans act
 * as the digits of a counter: the last one advances first, and a scan that
 * runs out is reset to its first tuple while the advance carries to the scan
 * before it. Every combination is produced exactly once.
 */
type JoinExecutor struct {
	context     *ExecutorContext
	plan        *plans.JoinPlanNode
	children    []Executor
	current     []*tuple.Tuple
	comparisons []*expression.Comparison
	started     bool
	done        bool
}

func NewJoinExecutor(context *ExecutorContext, plan *plans.JoinPlanNode) *JoinExecutor {
	ret := &JoinExecutor{context: context, plan: plan, comparisons: expression.NewComparisons(plan.GetComparisons())}
	ret.buildChildren()
	return ret
}

func (e *JoinExecutor) buildChildren() {
	e.children = make([]Executor, 0, len(e.plan.GetChildren()))
	for _, child := range e.plan.GetChildren() {
		e.children = append(e.children, NewSeqScanExecutor(e.context, child.(*plans.SeqScanPlanNode)))
	}
	e.current = make([]*tuple.Tuple, len(e.children))
}

func (e *JoinExecutor) Init() error {
	e.started = false
	e.done = false
	for i, child := range e.children {
		if err := child.Init(); err != nil {
			return err
		}
		t, err := firstValid(child)
		if err != nil {
			return err
		}
		if t == nil {
			// one empty input empties the whole product
			e.done = true
			return nil
		}
		e.current[i] = t
	}
	return nil
}

// firstValid pulls from the executor until it yields a tuple or ends.
func firstValid(child Executor) (*tuple.Tuple, error) {
	for {
		t, state, err := child.Next()
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

// advance moves the counter one step. It returns false once every
// combination has been produced.
func (e *JoinExecutor) advance() (bool, error) {
	for i := len(e.children) - 1; i >= 0; i-- {
		t, err := firstValid(e.children[i])
		if err != nil {
			return false, err
		}
		if t != nil {
			e.current[i] = t
			return true, nil
		}
		if i == 0 {
			return false, nil
		}
		// carry
		if err := e.children[i].Reset(); err != nil {
			return false, err
		}
		t, err = firstValid(e.children[i])
		if err != nil {
			return false, err
		}
		if t == nil {
			return false, errors.Errorf("scan %s is empty after reset", e.plan.GetChildAt(uint32(i)).GetDebugStr())
		}
		e.current[i] = t
	}
	return false, nil
}

// Next returns the next combination. Combinations whose shared labels
// disagree, or which fail a comparison, are reported as Filtered.
func (e *JoinExecutor) Next() (*tuple.Tuple, State, error) {
	if e.done {
		return nil, EndOfStream, nil
	}
	if !e.started {
		e.started = true
	} else {
		more, err := e.advance()
		if err != nil {
			return nil, EndOfStream, err
		}
		if !more {
			e.done = true
			return nil, EndOfStream, nil
		}
	}

	combined := tuple.Concat(e.current)
	if !combined.HasConsistentLabels() || !EvaluateSelection(e.comparisons, combined) {
		return nil, Filtered, nil
	}
	return combined, Valid, nil
}

func (e *JoinExecutor) GetOutputSchema() *schema.Schema {
	return e.plan.OutputSchema()
}

// Reset closes every scan, builds fresh ones and positions them on their first tuples.
func (e *JoinExecutor) Reset() error {
	if err := e.Close(); err != nil {
		return err
	}
	common.ShPrintf(common.DEBUG_INFO_DETAIL, "JoinExecutor: rebuilding %d scans\n", len(e.plan.GetChildren()))
	e.buildChildren()
	return e.Init()
}

func (e *JoinExecutor) Close() error {
	var firstErr error
	for _, child := range e.children {
		if err := child.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
