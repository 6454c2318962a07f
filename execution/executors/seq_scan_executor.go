package executors

import (
	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/storage/access"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

// SeqScanExecutor executes a sequential scan over a relation file
type SeqScanExecutor struct {
	context  *ExecutorContext
	plan     *plans.SeqScanPlanNode
	it       *access.TableFileIterator
	rowCount int
	resets   int
}

// NewSeqScanExecutor creates a new sequential executor
func NewSeqScanExecutor(context *ExecutorContext, plan *plans.SeqScanPlanNode) *SeqScanExecutor {
	return &SeqScanExecutor{context, plan, nil, 0, 0}
}

func (e *SeqScanExecutor) Init() error {
	if e.it != nil {
		return e.Reset()
	}
	it, err := access.NewTableFileIterator(e.plan.GetTableMetadata().File())
	if err != nil {
		return errors.Wrapf(err, "scan %s", e.plan.GetAtom().Name)
	}
	e.it = it
	e.rowCount = 0
	return nil
}

// Next reads the next row of the relation file. Each field becomes a value
// under the label of the atom term at the same position.
func (e *SeqScanExecutor) Next() (*tuple.Tuple, State, error) {
	common.SH_Assert(e.it != nil, "SeqScanExecutor.Next is called before Init")
	fields, done, err := e.it.Next()
	if err != nil {
		return nil, EndOfStream, errors.Wrapf(err, "scan %s", e.plan.GetAtom().Name)
	}
	if done {
		return nil, EndOfStream, nil
	}
	e.rowCount++

	outSchema := e.GetOutputSchema()
	if uint32(len(fields)) != outSchema.GetColumnCount() {
		return nil, EndOfStream, errors.Errorf("%s row %d has %d fields, expected %d",
			e.plan.GetTableMetadata().File().Path(), e.rowCount, len(fields), outSchema.GetColumnCount())
	}
	values := make([]types.Value, 0, len(fields))
	for i, field := range fields {
		values = append(values, types.NewValueFromText(field, outSchema.GetColumn(uint32(i)).GetType()))
	}
	return tuple.NewTuple(e.plan.GetAtom().Name, outSchema, values), Valid, nil
}

func (e *SeqScanExecutor) GetOutputSchema() *schema.Schema {
	return e.plan.OutputSchema()
}

// Reset releases the current file handle and reopens the relation from its first row.
func (e *SeqScanExecutor) Reset() error {
	if e.it == nil {
		return e.Init()
	}
	e.resets++
	e.rowCount = 0
	common.ShPrintf(common.DEBUG_INFO_DETAIL, "SeqScanExecutor: reset %s (%d)\n", e.plan.GetAtom().Name, e.resets)
	return e.it.Rewind()
}

func (e *SeqScanExecutor) Close() error {
	if e.it == nil {
		return nil
	}
	err := e.it.Close()
	e.it = nil
	return err
}
