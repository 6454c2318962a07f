package executors

import (
	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/container/hash"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/query"
	"github.com/ryogrid/cqbase/storage/table/schema"
	"github.com/ryogrid/cqbase/storage/tuple"
	"github.com/ryogrid/cqbase/types"
)

type aggregateEntry struct {
	groupBys []types.Value
	sum      int64
}

/**
 * An iterator through the simplified aggregation hash table.
 */
type AggregateHTIterator struct {
	entries []*aggregateEntry
	index   int
}

func (it *AggregateHTIterator) Next() {
	it.index++
}

func (it *AggregateHTIterator) IsEnd() bool {
	return it.index >= len(it.entries)
}

func (it *AggregateHTIterator) Key() []types.Value {
	return it.entries[it.index].groupBys
}

func (it *AggregateHTIterator) Val() int64 {
	return it.entries[it.index].sum
}

/**
 * A simplified hash table that has all the necessary functionality for SUM
 * aggregation. Groups are iterated in the order they were first inserted.
 */
type SimpleAggregationHashTable struct {
	ht    map[uint32][]*aggregateEntry
	order []*aggregateEntry
}

func NewSimpleAggregationHashTable() *SimpleAggregationHashTable {
	return &SimpleAggregationHashTable{make(map[uint32][]*aggregateEntry), make([]*aggregateEntry, 0)}
}

/**
 * Inserts a value into the hash table and then combines it with the current aggregation.
 */
func (aht *SimpleAggregationHashTable) InsertCombine(groupBys []types.Value, val int64) {
	hashval := hash.HashValues(groupBys)
	for _, entry := range aht.ht[hashval] {
		if equalValues(entry.groupBys, groupBys) {
			entry.sum += val
			return
		}
	}
	entry := &aggregateEntry{groupBys, val}
	aht.ht[hashval] = append(aht.ht[hashval], entry)
	aht.order = append(aht.order, entry)
}

/** @return iterator to the start of the hash table */
func (aht *SimpleAggregationHashTable) Begin() *AggregateHTIterator {
	return &AggregateHTIterator{aht.order, 0}
}

func equalValues(a []types.Value, b []types.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].CompareEquals(b[i]) {
			return false
		}
	}
	return true
}

/**
 * SumExecutor runs once over the tuples already materialized in the catalog
 * and replaces them with its result. It is not pulled tuple by tuple.
 */
type SumExecutor struct {
	context *ExecutorContext
	plan    *plans.SumPlanNode
}

func NewSumExecutor(context *ExecutorContext, plan *plans.SumPlanNode) *SumExecutor {
	return &SumExecutor{context, plan}
}

func (e *SumExecutor) GetOutputSchema() *schema.Schema {
	return e.plan.OutputSchema()
}

// Execute aggregates the catalog's result list in place.
func (e *SumExecutor) Execute() error {
	c := e.context.GetCatalog()
	input := c.GetTupleList()
	var result []*tuple.Tuple
	var err error
	switch {
	case e.plan.GetAggregate() == nil:
		result = e.distinct(input)
	case e.plan.GetAggregate().IsConstant() && e.plan.GroupByCount() == 0:
		result, err = e.scaledCount(input)
	default:
		result, err = e.groupSum(input)
	}
	if err != nil {
		return err
	}
	common.ShPrintf(common.DEBUG_INFO, "SumExecutor: %d tuples -> %d tuples\n", len(input), len(result))
	c.SetTupleList(result)
	return nil
}

func (e *SumExecutor) distinct(input []*tuple.Tuple) []*tuple.Tuple {
	seen := hash.NewValueSequenceSet()
	result := make([]*tuple.Tuple, 0, len(input))
	for _, t := range input {
		if seen.Insert(t.GetValues()) {
			result = append(result, t)
		}
	}
	return result
}

// constantFactor multiplies the literal product terms.
func constantFactor(agg *query.SumAggregate) int64 {
	factor := int64(1)
	for _, term := range agg.ProductTerms {
		if c, ok := term.(query.IntConstant); ok {
			factor *= c.Value
		}
	}
	return factor
}

// scaledCount handles an aggregate of literals only: every materialized
// tuple contributes the product of the literals.
func (e *SumExecutor) scaledCount(input []*tuple.Tuple) ([]*tuple.Tuple, error) {
	if err := checkIntegerTerms(e.plan.GetAggregate()); err != nil {
		return nil, err
	}
	total := constantFactor(e.plan.GetAggregate()) * int64(len(input))
	return []*tuple.Tuple{tuple.NewTuple(e.plan.GetHead().Name, e.GetOutputSchema(), []types.Value{types.NewInteger(total)})}, nil
}

func (e *SumExecutor) groupSum(input []*tuple.Tuple) ([]*tuple.Tuple, error) {
	agg := e.plan.GetAggregate()
	if err := checkIntegerTerms(agg); err != nil {
		return nil, err
	}
	factor := constantFactor(agg)
	groupByCount := e.plan.GroupByCount()
	aht := NewSimpleAggregationHashTable()
	for _, t := range input {
		values := t.GetValues()
		product := factor
		for _, val := range values[groupByCount:] {
			i, err := val.ToInteger()
			if err != nil {
				return nil, errors.Wrapf(err, "%s over tuple %v", agg.String(), t.ValueStrings())
			}
			product *= i
		}
		aht.InsertCombine(values[:groupByCount], product)
	}

	result := make([]*tuple.Tuple, 0)
	for it := aht.Begin(); !it.IsEnd(); it.Next() {
		values := make([]types.Value, 0, groupByCount+1)
		values = append(values, it.Key()...)
		values = append(values, types.NewInteger(it.Val()))
		result = append(result, tuple.NewTuple(e.plan.GetHead().Name, e.GetOutputSchema(), values))
	}
	return result, nil
}

func checkIntegerTerms(agg *query.SumAggregate) error {
	for _, term := range agg.ProductTerms {
		if _, ok := term.(query.StringConstant); ok {
			return errors.Errorf("%s multiplies the string literal %s", agg.String(), term.String())
		}
	}
	return nil
}
