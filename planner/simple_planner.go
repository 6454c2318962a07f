package planner

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/catalog"
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/query"
)

var (
	ErrNoRelationalAtom    = errors.New("query body has no relational atom")
	ErrUnboundHeadVariable = errors.New("head variable does not occur in a relational atom")
)

// SimplePlanner builds the fixed plan shape for a conjunctive query:
//
//	Projection <- [Selection] <- SeqScan              (one relational atom)
//	Projection <- [Selection] <- Join <- SeqScan...   (several)
//
// wrapped by a Sum node when the head has a SUM aggregate.
type SimplePlanner struct {
	catalog_ *catalog.Catalog
}

func NewSimplePlanner(c *catalog.Catalog) *SimplePlanner {
	return &SimplePlanner{c}
}

func (pner *SimplePlanner) MakePlan(q *query.Query) (plans.Plan, error) {
	scans, err := pner.makeScanPlans(q)
	if err != nil {
		return nil, err
	}
	if err := checkHeadBound(q); err != nil {
		return nil, err
	}

	comparisons := q.ComparisonAtoms()
	var plan plans.Plan
	if len(scans) == 1 {
		plan = scans[0]
	} else {
		plan = plans.NewJoinPlanNode(scans, comparisons)
	}
	if len(comparisons) > 0 {
		plan = plans.NewSelectionPlanNode(plan, comparisons)
	}
	plan = plans.NewProjectionPlanNode(plan, q.Head)
	// without an aggregate the projection is already distinct
	if q.Head.SumAggregate != nil {
		plan = plans.NewSumPlanNode(plan, q.Head)
	}

	if common.LogLevelSetting&common.PLAN_BUILD > 0 {
		common.ShPrintf(common.PLAN_BUILD, "plan of %s\n%s", q.String(), plans.PlanTreeString(plan))
	}
	return plan, nil
}

func (pner *SimplePlanner) makeScanPlans(q *query.Query) ([]*plans.SeqScanPlanNode, error) {
	atoms := q.RelationalAtoms()
	if len(atoms) == 0 {
		return nil, errors.Wrapf(ErrNoRelationalAtom, "%s", q.String())
	}
	scans := make([]*plans.SeqScanPlanNode, 0, len(atoms))
	for _, atom := range atoms {
		tableMetadata, err := pner.catalog_.ValidateAtom(atom)
		if err != nil {
			return nil, err
		}
		scans = append(scans, plans.NewSeqScanPlanNode(atom, tableMetadata))
	}
	return scans, nil
}

// checkHeadBound verifies that every head variable and every variable of the
// SUM aggregate is bound by some relational atom.
func checkHeadBound(q *query.Query) error {
	bound := mapset.NewSet[string]()
	for _, atom := range q.RelationalAtoms() {
		for _, term := range atom.Terms {
			if v, ok := term.(query.Variable); ok {
				bound.Add(v.Name)
			}
		}
	}
	for _, label := range plans.ProjectedLabels(q.Head) {
		if !bound.Contains(label) {
			return errors.Wrapf(ErrUnboundHeadVariable, "%s in %s", label, q.Head.String())
		}
	}
	return nil
}
