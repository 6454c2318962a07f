package minibase

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/catalog"
	"github.com/ryogrid/cqbase/common"
	"github.com/ryogrid/cqbase/execution/executors"
	"github.com/ryogrid/cqbase/execution/plans"
	"github.com/ryogrid/cqbase/minimizer"
	"github.com/ryogrid/cqbase/parser"
	"github.com/ryogrid/cqbase/planner"
	"github.com/ryogrid/cqbase/query"
)

// MinibaseInstance evaluates conjunctive queries against one database directory.
type MinibaseInstance struct {
	catalog_ *catalog.Catalog
	cfg      *common.Config
	// Console receives the plan tree and the preview table when enabled.
	Console io.Writer
}

func NewMinibaseInstance(databaseDir string, cfg *common.Config, console io.Writer) (*MinibaseInstance, error) {
	c, err := catalog.BootstrapCatalog(databaseDir)
	if err != nil {
		return nil, err
	}
	return NewMinibaseInstanceWithCatalog(c, cfg, console), nil
}

// NewMinibaseInstanceWithCatalog wraps an already populated catalog.
func NewMinibaseInstanceWithCatalog(c *catalog.Catalog, cfg *common.Config, console io.Writer) *MinibaseInstance {
	if cfg == nil {
		cfg = common.NewConfig()
	}
	return &MinibaseInstance{c, cfg, console}
}

func (m *MinibaseInstance) GetCatalog() *catalog.Catalog {
	return m.catalog_
}

// ExecuteQuery plans and runs q. The results are left in the catalog's tuple
// list and also returned.
func (m *MinibaseInstance) ExecuteQuery(q *query.Query) (*Result, error) {
	plan, err := planner.NewSimplePlanner(m.catalog_).MakePlan(q)
	if err != nil {
		return nil, err
	}
	if m.cfg.Output.Explain && m.Console != nil {
		if _, err := io.WriteString(m.Console, plans.PlanTreeString(plan)); err != nil {
			return nil, err
		}
	}

	engine := &executors.ExecutionEngine{}
	if err := engine.Execute(plan, executors.NewExecutorContext(m.catalog_)); err != nil {
		return nil, errors.Wrapf(err, "evaluate %s", q.String())
	}
	result := &Result{plan.OutputSchema().GetColumnNames(), m.catalog_.GetTupleList()}
	if m.cfg.Output.Preview && m.Console != nil {
		RenderTable(m.Console, result)
	}
	return result, nil
}

// EvaluateCQ evaluates the query in inputFile over databaseDir and writes the
// result rows to outputFile.
func EvaluateCQ(databaseDir string, inputFile string, outputFile string, cfg *common.Config, console io.Writer) error {
	instance, err := NewMinibaseInstance(databaseDir, cfg, console)
	if err != nil {
		return err
	}
	q, err := parser.ParseFile(inputFile)
	if err != nil {
		return err
	}
	result, err := instance.ExecuteQuery(q)
	if err != nil {
		return err
	}
	common.ShPrintf(common.INFO, "%s: %d rows\n", q.String(), len(result.Tuples))
	return WriteResultFile(outputFile, result.Tuples, instance.cfg.Output.Separator)
}

// MinimizeCQ minimizes the query in inputFile and writes its canonical text to outputFile.
func MinimizeCQ(inputFile string, outputFile string) error {
	q, err := parser.ParseFile(inputFile)
	if err != nil {
		return err
	}
	minimized := minimizer.MinimizeQuery(q)
	common.ShPrintf(common.INFO, "minimized %d atoms to %d\n", len(q.Body), len(minimized.Body))
	return WriteQueryFile(outputFile, minimized)
}
