package plans

import (
	"strings"

	"github.com/golang-collections/collections/stack"

	"github.com/ryogrid/cqbase/query"
)

type planWithIndent struct {
	plan   Plan
	indent int
}

// PlanTreeString renders the tree rooted at plan, one node per line, children
// indented by two spaces below their parent.
func PlanTreeString(plan Plan) string {
	var sb strings.Builder
	nodes := stack.New()
	nodes.Push(planWithIndent{plan, 0})
	for nodes.Len() > 0 {
		here := nodes.Pop().(planWithIndent)
		sb.WriteString(strings.Repeat(" ", here.indent))
		sb.WriteString(here.plan.GetDebugStr())
		sb.WriteString("\n")
		children := here.plan.GetChildren()
		// pushed in reverse so that the first child is printed first
		for ii := len(children) - 1; ii >= 0; ii-- {
			nodes.Push(planWithIndent{children[ii], here.indent + 2})
		}
	}
	return sb.String()
}

func joinAtoms(atoms []*query.ComparisonAtom) string {
	strs := make([]string, 0, len(atoms))
	for _, a := range atoms {
		strs = append(strs, a.String())
	}
	return strings.Join(strs, ", ")
}
