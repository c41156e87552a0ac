package schedule

import (
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/plan"
)

// Item is one task paired with its derived assessment and the stage it
// belongs to. The layout engines consume items, never raw tasks, so the
// classifier runs exactly once per render pass.
type Item struct {
	Task       plan.Task
	PlanType   plan.Type
	StageID    string
	StageTitle string
	Assessment Assessment
}

// Collect runs the shared enrichment pass: it flattens every task across
// all plans, in plan/stage/task order, attaches its assessment against
// today, and fills the denormalized plan references on each task copy. The
// input is never mutated.
func Collect(plans []plan.Plan, today dateutil.Date) []Item {
	var items []Item
	for _, p := range plans {
		for _, s := range p.Stages {
			for _, t := range s.Tasks {
				t.PlanID = p.ID
				t.PlanName = p.Name
				items = append(items, Item{
					Task:       t,
					PlanType:   p.Type,
					StageID:    s.ID,
					StageTitle: s.Title,
					Assessment: AssessTask(t, today),
				})
			}
		}
	}
	return items
}
