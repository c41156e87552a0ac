package schedule

import (
	"testing"

	"github.com/pvaldes/rumbo/internal/plan"
)

func TestCollect_OrderAndContext(t *testing.T) {
	plans := []plan.Plan{
		{
			ID:   "p1",
			Name: "First",
			Stages: []plan.Stage{
				{ID: "s1", Title: "Stage One", Tasks: []plan.Task{
					{ID: "t1"},
					{ID: "t2", Completed: true},
				}},
				{ID: "s2", Title: "Stage Two", Tasks: []plan.Task{
					{ID: "t3"},
				}},
			},
		},
		{
			ID:   "p2",
			Name: "Second",
			Stages: []plan.Stage{
				{ID: "s3", Title: "Other", Tasks: []plan.Task{
					{ID: "t4"},
				}},
			},
		},
	}

	items := Collect(plans, today)
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}

	wantOrder := []string{"t1", "t2", "t3", "t4"}
	for i, want := range wantOrder {
		if items[i].Task.ID != want {
			t.Errorf("item %d: got %q, want %q", i, items[i].Task.ID, want)
		}
	}

	if items[0].StageID != "s1" || items[2].StageID != "s2" || items[3].StageID != "s3" {
		t.Error("stage context not carried through")
	}
	if items[0].Task.PlanName != "First" || items[3].Task.PlanName != "Second" {
		t.Error("plan references not filled on task copies")
	}
	if items[3].Task.PlanID != "p2" {
		t.Errorf("got plan id %q, want p2", items[3].Task.PlanID)
	}
	if items[1].Assessment.Status != StatusCompleted {
		t.Errorf("got status %q, want completed", items[1].Assessment.Status)
	}
}

func TestCollect_Empty(t *testing.T) {
	if items := Collect(nil, today); len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}
