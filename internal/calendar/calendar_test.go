package calendar

import (
	"testing"
	"time"

	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
)

var today = dateutil.NewDate(2025, time.June, 9)

func taskDue(id string, day int) plan.Task {
	return plan.Task{ID: id, Deadline: dateutil.NewDate(2025, time.June, day)}
}

func items(tasks ...plan.Task) []schedule.Item {
	p := plan.Plan{ID: "p1", Name: "Plan", Stages: []plan.Stage{{ID: "s1", Tasks: tasks}}}
	return schedule.Collect([]plan.Plan{p}, today)
}

func TestBuildGrid_Shape(t *testing.T) {
	// June 2025 starts on a Sunday and has 30 days: exactly 5 weeks.
	g := BuildGrid(2025, time.June, nil)
	if g.Weeks != 5 {
		t.Errorf("got %d weeks, want 5", g.Weeks)
	}
	if len(g.Cells) != 35 {
		t.Fatalf("got %d cells, want 35", len(g.Cells))
	}
	if !g.Cells[0].IsCurrentMonth || g.Cells[0].Day != 1 {
		t.Errorf("first cell: got %+v, want day 1 of current month", g.Cells[0])
	}
	if !g.Cells[29].IsCurrentMonth || g.Cells[29].Day != 30 {
		t.Errorf("cell 29: got %+v, want day 30", g.Cells[29])
	}
	for i := 30; i < 35; i++ {
		if g.Cells[i].IsCurrentMonth {
			t.Errorf("cell %d: trailing placeholder marked as current month", i)
		}
		if len(g.Cells[i].Tasks) != 0 {
			t.Errorf("cell %d: placeholder has tasks", i)
		}
	}
}

func TestBuildGrid_LeadingPlaceholders(t *testing.T) {
	// September 2025 starts on a Monday: one leading placeholder.
	g := BuildGrid(2025, time.September, nil)
	if g.Cells[0].IsCurrentMonth {
		t.Error("expected leading placeholder before Monday the 1st")
	}
	if !g.Cells[1].IsCurrentMonth || g.Cells[1].Day != 1 {
		t.Errorf("cell 1: got %+v, want day 1", g.Cells[1])
	}
}

func TestBuildGrid_PlacesTasksOnDeadlineDay(t *testing.T) {
	g := BuildGrid(2025, time.June, items(taskDue("a", 9), taskDue("b", 9), taskDue("c", 20)))

	if got := len(g.TasksOn(9)); got != 2 {
		t.Errorf("day 9: got %d tasks, want 2", got)
	}
	if got := len(g.TasksOn(20)); got != 1 {
		t.Errorf("day 20: got %d tasks, want 1", got)
	}
	if got := len(g.TasksOn(10)); got != 0 {
		t.Errorf("day 10: got %d tasks, want 0", got)
	}
}

func TestBuildGrid_StartDateFallback(t *testing.T) {
	task := plan.Task{ID: "a", StartDate: dateutil.NewDate(2025, time.June, 12)}
	g := BuildGrid(2025, time.June, items(task))
	if got := len(g.TasksOn(12)); got != 1 {
		t.Errorf("got %d tasks on day 12, want 1", got)
	}
}

func TestBuildGrid_ExcludesOtherMonthsAndInvalidDates(t *testing.T) {
	other := plan.Task{ID: "x", Deadline: dateutil.NewDate(2025, time.July, 2)}
	undated := plan.Task{ID: "y"}
	g := BuildGrid(2025, time.June, items(other, undated))
	for _, c := range g.Cells {
		if len(c.Tasks) != 0 {
			t.Fatalf("day %d: unexpected tasks placed", c.Day)
		}
	}
}

func TestMarkers_Cap(t *testing.T) {
	g := BuildGrid(2025, time.June, items(
		taskDue("a", 20), taskDue("b", 20), taskDue("c", 20),
		taskDue("d", 20), taskDue("e", 20),
	))
	var cell Cell
	for _, c := range g.Cells {
		if c.Day == 20 && c.IsCurrentMonth {
			cell = c
		}
	}
	m := cell.Markers()
	if m.Dots != 3 {
		t.Errorf("got %d dots, want 3", m.Dots)
	}
	if m.Overflow != "+2" {
		t.Errorf("got overflow %q, want \"+2\"", m.Overflow)
	}
}

func TestMarkers_NoOverflowAtOrUnderCap(t *testing.T) {
	for n := 0; n <= 3; n++ {
		var tasks []plan.Task
		for i := 0; i < n; i++ {
			tasks = append(tasks, taskDue(string(rune('a'+i)), 15))
		}
		g := BuildGrid(2025, time.June, items(tasks...))
		m := g.Cells[14].Markers() // June 2025: day 15 is cell index 14
		if m.Dots != n {
			t.Errorf("n=%d: got %d dots, want %d", n, m.Dots, n)
		}
		if m.Overflow != "" {
			t.Errorf("n=%d: got overflow %q, want none", n, m.Overflow)
		}
	}
}

func TestMarkers_UrgentDominatesDay(t *testing.T) {
	// Day 10 is within the urgent window of today (June 9); mixing it with
	// a calm task still marks the whole day urgent.
	urgent := taskDue("u", 10)
	// Same-day calm task is impossible by definition, so mix urgent with a
	// completed one, which alone would not flip the day.
	done := plan.Task{ID: "d", Deadline: dateutil.NewDate(2025, time.June, 10), Completed: true}

	g := BuildGrid(2025, time.June, items(done, urgent))
	m := g.Cells[9].Markers()
	if !m.Urgent {
		t.Error("expected urgent day marker")
	}

	g = BuildGrid(2025, time.June, items(done))
	if g.Cells[9].Markers().Urgent {
		t.Error("completed-only day must not be urgent")
	}
}

func TestMarkers_OverdueCountsAsUrgentColor(t *testing.T) {
	g := BuildGrid(2025, time.June, items(taskDue("late", 2)))
	if !g.Cells[1].Markers().Urgent {
		t.Error("overdue task should flip the day's marker color")
	}
}

func TestTasksOn_UncappedDetail(t *testing.T) {
	var tasks []plan.Task
	for i := 0; i < 6; i++ {
		tasks = append(tasks, taskDue(string(rune('a'+i)), 25))
	}
	g := BuildGrid(2025, time.June, items(tasks...))
	if got := len(g.TasksOn(25)); got != 6 {
		t.Errorf("got %d tasks, want all 6 (no marker cap)", got)
	}
}
