// Package timeline positions task date ranges as percentage-based bars
// within a visible month viewport.
package timeline

import (
	"time"

	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
)

// Bar is one task positioned on a row. Left and Width are percentages of
// the viewport; Completed and Urgent carry through for rendering.
type Bar struct {
	TaskID       string
	Title        string
	LeftPercent  float64
	WidthPercent float64
	Completed    bool
	Urgent       bool
}

// Row is one stage of one plan with its placed bars.
type Row struct {
	PlanID     string
	PlanName   string
	PlanType   plan.Type
	StageID    string
	StageTitle string
	Status     schedule.Status
	Progress   int
	Bars       []Bar
}

// View is the positioned timeline for one month viewport.
type View struct {
	Year         int
	Month        time.Month
	TotalDays    int
	Rows         []Row
	TodayPercent float64 // meaningful only when HasToday
	HasToday     bool
}

// Build lays out every stage of every plan against the (year, month)
// viewport. Tasks whose range misses the viewport entirely, or which have
// no valid dates, are excluded rather than errored. The today marker is
// emitted only when today falls inside the visible month.
func Build(year int, month time.Month, plans []plan.Plan, today dateutil.Date) View {
	totalDays := dateutil.DaysInMonth(year, month)
	v := View{Year: year, Month: month, TotalDays: totalDays}

	for _, p := range plans {
		for _, s := range p.Stages {
			row := Row{
				PlanID:     p.ID,
				PlanName:   p.Name,
				PlanType:   p.Type,
				StageID:    s.ID,
				StageTitle: s.Title,
				Status:     schedule.AssessStage(s, today).Status,
				Progress:   schedule.StageProgress(s),
			}
			for _, t := range s.Tasks {
				if bar, ok := placeTask(year, month, totalDays, t, today); ok {
					row.Bars = append(row.Bars, bar)
				}
			}
			v.Rows = append(v.Rows, row)
		}
	}

	if today.Valid() && today.Year == year && today.Month == month {
		v.HasToday = true
		v.TodayPercent = float64(today.Day) / float64(totalDays) * 100
	}

	return v
}

// placeTask clamps one task's date range onto the viewport. The range is
// [start, deadline]; a task with only one of the two collapses to a single
// day.
func placeTask(year int, month time.Month, totalDays int, t plan.Task, today dateutil.Date) (Bar, bool) {
	start, end := t.StartDate, t.Deadline
	if !start.Valid() {
		start = end
	}
	if !end.Valid() {
		end = start
	}

	startDay, ok := dateutil.DayOffset(year, month, start)
	if !ok {
		return Bar{}, false
	}
	endDay, _ := dateutil.DayOffset(year, month, end)

	// Entirely outside the viewport.
	if endDay < 0 || startDay > totalDays {
		return Bar{}, false
	}

	if startDay < 0 {
		startDay = 0
	}
	if endDay > totalDays {
		endDay = totalDays
	}

	a := schedule.AssessTask(t, today)
	return Bar{
		TaskID:       t.ID,
		Title:        t.Title,
		LeftPercent:  float64(startDay) / float64(totalDays) * 100,
		WidthPercent: float64(endDay-startDay) / float64(totalDays) * 100,
		Completed:    t.Completed,
		Urgent:       a.Urgent || a.Overdue,
	}, true
}
