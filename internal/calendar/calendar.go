// Package calendar maps tasks onto the day cells of a visible month.
package calendar

import (
	"fmt"
	"time"

	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/schedule"
)

// MaxMarkers caps the per-day indicator dots; additional tasks collapse
// into a single "+N" overflow marker.
const MaxMarkers = 3

// Cell is one slot in the month grid. Leading and trailing slots from
// adjacent months have IsCurrentMonth=false, Day 0, and no tasks.
type Cell struct {
	Day            int
	IsCurrentMonth bool
	Tasks          []schedule.Item
}

// Markers is the indicator summary for one day cell.
type Markers struct {
	Dots     int    // number of indicator dots, at most MaxMarkers
	Overflow string // "+N" when more tasks exist than dots, else ""
	Urgent   bool   // any urgent or overdue task flips the whole day
}

// Markers summarizes the cell's tasks for rendering. A day with more than
// MaxMarkers tasks shows exactly MaxMarkers dots plus one overflow marker.
func (c Cell) Markers() Markers {
	n := len(c.Tasks)
	m := Markers{Dots: n}
	if n > MaxMarkers {
		m.Dots = MaxMarkers
		m.Overflow = fmt.Sprintf("+%d", n-MaxMarkers)
	}
	for _, item := range c.Tasks {
		if item.Assessment.Urgent || item.Assessment.Overdue {
			m.Urgent = true
			break
		}
	}
	return m
}

// Grid is a month of day cells in row-major order (weeks of 7, Sunday
// first).
type Grid struct {
	Year  int
	Month time.Month
	Weeks int
	Cells []Cell
}

// BuildGrid lays the given tasks onto the (year, month) grid. A task lands
// on the cell matching its placement day (deadline, else start date);
// tasks without a valid date in this month are simply not placed.
func BuildGrid(year int, month time.Month, items []schedule.Item) Grid {
	byDay := make(map[int][]schedule.Item)
	for _, item := range items {
		d := item.Task.PlacementDate()
		if !d.Valid() || d.Year != year || d.Month != month {
			continue
		}
		byDay[d.Day] = append(byDay[d.Day], item)
	}

	offset := dateutil.FirstWeekday(year, month)
	days := dateutil.DaysInMonth(year, month)
	weeks := (offset + days + 6) / 7

	cells := make([]Cell, weeks*7)
	for i := range cells {
		day := i - offset + 1
		if day < 1 || day > days {
			continue
		}
		cells[i] = Cell{Day: day, IsCurrentMonth: true, Tasks: byDay[day]}
	}

	return Grid{Year: year, Month: month, Weeks: weeks, Cells: cells}
}

// TasksOn returns every task placed on the given day of the grid's month,
// with no marker cap. Out-of-range days yield nil.
func (g Grid) TasksOn(day int) []schedule.Item {
	for _, c := range g.Cells {
		if c.IsCurrentMonth && c.Day == day {
			return c.Tasks
		}
	}
	return nil
}
