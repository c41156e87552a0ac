// Package plan defines the Plan/Stage/Task model and its JSON storage.
// The model is owned by whatever created the plan files; the layout engines
// only read it and derive presentation state on every pass.
package plan

import "github.com/pvaldes/rumbo/internal/dateutil"

// Type categorizes a plan.
type Type string

// Plan type constants
const (
	TypeStudy       Type = "study"
	TypeWork        Type = "work"
	TypeImmigration Type = "immigration"
)

// Valid reports whether t is one of the known plan types.
func (t Type) Valid() bool {
	switch t {
	case TypeStudy, TypeWork, TypeImmigration:
		return true
	}
	return false
}

// Priority ranks a task.
type Priority string

// Task priority constants
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// NormalizePriority maps an empty or unknown priority to the default.
func NormalizePriority(p Priority) Priority {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	}
	return PriorityMedium
}

// Plan is a top-level goal composed of ordered stages.
type Plan struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Type       Type          `json:"type"`
	CreatedAt  dateutil.Date `json:"createdAt"`
	TargetDate dateutil.Date `json:"targetDate"`
	Progress   int           `json:"progress,omitempty"`
	Stages     []Stage       `json:"stages"`
}

// Stage is one phase of a plan with its own date range and task set.
// Stage status is never stored; it is recomputed from the tasks on every
// read (see the schedule package).
type Stage struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	StartDate dateutil.Date `json:"startDate"`
	EndDate   dateutil.Date `json:"endDate"`
	Tasks     []Task        `json:"tasks"`
}

// Subtask is a checklist item inside a task.
type Subtask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is an atomic unit of work with a deadline and completion flag.
// PlanID and PlanName are denormalized at load time for display; they are
// not part of the wire format.
type Task struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	StartDate dateutil.Date `json:"startDate"`
	Deadline  dateutil.Date `json:"deadline"`
	Priority  Priority      `json:"priority"`
	Completed bool          `json:"completed"`
	Subtasks  []Subtask     `json:"subtasks,omitempty"`

	PlanID   string `json:"-"`
	PlanName string `json:"-"`
}

// PlacementDate returns the calendar day a task is pinned to: its deadline,
// falling back to its start date. The zero Date means the task has no
// placeable day.
func (t Task) PlacementDate() dateutil.Date {
	if t.Deadline.Valid() {
		return t.Deadline
	}
	return t.StartDate
}

// CompletedTaskCount returns how many of the stage's tasks are done.
func (s Stage) CompletedTaskCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// AllTasksCompleted reports whether every task in the stage is done.
// A stage with no tasks is not considered completed.
func (s Stage) AllTasksCompleted() bool {
	if len(s.Tasks) == 0 {
		return false
	}
	return s.CompletedTaskCount() == len(s.Tasks)
}

// TaskCount returns the total number of tasks across all stages.
func (p Plan) TaskCount() int {
	n := 0
	for _, s := range p.Stages {
		n += len(s.Tasks)
	}
	return n
}
