// Package schedule derives status, urgency, and progress from the plan
// model. Everything here is a pure function of the model and a "today"
// date; nothing is stored, and the same pass feeds all three layout
// engines so they can never disagree about a task's state.
package schedule

import (
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/plan"
)

// Status is the derived state of a task or stage.
type Status string

// Status constants
const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// urgentWindowDays is the inclusive days-left window that marks a task
// urgent.
const urgentWindowDays = 3

// Assessment is the classifier output for one task or stage. Urgent is an
// orthogonal flag, not a status value; Overdue mirrors StatusOverdue for
// callers that only carry the flags.
type Assessment struct {
	Status   Status
	Urgent   bool
	Overdue  bool
	DaysLeft int
}

// TaskStarted reports whether a task counts as started: it has a valid
// start date on or before today.
func TaskStarted(t plan.Task, today dateutil.Date) bool {
	return t.StartDate.Valid() && !today.Before(t.StartDate)
}

// AssessTask classifies a single task against today.
//
// Completion wins over everything; a passed deadline wins over urgency and
// startedness; urgency never changes the status, only the flag.
func AssessTask(t plan.Task, today dateutil.Date) Assessment {
	var daysLeft int
	if t.Deadline.Valid() {
		daysLeft = dateutil.DaysBetween(today, t.Deadline)
	}

	if t.Completed {
		return Assessment{Status: StatusCompleted, DaysLeft: daysLeft}
	}

	if t.Deadline.Valid() {
		if daysLeft < 0 {
			return Assessment{Status: StatusOverdue, Overdue: true, DaysLeft: daysLeft}
		}
		a := Assessment{DaysLeft: daysLeft, Urgent: daysLeft <= urgentWindowDays}
		if TaskStarted(t, today) {
			a.Status = StatusInProgress
		} else {
			a.Status = StatusNotStarted
		}
		return a
	}

	// No deadline: only startedness applies.
	if TaskStarted(t, today) {
		return Assessment{Status: StatusInProgress}
	}
	return Assessment{Status: StatusNotStarted}
}

// AssessStage classifies a stage from its tasks and date range.
//
// A stage is completed when all of its tasks are; overdue once its end date
// has passed with tasks remaining; in progress while today falls inside
// [StartDate, EndDate]; otherwise not started. Urgency tracks the stage end
// date the same way task urgency tracks the deadline.
func AssessStage(s plan.Stage, today dateutil.Date) Assessment {
	var daysLeft int
	if s.EndDate.Valid() {
		daysLeft = dateutil.DaysBetween(today, s.EndDate)
	}

	if s.AllTasksCompleted() {
		return Assessment{Status: StatusCompleted, DaysLeft: daysLeft}
	}

	if s.EndDate.Valid() && daysLeft < 0 {
		return Assessment{Status: StatusOverdue, Overdue: true, DaysLeft: daysLeft}
	}

	a := Assessment{DaysLeft: daysLeft}
	if s.EndDate.Valid() && daysLeft <= urgentWindowDays {
		a.Urgent = true
	}

	inRange := s.StartDate.Valid() && s.EndDate.Valid() &&
		!today.Before(s.StartDate) && !today.After(s.EndDate)
	if inRange {
		a.Status = StatusInProgress
	} else {
		a.Status = StatusNotStarted
	}
	return a
}
