// Package kanban partitions tasks into the three board columns.
package kanban

import "github.com/pvaldes/rumbo/internal/schedule"

// ColumnKey identifies a board column.
type ColumnKey string

// Board column constants. Every task lands in exactly one of these;
// overdue is a classifier status, not a column, so overdue tasks fall into
// todo or in_progress depending on whether they have been started.
const (
	ColumnTodo       ColumnKey = "todo"
	ColumnInProgress ColumnKey = "in_progress"
	ColumnCompleted  ColumnKey = "completed"
)

// Column is one board column: its tasks in insertion order plus the badge
// counts.
type Column struct {
	Key         ColumnKey
	Tasks       []schedule.Item
	UrgentCount int // tasks that are urgent or overdue
}

// Count returns the column's task count badge.
func (c Column) Count() int {
	return len(c.Tasks)
}

// Board groups all tasks into the three fixed columns.
type Board struct {
	Todo       Column
	InProgress Column
	Completed  Column
}

// Columns returns the board's columns in display order.
func (b Board) Columns() [3]Column {
	return [3]Column{b.Todo, b.InProgress, b.Completed}
}

// TaskCount returns the total number of tasks on the board.
func (b Board) TaskCount() int {
	return b.Todo.Count() + b.InProgress.Count() + b.Completed.Count()
}

// BuildBoard partitions the enriched task set into columns, preserving
// insertion order within each column. Empty columns are valid and carry
// zero counts.
func BuildBoard(items []schedule.Item) Board {
	b := Board{
		Todo:       Column{Key: ColumnTodo},
		InProgress: Column{Key: ColumnInProgress},
		Completed:  Column{Key: ColumnCompleted},
	}

	for _, item := range items {
		var col *Column
		switch columnFor(item) {
		case ColumnTodo:
			col = &b.Todo
		case ColumnInProgress:
			col = &b.InProgress
		case ColumnCompleted:
			col = &b.Completed
		}
		col.Tasks = append(col.Tasks, item)
		if item.Assessment.Urgent || item.Assessment.Overdue {
			col.UrgentCount++
		}
	}

	return b
}

// columnFor maps a classifier status to its board column.
func columnFor(item schedule.Item) ColumnKey {
	switch item.Assessment.Status {
	case schedule.StatusCompleted:
		return ColumnCompleted
	case schedule.StatusInProgress:
		return ColumnInProgress
	case schedule.StatusOverdue:
		// Overdue keeps its pre-deadline column.
		if item.Task.StartDate.Valid() {
			return ColumnInProgress
		}
		return ColumnTodo
	default:
		return ColumnTodo
	}
}
