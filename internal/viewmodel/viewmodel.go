// Package viewmodel maps derived statuses and plan types to presentation
// descriptors. Every view renders a status through the same fixed table,
// so a status can never look different between the calendar, the board,
// and the timeline.
package viewmodel

import (
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
)

// Descriptor is a renderer-agnostic presentation triple. Color is a hex
// string usable as a lipgloss color.
type Descriptor struct {
	Icon  string
	Color string
	Label string
}

// statusTable is the single source of truth for status presentation.
var statusTable = map[schedule.Status]Descriptor{
	schedule.StatusNotStarted: {Icon: "○", Color: "#6C6C6C", Label: "To Do"},
	schedule.StatusInProgress: {Icon: "◐", Color: "#5FAFD7", Label: "In Progress"},
	schedule.StatusCompleted:  {Icon: "●", Color: "#87AF87", Label: "Completed"},
	schedule.StatusOverdue:    {Icon: "!", Color: "#D75F5F", Label: "Overdue"},
}

// UrgentColor overrides a descriptor's color wherever an urgent flag is in
// play (calendar day markers, badges).
const UrgentColor = "#D7875F"

// ForStatus returns the fixed descriptor for a status. Unknown statuses
// fall back to the not-started descriptor.
func ForStatus(s schedule.Status) Descriptor {
	if d, ok := statusTable[s]; ok {
		return d
	}
	return statusTable[schedule.StatusNotStarted]
}

// TypeStyles maps plan types to their presentation. It is passed explicitly
// into rendering code rather than read from a global, so callers can swap
// or override it (see the config package).
type TypeStyles map[plan.Type]Descriptor

// DefaultTypeStyles returns the built-in plan type presentation.
func DefaultTypeStyles() TypeStyles {
	return TypeStyles{
		plan.TypeStudy:       {Icon: "🎓", Color: "#5F87D7", Label: "Study"},
		plan.TypeWork:        {Icon: "💼", Color: "#87AF5F", Label: "Work"},
		plan.TypeImmigration: {Icon: "✈", Color: "#AF87D7", Label: "Immigration"},
	}
}

// ForType looks a plan type up in the style map, falling back to a plain
// descriptor labeled with the raw type.
func (ts TypeStyles) ForType(t plan.Type) Descriptor {
	if d, ok := ts[t]; ok {
		return d
	}
	return Descriptor{Icon: "•", Color: "#6C6C6C", Label: string(t)}
}

/// StageExpanded is the default expansion state for a stage: everything
// still in flight starts open, completed stages start collapsed.
func StageExpanded(s schedule.Status) bool {
	return s != schedule.StatusCompleted
}
