// Package display renders the layout engines' output as plain terminal
// strings for the non-interactive CLI commands. The interactive TUI has
// its own renderers; these stay free of any view-selection state.
package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pvaldes/rumbo/internal/calendar"
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/kanban"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
	"github.com/pvaldes/rumbo/internal/timeline"
	"github.com/pvaldes/rumbo/internal/tui/components"
	"github.com/pvaldes/rumbo/internal/tui/styles"
	"github.com/pvaldes/rumbo/internal/viewmodel"
)

const (
	boardColumnWidth   = 28
	timelineLabelWidth = 24
)

// Calendar renders a month grid with task markers and a listing of the
// days that carry tasks.
func Calendar(g calendar.Grid, today dateutil.Date) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", g.Month, g.Year)
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(" Su      Mo      Tu      We      Th      Fr      Sa"))
	b.WriteString("\n")

	for week := 0; week < g.Weeks; week++ {
		for col := 0; col < 7; col++ {
			cell := g.Cells[week*7+col]
			b.WriteString(renderCell(cell, g, today))
		}
		b.WriteString("\n")
	}

	// Task listing for days that have any.
	for _, cell := range g.Cells {
		if !cell.IsCurrentMonth || len(cell.Tasks) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("%s %d:", g.Month, cell.Day)))
		for _, item := range cell.Tasks {
			b.WriteString("\n  ")
			b.WriteString(taskLine(item))
		}
	}

	return b.String()
}

// renderCell formats one fixed-width calendar cell: day number plus its
// markers.
func renderCell(cell calendar.Cell, g calendar.Grid, today dateutil.Date) string {
	const cellWidth = 8

	if !cell.IsCurrentMonth {
		return strings.Repeat(" ", cellWidth)
	}

	m := cell.Markers()
	runes := []rune(fmt.Sprintf("%2d%s%s", cell.Day, strings.Repeat("•", m.Dots), m.Overflow))
	if len(runes) > cellWidth-1 {
		runes = runes[:cellWidth-1]
	}
	content := string(runes) + strings.Repeat(" ", cellWidth-len(runes))

	isToday := today.Valid() && today.Year == g.Year && today.Month == g.Month && today.Day == cell.Day
	switch {
	case isToday:
		return styles.TodayStyle.Render(content)
	case m.Urgent:
		return styles.UrgentStyle.Render(content)
	case len(cell.Tasks) > 0:
		return styles.SelectedStyle.Render(content)
	default:
		return content
	}
}

// Board renders the three kanban columns side by side.
func Board(b kanban.Board, types viewmodel.TypeStyles) string {
	cols := b.Columns()
	rendered := make([]string, 0, len(cols))
	for _, col := range cols {
		rendered = append(rendered, renderColumn(col, types))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(col kanban.Column, types viewmodel.TypeStyles) string {
	desc := viewmodel.ForStatus(columnStatus(col.Key))

	header := fmt.Sprintf("%s (%d)", desc.Label, col.Count())
	if col.UrgentCount > 0 {
		header += " " + styles.UrgentStyle.Render(fmt.Sprintf("⚠%d", col.UrgentCount))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(desc.Color)).Render(header))
	if col.Count() == 0 {
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render("(empty)"))
	}
	for _, item := range col.Tasks {
		b.WriteString("\n")
		b.WriteString(taskLine(item))
		b.WriteString("\n")
		b.WriteString(styles.SubtleStyle.Render(types.ForType(item.PlanType).Icon + " " + truncate(item.Task.PlanName, boardColumnWidth-4)))
		if _, total := schedule.SubtaskCounts(item.Task); total > 0 {
			b.WriteString("\n")
			b.WriteString(components.NewProgress(schedule.SubtaskProgress(item.Task), 8).View())
		}
	}

	return styles.BoxStyle.Width(boardColumnWidth).Render(b.String())
}

// columnStatus maps a column key back to the status whose descriptor
// labels it.
func columnStatus(key kanban.ColumnKey) schedule.Status {
	switch key {
	case kanban.ColumnInProgress:
		return schedule.StatusInProgress
	case kanban.ColumnCompleted:
		return schedule.StatusCompleted
	default:
		return schedule.StatusNotStarted
	}
}

// Timeline renders stage rows with proportional task bars and a today
// ruler, one character per viewport day.
func Timeline(v timeline.View) string {
	var b strings.Builder

	title := fmt.Sprintf("Timeline — %s %d", v.Month, v.Year)
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", timelineLabelWidth+1))
	b.WriteString(styles.SubtleStyle.Render(ruler(v)))
	b.WriteString("\n")

	for _, row := range v.Rows {
		label := truncate(fmt.Sprintf("%s / %s", row.PlanName, row.StageTitle), timelineLabelWidth)
		b.WriteString(fmt.Sprintf("%-*s ", timelineLabelWidth, label))
		b.WriteString(components.NewProgress(row.Progress, 5).View())
		b.WriteString("\n")
		for _, bar := range row.Bars {
			b.WriteString(fmt.Sprintf("%*s ", timelineLabelWidth, truncate(bar.Title, timelineLabelWidth)))
			b.WriteString(renderBar(bar, v.TotalDays))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ruler draws the day axis with a marker on today's column.
func ruler(v timeline.View) string {
	cells := []rune(strings.Repeat("·", v.TotalDays))
	if v.HasToday {
		idx := percentToIndex(v.TodayPercent, v.TotalDays)
		cells[idx] = '┃'
	}
	return string(cells)
}

// renderBar places one task bar on a track of one character per day. A
// zero-width bar still paints a single cell so single-day tasks stay
// visible.
func renderBar(bar timeline.Bar, totalDays int) string {
	start := percentToIndex(bar.LeftPercent, totalDays)
	width := int(math.Round(bar.WidthPercent / 100 * float64(totalDays)))
	if width < 1 {
		width = 1
	}
	if start+width > totalDays {
		width = totalDays - start
	}

	track := strings.Repeat(" ", start) +
		strings.Repeat("█", width) +
		strings.Repeat(" ", totalDays-start-width)

	switch {
	case bar.Completed:
		return styles.SuccessStyle.Render(track)
	case bar.Urgent:
		return styles.UrgentStyle.Render(track)
	default:
		return styles.SelectedStyle.Render(track)
	}
}

func percentToIndex(percent float64, totalDays int) int {
	idx := int(math.Round(percent / 100 * float64(totalDays)))
	if idx >= totalDays {
		idx = totalDays - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// PlanList renders one line per plan with its aggregate progress.
func PlanList(plans []plan.Plan, types viewmodel.TypeStyles) string {
	if len(plans) == 0 {
		return styles.SubtleStyle.Render("No plans found. Run 'rumbo demo' to create sample plans.")
	}

	var b strings.Builder
	for i, p := range plans {
		if i > 0 {
			b.WriteString("\n")
		}
		desc := types.ForType(p.Type)
		b.WriteString(fmt.Sprintf("%s %-28s %-12s %s",
			desc.Icon,
			truncate(p.Name, 28),
			styles.SubtleStyle.Render(desc.Label),
			components.NewProgress(schedule.PlanProgress(p), 10).View()))
	}
	return b.String()
}

// PlanDetail renders a plan's stages and tasks with derived statuses.
func PlanDetail(p plan.Plan, today dateutil.Date, types viewmodel.TypeStyles) string {
	var b strings.Builder

	desc := types.ForType(p.Type)
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s %s", desc.Icon, p.Name)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  target %s  %s",
		styles.SubtleStyle.Render(desc.Label),
		p.TargetDate,
		components.NewProgress(schedule.PlanProgress(p), 10).View()))
	b.WriteString("\n")

	for _, s := range p.Stages {
		a := schedule.AssessStage(s, today)
		sd := viewmodel.ForStatus(a.Status)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(sd.Color)).
			Render(fmt.Sprintf("%s %s", sd.Icon, s.Title)))
		b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("  %s → %s  %d%%",
			s.StartDate, s.EndDate, schedule.StageProgress(s))))
		for _, t := range s.Tasks {
			item := schedule.Item{Task: t, Assessment: schedule.AssessTask(t, today)}
			b.WriteString("\n  ")
			b.WriteString(taskLine(item))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// taskLine renders one task with its status icon and deadline note.
func taskLine(item schedule.Item) string {
	a := item.Assessment
	desc := viewmodel.ForStatus(a.Status)

	line := fmt.Sprintf("%s %s", desc.Icon, truncate(item.Task.Title, boardColumnWidth-4))

	var note string
	switch {
	case a.Overdue:
		note = fmt.Sprintf(" %dd overdue", -a.DaysLeft)
		return styles.OverdueStyle.Render(line + note)
	case a.Urgent && a.DaysLeft == 0:
		return styles.UrgentStyle.Render(line + " due today")
	case a.Urgent:
		return styles.UrgentStyle.Render(line + fmt.Sprintf(" due in %dd", a.DaysLeft))
	case a.Status == schedule.StatusCompleted:
		return styles.SuccessStyle.Render(line)
	default:
		return line
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
