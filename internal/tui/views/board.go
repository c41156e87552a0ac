package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvaldes/rumbo/internal/kanban"
	"github.com/pvaldes/rumbo/internal/schedule"
	"github.com/pvaldes/rumbo/internal/tui/components"
	"github.com/pvaldes/rumbo/internal/tui/styles"
	"github.com/pvaldes/rumbo/internal/viewmodel"
)

const minColumnWidth = 24

// BoardModel is the kanban view: three fixed columns with a movable
// column/task cursor. The active column and cursors are view-selection
// state; they never touch the underlying plans.
type BoardModel struct {
	board  kanban.Board
	types  viewmodel.TypeStyles
	active int    // 0..2
	cursor [3]int // selected task per column
	width  int
	height int
}

// NewBoardModel creates the board view.
func NewBoardModel(types viewmodel.TypeStyles) BoardModel {
	return BoardModel{types: types}
}

// SetItems rebuilds the board from a fresh enrichment pass, clamping the
// cursors into the new column sizes.
func (m *BoardModel) SetItems(items []schedule.Item) {
	m.board = kanban.BuildBoard(items)
	cols := m.board.Columns()
	for i := range m.cursor {
		if n := cols[i].Count(); m.cursor[i] >= n {
			m.cursor[i] = max(0, n-1)
		}
	}
}

// SetSize updates the view dimensions.
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements the view's key handling.
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		if m.active > 0 {
			m.active--
		}
	case "right", "l":
		if m.active < 2 {
			m.active++
		}
	case "up", "k":
		if m.cursor[m.active] > 0 {
			m.cursor[m.active]--
		}
	case "down", "j":
		if m.cursor[m.active] < m.board.Columns()[m.active].Count()-1 {
			m.cursor[m.active]++
		}
	}
	return m, nil
}

// View renders the three columns side by side, active column bordered in
// the accent color, plus a detail panel for the selected task.
func (m BoardModel) View() string {
	cols := m.board.Columns()

	colWidth := minColumnWidth
	if m.width/3-2 > colWidth {
		colWidth = m.width/3 - 2
	}

	rendered := make([]string, 0, 3)
	for i, col := range cols {
		rendered = append(rendered, m.renderColumn(col, i, colWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	detail := m.renderDetail()
	if detail == "" {
		return board
	}
	return lipgloss.JoinVertical(lipgloss.Left, board, detail)
}

func (m BoardModel) renderColumn(col kanban.Column, index, width int) string {
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

	for i, item := range col.Tasks {
		b.WriteString("\n")
		line := taskCard(item, width-4)
		if index == m.active && i == m.cursor[index] {
			line = styles.SelectedStyle.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
	}

	box := styles.BoxStyle.Width(width)
	if index == m.active {
		box = box.BorderForeground(lipgloss.Color("#5F87D7"))
	}
	return box.Render(b.String())
}

// taskCard renders one compact board card line.
func taskCard(item schedule.Item, width int) string {
	a := item.Assessment
	title := truncate(item.Task.Title, width)

	var suffix string
	if done, total := schedule.SubtaskCounts(item.Task); total > 0 {
		suffix = styles.SubtleStyle.Render(fmt.Sprintf(" %d/%d", done, total))
	}

	switch {
	case a.Overdue:
		return styles.OverdueStyle.Render(title) + suffix
	case a.Urgent:
		return styles.UrgentStyle.Render(title) + suffix
	case a.Status == schedule.StatusCompleted:
		return styles.SuccessStyle.Render(title) + suffix
	default:
		return title + suffix
	}
}

// renderDetail shows the selected task's plan, dates, and subtask
// progress.
func (m BoardModel) renderDetail() string {
	col := m.board.Columns()[m.active]
	if col.Count() == 0 {
		return ""
	}
	item := col.Tasks[m.cursor[m.active]]
	a := item.Assessment

	var b strings.Builder
	b.WriteString(styles.SelectedStyle.Render(item.Task.Title))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("%s %s · %s",
		m.types.ForType(item.PlanType).Icon, item.Task.PlanName, item.StageTitle)))
	b.WriteString("\n")
	if item.Task.Deadline.Valid() {
		switch {
		case a.Overdue:
			b.WriteString(styles.OverdueStyle.Render(fmt.Sprintf("deadline %s (%dd overdue)", item.Task.Deadline, -a.DaysLeft)))
		case a.Urgent:
			b.WriteString(styles.UrgentStyle.Render(fmt.Sprintf("deadline %s (%dd left)", item.Task.Deadline, a.DaysLeft)))
		default:
			b.WriteString(fmt.Sprintf("deadline %s", item.Task.Deadline))
		}
		b.WriteString("\n")
	}
	if _, total := schedule.SubtaskCounts(item.Task); total > 0 {
		b.WriteString(components.NewProgress(schedule.SubtaskProgress(item.Task), 12).View())
		b.WriteString("\n")
	}

	return styles.BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

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

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if maxLen <= 0 || len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
