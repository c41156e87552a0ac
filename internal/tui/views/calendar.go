package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvaldes/rumbo/internal/calendar"
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/schedule"
	"github.com/pvaldes/rumbo/internal/tui/styles"
	"github.com/pvaldes/rumbo/internal/viewmodel"
)

const calendarCellWidth = 8

// CalendarModel is the month view: a grid with a selected day and a detail
// panel listing that day's full task list. Visible month and selected day
// are view-selection state only.
type CalendarModel struct {
	year     int
	month    time.Month
	selected int // day of month
	today    dateutil.Date
	grid     calendar.Grid
	items    []schedule.Item
	types    viewmodel.TypeStyles
	width    int
	height   int
}

// NewCalendarModel creates the calendar view opened on today's month.
func NewCalendarModel(today dateutil.Date, types viewmodel.TypeStyles) CalendarModel {
	return CalendarModel{
		year:     today.Year,
		month:    today.Month,
		selected: today.Day,
		today:    today,
		types:    types,
	}
}

// SetItems refreshes the task set and rebuilds the visible grid.
func (m *CalendarModel) SetItems(items []schedule.Item) {
	m.items = items
	m.rebuild()
}

// SetSize updates the view dimensions.
func (m *CalendarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *CalendarModel) rebuild() {
	m.grid = calendar.BuildGrid(m.year, m.month, m.items)
	if days := dateutil.DaysInMonth(m.year, m.month); m.selected > days {
		m.selected = days
	}
	if m.selected < 1 {
		m.selected = 1
	}
}

// Update implements the view's key handling.
func (m CalendarModel) Update(msg tea.Msg) (CalendarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "p", "pgup":
		m.year, m.month = dateutil.AddMonths(m.year, m.month, -1)
		m.rebuild()
	case "n", "pgdown":
		m.year, m.month = dateutil.AddMonths(m.year, m.month, 1)
		m.rebuild()
	case "t":
		m.year, m.month, m.selected = m.today.Year, m.today.Month, m.today.Day
		m.rebuild()
	}
	return m, nil
}

// moveSelection shifts the selected day, rolling the visible month when
// the selection crosses its edges.
func (m *CalendarModel) moveSelection(days int) {
	d := dateutil.NewDate(m.year, m.month, m.selected).AddDays(days)
	m.year, m.month, m.selected = d.Year, d.Month, d.Day
	m.rebuild()
}

// View renders the month grid and the selected day's detail panel.
func (m CalendarModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.month, m.year)
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	var header strings.Builder
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		header.WriteString(fmt.Sprintf("%-*s", calendarCellWidth, wd))
	}
	b.WriteString(styles.SubtleStyle.Render(header.String()))
	b.WriteString("\n")

	for week := 0; week < m.grid.Weeks; week++ {
		for col := 0; col < 7; col++ {
			b.WriteString(m.renderCell(m.grid.Cells[week*7+col]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderDayPanel())

	return b.String()
}

func (m CalendarModel) renderCell(cell calendar.Cell) string {
	if !cell.IsCurrentMonth {
		return strings.Repeat(" ", calendarCellWidth)
	}

	mk := cell.Markers()
	runes := []rune(fmt.Sprintf("%2d%s%s", cell.Day, strings.Repeat("•", mk.Dots), mk.Overflow))
	if len(runes) > calendarCellWidth-1 {
		runes = runes[:calendarCellWidth-1]
	}
	content := string(runes) + strings.Repeat(" ", calendarCellWidth-len(runes))

	isToday := m.today.Valid() && m.today.Year == m.year &&
		m.today.Month == m.month && m.today.Day == cell.Day

	switch {
	case cell.Day == m.selected:
		return styles.TodayStyle.Render(content)
	case isToday:
		return styles.SelectedStyle.Render(content)
	case mk.Urgent:
		return styles.UrgentStyle.Render(content)
	case len(cell.Tasks) > 0:
		return styles.SuccessStyle.Render(content)
	default:
		return content
	}
}

// renderDayPanel lists the selected day's tasks without the marker cap.
func (m CalendarModel) renderDayPanel() string {
	tasks := m.grid.TasksOn(m.selected)

	header := fmt.Sprintf("%s %d", m.month, m.selected)
	if len(tasks) == 0 {
		return styles.BoxStyle.Render(
			styles.SelectedStyle.Render(header) + "\n" +
				styles.SubtleStyle.Render("No tasks on this day."))
	}

	var b strings.Builder
	b.WriteString(styles.SelectedStyle.Render(header))
	for _, item := range tasks {
		a := item.Assessment
		desc := viewmodel.ForStatus(a.Status)
		line := fmt.Sprintf("%s %s", desc.Icon, item.Task.Title)
		note := styles.SubtleStyle.Render(" · " + item.Task.PlanName)

		b.WriteString("\n")
		switch {
		case a.Overdue:
			b.WriteString(styles.OverdueStyle.Render(line))
		case a.Urgent:
			b.WriteString(styles.UrgentStyle.Render(line))
		case a.Status == schedule.StatusCompleted:
			b.WriteString(styles.SuccessStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString(note)
	}

	return styles.BoxStyle.Render(b.String())
}

// Selected returns the selected day as a full date.
func (m CalendarModel) Selected() dateutil.Date {
	return dateutil.NewDate(m.year, m.month, m.selected)
}
