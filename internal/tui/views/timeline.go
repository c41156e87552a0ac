package views

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
	"github.com/pvaldes/rumbo/internal/timeline"
	"github.com/pvaldes/rumbo/internal/tui/components"
	"github.com/pvaldes/rumbo/internal/tui/styles"
	"github.com/pvaldes/rumbo/internal/viewmodel"
)

const timelineLabel = 26

// TimelineModel is the Gantt view: one row per stage, expandable to show
// its task bars. Visible month, scroll offset, and per-stage expansion are
// view-selection state.
type TimelineModel struct {
	year     int
	month    time.Month
	today    dateutil.Date
	plans    []plan.Plan
	view     timeline.View
	types    viewmodel.TypeStyles
	expanded map[string]bool // stage ID -> expanded
	cursor   int             // selected row
	width    int
	height   int
}

// NewTimelineModel creates the timeline view opened on today's month.
func NewTimelineModel(today dateutil.Date, types viewmodel.TypeStyles) TimelineModel {
	return TimelineModel{
		year:     today.Year,
		month:    today.Month,
		today:    today,
		types:    types,
		expanded: make(map[string]bool),
	}
}

// SetPlans refreshes the underlying snapshot and recomputes the layout.
// Stages keep their expansion state across reloads; new stages default to
// expanded unless completed.
func (m *TimelineModel) SetPlans(plans []plan.Plan) {
	m.plans = plans
	for _, p := range plans {
		for _, s := range p.Stages {
			key := stageKey(p.ID, s.ID)
			if _, seen := m.expanded[key]; !seen {
				m.expanded[key] = viewmodel.StageExpanded(schedule.AssessStage(s, m.today).Status)
			}
		}
	}
	m.rebuild()
}

// SetSize updates the view dimensions.
func (m *TimelineModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *TimelineModel) rebuild() {
	m.view = timeline.Build(m.year, m.month, m.plans, m.today)
	if m.cursor >= len(m.view.Rows) {
		m.cursor = len(m.view.Rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update implements the view's key handling.
func (m TimelineModel) Update(msg tea.Msg) (TimelineModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view.Rows)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.cursor < len(m.view.Rows) {
			row := m.view.Rows[m.cursor]
			key := stageKey(row.PlanID, row.StageID)
			m.expanded[key] = !m.expanded[key]
		}
	case "p", "pgup":
		m.year, m.month = dateutil.AddMonths(m.year, m.month, -1)
		m.rebuild()
	case "n", "pgdown":
		m.year, m.month = dateutil.AddMonths(m.year, m.month, 1)
		m.rebuild()
	case "t":
		m.year, m.month = m.today.Year, m.today.Month
		m.rebuild()
	}
	return m, nil
}

// View renders the timeline rows with a day ruler on top.
func (m TimelineModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.month, m.year)
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", timelineLabel+1))
	b.WriteString(styles.SubtleStyle.Render(m.ruler()))
	b.WriteString("\n")

	if len(m.view.Rows) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No plans to show."))
		return b.String()
	}

	for i, row := range m.view.Rows {
		b.WriteString(m.renderRow(row, i))
	}

	return b.String()
}

func (m TimelineModel) ruler() string {
	cells := []rune(strings.Repeat("·", m.view.TotalDays))
	if m.view.HasToday {
		cells[percentToIndex(m.view.TodayPercent, m.view.TotalDays)] = '┃'
	}
	return string(cells)
}

func (m TimelineModel) renderRow(row timeline.Row, index int) string {
	var b strings.Builder

	desc := viewmodel.ForStatus(row.Status)
	marker := "  "
	if index == m.cursor {
		marker = styles.SelectedStyle.Render("▸ ")
	}
	chevron := "▸"
	if m.expanded[stageKey(row.PlanID, row.StageID)] {
		chevron = "▾"
	}

	label := truncate(fmt.Sprintf("%s %s %s %s",
		chevron, m.types.ForType(row.PlanType).Icon, desc.Icon, row.StageTitle), timelineLabel-2)
	b.WriteString(marker)
	b.WriteString(fmt.Sprintf("%-*s ", timelineLabel-2, label))
	b.WriteString(components.NewProgress(row.Progress, 5).View())
	b.WriteString("\n")

	if m.expanded[stageKey(row.PlanID, row.StageID)] {
		for _, bar := range row.Bars {
			b.WriteString(fmt.Sprintf("%*s ", timelineLabel+1, truncate(bar.Title, timelineLabel)))
			b.WriteString(m.renderBar(bar))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m TimelineModel) renderBar(bar timeline.Bar) string {
	totalDays := m.view.TotalDays
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

func stageKey(planID, stageID string) string {
	return planID + "/" + stageID
}
