// Package tui hosts the interactive terminal application: a board, a
// calendar, and a timeline over the same plan snapshot, with live reload
// when plan files change on disk.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pvaldes/rumbo/internal/config"
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
	"github.com/pvaldes/rumbo/internal/tui/components"
	"github.com/pvaldes/rumbo/internal/tui/styles"
	"github.com/pvaldes/rumbo/internal/tui/views"
	"github.com/pvaldes/rumbo/internal/viewmodel"
	"github.com/pvaldes/rumbo/internal/watch"
)

type viewKind int

const (
	viewBoard viewKind = iota
	viewCalendar
	viewTimeline
	viewCount
)

func (v viewKind) title() string {
	switch v {
	case viewBoard:
		return "Board"
	case viewCalendar:
		return "Calendar"
	case viewTimeline:
		return "Timeline"
	}
	return ""
}

type plansLoadedMsg struct {
	plans []plan.Plan
}

type plansChangedMsg struct{}

type errMsg struct {
	err error
}

// Model is the root bubbletea model. It owns the plan snapshot and routes
// input to whichever view is active.
type Model struct {
	active    viewKind
	board     views.BoardModel
	calendar  views.CalendarModel
	timeline  views.TimelineModel
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	statusBar components.StatusBar
	watcher   *watch.Watcher
	today     dateutil.Date
	planCount int
	taskCount int
	loading   bool
	err       error
	width     int
	height    int
}

// NewModel builds the root model. The watcher may be nil, in which case
// live reload is disabled and only the manual reload key refreshes data.
func NewModel(cfg *config.Config, today dateutil.Date, watcher *watch.Watcher) Model {
	types := viewmodel.DefaultTypeStyles()
	if cfg != nil {
		types = cfg.TypeStyles()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	m := Model{
		board:     views.NewBoardModel(types),
		calendar:  views.NewCalendarModel(today, types),
		timeline:  views.NewTimelineModel(today, types),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   s,
		statusBar: components.NewStatusBar(),
		watcher:   watcher,
		today:     today,
		loading:   true,
	}

	if cfg != nil {
		switch cfg.DefaultView {
		case config.ViewCalendar:
			m.active = viewCalendar
		case config.ViewTimeline:
			m.active = viewTimeline
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, loadPlansCmd}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 3 // header and status bar
		m.board.SetSize(msg.Width, contentHeight)
		m.calendar.SetSize(msg.Width, contentHeight)
		m.timeline.SetSize(msg.Width, contentHeight)
		return m, nil

	case plansLoadedMsg:
		m.loading = false
		m.err = nil
		m.planCount = len(msg.plans)
		m.taskCount = 0
		for _, p := range msg.plans {
			m.taskCount += p.TaskCount()
		}
		items := schedule.Collect(msg.plans, m.today)
		m.board.SetItems(items)
		m.calendar.SetItems(items)
		m.timeline.SetPlans(msg.plans)
		return m, nil

	case plansChangedMsg:
		cmds := []tea.Cmd{loadPlansCmd}
		if m.watcher != nil {
			cmds = append(cmds, waitForChange(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextView):
			m.active = (m.active + 1) % viewCount
			return m, nil
		case key.Matches(msg, m.keys.Board):
			m.active = viewBoard
			return m, nil
		case key.Matches(msg, m.keys.Calendar):
			m.active = viewCalendar
			return m, nil
		case key.Matches(msg, m.keys.Timeline):
			m.active = viewTimeline
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, loadPlansCmd)
		}
		return m.updateActiveView(msg)
	}

	return m, nil
}

func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case viewBoard:
		m.board, cmd = m.board.Update(msg)
	case viewCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	case viewTimeline:
		m.timeline, cmd = m.timeline.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := styles.TitleStyle.Render("rumbo") + "  " +
		styles.SubtleStyle.Render(m.tabLine())

	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " Loading plans..."
	case m.err != nil:
		body = styles.OverdueStyle.Render(fmt.Sprintf("Error: %v", m.err))
	default:
		switch m.active {
		case viewBoard:
			body = m.board.View()
		case viewCalendar:
			body = m.calendar.View()
		case viewTimeline:
			body = m.timeline.View()
		}
	}

	bar := m.statusBar.Render(m.width, []string{
		fmt.Sprintf("%d plans", m.planCount),
		fmt.Sprintf("%d tasks", m.taskCount),
		m.today.String(),
	})

	return header + "\n\n" + body + "\n" + bar + "\n" + m.help.View(m.keys)
}

func (m Model) tabLine() string {
	var line string
	for v := viewBoard; v < viewCount; v++ {
		label := fmt.Sprintf("[%d] %s", int(v)+1, v.title())
		if v == m.active {
			label = styles.SelectedStyle.Render(label)
		}
		line += label + "  "
	}
	return line
}

func loadPlansCmd() tea.Msg {
	plans, err := plan.LoadPlans()
	if err != nil {
		return errMsg{err: err}
	}
	return plansLoadedMsg{plans: plans}
}

// waitForChange blocks on the watcher and re-arms itself after each reload
// via the plansChangedMsg handler.
func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return plansChangedMsg{}
	}
}

// Run starts the interactive application.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, err := plan.PlansDir()
	if err != nil {
		return err
	}

	watcher, err := watch.Plans(dir)
	if err != nil {
		// Live reload is best-effort; the TUI still works without it.
		watcher = nil
	}
	if watcher != nil {
		defer watcher.Close()
	}

	m := NewModel(cfg, dateutil.Today(time.Now()), watcher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
