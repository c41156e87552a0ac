// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5F87D7") // Blue accent
	secondaryColor = lipgloss.Color("#6C6C6C") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted green for completed work
	urgentColor    = lipgloss.Color("#D7875F") // Amber for urgent items
	overdueColor   = lipgloss.Color("#D75F5F") // Red for overdue items

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// SuccessStyle for completed tasks and stages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// UrgentStyle for tasks inside the urgent window
	UrgentStyle = lipgloss.NewStyle().
			Foreground(urgentColor).
			Bold(true)

	// OverdueStyle for tasks past their deadline
	OverdueStyle = lipgloss.NewStyle().
			Foreground(overdueColor).
			Bold(true)

	// TodayStyle highlights the current day in the calendar
	TodayStyle = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)
)
