package tui

import (
	"github.com/charmbracelet/lipgloss"

	"task-list-manager/pkg/notify"
)

var (
	colorAccent  = lipgloss.Color("#0366d6")
	colorMuted   = lipgloss.Color("#6a737d")
	colorSuccess = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(colorAccent).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(colorAccent).Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Bold(true)
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	overdueStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	formStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	confirmStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Padding(0, 1)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)

func notificationStyle(s notify.Severity) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch s {
	case notify.SeveritySuccess:
		return base.Foreground(colorSuccess)
	case notify.SeverityError:
		return base.Foreground(colorError)
	default:
		return base.Foreground(colorWarning)
	}
}
