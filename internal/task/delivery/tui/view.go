package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"task-list-manager/internal/board"
	"task-list-manager/internal/model"
)

var fieldLabels = []string{"Title", "Description", "Due date"}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	if n := m.view.Notification; n != nil {
		b.WriteString(notificationStyle(n.Severity).Render(n.Message))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(overdueStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	if p := m.view.Pending; p != nil {
		b.WriteString(confirmStyle.Render(fmt.Sprintf("%s\n%s\n[y] Yes  [n] No", board.LabelConfirmDelete, p.Title)))
		b.WriteString("\n\n")
	}

	if m.mode == modeForm {
		b.WriteString(m.renderForm())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderRows())
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderFilters() string {
	tabs := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s (%d)", i+1, f, m.view.List.Counts[f])
		if f == m.view.State.Filter {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderForm() string {
	lines := make([]string, 0, len(m.inputs)+2)
	for i, in := range m.inputs {
		lines = append(lines, fmt.Sprintf("%-12s %s", fieldLabels[i], in.View()))
	}

	actions := "[enter] " + m.view.PrimaryLabel
	if m.view.CancelVisible {
		actions += "  [esc] " + board.LabelCancel
	}
	lines = append(lines, "", actions)
	return formStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderRows() string {
	if m.view.List.Empty {
		return mutedStyle.Render(board.LabelNoTasks) + "\n"
	}

	var b strings.Builder
	for i, row := range m.view.List.Rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		check := "[ ]"
		title := row.Task.Title
		if row.Task.Completed {
			check = "[x]"
			title = completedStyle.Render(title)
		}

		line := fmt.Sprintf("%s%s %s  %s", cursor, check, title, mutedStyle.Render(row.DueLabel))
		if row.ShowOverdue {
			line += " " + overdueStyle.Render("(Overdue)")
		}
		if i == m.cursor {
			line = selectedStyle.Render(line) + "  " + mutedStyle.Render("space: "+row.ToggleLabel)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if row.Task.Description != "" {
			b.WriteString("      " + mutedStyle.Render(row.Task.Description) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderHelp() string {
	bindings := m.keys.listHelp()
	if m.mode == modeForm {
		bindings = m.keys.formHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

