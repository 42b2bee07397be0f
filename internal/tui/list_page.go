package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/form"
	"todo-tracker/internal/services"
)

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.CompleteTask):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		result, err := m.service.SetCompletion(m.ctx, task.ID, services.StatusToggle)
		if err != nil {
			return m, m.fail(err)
		}
		if result.Successor != nil {
			m.status = fmt.Sprintf("next %s: %s", result.Successor.Name,
				domain.FormatDisplay(result.Successor.Date, m.settings.DateFormats.Formats()))
		}
		m.reload()

	case key.Matches(keyMsg, m.keys.ToggleCompletedTasks):
		cmd := m.updateSettings(func(s *config.Settings) { s.ShowComplete = !s.ShowComplete })
		m.reload()
		return m, cmd

	case key.Matches(keyMsg, m.keys.NextGroup):
		return m, m.switchGroup(1)

	case key.Matches(keyMsg, m.keys.PrevGroup):
		return m, m.switchGroup(-1)

	case key.Matches(keyMsg, m.keys.NewTask):
		m.form = newFormPage(form.TaskForm{Group: m.settings.CurrentGroup}, m.settings)
		m.page = pageForm
		return m, m.form.setInsert(true)

	case key.Matches(keyMsg, m.keys.EditTask):
		if task, ok := m.selected(); ok {
			m.form = newFormPage(form.FromTask(task, m.settings.DateFormats), m.settings)
			m.page = pageForm
		}

	case key.Matches(keyMsg, m.keys.DeleteTask):
		if task, ok := m.selected(); ok {
			m.deletion = newDeletePage(task)
			m.page = pageDelete
			return m, m.deletion.input.Focus()
		}

	case key.Matches(keyMsg, m.keys.OpenLink):
		task, ok := m.selected()
		if !ok || !task.HasLink() {
			m.status = "no link"
			return m, nil
		}
		if err := writeClipboard(task.Link()); err != nil {
			m.status = "copy failed: " + err.Error()
			return m, nil
		}
		m.status = "copied " + task.Link()
	}
	return m, nil
}

// switchGroup moves through the group tabs, "All" being the first, and
// persists the choice.
func (m *Model) switchGroup(step int) tea.Cmd {
	tabs := append([]string{""}, m.groups...)
	current := 0
	for i, g := range tabs {
		if g == m.settings.CurrentGroup {
			current = i
		}
	}
	next := (current + step + len(tabs)) % len(tabs)

	cmd := m.updateSettings(func(s *config.Settings) { s.CurrentGroup = tabs[next] })
	m.cursor = 0
	m.reload()
	return cmd
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("td") + "  " + m.viewTabs() + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.status.Render("No tasks") + "\n")
	}

	formats := m.settings.DateFormats.Formats()
	row := 0
	for i, day := range m.days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.dayHeader.Render(day.Day.Format(m.settings.DateFormats.DisplayDate)) + "\n")
		for _, t := range day.Tasks {
			line := fmt.Sprintf("%s %s", m.settings.Icons.CompleteIcon(t.Complete), t.Name)
			if domain.DateHasTime(t.Date) {
				line += "  " + t.Date.Format("15:04")
			}
			if !t.Repeats.IsNever() {
				line += "  " + m.settings.Icons.Repeats
			}
			if m.settings.CurrentGroup == "" && t.HasGroup() {
				line += "  #" + t.Group
			}

			switch {
			case row == m.cursor:
				line = m.styles.selected.Render("> " + line)
			case t.Complete:
				line = "  " + m.styles.complete.Render(line)
			default:
				line = "  " + line
			}
			b.WriteString(line + "\n")
			row++
		}
	}

	if task, ok := m.selected(); ok {
		b.WriteString("\n" + m.styles.status.Render(domain.FormatDisplay(task.Date, formats)))
		if !task.Repeats.IsNever() {
			b.WriteString(m.styles.status.Render(", repeats " + task.Repeats.String()))
		}
		if task.Description != "" {
			b.WriteString("\n" + task.Description)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.styles.status.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.styles.status.Render(helpLine(m.keys.NewTask, m.keys.EditTask, m.keys.CompleteTask,
		m.keys.DeleteTask, m.keys.ToggleCompletedTasks, m.keys.NextGroup, m.keys.OpenLink, m.keys.Quit)))
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := []string{m.renderTab("All", m.settings.CurrentGroup == "")}
	for _, g := range m.groups {
		tabs = append(tabs, m.renderTab(g, g == m.settings.CurrentGroup))
	}
	return strings.Join(tabs, "")
}

func (m Model) renderTab(name string, active bool) string {
	if active {
		return m.styles.activeTab.Render(name)
	}
	return m.styles.tab.Render(name)
}
