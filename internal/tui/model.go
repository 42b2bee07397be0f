// Package tui is the interactive terminal interface: a task list grouped by
// day, a task form and a delete confirmation page.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/query"
	"todo-tracker/internal/services"
)

type page int

const (
	pageList page = iota
	pageForm
	pageDelete
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Model is the top-level bubbletea model.
type Model struct {
	ctx      context.Context
	service  services.TaskService
	settings config.Settings
	keys     keyMap
	styles   styles

	page page

	// list page
	groups []string
	days   []query.DayGroup
	rows   []domain.Task
	cursor int

	form     formPage
	deletion deletePage

	status string
	// fatal ends the program and is returned by Run.
	fatal  error
	width  int
	height int
}

// New builds the model and loads the task list.
func New(ctx context.Context, service services.TaskService) Model {
	settings := service.Settings()
	m := Model{
		ctx:      ctx,
		service:  service,
		settings: settings,
		keys:     newKeyMap(settings.KeyBindings),
		styles:   newStyles(settings.Colors),
	}
	m.reload()
	return m
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.fatal
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.page {
	case pageForm:
		return m.updateForm(msg)
	case pageDelete:
		return m.updateDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) View() string {
	switch m.page {
	case pageForm:
		return m.styles.app.Render(m.viewForm())
	case pageDelete:
		return m.styles.app.Render(m.viewDelete())
	default:
		return m.styles.app.Render(m.viewList())
	}
}

// fail handles an error from a service call. Storage errors end the program
// so memory and disk cannot drift apart, a missing task is ignored, anything
// else is shown in the status line.
func (m *Model) fail(err error) tea.Cmd {
	switch {
	case errors.IsStorage(err):
		logging.Logger().Error("storage failure, quitting", "err", err)
		m.fatal = err
		return tea.Quit
	case errors.IsNotFound(err):
		if appErr, ok := errors.AsAppError(err); ok {
			if id, ok := appErr.TaskID(); ok {
				logging.Debugf("task %d is gone, reloading", id)
			}
		}
		m.reload()
	default:
		m.status = errors.GetUserMessage(err)
	}
	return nil
}

// updateSettings persists a settings change and refreshes the cached copy.
func (m *Model) updateSettings(fn func(*config.Settings)) tea.Cmd {
	if err := m.service.UpdateSettings(fn); err != nil {
		return m.fail(err)
	}
	m.settings = m.service.Settings()
	return nil
}

func (m Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return domain.Task{}, false
	}
	return m.rows[m.cursor], true
}

// reload rebuilds the visible rows, keeping the cursor in range.
func (m *Model) reload() {
	m.groups = m.service.Groups()
	if m.settings.CurrentGroup != "" && !m.hasGroup(m.settings.CurrentGroup) {
		m.settings.CurrentGroup = ""
	}

	m.days = m.service.ListByDay(query.Options{
		ShowComplete: m.settings.ShowComplete,
		Group:        m.settings.CurrentGroup,
	})
	m.rows = nil
	for _, d := range m.days {
		m.rows = append(m.rows, d.Tasks...)
	}

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) hasGroup(group string) bool {
	for _, g := range m.groups {
		if g == group {
			return true
		}
	}
	return false
}
