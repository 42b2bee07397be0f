package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-tracker/internal/domain"
)

// deletePage asks for the task name to be typed again before deleting.
type deletePage struct {
	task  domain.Task
	input textinput.Model
	err   string
}

func newDeletePage(task domain.Task) deletePage {
	ti := textinput.New()
	ti.Placeholder = task.Name
	ti.CharLimit = 512
	return deletePage{task: task, input: ti}
}

func (m Model) updateDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	p := &m.deletion
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyEsc || matchesOutsideText(keyMsg, m.keys.GoBack):
			m.page = pageList
			return m, nil
		case keyMsg.Type == tea.KeyEnter:
			if p.input.Value() != p.task.Name {
				p.err = "name does not match"
				return m, nil
			}
			m.page = pageList
			if _, err := m.service.DeleteTask(m.ctx, p.task.ID); err != nil {
				return m, m.fail(err)
			}
			m.status = "deleted " + p.task.Name
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return m, cmd
}

func (m Model) viewDelete() string {
	p := m.deletion
	s := m.styles.title.Render("Delete task?") + "\n\n" +
		"  " + p.task.Name + "\n\n" +
		"Type the task name to confirm:\n" +
		p.input.View() + "\n"
	if p.err != "" {
		s += "\n" + m.styles.err.Render(p.err) + "\n"
	}
	return s + "\n" + m.styles.status.Render("enter: delete  esc: cancel")
}
