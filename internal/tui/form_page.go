package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-tracker/internal/config"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/form"
)

const (
	fieldName = iota
	fieldDate
	fieldRepeats
	fieldGroup
	fieldDescription
	fieldURL
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Date", "Repeats", "Group", "Description", "URL"}

// formPage edits one task. In normal mode keys move between fields; in
// insert mode they go to the focused input.
type formPage struct {
	id       int64
	complete bool
	inputs   [fieldCount]textinput.Model
	focus    int
	insert   bool
	err      string
}

func newFormPage(f form.TaskForm, settings config.Settings) formPage {
	values := [fieldCount]string{f.Name, f.Date, f.Repeats, f.Group, f.Description, f.URL}
	placeholders := [fieldCount]string{
		"What needs doing",
		form.DateHint(settings.DateFormats) + ", empty for today",
		"Never, Daily, Weekly, Monthly, Yearly or Mon,Wed",
		"optional",
		"optional",
		"https://",
	}

	p := formPage{id: f.ID, complete: f.Complete}
	for i := range p.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 512
		ti.SetValue(values[i])
		p.inputs[i] = ti
	}
	return p
}

func (p formPage) value() form.TaskForm {
	return form.TaskForm{
		ID:          p.id,
		Name:        p.inputs[fieldName].Value(),
		Date:        p.inputs[fieldDate].Value(),
		Repeats:     p.inputs[fieldRepeats].Value(),
		Group:       p.inputs[fieldGroup].Value(),
		Description: p.inputs[fieldDescription].Value(),
		URL:         p.inputs[fieldURL].Value(),
		Complete:    p.complete,
	}
}

func (p *formPage) setInsert(on bool) tea.Cmd {
	p.insert = on
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
	if on {
		return p.inputs[p.focus].Focus()
	}
	return nil
}

func (p *formPage) move(step int) tea.Cmd {
	p.focus = (p.focus + step + fieldCount) % fieldCount
	return p.setInsert(p.insert)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	p := &m.form
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.insert {
			var cmd tea.Cmd
			p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// tab moves between fields in either mode
	switch keyMsg.Type {
	case tea.KeyTab:
		return m, p.move(1)
	case tea.KeyShiftTab:
		return m, p.move(-1)
	}

	if p.insert {
		switch {
		case matchesOutsideText(keyMsg, m.keys.EnterNormalMode):
			return m, p.setInsert(false)
		case matchesOutsideText(keyMsg, m.keys.SaveChanges):
			return m.submitForm()
		case matchesOutsideText(keyMsg, m.keys.Down):
			return m, p.move(1)
		case matchesOutsideText(keyMsg, m.keys.Up):
			return m, p.move(-1)
		}
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.GoBack):
		m.page = pageList
	case key.Matches(keyMsg, m.keys.SaveChanges):
		return m.submitForm()
	case key.Matches(keyMsg, m.keys.EnterInsertMode):
		return m, p.setInsert(true)
	case key.Matches(keyMsg, m.keys.Down):
		return m, p.move(1)
	case key.Matches(keyMsg, m.keys.Up):
		return m, p.move(-1)
	}
	return m, nil
}

// submitForm saves the form. Validation errors stay on the page with the
// input intact.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form.value()

	var err error
	if f.ID == 0 {
		_, err = m.service.CreateTask(m.ctx, f)
	} else {
		_, err = m.service.UpdateTask(m.ctx, f)
	}

	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeValidation) {
			m.form.err = errors.GetUserMessage(err)
			return m, nil
		}
		cmd := m.fail(err)
		m.page = pageList
		return m, cmd
	}

	m.form.setInsert(false)
	m.page = pageList
	m.status = "saved " + strings.TrimSpace(f.Name)
	m.reload()
	return m, nil
}

func (m Model) viewForm() string {
	p := m.form
	title := "New task"
	if p.id != 0 {
		title = "Edit task"
	}
	mode := "NORMAL"
	if p.insert {
		mode = "INSERT"
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(title) + "  " + m.styles.status.Render(mode) + "\n\n")
	for i, in := range p.inputs {
		marker := "  "
		if i == p.focus {
			marker = m.styles.selected.Render("> ")
		}
		b.WriteString(marker + m.styles.label.Render(fieldLabels[i]) + in.View() + "\n")
	}
	if p.err != "" {
		b.WriteString("\n" + m.styles.err.Render(p.err) + "\n")
	}

	help := helpLine(m.keys.EnterInsertMode, m.keys.EnterNormalMode, m.keys.SaveChanges, m.keys.GoBack) + "  tab: next field"
	b.WriteString("\n" + m.styles.status.Render(help))
	return b.String()
}
