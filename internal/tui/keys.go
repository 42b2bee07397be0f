package tui

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todo-tracker/internal/config"
)

type keyMap struct {
	Quit                 key.Binding
	Down                 key.Binding
	Up                   key.Binding
	CompleteTask         key.Binding
	ToggleCompletedTasks key.Binding
	DeleteTask           key.Binding
	NewTask              key.Binding
	EditTask             key.Binding
	SaveChanges          key.Binding
	EnterInsertMode      key.Binding
	EnterNormalMode      key.Binding
	GoBack               key.Binding
	OpenLink             key.Binding
	NextGroup            key.Binding
	PrevGroup            key.Binding
	ForceQuit            key.Binding
}

func binding(k, help string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
}

func newKeyMap(kb config.KeyBindings) keyMap {
	return keyMap{
		Quit:                 binding(kb.Quit, "quit"),
		Down:                 binding(kb.Down, "down"),
		Up:                   binding(kb.Up, "up"),
		CompleteTask:         binding(kb.CompleteTask, "complete"),
		ToggleCompletedTasks: binding(kb.ToggleCompletedTasks, "show/hide done"),
		DeleteTask:           binding(kb.DeleteTask, "delete"),
		NewTask:              binding(kb.NewTask, "new"),
		EditTask:             binding(kb.EditTask, "edit"),
		SaveChanges:          binding(kb.SaveChanges, "save"),
		EnterInsertMode:      binding(kb.EnterInsertMode, "insert"),
		EnterNormalMode:      binding(kb.EnterNormalMode, "normal"),
		GoBack:               binding(kb.GoBack, "back"),
		OpenLink:             binding(kb.OpenLink, "copy link"),
		NextGroup:            binding(kb.NextGroup, "next group"),
		PrevGroup:            binding(kb.PrevGroup, "prev group"),
		ForceQuit:            binding("ctrl+c", "quit"),
	}
}

// matchesOutsideText reports whether msg triggers b while a text input has
// focus. Single character bindings are left to the input.
func matchesOutsideText(msg tea.KeyMsg, b key.Binding) bool {
	if !key.Matches(msg, b) {
		return false
	}
	return msg.Type != tea.KeyRunes || utf8.RuneCountInString(msg.String()) != 1
}

func helpLine(bindings ...key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += "  "
		}
		h := b.Help()
		line += h.Key + ": " + h.Desc
	}
	return line
}
