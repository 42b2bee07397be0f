package config

import (
	"fmt"

	"todo-tracker/internal/domain"
)

const DefaultSettingsFileName = "settings.toml"

// DateFormatSettings holds Go time layouts plus the hints shown next to
// date inputs.
type DateFormatSettings struct {
	DisplayDate       string `toml:"display_date_format"`
	DisplayDateTime   string `toml:"display_datetime_format"`
	InputDate         string `toml:"input_date_format"`
	InputDateHint     string `toml:"input_date_hint"`
	InputDateTime     string `toml:"input_datetime_format"`
	InputDateTimeHint string `toml:"input_datetime_hint"`
}

// Formats converts the settings into the layouts the domain parser takes.
func (d DateFormatSettings) Formats() domain.DateFormats {
	return domain.DateFormats{
		DisplayDate:     d.DisplayDate,
		DisplayDateTime: d.DisplayDateTime,
		InputDate:       d.InputDate,
		InputDateTime:   d.InputDateTime,
	}
}

type Icons struct {
	Complete   string `toml:"complete"`
	Incomplete string `toml:"incomplete"`
	Repeats    string `toml:"repeats"`
}

// CompleteIcon returns the icon for the given completion state.
func (i Icons) CompleteIcon(complete bool) string {
	if complete {
		return i.Complete
	}
	return i.Incomplete
}

// Colors are lipgloss color strings: ANSI indexes ("10") or hex ("#a3be8c").
type Colors struct {
	Primary   string `toml:"primary_color"`
	Secondary string `toml:"secondary_color"`
	Accent    string `toml:"accent_color"`
}

// KeyBindings uses bubbletea key names such as "q", "enter", "esc" or "up".
type KeyBindings struct {
	Quit                 string `toml:"quit"`
	Down                 string `toml:"down"`
	Up                   string `toml:"up"`
	CompleteTask         string `toml:"complete_task"`
	ToggleCompletedTasks string `toml:"toggle_completed_tasks"`
	DeleteTask           string `toml:"delete_task"`
	NewTask              string `toml:"new_task"`
	EditTask             string `toml:"edit_task"`
	SaveChanges          string `toml:"save_changes"`
	EnterInsertMode      string `toml:"enter_insert_mode"`
	EnterNormalMode      string `toml:"enter_normal_mode"`
	GoBack               string `toml:"go_back"`
	OpenLink             string `toml:"open_link"`
	NextGroup            string `toml:"next_group"`
	PrevGroup            string `toml:"prev_group"`
}

// Settings is the persisted UI preference file.
type Settings struct {
	DateFormats  DateFormatSettings `toml:"date_formats"`
	ShowComplete bool               `toml:"show_complete"`
	CurrentGroup string             `toml:"current_group"`
	Icons        Icons              `toml:"icons"`
	Colors       Colors             `toml:"colors"`
	KeyBindings  KeyBindings        `toml:"keybindings"`
}

// DefaultSettings returns vi key bindings and the special icon set.
func DefaultSettings() Settings {
	s := Settings{
		DateFormats: DateFormatSettings{
			DisplayDate:       "Mon Jan 2",
			DisplayDateTime:   "Mon Jan 2 at 15:04",
			InputDate:         "02-01-2006",
			InputDateHint:     "DD-MM-YYYY",
			InputDateTime:     "02-01-2006 15:04",
			InputDateTimeHint: "DD-MM-YYYY HH:MM",
		},
		ShowComplete: true,
		Colors: Colors{
			Primary:   "10",
			Secondary: "11",
			Accent:    "12",
		},
	}
	s.SetViMode()
	s.SetSpecialIcons()
	return s
}

// SetViMode switches to single letter navigation keys.
func (s *Settings) SetViMode() {
	s.KeyBindings = KeyBindings{
		Quit:                 "q",
		Down:                 "j",
		Up:                   "k",
		CompleteTask:         "x",
		ToggleCompletedTasks: "h",
		DeleteTask:           "d",
		NewTask:              "n",
		EditTask:             "e",
		SaveChanges:          "enter",
		EnterInsertMode:      "i",
		EnterNormalMode:      "esc",
		GoBack:               "b",
		OpenLink:             "enter",
		NextGroup:            "l",
		PrevGroup:            "H",
	}
}

// SetNormalMode switches to arrow keys and control chords.
func (s *Settings) SetNormalMode() {
	s.KeyBindings = KeyBindings{
		Quit:                 "ctrl+q",
		Down:                 "down",
		Up:                   "up",
		CompleteTask:         "ctrl+x",
		ToggleCompletedTasks: "ctrl+h",
		DeleteTask:           "delete",
		NewTask:              "ctrl+n",
		EditTask:             "ctrl+e",
		SaveChanges:          "enter",
		EnterInsertMode:      "insert",
		EnterNormalMode:      "esc",
		GoBack:               "esc",
		OpenLink:             "enter",
		NextGroup:            "tab",
		PrevGroup:            "shift+tab",
	}
}

// SetSpecialIcons uses Nerd Font glyphs.
func (s *Settings) SetSpecialIcons() {
	s.Icons = Icons{
		Complete:   "󰄴",
		Incomplete: "󰝦",
		Repeats:    "",
	}
}

// SetCharIcons uses plain ASCII.
func (s *Settings) SetCharIcons() {
	s.Icons = Icons{
		Complete:   "[x]",
		Incomplete: "[ ]",
		Repeats:    "(r)",
	}
}

// ApplyKeyMode sets the preset named by mode: "vi" or "normal".
func (s *Settings) ApplyKeyMode(mode string) error {
	switch mode {
	case "vi":
		s.SetViMode()
	case "normal":
		s.SetNormalMode()
	default:
		return &ConfigError{Field: "mode", Message: fmt.Sprintf("unknown key mode %q, expected vi or normal", mode)}
	}
	return nil
}

// ApplyIconSet sets the preset named by set: "special" or "chars".
func (s *Settings) ApplyIconSet(set string) error {
	switch set {
	case "special":
		s.SetSpecialIcons()
	case "chars":
		s.SetCharIcons()
	default:
		return &ConfigError{Field: "icons", Message: fmt.Sprintf("unknown icon set %q, expected special or chars", set)}
	}
	return nil
}

// Validate checks that every layout and key binding is set.
func (s Settings) Validate() error {
	formats := map[string]string{
		"date_formats.display_date_format":     s.DateFormats.DisplayDate,
		"date_formats.display_datetime_format": s.DateFormats.DisplayDateTime,
		"date_formats.input_date_format":       s.DateFormats.InputDate,
		"date_formats.input_datetime_format":   s.DateFormats.InputDateTime,
	}
	for field, layout := range formats {
		if layout == "" {
			return &ConfigError{Field: field, Message: "date layout cannot be empty"}
		}
	}

	for field, binding := range s.KeyBindings.byName() {
		if binding == "" {
			return &ConfigError{Field: "keybindings." + field, Message: "key binding cannot be empty"}
		}
	}
	return nil
}

func (k KeyBindings) byName() map[string]string {
	return map[string]string{
		"quit":                   k.Quit,
		"down":                   k.Down,
		"up":                     k.Up,
		"complete_task":          k.CompleteTask,
		"toggle_completed_tasks": k.ToggleCompletedTasks,
		"delete_task":            k.DeleteTask,
		"new_task":               k.NewTask,
		"edit_task":              k.EditTask,
		"save_changes":           k.SaveChanges,
		"enter_insert_mode":      k.EnterInsertMode,
		"enter_normal_mode":      k.EnterNormalMode,
		"go_back":                k.GoBack,
		"open_link":              k.OpenLink,
		"next_group":             k.NextGroup,
		"prev_group":             k.PrevGroup,
	}
}
