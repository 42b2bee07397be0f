package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/query"
	"todo-tracker/internal/repository"
)

// Output formats accepted by --format.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// Printer writes tasks in the selected format. JSON output uses the same
// record shape as the task file.
type Printer struct {
	out      io.Writer
	format   string
	settings config.Settings
}

// NewPrinter validates format and returns a printer.
func NewPrinter(out io.Writer, format string, settings config.Settings) (*Printer, error) {
	switch format {
	case "", FormatPlain:
		format = FormatPlain
	case FormatJSON:
	default:
		return nil, errors.NewInvalidInputError("format", format, "expected json or plain")
	}
	return &Printer{out: out, format: format, settings: settings}, nil
}

// Task prints a single task.
func (p *Printer) Task(t domain.Task) error {
	if p.format == FormatJSON {
		return p.json(repository.ToRecord(t))
	}
	_, err := fmt.Fprintln(p.out, p.line(t))
	return err
}

// Tasks prints tasks, in plain format under one heading per day.
func (p *Printer) Tasks(tasks []domain.Task) error {
	if p.format == FormatJSON {
		return p.json(repository.ToRecords(tasks))
	}
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(p.out, "No tasks found")
		return err
	}

	for i, group := range query.GroupByDay(tasks) {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		fmt.Fprintln(p.out, group.Day.Format(p.settings.DateFormats.DisplayDate))
		for _, t := range group.Tasks {
			if _, err := fmt.Fprintln(p.out, "  "+p.line(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Completion prints the changed task followed by its successor, if any.
func (p *Printer) Completion(task domain.Task, successor *domain.Task) error {
	if p.format == FormatJSON {
		records := []repository.Record{repository.ToRecord(task)}
		if successor != nil {
			records = append(records, repository.ToRecord(*successor))
		}
		return p.json(records)
	}
	if err := p.Task(task); err != nil {
		return err
	}
	if successor != nil {
		_, err := fmt.Fprintf(p.out, "next: %s\n", p.line(*successor))
		return err
	}
	return nil
}

// Deleted reports a removed task.
func (p *Printer) Deleted(t domain.Task) error {
	if p.format == FormatJSON {
		return p.json(map[string]int64{"deleted": t.ID})
	}
	_, err := fmt.Fprintf(p.out, "Deleted task %d: %s\n", t.ID, t.Name)
	return err
}

func (p *Printer) line(t domain.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d  %s  %s", p.settings.Icons.CompleteIcon(t.Complete), t.ID,
		domain.FormatDisplay(t.Date, p.settings.DateFormats.Formats()), t.Name)
	if !t.Repeats.IsNever() {
		fmt.Fprintf(&b, "  %s %s", p.settings.Icons.Repeats, t.Repeats)
	}
	if t.HasGroup() {
		fmt.Fprintf(&b, "  #%s", t.Group)
	}
	if link := t.Link(); link != "" {
		fmt.Fprintf(&b, "  %s", link)
	}
	return b.String()
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
