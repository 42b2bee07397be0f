package cli

import (
	"context"
	"strings"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/query"
)

// ListOptions are the list command's flags.
type ListOptions struct {
	ShowComplete bool
	Filter       string
	Date         string
	Group        string
	Format       string
}

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute prints the tasks matching opts
func (c *ListCommand) Execute(ctx context.Context, opts ListOptions) error {
	printer, err := c.app.printer(opts.Format)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	queryOpts, err := c.queryOptions(opts)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	return printer.Tasks(c.app.service.ListTasks(queryOpts))
}

func (c *ListCommand) queryOptions(opts ListOptions) (query.Options, error) {
	filter, err := query.ParseDateFilter(opts.Filter)
	if err != nil {
		return query.Options{}, errors.NewInvalidInputError("filter", opts.Filter, err.Error())
	}

	queryOpts := query.Options{
		ShowComplete: opts.ShowComplete,
		DateFilter:   filter,
		Group:        opts.Group,
	}

	if strings.TrimSpace(opts.Date) != "" {
		formats := c.app.service.Settings().DateFormats
		day, err := domain.ParseDate(opts.Date, formats.Formats())
		if err != nil {
			return query.Options{}, errors.NewInvalidInputError("date", opts.Date, "expected "+formats.InputDateHint)
		}
		queryOpts.ExactDate = day
	}
	return queryOpts, nil
}
