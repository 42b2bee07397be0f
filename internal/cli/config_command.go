package cli

import (
	"fmt"

	"todo-tracker/internal/config"
)

// ConfigOptions are the config command's flags. Nil fields are left alone.
type ConfigOptions struct {
	Show         bool
	Reset        bool
	Mode         *string
	Icons        *string
	ShowComplete *bool
}

// ConfigCommand handles the config command
type ConfigCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(app *App) *ConfigCommand {
	return &ConfigCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute resets or updates the settings file, then prints it when asked to
// or when nothing was changed.
func (c *ConfigCommand) Execute(opts ConfigOptions) error {
	if opts.Reset {
		if err := c.app.service.UpdateSettings(func(s *config.Settings) { *s = config.DefaultSettings() }); err != nil {
			return c.errorHandler.Handle("reset settings", err)
		}
	}

	changed := opts.Mode != nil || opts.Icons != nil || opts.ShowComplete != nil
	if changed {
		next := c.app.service.Settings()
		if opts.Mode != nil {
			if err := next.ApplyKeyMode(*opts.Mode); err != nil {
				return c.errorHandler.HandleSimple(err)
			}
		}
		if opts.Icons != nil {
			if err := next.ApplyIconSet(*opts.Icons); err != nil {
				return c.errorHandler.HandleSimple(err)
			}
		}
		if opts.ShowComplete != nil {
			next.ShowComplete = *opts.ShowComplete
		}
		if err := c.app.service.UpdateSettings(func(s *config.Settings) { *s = next }); err != nil {
			return c.errorHandler.Handle("update settings", err)
		}
	}

	if opts.Show || (!opts.Reset && !changed) {
		return c.show()
	}
	return nil
}

func (c *ConfigCommand) show() error {
	out, err := config.MarshalSettings(c.app.service.Settings())
	if err != nil {
		return c.errorHandler.Handle("show settings", err)
	}
	_, err = fmt.Fprint(c.app.out, string(out))
	return err
}
