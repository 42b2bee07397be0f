package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/services"
)

// ServiceFactory opens the task service once configuration is final.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (services.TaskService, error)

// TUIRunner runs the interactive interface until the user quits.
type TUIRunner func(ctx context.Context, service services.TaskService) error

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	config     *config.Config
	newService ServiceFactory
	runTUI     TUIRunner
	service    services.TaskService
	out        io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, newService ServiceFactory, runTUI TUIRunner) *RootCommand {
	root := &RootCommand{
		config:     cfg,
		newService: newService,
		runTUI:     runTUI,
		out:        os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A personal task tracker for the terminal",
		Long: `td keeps a list of dated, optionally recurring tasks.

Run td with no command to open the interactive interface.

EXAMPLES:
  td add "Pay rent" --date 31-01-2024 --repeats monthly
  td add "Standup" --repeats Mon,Tue,Wed,Thu,Fri --group Work
  td ls --filter today
  td ls --group work --format json
  td complete --id 3
  td rm --id 3
  td import tasks.yaml
  td config --mode normal --icons chars

REPEATS:
  Never, Daily, Weekly, Monthly, Yearly, or a list of days such as Mon,Wed,Fri.
  Completing a recurring task keeps it and adds the next occurrence.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TD_DATA_DIR                            Data directory (default: ~/.config/td)
    TD_STORAGE                             Storage backend, json or sqlite (default: json)
    TD_JSON_FILENAME                       Task file name (default: tasks.json)
    TD_DB_FILENAME                         SQLite file name (default: td.db)
    TD_SETTINGS_FILE                       Settings file name (default: settings.toml)
    TD_VALIDATION_TASK_NAME_MAX            Max task name length (default: 255)
    TD_APP_TIMEOUT                         Command timeout (default: 60s)
    TD_APP_VERBOSE                         Verbose logging (default: false)
    TD_LIST_DEFAULT_FORMAT                 Default output format (default: plain)
    TD_DEBUG                               Debug logging when set

  UI preferences (date formats, icons, colors, key bindings) live in the
  settings file and can be changed with td config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runTUI(cmd.Context(), root.service)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetOutput redirects command output and cobra's own messages.
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
	r.cmd.SetErr(w)
}

// SetArgs replaces os.Args, used by tests.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command and closes the task service.
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a parent context.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.service != nil {
		if closeErr := r.service.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		r.service = nil
	}
	return err
}

// setup applies flag overrides, validates the configuration and opens the
// service. Help and completion commands never touch storage.
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if err := r.getConfigFromFlags(); err != nil {
		return err
	}
	if err := r.config.Validate(); err != nil {
		return err
	}
	logging.SetVerbose(r.config.Application.Verbose)

	if cmd.Name() == "help" || cmd.Name() == "completion" || (cmd.Parent() != nil && cmd.Parent().Name() == "completion") {
		return nil
	}

	service, err := r.newService(cmd.Context(), r.config)
	if err != nil {
		return NewErrorHandler().HandleSimple(err)
	}
	r.service = service
	return nil
}

func (r *RootCommand) app() *App {
	return NewApp(r.service, r.config).WithOutput(r.out)
}

// commandContext bounds one command by the configured timeout.
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), r.getAppTimeout())
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("data-dir", "", "Data directory (overrides TD_DATA_DIR)")
	flags.String("storage", "", "Storage backend: json or sqlite (overrides TD_STORAGE)")
	flags.String("json-filename", "", "Task file name (overrides TD_JSON_FILENAME)")
	flags.String("db-filename", "", "SQLite file name (overrides TD_DB_FILENAME)")
	flags.String("settings-file", "", "Settings file (overrides TD_SETTINGS_FILE)")

	// Validation configuration
	flags.Int("task-name-max-length", 0, "Maximum task name length (overrides TD_VALIDATION_TASK_NAME_MAX)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TD_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TD_APP_VERBOSE)")

	// Commands configuration
	flags.String("list-format", "", "Default output format (overrides TD_LIST_DEFAULT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newAddCommand(),
		r.newDeleteCommand(),
		r.newCompleteCommand(),
		r.newListCommand(),
		r.newConfigCommand(),
		r.newImportCommand(),
	)
}

func (r *RootCommand) newAddCommand() *cobra.Command {
	var opts AddOptions
	cmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Add a task",
		Long:  "Add a task. Without --date the task is due at the end of today.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			opts.Name = strings.Join(args, " ")
			return NewAddCommand(r.app()).Execute(ctx, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Due date, DD-MM-YYYY or DD-MM-YYYY HH:MM with the default settings")
	cmd.Flags().StringVarP(&opts.Repeats, "repeats", "r", "", "Never, Daily, Weekly, Monthly, Yearly or days like Mon,Wed")
	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Group label")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Free text description")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Link for the task")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: json or plain")
	return cmd
}

func (r *RootCommand) newDeleteCommand() *cobra.Command {
	var (
		id     int64
		format string
	)
	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewDeleteCommand(r.app()).Execute(ctx, id, format)
		},
	}
	cmd.Flags().Int64VarP(&id, "id", "i", 0, "Task id")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or plain")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (r *RootCommand) newCompleteCommand() *cobra.Command {
	var (
		id     int64
		status string
		format string
	)
	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"toggle"},
		Short:   "Mark a task complete or incomplete",
		Long: `Mark a task complete or incomplete. The default status toggles.
Completing a recurring task adds its next occurrence as a new task.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewCompleteCommand(r.app()).Execute(ctx, id, status, format)
		},
	}
	cmd.Flags().Int64VarP(&id, "id", "i", 0, "Task id")
	cmd.Flags().StringVarP(&status, "status", "s", string(services.StatusToggle), "complete, incomplete or toggle")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or plain")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (r *RootCommand) newListCommand() *cobra.Command {
	var opts ListOptions
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List tasks",
		Long:    "List tasks grouped by day. Completed tasks are hidden unless --show-complete is set.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewListCommand(r.app()).Execute(ctx, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.ShowComplete, "show-complete", "a", false, "Include completed tasks")
	cmd.Flags().StringVar(&opts.Filter, "filter", "all", "all, today, past, today-and-past or next-24h")
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Only tasks due on this day")
	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Only tasks in this group, ignoring case")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: json or plain")
	return cmd
}

func (r *RootCommand) newConfigCommand() *cobra.Command {
	var (
		opts         ConfigOptions
		mode         string
		icons        string
		showComplete bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("mode") {
				opts.Mode = &mode
			}
			if cmd.Flags().Changed("icons") {
				opts.Icons = &icons
			}
			if cmd.Flags().Changed("show-complete") {
				opts.ShowComplete = &showComplete
			}
			return NewConfigCommand(r.app()).Execute(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Show, "show", false, "Print the settings")
	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "Restore the default settings")
	cmd.Flags().StringVar(&mode, "mode", "", "Key binding preset: vi or normal")
	cmd.Flags().StringVar(&icons, "icons", "", "Icon set: special or chars")
	cmd.Flags().BoolVar(&showComplete, "show-complete", true, "Show completed tasks in the interactive list")
	return cmd
}

func (r *RootCommand) newImportCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Import tasks from a YAML file",
		Long: `Import tasks from a YAML file, or stdin when the file is "-".
Every task is validated first; nothing is added if any task is invalid.

  tasks:
    - name: Pay rent
      date: 31-01-2024
      repeats: monthly
      group: Home`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()

			return NewImportCommand(r.app()).Execute(ctx, args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or plain")
	return cmd
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if v, _ := flags.GetString("data-dir"); v != "" {
		overrides.DataDir = &v
	}
	if v, _ := flags.GetString("storage"); v != "" {
		overrides.Storage = &v
	}
	if v, _ := flags.GetString("json-filename"); v != "" {
		overrides.JSONFilename = &v
	}
	if v, _ := flags.GetString("db-filename"); v != "" {
		overrides.DBFilename = &v
	}
	if v, _ := flags.GetString("settings-file"); v != "" {
		overrides.SettingsFile = &v
	}
	if v, _ := flags.GetInt("task-name-max-length"); v > 0 {
		overrides.TaskNameMaxLength = &v
	}
	if v, _ := flags.GetDuration("app-timeout"); v > 0 {
		overrides.Timeout = &v
	}
	if v, _ := flags.GetBool("verbose"); v {
		overrides.Verbose = &v
	}
	if v, _ := flags.GetString("list-format"); v != "" {
		overrides.ListDefaultFormat = &v
	}

	r.config.ApplyOverrides(overrides)
	return nil
}
