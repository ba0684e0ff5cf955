// Package cli wires the calnote commands: the calendar TUI on the root
// command plus grid and version subcommands.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calnote/internal/calendar"
	"calnote/internal/config"
	"calnote/internal/logs"
	"calnote/internal/tui"
)

// ErrNotATerminal is returned when the TUI is started without a terminal on stdin
var ErrNotATerminal = errors.New("calnote needs an interactive terminal; try `calnote grid`")

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	flags        config.CLIFlags
	strictTitles bool

	cfg *config.Config
}

func (o *rootOptions) addFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.flags.ConfigFile, "config", "c", "", "Config file (default ~/.config/calnote/config.yaml)")
	pf.StringVar(&o.flags.MinDate, "min-date", "", "Earliest navigable date (yyyy-MM-dd)")
	pf.StringVar(&o.flags.MaxDate, "max-date", "", "Latest navigable date (yyyy-MM-dd)")
	pf.StringVarP(&o.flags.WeekStart, "week-start", "w", "", "First day of the week (sunday, monday, ...)")
	pf.StringVar(&o.flags.ExportDir, "export-dir", "", "Directory for exported notes")
	pf.StringVar(&o.flags.ExportFormat, "export-format", "", "Export format: md, html or ics")
	pf.StringVar(&o.flags.LogDir, "log-dir", "", "Directory for debug.log")
	pf.BoolVar(&o.strictTitles, "strict-titles", false, "Reject notes with a blank title")
}

// load resolves the configuration once the flags are parsed
func (o *rootOptions) load(cmd *cobra.Command) error {
	flags := o.flags
	if cmd.Flags().Changed("strict-titles") {
		strict := o.strictTitles
		flags.StrictTitles = &strict
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// New builds the calnote command tree
func New() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "calnote",
		Short: "A month calendar with notes attached to days.",
		Long: `calnote shows a month calendar in the terminal. Pick a day, add notes to it,
edit or delete them, and export everything as markdown, HTML or iCalendar.`,
		Example: `
calnote
calnote --week-start monday
calnote grid 2024-03
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(opts.cfg)
		},
	}

	opts.addFlags(cmd)
	addGrid(cmd, opts)
	addVersion(cmd)
	return cmd
}

func runTUI(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotATerminal
	}

	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		logs.Logger.Printf("Warning: could not create config file: %v", err)
	}

	logs.Logger.Println("Starting app in TUI mode")
	p := tea.NewProgram(tui.NewAppModel(cfg, calendar.Today()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the command tree and exits non-zero on failure
func Execute() {
	loadDotEnv(os.Stderr)
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
