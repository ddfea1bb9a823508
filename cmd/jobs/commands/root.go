package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/teranos/jobs/am"
	"github.com/teranos/jobs/errors"
	"github.com/teranos/jobs/logger"
	"github.com/teranos/jobs/version"
)

// app carries state resolved once per invocation by PersistentPreRunE
type app struct {
	cfg       *am.Config
	verbosity int
}

// NewRootCmd builds the jobs command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Show your job applications",
		Long: `jobs - job applications at a glance.

Prints a banner followed by a table of every stored application, with the
status column colored: Accepted (green), Applied (yellow), Rejected (red).

Examples:
  jobs                          # Show the table
  jobs -f ~/notes/jobs.yaml     # Read another file (json, yaml or toml)
  jobs watch                    # Redraw whenever the file changes
  jobs am show                  # Show current configuration`,
		Version:           version.Get().String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runShow,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity on stderr (-v, -vv)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Jobs file to read (overrides jobs.path)")
	rootCmd.PersistentFlags().String("banner", "", "Banner text (overrides display.banner_text)")
	rootCmd.PersistentFlags().Bool("no-clear", false, "Don't clear the screen before drawing")

	rootCmd.AddCommand(a.newWatchCmd())
	rootCmd.AddCommand(a.newAmCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration, applies flag overrides and initializes the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// Flags are set on the viper instance so `am get` sees them too
	v := am.GetViper()
	flags := cmd.Flags()
	if flags.Changed("file") {
		path, _ := flags.GetString("file")
		v.Set("jobs.path", path)
	}
	if flags.Changed("banner") {
		banner, _ := flags.GetString("banner")
		v.Set("display.banner_text", banner)
	}
	if noClear, _ := flags.GetBool("no-clear"); noClear {
		v.Set("display.clear_screen", false)
	}

	cfg, err := am.LoadWithViper(v)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	a.verbosity, _ = flags.GetCount("verbose")
	a.cfg = cfg

	if err := logger.Initialize(logger.Options{
		Verbosity: a.verbosity,
		JSON:      cfg.Log.JSON,
		Theme:     cfg.Log.Theme,
		Output:    cmd.ErrOrStderr(),
	}); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	logger.Infow("Configuration loaded",
		logger.FieldPath, cfg.JobsPath(),
		"verbosity", logger.LevelName(a.verbosity))
	return nil
}

// PrintError writes err and any attached hints for the user
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
