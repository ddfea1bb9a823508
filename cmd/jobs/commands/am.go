package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/jobs/am"
	"github.com/teranos/jobs/errors"
	"gopkg.in/yaml.v3"
)

func (a *app) newAmCmd() *cobra.Command {
	amCmd := &cobra.Command{
		Use:   "am",
		Short: "Inspect jobs configuration",
		Long: `am - inspect jobs configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags (--file, --banner, --no-clear)
2. Environment variables (JOBS_* prefix, e.g. JOBS_PATH, JOBS_DISPLAY_BANNER_TEXT)
3. Project config (./am.toml, searched up the directory tree)
4. User config (~/.jobs/am.toml)
5. System config (/etc/jobs/am.toml)
6. Default values

Examples:
  jobs am show                    # Show current configuration
  jobs am show --format json      # Show configuration in JSON format
  jobs am get jobs.path           # Get specific config value
  jobs am validate                # Validate current configuration
  jobs am where                   # List config files checked`,
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAmShow(cmd, format)
		},
	}
	showCmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., jobs.path, display.banner_text)",
		Args:  cobra.ExactArgs(1),
		RunE:  runAmGet,
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE:  a.runAmValidate,
	}

	whereCmd := &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Args:  cobra.NoArgs,
		RunE:  runAmWhere,
	}

	amCmd.AddCommand(showCmd, getCmd, validateCmd, whereCmd)
	return amCmd
}

func (a *app) runAmShow(cmd *cobra.Command, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		data, err := json.MarshalIndent(a.cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(a.cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# jobs configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(a.cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# jobs configuration\n%s", string(data))

	default:
		return errors.WithHint(
			errors.Newf("unsupported format: %s", format),
			"supported formats: toml, json, yaml")
	}

	return nil
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	if !am.GetViper().IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

func (a *app) runAmValidate(cmd *cobra.Command, args []string) error {
	if err := a.cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration is valid\n", pterm.Green("✓"))
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	for i, path := range am.ConfigPaths() {
		state := pterm.Gray("missing")
		if _, err := os.Stat(path); err == nil {
			state = pterm.Green("found")
		}
		fmt.Fprintf(out, "  %d. [FILE]     %s (%s)\n", i+2, path, state)
	}
	fmt.Fprintln(out, "  -  [ENV]      JOBS_* environment variables")
	fmt.Fprintln(out, "  -  [FLAGS]    --file, --banner, --no-clear")
	return nil
}
