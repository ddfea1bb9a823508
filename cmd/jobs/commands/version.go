package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/jobs/errors"
	"github.com/teranos/jobs/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show jobs version information",
		Long:  `Display version, build time, commit hash, and platform information for the jobs binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			info := version.Get()

			if jsonOutput {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to format version info")
				}
				fmt.Fprintln(out, string(output))
				return nil
			}

			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	return cmd
}
