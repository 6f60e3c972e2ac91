// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"anypy/internal/discovery"
)

// listCmd prints every discovered interpreter version, sorted ascending.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed interpreter versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := currentConfig()
		descs, err := discovery.NewScanner(cfg.Root, cfg.Pattern, cfg.Executable).Scan()
		if err != nil {
			return err
		}

		if len(descs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(),
				SubtitleStyle.Render("no interpreters found under ")+CmdStyle.Render(cfg.Root))
			return nil
		}

		for _, d := range descs {
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.Version, d.Path)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Version)
		}
		return nil
	},
}
