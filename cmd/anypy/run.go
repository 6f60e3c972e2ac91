// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"anypy/internal/discovery"
	"anypy/internal/harness"
	"anypy/internal/pyver"
	"anypy/internal/runner"
)

// runRoot resolves the version specifier into either a batch run over every
// discovered interpreter or a single run whose exit code is forwarded.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	descs, err := discovery.NewScanner(cfg.Root, cfg.Pattern, cfg.Executable).Scan()
	if err != nil {
		return err
	}

	var specifier string
	if len(args) > 0 {
		specifier = args[0]
	}
	if err := harness.CheckSpecifier(specifier); err != nil {
		printVersionList(cmd.ErrOrStderr(),
			"Pass version (2+ chars) or 'all' and any extra arguments, available versions:", descs)
		return exitSilently(cmd, 1)
	}
	extra := args[1:]

	r := &runner.Runner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}

	if specifier == "all" {
		return harness.New(r, cmd.OutOrStdout()).RunAll(cmd.Context(), descs, extra)
	}

	desc, err := harness.Select(descs, specifier)
	if err != nil {
		var noMatch *harness.NoMatchError
		var ambiguous *harness.AmbiguousMatchError
		switch {
		case errors.As(err, &noMatch):
			printVersionList(cmd.ErrOrStderr(), "Found no matching exes, available versions:", noMatch.Available)
		case errors.As(err, &ambiguous):
			printVersionList(cmd.ErrOrStderr(), "Found more than one matching version:", ambiguous.Matched)
		default:
			return err
		}
		return exitSilently(cmd, 1)
	}

	code, err := r.Exec(cmd.Context(), desc, extra)
	if err != nil {
		return err
	}
	if !code.IsSuccess() {
		return exitSilently(cmd, code)
	}
	return nil
}

// printVersionList writes a remediation heading followed by the declared
// version of every listed candidate, one per line.
func printVersionList(w io.Writer, heading string, descs []pyver.Descriptor) {
	fmt.Fprintln(w, WarningStyle.Render(heading))
	for _, d := range descs {
		fmt.Fprintln(w, d.Version)
	}
}

// exitSilently suppresses cobra's error rendering and turns code into the
// process exit status via ExitError.
func exitSilently(cmd *cobra.Command, code runner.ExitCode) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: code}
}
