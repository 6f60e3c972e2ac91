// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"anypy/internal/config"
	"anypy/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug diagnostics
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// rootOverride replaces the configured interpreter install root
	rootOverride string

	// appConfig is the configuration resolved during initialization
	appConfig *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "anypy <version|all> [script args...]",
		Short: "Run a script under every installed Python version",
		Long: TitleStyle.Render("anypy") + SubtitleStyle.Render(" - a Python compatibility harness") + `

anypy discovers the Python interpreters installed under its scan root and
selects one by a fuzzy version specifier: "3.11" picks 3.11.x, the dot-less
"311" works too. The selected interpreter runs your script with all extra
arguments forwarded, and its exit code becomes anypy's own.

Passing 'all' instead runs the script under every installed version in
order and prints a summary table of exit codes and stdout fingerprints,
so behavioral divergence between versions is visible at a glance.

` + SubtitleStyle.Render("Examples:") + `
  anypy 3.11 script.py      Run script.py under Python 3.11.x
  anypy 311 script.py       Same selection, dot-less specifier
  anypy all script.py       Run under every installed version
  anypy list                List installed versions`,
		Args: cobra.ArbitraryArgs,
		RunE: runRoot,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <platform config dir>/anypy/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootOverride, "root", "", "interpreter install root (overrides config)")

	// Everything after the specifier belongs to the child script, including
	// flag-shaped arguments.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(listCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil {
		// Apply verbose from config if not set via flag
		if !verbose {
			verbose = cfg.UI.Verbose
		}
		if rootOverride != "" {
			cfg.Root = rootOverride
		}
		appConfig = cfg
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// currentConfig returns the resolved configuration, falling back to the
// built-in defaults when loading failed.
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render their remediation hints; verbose mode shows the full cause chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
