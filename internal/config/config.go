// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"anypy/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "anypy"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config holds the resolved application configuration.
	Config struct {
		// Root is the directory scanned for interpreter installs.
		Root string
		// Pattern is the glob matched against interpreter directory names.
		Pattern string
		// Executable is the interpreter file name inside each directory.
		Executable string
		// UI holds presentation settings.
		UI UIConfig
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables debug diagnostics.
		Verbose bool
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Root:       defaultRoot(),
		Pattern:    "python-*-embed-*",
		Executable: defaultExecutable(),
	}
}

// ConfigDir returns the anypy configuration directory using platform
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration from defaults, the config file (if any),
// and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("pattern", defaults.Pattern)
	v.SetDefault("executable", defaults.Executable)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A custom config file path set via --config is used exclusively.
	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", configFilePathOverride)).
				BuildError()
		}
		if err := readConfigFile(v, configFilePathOverride); err != nil {
			return nil, err
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(path) {
			if err := readConfigFile(v, path); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Root:       v.GetString("root"),
		Pattern:    v.GetString("pattern"),
		Executable: v.GetString("executable"),
		UI: UIConfig{
			Verbose: v.GetBool("ui.verbose"),
		},
	}
	return cfg, nil
}

// readConfigFile loads a TOML config file into the viper instance.
func readConfigFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType(ConfigFileExt)
	if err := v.ReadInConfig(); err != nil {
		return issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Check that the file contains valid TOML syntax").
			WithSuggestion("Remove the file to fall back to built-in defaults").
			Wrap(err).
			BuildError()
	}
	return nil
}

// defaultRoot returns the platform default interpreter install root.
func defaultRoot() string {
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, AppName, "interpreters")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "."+AppName, "interpreters")
}

// defaultExecutable returns the interpreter file name for the host platform.
func defaultExecutable() string {
	if runtime.GOOS == "windows" {
		return "python.exe"
	}
	return "python"
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
