// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// Note: config tests mutate package-level overrides and the environment,
// so they do not run in parallel.

func TestLoadDefaults(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root == "" {
		t.Error("expected a non-empty default root")
	}
	if cfg.Pattern != "python-*-embed-*" {
		t.Errorf("Pattern = %q, want the embeddable-build glob", cfg.Pattern)
	}
	if cfg.Executable == "" {
		t.Error("expected a non-empty default executable name")
	}
	if cfg.UI.Verbose {
		t.Error("verbose must default to off")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	content := "root = \"/srv/interpreters\"\n\n[ui]\nverbose = true\n"
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != "/srv/interpreters" {
		t.Errorf("Root = %q, want /srv/interpreters", cfg.Root)
	}
	if !cfg.UI.Verbose {
		t.Error("expected verbose from config file")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Pattern != "python-*-embed-*" {
		t.Errorf("Pattern = %q, want default", cfg.Pattern)
	}
}

func TestLoadConfigFileOverride(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("pattern = \"cpython-*\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigFilePathOverride(path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pattern != "cpython-*" {
		t.Errorf("Pattern = %q, want cpython-*", cfg.Pattern)
	}
}

func TestLoadMissingOverrideFileFails(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "nope.toml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing --config file")
	}
}

func TestLoadMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte("root = [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)
	t.Setenv("ANYPY_ROOT", "/env/interpreters")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != "/env/interpreters" {
		t.Errorf("Root = %q, want env override /env/interpreters", cfg.Root)
	}
}
