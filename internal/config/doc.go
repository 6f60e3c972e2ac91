// SPDX-License-Identifier: MPL-2.0

// Package config loads the anypy configuration from defaults, an optional
// TOML config file in the platform config directory, and ANYPY_* environment
// variables, in ascending precedence.
package config
