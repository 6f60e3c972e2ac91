// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for anypy.
//
// This package implements the Cobra command hierarchy: the root command
// that resolves a version specifier into a single run or a batch run, and
// the list subcommand for inspecting discovered interpreters.
package cmd
