// SPDX-License-Identifier: MPL-2.0

// Package discovery finds installed interpreter executables on disk.
//
// Interpreters are expected to live in directories following the
// embeddable-build naming convention <prefix>-<version>-<suffix>, each
// containing the interpreter executable. The version string is taken from
// the directory name; no interpreter is ever invoked during discovery.
package discovery
