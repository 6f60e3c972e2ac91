// SPDX-License-Identifier: MPL-2.0

// Package pyver models discovered Python interpreters and implements the
// fuzzy version matching used to select them.
//
// A Descriptor pairs an interpreter's executable path with the version
// string extracted from its install directory. Matching against a
// user-supplied specifier is intentionally loose: "3.11" selects "3.11.4"
// and the dot-less form "311" does too. See Matches for the exact rules
// and their known quirks.
package pyver
