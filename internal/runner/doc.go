// SPDX-License-Identifier: MPL-2.0

// Package runner launches interpreter executables and records their outcome.
//
// A child's exit status is never treated as a failure here: non-zero exits
// are expected, reportable data. Only the inability to launch the executable
// at all surfaces as an error.
package runner
