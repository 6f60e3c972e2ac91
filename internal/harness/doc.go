// SPDX-License-Identifier: MPL-2.0

// Package harness turns a version specifier into executions: it selects
// matching interpreters and drives the sequential batch run that feeds the
// summary report.
package harness
