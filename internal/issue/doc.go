// SPDX-License-Identifier: MPL-2.0

// Package issue provides errors that carry remediation context for
// user-facing output: what was being attempted, which resource was involved,
// and suggestions for fixing the problem.
package issue
