// SPDX-License-Identifier: MPL-2.0

// Package table renders pipe-delimited, column-aligned plain-text tables.
//
// The renderer is a pure function over an ordered row sequence: it performs
// no I/O and the same input always yields the same output string. A nil row
// is the separator sentinel and renders as a full-width dashed rule.
package table
