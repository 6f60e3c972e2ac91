// SPDX-License-Identifier: MPL-2.0

// Package report aggregates execution records into the final summary.
//
// Aggregation is a two-pass finalize step: fingerprints are computed for
// every record first, then duplicate counts are derived from the whole
// batch, since a record's count depends on fingerprints of records that
// come after it. Input records are never mutated.
package report
