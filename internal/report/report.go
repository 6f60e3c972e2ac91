// SPDX-License-Identifier: MPL-2.0

package report

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strconv"

	"anypy/internal/runner"
	"anypy/internal/table"
)

// HashChars is the number of leading hex digest characters kept as the
// stdout fingerprint.
const HashChars = 35

// Entry is a finalized execution record: the raw runner outcome plus the
// batch-derived annotations.
type Entry struct {
	Record      *runner.Record
	Fingerprint string
	Note        string
	// Duplicates is the number of entries in the batch sharing this entry's
	// fingerprint, including the entry itself.
	Duplicates int
}

// Fingerprint returns the first HashChars hex characters of the SHA-512
// digest over the raw stdout bytes.
func Fingerprint(stdout []byte) string {
	sum := sha512.Sum512(stdout)
	return hex.EncodeToString(sum[:])[:HashChars]
}

// Finalize derives the batch annotations for an ordered record sequence.
// Fingerprints and notes are computed per record in a first pass; duplicate
// counts need the whole batch and are filled in a second pass.
func Finalize(records []*runner.Record) []Entry {
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = Entry{
			Record:      rec,
			Fingerprint: Fingerprint(rec.Stdout),
			Note:        NoteFor(rec.Descriptor),
		}
	}

	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Fingerprint]++
	}
	for i := range entries {
		entries[i].Duplicates = counts[entries[i].Fingerprint]
	}
	return entries
}

// RightJustified returns the summary table's right-justified column indices:
// Version, Code, and Stdout-Hash.
func RightJustified() map[int]bool {
	return map[int]bool{1: true, 2: true, 3: true}
}

// TableRows builds the summary table: header, separator, then one data row
// per entry in input order. Cell padding matches the transcript format the
// harness has always produced (notes carry their own padding).
func TableRows(entries []Entry) []table.Row {
	rows := make([]table.Row, 0, len(entries)+2)
	rows = append(rows, table.Row{
		" Executable ",
		" Version ",
		"Code",
		fmt.Sprintf(" Stdout Hash %d chars of SHA512 ", HashChars),
		" Note",
		" # ",
	})
	rows = append(rows, table.Separator)

	for _, e := range entries {
		rows = append(rows, table.Row{
			" " + e.Record.Descriptor.Path + " ",
			e.Record.Descriptor.Version + " ",
			e.Record.ExitCode.String() + " ",
			" " + e.Fingerprint + " ",
			e.Note,
			" " + strconv.Itoa(e.Duplicates),
		})
	}
	return rows
}
