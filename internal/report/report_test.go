// SPDX-License-Identifier: MPL-2.0

package report

import (
	"strings"
	"testing"

	"anypy/internal/pyver"
	"anypy/internal/runner"
	"anypy/internal/table"
)

func mustDescriptor(t *testing.T, path, version string) pyver.Descriptor {
	t.Helper()
	d, err := pyver.NewDescriptor(path, version)
	if err != nil {
		t.Fatalf("NewDescriptor(%q): %v", version, err)
	}
	return d
}

func TestFingerprintLengthAndStability(t *testing.T) {
	t.Parallel()

	fp := Fingerprint([]byte("hello\n"))
	if len(fp) != HashChars {
		t.Errorf("fingerprint length = %d, want %d", len(fp), HashChars)
	}
	if fp != Fingerprint([]byte("hello\n")) {
		t.Error("fingerprint must be deterministic for identical bytes")
	}
	if fp == Fingerprint([]byte("hello")) {
		t.Error("fingerprint must differ for different bytes")
	}
}

// TestFingerprintRawBytes guards against newline normalization or text
// decoding sneaking into the pipeline: CRLF and LF outputs must fingerprint
// differently.
func TestFingerprintRawBytes(t *testing.T) {
	t.Parallel()

	if Fingerprint([]byte("a\r\nb")) == Fingerprint([]byte("a\nb")) {
		t.Error("fingerprint must be computed over unmodified raw bytes")
	}
}

func TestFinalizeDuplicateCounts(t *testing.T) {
	t.Parallel()

	records := []*runner.Record{
		{Descriptor: mustDescriptor(t, "/opt/a", "3.6.9"), Stdout: []byte("a")},
		{Descriptor: mustDescriptor(t, "/opt/b", "3.8.10"), Stdout: []byte("a")},
		{Descriptor: mustDescriptor(t, "/opt/c", "3.10.2"), Stdout: []byte("b")},
	}

	entries := Finalize(records)

	want := []int{2, 2, 1}
	for i, e := range entries {
		if e.Duplicates != want[i] {
			t.Errorf("entry %d: Duplicates = %d, want %d", i, e.Duplicates, want[i])
		}
	}
	if entries[0].Fingerprint != entries[1].Fingerprint {
		t.Error("identical outputs must share a fingerprint")
	}
	if entries[0].Fingerprint == entries[2].Fingerprint {
		t.Error("differing outputs must not share a fingerprint")
	}
}

func TestFinalizePreservesOrderAndInput(t *testing.T) {
	t.Parallel()

	records := []*runner.Record{
		{Descriptor: mustDescriptor(t, "/opt/b", "3.8.10"), ExitCode: 1, Stdout: []byte("x")},
		{Descriptor: mustDescriptor(t, "/opt/a", "3.6.9"), Stdout: []byte("y")},
	}

	entries := Finalize(records)

	if entries[0].Record.Descriptor.Path != "/opt/b" || entries[1].Record.Descriptor.Path != "/opt/a" {
		t.Error("Finalize must preserve input order, not sort")
	}
	if records[0].ExitCode != 1 {
		t.Error("Finalize must not mutate input records")
	}
}

func TestNoteFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    string
	}{
		{"3.8.10", " Ubuntu 20 "},
		{"3.10.2", " Ubuntu 22 "},
		{"3.5.4", " no f-strings "},
		{"3.9.18", ""},
	}

	for _, tt := range tests {
		d := mustDescriptor(t, "/opt/py", tt.version)
		if got := NoteFor(d); got != tt.want {
			t.Errorf("NoteFor(%s) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestTableRowsLayout(t *testing.T) {
	t.Parallel()

	records := []*runner.Record{
		{Descriptor: mustDescriptor(t, "/opt/py/python", "3.8.10"), ExitCode: 2, Stdout: []byte("out")},
	}
	rows := TableRows(Finalize(records))

	if len(rows) != 3 {
		t.Fatalf("expected header + separator + 1 data row, got %d rows", len(rows))
	}
	if rows[1] != nil {
		t.Error("second row must be the separator sentinel")
	}
	header := rows[0]
	if header[0] != " Executable " || header[5] != " # " {
		t.Errorf("unexpected header cells: %v", header)
	}
	if !strings.Contains(header[3], "35 chars of SHA512") {
		t.Errorf("hash header must name the fingerprint width, got %q", header[3])
	}

	data := rows[2]
	if data[0] != " /opt/py/python " {
		t.Errorf("executable cell = %q", data[0])
	}
	if data[1] != "3.8.10 " {
		t.Errorf("version cell = %q", data[1])
	}
	if data[2] != "2 " {
		t.Errorf("code cell = %q", data[2])
	}
	if data[4] != " Ubuntu 20 " {
		t.Errorf("note cell = %q", data[4])
	}
	if data[5] != " 1" {
		t.Errorf("count cell = %q", data[5])
	}
}

// TestTableRowsRenderEndToEnd exercises the rows through the renderer the
// way the harness does, checking alignment survives the trip.
func TestTableRowsRenderEndToEnd(t *testing.T) {
	t.Parallel()

	records := []*runner.Record{
		{Descriptor: mustDescriptor(t, "/opt/py/python-a", "3.6.9"), Stdout: []byte("same")},
		{Descriptor: mustDescriptor(t, "/opt/py/python-b", "3.12.0"), Stdout: []byte("same")},
	}

	out := table.Render(TableRows(Finalize(records)), RightJustified())
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rendered lines, got %d", len(lines))
	}
	for i, line := range lines[1:] {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d width %d differs from header width %d", i+1, len(line), len(lines[0]))
		}
	}
	if !strings.Contains(lines[2], " 2") || !strings.Contains(lines[3], " 2") {
		t.Error("both rows should report duplicate count 2")
	}
}
