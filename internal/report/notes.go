// SPDX-License-Identifier: MPL-2.0

package report

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"anypy/internal/pyver"
)

//go:embed notes.toml
var notesTOML []byte

// versionNotes maps "major.minor" to a platform-support note. It is decoded
// once at startup and treated as read-only afterwards.
var versionNotes = mustLoadNotes()

type notesDocument struct {
	Notes map[string]string `toml:"notes"`
}

func mustLoadNotes() map[string]string {
	var doc notesDocument
	if err := toml.Unmarshal(notesTOML, &doc); err != nil {
		panic(fmt.Sprintf("report: embedded notes.toml is malformed: %v", err))
	}
	return doc.Notes
}

// NoteFor returns the platform-support note for the descriptor's major.minor
// version pair, or the empty string when none is recorded.
func NoteFor(d pyver.Descriptor) string {
	major, minor := d.MajorMinor()
	return versionNotes[fmt.Sprintf("%d.%d", major, minor)]
}
