// SPDX-License-Identifier: MPL-2.0

package pyver

import (
	"errors"
	"slices"
	"testing"
)

func TestNewDescriptor(t *testing.T) {
	t.Parallel()

	d, err := NewDescriptor("/opt/anypy/python-3.11.4-embed-amd64/python", "3.11.4")
	if err != nil {
		t.Fatalf("NewDescriptor: %v", err)
	}
	if got := d.Components(); !slices.Equal(got, []int{3, 11, 4}) {
		t.Errorf("Components() = %v, want [3 11 4]", got)
	}

	major, minor := d.MajorMinor()
	if major != 3 || minor != 11 {
		t.Errorf("MajorMinor() = %d.%d, want 3.11", major, minor)
	}
}

func TestNewDescriptorInvalidVersion(t *testing.T) {
	t.Parallel()

	_, err := NewDescriptor("/opt/anypy/python-3.x-embed-amd64/python", "3.x")
	if err == nil {
		t.Fatal("expected error for non-integer version segment")
	}
	if !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("expected ErrInvalidVersion in chain, got %v", err)
	}

	var invalidErr *InvalidVersionError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected *InvalidVersionError, got %T", err)
	}
	if invalidErr.Version != "3.x" {
		t.Errorf("expected Version %q, got %q", "3.x", invalidErr.Version)
	}
}

func TestComponentsReturnsCopy(t *testing.T) {
	t.Parallel()

	d, err := NewDescriptor("/opt/py", "3.8.10")
	if err != nil {
		t.Fatalf("NewDescriptor: %v", err)
	}

	comps := d.Components()
	comps[0] = 99
	if got := d.Components(); got[0] != 3 {
		t.Error("mutating the returned slice must not affect the descriptor")
	}
}

// TestSortIsNumeric guards against lexicographic ordering: 3.10 sorts after
// 3.8 even though "3.10" < "3.8" as strings.
func TestSortIsNumeric(t *testing.T) {
	t.Parallel()

	versions := []string{"3.10.2", "3.6.9", "3.8.10", "3.12.0"}
	descs := make([]Descriptor, 0, len(versions))
	for _, v := range versions {
		d, err := NewDescriptor("/opt/"+v, v)
		if err != nil {
			t.Fatalf("NewDescriptor(%q): %v", v, err)
		}
		descs = append(descs, d)
	}

	Sort(descs)

	want := []string{"3.6.9", "3.8.10", "3.10.2", "3.12.0"}
	for i, d := range descs {
		if d.Version != want[i] {
			t.Errorf("position %d: got %q, want %q", i, d.Version, want[i])
		}
	}
}
