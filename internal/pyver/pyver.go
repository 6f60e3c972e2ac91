// SPDX-License-Identifier: MPL-2.0

package pyver

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid version")

type (
	// Descriptor identifies one discovered interpreter executable. It is
	// immutable after construction; the parsed version components are kept
	// private and exposed only through accessors.
	Descriptor struct {
		// Path is the absolute path to the interpreter executable.
		Path string
		// Version is the version string declared by the install directory,
		// e.g. "3.11.4".
		Version string

		components []int
	}

	// InvalidVersionError is returned when a version string cannot be parsed
	// into dot-separated integer components.
	InvalidVersionError struct {
		Version string
	}
)

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q (expected dot-separated integers)", e.Version)
}

// Unwrap returns ErrInvalidVersion so callers can use errors.Is for programmatic detection.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// NewDescriptor creates a Descriptor, parsing the version string into integer
// components for ordering. The components are used only for sorting, never
// for matching.
func NewDescriptor(path, version string) (Descriptor, error) {
	comps, err := parseComponents(version)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{Path: path, Version: version, components: comps}, nil
}

// Components returns a copy of the parsed integer version components.
func (d Descriptor) Components() []int {
	return slices.Clone(d.components)
}

// MajorMinor returns the first two version components. Missing components
// default to zero.
func (d Descriptor) MajorMinor() (major, minor int) {
	if len(d.components) > 0 {
		major = d.components[0]
	}
	if len(d.components) > 1 {
		minor = d.components[1]
	}
	return major, minor
}

// Sort orders descriptors ascending by their version components.
func Sort(descs []Descriptor) {
	slices.SortFunc(descs, func(a, b Descriptor) int {
		return slices.Compare(a.components, b.components)
	})
}

// parseComponents splits a version string on "." and parses every segment as
// an integer.
func parseComponents(version string) ([]int, error) {
	segments := strings.Split(version, ".")
	comps := make([]int, 0, len(segments))
	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil {
			return nil, &InvalidVersionError{Version: version}
		}
		comps = append(comps, n)
	}
	return comps, nil
}
