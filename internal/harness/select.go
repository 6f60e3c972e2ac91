// SPDX-License-Identifier: MPL-2.0

package harness

import (
	"errors"
	"fmt"

	"anypy/internal/pyver"
)

// MinSpecifierLen is the minimum length of a usable version specifier.
// Anything shorter is a usage error, not a failed match.
const MinSpecifierLen = 2

// Sentinel errors wrapped by the typed selection errors below.
var (
	ErrUsage          = errors.New("invalid version specifier")
	ErrNoMatch        = errors.New("no matching interpreter")
	ErrAmbiguousMatch = errors.New("ambiguous version specifier")
)

type (
	// UsageError is returned when the specifier is missing or too short to
	// be meaningful.
	UsageError struct {
		Specifier string
	}

	// NoMatchError is returned when a specifier matches zero discovered
	// interpreters. Available carries the full candidate list so callers
	// can show the user what exists.
	NoMatchError struct {
		Specifier string
		Available []pyver.Descriptor
	}

	// AmbiguousMatchError is returned when a specifier matches more than
	// one interpreter. Matched carries every candidate that matched.
	AmbiguousMatchError struct {
		Specifier string
		Matched   []pyver.Descriptor
	}
)

// Error implements the error interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("version specifier %q is too short (need at least %d characters)", e.Specifier, MinSpecifierLen)
}

// Unwrap returns ErrUsage so callers can use errors.Is for programmatic detection.
func (e *UsageError) Unwrap() error { return ErrUsage }

// Error implements the error interface.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no interpreter matches version %q", e.Specifier)
}

// Unwrap returns ErrNoMatch so callers can use errors.Is for programmatic detection.
func (e *NoMatchError) Unwrap() error { return ErrNoMatch }

// Error implements the error interface.
func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("version %q matches %d interpreters", e.Specifier, len(e.Matched))
}

// Unwrap returns ErrAmbiguousMatch so callers can use errors.Is for programmatic detection.
func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguousMatch }

// CheckSpecifier validates that a specifier is long enough to use.
func CheckSpecifier(specifier string) error {
	if len(specifier) < MinSpecifierLen {
		return &UsageError{Specifier: specifier}
	}
	return nil
}

// Select picks the single interpreter whose declared version satisfies the
// specifier. Zero matches and multiple matches are both terminal errors;
// the returned error carries the candidate lists for remediation output.
func Select(descs []pyver.Descriptor, specifier string) (pyver.Descriptor, error) {
	var matched []pyver.Descriptor
	for _, d := range descs {
		if pyver.Matches(specifier, d.Version) {
			matched = append(matched, d)
		}
	}

	switch len(matched) {
	case 0:
		return pyver.Descriptor{}, &NoMatchError{Specifier: specifier, Available: descs}
	case 1:
		return matched[0], nil
	default:
		return pyver.Descriptor{}, &AmbiguousMatchError{Specifier: specifier, Matched: matched}
	}
}
