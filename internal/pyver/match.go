// SPDX-License-Identifier: MPL-2.0

package pyver

import (
	"strconv"
	"strings"
)

// Matches reports whether a declared interpreter version satisfies the
// user-supplied specifier. Rules are tried in order, first match wins:
//
//  1. Exact string equality.
//  2. Dotted prefix: declared equals desired + "." + y for an integer
//     y in [0, 100), so "3.11" matches "3.11.4".
//  3. Dot-less prefix: with declared's dots removed, the result equals
//     desired + y for an integer y in [0, 100), so "311" matches "3.11.4"
//     (dot-less "3114", y=4) and "38" matches "3.8.10" (dot-less "3810",
//     y=10).
//
// Rule 3 is a plain string-concatenation check, which makes collisions
// across differently-placed dots possible: "31" matches declared "3.14"
// (dot-less "314", y=4). That surprising behavior is deliberate and must
// not be "fixed"; it is pinned by tests.
func Matches(desired, declared string) bool {
	if desired == declared {
		return true
	}
	if suffixIsSmallInt(declared, desired+".") {
		return true
	}
	dotless := strings.ReplaceAll(declared, ".", "")
	return suffixIsSmallInt(dotless, desired)
}

// suffixIsSmallInt reports whether s equals prefix followed by the literal
// decimal form of an integer in [0, 100). Leading zeros disqualify the
// suffix ("05" is not the literal form of 5).
func suffixIsSmallInt(s, prefix string) bool {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return false
	}
	y, err := strconv.Atoi(rest)
	if err != nil || y < 0 || y >= 100 {
		return false
	}
	return rest == strconv.Itoa(y)
}
