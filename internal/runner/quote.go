// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// QuoteCommand renders an argument vector as a single copy-paste-safe shell
// command line. Words that cannot be represented in POSIX shell syntax
// (e.g. invalid UTF-8) fall back to Go-style quoting.
func QuoteCommand(argv []string) string {
	words := make([]string, 0, len(argv))
	for _, arg := range argv {
		word, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			word = strconv.Quote(arg)
		}
		words = append(words, word)
	}
	return strings.Join(words, " ")
}
