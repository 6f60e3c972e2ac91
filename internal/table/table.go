// SPDX-License-Identifier: MPL-2.0

package table

import "strings"

// Row is an ordered sequence of string cells. A nil Row marks a separator.
type Row []string

// Separator is the sentinel row rendered as a dashed rule spanning every
// column computed from the other rows.
var Separator Row

// Render formats rows into a pipe-delimited table. Each column's width is
// the maximum cell width at that index across all non-separator rows; rows
// with fewer cells than others are tolerated and render only the cells they
// have. Columns listed in rightJustified are left-padded, all others are
// right-padded. Rows are joined with newlines; row order is preserved.
func Render(rows []Row, rightJustified map[int]bool) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, make([]int, i+1-len(widths))...)
			}
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for ri, row := range rows {
		if ri > 0 {
			b.WriteByte('\n')
		}
		if row == nil {
			for i, width := range widths {
				if i > 0 {
					b.WriteByte('|')
				}
				b.WriteString(strings.Repeat("-", width))
			}
			continue
		}
		for i, cell := range row {
			if i > 0 {
				b.WriteByte('|')
			}
			pad := strings.Repeat(" ", widths[i]-len(cell))
			if rightJustified[i] {
				b.WriteString(pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(pad)
			}
		}
	}
	return b.String()
}
