// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"github.com/matt-FFFFFF/termfx/textutil"
)

const (
	// columnFloor is the narrowest a column may shrink to: one glyph plus
	// the ellipsis.
	columnFloor = 2

	ellipsis = "…"
)

// autoFit returns rows with over-wide cells truncated so the rendered table
// fits within available columns. The widest column is shrunk first, one
// column at a time, and never below columnFloor; when every column is at
// the floor the table stays wider than available.
func autoFit(rows [][]string, cols, available int) [][]string {
	working := shrinkToFit(naturalWidths(rows, cols), available)

	out := make([][]string, len(rows))

	for i, row := range rows {
		out[i] = make([]string, len(row))

		for j, cell := range row {
			if j < cols && textutil.Width(cell) > working[j] {
				cell = truncateCell(cell, working[j])
			}

			out[i][j] = cell
		}
	}

	return out
}

// shrinkToFit decrements the widest column until the full rendered width
// (cell padding plus border glyphs) fits in available, or every column has
// reached the floor.
func shrinkToFit(widths []int, available int) []int {
	for renderedWidth(widths) > available {
		widest := 0
		for i := 1; i < len(widths); i++ {
			if widths[i] > widths[widest] {
				widest = i
			}
		}

		if widths[widest] <= columnFloor {
			break
		}

		widths[widest]--
	}

	return widths
}

// renderedWidth is the display width of a full table row: each column plus
// its two padding spaces, plus the cols+1 vertical border glyphs.
func renderedWidth(widths []int) int {
	total := len(widths) + 1
	for _, w := range widths {
		total += w + cellPadding
	}

	return total
}

// truncateCell cuts a cell to width display columns, ending with an
// ellipsis. Leading and trailing escape sequences survive the cut so a
// styled cell stays styled (and reset) after truncation.
func truncateCell(cell string, width int) string {
	lead, text, trail := textutil.SplitEscapes(cell)

	return lead + textutil.Cut(text, width-1) + ellipsis + trail
}
