// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/termfx/style"
	"github.com/matt-FFFFFF/termfx/terminal"
	"github.com/matt-FFFFFF/termfx/textutil"
)

// Degraded-input findings returned (wrapped) by Render.
var (
	// ErrRaggedRow indicates a row with a cell count different from the header.
	ErrRaggedRow = errors.New("table: ragged row")
	// ErrMultilineCell indicates a cell containing a newline.
	ErrMultilineCell = errors.New("table: cell contains newline")
)

// Box-drawing glyphs, standard grid conventions.
const (
	glyphTopLeft     = "┌"
	glyphTopJoin     = "┬"
	glyphTopRight    = "┐"
	glyphMidLeft     = "├"
	glyphMidJoin     = "┼"
	glyphMidRight    = "┤"
	glyphBottomLeft  = "└"
	glyphBottomJoin  = "┴"
	glyphBottomRight = "┘"
	glyphVertical    = "│"
	glyphHorizontal  = "─"

	// cellPadding is the two spaces wrapping every cell's content.
	cellPadding = 2
)

// Options configures a single Render call.
type Options struct {
	// HeaderStyles is applied to each header cell, left-to-right.
	HeaderStyles []style.Style
	// TextStyles is applied to each body cell, left-to-right.
	TextStyles []style.Style
	// BorderStyles is applied to border glyphs, left-to-right.
	BorderStyles []style.Style
	// Indent prefixes every rendered line.
	Indent string
	// AutoFit shrinks columns to the terminal width.
	AutoFit bool
}

// Engine renders tables against one terminal. It keeps no per-call state.
type Engine struct {
	term terminal.Adapter
}

// New returns an Engine bound to the given terminal. A nil terminal means
// the process's real one.
func New(term terminal.Adapter) *Engine {
	if term == nil {
		term = terminal.OS()
	}

	return &Engine{term: term}
}

// Render produces the bordered table as a newline-terminated string. The
// first row is the header. Degraded input (ragged rows, embedded newlines)
// still renders; the findings are aggregated into the returned error.
func (e *Engine) Render(rows [][]string, opts Options) (string, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", nil
	}

	cols := len(rows[0])
	err := validate(rows, cols)

	if opts.AutoFit && e.term.IsInteractive() {
		available := e.term.Width() - cellPadding*textutil.Width(opts.Indent)
		if available >= 1 {
			rows = autoFit(rows, cols, available)
		}
	}

	widths := naturalWidths(rows, cols)
	for i := range widths {
		widths[i] += cellPadding
	}

	sb := strings.Builder{}

	writeBorder(&sb, widths, opts, glyphTopLeft, glyphTopJoin, glyphTopRight)
	writeCells(&sb, rows[0], widths, opts, opts.HeaderStyles)
	writeBorder(&sb, widths, opts, glyphMidLeft, glyphMidJoin, glyphMidRight)

	for _, row := range rows[1:] {
		writeCells(&sb, row, widths, opts, opts.TextStyles)
	}

	writeBorder(&sb, widths, opts, glyphBottomLeft, glyphBottomJoin, glyphBottomRight)

	return sb.String(), err
}

// Write renders the table and writes it to the engine's terminal.
// The degraded-input error is returned as from Render.
func (e *Engine) Write(rows [][]string, opts Options) error {
	out, err := e.Render(rows, opts)
	e.term.WriteOut([]byte(out))

	return err
}

func validate(rows [][]string, cols int) error {
	var err *multierror.Error

	for i, row := range rows {
		if len(row) != cols {
			err = multierror.Append(err, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, i, len(row), cols))
		}

		for j, cell := range row {
			if strings.Contains(cell, "\n") {
				err = multierror.Append(err, fmt.Errorf("%w: row %d column %d", ErrMultilineCell, i, j))
			}
		}
	}

	return err.ErrorOrNil()
}

// naturalWidths returns the max display width per column across all rows.
func naturalWidths(rows [][]string, cols int) []int {
	widths := make([]int, cols)

	for _, row := range rows {
		for i, cell := range row {
			if i >= cols {
				break
			}

			if w := textutil.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

func writeBorder(sb *strings.Builder, widths []int, opts Options, left, join, right string) {
	line := strings.Builder{}
	line.WriteString(left)

	for i, w := range widths {
		if i > 0 {
			line.WriteString(join)
		}

		line.WriteString(strings.Repeat(glyphHorizontal, w))
	}

	line.WriteString(right)

	sb.WriteString(opts.Indent)
	sb.WriteString(style.Render(line.String(), opts.BorderStyles...))
	sb.WriteString("\n")
}

func writeCells(sb *strings.Builder, row []string, widths []int, opts Options, cellStyles []style.Style) {
	vertical := style.Render(glyphVertical, opts.BorderStyles...)

	sb.WriteString(opts.Indent)
	sb.WriteString(vertical)

	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}

		styled := style.Render(" "+cell, cellStyles...)
		sb.WriteString(textutil.PadRight(styled, w))
		sb.WriteString(vertical)
	}

	sb.WriteString("\n")
}
