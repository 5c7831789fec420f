// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package box

import (
	"strings"

	"github.com/matt-FFFFFF/termfx/style"
	"github.com/matt-FFFFFF/termfx/terminal"
	"github.com/matt-FFFFFF/termfx/textutil"
)

const (
	glyphTopLeft     = "┌"
	glyphTopRight    = "┐"
	glyphBottomLeft  = "└"
	glyphBottomRight = "┘"
	glyphVertical    = "│"
	glyphHorizontal  = "─"

	// Borders plus the one-space padding on each side of the content.
	frameWidth = 4
)

// Options configures a single Render call.
type Options struct {
	// Width is the content width text is wrapped to. Zero means the widest
	// line of the text, capped to the terminal width when interactive.
	Width int
	// Indent prefixes every rendered line.
	Indent string
	// Center centers each content line instead of left-aligning it.
	Center bool
	// BorderStyles is applied to border glyphs, left-to-right.
	BorderStyles []style.Style
	// TextStyles is applied to each content line, left-to-right.
	TextStyles []style.Style
}

// Engine renders boxes against one terminal.
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

// Render draws text inside a bordered box and returns it as a
// newline-terminated string.
func (e *Engine) Render(text string, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = e.naturalWidth(text, opts.Indent)
	}

	lines := strings.Split(textutil.Wrap(text, width), "\n")

	content := width
	if opts.Width <= 0 {
		// Unconstrained boxes hug their widest line.
		content = 0
		for _, line := range lines {
			if w := textutil.Width(line); w > content {
				content = w
			}
		}
	}

	sb := strings.Builder{}
	horizontal := strings.Repeat(glyphHorizontal, content+frameWidth-2)

	sb.WriteString(opts.Indent)
	sb.WriteString(style.Render(glyphTopLeft+horizontal+glyphTopRight, opts.BorderStyles...))
	sb.WriteString("\n")

	vertical := style.Render(glyphVertical, opts.BorderStyles...)

	for _, line := range lines {
		if opts.Center {
			line = textutil.Center(line, content)
		}

		styled := style.Render(line, opts.TextStyles...)

		sb.WriteString(opts.Indent)
		sb.WriteString(vertical)
		sb.WriteString(" ")
		sb.WriteString(textutil.PadRight(styled, content))
		sb.WriteString(" ")
		sb.WriteString(vertical)
		sb.WriteString("\n")
	}

	sb.WriteString(opts.Indent)
	sb.WriteString(style.Render(glyphBottomLeft+horizontal+glyphBottomRight, opts.BorderStyles...))
	sb.WriteString("\n")

	return sb.String()
}

// Write renders the box and writes it to the engine's terminal.
func (e *Engine) Write(text string, opts Options) {
	e.term.WriteOut([]byte(e.Render(text, opts)))
}

// naturalWidth is the wrap target when the caller did not fix one: the
// widest existing line, capped to what the terminal can show.
func (e *Engine) naturalWidth(text, indent string) int {
	widest := 0
	for _, line := range strings.Split(text, "\n") {
		if w := textutil.Width(line); w > widest {
			widest = w
		}
	}

	if widest == 0 {
		widest = 1
	}

	if e.term.IsInteractive() {
		if limit := e.term.Width() - 2*textutil.Width(indent) - frameWidth; limit >= 1 && widest > limit {
			widest = limit
		}
	}

	return widest
}
