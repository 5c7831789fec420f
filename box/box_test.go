// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package box

import (
	"strings"
	"testing"

	"github.com/matt-FFFFFF/termfx/style"
	"github.com/matt-FFFFFF/termfx/terminal"
	"github.com/matt-FFFFFF/termfx/textutil"
	"github.com/stretchr/testify/assert"
)

func TestRenderBasic(t *testing.T) {
	e := New(terminal.NewBuffer(true, 80))

	out := e.Render("hello", Options{})

	want := strings.Join([]string{
		"┌───────┐",
		"│ hello │",
		"└───────┘",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderWrapsToWidth(t *testing.T) {
	e := New(terminal.NewBuffer(true, 80))

	out := e.Render("one two three", Options{Width: 7})

	want := strings.Join([]string{
		"┌─────────┐",
		"│ one two │",
		"│ three   │",
		"└─────────┘",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderCenter(t *testing.T) {
	e := New(terminal.NewBuffer(true, 80))

	out := e.Render("hi", Options{Width: 6, Center: true})

	assert.Contains(t, out, "│   hi   │")
}

func TestRenderIndent(t *testing.T) {
	e := New(terminal.NewBuffer(true, 80))

	out := e.Render("x", Options{Indent: "  "})

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), "line %q should carry the indent", line)
	}
}

func TestRenderStyles(t *testing.T) {
	mark := func(open, close string) style.Style {
		return style.Func(func(s string) string { return open + s + close })
	}

	e := New(terminal.NewBuffer(true, 80))

	out := e.Render("hi", Options{
		BorderStyles: []style.Style{mark("<b>", "</b>")},
		TextStyles:   []style.Style{mark("<t>", "</t>")},
	})

	assert.Contains(t, out, "<b>│</b>")
	assert.Contains(t, out, "<t>hi</t>")
	assert.Contains(t, out, "<b>┌────┐</b>")
}

func TestRenderCapsToTerminalWidth(t *testing.T) {
	e := New(terminal.NewBuffer(true, 20))

	out := e.Render("a rather long sentence that cannot fit on one line", Options{})

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, textutil.Width(line), 20, "line %q", line)
	}
}

func TestRenderMultiParagraph(t *testing.T) {
	e := New(terminal.NewBuffer(true, 80))

	out := e.Render("first\nsecond line", Options{})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	width := textutil.Width(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, textutil.Width(line))
	}
}

func TestWrite(t *testing.T) {
	term := terminal.NewBuffer(true, 80)
	e := New(term)

	e.Write("hi", Options{})

	assert.Contains(t, term.Out(), "│ hi │")
}
