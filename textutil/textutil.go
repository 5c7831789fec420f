// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Width returns the display width of s in terminal columns.
// ANSI escape sequences contribute zero columns, wide runes two.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Strip returns s with all ANSI escape sequences removed.
func Strip(s string) string {
	return ansi.Strip(s)
}

// PadRight pads s with spaces so its display width is at least width.
// Strings already wider than width are returned unchanged.
func PadRight(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}

// Center pads s with spaces on both sides so its display width is width.
// When the slack is odd the extra space goes on the right. Strings already
// wider than width are returned unchanged.
func Center(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}

	left := (width - w) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Cut truncates s to at most width display columns without adding an
// ellipsis. The cut is rune-width aware so a trailing wide rune that would
// straddle the boundary is dropped rather than split.
func Cut(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var (
		sb strings.Builder
		w  int
	)

	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}

		sb.WriteRune(r)
		w += rw
	}

	return sb.String()
}

// SplitEscapes splits s into a run of leading ANSI escape sequences, the
// visible text, and a run of trailing escape sequences. Escapes embedded in
// the middle of the text stay with the text. The three parts concatenate
// back to s.
func SplitEscapes(s string) (lead, text, trail string) {
	i := 0
	for i < len(s) {
		n := escapeLen(s[i:])
		if n == 0 {
			break
		}

		i += n
	}

	lead = s[:i]
	rest := s[i:]

	// Walk the remainder recording the end of the last visible byte; anything
	// after it is a trailing escape run.
	j := 0
	lastVisible := 0

	for j < len(rest) {
		n := escapeLen(rest[j:])
		if n > 0 {
			j += n
			continue
		}

		j++
		lastVisible = j
	}

	return lead, rest[:lastVisible], rest[lastVisible:]
}

// escapeLen returns the byte length of the ANSI escape sequence at the start
// of s, or 0 if s does not start with one. Only CSI sequences (ESC '[' ...
// final byte in 0x40-0x7e) are recognized, which covers SGR styling.
func escapeLen(s string) int {
	if len(s) < 2 || s[0] != 0x1b || s[1] != '[' {
		return 0
	}

	for i := 2; i < len(s); i++ {
		c := s[i]
		if c >= 0x40 && c <= 0x7e {
			return i + 1
		}
	}

	return 0
}

// Wrap word-wraps s to the given display width. Existing newlines are
// preserved as paragraph breaks. Words wider than width are hard-cut.
// A non-positive width returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	var out []string

	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}

	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		wrapped []string
		current string
	)

	for _, word := range words {
		for Width(word) > width {
			// Hard-cut oversized words, flushing any partial line first.
			if current != "" {
				wrapped = append(wrapped, current)
				current = ""
			}

			head := Cut(word, width)
			if head == "" {
				// A wide rune that cannot fit in width columns; emit it
				// whole rather than loop.
				r := []rune(word)
				head = string(r[0])
			}

			wrapped = append(wrapped, head)
			word = word[len(head):]
		}

		switch {
		case current == "":
			current = word
		case Width(current)+1+Width(word) <= width:
			current += " " + word
		default:
			wrapped = append(wrapped, current)
			current = word
		}
	}

	if current != "" {
		wrapped = append(wrapped, current)
	}

	return wrapped
}
