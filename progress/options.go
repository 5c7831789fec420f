// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"strings"
	"time"

	"github.com/matt-FFFFFF/termfx/style"
)

// Element identifies a styled segment of the rendered line.
type Element int

// Styled line segments.
const (
	ElementSpinner Element = iota
	ElementBraces
	ElementBar
	ElementIndeterminate
	ElementPct
	ElementRemain
	ElementText

	elementCount
)

// Default glyph sets. The ASCII set is substituted for any glyph group the
// caller did not override when unicode output is disabled.
var (
	defaultSpinner = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	defaultBraces  = [2]string{"▕", "▏"}
	defaultFilling = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉"}
	defaultFilled  = "█"

	asciiSpinner = []string{"|", "/", "-", "\\"}
	asciiBraces  = [2]string{"[", "]"}
	asciiFilling = []string{".", ":"}
	asciiFilled  = "#"
)

const (
	defaultWidth = 20
	defaultFreq  = 100 * time.Millisecond
	defaultMax   = 1.0
)

// config is the merged session configuration. It is rebuilt from defaults
// on every Start and cleared on End.
type config struct {
	amount float64
	max    float64
	text   string
	width  int
	indent string
	freq   time.Duration

	color   bool
	unicode bool
	pct     bool
	remain  bool
	quiet   bool

	spinner []string
	braces  [2]string
	filling []string
	filled  string

	// Caller-override markers, consulted by the ASCII substitution.
	spinnerSet bool
	bracesSet  bool
	fillingSet bool
	filledSet  bool

	styles [elementCount][]style.Style

	catchInt  bool
	catchTerm bool
	exitOnSig bool
}

func defaultConfig() config {
	c := config{
		max:     defaultMax,
		width:   defaultWidth,
		freq:    defaultFreq,
		color:   true,
		unicode: true,
		pct:     true,
		remain:  true,
		spinner: defaultSpinner,
		braces:  defaultBraces,
		filling: defaultFilling,
		filled:  defaultFilled,
	}

	c.styles[ElementSpinner] = []style.Style{style.MustNamed("cyan")}
	c.styles[ElementBar] = []style.Style{style.MustNamed("green")}
	c.styles[ElementIndeterminate] = []style.Style{style.MustNamed("yellow")}
	c.styles[ElementPct] = []style.Style{style.MustNamed("bold")}
	c.styles[ElementRemain] = []style.Style{style.MustNamed("faint")}

	return c
}

// normalize applies the post-merge rules: color off clears every style
// list, unicode off substitutes the ASCII glyph set for non-overridden
// groups, and the amount is clamped into [0, max].
func (c *config) normalize() {
	if !c.color {
		c.styles = [elementCount][]style.Style{}
	}

	if !c.unicode {
		if !c.spinnerSet {
			c.spinner = asciiSpinner
		}

		if !c.bracesSet {
			c.braces = asciiBraces
		}

		if !c.fillingSet {
			c.filling = asciiFilling
		}

		if !c.filledSet {
			c.filled = asciiFilled
		}
	}

	c.amount = clamp(c.amount, 0, c.max)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// Option configures a session at Start, or amends it via UpdateOptions.
type Option func(*config)

// WithAmount sets the initial progress amount.
func WithAmount(amount float64) Option {
	return func(c *config) {
		c.amount = amount
	}
}

// WithMax sets the progress ceiling. Non-positive values are ignored.
func WithMax(max float64) Option {
	return func(c *config) {
		if max > 0 {
			c.max = max
		}
	}
}

// WithText sets the trailing annotation, trimmed of surrounding space.
func WithText(text string) Option {
	return func(c *config) {
		c.text = strings.TrimSpace(text)
	}
}

// WithWidth sets the bar character width. Non-positive values are ignored.
func WithWidth(width int) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
	}
}

// WithIndent sets the line indent. Hard tabs break the fixed-width
// overwrite logic, so each one becomes four spaces.
func WithIndent(indent string) Option {
	return func(c *config) {
		c.indent = strings.ReplaceAll(indent, "\t", "    ")
	}
}

// WithIndentWidth sets the indent as a count of spaces.
func WithIndentWidth(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.indent = strings.Repeat(" ", n)
		}
	}
}

// WithFreq sets the redraw interval. Non-positive values are ignored.
func WithFreq(freq time.Duration) Option {
	return func(c *config) {
		if freq > 0 {
			c.freq = freq
		}
	}
}

// WithoutColor clears every element style list.
func WithoutColor() Option {
	return func(c *config) {
		c.color = false
	}
}

// WithoutUnicode substitutes the plain-ASCII glyph set for any glyph group
// the caller has not overridden.
func WithoutUnicode() Option {
	return func(c *config) {
		c.unicode = false
	}
}

// WithoutPct hides the percentage segment.
func WithoutPct() Option {
	return func(c *config) {
		c.pct = false
	}
}

// WithoutRemain hides the remaining-time segment.
func WithoutRemain() Option {
	return func(c *config) {
		c.remain = false
	}
}

// WithQuiet leaves the terminal cursor visible for the session's lifetime.
func WithQuiet() Option {
	return func(c *config) {
		c.quiet = true
	}
}

// WithSpinner replaces the spinner glyph sequence.
func WithSpinner(glyphs ...string) Option {
	return func(c *config) {
		if len(glyphs) == 0 {
			return
		}

		c.spinner = glyphs
		c.spinnerSet = true
	}
}

// WithBraces replaces the bar's left and right brace glyphs.
func WithBraces(left, right string) Option {
	return func(c *config) {
		c.braces = [2]string{left, right}
		c.bracesSet = true
	}
}

// WithFilling replaces the partial-fill glyph sequence, ordered least to
// most filled.
func WithFilling(glyphs ...string) Option {
	return func(c *config) {
		if len(glyphs) == 0 {
			return
		}

		c.filling = glyphs
		c.fillingSet = true
	}
}

// WithFilled replaces the full-fill glyph.
func WithFilled(glyph string) Option {
	return func(c *config) {
		if glyph == "" {
			return
		}

		c.filled = glyph
		c.filledSet = true
	}
}

// WithStyle sets the style list for one line segment, applied left-to-right.
func WithStyle(el Element, styles ...style.Style) Option {
	return func(c *config) {
		if el < 0 || el >= elementCount {
			return
		}

		c.styles[el] = styles
	}
}

// WithCatchInt arms an interrupt-signal hook that ends the session so the
// cursor is restored.
func WithCatchInt() Option {
	return func(c *config) {
		c.catchInt = true
	}
}

// WithCatchTerm arms a termination-signal hook that ends the session so the
// cursor is restored.
func WithCatchTerm() Option {
	return func(c *config) {
		c.catchTerm = true
	}
}

// WithExitOnSignal makes a caught signal terminate the process with the
// conventional 128+signal exit status after the session has ended.
func WithExitOnSignal() Option {
	return func(c *config) {
		c.exitOnSig = true
	}
}
