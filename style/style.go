// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
)

// Style is the single-method text transform capability. Apply returns the
// styled rendition of its input.
type Style interface {
	Apply(s string) string
}

// Func adapts an arbitrary string transform into a Style. Unlike named
// styles, function styles run regardless of whether color output is enabled.
type Func func(string) string

// Apply implements Style.
func (f Func) Apply(s string) string {
	return f(s)
}

// named is a Style resolved from the keyword lookup table.
type named struct {
	name  string
	codes []Code
}

// Apply implements Style. It wraps s in the SGR sequence for the style and
// a trailing reset. When color output is disabled s is returned unchanged.
func (n named) Apply(s string) string {
	if !Enabled() {
		return s
	}

	sb := strings.Builder{}
	sb.Grow(len(s) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(ControlString(n.codes...))
	sb.WriteString(s)
	sb.WriteString(reset)

	return sb.String()
}

// lookup maps style keywords to their SGR codes.
var lookup = map[string][]Code{
	"reset":     {Reset},
	"bold":      {Bold},
	"faint":     {Faint},
	"italic":    {Italic},
	"underline": {Underline},
	"blink":     {BlinkSlow},
	"reverse":   {ReverseVideo},
	"conceal":   {Concealed},
	"strike":    {CrossedOut},

	"black":   {FgBlack},
	"red":     {FgRed},
	"green":   {FgGreen},
	"yellow":  {FgYellow},
	"blue":    {FgBlue},
	"magenta": {FgMagenta},
	"cyan":    {FgCyan},
	"white":   {FgWhite},

	"brightBlack":   {FgHiBlack},
	"brightRed":     {FgHiRed},
	"brightGreen":   {FgHiGreen},
	"brightYellow":  {FgHiYellow},
	"brightBlue":    {FgHiBlue},
	"brightMagenta": {FgHiMagenta},
	"brightCyan":    {FgHiCyan},
	"brightWhite":   {FgHiWhite},

	"bgBlack":   {BgBlack},
	"bgRed":     {BgRed},
	"bgGreen":   {BgGreen},
	"bgYellow":  {BgYellow},
	"bgBlue":    {BgBlue},
	"bgMagenta": {BgMagenta},
	"bgCyan":    {BgCyan},
	"bgWhite":   {BgWhite},
}

// Named resolves a style keyword from the lookup table.
// It returns an error for unknown keywords.
func Named(name string) (Style, error) {
	codes, ok := lookup[name]
	if !ok {
		return nil, fmt.Errorf("style: unknown style %q", name)
	}

	return named{name: name, codes: codes}, nil
}

// MustNamed is Named but panics on unknown keywords. Intended for
// package-level defaults with keywords known at compile time.
func MustNamed(name string) Style {
	s, err := Named(name)
	if err != nil {
		panic(err)
	}

	return s
}

// Render applies styles to s left-to-right, each entry wrapping the
// previous result.
func Render(s string, styles ...Style) string {
	for _, st := range styles {
		if st == nil {
			continue
		}

		s = st.Apply(s)
	}

	return s
}

// enabled holds 1 when named styles emit escape codes. Stored atomically so
// hosts may flip it while a redraw tick is running.
var enabled atomic.Bool

func init() {
	enabled.Store(isColorCapable())
}

// Enabled reports whether named styles currently emit escape codes.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled overrides color detection. Hosts use this to force styling on
// pipes or to disable it without touching the environment.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// isColorCapable determines the initial color setting: NO_COLOR wins,
// then FORCE_COLOR, then terminal detection on stdout.
func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
