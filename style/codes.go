// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package style

import (
	"strconv"
	"strings"
)

const (
	sbPadding = 16 // padding for the strings.Builder

	reset  = "\033[0m"
	prefix = "\033["
	suffix = "m"
)

// Code represents an ANSI SGR control code for text formatting.
type Code int

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
	BlinkSlow
	BlinkRapid
	ReverseVideo
	Concealed
	CrossedOut
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background text colors.
const (
	BgBlack Code = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

// Background Hi-Intensity text colors.
const (
	BgHiBlack Code = iota + 100
	BgHiRed
	BgHiGreen
	BgHiYellow
	BgHiBlue
	BgHiMagenta
	BgHiCyan
	BgHiWhite
)

// ControlString generates a string with ANSI control codes for text formatting.
func ControlString(c ...Code) string {
	sb := strings.Builder{}
	sb.Grow(len(prefix) + len(suffix) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range c {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)

	return sb.String()
}
