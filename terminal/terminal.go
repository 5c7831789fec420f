// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Adapter is the terminal capability surface. Width is only meaningful when
// IsInteractive reports true. Writes are raw and unbuffered; callers own
// line discipline.
type Adapter interface {
	// IsInteractive reports whether output is an interactive terminal.
	IsInteractive() bool
	// Width returns the terminal column count, or 0 when unknown.
	Width() int
	// WriteOut writes raw bytes to the standard output stream.
	WriteOut(p []byte)
	// WriteErr writes raw bytes to the standard error stream.
	WriteErr(p []byte)
}

// Stubbed in tests.
var (
	isTerminal = term.IsTerminal
	getSize    = term.GetSize
)

type osAdapter struct{}

// OS returns the Adapter for the process's real stdout/stderr.
func OS() Adapter {
	return osAdapter{}
}

func (osAdapter) IsInteractive() bool {
	return isTerminal(int(os.Stdout.Fd()))
}

func (osAdapter) Width() int {
	w, _, err := getSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}

	return w
}

func (osAdapter) WriteOut(p []byte) {
	_, _ = os.Stdout.Write(p)
}

func (osAdapter) WriteErr(p []byte) {
	_, _ = os.Stderr.Write(p)
}
