// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package terminal

import (
	"bytes"
	"sync"
)

// Buffer is an in-memory Adapter. It reports a configurable interactivity
// and width and records everything written to both streams. The redraw tick
// writes from its own goroutine, so access is guarded.
type Buffer struct {
	mu          sync.Mutex
	interactive bool
	cols        int
	out         bytes.Buffer
	err         bytes.Buffer
}

// NewBuffer returns a Buffer reporting the given interactivity and width.
func NewBuffer(interactive bool, cols int) *Buffer {
	return &Buffer{interactive: interactive, cols: cols}
}

// IsInteractive implements Adapter.
func (b *Buffer) IsInteractive() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.interactive
}

// Width implements Adapter.
func (b *Buffer) Width() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cols
}

// SetWidth changes the reported column count, emulating a window resize.
func (b *Buffer) SetWidth(cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cols = cols
}

// WriteOut implements Adapter.
func (b *Buffer) WriteOut(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, _ = b.out.Write(p)
}

// WriteErr implements Adapter.
func (b *Buffer) WriteErr(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, _ = b.err.Write(p)
}

// Out returns everything written to the output stream so far.
func (b *Buffer) Out() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.out.String()
}

// Err returns everything written to the error stream so far.
func (b *Buffer) Err() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.err.String()
}

// Reset discards captured output on both streams.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.out.Reset()
	b.err.Reset()
}
