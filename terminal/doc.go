// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package terminal provides the terminal capability consumed by the
// renderers: interactivity detection, column width and raw writes to the
// two output streams. The OS adapter wraps os.Stdout/os.Stderr and
// golang.org/x/term; the Buffer adapter captures writes in memory for
// tests and non-terminal hosts.
package terminal
