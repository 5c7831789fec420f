// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package style provides the text styling capability consumed by the
// progress, table and box renderers. A Style is a single-method transform
// over a string. Two variants exist: named styles resolved from a lookup
// table of ANSI SGR codes, and function styles wrapping arbitrary logic
// (including third-party renderers such as lipgloss styles).
//
// Named styles respect the NO_COLOR and FORCE_COLOR environment variables
// and terminal detection via golang.org/x/term: when color output is
// disabled they return their input unchanged. Function styles always run.
package style
