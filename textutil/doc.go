// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package textutil provides display-width aware text primitives shared by the
// progress, table and box renderers. Display width is the number of terminal
// columns a string occupies: ANSI escape sequences count for zero and wide
// runes (CJK, some emoji) count for two. Escape handling is delegated to
// github.com/charmbracelet/x/ansi and per-rune widths to
// github.com/mattn/go-runewidth.
package textutil
