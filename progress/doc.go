// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress provides a live-updating, single-line terminal progress
// indicator: spinner, bracketed bar, percentage, remaining-time estimate
// and trailing text, redrawn in place on a periodic tick.
//
// A Session is an explicit handle created by New; there is no package-level
// singleton, so independent bars (and tests) never share state. Every
// operation on a session that is not running, or whose terminal is not
// interactive, is a silent no-op: instrumented code never needs to branch
// on whether output is redirected.
//
// While a session is running, any other write to the terminal must be
// bracketed by Erase and Draw or the overwritten row is corrupted. That
// ordering is the one external contract hosts must honor.
package progress
