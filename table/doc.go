// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package table renders bordered grid tables from rows of text cells, the
// first row being the header. Column widths derive from the widest cell in
// each column; with auto-fit enabled, columns are shrunk one column at a
// time (widest first, floor of two) until the table fits the terminal
// width, truncating over-wide cells with an ellipsis while preserving any
// leading and trailing style escape sequences.
//
// Malformed input degrades instead of failing: ragged rows and cells with
// embedded newlines render as best they can, and the findings come back as
// an aggregated error alongside the output.
package table
