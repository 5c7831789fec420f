// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package box draws a single bordered box around a block of text, word
// wrapping the content to a target width and optionally centering each
// line. It builds on the width-aware primitives in textutil, so styled
// text keeps its alignment.
package box
