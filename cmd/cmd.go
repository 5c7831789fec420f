// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/termfx/cmd/box"
	"github.com/matt-FFFFFF/termfx/cmd/progress"
	"github.com/matt-FFFFFF/termfx/cmd/table"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		progress.ProgressCmd,
		table.TableCmd,
		box.BoxCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "termfx",
	Description: `Termfx is a terminal rendering toolkit for Go command-line tools.
It provides an animated single-line progress bar with spinner, percentage and
remaining-time segments, an auto-fitting bordered table renderer, and a text
box primitive, all built on a shared style and width-aware text layer.
The subcommands demonstrate each component against the current terminal.`,
	Usage:     "termfx progress --duration 5s",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
