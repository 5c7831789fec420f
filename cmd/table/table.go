// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package table implements the table demo subcommand.
package table

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/termfx/internal/ctxlog"
	"github.com/matt-FFFFFF/termfx/style"
	"github.com/matt-FFFFFF/termfx/table"
	"github.com/urfave/cli/v3"
)

const (
	fileArg = "file"

	autoFitFlag = "autofit"
	indentFlag  = "indent"
	plainFlag   = "plain"
)

// ErrReadFile is returned when the file cannot be read.
var ErrReadFile = errors.New("failed to read file")

var (
	headerStyle = style.Func(func(s string) string {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render(s)
	})
	borderStyle = style.MustNamed("faint")
)

var demoRows = [][]string{
	{"Component", "Purpose"},
	{"progress", "animated single-line progress bar"},
	{"table", "auto-fitting bordered tables"},
	{"box", "bordered text boxes with wrapping"},
}

// TableCmd renders a bordered table from a tab-separated file, or a built-in
// demo table when no file is given. The first row is the header.
var TableCmd = &cli.Command{
	Name:        "table",
	Description: "Render a bordered table from a tab-separated file.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: fileArg,
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  autoFitFlag,
			Value: true,
			Usage: "shrink columns to the terminal width",
		},
		&cli.StringFlag{
			Name:  indentFlag,
			Usage: "prefix for every rendered line",
		},
		&cli.BoolFlag{
			Name:  plainFlag,
			Usage: "render without header and border styles",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		rows := demoRows

		if name := cmd.StringArg(fileArg); name != "" {
			var err error
			if rows, err = readRows(name); err != nil {
				return err
			}
		}

		opts := table.Options{
			AutoFit: cmd.Bool(autoFitFlag),
			Indent:  cmd.String(indentFlag),
		}

		if !cmd.Bool(plainFlag) {
			opts.HeaderStyles = []style.Style{headerStyle}
			opts.BorderStyles = []style.Style{borderStyle}
		}

		out, err := table.New(nil).Render(rows, opts)
		if err != nil {
			// Degraded input still rendered; report what was wrong with it.
			ctxlog.Warn(ctx, "table input is malformed", "error", err)
		}

		_, werr := cmd.Root().Writer.Write([]byte(out))

		return werr
	},
}

func readRows(name string) ([][]string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	defer file.Close() // nolint:errcheck

	var rows [][]string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		rows = append(rows, strings.Split(scanner.Text(), "\t"))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	return rows, nil
}
