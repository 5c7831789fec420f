// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package box implements the box demo subcommand.
package box

import (
	"context"
	"strings"

	"github.com/matt-FFFFFF/termfx/box"
	"github.com/matt-FFFFFF/termfx/style"
	"github.com/urfave/cli/v3"
)

const (
	textArg = "text"

	widthFlag  = "width"
	centerFlag = "center"
	indentFlag = "indent"
	plainFlag  = "plain"
)

// BoxCmd draws a bordered box around the given text.
var BoxCmd = &cli.Command{
	Name:        "box",
	Description: "Draw a bordered box around the given text.",
	Arguments: []cli.Argument{
		&cli.StringArgs{
			Name: textArg,
			Max:  -1,
		},
	},
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  widthFlag,
			Usage: "content width to wrap to (0 fits the text)",
		},
		&cli.BoolFlag{
			Name:  centerFlag,
			Usage: "center each line of text",
		},
		&cli.StringFlag{
			Name:  indentFlag,
			Usage: "prefix for every rendered line",
		},
		&cli.BoolFlag{
			Name:  plainFlag,
			Usage: "render without border styles",
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		text := strings.Join(cmd.StringArgs(textArg), " ")
		if text == "" {
			text = "termfx"
		}

		opts := box.Options{
			Width:  cmd.Int(widthFlag),
			Center: cmd.Bool(centerFlag),
			Indent: cmd.String(indentFlag),
		}

		if !cmd.Bool(plainFlag) {
			opts.BorderStyles = []style.Style{style.MustNamed("cyan")}
		}

		_, err := cmd.Root().Writer.Write([]byte(box.New(nil).Render(text, opts)))

		return err
	},
}
