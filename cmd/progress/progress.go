// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress implements the progress demo subcommand.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/termfx/progress"
	"github.com/urfave/cli/v3"
)

const (
	textFlag     = "text"
	widthFlag    = "width"
	durationFlag = "duration"
	asciiFlag    = "ascii"
	noColorFlag  = "no-color"
	quietFlag    = "quiet"

	steps = 100
)

// ProgressCmd runs a demonstration progress bar to completion.
var ProgressCmd = &cli.Command{
	Name:        "progress",
	Description: "Run a demonstration progress bar against the current terminal.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  textFlag,
			Value: "working",
			Usage: "trailing text shown after the bar",
		},
		&cli.IntFlag{
			Name:  widthFlag,
			Value: 30,
			Usage: "bar width in columns",
		},
		&cli.DurationFlag{
			Name:  durationFlag,
			Value: 5 * time.Second,
			Usage: "how long the demo run takes",
		},
		&cli.BoolFlag{
			Name:  asciiFlag,
			Usage: "use ASCII glyphs instead of unicode",
		},
		&cli.BoolFlag{
			Name:  noColorFlag,
			Usage: "disable styled output",
		},
		&cli.BoolFlag{
			Name:  quietFlag,
			Usage: "leave the cursor visible",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		session := progress.New(nil, nil)
		defer session.HandleCrash()

		opts := []progress.Option{
			progress.WithText(cmd.String(textFlag)),
			progress.WithWidth(cmd.Int(widthFlag)),
			progress.WithCatchInt(),
			progress.WithCatchTerm(),
			progress.WithExitOnSignal(),
		}

		if cmd.Bool(asciiFlag) {
			opts = append(opts, progress.WithoutUnicode())
		}

		if cmd.Bool(noColorFlag) {
			opts = append(opts, progress.WithoutColor())
		}

		if cmd.Bool(quietFlag) {
			opts = append(opts, progress.WithQuiet())
		}

		session.Start(opts...)
		defer session.End(true)

		step := cmd.Duration(durationFlag) / steps

		for i := 1; i <= steps; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(step):
			}

			session.Update(float64(i) / steps)
		}

		// Leave the finished bar on screen and move past it.
		session.End(false)
		fmt.Fprintln(cmd.Root().Writer)

		return nil
	},
}
