// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the termfx command-line application.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/matt-FFFFFF/termfx"
	"github.com/matt-FFFFFF/termfx/cmd"
	"github.com/matt-FFFFFF/termfx/internal/ctxlog"
	"github.com/matt-FFFFFF/termfx/internal/signalguard"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	guard := signalguard.Notify(ctx, func(os.Signal) {
		cancel()
	}, syscall.SIGINT, syscall.SIGTERM)
	defer guard.Release()

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", termfx.Version, termfx.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
