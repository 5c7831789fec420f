// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-based logger built on slog. The log
// level is read from an environment variable derived from the executable
// name, e.g. TERMFX_LOG_LEVEL for a binary named termfx. Valid values are
// "DEBUG", "INFO", "WARN" and "ERROR"; anything else defaults to "WARN".
//
// Rendering packages must not log on their draw paths: a log line emitted
// while a progress session is redrawing corrupts the overwritten terminal
// row. Logging here is for the command layer and lifecycle events only.
package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type loggerKey struct{}

// LevelVar holds the process log level, settable at runtime.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is used when no logger is present in the context. It writes
// human-readable lines to stderr so it never collides with rendered output
// on stdout.
var DefaultLogger = slog.New(NewPretty(os.Stderr, LevelVar))

func init() {
	LevelVar.Set(levelFromEnv())
}

// New returns a context carrying the given logger. A nil logger means
// DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or DefaultLogger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

func levelFromEnv() slog.Level {
	exec, _ := os.Executable()
	exec = filepath.Base(exec)

	if ext := filepath.Ext(exec); ext == ".exe" {
		exec = exec[:len(exec)-len(ext)]
	}

	envName := strings.ToUpper(exec) + "_LOG_LEVEL"

	switch os.Getenv(envName) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
