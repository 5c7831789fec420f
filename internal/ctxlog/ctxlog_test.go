// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/matt-FFFFFF/termfx/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(buf, slog.LevelInfo))

	ctx := New(context.Background(), logger)
	assert.Same(t, logger, Logger(ctx))

	assert.Same(t, DefaultLogger, Logger(context.Background()), "missing logger falls back to default")
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)), "nil logger falls back to default")
}

func TestPrettyHandleWritesRecord(t *testing.T) {
	prev := style.Enabled()
	style.SetEnabled(false)
	t.Cleanup(func() { style.SetEnabled(prev) })

	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(buf, slog.LevelDebug))

	ctx := New(context.Background(), logger)
	Info(ctx, "hello", "key", "value")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key=value")
}

func TestPrettyLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewPretty(buf, slog.LevelWarn))

	ctx := New(context.Background(), logger)
	Debug(ctx, "quiet")
	Info(ctx, "quiet too")

	assert.Empty(t, buf.String())

	Warn(ctx, "loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestPrettyWithAttrsAndGroup(t *testing.T) {
	prev := style.Enabled()
	style.SetEnabled(false)
	t.Cleanup(func() { style.SetEnabled(prev) })

	buf := &bytes.Buffer{}
	h := NewPretty(buf, slog.LevelDebug).WithGroup("session").WithAttrs([]slog.Attr{slog.String("id", "1")})
	logger := slog.New(h)

	logger.Info("tick", "frame", 3)

	out := buf.String()
	assert.Contains(t, out, "session.id=1")
	assert.Contains(t, out, "session.frame=3")
}
